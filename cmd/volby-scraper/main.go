package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"volby-scraper/lib/configutil"
	"volby-scraper/lib/osutil"
	"volby-scraper/lib/scrapers/volby"
	"volby-scraper/services/results"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var (
	verbose     bool
	format      string
	concurrency int
	preview     bool
)

var rootCmd = &cobra.Command{
	Use:   "volby-scraper <district name | volby.cz url> <output file>",
	Short: "Exports the 2017 parliamentary election results of a district to a flat table.",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
	// errors are logged through slog in main
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging/instrumentation")
	rootCmd.Flags().StringVar(&format, "format", "csv", "output format, csv or xlsx")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "results pages fetched at once")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "render the exported table to stdout")
}

func validateArgs(input, outfile string) error {
	if input == "" {
		return fmt.Errorf("the first argument (url or district name) must not be empty")
	}
	if strings.Contains(input, "volby.cz") && !strings.HasPrefix(input, "http") {
		return fmt.Errorf("a volby.cz url must be complete and start with http or https")
	}
	if !strings.EqualFold(filepath.Ext(outfile), "."+format) {
		return fmt.Errorf("the output file must carry the %q extension", "."+format)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	input, outfile := args[0], args[1]

	shutdown := InitTelemetry(ctx, verbose)
	defer shutdown()

	if err := validateArgs(input, outfile); err != nil {
		return err
	}

	cfg, err := configutil.ReadConfig[Config]("volby.json5")
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}

	client, err := volby.NewClient(volby.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}

	if strings.Contains(input, "volby.cz") {
		if err := client.CheckReachable(ctx, input); err != nil {
			return err
		}
	}

	service := results.NewService(client, results.Options{Concurrency: concurrency})

	start := time.Now()
	table, err := service.Collect(ctx, input)
	if err != nil {
		return err
	}
	slog.Info(
		"scraping finished",
		"districts", len(table.Records),
		"parties", len(table.Parties),
		"seconds", time.Since(start).Seconds(),
	)

	if err := results.ExportFile(outfile, format, table); err != nil {
		return err
	}
	slog.Info("export written", "file", outfile, "format", format)

	if preview {
		renderPreview(table)
	}
	return nil
}

func main() {
	ctx := osutil.SignalContext()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
