package main

import (
	"os"
	"volby-scraper/services/results"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderPreview(tbl results.Table) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{}
	for _, column := range tbl.Columns() {
		header = append(header, column)
	}
	t.AppendHeader(header)

	for _, values := range tbl.Rows() {
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
