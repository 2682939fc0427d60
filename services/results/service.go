package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"volby-scraper/lib/scrapers/volby"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/results")

// ErrEmptyResult means the crawl finished without collecting a single
// district record, there is nothing meaningful to export.
var ErrEmptyResult = errors.New("no district records collected")

type Options struct {
	// number of results pages fetched at once, defaults to 1
	// (strictly sequential)
	Concurrency int
}

type Service struct {
	client      *volby.Client
	concurrency int
}

func NewService(client *volby.Client, opts Options) Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return Service{
		client:      client,
		concurrency: opts.Concurrency,
	}
}

// Collect runs the whole crawl: resolves the caller input to a
// district list page, visits every sub-district results page and
// assembles the flat table. Any single fetch failure aborts the run.
func (s Service) Collect(ctx context.Context, input string) (Table, error) {
	ctx, span := tracer.Start(ctx, "service:Collect")
	defer span.End()

	link, err := s.client.ResolveDistrict(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to resolve district")
		return Table{}, err
	}

	doc, err := s.client.FetchDocument(ctx, link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch district list")
		return Table{}, err
	}

	var rows []volby.DistrictRow
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if !volby.IsDataRow(row) {
			return
		}
		if r, ok := s.client.ExtractDistrictRow(row); ok {
			rows = append(rows, r)
		}
	})
	span.SetAttributes(attribute.Int("districts", len(rows)))
	slog.InfoContext(ctx, "district list scraped", "districts", len(rows))

	records, pairs, err := s.collectDistricts(ctx, rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "crawl failed")
		return Table{}, err
	}
	if len(records) == 0 {
		span.SetStatus(codes.Error, "empty result")
		return Table{}, fmt.Errorf("%w: %q", ErrEmptyResult, input)
	}

	return Table{
		Parties: GlobalPartyOrder(pairs),
		Records: records,
	}, nil
}

// collectDistricts fetches every results page, up to s.concurrency at
// a time. Records land in traversal-order slots and party pairs are
// accumulated only after all workers finish, so the output is
// identical whether pages are fetched sequentially or in parallel.
func (s Service) collectDistricts(ctx context.Context, rows []volby.DistrictRow) ([]DistrictRecord, []PartyRef, error) {
	records := make([]DistrictRecord, len(rows))
	votesByDistrict := make([][]volby.PartyVote, len(rows))

	var errLock sync.Mutex
	var errList []error
	wg := sync.WaitGroup{}
	sem := make(chan struct{}, s.concurrency)

	for i, row := range rows {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, row volby.DistrictRow) {
			defer wg.Done()
			defer func() { <-sem }()

			rec, votes, err := s.scrapeDistrict(ctx, row)
			if err != nil {
				errLock.Lock()
				errList = append(errList, err)
				errLock.Unlock()
				return
			}
			records[i] = rec
			votesByDistrict[i] = votes
		}(i, row)
	}
	wg.Wait()

	if len(errList) > 0 {
		return nil, nil, errors.Join(errList...)
	}

	var pairs []PartyRef
	for _, votes := range votesByDistrict {
		for _, v := range votes {
			pairs = append(pairs, PartyRef{Code: v.Code, Name: v.Name})
		}
	}
	return records, pairs, nil
}

func (s Service) scrapeDistrict(ctx context.Context, row volby.DistrictRow) (DistrictRecord, []volby.PartyVote, error) {
	slog.DebugContext(ctx, "scraping district", "code", row.Code, "name", row.Name, "url", row.Url)

	doc, err := s.client.FetchDocument(ctx, row.Url)
	if err != nil {
		return DistrictRecord{}, nil, err
	}

	stats := volby.ScrapeStats(doc)
	votes := volby.ScrapeParties(doc)
	slices.SortStableFunc(votes, func(a, b volby.PartyVote) int {
		return a.Code - b.Code
	})

	rec := DistrictRecord{
		Code:       row.Code,
		Location:   row.Name,
		Registered: stats.Registered,
		Envelopes:  stats.Envelopes,
		Valid:      stats.Valid,
		Votes:      make(map[string]string, len(votes)),
	}
	for _, v := range votes {
		rec.Votes[v.Name] = v.Votes
	}
	return rec, votes, nil
}
