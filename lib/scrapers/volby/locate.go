package volby

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"volby-scraper/lib/htmlutil"
	"volby-scraper/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/codes"
)

// similarity threshold below which a "did you mean" suggestion is more
// confusing than helpful
const suggestionThreshold = 0.8

// ResolveDistrict maps caller input, either a results-site url or a
// free-text district name, to the url of that district's sub-district
// list. Urls are passed through untouched, reachability is the
// caller's concern.
func (c *Client) ResolveDistrict(ctx context.Context, input string) (string, error) {
	if strings.Contains(input, "volby.cz") {
		return input, nil
	}
	if textutil.IsNumeric(input) {
		return "", fmt.Errorf("%w: district name cannot be purely numeric: %q", ErrInvalidInput, input)
	}

	ctx, span := tracer.Start(ctx, "client:ResolveDistrict")
	defer span.End()

	doc, err := c.FetchDocument(ctx, indexPage)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch district index")
		return "", err
	}

	link := ""
	var candidates []string
	doc.Find("table.table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		// the first two rows of every index table are headers
		for i := 2; i < rows.Length(); i++ {
			cells := rows.Eq(i).Find("td")
			if cells.Length() < 4 {
				continue
			}
			name := strings.TrimSpace(cells.Eq(1).Text())
			candidates = append(candidates, name)
			if !textutil.EqualFold(name, input) {
				continue
			}

			anchor, ok := htmlutil.FirstAnchor(cells.Eq(3))
			if !ok {
				continue
			}
			resolved, err := htmlutil.ResolveHref(c.BaseUrl, anchor.Href)
			if err != nil {
				slog.WarnContext(ctx, "skipping unparsable district link", "district", name, "href", anchor.Href, "err", err)
				continue
			}
			link = resolved
			return false
		}
		return true
	})

	if link == "" {
		span.SetStatus(codes.Error, "district not found")
		if suggestion, ok := closestName(input, candidates); ok {
			return "", fmt.Errorf("%w: district %q (did you mean %q?)", ErrNotFound, input, suggestion)
		}
		return "", fmt.Errorf("%w: district %q", ErrNotFound, input)
	}

	slog.DebugContext(ctx, "resolved district", "input", input, "url", link)
	return link, nil
}

func closestName(input string, candidates []string) (string, bool) {
	best := ""
	bestSimilarity := 0.0
	for _, name := range candidates {
		similarity := matchr.JaroWinkler(textutil.Fold(input), textutil.Fold(name), false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = name
		}
	}
	return best, bestSimilarity >= suggestionThreshold
}
