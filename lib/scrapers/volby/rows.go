package volby

import (
	"log/slog"
	"strings"
	"volby-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// DistrictRow is one entry of the second-level district list: a
// sub-district and the link to its results page.
type DistrictRow struct {
	Code string
	Name string
	Url  string
}

// IsDataRow reports whether a row of the district list is a genuine
// data row, marked by the "cislo" class on its first cell. Header and
// footer rows lack the marker.
func IsDataRow(row *goquery.Selection) bool {
	cells := row.Find("td")
	if cells.Length() < 2 {
		return false
	}
	return cells.First().HasClass(dataRowClass)
}

// ExtractDistrictRow pulls (code, name, url) out of a data row. The
// caller is expected to have filtered rows with IsDataRow first.
func (c *Client) ExtractDistrictRow(row *goquery.Selection) (DistrictRow, bool) {
	cells := row.Find("td")
	anchor, ok := htmlutil.FirstAnchor(cells.Eq(0))
	if !ok {
		return DistrictRow{}, false
	}
	link, err := htmlutil.ResolveHref(c.BaseUrl, anchor.Href)
	if err != nil {
		slog.Warn("skipping row with unparsable href", "code", anchor.Name, "href", anchor.Href, "err", err)
		return DistrictRow{}, false
	}

	return DistrictRow{
		Code: anchor.Name,
		Name: strings.TrimSpace(cells.Eq(1).Text()),
		Url:  link,
	}, true
}
