package volby

import (
	"strconv"
	"strings"
	"volby-scraper/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// NotAvailable marks an aggregate statistic missing from a results
// page. Absence is data, not an error.
const NotAvailable = "N/A"

// Stats are the three district-level aggregates of a results page.
// Values are passthrough text, cleaned but not parsed.
type Stats struct {
	Registered string
	Envelopes  string
	Valid      string
}

// ScrapeStats never fails, each cell missing from the page is reported
// as NotAvailable.
func ScrapeStats(doc *goquery.Document) Stats {
	return Stats{
		Registered: statText(doc, statRules["registered"]),
		Envelopes:  statText(doc, statRules["envelopes"]),
		Valid:      statText(doc, statRules["valid"]),
	}
}

func statText(doc *goquery.Document, rule cellRule) string {
	cell := doc.Find(rule.selector()).First()
	if cell.Length() == 0 {
		return NotAvailable
	}
	return textutil.CleanCell(cell.Text())
}

// PartyVote is one (ballot code, party name, vote count) triple as it
// appears on a results page.
type PartyVote struct {
	Code  int
	Name  string
	Votes string
}

// ScrapeParties returns every party triple present on the page, in
// document order. A row qualifies when it carries a code cell from one
// of the two sub-table header variants, a party-name cell, and at
// least two numeric cells (the first numeric cell duplicates the code,
// the second holds the votes). Anything else is a structural row and
// is skipped silently.
func ScrapeParties(doc *goquery.Document) []PartyVote {
	var out []PartyVote
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		codeCell := row.Find(partyCodeRule.selector()).First()
		nameCell := row.Find(partyNameRule.selector()).First()
		voteCells := row.Find(numericCellRule.selector())
		if codeCell.Length() == 0 || nameCell.Length() == 0 || voteCells.Length() < 2 {
			return
		}

		code, err := strconv.Atoi(strings.TrimSpace(codeCell.Text()))
		if err != nil {
			return
		}

		out = append(out, PartyVote{
			Code:  code,
			Name:  strings.TrimSpace(nameCell.Text()),
			Votes: textutil.CleanCell(voteCells.Eq(1).Text()),
		})
	})
	return out
}
