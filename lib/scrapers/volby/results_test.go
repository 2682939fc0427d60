package volby

import (
	"testing"
	"volby-scraper/lib/testutil"

	"github.com/stretchr/testify/require"
)

const resultsPage = `
<html><body>
<table id="ps311_t1" class="table">
<tr><th id="sa1">ok</th><th id="sa2">voli&#269;i</th><th id="sa3">ob&#225;lky</th><th id="sa6">platn&#233;</th></tr>
<tr>
<td class="cislo" headers="sa1">100,00</td>
<td class="cislo" headers="sa2">1&#160;000</td>
<td class="cislo" headers="sa3">900</td>
<td class="cislo" headers="sa6">850</td>
</tr>
</table>
<div id="inner">
<table>
<tr><th colspan="3">Strana</th></tr>
<tr><th>&#269;&#237;slo</th><th>n&#225;zev</th><th>hlasy</th></tr>
<tr>
<td class="cislo" headers="t1sa1 t1sb1">2</td>
<td class="overflow_name" headers="t1sa1 t1sb2">Party B</td>
<td class="cislo" headers="t1sa2 t1sb3">100</td>
<td class="cislo" headers="t1sa2 t1sb4">11,76</td>
</tr>
<tr>
<td class="cislo" headers="t1sa1 t1sb1">-</td>
<td class="overflow_name" headers="t1sa1 t1sb2">Dash placeholder</td>
<td class="cislo" headers="t1sa2 t1sb3">-</td>
<td class="cislo" headers="t1sa2 t1sb4">-</td>
</tr>
</table>
<table>
<tr>
<td class="cislo" headers="t2sa1 t2sb1">1</td>
<td class="overflow_name" headers="t2sa1 t2sb2">Party A</td>
<td class="cislo" headers="t2sa2 t2sb3">2&#160;200</td>
<td class="cislo" headers="t2sa2 t2sb4">25,88</td>
</tr>
<tr>
<td class="hidden_td" headers="t2sa1 t2sb1">X</td>
<td class="overflow_name" headers="t2sa1 t2sb2">No code cell</td>
</tr>
</table>
</div>
</body></html>`

func TestScrapeStats(t *testing.T) {
	doc := testutil.Doc(t, resultsPage)
	stats := ScrapeStats(doc)
	require.Equal(t, "1000", stats.Registered)
	require.Equal(t, "900", stats.Envelopes)
	require.Equal(t, "850", stats.Valid)
}

func TestScrapeStatsMissingCells(t *testing.T) {
	doc := testutil.Doc(t, `<table><tr><td class="cislo" headers="sa2">500</td></tr></table>`)
	stats := ScrapeStats(doc)
	require.Equal(t, "500", stats.Registered)
	require.Equal(t, NotAvailable, stats.Envelopes)
	require.Equal(t, NotAvailable, stats.Valid)
}

func TestScrapeParties(t *testing.T) {
	doc := testutil.Doc(t, resultsPage)
	votes := ScrapeParties(doc)

	// document order, both sub-table header variants picked up,
	// non-numeric code rows and rows without a code cell skipped
	require.Equal(t, []PartyVote{
		{Code: 2, Name: "Party B", Votes: "100"},
		{Code: 1, Name: "Party A", Votes: "2200"},
	}, votes)
}

func TestScrapePartiesEmptyPage(t *testing.T) {
	doc := testutil.Doc(t, `<html><body><p>nothing here</p></body></html>`)
	require.Empty(t, ScrapeParties(doc))
}
