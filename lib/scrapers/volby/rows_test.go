package volby

import (
	"testing"
	"volby-scraper/lib/testutil"

	"github.com/stretchr/testify/require"
)

const districtListPage = `
<html><body>
<table class="table">
<tr><th>obec</th><th>n&#225;zev</th></tr>
<tr>
<td class="cislo"><a href="ps311?xjazyk=CZ&amp;xkraj=2&amp;xobec=529303">529303</a></td>
<td class="overflow_name">Bene&#353;ov</td>
<td class="center">X</td>
</tr>
<tr>
<td class="cislo"><a href="ps311?xjazyk=CZ&amp;xkraj=2&amp;xobec=532568">532568</a></td>
<td class="overflow_name">Bystřice</td>
<td class="center">X</td>
</tr>
<tr>
<td class="center">footer</td>
<td class="center">not a data row</td>
</tr>
</table>
</body></html>`

func TestIsDataRow(t *testing.T) {
	doc := testutil.Doc(t, districtListPage)
	rows := doc.Find("tr")

	require.Equal(t, 4, rows.Length())
	require.False(t, IsDataRow(rows.Eq(0)))
	require.True(t, IsDataRow(rows.Eq(1)))
	require.True(t, IsDataRow(rows.Eq(2)))
	require.False(t, IsDataRow(rows.Eq(3)))
}

func TestExtractDistrictRow(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	doc := testutil.Doc(t, districtListPage)
	row, ok := client.ExtractDistrictRow(doc.Find("tr").Eq(1))
	require.True(t, ok)
	require.Equal(t, DistrictRow{
		Code: "529303",
		Name: "Benešov",
		Url:  "https://www.volby.cz/pls/ps2017nss/ps311?xjazyk=CZ&xkraj=2&xobec=529303",
	}, row)
}

func TestExtractDistrictRowNoAnchor(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	doc := testutil.Doc(t, `<table><tr><td class="cislo">529303</td><td>name</td></tr></table>`)
	_, ok := client.ExtractDistrictRow(doc.Find("tr").First())
	require.False(t, ok)
}
