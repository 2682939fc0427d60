package htmlutil

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func doc(t *testing.T, src string) *goquery.Document {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func TestFirstAnchor(t *testing.T) {
	d := doc(t, "<table><tr><td><a href=\"ps32?xkraj=1\">\n  529  \t</a><a href=\"other\">x</a></td></tr></table>")
	a, ok := FirstAnchor(d.Find("td"))
	require.True(t, ok)
	require.Equal(t, "ps32?xkraj=1", a.Href)
	require.Equal(t, "529", a.Name)

	_, ok = FirstAnchor(d.Find("span"))
	require.False(t, ok)
}

func TestResolveHref(t *testing.T) {
	base, err := url.Parse("https://www.volby.cz/pls/ps2017nss/ps3?xjazyk=CZ")
	require.NoError(t, err)

	abs, err := ResolveHref(base, "ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101")
	require.NoError(t, err)
	require.Equal(t, "https://www.volby.cz/pls/ps2017nss/ps32?xjazyk=CZ&xkraj=2&xnumnuts=2101", abs)
}
