package testutil

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// RandomString generates a random lowercase string given the pseudo
// random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range str {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}

// Doc parses an HTML fragment into a goquery document, failing the
// test on malformed input.
func Doc(t testing.TB, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
