package volby

import (
	"fmt"
	"strings"
)

// cellRule locates one logical field on a results page. The layout is
// only ever addressed through these rules, so a markup change on
// volby.cz stays an edit to this file.
type cellRule struct {
	class string
	// acceptable values of the headers attribute, the page splits
	// parties across two side-by-side sub-tables with distinct
	// header-reference ids
	headers []string
}

func (r cellRule) selector() string {
	base := "td"
	if r.class != "" {
		base += "." + r.class
	}
	if len(r.headers) == 0 {
		return base
	}
	variants := make([]string, len(r.headers))
	for i, h := range r.headers {
		variants[i] = fmt.Sprintf("%s[headers=%q]", base, h)
	}
	return strings.Join(variants, ", ")
}

// district-level aggregate statistics
var statRules = map[string]cellRule{
	"registered": {headers: []string{"sa2"}},
	"envelopes":  {headers: []string{"sa3"}},
	"valid":      {headers: []string{"sa6"}},
}

var (
	partyCodeRule   = cellRule{class: "cislo", headers: []string{"t1sa1 t1sb1", "t2sa1 t2sb1"}}
	partyNameRule   = cellRule{class: "overflow_name"}
	numericCellRule = cellRule{class: "cislo"}
)

// dataRowClass marks first cells of genuine data rows in the
// second-level district list.
const dataRowClass = "cislo"
