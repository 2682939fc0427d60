package results

import "slices"

// FixedColumns lead every export, in this order. Party columns follow.
var FixedColumns = []string{"code", "location", "registered", "envelopes", "valid"}

// missingVotes fills party columns absent from a district's record.
// The fixed columns never use it, they carry their own "N/A" sentinel.
const missingVotes = "0"

// PartyRef is a stable (ballot code, party name) identity pair. Codes
// are unique within one page, the same name may recur across districts
// under any code, the source is trusted as-is.
type PartyRef struct {
	Code int
	Name string
}

// DistrictRecord is the flattened result of one sub-district. Votes is
// sparse, it only holds parties that appeared on that district's page.
type DistrictRecord struct {
	Code       string
	Location   string
	Registered string
	Envelopes  string
	Valid      string
	Votes      map[string]string
}

// Table is the assembled output of a crawl: all district records plus
// the unified party column order.
type Table struct {
	Parties []string
	Records []DistrictRecord
}

// GlobalPartyOrder derives the unified column order from every (code,
// name) pair observed during the crawl: sort by code, then keep the
// first occurrence of each distinct name. The sort is stable and the
// dedup keeps an explicit seen set, so the result does not depend on
// the order districts were visited.
func GlobalPartyOrder(pairs []PartyRef) []string {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b PartyRef) int {
		return a.Code - b.Code
	})

	seen := map[string]struct{}{}
	var order []string
	for _, p := range sorted {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		order = append(order, p.Name)
	}
	return order
}

func (t Table) Columns() []string {
	columns := make([]string, 0, len(FixedColumns)+len(t.Parties))
	columns = append(columns, FixedColumns...)
	return append(columns, t.Parties...)
}

// Row flattens one record against the table's column schema. Party
// columns missing from the record take "0".
func (t Table) Row(rec DistrictRecord) []string {
	row := make([]string, 0, len(FixedColumns)+len(t.Parties))
	row = append(row, rec.Code, rec.Location, rec.Registered, rec.Envelopes, rec.Valid)
	for _, party := range t.Parties {
		votes, ok := rec.Votes[party]
		if !ok {
			votes = missingVotes
		}
		row = append(row, votes)
	}
	return row
}

func (t Table) Rows() [][]string {
	rows := make([][]string, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = t.Row(rec)
	}
	return rows
}
