package results

import (
	"math/rand"
	"testing"
	"volby-scraper/lib/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGlobalPartyOrder(t *testing.T) {
	testCases := []struct {
		name     string
		pairs    []PartyRef
		expected []string
	}{
		{
			name: "sorted by code not discovery order",
			pairs: []PartyRef{
				{Code: 2, Name: "Party B"},
				{Code: 1, Name: "Party A"},
			},
			expected: []string{"Party A", "Party B"},
		},
		{
			name: "duplicate names collapse to first occurrence",
			pairs: []PartyRef{
				{Code: 1, Name: "Party A"},
				{Code: 2, Name: "Party B"},
				{Code: 1, Name: "Party A"},
				{Code: 2, Name: "Party B"},
			},
			expected: []string{"Party A", "Party B"},
		},
		{
			name: "same code under two names keeps the earlier accumulation",
			pairs: []PartyRef{
				{Code: 1, Name: "Old Name"},
				{Code: 1, Name: "New Name"},
			},
			expected: []string{"Old Name", "New Name"},
		},
		{
			name:     "empty",
			pairs:    nil,
			expected: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			diff := cmp.Diff(test.expected, GlobalPartyOrder(test.pairs))
			require.Empty(t, diff)
		})
	}
}

func TestGlobalPartyOrderLengthMatchesDistinctNames(t *testing.T) {
	pairs := []PartyRef{
		{Code: 3, Name: "C"}, {Code: 1, Name: "A"},
		{Code: 2, Name: "B"}, {Code: 9, Name: "A"},
	}
	order := GlobalPartyOrder(pairs)

	distinct := map[string]struct{}{}
	for _, p := range pairs {
		distinct[p.Name] = struct{}{}
	}
	require.Len(t, order, len(distinct))
}

// the order must come out identical no matter which order districts
// were visited in
func TestGlobalPartyOrderTraversalOrderIndependent(t *testing.T) {
	rndm := rand.New(rand.NewSource(42))

	var pairs []PartyRef
	for code := 1; code <= 30; code++ {
		pairs = append(pairs, PartyRef{
			Code: code,
			Name: testutil.RandomString(rndm, 12),
		})
	}
	// a couple of districts re-listing the same parties
	pairs = append(pairs, pairs[:10]...)

	reference := GlobalPartyOrder(pairs)
	for i := 0; i < 50; i++ {
		shuffled := make([]PartyRef, len(pairs))
		copy(shuffled, pairs)
		rndm.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		diff := cmp.Diff(reference, GlobalPartyOrder(shuffled))
		require.Empty(t, diff)
	}
}

func TestTableRowFill(t *testing.T) {
	table := Table{
		Parties: []string{"Party A", "Party B"},
		Records: []DistrictRecord{
			{
				Code:       "529303",
				Location:   "Benešov",
				Registered: "1000",
				Envelopes:  "900",
				Valid:      "850",
				Votes:      map[string]string{"Party A": "200"},
			},
			{
				Code:     "532568",
				Location: "Bystřice",
				// stats missing from the page keep their sentinel
				Registered: "N/A",
				Envelopes:  "N/A",
				Valid:      "N/A",
				Votes:      map[string]string{"Party B": "100"},
			},
		},
	}

	require.Equal(t, []string{
		"code", "location", "registered", "envelopes", "valid",
		"Party A", "Party B",
	}, table.Columns())

	rows := table.Rows()
	require.Equal(t, []string{"529303", "Benešov", "1000", "900", "850", "200", "0"}, rows[0])
	require.Equal(t, []string{"532568", "Bystřice", "N/A", "N/A", "N/A", "0", "100"}, rows[1])
}
