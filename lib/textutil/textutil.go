package textutil

import "strings"

// the source pages pad numbers with U+00A0 thousands separators
const nbsp = " "

// CleanCell trims surrounding whitespace and removes non-breaking
// spaces, which the source uses as thousands separators inside
// numeric cells.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, nbsp, "")
}

// Fold normalizes a name for case-insensitive exact comparison.
// It intentionally does not collapse inner whitespace, "Praha 1"
// and "Praha1" are different districts.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EqualFold reports whether two names are the same district name
// under Fold normalization.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// IsNumeric reports whether s consists solely of ASCII digits.
// Used to reject district codes pasted in place of district names.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
