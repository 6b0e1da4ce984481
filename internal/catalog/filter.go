package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Filter narrows records by search text and then by category. Search matches
// a case-insensitive substring of the name, of the decimal id, or of the
// zero-padded three digit id. An empty search keeps everything, and the
// AllTypes category disables the category test. The result is a new slice in
// input order.
func Filter(records []Record, search, category string) []Record {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesSearch(r, term) {
			continue
		}
		if category != AllTypes && !r.HasType(category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r Record, term string) bool {
	return strings.Contains(strings.ToLower(r.Name), term) ||
		strings.Contains(strconv.Itoa(r.ID), term) ||
		strings.Contains(PaddedID(r.ID), term)
}

// PaddedID formats an id with at least three digits.
func PaddedID(id int) string {
	return fmt.Sprintf("%03d", id)
}

// Suggest returns the record name closest to search when it is within a
// small edit distance. It is only meant for hinting on an empty result.
func Suggest(records []Record, search string) (string, bool) {
	term := strings.ToLower(strings.TrimSpace(search))
	if len(term) < 3 {
		return "", false
	}

	limit := suggestLimit(len(term))
	best := ""
	bestDist := limit + 1
	for _, r := range records {
		name := strings.ToLower(r.Name)
		dist := levenshtein.ComputeDistance(term, name)
		if dist < bestDist {
			best = r.Name
			bestDist = dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func suggestLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
