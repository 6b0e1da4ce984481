package catalog

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// AllTypes is the reserved selector value meaning "no category filter".
const AllTypes = "all"

const allTypesLabel = "All Types"

type FacetSet map[string]struct{}

func (f FacetSet) Add(labels ...string) {
	for _, label := range labels {
		f[label] = struct{}{}
	}
}

func (f FacetSet) Has(label string) bool {
	_, ok := f[label]
	return ok
}

// Sorted returns the labels in ascending byte order.
func (f FacetSet) Sorted() []string {
	out := make([]string, 0, len(f))
	for label := range f {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

type Option struct {
	Value string
	Label string
}

// BuildOptions returns the selector options: the AllTypes sentinel first,
// then one option per facet in ascending order.
func BuildOptions(facets FacetSet) []Option {
	sorted := facets.Sorted()
	options := make([]Option, 0, len(sorted)+1)
	options = append(options, Option{Value: AllTypes, Label: allTypesLabel})
	for _, label := range sorted {
		options = append(options, Option{Value: label, Label: capitalize(label)})
	}
	return options
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
