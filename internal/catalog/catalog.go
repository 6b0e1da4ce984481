// Package catalog holds the in-memory record collection and the pure
// operations over it: loading, facet derivation and filtering.
package catalog

// Catalog is the loaded, immutable record collection together with the
// facet set derived from it. Records are kept in id order.
type Catalog struct {
	records []Record
	facets  FacetSet
	byID    map[int]int
}

// New builds a Catalog from records already in index order and derives the
// facet set. The slice is owned by the Catalog afterwards.
func New(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		facets:  FacetSet{},
		byID:    make(map[int]int, len(records)),
	}
	for i, r := range records {
		c.facets.Add(r.Types...)
		c.byID[r.ID] = i
	}
	return c
}

// Records returns the full collection. Callers must treat it as read-only.
func (c *Catalog) Records() []Record {
	return c.records
}

// Facets returns a copy of the derived facet set.
func (c *Catalog) Facets() FacetSet {
	out := make(FacetSet, len(c.facets))
	for label := range c.facets {
		out[label] = struct{}{}
	}
	return out
}

func (c *Catalog) Options() []Option {
	return BuildOptions(c.facets)
}

func (c *Catalog) Lookup(id int) (Record, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

func (c *Catalog) Len() int {
	return len(c.records)
}
