package catalog

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sampleRecords returns count records where #1 is grass/poison, #4 is fire
// and everything else is normal.
func sampleRecords(count int) []Record {
	records := make([]Record, 0, count)
	for id := 1; id <= count; id++ {
		r := Record{ID: id, Name: fmt.Sprintf("mon-%d", id), Types: []string{"normal"}}
		switch id {
		case 1:
			r.Name = "bulbasaur"
			r.Types = []string{"grass", "poison"}
		case 4:
			r.Name = "charmander"
			r.Types = []string{"fire"}
		case 7:
			r.Name = "squirtle"
			r.Types = []string{"water"}
		case 25:
			r.Name = "Pikachu"
			r.Types = []string{"electric"}
		}
		records = append(records, r)
	}
	return records
}

func ids(records []Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
