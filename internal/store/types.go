package store

import (
	"encoding/json"
	"fmt"

	"pokedex/internal/catalog"
)

// StatRow is the stored shape of one stat.
type StatRow struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

func StatRows(stats []catalog.Stat) []StatRow {
	rows := make([]StatRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, StatRow{Name: s.Name, Base: s.Base})
	}
	return rows
}

func MarshalStats(stats []catalog.Stat) ([]byte, error) {
	data, err := json.Marshal(StatRows(stats))
	if err != nil {
		return nil, fmt.Errorf("marshaling stats: %w", err)
	}
	return data, nil
}

// NullableExperience maps the "absent" zero value to SQL NULL.
func NullableExperience(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}
