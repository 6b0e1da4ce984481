package sqlite

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pokedex/internal/catalog"
)

func memoryClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := New(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close(ctx) })
	if err := client.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	return client
}

func bulbasaur() catalog.Record {
	return catalog.Record{
		ID:    1,
		Name:  "bulbasaur",
		Types: []string{"grass", "poison"},
		Stats: []catalog.Stat{
			{Name: "hp", Base: 45},
			{Name: "attack", Base: 49},
		},
		Abilities:      []string{"overgrow", "chlorophyll"},
		Image:          catalog.ImageRefs{Artwork: "https://img/1.png"},
		Height:         7,
		Weight:         69,
		BaseExperience: 64,
		Species:        "bulbasaur",
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	client := memoryClient(t)
	if err := client.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
}

func TestUpsertRecord(t *testing.T) {
	ctx := context.Background()
	client := memoryClient(t)

	rec := bulbasaur()
	if err := client.UpsertRecord(ctx, rec, "h1"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	rows, err := client.Query(ctx, `SELECT name, stats, abilities, base_experience FROM records WHERE id = ?`, 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []map[string]any{{
		"name":            "bulbasaur",
		"stats":           `[{"name":"hp","base":45},{"name":"attack","base":49}]`,
		"abilities":       `["overgrow","chlorophyll"]`,
		"base_experience": int64(64),
	}}
	got := make([]map[string]any, len(rows))
	for i, r := range rows {
		got[i] = r
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}

	types, err := client.Query(ctx, `SELECT type FROM record_types WHERE record_id = ? ORDER BY slot`, 1)
	if err != nil {
		t.Fatalf("query types: %v", err)
	}
	if len(types) != 2 || types[0]["type"] != "grass" || types[1]["type"] != "poison" {
		t.Fatalf("expected grass, poison; got %v", types)
	}
}

func TestUpsertRecord_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	client := memoryClient(t)

	rec := bulbasaur()
	if err := client.UpsertRecord(ctx, rec, "h1"); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	rec.Types = []string{"grass"}
	rec.BaseExperience = 0
	if err := client.UpsertRecord(ctx, rec, "h1"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	n, err := client.CountRecords(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 record, got %d", n)
	}

	rows, err := client.Query(ctx, `SELECT base_experience FROM records WHERE id = 1`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if rows[0]["base_experience"] != nil {
		t.Fatalf("expected NULL base_experience, got %v", rows[0]["base_experience"])
	}

	types, err := client.Query(ctx, `SELECT type FROM record_types WHERE record_id = 1`)
	if err != nil {
		t.Fatalf("query types: %v", err)
	}
	if len(types) != 1 {
		t.Fatalf("expected stale type rows removed, got %v", types)
	}
}

func TestCountRecords_Empty(t *testing.T) {
	client := memoryClient(t)
	n, err := client.CountRecords(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestRecordHashes(t *testing.T) {
	ctx := context.Background()
	client := memoryClient(t)

	rec := bulbasaur()
	if err := client.UpsertRecord(ctx, rec, "abc"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	rec.ID = 2
	if err := client.UpsertRecord(ctx, rec, "def"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := client.RecordHashes(ctx)
	if err != nil {
		t.Fatalf("hashes: %v", err)
	}
	if diff := cmp.Diff(map[int]string{1: "abc", 2: "def"}, got); diff != "" {
		t.Fatalf("hash mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveStaleRecords(t *testing.T) {
	ctx := context.Background()
	client := memoryClient(t)

	for _, id := range []int{1, 2, 3} {
		rec := bulbasaur()
		rec.ID = id
		if err := client.UpsertRecord(ctx, rec, "h"); err != nil {
			t.Fatalf("upsert %d: %v", id, err)
		}
	}

	removed, err := client.RemoveStaleRecords(ctx, []int{1, 3})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	types, err := client.Query(ctx, `SELECT record_id FROM record_types WHERE record_id = 2`)
	if err != nil {
		t.Fatalf("query types: %v", err)
	}
	if len(types) != 0 {
		t.Fatalf("expected stale type rows removed, got %v", types)
	}

	removed, err = client.RemoveStaleRecords(ctx, nil)
	if err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
}
