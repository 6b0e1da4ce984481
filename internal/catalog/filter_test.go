package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	records := sampleRecords(150)

	tests := []struct {
		name     string
		search   string
		category string
		want     []int
	}{
		{name: "padded id", search: "001", category: AllTypes, want: []int{1}},
		{name: "padded id with spaces", search: "  007 ", category: AllTypes, want: []int{7}},
		{name: "category only", search: "", category: "fire", want: []int{4}},
		{name: "name substring", search: "saur", category: AllTypes, want: []int{1}},
		{name: "name is case insensitive", search: "PIKA", category: AllTypes, want: []int{25}},
		{name: "search then category", search: "char", category: "fire", want: []int{4}},
		{name: "category excludes search hit", search: "char", category: "water", want: []int{}},
		{name: "category exact match only", search: "", category: "fir", want: []int{}},
		{name: "no match", search: "zzz", category: AllTypes, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(records, tt.search, tt.category))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.search, tt.category, diff)
			}
		})
	}
}

func TestFilterRawAndPaddedIDMatch(t *testing.T) {
	records := sampleRecords(150)

	for _, search := range []string{"007", "7"} {
		got := Filter(records, search, AllTypes)
		found := false
		for _, r := range got {
			if r.ID == 7 {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected record 7 for search %q", search)
		}
	}

	// "7" also hits 17, 70..79, 107 and so on.
	if got := Filter(records, "7", AllTypes); len(got) <= 1 {
		t.Fatalf("expected raw id search to match several records, got %d", len(got))
	}
}

func TestFilterIdentity(t *testing.T) {
	records := sampleRecords(150)
	got := Filter(records, "", AllTypes)
	if diff := cmp.Diff(ids(records), ids(got)); diff != "" {
		t.Fatalf("expected identity (-want +got):\n%s", diff)
	}

	got = Filter(records, "   ", AllTypes)
	if len(got) != len(records) {
		t.Fatalf("expected whitespace search to keep all records, got %d", len(got))
	}
}

func TestFilterSubsetPreservesOrder(t *testing.T) {
	records := sampleRecords(150)
	cases := [][2]string{
		{"1", AllTypes},
		{"mon", "normal"},
		{"", "grass"},
		{"0", "normal"},
	}

	for _, c := range cases {
		got := Filter(records, c[0], c[1])
		pos := -1
		for _, r := range got {
			idx := -1
			for i, orig := range records {
				if orig.ID == r.ID {
					idx = i
					break
				}
			}
			if idx < 0 {
				t.Fatalf("record %d not in input", r.ID)
			}
			if idx <= pos {
				t.Fatalf("order not preserved for %v at record %d", c, r.ID)
			}
			pos = idx
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords(150)
	once := Filter(records, "1", "normal")
	twice := Filter(once, "1", "normal")
	if diff := cmp.Diff(ids(once), ids(twice)); diff != "" {
		t.Fatalf("expected idempotent filter (-once +twice):\n%s", diff)
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	records := sampleRecords(3)
	got := Filter(records, "", AllTypes)
	got[0].Name = "changed"
	if records[0].Name == "changed" {
		t.Fatalf("expected filter result to be independent of input")
	}
}

func TestSuggest(t *testing.T) {
	records := sampleRecords(10)

	tests := []struct {
		name   string
		search string
		want   string
		ok     bool
	}{
		{name: "one typo", search: "bulbasaux", want: "bulbasaur", ok: true},
		{name: "transposed", search: "chramander", want: "charmander", ok: true},
		{name: "too short", search: "bu", ok: false},
		{name: "too far", search: "mewtwo", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(records, tt.search)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("Suggest(%q) = %q, %v; want %q, %v", tt.search, got, ok, tt.want, tt.ok)
			}
		})
	}
}
