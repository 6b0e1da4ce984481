package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type fakeFetcher struct {
	records map[int]Record
	failID  int
	delay   func(id int) time.Duration
	calls   atomic.Int64
}

func newFakeFetcher(records []Record) *fakeFetcher {
	f := &fakeFetcher{records: make(map[int]Record, len(records))}
	for _, r := range records {
		f.records[r.ID] = r
	}
	return f
}

func (f *fakeFetcher) GetPokemon(ctx context.Context, id int) (Record, error) {
	f.calls.Add(1)
	if f.delay != nil {
		select {
		case <-time.After(f.delay(id)):
		case <-ctx.Done():
			return Record{}, ctx.Err()
		}
	}
	if id == f.failID {
		return Record{}, errors.New("status 500")
	}
	r, ok := f.records[id]
	if !ok {
		return Record{}, errors.New("not found")
	}
	return r, nil
}

func TestLoadReassemblesInIndexOrder(t *testing.T) {
	fetcher := newFakeFetcher(sampleRecords(20))
	// Later ids complete first.
	fetcher.delay = func(id int) time.Duration {
		return time.Duration(21-id) * time.Millisecond
	}

	c, err := Load(context.Background(), fetcher, 20, LoadOptions{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := make([]int, 20)
	for i := range want {
		want[i] = i + 1
	}
	if diff := cmp.Diff(want, ids(c.Records())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if got := fetcher.calls.Load(); got != 20 {
		t.Fatalf("expected 20 fetches, got %d", got)
	}
}

func TestLoadEndToEnd(t *testing.T) {
	fetcher := newFakeFetcher(sampleRecords(150))

	c, err := Load(context.Background(), fetcher, 150, LoadOptions{Concurrency: 16})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.Len() != 150 {
		t.Fatalf("expected 150 records, got %d", c.Len())
	}

	fire := ids(Filter(c.Records(), "", "fire"))
	if diff := cmp.Diff([]int{4}, fire); diff != "" {
		t.Fatalf("fire filter mismatch (-want +got):\n%s", diff)
	}

	padded := ids(Filter(c.Records(), "001", AllTypes))
	if diff := cmp.Diff([]int{1}, padded); diff != "" {
		t.Fatalf("padded search mismatch (-want +got):\n%s", diff)
	}

	if !c.Facets().Has("grass") || !c.Facets().Has("poison") || !c.Facets().Has("fire") {
		t.Fatalf("expected facets derived from records, got %v", c.Facets().Sorted())
	}
}

func TestLoadSingleFailureFailsEverything(t *testing.T) {
	fetcher := newFakeFetcher(sampleRecords(150))
	fetcher.failID = 73

	c, err := Load(context.Background(), fetcher, 150, LoadOptions{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
	if c != nil {
		t.Fatalf("expected no catalog on failure, got %d records", c.Len())
	}
}

func TestLoadRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Record)
	}{
		{name: "id mismatch", mutate: func(r *Record) { r.ID = 99 }},
		{name: "empty name", mutate: func(r *Record) { r.Name = " " }},
		{name: "no types", mutate: func(r *Record) { r.Types = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := sampleRecords(5)
			tt.mutate(&records[2])
			fetcher := newFakeFetcher(nil)
			for i, r := range records {
				fetcher.records[i+1] = r
			}

			if _, err := Load(context.Background(), fetcher, 5, LoadOptions{}); !errors.Is(err, ErrLoadFailed) {
				t.Fatalf("expected ErrLoadFailed, got %v", err)
			}
		})
	}
}

func TestLoadRejectsNonPositiveCount(t *testing.T) {
	if _, err := Load(context.Background(), newFakeFetcher(nil), 0, LoadOptions{}); !errors.Is(err, ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got %v", err)
	}
}

func TestLoadHonoursCancellation(t *testing.T) {
	fetcher := newFakeFetcher(sampleRecords(10))
	fetcher.delay = func(int) time.Duration { return time.Second }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, fetcher, 10, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}
