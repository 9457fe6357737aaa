package tt

import "testing"

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(1)
	if _, ok := table.Probe(12345); ok {
		t.Fatal("expected a miss on an empty table")
	}
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(1)
	table.Store(42, 5, 123, 7, Exact)

	entry, ok := table.Probe(42)
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if entry.Depth != 5 || entry.Score != 123 || entry.Move != 7 || entry.Bound != Exact {
		t.Fatalf("unexpected entry contents: %+v", entry)
	}
}

// TestDepthPreferredReplacement is spec.md §4.6's replacement policy:
// a new entry at the same slot replaces the prior one only if its
// depth is >= the prior's.
func TestDepthPreferredReplacement(t *testing.T) {
	table := New(1)
	table.Store(1, 10, 100, 1, Exact)
	table.Store(1, 3, 200, 2, Exact)

	entry, ok := table.Probe(1)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.Depth != 10 || entry.Score != 100 {
		t.Fatalf("shallower write must not replace a deeper entry, got %+v", entry)
	}

	table.Store(1, 10, 300, 3, Exact)
	entry, _ = table.Probe(1)
	if entry.Score != 300 {
		t.Fatalf("equal-depth write must replace the prior entry, got %+v", entry)
	}
}

func TestZeroSizeTableIsANoOp(t *testing.T) {
	table := New(0)
	table.Store(1, 5, 100, 1, Exact)
	if _, ok := table.Probe(1); ok {
		t.Fatal("a zero-size table must never report a hit")
	}
}
