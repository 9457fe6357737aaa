// Package tt implements the transposition table spec.md §4.6
// requires: a flat, open-addressed array keyed by the 32-bit Zobrist
// hash, sized to a power of two, with plain depth-preferred
// replacement (no aging) and EXACT/LOWER/UPPER bound flags.
//
// Grounded on the teacher's internal/transpositiontable/tt.go
// (hashKeyMask sizing, Resize, Probe/Put shape, Stats counters).
// Adapted: the teacher ages entries and allows a same-depth overwrite
// once the prior entry is "aged"; spec.md §4.6 instead requires a new
// entry to replace the prior iff its depth is >= the prior's, with
// "no aging required", so the age field and AgeEntries are dropped.
package tt

import (
	"math"
	"unsafe"

	"github.com/tkopp/makhos/internal/move"
)

// Bound records whether a stored score is exact or a search bound.
type Bound uint8

const (
	// Exact means the stored score is the true minimax value.
	Exact Bound = iota
	// Lower means the stored score is a lower bound (fail-high/cut node).
	Lower
	// Upper means the stored score is an upper bound (fail-low/all node).
	Upper
)

// Entry is one transposition table record.
type Entry struct {
	Key   uint32
	Depth int
	Score int32
	Move  move.Key
	Bound Bound
}

// EntrySize is the size in bytes of one Entry, used by Resize to turn
// a size in megabytes into an entry count, in the spirit of the
// teacher's unsafe.Sizeof usage in tt.go.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// Table is the transposition table. Not safe for concurrent use; the
// engine's search is single-threaded per spec.md §5, so no locking is
// required even when a Table is reused across invocations.
type Table struct {
	data []Entry
	mask uint32

	puts   uint64
	hits   uint64
	misses uint64
}

// New creates a Table sized to the largest power of two of entries
// that fits within sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize replaces the table's backing array, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB <= 0 {
		t.data = nil
		t.mask = 0
		return
	}
	bytes := uint64(sizeMB) * 1024 * 1024
	numEntries := uint64(1) << uint64(math.Floor(math.Log2(float64(bytes)/float64(EntrySize))))
	if numEntries == 0 {
		numEntries = 1
	}
	t.data = make([]Entry, numEntries)
	t.mask = uint32(numEntries - 1)
}

// Clear discards all entries without changing the table's size.
func (t *Table) Clear() {
	t.data = make([]Entry, len(t.data))
	t.puts, t.hits, t.misses = 0, 0, 0
}

func (t *Table) slot(key uint32) *Entry {
	return &t.data[key&t.mask]
}

// Probe returns the stored entry for key and true iff the key
// matches; a collision or an empty slot reports ok=false (spec.md §7:
// a 32-bit alias costs a suboptimal but legal move, never a crash).
func (t *Table) Probe(key uint32) (Entry, bool) {
	if len(t.data) == 0 {
		return Entry{}, false
	}
	e := t.slot(key)
	if e.Key == key {
		t.hits++
		return *e, true
	}
	t.misses++
	return Entry{}, false
}

// Store writes an entry for key, replacing whatever currently
// occupies its slot iff depth >= the stored entry's depth (spec.md
// §4.6 depth-preferred replacement). An empty table (size 0) is a
// silent no-op, matching the teacher's "if maxNumberOfEntries == 0,
// do not store anything".
func (t *Table) Store(key uint32, depth int, score int32, mv move.Key, bound Bound) {
	if len(t.data) == 0 {
		return
	}
	t.puts++
	e := t.slot(key)
	if depth < e.Depth && e.Key != 0 {
		return
	}
	*e = Entry{Key: key, Depth: depth, Score: score, Move: mv, Bound: bound}
}

// Len returns the number of slots backing the table.
func (t *Table) Len() int { return len(t.data) }

// Stats returns (puts, hits, misses) accumulated since the last Clear.
func (t *Table) Stats() (puts, hits, misses uint64) {
	return t.puts, t.hits, t.misses
}
