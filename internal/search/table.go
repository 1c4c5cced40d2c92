// Package search implements iterative-deepening negamax alpha-beta search
// with quiescence, a transposition table, and MVV-LVA move ordering.
package search

import "github.com/aidanhart/chessplay-core/internal/board"

// Bound indicates what kind of score bound a transposition table entry stores.
type Bound uint8

const (
	// Exact means the stored score is the true minimax value.
	Exact Bound = iota
	// LowerBound means the real score is at least the stored value (failed high).
	LowerBound
	// UpperBound means the real score is at most the stored value (failed low).
	UpperBound
)

// Entry is a single transposition table slot.
type Entry struct {
	Key      uint64     // full Zobrist hash, for collision verification
	BestMove board.Move // best move found at this position, or NoMove
	Score    int16      // score bounded by Bound, ply-independent (see AdjustScore*)
	Depth    int8       // depth this entry was searched to
	Bound    Bound
	Age      uint8 // search generation, used for replacement
}

// Table is an always-replace-by-depth, open-addressed transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8

	hits   uint64
	probes uint64
}

// NewTable creates a transposition table sized to approximately sizeMB megabytes.
func NewTable(sizeMB int) *Table {
	const entrySize = 24 // approximate Entry size now that Key is a full uint64
	numEntries := roundDownToPowerOf2(uint64(sizeMB) * 1024 * 1024 / entrySize)
	if numEntries == 0 {
		numEntries = 1
	}
	return &Table{
		entries: make([]Entry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a hash key. The second return value is false on a miss or
// collision (verification key mismatch).
func (t *Table) Probe(hash uint64) (Entry, bool) {
	t.probes++
	idx := hash & t.mask
	e := t.entries[idx]
	if e.Key == hash && e.Depth > 0 {
		t.hits++
		return e, true
	}
	return Entry{}, false
}

// Store saves a search result, always replacing unless the existing entry is
// from the same search generation and was searched deeper.
func (t *Table) Store(hash uint64, depth int, score int, bound Bound, best board.Move) {
	idx := hash & t.mask
	e := &t.entries[idx]

	if e.Age != t.age || depth >= int(e.Depth) {
		e.Key = hash
		e.BestMove = best
		e.Score = int16(score)
		e.Depth = int8(depth)
		e.Bound = bound
		e.Age = t.age
	}
}

// NewGeneration marks the start of a new search for replacement purposes.
func (t *Table) NewGeneration() {
	t.age++
}

// Clear resets the whole table.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
	t.hits = 0
	t.probes = 0
}

// HashFull returns per-mille (parts per thousand) occupancy, sampled over the
// first 1000 entries.
func (t *Table) HashFull() int {
	sampleSize := 1000
	if uint64(sampleSize) > uint64(len(t.entries)) {
		sampleSize = len(t.entries)
	}
	used := 0
	for i := 0; i < sampleSize; i++ {
		if t.entries[i].Depth > 0 && t.entries[i].Age == t.age {
			used++
		}
	}
	if sampleSize == 0 {
		return 0
	}
	return (used * 1000) / sampleSize
}

// HitRate returns the probe hit rate as a percentage.
func (t *Table) HitRate() float64 {
	if t.probes == 0 {
		return 0
	}
	return float64(t.hits) / float64(t.probes) * 100
}

// AdjustScoreFromTT converts a ply-independent stored mate score back into a
// ply-relative score when reading from the table.
func AdjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT converts a ply-relative mate score into the ply-independent
// form used for storage, so the same mate is recognized regardless of the
// ply at which it is found in a later search.
func AdjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
