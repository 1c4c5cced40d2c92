// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard move-generator correctness and performance benchmark.
package perft

import "github.com/aidanhart/chessplay-core/internal/board"

// Count walks the legal move tree to depth and returns the number of leaf
// positions reached.
func Count(pos *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GeneratePseudoLegalMoves()
	if depth == 1 {
		var nodes uint64
		for i := 0; i < moves.Len(); i++ {
			if pos.Make(moves.Get(i)) {
				nodes++
				pos.Unmake()
			}
		}
		return nodes
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !pos.Make(m) {
			continue
		}
		nodes += Count(pos, depth-1)
		pos.Unmake()
	}
	return nodes
}

// Divide breaks down Count by root move, useful for finding which branch of
// a move generator disagrees with a reference perft value.
func Divide(pos *board.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}

	moves := pos.GeneratePseudoLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !pos.Make(m) {
			continue
		}
		result[m.String()] = Count(pos, depth-1)
		pos.Unmake()
	}
	return result
}

// Table memoizes perft counts keyed by (Zobrist hash, depth), useful when
// the same subtree is reached via transposition during a divide sweep across
// many root moves.
type Table struct {
	entries map[key]uint64
}

type key struct {
	hash  uint64
	depth int
}

// NewTable creates an empty memoization table.
func NewTable() *Table {
	return &Table{entries: make(map[key]uint64)}
}

// CountMemo behaves like Count but consults and populates t.
func (t *Table) CountMemo(pos *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	k := key{pos.Hash, depth}
	if v, ok := t.entries[k]; ok {
		return v
	}

	moves := pos.GeneratePseudoLegalMoves()
	var nodes uint64
	if depth == 1 {
		for i := 0; i < moves.Len(); i++ {
			if pos.Make(moves.Get(i)) {
				nodes++
				pos.Unmake()
			}
		}
	} else {
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			if !pos.Make(m) {
				continue
			}
			nodes += t.CountMemo(pos, depth-1)
			pos.Unmake()
		}
	}

	t.entries[k] = nodes
	return nodes
}
