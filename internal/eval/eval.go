// Package eval implements static position evaluation: tapered material and
// piece-square table scoring, read off the White-relative incremental
// accumulators Board maintains in Make/Unmake and reported from the side to
// move's perspective.
package eval

import "github.com/aidanhart/chessplay-core/internal/board"

// Material values in centipawns, re-exported from board so callers outside
// the board package (quiescence pruning) have one name for them.
const (
	PawnValue   = board.PawnValue
	KnightValue = board.KnightValue
	BishopValue = board.BishopValue
	RookValue   = board.RookValue
	QueenValue  = board.QueenValue
	KingValue   = board.KingValue
)

// PieceValue is the material value lookup table, indexed by board.PieceType
// (index 6, NoPieceType, is zero).
var PieceValue = board.PieceValue

// Tempo is added to the White-relative score before Evaluate converts it to
// the side to move's perspective, so it counts in White's favour whichever
// side is to move.
const Tempo = 10

// Evaluate returns the static evaluation of the position in centipawns from
// the side to move's perspective: positive favors the side to move. The
// White-relative score is negated when Black is to move. The
// material and piece-square totals are read directly off the board's
// MGScore/EGScore/Phase accumulators rather than rescanned here; Make and
// Unmake keep those fields current incrementally.
func Evaluate(b *board.Board) int {
	phase := b.Phase
	if phase > board.MaxPhase {
		phase = board.MaxPhase
	}

	score := (b.MGScore*phase + b.EGScore*(board.MaxPhase-phase)) / board.MaxPhase
	score += Tempo

	if b.SideToMove == board.Black {
		return -score
	}
	return score
}

// EvaluateMaterial returns the raw material balance (White minus Black),
// ignoring position and kings.
func EvaluateMaterial(b *board.Board) int {
	score := 0
	for pt := board.Pawn; pt < board.King; pt++ {
		score += b.Pieces[board.White][pt].PopCount() * PieceValue[pt]
		score -= b.Pieces[board.Black][pt].PopCount() * PieceValue[pt]
	}
	return score
}
