package search

import "github.com/aidanhart/chessplay-core/internal/board"

// Move ordering score bands, highest first.
const (
	ttMoveScore     = 30_000
	goodCaptureBase = 10_000
	promotionBase   = goodCaptureBase - 1000
)

// mvvLva is indexed [victim][attacker]; higher means search first.
// Most Valuable Victim, Least Valuable Attacker.
var mvvLva = [6][6]int{
	/* P */ {15, 14, 14, 13, 12, 11},
	/* N */ {25, 24, 24, 23, 22, 21},
	/* B */ {35, 34, 34, 33, 32, 31},
	/* R */ {45, 44, 44, 43, 42, 41},
	/* Q */ {55, 54, 54, 53, 52, 51},
	/* K */ {0, 0, 0, 0, 0, 0},
}

// Orderer scores pseudo-legal moves so PickMove finds the most promising one
// first: the transposition-table move, then captures by MVV-LVA, then
// promotions, then quiet moves in generation order.
type Orderer struct{}

// NewOrderer creates a move orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Score assigns an ordering score to each move in ml, writing it into the
// move's Score field so MoveList.PickMove can select by it.
func (o *Orderer) Score(ml *board.MoveList, ttMove board.Move) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		m.Score = int16(clampScore(o.scoreMove(m, ttMove)))
		ml.Set(i, m)
	}
}

func (o *Orderer) scoreMove(m board.Move, ttMove board.Move) int {
	if m.Equal(ttMove) {
		return ttMoveScore
	}

	if m.IsCapture() {
		attacker := m.Piece()
		victim := m.CapturedPieceType()
		if m.IsEnPassant() {
			victim = board.Pawn
		}
		if victim >= board.King || attacker > board.King {
			return goodCaptureBase
		}
		return goodCaptureBase + mvvLva[victim][attacker]*100
	}

	if m.IsPromotion() {
		return promotionBase + int(m.Promotion())*100
	}

	return 0
}

// clampScore keeps scores inside int16's range; the bands above never exceed
// it in practice but this guards against overflow if bands are retuned.
func clampScore(v int) int {
	const maxInt16 = 1<<15 - 1
	const minInt16 = -(1 << 15)
	if v > maxInt16 {
		return maxInt16
	}
	if v < minInt16 {
		return minInt16
	}
	return v
}
