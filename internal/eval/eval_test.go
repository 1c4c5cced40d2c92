package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanhart/chessplay-core/internal/board"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	pos := board.NewBoard()
	assert.Equal(t, Tempo, Evaluate(pos), "starting position is materially and positionally symmetric, so only the tempo bonus should show")
}

func TestEvaluateMaterialStartingPositionIsZero(t *testing.T) {
	pos := board.NewBoard()
	assert.Zero(t, EvaluateMaterial(pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, Evaluate(pos), RookValue/2, "a lone extra rook should dominate the evaluation")
}

func TestEvaluateIsAntisymmetricUnderSideToMove(t *testing.T) {
	white, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	require.NoError(t, err)

	// Same pieces, only side to move differs: Evaluate is reported from the
	// side to move's perspective, so flipping the side to move just flips
	// the sign of the whole score, tempo bonus included.
	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestPieceValueTableCoversEveryPieceType(t *testing.T) {
	assert.Equal(t, PawnValue, PieceValue[board.Pawn])
	assert.Equal(t, KnightValue, PieceValue[board.Knight])
	assert.Equal(t, BishopValue, PieceValue[board.Bishop])
	assert.Equal(t, RookValue, PieceValue[board.Rook])
	assert.Equal(t, QueenValue, PieceValue[board.Queen])
	assert.Equal(t, KingValue, PieceValue[board.King])
}
