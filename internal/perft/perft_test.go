package perft

import (
	"testing"

	"github.com/aidanhart/chessplay-core/internal/board"
)

func TestCountStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, c := range cases {
		pos := board.NewBoard()
		got := Count(pos, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestCountKiwipete(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if got := Count(pos, 2); got != 2039 {
		t.Errorf("depth 2: got %d, want 2039", got)
	}
}

func TestCountMemoMatchesCount(t *testing.T) {
	pos := board.NewBoard()
	want := Count(pos, 3)

	memoPos := board.NewBoard()
	tbl := NewTable()
	got := tbl.CountMemo(memoPos, 3)

	if got != want {
		t.Errorf("memoized count diverged: got %d, want %d", got, want)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	pos := board.NewBoard()
	total := Count(pos, 3)

	divPos := board.NewBoard()
	breakdown := Divide(divPos, 3)

	var sum uint64
	for _, n := range breakdown {
		sum += n
	}
	if sum != total {
		t.Errorf("divide breakdown sums to %d, want %d", sum, total)
	}
	if len(breakdown) != 20 {
		t.Errorf("expected 20 root moves from the starting position, got %d", len(breakdown))
	}
}
