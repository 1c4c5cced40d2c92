package search

import (
	"testing"
	"time"

	"github.com/aidanhart/chessplay-core/internal/board"
)

func TestSearchStartingPosition(t *testing.T) {
	pos := board.NewBoard()
	s := NewSearcher(NewTable(4))

	move, _ := s.Run(pos, Limits{Depth: 4}, nil)
	if move == board.NoMove {
		t.Fatal("search returned NoMove for starting position")
	}
	t.Logf("best move: %s", move.String())
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, Qh5-f7 is mate.
	pos, err := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 2 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	s := NewSearcher(NewTable(4))

	move, score := s.Run(pos, Limits{Depth: 3}, nil)
	if move == board.NoMove {
		t.Fatal("search returned NoMove")
	}
	if score < MateScore-MaxPly {
		t.Errorf("expected a mate score, got %d for move %s", score, move.String())
	}
}

func TestSearchStalemateScoresZero(t *testing.T) {
	// Classic stalemate: Black to move, no legal moves, not in check.
	pos, err := board.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.IsStalemate() {
		t.Fatal("test position is not actually stalemate")
	}

	s := NewSearcher(NewTable(4))
	_, score := s.Run(pos, Limits{Depth: 1}, nil)
	if score != 0 {
		t.Errorf("expected stalemate score 0, got %d", score)
	}
}

func TestSearchIsDeterministicAtFixedDepth(t *testing.T) {
	pos := board.NewBoard()

	s1 := NewSearcher(NewTable(4))
	move1, score1 := s1.Run(pos, Limits{Depth: 4}, nil)

	s2 := NewSearcher(NewTable(4))
	move2, score2 := s2.Run(pos, Limits{Depth: 4}, nil)

	if !move1.Equal(move2) || score1 != score2 {
		t.Errorf("search not deterministic: (%s, %d) vs (%s, %d)",
			move1.String(), score1, move2.String(), score2)
	}
}

func TestSearchRespectsMoveTime(t *testing.T) {
	pos := board.NewBoard()
	s := NewSearcher(NewTable(4))

	start := time.Now()
	move, _ := s.Run(pos, Limits{MoveTime: 50 * time.Millisecond, Infinite: false}, nil)
	elapsed := time.Since(start)

	if move == board.NoMove {
		t.Fatal("search returned NoMove")
	}
	if elapsed > 2*time.Second {
		t.Errorf("search ran far past its move time budget: %v", elapsed)
	}
}

func TestRequestStopBoundsNodes(t *testing.T) {
	pos := board.NewBoard()
	s := NewSearcher(NewTable(4))

	s.Run(pos, Limits{Depth: 20}, func(Summary) {
		s.RequestStop()
	})

	// A stop requested once the first iteration (depth 1) has completed
	// should terminate the search during depth 2. Node count stays within a
	// small multiple of the polling interval.
	if s.Nodes() > CheckTerminationNodes*4 {
		t.Errorf("search kept going long after RequestStop: %d nodes", s.Nodes())
	}
}

func TestSummaryPVString(t *testing.T) {
	pos := board.NewBoard()
	s := NewSearcher(NewTable(4))

	var last Summary
	s.Run(pos, Limits{Depth: 3}, func(sum Summary) {
		last = sum
	})

	if len(last.PV) == 0 {
		t.Fatal("expected a non-empty principal variation")
	}
	if last.PVString() == "" {
		t.Error("PVString should not be empty when PV has moves")
	}
}
