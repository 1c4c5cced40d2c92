package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanhart/chessplay-core/internal/board"
	"github.com/aidanhart/chessplay-core/internal/config"
	"github.com/aidanhart/chessplay-core/internal/search"
)

func configEngineFixture() config.Engine {
	cfg := config.Default()
	cfg.HashSizeMB = 8
	cfg.CheckTerminationNodes = 512
	return cfg
}

func TestGoReturnsAMove(t *testing.T) {
	s := New(4)
	result := s.Go(search.Limits{Depth: 4}, nil)
	assert.NotEqual(t, board.NoMove, result.Move)
}

func TestGoDefaultUsesDifficultyLimits(t *testing.T) {
	s := New(4)
	s.SetDifficulty(Easy)

	start := time.Now()
	result := s.GoDefault(nil)
	elapsed := time.Since(start)

	require.NotEqual(t, board.NoMove, result.Move, "expected a move at Easy difficulty")
	assert.Less(t, elapsed, 5*time.Second, "Easy search ran too long")
}

func TestGoAsyncCanBeStopped(t *testing.T) {
	s := New(4)
	resultCh, control := s.GoAsync(search.Limits{Infinite: true}, nil)

	time.Sleep(20 * time.Millisecond)
	control <- search.Stop

	select {
	case result := <-resultCh:
		assert.NotEqual(t, board.NoMove, result.Move, "expected a move after stopping an infinite search")
	case <-time.After(5 * time.Second):
		t.Fatal("GoAsync did not honor Stop within 5s")
	}
}

func TestSetPositionIsIsolatedFromCallerMutation(t *testing.T) {
	s := New(4)
	pos := board.NewBoard()
	s.SetPosition(pos)

	got := s.Position()
	assert.NotSame(t, pos, got, "Position() should return an independent copy, not the same pointer")
	assert.Equal(t, pos.Hash, got.Hash, "copy should match the source position")
}

func TestNewFromConfigSessionReturnsAMove(t *testing.T) {
	s := NewFromConfig(configEngineFixture())
	result := s.Go(search.Limits{Depth: 3}, nil)
	assert.NotEqual(t, board.NoMove, result.Move)
}
