package search

import (
	"strings"
	"time"

	"github.com/aidanhart/chessplay-core/internal/board"
)

// Summary is emitted once per completed iterative-deepening depth, giving
// the session enough to log progress or forward a UCI-style info line.
type Summary struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// NPS returns nodes searched per second for this summary.
func (s Summary) NPS() uint64 {
	secs := s.Time.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(s.Nodes) / secs)
}

// PVString renders the principal variation as space-separated UCI move strings.
func (s Summary) PVString() string {
	parts := make([]string, len(s.PV))
	for i, m := range s.PV {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// IsMate reports whether Score represents a forced mate, and in how many
// plies (positive: this side mates, negative: this side gets mated).
func (s Summary) IsMate() (pliesToMate int, ok bool) {
	if s.Score > MateScore-MaxPly {
		return MateScore - s.Score, true
	}
	if s.Score < -MateScore+MaxPly {
		return -(MateScore + s.Score), true
	}
	return 0, false
}
