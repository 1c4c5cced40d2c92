// Package session wires the board, search, and evaluation packages into a
// small concurrency harness: the live position sits behind a mutex, each
// search runs on a private copy of it, and GoAsync runs that search in its
// own goroutine and sends the result back over a channel. Searches are
// single-threaded; this is not Lazy SMP multi-worker search.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aidanhart/chessplay-core/internal/board"
	"github.com/aidanhart/chessplay-core/internal/config"
	"github.com/aidanhart/chessplay-core/internal/search"
)

// Difficulty maps a coarse strength setting onto concrete search limits.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultySettings gives default limits per difficulty level.
var DifficultySettings = map[Difficulty]search.Limits{
	Easy:   {Depth: 4, MoveTime: 500 * time.Millisecond},
	Medium: {Depth: 8, MoveTime: 2 * time.Second},
	Hard:   {Depth: 64, MoveTime: 8 * time.Second},
}

// Result is the outcome of a completed search.
type Result struct {
	Move  board.Move
	Score int
}

// Session owns a position and runs searches against it. All public methods
// are safe for concurrent use; the position itself is guarded by a mutex so
// the engine thread can be queried (for display, UCI "position" updates,
// etc.) while a search thread is running against a private clone of it.
type Session struct {
	mu  sync.Mutex
	pos *board.Board

	tt       *search.Table
	searcher *search.Searcher

	difficulty Difficulty
	logger     zerolog.Logger

	searchMu sync.Mutex // serializes searches, and ClearHash against a running search
}

// New creates a session with a transposition table of the given size in MB.
func New(ttSizeMB int) *Session {
	return NewFromConfig(config.Engine{
		HashSizeMB:            ttSizeMB,
		CheckTerminationNodes: search.CheckTerminationNodes,
	})
}

// NewFromConfig creates a session from an engine tuning configuration, as
// loaded by internal/config from a TOML file.
func NewFromConfig(cfg config.Engine) *Session {
	tt := search.NewTable(cfg.HashSizeMB)
	searcher := search.NewSearcher(tt)
	searcher.SetCheckInterval(uint64(cfg.CheckTerminationNodes))

	return &Session{
		pos:        board.NewBoard(),
		tt:         tt,
		searcher:   searcher,
		difficulty: Medium,
		logger:     log.With().Str("component", "session").Logger(),
	}
}

// SetDifficulty changes the default limits used by GoDefault.
func (s *Session) SetDifficulty(d Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficulty = d
}

// SetPosition replaces the live position with a copy of pos, so later
// changes the caller makes to pos do not affect the session.
func (s *Session) SetPosition(pos *board.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = pos.Copy()
}

// Position returns a copy of the live position, safe for the caller to
// inspect or mutate without affecting the session.
func (s *Session) Position() *board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Copy()
}

// ClearHash discards all transposition table contents, e.g. between games.
// If a search is running, it waits for that search to finish first.
func (s *Session) ClearHash() {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	s.tt.Clear()
}

// Go runs a search against the current position to completion, reporting
// each completed depth through onInfo (which may be nil). It blocks the
// calling goroutine for the duration of the search. Session has no method
// that stops a Go call directly; callers that want to stop a search early
// should use GoAsync and send search.Stop on its control channel.
func (s *Session) Go(limits search.Limits, onInfo func(search.Summary)) Result {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	pos := s.Position()

	s.logger.Info().
		Str("fen", pos.ToFEN()).
		Int("depth", limits.Depth).
		Dur("moveTime", limits.MoveTime).
		Msg("search started")

	move, score := s.searcher.Run(pos, limits, func(sum search.Summary) {
		s.logger.Debug().
			Int("depth", sum.Depth).
			Int("score", sum.Score).
			Uint64("nodes", sum.Nodes).
			Str("pv", sum.PVString()).
			Msg("search progress")
		if onInfo != nil {
			onInfo(sum)
		}
	})

	s.logger.Info().
		Str("move", move.String()).
		Int("score", score).
		Uint64("nodes", s.searcher.Nodes()).
		Msg("search finished")

	return Result{Move: move, Score: score}
}

// GoDefault searches using the limits configured for the session's current
// difficulty.
func (s *Session) GoDefault(onInfo func(search.Summary)) Result {
	s.mu.Lock()
	limits := DifficultySettings[s.difficulty]
	s.mu.Unlock()
	return s.Go(limits, onInfo)
}

// GoAsync starts a search in its own goroutine and returns a channel that
// receives its Result, plus a control channel. The errgroup that runs the
// control loop is never waited on, so no error or panic from the search is
// reported to the caller through either channel.
// The control channel accepts search.Stop and search.Quit; anything else is
// ignored. Sending search.Stop cancels the current search but leaves the
// session usable for a future Go/GoAsync call; search.Quit does the same and
// additionally closes the control channel's consumption goroutine.
func (s *Session) GoAsync(limits search.Limits, onInfo func(search.Summary)) (resultCh <-chan Result, control chan<- search.Control) {
	results := make(chan Result, 1)
	controlCh := make(chan search.Control, 1)

	var g errgroup.Group
	g.Go(func() error {
		done := make(chan struct{})
		go func() {
			defer close(done)
			results <- s.Go(limits, onInfo)
		}()

		for {
			select {
			case c := <-controlCh:
				switch c {
				case search.Stop, search.Quit:
					s.searcher.RequestStop()
				}
				if c == search.Quit {
					<-done
					return nil
				}
			case <-done:
				return nil
			}
		}
	})

	return results, controlCh
}
