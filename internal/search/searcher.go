package search

import (
	"sync/atomic"
	"time"

	"github.com/aidanhart/chessplay-core/internal/board"
	"github.com/aidanhart/chessplay-core/internal/eval"
)

// Search-wide constants.
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128

	// CheckTerminationNodes is how often, in nodes searched, the search
	// polls its control channel for a stop/quit signal.
	CheckTerminationNodes = 2048

	maxQuiescencePly = 32
)

// Control is a cooperative cancellation signal a caller sends to a running search.
type Control int

const (
	// Nothing means no change; the search keeps going.
	Nothing Control = iota
	// Start begins a new search (handled by the session, not the Searcher itself).
	Start
	// Stop ends the current search but leaves the searcher reusable.
	Stop
	// Quit ends the current search and tells the caller to shut down entirely.
	Quit
)

// Limits bounds a search in depth, nodes, or wall-clock time. A zero value
// in a field means that bound does not apply.
type Limits struct {
	Depth    int
	Nodes    uint64
	MoveTime time.Duration
	Infinite bool
}

// pvTable stores the principal variation found at each ply.
type pvTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}

// Searcher runs iterative-deepening negamax alpha-beta search against a
// cloned board, reporting progress through the report callback passed to Run.
type Searcher struct {
	tt      *Table
	orderer *Orderer

	pos   *board.Board
	nodes uint64
	stop  atomic.Bool

	pv pvTable

	startTime     time.Time
	limits        Limits
	checkInterval uint64
}

// NewSearcher creates a Searcher backed by the given transposition table,
// polling for cancellation every CheckTerminationNodes nodes by default.
func NewSearcher(tt *Table) *Searcher {
	return &Searcher{tt: tt, orderer: NewOrderer(), checkInterval: CheckTerminationNodes}
}

// SetCheckInterval overrides how many nodes pass between cancellation polls.
// A smaller interval reacts to Stop/Quit faster at the cost of more atomic
// loads and time.Since calls per search.
func (s *Searcher) SetCheckInterval(nodes uint64) {
	if nodes == 0 {
		nodes = CheckTerminationNodes
	}
	s.checkInterval = nodes
}

// RequestStop asks a running search to return as soon as it next polls.
func (s *Searcher) RequestStop() {
	s.stop.Store(true)
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Run performs iterative deepening from depth 1 up to limits.Depth (or until
// time/node limits are hit), calling report after each completed depth. It
// searches a private clone of pos so the caller's board is never mutated.
func (s *Searcher) Run(pos *board.Board, limits Limits, report func(Summary)) (board.Move, int) {
	s.pos = pos.Copy()
	s.nodes = 0
	s.stop.Store(false)
	s.startTime = time.Now()
	s.limits = limits
	if s.checkInterval == 0 {
		s.checkInterval = CheckTerminationNodes
	}
	s.tt.NewGeneration()

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly-1 {
		maxDepth = MaxPly - 1
	}

	var bestMove board.Move
	var bestScore int

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.negamax(depth, 0, -Infinity, Infinity)

		if s.stop.Load() && depth > 1 {
			break
		}

		if s.pv.length[0] > 0 {
			bestMove = s.pv.moves[0][0]
		}
		bestScore = score

		if report != nil {
			report(Summary{
				Depth: depth,
				Score: bestScore,
				Nodes: s.nodes,
				Time:  time.Since(s.startTime),
				PV:    s.principalVariation(),
			})
		}

		if s.shouldStopIterating(depth) {
			break
		}
	}

	return bestMove, bestScore
}

func (s *Searcher) shouldStopIterating(depth int) bool {
	if s.limits.Infinite {
		return false
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	if s.limits.MoveTime > 0 && time.Since(s.startTime) >= s.limits.MoveTime {
		return true
	}
	if s.limits.Depth > 0 && depth >= s.limits.Depth {
		return true
	}
	return false
}

// checkTermination polls the stop flag and the caller-supplied time budget
// every CheckTerminationNodes nodes, the cooperative-cancellation boundary
// described by the concurrency model.
func (s *Searcher) checkTermination() bool {
	if s.nodes%s.checkInterval != 0 {
		return false
	}
	if s.stop.Load() {
		return true
	}
	if !s.limits.Infinite && s.limits.MoveTime > 0 && time.Since(s.startTime) >= s.limits.MoveTime {
		s.stop.Store(true)
		return true
	}
	return false
}

// negamax implements negamax alpha-beta search with transposition table
// cutoffs and check extension.
func (s *Searcher) negamax(depth, ply int, alpha, beta int) int {
	s.nodes++
	if s.checkTermination() {
		return 0
	}

	s.pv.length[ply] = ply

	if ply > 0 && s.isDraw() {
		return 0
	}

	var ttMove board.Move
	if entry, ok := s.tt.Probe(s.pos.Hash); ok {
		ttMove = entry.BestMove
		if int(entry.Depth) >= depth {
			score := AdjustScoreFromTT(int(entry.Score), ply)
			switch entry.Bound {
			case Exact:
				return score
			case LowerBound:
				if score > alpha {
					alpha = score
				}
			case UpperBound:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	inCheck := s.pos.InCheck()
	if depth <= 0 && !inCheck {
		return s.quiescence(ply, alpha, beta)
	}
	if inCheck {
		depth++ // check extension: never let a check run out the clock at depth 0
	}

	moves := s.pos.GeneratePseudoLegal(board.AllMoves)
	s.orderer.Score(moves, ttMove)

	bestMove := board.NoMove
	bound := UpperBound
	legalMoves := 0

	for i := 0; i < moves.Len(); i++ {
		move := moves.PickMove(i)

		if !s.pos.Make(move) {
			continue
		}
		legalMoves++

		score := -s.negamax(depth-1, ply+1, -beta, -alpha)

		s.pos.Unmake()

		if s.stop.Load() {
			return 0
		}

		// Fail-high (beta cutoff): this line is at least as good as beta, so
		// the opponent will avoid it. Return beta itself (fail-hard), not
		// the raw child score.
		if score >= beta {
			s.tt.Store(s.pos.Hash, depth, AdjustScoreToTT(beta, ply), LowerBound, move)
			return beta
		}

		if score > alpha {
			alpha = score
			bestMove = move
			bound = Exact

			s.pv.moves[ply][ply] = move
			for j := ply + 1; j < s.pv.length[ply+1]; j++ {
				s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
			}
			s.pv.length[ply] = s.pv.length[ply+1]
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -MateScore + ply
		}
		return 0
	}

	// Fail-low: no move improved alpha, so the fail-hard contract returns
	// and stores the window bound alpha itself, not an internal best score.
	s.tt.Store(s.pos.Hash, depth, AdjustScoreToTT(alpha, ply), bound, bestMove)
	return alpha
}

// quiescence extends the search along capture sequences to avoid the horizon
// effect, with delta pruning and a stand-pat cutoff.
func (s *Searcher) quiescence(ply int, alpha, beta int) int {
	if ply >= MaxPly || ply > maxQuiescencePly {
		return eval.Evaluate(s.pos)
	}
	if s.stop.Load() {
		return 0
	}
	s.nodes++

	standPat := eval.Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if standPat+eval.QueenValue < alpha {
		return alpha
	}

	moves := s.pos.GeneratePseudoLegal(board.CapturesOnly)
	s.orderer.Score(moves, board.NoMove)

	inCheck := s.pos.InCheck()

	for i := 0; i < moves.Len(); i++ {
		move := moves.PickMove(i)

		if !inCheck {
			captureValue := eval.PieceValue[move.CapturedPieceType()]
			if move.IsEnPassant() {
				captureValue = eval.PawnValue
			}
			if move.IsPromotion() {
				captureValue += eval.QueenValue - eval.PawnValue
			}
			if standPat+captureValue+200 < alpha {
				continue
			}
		}

		if !s.pos.Make(move) {
			continue
		}

		score := -s.quiescence(ply+1, -beta, -alpha)

		s.pos.Unmake()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func (s *Searcher) isDraw() bool {
	if s.pos.HalfMoveClock >= 100 {
		return true
	}
	if s.pos.IsInsufficientMaterial() {
		return true
	}
	return s.pos.IsRepetition()
}

func (s *Searcher) principalVariation() []board.Move {
	pv := make([]board.Move, s.pv.length[0])
	copy(pv, s.pv.moves[0][:s.pv.length[0]])
	return pv
}
