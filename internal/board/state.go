package board

// State is a snapshot of everything about a Board that a move touches but
// cannot be cheaply recomputed on Unmake. Make pushes one onto the board's
// history stack before applying a move; Unmake pops it and reverses the move.
type State struct {
	Move           Move
	CapturedPiece  Piece
	CastlingRights CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
	Hash           uint64
	PawnKey        uint64
	Checkers       Bitboard
	MGScore        int
	EGScore        int
	Phase          int
}

// Make applies a pseudo-legal move to the board. It pushes the pre-move
// state onto the history stack, updates the board incrementally (pieces,
// castling rights, en passant, clocks, Zobrist hash), and flips the side to
// move. If the move leaves the mover's own king attacked, Make reverts the
// move via Unmake and returns false; the caller must not call Unmake again
// in that case. Returns true if the move was legal and stays applied.
func (p *Board) Make(m Move) bool {
	snapshot := State{
		Move:           m,
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
		Hash:           p.Hash,
		PawnKey:        p.PawnKey,
		Checkers:       p.Checkers,
		MGScore:        p.MGScore,
		EGScore:        p.EGScore,
		Phase:          p.Phase,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)

	if piece == NoPiece {
		return false
	}
	pt := piece.Type()

	p.Hash ^= p.Zobrist.SideToMove()
	p.Hash ^= p.Zobrist.Castling(p.CastlingRights)

	if p.EnPassant != NoSquare {
		p.Hash ^= p.Zobrist.EnPassant(p.EnPassant.File())
	}
	p.EnPassant = NoSquare

	if m.IsEnPassant() {
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		snapshot.CapturedPiece = p.removePiece(capturedSq)
		p.Hash ^= p.Zobrist.Piece(them, Pawn, capturedSq)
		p.PawnKey ^= p.Zobrist.Piece(them, Pawn, capturedSq)
		p.adjustAccum(them, Pawn, capturedSq, -1)
	} else if captured := p.PieceAt(to); captured != NoPiece {
		snapshot.CapturedPiece = captured
		p.removePiece(to)
		p.Hash ^= p.Zobrist.Piece(them, captured.Type(), to)
		if captured.Type() == Pawn {
			p.PawnKey ^= p.Zobrist.Piece(them, Pawn, to)
		}
		p.adjustAccum(them, captured.Type(), to, -1)
	}

	p.movePiece(from, to)
	p.Hash ^= p.Zobrist.Piece(us, pt, from)
	p.Hash ^= p.Zobrist.Piece(us, pt, to)
	if pt == Pawn {
		p.PawnKey ^= p.Zobrist.Piece(us, Pawn, from)
		p.PawnKey ^= p.Zobrist.Piece(us, Pawn, to)
	}
	p.adjustAccum(us, pt, from, -1)
	p.adjustAccum(us, pt, to, 1)

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promoPt] |= SquareBB(to)
		p.Hash ^= p.Zobrist.Piece(us, Pawn, to)
		p.Hash ^= p.Zobrist.Piece(us, promoPt, to)
		p.PawnKey ^= p.Zobrist.Piece(us, Pawn, to)
		p.adjustAccum(us, Pawn, to, -1)
		p.adjustAccum(us, promoPt, to, 1)
	}

	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= p.Zobrist.Piece(us, Rook, rookFrom)
		p.Hash ^= p.Zobrist.Piece(us, Rook, rookTo)
		p.adjustAccum(us, Rook, rookFrom, -1)
		p.adjustAccum(us, Rook, rookTo, 1)
	}

	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	p.Hash ^= p.Zobrist.Castling(p.CastlingRights)

	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		p.EnPassant = epSquare
		p.Hash ^= p.Zobrist.EnPassant(epSquare.File())
	}

	if pt == Pawn || snapshot.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
	p.UpdateCheckers()

	p.history = append(p.history, snapshot)

	kingSq := p.KingSquare[us]
	if p.AttackersByColor(kingSq, them, p.AllOccupied) != 0 {
		p.Unmake()
		return false
	}

	return true
}

// Unmake reverses the most recent Make call, popping the top of the
// history stack and restoring the board to its pre-move state.
func (p *Board) Unmake() {
	n := len(p.history) - 1
	snapshot := p.history[n]
	p.history = p.history[:n]

	m := snapshot.Move
	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	p.CastlingRights = snapshot.CastlingRights
	p.EnPassant = snapshot.EnPassant
	p.HalfMoveClock = snapshot.HalfMoveClock
	p.FullMoveNumber = snapshot.FullMoveNumber
	p.Hash = snapshot.Hash
	p.PawnKey = snapshot.PawnKey
	p.Checkers = snapshot.Checkers
	p.MGScore = snapshot.MGScore
	p.EGScore = snapshot.EGScore
	p.Phase = snapshot.Phase
	p.SideToMove = us

	if m.IsPromotion() {
		promoPt := m.Promotion()
		p.Pieces[us][promoPt] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(to)
	}

	p.movePiece(to, from)

	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(rookTo, rookFrom)
	}

	if snapshot.CapturedPiece != NoPiece {
		if m.IsEnPassant() {
			var capturedSq Square
			if us == White {
				capturedSq = to - 8
			} else {
				capturedSq = to + 8
			}
			p.setPiece(snapshot.CapturedPiece, capturedSq)
		} else {
			p.setPiece(snapshot.CapturedPiece, to)
		}
	}
}
