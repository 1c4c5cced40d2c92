package board

import "fmt"

// Move encodes a chess move plus its move-ordering sort score.
//
// bits is packed as:
//
//	bits 0-5:   from square (0-63)
//	bits 6-11:  to square (0-63)
//	bits 12-14: moving piece type
//	bits 15-17: captured piece type (NoPieceType if none)
//	bits 18-20: promoted piece type (NoPieceType if none)
//	bit  21:    en passant flag
//	bit  22:    pawn double-push flag
//	bit  23:    castling flag
//
// Score is filled in by move ordering and is not part of move identity:
// two Moves with equal bits but different Score still compare equal via Equal.
type Move struct {
	bits  uint32
	Score int16
}

const (
	mFromShift      = 0
	mToShift        = 6
	mPieceShift     = 12
	mCapturedShift  = 15
	mPromotedShift  = 18
	mFlagEnPassant  = 1 << 21
	mFlagDoubleStep = 1 << 22
	mFlagCastling   = 1 << 23

	mSquareMask = 0x3F
	mTypeMask   = 0x7
)

// NoMove represents an invalid or null move.
var NoMove = Move{}

func pack(piece PieceType, from, to Square, captured, promoted PieceType, flags uint32) Move {
	bits := uint32(from)&mSquareMask<<mFromShift | uint32(to)&mSquareMask<<mToShift
	bits |= uint32(piece)&mTypeMask << mPieceShift
	bits |= uint32(captured)&mTypeMask << mCapturedShift
	bits |= uint32(promoted)&mTypeMask << mPromotedShift
	bits |= flags
	return Move{bits: bits}
}

// NewMove creates a quiet or capturing move.
func NewMove(piece PieceType, from, to Square, captured PieceType) Move {
	return pack(piece, from, to, captured, NoPieceType, 0)
}

// NewDoublePawnPush creates a two-square pawn advance, flagged for en passant eligibility.
func NewDoublePawnPush(piece PieceType, from, to Square) Move {
	return pack(piece, from, to, NoPieceType, NoPieceType, mFlagDoubleStep)
}

// NewPromotion creates a promotion move, optionally with a capture.
func NewPromotion(piece PieceType, from, to Square, captured, promoted PieceType) Move {
	return pack(piece, from, to, captured, promoted, 0)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(piece PieceType, from, to Square) Move {
	return pack(piece, from, to, Pawn, NoPieceType, mFlagEnPassant)
}

// NewCastling creates a castling move (king's movement only).
func NewCastling(piece PieceType, from, to Square) Move {
	return pack(piece, from, to, NoPieceType, NoPieceType, mFlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m.bits >> mFromShift & mSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m.bits >> mToShift & mSquareMask)
}

// Piece returns the type of the piece making the move.
func (m Move) Piece() PieceType {
	return PieceType(m.bits >> mPieceShift & mTypeMask)
}

// CapturedPieceType returns the type of the captured piece, or NoPieceType if none.
func (m Move) CapturedPieceType() PieceType {
	return PieceType(m.bits >> mCapturedShift & mTypeMask)
}

// Promotion returns the promoted-to piece type (only valid if IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType(m.bits >> mPromotedShift & mTypeMask)
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType && m.Promotion() != Pawn
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.bits&mFlagCastling != 0
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.bits&mFlagEnPassant != 0
}

// IsDoublePawnPush returns true if this is a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.bits&mFlagDoubleStep != 0
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.IsEnPassant() || m.CapturedPieceType() != NoPieceType
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// Equal compares move identity, ignoring Score.
func (m Move) Equal(other Move) bool {
	return m.bits == other.bits
}

// IsNone reports whether m is the null move.
func (m Move) IsNone() bool {
	return m.bits == 0
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Promotion()])
	}

	return s
}

// ParseMove parses a UCI format move string against the position to resolve
// piece identity and special-move flags.
func ParseMove(s string, pos *Board) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()

	captured := NoPieceType
	if occ := pos.PieceAt(to); occ != NoPiece {
		captured = occ.Type()
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(pt, from, to, captured, promo), nil
	}

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(pt, from, to), nil
	}

	if pt == Pawn && to == pos.EnPassant {
		return NewEnPassant(pt, from, to), nil
	}

	if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		return NewDoublePawnPush(pt, from, to), nil
	}

	return NewMove(pt, from, to, captured), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move (ignoring Score).
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i].Equal(m) {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// PickMove selects the highest-scoring move from index i onward and swaps it
// into position i, implementing selection-sort style incremental move ordering.
func (ml *MoveList) PickMove(i int) Move {
	best := i
	for j := i + 1; j < ml.count; j++ {
		if ml.moves[j].Score > ml.moves[best].Score {
			best = j
		}
	}
	ml.Swap(i, best)
	return ml.moves[i]
}
