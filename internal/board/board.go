package board

// Board is the Othello position: a bitboard pair plus the side to move.
// It is a pure value type — every move-producing operation returns a new
// Board rather than mutating the receiver.
type Board struct {
	Black  Bitboard
	White  Bitboard
	ToMove Color
}

// Initial returns the standard Othello starting position: D4/E5 white,
// E4/D5 black, Black to move.
func Initial() Board {
	white := SquareBB(D4) | SquareBB(E5)
	black := SquareBB(E4) | SquareBB(D5)
	return Board{Black: black, White: white, ToMove: Black}
}

// NewBoard builds a Board from explicit bitboards and side to move.
// The caller is responsible for the invariant black&white == 0.
func NewBoard(black, white Bitboard, side Color) Board {
	return Board{Black: black, White: white, ToMove: side}
}

// Occupied returns the union of both colors' disks.
func (b Board) Occupied() Bitboard {
	return b.Black | b.White
}

// EmptySquares returns the bitboard of unoccupied squares.
func (b Board) EmptySquares() Bitboard {
	return ^b.Occupied()
}

// PieceAt returns the color occupying a square, or NoColor if empty.
func (b Board) PieceAt(sq Square) Color {
	mask := SquareBB(sq)
	switch {
	case b.Black&mask != 0:
		return Black
	case b.White&mask != 0:
		return White
	default:
		return NoColor
	}
}

// sides returns (own, opponent) bitboards for the side to move.
func (b Board) sides() (own, opp Bitboard) {
	if b.ToMove == Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// withSides rebuilds a Board given new own/opp bitboards for the current
// side to move, keeping the mover assignment consistent.
func (b Board) withSides(own, opp Bitboard) Board {
	if b.ToMove == Black {
		return Board{Black: own, White: opp, ToMove: b.ToMove}
	}
	return Board{Black: opp, White: own, ToMove: b.ToMove}
}

// PassTurn returns a Board with the same disks and the opposite side to
// move. Used when the side to move has no legal placements.
func (b Board) PassTurn() Board {
	return Board{Black: b.Black, White: b.White, ToMove: b.ToMove.Other()}
}

// Winner returns the side with more disks, or (NoColor, false) on a tie.
// Only meaningful once IsGameOver(b) is true.
func Winner(b Board) (Color, bool) {
	diff := b.Black.PopCount() - b.White.PopCount()
	switch {
	case diff > 0:
		return Black, true
	case diff < 0:
		return White, true
	default:
		return NoColor, false
	}
}
