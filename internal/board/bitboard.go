package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (row-major mapping).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = 0x8080808080808080
)

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// NotFileA and NotFileH exclude the wrap-around file after an
	// east/west-ish shift; see the direction helpers below.
	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH

	// Corners returns the four corner squares (A1, H1, A8, H8) — the only
	// squares that can never be flipped once occupied.
	Corners Bitboard = (1 << A1) | (1 << H1) | (1 << A8) | (1 << H8)

	// XSquares returns the four squares diagonally adjacent to a corner
	// (B2, G2, B7, G7) — risky to occupy while the adjacent corner is empty.
	XSquares Bitboard = (1 << B2) | (1 << G2) | (1 << B7) | (1 << G7)
)

// CornerOf maps each X-square to its adjacent corner.
var CornerOf = map[Square]Square{
	B2: A1,
	G2: H1,
	B7: A8,
	G7: H8,
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1 // Clear the LSB
	return sq
}

// More returns true if there are any bits set.
func (b Bitboard) More() bool {
	return b != 0
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Direction shift helpers. Each masks away the wrap-around file/rank so a
// ray started near an edge dies instead of reappearing on the other side.

func shiftNorth(b Bitboard) Bitboard { return b << 8 }
func shiftSouth(b Bitboard) Bitboard { return b >> 8 }
func shiftEast(b Bitboard) Bitboard  { return (b << 1) & NotFileA }
func shiftWest(b Bitboard) Bitboard  { return (b >> 1) & NotFileH }
func shiftNE(b Bitboard) Bitboard    { return (b << 9) & NotFileA }
func shiftNW(b Bitboard) Bitboard    { return (b << 7) & NotFileH }
func shiftSE(b Bitboard) Bitboard    { return (b >> 7) & NotFileA }
func shiftSW(b Bitboard) Bitboard    { return (b >> 9) & NotFileH }

// directions lists the eight ray directions in the order spec.md uses:
// N, NE, E, SE, S, SW, W, NW.
var directions = [8]func(Bitboard) Bitboard{
	shiftNorth, shiftNE, shiftEast, shiftSE,
	shiftSouth, shiftSW, shiftWest, shiftNW,
}

// Directions exposes the eight ray-shift functions for use outside the
// package (evaluation terms in package engine walk the same rays that move
// generation does).
var Directions = directions

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if b.IsSet(sq) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// Squares returns a slice of all squares that are set, ascending.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
