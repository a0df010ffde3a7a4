// Package engine implements the Othello AI search engine.
package engine

import (
	"github.com/dkellner/gothello/internal/board"
)

// Evaluation term weights — the production tuning.
const (
	MobilityWeight   = 15
	StabilityWeight  = 25
	FrontierWeight   = -8
	PositionalWeight = 1
	CornerWeight     = 120
	XSquarePenalty   = 60
	ParityWeight     = 15
	DiskWeight       = 1
)

// ParityEmpties is the empty-square count below which the parity term
// applies. Distinct from EmptiesForEndgame: parity is a heuristic signal
// usable well before the position is small enough to solve exactly.
const ParityEmpties = 20

// positionWeights is the static positional weight table, indexed
// row-major (A1 = index 0, matching Square numbering).
var positionWeights = [64]int{
	120, -20, 20, 10, 10, 20, -20, 120,
	-20, -40, -5, -5, -5, -5, -40, -20,
	20, -5, 15, 5, 5, 15, -5, 20,
	10, -5, 5, 3, 3, 5, -5, 10,
	10, -5, 5, 3, 3, 5, -5, 10,
	20, -5, 15, 5, 5, 15, -5, 20,
	-20, -40, -5, -5, -5, -5, -40, -20,
	120, -20, 20, 10, 10, 20, -20, 120,
}

// EmptiesForEndgame is the number of empty squares at or below which the
// engine switches from heuristic search to the perfect endgame solver.
const EmptiesForEndgame = 15

// disksOf returns the bitboard of perspective's disks and the opponent's.
func disksOf(b board.Board, perspective board.Color) (own, opp board.Bitboard) {
	if perspective == board.Black {
		return b.Black, b.White
	}
	return b.White, b.Black
}

// movesFor returns the legal-move count for color c on b, regardless of
// whose turn it actually is, by evaluating the move mask as if c were to
// move next (the disks on the board don't change — only side-to-move does).
func movesFor(b board.Board, c board.Color) int {
	bb := b
	bb.ToMove = c
	return board.LegalMoves(bb).PopCount()
}

// Evaluate returns a heuristic score for b from perspective's point of
// view: positive favors perspective, negative favors the opponent. Sums
// mobility, stability, frontier-disk count, positional weighting, corner
// occupancy, X-square occupancy, (near the endgame) disk parity, and the
// disk differential.
func Evaluate(b board.Board, perspective board.Color) int {
	own, opp := disksOf(b, perspective)
	opponent := perspective.Other()

	score := 0

	ownMoves := movesFor(b, perspective)
	oppMoves := movesFor(b, opponent)
	score += MobilityWeight * (ownMoves - oppMoves)

	ownStable := stableDisks(own, opp)
	oppStable := stableDisks(opp, own)
	score += StabilityWeight * (ownStable.PopCount() - oppStable.PopCount())

	empty := b.EmptySquares()
	ownFrontier := frontierDisks(own, empty)
	oppFrontier := frontierDisks(opp, empty)
	score += FrontierWeight * (ownFrontier.PopCount() - oppFrontier.PopCount())

	score += PositionalWeight * (positionalScore(own) - positionalScore(opp))

	score += CornerWeight * ((own & board.Corners).PopCount() - (opp & board.Corners).PopCount())

	score += xSquareScore(own, opp)

	empties := empty.PopCount()
	if empties < ParityEmpties && empties%2 == 1 {
		if b.ToMove == perspective {
			score += ParityWeight
		} else {
			score -= ParityWeight
		}
	}

	score += DiskWeight * (own.PopCount() - opp.PopCount())

	return score
}

// TerminalEvaluate scores a completed game exactly, from perspective's
// point of view: a large win/loss value plus the disk differential, so
// winning by a wider margin is still preferred among winning lines.
func TerminalEvaluate(b board.Board, perspective board.Color) int {
	own, opp := disksOf(b, perspective)
	diff := own.PopCount() - opp.PopCount()

	const winScore = 10000
	switch {
	case diff > 0:
		return winScore + diff
	case diff < 0:
		return -winScore + diff
	default:
		return 0
	}
}

func positionalScore(disks board.Bitboard) int {
	sum := 0
	for disks != 0 {
		sq := disks.PopLSB()
		sum += positionWeights[sq]
	}
	return sum
}

// stableDisks approximates the set of own disks that can never be flipped,
// seeding from corners (always stable, if occupied) and propagating
// stability to neighbors along each of the 8 directions: a disk is stable
// if its neighbor one step back in some direction is both own and stable.
// This under-approximates true stability (it misses edges stabilized by
// full-line occupation) but is a standard, cheap approximation, capped at
// 10 passes.
func stableDisks(own, opp board.Bitboard) board.Bitboard {
	stable := own & board.Corners
	for pass := 0; pass < 10; pass++ {
		next := stable
		for _, shift := range board.Directions {
			next |= shift(stable) & own
		}
		if next == stable {
			break
		}
		stable = next
	}
	return stable
}

// frontierDisks returns the own disks adjacent to at least one empty
// square in any of the 8 directions. Frontier disks are exposed to being
// flipped and are generally a liability.
func frontierDisks(own, empty board.Bitboard) board.Bitboard {
	var adjacentToEmpty board.Bitboard
	for _, shift := range board.Directions {
		adjacentToEmpty |= shift(empty)
	}
	return own & adjacentToEmpty
}

// xSquareScore penalizes occupying an X-square (diagonally adjacent to a
// corner) while that corner is still open, since it commonly hands the
// corner to the opponent; the same penalty on the opponent's X-squares is
// added back, since an opponent mistake favors this perspective.
func xSquareScore(own, opp board.Bitboard) int {
	score := 0
	for xsq, corner := range board.CornerOf {
		if (own | opp)&board.SquareBB(corner) != 0 {
			continue
		}
		if own.IsSet(xsq) {
			score -= XSquarePenalty
		}
		if opp.IsSet(xsq) {
			score += XSquarePenalty
		}
	}
	return score
}
