package engine

import (
	"github.com/dkellner/gothello/internal/board"
)

// Move ordering priorities, highest first: move hint (the previous
// iteration's principal variation at the root, or the TT-stored best move
// at deeper nodes), corners, killers, history (descending), with
// X-squares always ranked last regardless of their history score.
const (
	MoveHintScore = 10000000
	CornerScore   = 1000000
	KillerScore1  = 900000
	KillerScore2  = 800000

	// historyFloor bounds UpdateHistory's range; xSquareOrderLow sits below it
	// so an X-square move is never preferred over a "regular" move no
	// matter how bad that regular move's history score has become.
	historyFloor    = -400000
	xSquareOrderLow = historyFloor - 1
)

// MoveOrderer ranks candidate squares at each node so alpha-beta sees the
// most promising moves first, maximizing cutoffs. Othello has no captures
// to rank by victim value, so ordering rests on move-type signals instead
// of MVV-LVA: a move hint, corner placements, killer moves, the history
// heuristic, and a standing penalty for X-squares.
type MoveOrderer struct {
	killers [MaxPly][2]board.Square
	history [64]int
}

// NewMoveOrderer creates a new move orderer.
func NewMoveOrderer() *MoveOrderer {
	return &MoveOrderer{}
}

// Clear resets the killer table for a new search. History persists across
// searches (the caller may reset it explicitly) and is only ever aged
// internally by UpdateHistory to prevent overflow.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = board.NoSquare
		mo.killers[i][1] = board.NoSquare
	}
}

// ScoreMoves assigns an ordering score to each candidate square. hint is
// the move to prefer above all others at this node (empty/NoSquare if
// none applies).
func (mo *MoveOrderer) ScoreMoves(moves *board.MoveList, ply int, hint board.Square) []int {
	scores := make([]int, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		scores[i] = mo.scoreMove(moves.Get(i), ply, hint)
	}
	return scores
}

func (mo *MoveOrderer) scoreMove(sq board.Square, ply int, hint board.Square) int {
	switch {
	case sq == hint:
		return MoveHintScore
	case board.Corners.IsSet(sq):
		return CornerScore
	case ply < MaxPly && sq == mo.killers[ply][0]:
		return KillerScore1
	case ply < MaxPly && sq == mo.killers[ply][1]:
		return KillerScore2
	case board.XSquares.IsSet(sq):
		return xSquareOrderLow
	default:
		return mo.history[sq]
	}
}

// PickMove selects the best-scoring remaining move and swaps it to index,
// enabling lazy selection-sort style ordering without sorting moves that
// end up pruned before they're needed.
func PickMove(moves *board.MoveList, scores []int, index int) {
	best := index
	for j := index + 1; j < moves.Len(); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves.Swap(index, best)
		scores[index], scores[best] = scores[best], scores[index]
	}
}

// UpdateKillers records a move that caused a beta cutoff at ply, keeping
// the two most recent distinct killers.
func (mo *MoveOrderer) UpdateKillers(sq board.Square, ply int) {
	if ply >= MaxPly || mo.killers[ply][0] == sq {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = sq
}

// UpdateHistory adjusts the history score for a move that caused (or failed
// to cause) a cutoff, weighted by depth squared as is standard practice.
func (mo *MoveOrderer) UpdateHistory(sq board.Square, depth int, isGood bool) {
	bonus := depth * depth
	if isGood {
		mo.history[sq] += bonus
		if mo.history[sq] > -historyFloor {
			for i := range mo.history {
				mo.history[i] /= 2
			}
		}
	} else {
		mo.history[sq] -= bonus
		if mo.history[sq] < historyFloor {
			mo.history[sq] = historyFloor
		}
	}
}
