package engine

import (
	"log"
	"time"

	"github.com/dkellner/gothello/internal/board"
)

// MaxSearchDepth bounds the iterative-deepening loop; reaching it without
// exhausting the time budget simply stops the search, since no realistic
// Othello position needs a deeper heuristic search than this.
const MaxSearchDepth = 50

// SearchInfo reports progress of a single iterative-deepening iteration,
// for callers that want to display a live principal variation.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Square
}

// MoveResult is the outcome of a best_move search: the chosen move (or
// board.NoSquare if none was available), its score from the mover's
// perspective, and the depth the search reached.
type MoveResult struct {
	Move  board.Square
	Score int
	Depth int
}

// Engine drives a single-threaded iterative-deepening negamax search over
// Board values. It never suspends or yields mid-search: the time budget is
// enforced only between completed iterations. A single BestMove call is
// atomic from the caller's perspective; calling Engine methods
// concurrently with an in-flight search, or on the same Engine from
// multiple goroutines, is undefined.
type Engine struct {
	tt       *TranspositionTable
	searcher *Searcher

	// OnInfo, if set, is called after each completed iterative-deepening
	// iteration with that iteration's result.
	OnInfo func(SearchInfo)
}

// NewEngine creates an Engine with a transposition table sized at ttSizeMB
// megabytes.
func NewEngine(ttSizeMB int) *Engine {
	tt := NewTranspositionTable(ttSizeMB)
	log.Printf("[engine] transposition table sized for %d entries", tt.Size())

	return &Engine{
		tt:       tt,
		searcher: NewSearcher(tt),
	}
}

// Reset clears the transposition table and the move-ordering history,
// typically between unrelated games. History otherwise survives across
// BestMove calls within the same game by design (see BestMove).
func (e *Engine) Reset() {
	e.tt.Clear()
	e.searcher.Reset()
	e.searcher.orderer.history = [64]int{}
}

// Evaluate returns the static heuristic evaluation of b from perspective's
// point of view, without searching.
func (e *Engine) Evaluate(b board.Board, perspective board.Color) int {
	return Evaluate(b, perspective)
}

// BestMove searches b for at most timeLimitSeconds and returns the best
// move found, its score from the side-to-move's perspective, and the
// depth the search reached. Returns a zero MoveResult with Move ==
// board.NoSquare if b has no legal moves.
//
// If exactly one legal move exists, it is returned immediately with score
// 0 and depth 0 — no search is needed. Otherwise the engine runs
// iterative deepening from depth 1, narrowing alpha-beta's window to
// (best_score-50, best_score+50) once depth exceeds 2 and re-searching
// once with a half-open window on a fail-high or fail-low. Once the number of
// empty squares drops to EmptiesForEndgame or below, the search
// automatically switches to an exhaustive solve to the end of the game
// (see Searcher.solve); this happens inside negamax itself; it is not a
// special case in this loop. The time budget is checked only between
// iterations, never inside a node: a started iteration always runs to
// completion.
func (e *Engine) BestMove(b board.Board, timeLimitSeconds float64) MoveResult {
	moves := board.LegalMoveList(b)
	if moves.Len() == 0 {
		return MoveResult{Move: board.NoSquare}
	}
	if moves.Len() == 1 {
		return MoveResult{Move: moves.Get(0), Score: 0, Depth: 0}
	}

	e.tt.Clear()
	e.searcher.Reset()

	startTime := time.Now()
	timeLimit := time.Duration(timeLimitSeconds * float64(time.Second))

	bestMove := moves.Get(0)
	bestScore := 0
	depthReached := 0
	pvHint := board.NoSquare

	const aspirationWindow = 50

	for depth := 1; ; depth++ {
		if time.Since(startTime) >= timeLimit && depth > 1 {
			break
		}

		var move board.Square
		var score int

		if depth <= 2 {
			move, score = e.searcher.SearchWindow(b, depth, -Infinity, Infinity, pvHint)
		} else {
			alpha := bestScore - aspirationWindow
			beta := bestScore + aspirationWindow
			move, score = e.searcher.SearchWindow(b, depth, alpha, beta, pvHint)

			if score <= alpha {
				move, score = e.searcher.SearchWindow(b, depth, -Infinity, beta, pvHint)
			} else if score >= beta {
				move, score = e.searcher.SearchWindow(b, depth, alpha, Infinity, pvHint)
			}
		}

		if move != board.NoSquare {
			bestMove = move
			bestScore = score
			pvHint = move
			depthReached = depth
		}

		if e.OnInfo != nil {
			e.OnInfo(SearchInfo{
				Depth: depth,
				Score: bestScore,
				Nodes: e.searcher.Nodes(),
				Time:  time.Since(startTime),
				PV:    e.searcher.GetPV(),
			})
		}

		if time.Since(startTime) >= timeLimit {
			break
		}
		if depth+1 > MaxSearchDepth {
			break
		}
	}

	return MoveResult{Move: bestMove, Score: bestScore, Depth: depthReached}
}
