package engine

import (
	"github.com/dkellner/gothello/internal/board"
)

// Search constants. MaxPly is sized well above MaxSearchDepth*2: a forced
// pass advances ply but not depth, and game rules guarantee passes never
// chain (the side after a pass always has a real move), so ply can grow
// at most twice as fast as depth.
const (
	Infinity = 30000
	MaxPly   = 128
)

// PVTable stores the principal variation found at each ply.
type PVTable struct {
	length [MaxPly + 1]int
	moves  [MaxPly + 1][MaxPly + 1]board.Square
}

// Searcher performs a synchronous, single-threaded negamax search with
// alpha-beta pruning over a fixed Board. It does not suspend, yield, or
// poll any stop signal mid-node; Engine enforces the overall time budget
// only between iterative-deepening iterations (see engine.go), matching
// this engine's simplified, reentrancy-undefined search contract.
type Searcher struct {
	tt      *TranspositionTable
	orderer *MoveOrderer

	nodes uint64
	pv    PVTable
}

// NewSearcher creates a new searcher sharing the given transposition table.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{
		tt:      tt,
		orderer: NewMoveOrderer(),
	}
}

// Reset clears per-search state ahead of a new root search: node count
// and the killer table. History and the transposition table are not
// touched here — per the engine's design, history survives across
// searches and the transposition table is cleared explicitly by Engine at
// the start of best_move.
func (s *Searcher) Reset() {
	s.nodes = 0
	s.orderer.Clear()
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs a full-window negamax search to depth from b's side to
// move's perspective and returns the best move found along with its score.
func (s *Searcher) Search(b board.Board, depth int) (board.Square, int) {
	return s.SearchWindow(b, depth, -Infinity, Infinity, board.NoSquare)
}

// SearchWindow runs negamax with an explicit aspiration window and an
// optional root move hint (the previous iteration's principal variation).
// A result sitting at the window's edge signals a fail-high/fail-low that
// the caller should re-search with a wider window.
func (s *Searcher) SearchWindow(b board.Board, depth, alpha, beta int, pvHint board.Square) (board.Square, int) {
	score := s.negamax(b, depth, 0, alpha, beta, pvHint)

	bestMove := board.NoSquare
	if s.pv.length[0] > 0 {
		bestMove = s.pv.moves[0][0]
	}
	return bestMove, score
}

// negamax searches b to depth plies from the perspective of b's side to
// move. Once few enough empty squares remain it delegates to the
// exhaustive endgame solver regardless of the remaining depth budget,
// per this engine's automatic heuristic/exact-solve switch.
//
// pvHint is the previous iterative-deepening iteration's principal
// variation move; it is only honored at the root (ply 0), where it names
// an actual prior result. At deeper plies, the transposition table's own
// stored best move (if any) serves the same "try this first" role.
func (s *Searcher) negamax(b board.Board, depth, ply int, alpha, beta int, pvHint board.Square) int {
	if b.EmptySquares().PopCount() <= EmptiesForEndgame {
		return s.solve(b, ply, alpha, beta)
	}

	s.nodes++
	s.pv.length[ply] = ply
	alphaOrig := alpha

	hash := board.Hash(b)
	entry, found := s.tt.Probe(b, hash)
	if found && entry.Depth >= depth {
		return entry.Score
	}

	if depth == 0 {
		return Evaluate(b, b.ToMove)
	}
	if board.IsGameOver(b) {
		return TerminalEvaluate(b, b.ToMove)
	}

	moves := board.LegalMoveList(b)
	if moves.Len() == 0 {
		// Forced pass: not an actual decision point, so it doesn't consume
		// a depth unit.
		return -s.negamax(b.PassTurn(), depth, ply+1, -beta, -alpha, pvHint)
	}

	hint := board.NoSquare
	switch {
	case ply == 0:
		hint = pvHint
	case found:
		hint = entry.BestMove
	}

	scores := s.orderer.ScoreMoves(moves, ply, hint)

	bestScore := -Infinity
	bestMove := board.NoSquare

	for i := 0; i < moves.Len(); i++ {
		PickMove(moves, scores, i)
		sq := moves.Get(i)

		child := board.Apply(b, sq)
		score := -s.negamax(child, depth-1, ply+1, -beta, -alpha, pvHint)

		if score > bestScore {
			bestScore = score
			bestMove = sq

			if score > alpha {
				alpha = score
				s.updatePV(ply, sq)
			}
		}

		if alpha >= beta {
			s.orderer.UpdateKillers(sq, ply)
			s.orderer.UpdateHistory(sq, depth, true)
			break
		}
	}

	if bestScore > alphaOrig && bestScore < beta {
		s.tt.Store(b, hash, depth, bestScore, bestMove)
	}
	return bestScore
}

// solve performs an exhaustive negamax search to the end of the game: no
// depth horizon, no heuristic evaluation, only TerminalEvaluate at
// game-over leaves. Its transposition entries are stamped with
// SolverSentinelDepth and are always exact, usable regardless of the
// depth a later heuristic probe requests.
func (s *Searcher) solve(b board.Board, ply int, alpha, beta int) int {
	s.nodes++
	s.pv.length[ply] = ply
	alphaOrig := alpha

	if board.IsGameOver(b) {
		return TerminalEvaluate(b, b.ToMove)
	}

	hash := board.Hash(b)
	entry, found := s.tt.Probe(b, hash)
	if found && entry.Depth >= SolverSentinelDepth {
		return entry.Score
	}

	moves := board.LegalMoveList(b)
	if moves.Len() == 0 {
		return -s.solve(b.PassTurn(), ply+1, -beta, -alpha)
	}

	hint := board.NoSquare
	if found {
		hint = entry.BestMove
	}
	scores := s.orderer.ScoreMoves(moves, ply, hint)

	// depthProxy stands in for "depth" in the history bonus: remaining
	// empties shrinks monotonically with recursion, same direction as a
	// heuristic search's depth-to-go.
	depthProxy := b.EmptySquares().PopCount()

	bestScore := -Infinity
	bestMove := board.NoSquare

	for i := 0; i < moves.Len(); i++ {
		PickMove(moves, scores, i)
		sq := moves.Get(i)

		child := board.Apply(b, sq)
		score := -s.solve(child, ply+1, -beta, -alpha)

		if score > bestScore {
			bestScore = score
			bestMove = sq

			if score > alpha {
				alpha = score
				s.updatePV(ply, sq)
			}
		}

		if alpha >= beta {
			s.orderer.UpdateKillers(sq, ply)
			s.orderer.UpdateHistory(sq, depthProxy, true)
			break
		}
	}

	if bestScore > alphaOrig && bestScore < beta {
		s.tt.Store(b, hash, SolverSentinelDepth, bestScore, bestMove)
	}
	return bestScore
}

func (s *Searcher) updatePV(ply int, sq board.Square) {
	s.pv.moves[ply][ply] = sq
	for j := ply + 1; j < s.pv.length[ply+1]; j++ {
		s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
	}
	s.pv.length[ply] = s.pv.length[ply+1]
}

// GetPV returns the principal variation found by the most recent search.
func (s *Searcher) GetPV() []board.Square {
	pv := make([]board.Square, s.pv.length[0])
	for i := 0; i < s.pv.length[0]; i++ {
		pv[i] = s.pv.moves[0][i]
	}
	return pv
}
