package engine

import (
	"github.com/dkellner/gothello/internal/board"
)

// SolverSentinelDepth marks a TT entry computed by the exhaustive endgame
// solver rather than the depth-limited heuristic search: its score is
// exact regardless of the depth a heuristic probe requests, so it is
// always usable.
const SolverSentinelDepth = 1 << 30

// TTEntry is a transposition table slot. Unlike a full alpha-beta TT with
// upper/lower bound flags, entries here are always exact scores: the
// simplified design this engine follows stores a result only once its
// full negamax window has been resolved, trading a smaller hit rate for a
// much simpler probe/store contract.
type TTEntry struct {
	black    board.Bitboard // full position, stored for collision verification
	white    board.Bitboard
	toMove   board.Color
	occupied bool

	BestMove board.Square
	Score    int
	Depth    int
}

// TranspositionTable is a Zobrist-hash-indexed cache of exact search
// results, sized to a power of two for fast masking instead of modulo.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a table with roughly sizeMB of entries.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	const entrySize = 40 // approximate TTEntry size in bytes
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up b's exact score. The second return is false on a miss or
// on a hash collision against a different position occupying the slot.
func (tt *TranspositionTable) Probe(b board.Board, hash uint64) (TTEntry, bool) {
	tt.probes++

	idx := hash & tt.mask
	entry := tt.entries[idx]

	if entry.occupied && entry.black == b.Black && entry.white == b.White && entry.toMove == b.ToMove {
		tt.hits++
		return entry, true
	}
	return TTEntry{}, false
}

// Store records an exact score for b at the given search depth. Always
// replaces whatever occupied the slot: with exact-only entries there is no
// notion of "more useful" beyond depth, and a single always-replace policy
// keeps the table simple, matching the simplified design this engine uses.
func (tt *TranspositionTable) Store(b board.Board, hash uint64, depth int, score int, bestMove board.Square) {
	idx := hash & tt.mask
	entry := &tt.entries[idx]

	entry.black = b.Black
	entry.white = b.White
	entry.toMove = b.ToMove
	entry.occupied = true
	entry.BestMove = bestMove
	entry.Score = score
	entry.Depth = depth
}

// Clear empties the table between independent searches (e.g. between
// games), dropping all stale exact entries.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.hits = 0
	tt.probes = 0
}

// HitRate returns the probe hit rate as a percentage, useful for tuning
// table size.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.mask + 1
}
