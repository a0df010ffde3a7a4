package board

// MoveList is a fixed-size list of candidate squares, avoiding allocation
// in the search hot path. A "move" in Othello is just the square a disk is
// placed on.
type MoveList struct {
	moves [64]Square
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a square to the list.
func (ml *MoveList) Add(sq Square) {
	ml.moves[ml.count] = sq
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Square {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether sq is present in the list.
func (ml *MoveList) Contains(sq Square) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == sq {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Square {
	return ml.moves[:ml.count]
}

// LegalMoveList returns the legal moves for b as a MoveList, in ascending
// square order.
func LegalMoveList(b Board) *MoveList {
	ml := NewMoveList()
	mask := LegalMoves(b)
	for mask != 0 {
		ml.Add(mask.PopLSB())
	}
	return ml
}
