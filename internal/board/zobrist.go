package board

// Zobrist hash keys for position hashing. Since a Board is a cheap value
// type (two bitboards plus a side flag) the hash is recomputed from
// scratch on each call rather than maintained incrementally.
// Uses a PRNG with a fixed seed for reproducibility.
var (
	zobristBlack      [64]uint64
	zobristWhite      [64]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for sq := A1; sq <= H8; sq++ {
		zobristBlack[sq] = rng.next()
		zobristWhite[sq] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash returns a 64-bit Zobrist fingerprint of the position, XORing in a
// key per occupied square plus the side-to-move key. Collisions are
// possible in principle; TranspositionTable guards against them by storing
// the full (black, white, side) tuple alongside the entry and verifying it
// on probe (see transposition.go in the engine package).
func Hash(b Board) uint64 {
	var h uint64

	black := b.Black
	for black != 0 {
		h ^= zobristBlack[black.PopLSB()]
	}

	white := b.White
	for white != 0 {
		h ^= zobristWhite[white.PopLSB()]
	}

	if b.ToMove == Black {
		h ^= zobristSideToMove
	}

	return h
}
