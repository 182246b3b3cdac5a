package game

// Rand is the slice of math/rand the engine needs. Rooms get their own
// instance so tests can inject deterministic sequences.
type Rand interface {
	Intn(n int) int
}

// letterWeights drives spawn sampling, indexed by letter - 'A'.
var letterWeights = [26]int{
	9,  // A
	2,  // B
	2,  // C
	4,  // D
	12, // E
	2,  // F
	3,  // G
	2,  // H
	9,  // I
	1,  // J
	1,  // K
	4,  // L
	2,  // M
	6,  // N
	8,  // O
	2,  // P
	1,  // Q
	6,  // R
	4,  // S
	6,  // T
	4,  // U
	2,  // V
	2,  // W
	1,  // X
	2,  // Y
	1,  // Z
}

var totalLetterWeight int

func init() {
	for _, w := range letterWeights {
		totalLetterWeight += w
	}
}

// LetterBag produces weighted random letters. The pool never exhausts;
// every draw is independent.
type LetterBag struct {
	rng Rand
}

func NewLetterBag(rng Rand) *LetterBag {
	return &LetterBag{rng: rng}
}

func (b *LetterBag) Sample() byte {
	n := b.rng.Intn(totalLetterWeight)
	for i, w := range letterWeights {
		n -= w
		if n < 0 {
			return byte('A' + i)
		}
	}
	return 'E'
}
