package primitives

import "strings"

// MaxWordLength is the widest puzzle this package supports. Wordle itself is 5,
// but nothing in the scoring rules depends on the width.
const MaxWordLength = 25

// Mark is the per-position outcome of comparing one guess letter to the secret.
type Mark uint8

const (
	// Miss means the letter does not occur in the secret (or every occurrence
	// was already consumed by a Hit or an earlier Present).
	Miss Mark = iota
	// Present means the letter occurs in the secret at a different position.
	Present
	// Hit means the letter is in exactly the right position.
	Hit
)

func (m Mark) String() string {
	switch m {
	case Hit:
		return "G"
	case Present:
		return "Y"
	default:
		return "_"
	}
}

// Pattern is the ordered per-position feedback a guess produces against a
// secret. It is a value type and is comparable, so it can key a map directly.
type Pattern struct {
	marks [MaxWordLength]Mark
	n     uint8
}

// MakePattern builds a pattern from explicit marks. Mostly useful in tests.
func MakePattern(marks ...Mark) Pattern {
	if len(marks) > MaxWordLength {
		panic("pattern wider than MaxWordLength")
	}
	var p Pattern
	p.n = uint8(len(marks))
	copy(p.marks[:], marks)
	return p
}

// Len returns the puzzle width the pattern was scored at.
func (p Pattern) Len() int {
	return int(p.n)
}

// At returns the mark at position i.
func (p Pattern) At(i int) Mark {
	return p.marks[i]
}

// AllHit reports whether every position is a Hit, i.e. the guess was the secret.
func (p Pattern) AllHit() bool {
	for i := range int(p.n) {
		if p.marks[i] != Hit {
			return false
		}
	}
	return true
}

// String renders the pattern as one character per position:
// 'G' for a Hit, 'Y' for a Present, '_' for a Miss.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(int(p.n))
	for i := range int(p.n) {
		b.WriteString(p.marks[i].String())
	}
	return b.String()
}

// Score computes the feedback pattern a guess produces against a secret.
//
// The duplicate-letter rule matters: exact matches consume their secret letter
// first, and the remaining guess letters are then matched left to right against
// whatever occurrences of each letter the secret still has unconsumed. A guess
// with two of a letter against a secret holding only one gets exactly one
// Present, on the leftmost non-Hit occurrence, and a Miss on the other.
//
// Both words must be the same length and lowercase a-z; the word-list loader
// guarantees this before any scoring happens.
func Score(guess, secret string) Pattern {
	if len(guess) != len(secret) {
		panic("Score: guess and secret have different lengths")
	}
	if len(guess) > MaxWordLength {
		panic("Score: word wider than MaxWordLength")
	}

	var p Pattern
	p.n = uint8(len(guess))

	// Count the secret letters that are not consumed by exact matches.
	var unconsumed [26]int8
	for i := range len(guess) {
		if guess[i] == secret[i] {
			p.marks[i] = Hit
		} else {
			unconsumed[secret[i]-'a']++
		}
	}

	for i := range len(guess) {
		if p.marks[i] == Hit {
			continue
		}
		c := guess[i] - 'a'
		if unconsumed[c] > 0 {
			p.marks[i] = Present
			unconsumed[c]--
		}
	}

	return p
}
