package primitives

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Universe is the fixed, immutable collection of words a puzzle is played
// over. It is built once before any search starts and shared read-only by
// every search worker, so no locking is ever needed on it.
//
// Word order inside the universe is the order the words were loaded in; every
// CandidateSet derived from the universe preserves that order.
type Universe struct {
	words []string
	index map[string]int
	width int
}

// NewUniverse builds a universe from an already-normalized word list.
// All words must share one width; duplicates are rejected rather than
// silently dropped so a sloppy loader is caught early.
func NewUniverse(words []string) (*Universe, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("universe must contain at least one word")
	}
	width := len(words[0])
	if width == 0 || width > MaxWordLength {
		return nil, fmt.Errorf("word width %d out of range [1, %d]", width, MaxWordLength)
	}

	u := &Universe{
		words: words,
		index: make(map[string]int, len(words)),
		width: width,
	}
	for i, w := range words {
		if len(w) != width {
			return nil, fmt.Errorf("word %q has length %d, want %d", w, len(w), width)
		}
		if _, dup := u.index[w]; dup {
			return nil, fmt.Errorf("duplicate word %q", w)
		}
		u.index[w] = i
	}
	return u, nil
}

// Width returns the puzzle width (the shared length of every word).
func (u *Universe) Width() int {
	return u.width
}

// Size returns the number of words in the universe.
func (u *Universe) Size() int {
	return len(u.words)
}

// Words returns the universe's words in load order. Callers must not mutate
// the returned slice.
func (u *Universe) Words() []string {
	return u.words
}

// Full returns the candidate set containing every word in the universe.
func (u *Universe) Full() CandidateSet {
	bits := bitset.New(uint(len(u.words))).Complement()
	return CandidateSet{u: u, bits: bits}
}

// CandidateSet is a subset of a universe's words, the secrets still consistent
// with all feedback observed so far. Sets only ever shrink: each one is an
// immutable value and new, smaller sets are derived from it by Partition.
//
// Internally a set is a bitset over the universe's word indices, so deriving,
// comparing and canonically keying a set never copies word strings around.
type CandidateSet struct {
	u    *Universe
	bits *bitset.BitSet
}

// Count returns the number of candidates in the set.
func (c CandidateSet) Count() int {
	return int(c.bits.Count())
}

// Contains reports whether word is in the set.
func (c CandidateSet) Contains(word string) bool {
	i, ok := c.u.index[word]
	return ok && c.bits.Test(uint(i))
}

// Sole returns the set's only word. It panics unless Count() == 1; callers
// only reach for it after the search has narrowed a frame to one candidate.
func (c CandidateSet) Sole() string {
	if c.Count() != 1 {
		panic(fmt.Sprintf("Sole called on a set of %d candidates", c.Count()))
	}
	i, _ := c.bits.NextSet(0)
	return c.u.words[i]
}

// Words materializes the set's candidates in universe order.
func (c CandidateSet) Words() []string {
	out := make([]string, 0, c.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, c.u.words[i])
	}
	return out
}

// Iterate yields the set's candidates in universe order without allocating
// the whole slice.
func (c CandidateSet) Iterate() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
			if !yield(c.u.words[i]) {
				return
			}
		}
	}
}

// Equal reports whether two sets over the same universe hold the same words.
func (c CandidateSet) Equal(other CandidateSet) bool {
	return c.u == other.u && c.bits.Equal(other.bits)
}

// Key returns a canonical byte-string for the set, suitable as a memo-cache
// key. Two sets over the same universe produce the same key iff they hold the
// same words, regardless of the guess history that produced them.
func (c CandidateSet) Key() string {
	raw := c.bits.Bytes()
	buf := make([]byte, 8*len(raw))
	for i, w := range raw {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

func (c CandidateSet) String() string {
	return fmt.Sprintf("CandidateSet(%d of %d)", c.Count(), c.u.Size())
}
