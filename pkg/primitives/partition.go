package primitives

import "github.com/bits-and-blooms/bitset"

// Partition groups a candidate set by the feedback pattern a fixed guess
// would produce against each member. Feedback is a deterministic function of
// (guess, secret), so the buckets are a disjoint covering of the input set:
// every candidate lands in exactly one bucket, and a bucket is never empty.
//
// The input set is never mutated; each bucket is a fresh set over the same
// universe, preserving universe order within the bucket.
func Partition(guess string, candidates CandidateSet) map[Pattern]CandidateSet {
	size := uint(candidates.u.Size())
	buckets := make(map[Pattern]CandidateSet)
	for i, ok := candidates.bits.NextSet(0); ok; i, ok = candidates.bits.NextSet(i + 1) {
		p := Score(guess, candidates.u.words[i])
		bucket, seen := buckets[p]
		if !seen {
			bucket = CandidateSet{u: candidates.u, bits: bitset.New(size)}
			buckets[p] = bucket
		}
		bucket.bits.Set(i)
	}
	return buckets
}

// WorstCase returns the size of the largest Partition bucket for the guess:
// the number of candidates an adversarial secret choice can leave standing.
// It never exceeds the candidate count, and equals it exactly when the guess
// carries no information about the set.
//
// Only the size is needed for ranking, so the buckets themselves are not
// materialized.
func WorstCase(guess string, candidates CandidateSet) int {
	counts := make(map[Pattern]int)
	worst := 0
	for i, ok := candidates.bits.NextSet(0); ok; i, ok = candidates.bits.NextSet(i + 1) {
		p := Score(guess, candidates.u.words[i])
		counts[p]++
		if counts[p] > worst {
			worst = counts[p]
		}
	}
	return worst
}
