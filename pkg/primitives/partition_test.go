package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionCoversExactlyOnce(t *testing.T) {
	u := mustUniverse(t, "crane", "slate", "crate", "trace", "adieu", "query")
	full := u.Full()

	for _, guess := range u.Words() {
		buckets := Partition(guess, full)

		seen := make(map[string]int)
		total := 0
		for pattern, bucket := range buckets {
			require.Positive(t, bucket.Count(), "empty bucket for %s", pattern)
			total += bucket.Count()
			for w := range bucket.Iterate() {
				seen[w]++
				assert.Equal(t, pattern, Score(guess, w), "candidate in wrong bucket")
			}
		}

		assert.Equal(t, full.Count(), total)
		for _, w := range u.Words() {
			assert.Equal(t, 1, seen[w], "candidate %q must fall into exactly one bucket", w)
		}
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	u := mustUniverse(t, "aa", "ab", "bb")
	full := u.Full()
	Partition("aa", full)
	assert.Equal(t, 3, full.Count())
}

func TestPartitionSelfGuessIsolatesAllHit(t *testing.T) {
	u := mustUniverse(t, "crane", "slate", "crate")
	buckets := Partition("crane", u.Full())

	allHit := Score("crane", "crane")
	require.True(t, allHit.AllHit())
	bucket, ok := buckets[allHit]
	require.True(t, ok)
	assert.Equal(t, 1, bucket.Count())
	assert.Equal(t, "crane", bucket.Sole())
}

func TestWorstCaseMatchesLargestBucket(t *testing.T) {
	u := mustUniverse(t, "crane", "slate", "crate", "trace", "adieu")
	full := u.Full()

	for _, guess := range append(u.Words(), "query", "zzzzz") {
		largest := 0
		for _, bucket := range Partition(guess, full) {
			if bucket.Count() > largest {
				largest = bucket.Count()
			}
		}
		got := WorstCase(guess, full)
		assert.Equal(t, largest, got, "guess %q", guess)
		assert.LessOrEqual(t, got, full.Count())
	}
}

func TestWorstCaseUninformativeGuess(t *testing.T) {
	// Every candidate shares no letters with the guess, so the adversary
	// keeps the entire set.
	u := mustUniverse(t, "aaaaa", "bbbbb", "ababa")
	assert.Equal(t, 3, WorstCase("zzzzz", u.Full()))
}
