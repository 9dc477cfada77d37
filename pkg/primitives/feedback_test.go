package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mM = Miss
	mP = Present
	mH = Hit
)

func checkScore(t *testing.T, guess, secret string, want ...Mark) {
	t.Helper()
	got := Score(guess, secret)
	require.Equal(t, len(guess), got.Len())
	assert.Equal(t, MakePattern(want...), got, "Score(%q, %q) = %s", guess, secret, got)
}

func TestScoreSimpleHit(t *testing.T) {
	checkScore(t, "weary", "wills", mH, mM, mM, mM, mM)
}

func TestScoreSimplePresent(t *testing.T) {
	checkScore(t, "pilot", "leaks", mM, mM, mP, mM, mM)
}

func TestScoreDoublePresent(t *testing.T) {
	checkScore(t, "kazoo", "tools", mM, mM, mM, mP, mP)
}

func TestScoreHitConsumesBeforePresent(t *testing.T) {
	// Letters are used up by exact matches: the secret's two o-adjacent
	// letters leave nothing for the guess's extra 'o' and 's'.
	checkScore(t, "loose", "chore", mM, mM, mH, mM, mH)
}

func TestScorePresentConsumesBeforePresent(t *testing.T) {
	// Letters are used up by inexact matches too, so only one 'o' matches.
	checkScore(t, "spoon", "coats", mP, mM, mP, mM, mM)
}

func TestScoreExactGuess(t *testing.T) {
	checkScore(t, "prize", "prize", mH, mH, mH, mH, mH)
}

func TestScoreDuplicateLetters(t *testing.T) {
	// Hand-built duplicate scenarios. An implementation that scores letters
	// independently per position marks both duplicates Present in each of
	// these; the multiset-consumption rule marks only the leftmost eligible
	// occurrence.
	tests := []struct {
		name          string
		guess, secret string
		want          []Mark
	}{
		{
			// Two e's in the guess, one e in the secret: leftmost wins.
			name: "one of two duplicates matches",
			guess: "speed", secret: "abide",
			want: []Mark{mM, mM, mP, mM, mP},
		},
		{
			// The position-0 hit consumes the secret's only 'a'; the guess's
			// remaining a's get nothing.
			name: "hit consumes the only occurrence",
			guess: "aabaa", secret: "axxxx",
			want: []Mark{mH, mM, mM, mM, mM},
		},
		{
			// Secret holds two unconsumed a's; the guess's three non-hit a's
			// use them up left to right.
			name: "two of three duplicates match",
			guess: "abcaa", secret: "aaaxy",
			want: []Mark{mH, mM, mM, mP, mP},
		},
		{
			// A hit on the second 'e' still consumes before the first 'e' is
			// considered for Present.
			name: "later hit consumes before earlier present",
			guess: "eexyz", secret: "qeqxq",
			want: []Mark{mM, mH, mP, mM, mM},
		},
		{
			// Four a's in the guess against three in the secret: two hits,
			// one present, and the last 'a' finds nothing left.
			name: "duplicates split across hit and present",
			guess: "aazaa", secret: "aaaqq",
			want: []Mark{mH, mH, mM, mP, mM},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkScore(t, tc.guess, tc.secret, tc.want...)
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	pairs := [][2]string{
		{"weary", "wills"},
		{"speed", "abide"},
		{"kazoo", "tools"},
		{"aaqaz", "aaaaa"},
	}
	for _, pair := range pairs {
		first := Score(pair[0], pair[1])
		for range 10 {
			assert.Equal(t, first, Score(pair[0], pair[1]))
		}
	}
}

func TestScoreVariableWidth(t *testing.T) {
	checkScore(t, "ab", "ba", mP, mP)
	checkScore(t, "abc", "abc", mH, mH, mH)
}

func TestScoreLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Score("abcde", "abc") })
}

func TestPatternAllHit(t *testing.T) {
	assert.True(t, Score("prize", "prize").AllHit())
	assert.False(t, Score("prize", "pride").AllHit())
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "Y_Y__", Score("spoon", "coats").String())
	assert.Equal(t, "GGGGG", Score("prize", "prize").String())
}
