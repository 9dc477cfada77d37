package bound

import (
	"fmt"
	"slices"
	"strings"

	"crosswarped.com/wordlebound/pkg/primitives"
)

// DecisionTree is a complete guaranteed strategy: submit Guess, then follow
// the branch keyed by the feedback received. A node with no branches is a
// final submission, the guess that is the secret itself.
//
// The all-Hit pattern never appears as a branch key: that feedback means the
// node's own guess was the secret and play stops there.
type DecisionTree struct {
	Guess    string
	Branches map[primitives.Pattern]*DecisionTree
}

// Depth returns the maximum number of submissions the strategy can take.
func (t *DecisionTree) Depth() int {
	depth := 1
	for _, sub := range t.Branches {
		if d := 1 + sub.Depth(); d > depth {
			depth = d
		}
	}
	return depth
}

// Leaves counts the final submissions in the tree, one per secret the
// strategy distinguishes by its last guess.
func (t *DecisionTree) Leaves() int {
	if len(t.Branches) == 0 {
		return 1
	}
	n := 0
	for _, sub := range t.Branches {
		n += sub.Leaves()
	}
	return n
}

// Repr renders the strategy with one line per guess, indented by depth and
// keyed by the feedback pattern that leads there. Branches are ordered by
// pattern string so the output is reproducible.
func (t *DecisionTree) Repr() string {
	var b strings.Builder
	t.repr(&b, "", 0)
	return strings.TrimRight(b.String(), "\n")
}

func (t *DecisionTree) repr(b *strings.Builder, pattern string, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if pattern != "" {
		b.WriteString(pattern)
		b.WriteString(" -> ")
	}
	b.WriteString(t.Guess)
	b.WriteString("\n")

	patterns := make([]primitives.Pattern, 0, len(t.Branches))
	for p := range t.Branches {
		patterns = append(patterns, p)
	}
	slices.SortFunc(patterns, func(a, b primitives.Pattern) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, p := range patterns {
		t.Branches[p].repr(b, p.String(), depth+1)
	}
}

func (t *DecisionTree) DebugString() string {
	return fmt.Sprintf("DecisionTree{guess: %s, depth: %d, leaves: %d}", t.Guess, t.Depth(), t.Leaves())
}
