package bound

import (
	"slices"

	"crosswarped.com/wordlebound/pkg/primitives"
)

// RankedGuess pairs a guess with its worst-case partition size over some
// candidate set.
type RankedGuess struct {
	Word      string
	WorstCase int
}

// BestGuesses ranks the allowed guesses against a candidate set, ascending by
// worst-case partition size. Ties keep the order the guesses appear in
// `allowed`, so ranking is reproducible across runs.
//
// A minimal worst case is a one-ply heuristic, not a proof of optimality for
// deeper look-ahead; the solver uses the ranking only to explore promising
// branches first.
//
// When the set has a single candidate, that candidate is the correct next
// guess outright (it solves the puzzle immediately) and is returned alone at
// cost zero.
func BestGuesses(candidates primitives.CandidateSet, allowed []string) []RankedGuess {
	if candidates.Count() == 0 {
		panic("BestGuesses: empty candidate set")
	}
	if candidates.Count() == 1 {
		return []RankedGuess{{Word: candidates.Sole(), WorstCase: 0}}
	}

	ranked := make([]RankedGuess, 0, len(allowed))
	for _, g := range allowed {
		ranked = append(ranked, RankedGuess{Word: g, WorstCase: primitives.WorstCase(g, candidates)})
	}
	slices.SortStableFunc(ranked, func(a, b RankedGuess) int {
		return a.WorstCase - b.WorstCase
	})
	return ranked
}
