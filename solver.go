package bound

import (
	"context"

	"crosswarped.com/wordlebound/pkg/primitives"
)

// Solver searches for a guess strategy that is guaranteed to identify any
// secret from a candidate set within a fixed submission budget. A budget of k
// means the k-th submitted word must itself be the secret, not merely that k
// feedbacks narrow the set to one.
//
// The search is best-first over BestGuesses and accepts the first guess whose
// every feedback bucket is solvable within the remaining budget, so it finds
// a witness quickly when one exists. A "not found" answer from the Solver
// does not prove non-existence; that is the Prover's job.
type Solver struct {
	Guessable []string

	// MaxBranch caps how many ranked guesses each frame explores. Zero means
	// no cap. A capped search is faster and still sound for existence, but a
	// miss says nothing about guesses beyond the cap.
	MaxBranch int
}

type SolverParams struct {
	MaxBranch int
}

// CreateSolver builds a solver over an already-normalized guessable list.
func CreateSolver(guessable []string, params SolverParams) *Solver {
	return &Solver{
		Guessable: guessable,
		MaxBranch: params.MaxBranch,
	}
}

// Solve searches for any guaranteed strategy of at most budget submissions
// covering every candidate. It returns the strategy and true, or nil and
// false if none was found (within MaxBranch, if set, or before ctx was done).
func (s *Solver) Solve(ctx context.Context, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	return s.solve(ctx, budget, candidates)
}

// SolveFrom is Solve with the first submission fixed, answering "does opening
// with this guess guarantee a solve within budget".
func (s *Solver) SolveFrom(ctx context.Context, start string, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	if candidates.Count() == 0 {
		panic("SolveFrom: empty candidate set")
	}
	if budget < 1 {
		return nil, false
	}
	if candidates.Count() == 1 && candidates.Contains(start) {
		return &DecisionTree{Guess: start}, true
	}
	return s.expand(ctx, start, budget, candidates)
}

func (s *Solver) solve(ctx context.Context, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	if candidates.Count() == 0 {
		panic("solve: empty candidate set")
	}
	if ctx.Err() != nil {
		return nil, false
	}
	if candidates.Count() == 1 {
		// The sole survivor is the forced final submission.
		if budget < 1 {
			return nil, false
		}
		return &DecisionTree{Guess: candidates.Sole()}, true
	}
	if budget <= 1 {
		// One submission cannot both split the set and be the secret for
		// every remaining candidate.
		return nil, false
	}

	ranked := BestGuesses(candidates, s.Guessable)
	if s.MaxBranch > 0 && len(ranked) > s.MaxBranch {
		ranked = ranked[:s.MaxBranch]
	}

	for _, rg := range ranked {
		if rg.WorstCase >= candidates.Count() {
			// No information: the adversary keeps the whole set.
			continue
		}
		if tree, ok := s.expand(ctx, rg.Word, budget, candidates); ok {
			return tree, true
		}
	}
	return nil, false
}

// expand commits one submission of guess and requires every feedback bucket
// to be solvable within the remaining budget. The all-Hit bucket needs no
// subtree: that feedback means this very submission was the secret.
func (s *Solver) expand(ctx context.Context, guess string, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	buckets := primitives.Partition(guess, candidates)
	node := &DecisionTree{
		Guess:    guess,
		Branches: make(map[primitives.Pattern]*DecisionTree, len(buckets)),
	}
	for pattern, bucket := range buckets {
		if pattern.AllHit() {
			continue
		}
		sub, ok := s.solve(ctx, budget-1, bucket)
		if !ok {
			return nil, false
		}
		node.Branches[pattern] = sub
	}
	return node, true
}
