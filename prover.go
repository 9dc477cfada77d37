package bound

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"crosswarped.com/wordlebound/internal"
	"crosswarped.com/wordlebound/pkg/primitives"
)

// Prover answers definitively whether any guaranteed strategy of a given
// submission budget exists. Unlike the Solver it never trims the search: a
// false answer means every starting guess was exhausted.
//
// The frame expansion is the Solver's rule; what changes is the policy around
// it. Sub-problem viability is memoized by (budget, candidate set) so frames
// reached along different guess paths are computed once, and the top-level
// sweep over starting guesses runs on a bounded worker pool. Branch results
// combine by AND over feedback buckets and OR over starting guesses, so the
// existence answer is independent of exploration order.
type Prover struct {
	Guessable []string

	// Workers bounds the starting-guess worker pool. Zero means GOMAXPROCS.
	Workers int

	memo internal.Cache
}

type ProverParams struct {
	Workers int
}

// CreateProver builds a prover over an already-normalized guessable list.
func CreateProver(guessable []string, params ProverParams) *Prover {
	return &Prover{
		Guessable: guessable,
		Workers:   params.Workers,
	}
}

// Proof is the prover's definitive answer. When Exists is true, Witness holds
// one complete strategy demonstrating the bound.
type Proof struct {
	Exists  bool
	Witness *DecisionTree
}

// Prove determines whether any starting guess guarantees identification of
// every candidate within budget submissions. The only error it can return is
// the context's, when a multi-hour run is cancelled before reaching an
// answer; there is no partial result in that case.
func (p *Prover) Prove(ctx context.Context, budget int, candidates primitives.CandidateSet) (*Proof, error) {
	if candidates.Count() == 0 {
		panic("Prove: empty candidate set")
	}

	if candidates.Count() == 1 {
		if budget < 1 {
			return &Proof{Exists: false}, nil
		}
		return &Proof{
			Exists:  true,
			Witness: &DecisionTree{Guess: candidates.Sole()},
		}, nil
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A found witness cancels the remaining workers; the parent context is
	// kept apart so caller cancellation stays distinguishable from that.
	searchCtx, stop := context.WithCancel(ctx)
	defer stop()

	g, groupCtx := errgroup.WithContext(searchCtx)
	g.SetLimit(workers)

	var mu sync.Mutex
	var witness *DecisionTree

	for _, start := range p.Guessable {
		g.Go(func() error {
			if groupCtx.Err() != nil {
				return nil
			}
			if !p.viableFrom(groupCtx, start, budget, candidates) {
				return nil
			}
			mu.Lock()
			found := witness != nil
			mu.Unlock()
			if found {
				return nil
			}
			// Reconstruct the witness tree for the viable start. The memo
			// cache makes this re-walk cheap.
			tree, ok := p.treeFrom(groupCtx, start, budget, candidates)
			if !ok {
				return nil
			}
			mu.Lock()
			if witness == nil {
				witness = tree
			}
			mu.Unlock()
			stop()
			return nil
		})
	}
	_ = g.Wait()

	if witness != nil {
		return &Proof{Exists: true, Witness: witness}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Proof{Exists: false}, nil
}

// viableFrom reports whether opening with start guarantees a solve within
// budget submissions.
func (p *Prover) viableFrom(ctx context.Context, start string, budget int, candidates primitives.CandidateSet) bool {
	if budget < 1 {
		return false
	}
	for pattern, bucket := range primitives.Partition(start, candidates) {
		if pattern.AllHit() {
			continue
		}
		if !p.viable(ctx, budget-1, bucket) {
			return false
		}
	}
	return true
}

// viable reports whether a candidate set can be fully identified within
// budget submissions by any guess sequence. Results are memoized by
// (budget, canonical set): identical sub-problems recur constantly across
// different guess paths and this is what keeps exhaustive runs tractable.
func (p *Prover) viable(ctx context.Context, budget int, candidates primitives.CandidateSet) bool {
	n := candidates.Count()
	if n == 0 {
		panic("viable: empty candidate set")
	}
	if n == 1 {
		return budget >= 1
	}
	if budget <= 1 {
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	key := internal.Key(budget, candidates.Key())
	if v, ok := p.memo.Lookup(key); ok {
		return v
	}

	result := false
	for _, guess := range p.Guessable {
		if p.guessViable(ctx, guess, budget, candidates) {
			result = true
			break
		}
	}

	if ctx.Err() != nil {
		// Don't poison the cache with answers cut short by cancellation.
		return result
	}
	p.memo.Store(key, result)
	return result
}

func (p *Prover) guessViable(ctx context.Context, guess string, budget int, candidates primitives.CandidateSet) bool {
	buckets := primitives.Partition(guess, candidates)
	if len(buckets) == 1 {
		for pattern := range buckets {
			if !pattern.AllHit() {
				return false
			}
		}
	}
	for pattern, bucket := range buckets {
		if pattern.AllHit() {
			continue
		}
		if !p.viable(ctx, budget-1, bucket) {
			return false
		}
	}
	return true
}

// treeFrom rebuilds the full decision tree for a start already proven viable.
func (p *Prover) treeFrom(ctx context.Context, start string, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	node := &DecisionTree{
		Guess:    start,
		Branches: make(map[primitives.Pattern]*DecisionTree),
	}
	for pattern, bucket := range primitives.Partition(start, candidates) {
		if pattern.AllHit() {
			continue
		}
		sub, ok := p.tree(ctx, budget-1, bucket)
		if !ok {
			return nil, false
		}
		node.Branches[pattern] = sub
	}
	return node, true
}

func (p *Prover) tree(ctx context.Context, budget int, candidates primitives.CandidateSet) (*DecisionTree, bool) {
	if candidates.Count() == 1 {
		if budget < 1 {
			return nil, false
		}
		return &DecisionTree{Guess: candidates.Sole()}, true
	}
	if budget <= 1 || ctx.Err() != nil {
		return nil, false
	}
	for _, guess := range p.Guessable {
		if !p.guessViable(ctx, guess, budget, candidates) {
			continue
		}
		return p.treeFrom(ctx, guess, budget, candidates)
	}
	return nil, false
}
