package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"gopkg.in/yaml.v3"

	bound "crosswarped.com/wordlebound"
	"crosswarped.com/wordlebound/internal"
	"crosswarped.com/wordlebound/pkg/primitives"
)

// runConfig mirrors the flag surface so long exhaustive runs can be described
// once in a file instead of retyped.
type runConfig struct {
	Solutions  string `yaml:"solutions"`
	Guesses    string `yaml:"guesses"`
	Budget     int    `yaml:"budget"`
	Start      string `yaml:"start"`
	Exhaustive bool   `yaml:"exhaustive"`
	Workers    int    `yaml:"workers"`
	MaxBranch  int    `yaml:"max_branch"`
}

func main() {
	configFile := flag.String("config", "", "YAML run config; flags set explicitly override it")
	solutionsFile := flag.String("solutions", "", "The file to load solution words from")
	guessesFile := flag.String("guesses", "", "The file to load guessable words from (defaults to the solution list)")
	budget := flag.Int("budget", 5, "The guess budget to test")
	start := flag.String("start", "", "Fix the starting guess (heuristic mode only)")
	exhaustive := flag.Bool("exhaustive", false, "Prove existence or non-existence over all starting guesses")
	workers := flag.Int("workers", 0, "Worker pool size for the exhaustive prover (0 = all cores)")
	maxBranch := flag.Int("max_branch", 0, "Cap on ranked guesses explored per frame in heuristic mode (0 = no cap)")

	timeout := flag.Duration("timeout", 0, "Abort the search after this long (0 = no timeout)")

	profile := flag.Bool("profile", false, "Profile the search")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	cfg := runConfig{
		Solutions:  *solutionsFile,
		Guesses:    *guessesFile,
		Budget:     *budget,
		Start:      *start,
		Exhaustive: *exhaustive,
		Workers:    *workers,
		MaxBranch:  *maxBranch,
	}
	if *configFile != "" {
		loaded, err := loadConfig(*configFile)
		if err != nil {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		cfg = mergeConfig(loaded, cfg)
	}

	if cfg.Solutions == "" {
		fmt.Println("A solutions file is required (-solutions or config)")
		os.Exit(1)
	}
	if cfg.Start != "" && cfg.Exhaustive {
		fmt.Println("Cannot use both -start and -exhaustive")
		os.Exit(1)
	}
	if cfg.Budget < 1 {
		fmt.Println("Budget must be at least 1")
		os.Exit(1)
	}

	fmt.Println("Loading solution words from file...")
	solutions, err := loadFromFile(cfg.Solutions, 0)
	if err != nil {
		fmt.Println("Error loading solution words:", err)
		os.Exit(1)
	}
	width := len(solutions[0])

	guessable := solutions
	if cfg.Guesses != "" {
		fmt.Println("Loading guessable words from file...")
		if guessable, err = loadFromFile(cfg.Guesses, width); err != nil {
			fmt.Println("Error loading guessable words:", err)
			os.Exit(1)
		}
	}

	if cfg.Start != "" && len(cfg.Start) != width {
		fmt.Printf("Starting guess %q does not match the puzzle width %d\n", cfg.Start, width)
		os.Exit(1)
	}

	fmt.Println("Solution words:", len(solutions))
	fmt.Println("Guessable words:", len(guessable))

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	universe, err := primitives.NewUniverse(solutions)
	if err != nil {
		fmt.Println("Error building universe:", err)
		os.Exit(1)
	}
	candidates := universe.Full()

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	started := time.Now()

	switch {
	case cfg.Exhaustive:
		prover := bound.CreateProver(guessable, bound.ProverParams{Workers: cfg.Workers})
		proof, err := prover.Prove(ctx, cfg.Budget, candidates)
		if err != nil {
			fmt.Println("Search aborted:", err)
			os.Exit(1)
		}
		fmt.Println("--------------------------------")
		if proof.Exists {
			fmt.Printf("A guaranteed %d-guess solution exists (took %v)\n", cfg.Budget, time.Since(started))
			fmt.Println("Witness:", proof.Witness.DebugString())
			fmt.Println(proof.Witness.Repr())
		} else {
			fmt.Printf("No guaranteed %d-guess solution exists: all %d starting guesses exhausted (took %v)\n",
				cfg.Budget, len(guessable), time.Since(started))
		}

	case cfg.Start != "":
		solver := bound.CreateSolver(guessable, bound.SolverParams{MaxBranch: cfg.MaxBranch})
		tree, ok := solver.SolveFrom(ctx, cfg.Start, cfg.Budget, candidates)
		fmt.Println("--------------------------------")
		if ok {
			fmt.Printf("Starting with %q guarantees a solve in %d guesses (took %v)\n", cfg.Start, cfg.Budget, time.Since(started))
			fmt.Println(tree.Repr())
		} else {
			fmt.Printf("No %d-guess tree found starting with %q (took %v); this does not prove non-existence\n",
				cfg.Budget, cfg.Start, time.Since(started))
		}

	default:
		solver := bound.CreateSolver(guessable, bound.SolverParams{MaxBranch: cfg.MaxBranch})
		tree, ok := solver.Solve(ctx, cfg.Budget, candidates)
		fmt.Println("--------------------------------")
		if ok {
			fmt.Printf("Found a guaranteed %d-guess solution starting with %q (took %v)\n", cfg.Budget, tree.Guess, time.Since(started))
			fmt.Println(tree.Repr())
		} else {
			fmt.Printf("No %d-guess tree found heuristically (took %v); this does not prove non-existence\n",
				cfg.Budget, time.Since(started))
		}
	}

	fmt.Println("--------------------------------")
	fmt.Println("Done")

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}

func loadConfig(path string) (runConfig, error) {
	var cfg runConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfig overlays explicitly-set flag values on top of a loaded config.
func mergeConfig(base, flags runConfig) runConfig {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["solutions"] {
		base.Solutions = flags.Solutions
	}
	if set["guesses"] {
		base.Guesses = flags.Guesses
	}
	if set["budget"] {
		base.Budget = flags.Budget
	}
	if set["start"] {
		base.Start = flags.Start
	}
	if set["exhaustive"] {
		base.Exhaustive = flags.Exhaustive
	}
	if set["workers"] {
		base.Workers = flags.Workers
	}
	if set["max_branch"] {
		base.MaxBranch = flags.MaxBranch
	}
	if base.Budget == 0 {
		base.Budget = flags.Budget
	}
	return base
}

func loadFromFile(path string, width int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return internal.ReadWordList(f, width)
}
