package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"google.golang.org/api/iterator"

	bound "crosswarped.com/wordlebound"
	"crosswarped.com/wordlebound/internal"
	"crosswarped.com/wordlebound/pkg/primitives"
)

type AnalyzeRequest struct {
	Budget        int      `json:"budget"`
	StartingGuess string   `json:"startingGuess"`
	Exhaustive    bool     `json:"exhaustive"`
	WordScope     string   `json:"wordScope"`
	Solutions     []string `json:"solutions"`
	Guesses       []string `json:"guesses"`
	MaxBranch     int      `json:"maxBranch"`
}

type AnalyzeResponse struct {
	Success       bool   `json:"success"`
	Found         bool   `json:"found"`
	Definitive    bool   `json:"definitive"`
	StartingGuess string `json:"startingGuess,omitempty"`
	Tree          string `json:"tree,omitempty"`
	Error         string `json:"error,omitempty"`
}

func getWords(ctx context.Context, scope string) ([]string, []string, error) {
	client, err := bigquery.NewClient(ctx, "wordbound-x")
	if err != nil {
		return nil, nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT word, is_solution FROM `wordbound-x.WordLists.all_words` WHERE scope = %q", scope)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Read: %w", err)
	}

	var solutions []string
	var guesses []string

	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		isSolution, ok := row[1].(bool)
		if !ok {
			return nil, nil, fmt.Errorf("row[1] is not a bool: %v", row[1])
		}
		// Every solution word is also guessable.
		guesses = append(guesses, word)
		if isSolution {
			solutions = append(solutions, word)
		}
	}
	return solutions, guesses, nil
}

func execute(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error) {
	if req.Budget < 1 {
		return AnalyzeResponse{}, fmt.Errorf("budget must be at least 1")
	}
	if req.Budget > 10 {
		return AnalyzeResponse{}, fmt.Errorf("budget must be at most 10")
	}
	if req.StartingGuess != "" && req.Exhaustive {
		return AnalyzeResponse{}, fmt.Errorf("startingGuess and exhaustive are mutually exclusive")
	}

	if req.WordScope != "" {
		scopeSolutions, scopeGuesses, err := getWords(ctx, req.WordScope)
		if err != nil {
			return AnalyzeResponse{}, fmt.Errorf("getWords: %w", err)
		}
		fmt.Printf("Loaded %d solution words and %d guessable words\n", len(scopeSolutions), len(scopeGuesses))

		req.Solutions = append(req.Solutions, scopeSolutions...)
		req.Guesses = append(req.Guesses, scopeGuesses...)
	}

	solutions, err := internal.NormalizeWords(req.Solutions, 0)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("solutions: %w", err)
	}
	guesses := solutions
	if len(req.Guesses) > 0 {
		if guesses, err = internal.NormalizeWords(req.Guesses, len(solutions[0])); err != nil {
			return AnalyzeResponse{}, fmt.Errorf("guesses: %w", err)
		}
	}

	universe, err := primitives.NewUniverse(solutions)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("NewUniverse: %w", err)
	}
	candidates := universe.Full()

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if req.Exhaustive {
		prover := bound.CreateProver(guesses, bound.ProverParams{})
		proof, err := prover.Prove(ctx, req.Budget, candidates)
		if err != nil {
			return AnalyzeResponse{}, err
		}
		resp := AnalyzeResponse{Success: true, Found: proof.Exists, Definitive: true}
		if proof.Exists {
			resp.StartingGuess = proof.Witness.Guess
			resp.Tree = proof.Witness.Repr()
		}
		return resp, nil
	}

	solver := bound.CreateSolver(guesses, bound.SolverParams{MaxBranch: req.MaxBranch})
	var tree *bound.DecisionTree
	var found bool
	if req.StartingGuess != "" {
		tree, found = solver.SolveFrom(ctx, req.StartingGuess, req.Budget, candidates)
	} else {
		tree, found = solver.Solve(ctx, req.Budget, candidates)
	}
	if err := ctx.Err(); err != nil && !found {
		return AnalyzeResponse{}, err
	}

	resp := AnalyzeResponse{Success: true, Found: found}
	if found {
		resp.StartingGuess = tree.Guess
		resp.Tree = tree.Repr()
	}
	return resp, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func analyze(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := AnalyzeResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	response, err := execute(r.Context(), req)

	if err != nil {
		response = AnalyzeResponse{
			Success: false,
			Error:   err.Error(),
		}
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/analyze", analyze)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
