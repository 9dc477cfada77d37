package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NormalizeWords prepares a raw word list for the solver: lowercases and trims
// each entry, drops blanks and '#' comment lines, deduplicates while keeping
// first-seen order, and enforces a uniform width over lowercase a-z.
//
// width 0 means "infer from the first word". Any malformed word is an error:
// the search core assumes uniform clean input, so rejection happens here, at
// load time, and nowhere else.
func NormalizeWords(raw []string, width int) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	words := make([]string, 0, len(raw))

	for _, line := range raw {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if width == 0 {
			width = len(word)
		}
		if len(word) != width {
			return nil, fmt.Errorf("word %q has length %d, want %d", word, len(word), width)
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %q contains non-lowercase letter %q", word, r)
			}
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty after normalization")
	}
	return words, nil
}

// ReadWordList reads one word per line from r and normalizes the result.
func ReadWordList(r io.Reader, width int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NormalizeWords(lines, width)
}
