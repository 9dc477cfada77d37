package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWords(t *testing.T) {
	words, err := NormalizeWords([]string{
		"# solution list v2",
		"CRANE",
		" slate ",
		"",
		"crane",
		"query",
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "query"}, words)
}

func TestNormalizeWordsWidthMismatch(t *testing.T) {
	_, err := NormalizeWords([]string{"crane", "toad"}, 0)
	assert.ErrorContains(t, err, "length")

	_, err = NormalizeWords([]string{"toad"}, 5)
	assert.ErrorContains(t, err, "length")
}

func TestNormalizeWordsRejectsNonLetters(t *testing.T) {
	_, err := NormalizeWords([]string{"cra-e"}, 0)
	assert.ErrorContains(t, err, "non-lowercase")

	_, err = NormalizeWords([]string{"crané"}, 0)
	assert.Error(t, err)
}

func TestNormalizeWordsEmpty(t *testing.T) {
	_, err := NormalizeWords([]string{"# nothing here", "  "}, 0)
	assert.Error(t, err)
}

func TestReadWordList(t *testing.T) {
	r := strings.NewReader("# header\ncrane\nSLATE\n\ncrane\n")
	words, err := ReadWordList(r, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, words)
}
