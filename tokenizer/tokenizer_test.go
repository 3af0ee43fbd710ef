package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimple_Tokenize(t *testing.T) {
	tok := NewSimple()

	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, tok.Tokenize("The quick brown FOX"))
	assert.Equal(t, []string{"hello", "world"}, tok.Tokenize("hello, world!"))
	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("  \t\n "))
	assert.Empty(t, tok.Tokenize("!!! ... ???"))
}

func TestSimple_Deterministic(t *testing.T) {
	tok := NewSimple()

	text := "Machine learning, deep-learning & NLP!"
	first := tok.Tokenize(text)
	second := tok.Tokenize(text)

	assert.Equal(t, first, second)
}

func TestSimple_Joiners(t *testing.T) {
	tok := NewSimple()

	// Internal hyphens and apostrophes are kept by default.
	assert.Equal(t, []string{"state-of-the-art"}, tok.Tokenize("state-of-the-art"))
	assert.Equal(t, []string{"don't"}, tok.Tokenize("Don't"))

	// Edge joiners are always stripped.
	assert.Equal(t, []string{"fox"}, tok.Tokenize("-fox-"))
	assert.Equal(t, []string{"quoted"}, tok.Tokenize("'quoted'"))

	split := NewSimple(func(o *Options) {
		o.KeepHyphens = false
		o.KeepApostrophes = false
	})
	assert.Equal(t, []string{"state", "of", "the", "art"}, split.Tokenize("state-of-the-art"))
	assert.Equal(t, []string{"don", "t"}, split.Tokenize("don't"))
}

func TestSimple_StopWords(t *testing.T) {
	tok := NewSimple(WithStopWords("the", "on", "a"))

	assert.Equal(t, []string{"cat", "sat", "mat"}, tok.Tokenize("The cat sat on the mat"))

	// A query of nothing but stop words yields no terms.
	assert.Empty(t, tok.Tokenize("the on a"))
}

func TestSimple_DuplicatesKept(t *testing.T) {
	tok := NewSimple()

	terms := tok.Tokenize("go go go")
	assert.Equal(t, []string{"go", "go", "go"}, terms)
}
