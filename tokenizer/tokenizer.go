package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer turns raw text into a normalized term sequence.
type Tokenizer interface {
	// Tokenize returns the ordered terms of text. Duplicates are kept.
	// All inputs are valid; an empty or all-punctuation input yields an
	// empty slice.
	Tokenize(text string) []string
}

// Options configures the Simple tokenizer.
type Options struct {
	// StopWords are excluded from the output. Matching happens after
	// lowercasing, so entries should be lowercase.
	StopWords []string

	// KeepHyphens keeps hyphens that appear inside a token
	// ("state-of-the-art" stays one term). Leading and trailing hyphens
	// are always stripped.
	KeepHyphens bool

	// KeepApostrophes keeps apostrophes inside a token ("don't" stays one
	// term). Leading and trailing apostrophes are always stripped.
	KeepApostrophes bool
}

// Simple is a whitespace/punctuation tokenizer: it lowercases the input,
// splits on anything that is not a letter, digit or kept joiner, trims
// joiners from token edges and drops stop words.
type Simple struct {
	stopWords       map[string]struct{}
	keepHyphens     bool
	keepApostrophes bool
}

// Ensure Simple implements Tokenizer
var _ Tokenizer = (*Simple)(nil)

// NewSimple creates a Simple tokenizer. By default no stop words are removed
// and internal hyphens and apostrophes are kept.
func NewSimple(optFns ...func(o *Options)) *Simple {
	opts := Options{
		KeepHyphens:     true,
		KeepApostrophes: true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	stop := make(map[string]struct{}, len(opts.StopWords))
	for _, w := range opts.StopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	return &Simple{
		stopWords:       stop,
		keepHyphens:     opts.KeepHyphens,
		keepApostrophes: opts.KeepApostrophes,
	}
}

// WithStopWords sets the stop-word set.
func WithStopWords(words ...string) func(o *Options) {
	return func(o *Options) {
		o.StopWords = words
	}
}

// Tokenize implements Tokenizer.
func (t *Simple) Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !t.keep(r)
	})

	terms := make([]string, 0, len(fields))

	for _, f := range fields {
		// Joiners are only meaningful inside a token.
		f = strings.Trim(f, "-'")
		if f == "" {
			continue
		}
		if _, ok := t.stopWords[f]; ok {
			continue
		}
		terms = append(terms, f)
	}

	return terms
}

func (t *Simple) keep(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	if r == '-' && t.keepHyphens {
		return true
	}
	if r == '\'' && t.keepApostrophes {
		return true
	}
	return false
}
