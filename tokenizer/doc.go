// Package tokenizer provides text normalization for lexical scoring.
//
// The Simple tokenizer lowercases input, strips punctuation and splits on
// whitespace. Internal hyphens and apostrophes can be kept so that terms
// like "state-of-the-art" or "don't" survive as single tokens, and a
// configurable stop-word set filters out noise terms:
//
//	tok := tokenizer.NewSimple(tokenizer.WithStopWords("the", "a", "an"))
//	terms := tok.Tokenize("The quick brown fox")
//	// ["quick", "brown", "fox"]
//
// Tokenization is deterministic and never fails; empty input yields an
// empty term sequence.
package tokenizer
