// Package scorer defines the interface shared by the lexical scoring models.
//
// The bm25 and tfidf subpackages provide the two built-in implementations.
// Both follow the same lifecycle: Fit against a corpus.Statistics once, then
// Score and Explain arbitrary queries against it. Explanations are exact:
// the contributions of Explain sum to the value Score returns.
package scorer
