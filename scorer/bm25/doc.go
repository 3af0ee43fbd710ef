// Package bm25 implements the BM25 ranking function.
//
// BM25 scores a document against a query by summing, over the distinct
// query terms, a saturating term-frequency weight scaled by a smoothed
// inverse document frequency:
//
//	IDF(t)  = ln(1 + (N - df(t) + 0.5) / (df(t) + 0.5))
//	score  += IDF(t) * (f(t,d) * (k1 + 1)) / (f(t,d) + k1 * (1 - b + b * |d|/avgdl))
//
// # Usage
//
//	s := bm25.New(bm25.WithK1(1.5), bm25.WithB(0.75))
//	stats, _ := corpus.Fit(documents, tokenizer.NewSimple())
//	if err := s.Fit(stats); err != nil { ... }
//	score, _ := s.Score("machine learning", 0)
//
// # Parameters
//
// k1 controls how quickly repeated occurrences of a term saturate
// (defaults to 1.2; 0 turns term frequency into a presence indicator).
// b controls how strongly long documents are penalized (defaults to 0.75;
// 0 disables length normalization).
package bm25
