// Package rankgo provides lexical document ranking for Go.
//
// Rankgo implements two classic scoring models — TF-IDF with cosine
// similarity and BM25 — over a fitted text corpus. The lifecycle is fit
// once, query repeatedly: fitting builds corpus statistics (term and
// document frequencies, document lengths, average document length) and
// every subsequent query is scored against those statistics.
//
// # Quick Start
//
//	r := rankgo.NewBM25()
//	if err := r.Fit(documents); err != nil {
//	    log.Fatal(err)
//	}
//
//	results, _ := r.Rank("machine learning", 3)
//	for _, res := range results {
//	    fmt.Printf("%d  %.4f  %s\n", res.Index, res.Score, res.Document)
//	}
//
// # Choosing a Model
//
// BM25 (the default for keyword search) scores with saturating term
// frequency and document-length normalization, tunable via k1 and b:
//
//	s := bm25.New(bm25.WithK1(1.5), bm25.WithB(0.5))
//	r := rankgo.New(s)
//
// TF-IDF ranks by the cosine similarity of sparse TF-IDF vectors and yields
// scores in [0, 1]:
//
//	r := rankgo.NewTFIDF()
//
// # Explaining Scores
//
// Every score can be broken down into its per-term arithmetic; the
// contributions sum exactly to the score:
//
//	breakdown, _ := r.Explain("machine learning", 0)
//	for _, ts := range breakdown {
//	    fmt.Printf("%s tf=%d idf=%.3f -> %.4f\n", ts.Term, ts.TermFrequency, ts.IDF, ts.Contribution)
//	}
//
// # Determinism
//
// Rank output is strictly descending by score with ascending document index
// as tie-break, so identical inputs always produce identical output, and
// queries with no known terms return documents in corpus order.
//
// # Concurrency
//
// Fit runs to completion before returning and replaces prior statistics
// wholesale. A fitted Ranker is safe for concurrent queries; interleaving
// Fit with queries requires external synchronization by the caller.
package rankgo
