// Package tfidf implements TF-IDF vector scoring with cosine similarity.
//
// Every document is represented as a TF-IDF vector over the corpus
// vocabulary, precalculated at fit time. A query is vectorized the same way
// and scored against each document by cosine similarity, yielding values in
// [0, 1]:
//
//	TF(t, d)  = count(t, d) / |d|        (raw count when length
//	                                      normalization is disabled)
//	IDF(t)    = log(N / df(t))
//	score     = cos(v(query), v(doc))
//
// # Usage
//
//	s := tfidf.New()
//	stats, _ := corpus.Fit(documents, tokenizer.NewSimple())
//	_ = s.Fit(stats)
//	score, _ := s.Score("machine learning", 0)
//
// The cosine similarity of two all-zero vectors is defined as 0, so empty
// or fully out-of-vocabulary queries simply score every document 0.
package tfidf
