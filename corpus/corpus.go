package corpus

import (
	"errors"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rankgo/tokenizer"
)

// ErrEmptyCorpus is returned when Fit is called with zero documents.
var ErrEmptyCorpus = errors.New("corpus must contain at least one document")

// Document is a single fitted document.
type Document struct {
	// Text is the raw document text as supplied to Fit.
	Text string
	// Terms is the normalized term sequence, in order, duplicates kept.
	Terms []string
	// Length is the term count, len(Terms).
	Length int
}

// Statistics holds the term and document frequencies of a fitted corpus.
//
// A Statistics value is built once by Fit and never mutated afterwards;
// scorers share it by reference. Refitting a scorer builds a brand-new
// Statistics rather than updating an existing one.
type Statistics struct {
	docs      []Document
	termFreqs []map[string]int
	postings  map[string]*roaring.Bitmap
	totalLen  int64
	avgDocLen float64
	tok       tokenizer.Tokenizer
}

// Fit tokenizes documents and accumulates their statistics.
//
// Document frequency counts documents, not occurrences: each distinct term
// of a document bumps its posting bitmap exactly once.
func Fit(documents []string, tok tokenizer.Tokenizer) (*Statistics, error) {
	if len(documents) == 0 {
		return nil, ErrEmptyCorpus
	}
	if tok == nil {
		tok = tokenizer.NewSimple()
	}

	s := &Statistics{
		docs:      make([]Document, len(documents)),
		termFreqs: make([]map[string]int, len(documents)),
		postings:  make(map[string]*roaring.Bitmap),
		tok:       tok,
	}

	for i, text := range documents {
		terms := tok.Tokenize(text)

		s.docs[i] = Document{
			Text:   text,
			Terms:  terms,
			Length: len(terms),
		}
		s.totalLen += int64(len(terms))

		tf := make(map[string]int, len(terms))
		for _, t := range terms {
			tf[t]++
		}
		s.termFreqs[i] = tf

		for t := range tf {
			bm, ok := s.postings[t]
			if !ok {
				bm = roaring.New()
				s.postings[t] = bm
			}
			bm.Add(uint32(i))
		}
	}

	s.avgDocLen = float64(s.totalLen) / float64(len(documents))

	return s, nil
}

// Tokenize normalizes text with the same tokenizer the corpus was fitted
// with, so queries and documents share one term space.
func (s *Statistics) Tokenize(text string) []string {
	return s.tok.Tokenize(text)
}

// DocumentCount returns N, the number of fitted documents.
func (s *Statistics) DocumentCount() int {
	return len(s.docs)
}

// Document returns the fitted document at index i.
func (s *Statistics) Document(i int) Document {
	return s.docs[i]
}

// DocumentLength returns the term count of document i.
func (s *Statistics) DocumentLength(i int) int {
	return s.docs[i].Length
}

// AvgDocumentLength returns the arithmetic mean of document lengths.
func (s *Statistics) AvgDocumentLength() float64 {
	return s.avgDocLen
}

// TotalTerms returns the summed length of all documents.
func (s *Statistics) TotalTerms() int64 {
	return s.totalLen
}

// VocabularySize returns the number of distinct terms across the corpus.
func (s *Statistics) VocabularySize() int {
	return len(s.postings)
}

// InVocabulary reports whether term occurs anywhere in the corpus.
func (s *Statistics) InVocabulary(term string) bool {
	_, ok := s.postings[term]
	return ok
}

// DocumentFrequency returns the number of documents containing term at
// least once. Zero for terms outside the vocabulary. Never exceeds
// DocumentCount.
func (s *Statistics) DocumentFrequency(term string) int {
	bm, ok := s.postings[term]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// TermFrequency returns the raw occurrence count of term in document i.
func (s *Statistics) TermFrequency(i int, term string) int {
	return s.termFreqs[i][term]
}

// TermFrequencies returns the full term->count map of document i. The map
// is shared, not copied; callers must not modify it.
func (s *Statistics) TermFrequencies(i int) map[string]int {
	return s.termFreqs[i]
}

// MatchingDocuments iterates the indices of documents containing term, in
// ascending order.
func (s *Statistics) MatchingDocuments(term string) iter.Seq[int] {
	return func(yield func(int) bool) {
		bm, ok := s.postings[term]
		if !ok {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Vocabulary iterates all distinct corpus terms in unspecified order.
func (s *Statistics) Vocabulary() iter.Seq[string] {
	return func(yield func(string) bool) {
		for t := range s.postings {
			if !yield(t) {
				return
			}
		}
	}
}

// MinMaxDocumentLength returns the shortest and longest document lengths.
func (s *Statistics) MinMaxDocumentLength() (min, max int) {
	min, max = s.docs[0].Length, s.docs[0].Length
	for _, d := range s.docs[1:] {
		if d.Length < min {
			min = d.Length
		}
		if d.Length > max {
			max = d.Length
		}
	}
	return min, max
}
