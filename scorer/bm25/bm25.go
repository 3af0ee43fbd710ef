package bm25

import (
	"math"
	"sort"

	"github.com/hupe1980/rankgo/corpus"
	"github.com/hupe1980/rankgo/scorer"
)

const (
	// DefaultK1 is the standard term-frequency saturation parameter.
	DefaultK1 = 1.2
	// DefaultB is the standard length-normalization strength.
	DefaultB = 0.75
)

// Options configures the BM25 scorer.
type Options struct {
	// K1 controls term-frequency saturation. Higher values give repeated
	// occurrences more weight; 0 reduces term frequency to a presence
	// indicator. Must not be negative.
	K1 float64

	// B controls document-length normalization. 0 disables it, 1 applies
	// it fully. Must be in [0, 1].
	B float64
}

// Scorer scores documents with the BM25 ranking function using the smoothed
// IDF variant ln(1 + (N - df + 0.5) / (df + 0.5)), which never goes negative
// for terms appearing in more than half the corpus.
type Scorer struct {
	k1 float64
	b  float64

	stats *corpus.Statistics
	idf   map[string]float64
}

// Ensure Scorer implements scorer.Scorer
var _ scorer.Scorer = (*Scorer)(nil)

// New creates a BM25 scorer with k1=1.2, b=0.75 unless overridden.
// Parameter domains are checked by Fit.
func New(optFns ...func(o *Options)) *Scorer {
	opts := Options{
		K1: DefaultK1,
		B:  DefaultB,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Scorer{
		k1: opts.K1,
		b:  opts.B,
	}
}

// WithK1 sets the term-frequency saturation parameter.
func WithK1(k1 float64) func(o *Options) {
	return func(o *Options) {
		o.K1 = k1
	}
}

// WithB sets the length-normalization strength.
func WithB(b float64) func(o *Options) {
	return func(o *Options) {
		o.B = b
	}
}

// Fit validates the tuning parameters and precomputes IDF weights for the
// corpus vocabulary. It replaces any previously fitted statistics wholesale.
func (s *Scorer) Fit(stats *corpus.Statistics) error {
	if s.k1 < 0 || math.IsNaN(s.k1) {
		return &scorer.ErrInvalidParameter{Name: "k1", Value: s.k1, Domain: "[0, +Inf)"}
	}
	if s.b < 0 || s.b > 1 || math.IsNaN(s.b) {
		return &scorer.ErrInvalidParameter{Name: "b", Value: s.b, Domain: "[0, 1]"}
	}

	n := float64(stats.DocumentCount())
	idf := make(map[string]float64, stats.VocabularySize())
	for term := range stats.Vocabulary() {
		df := float64(stats.DocumentFrequency(term))
		idf[term] = math.Log(1 + (n-df+0.5)/(df+0.5))
	}

	s.stats = stats
	s.idf = idf

	return nil
}

// Stats implements scorer.Scorer.
func (s *Scorer) Stats() *corpus.Statistics {
	return s.stats
}

// K1 returns the fitted term-frequency saturation parameter.
func (s *Scorer) K1() float64 { return s.k1 }

// B returns the fitted length-normalization strength.
func (s *Scorer) B() float64 { return s.b }

// Score sums the BM25 contributions of the distinct query terms present in
// the corpus vocabulary. Unknown terms contribute nothing; an empty or
// fully-unknown query scores 0.
func (s *Scorer) Score(query string, docIndex int) (float64, error) {
	if s.stats == nil {
		return 0, scorer.ErrNotFitted
	}
	if docIndex < 0 || docIndex >= s.stats.DocumentCount() {
		return 0, &scorer.ErrDocumentOutOfRange{Index: docIndex, Count: s.stats.DocumentCount()}
	}

	var score float64
	for _, term := range distinct(s.stats.Tokenize(query)) {
		idf, ok := s.idf[term]
		if !ok {
			continue
		}
		score += s.contribution(term, docIndex, idf)
	}

	return score, nil
}

// Explain returns the per-term arithmetic of Score, one entry per distinct
// in-vocabulary query term in order of first appearance. Contributions sum
// to the Score value for the same pair.
func (s *Scorer) Explain(query string, docIndex int) ([]scorer.TermScore, error) {
	if s.stats == nil {
		return nil, scorer.ErrNotFitted
	}
	if docIndex < 0 || docIndex >= s.stats.DocumentCount() {
		return nil, &scorer.ErrDocumentOutOfRange{Index: docIndex, Count: s.stats.DocumentCount()}
	}

	terms := distinct(s.stats.Tokenize(query))
	breakdown := make([]scorer.TermScore, 0, len(terms))

	for _, term := range terms {
		idf, ok := s.idf[term]
		if !ok {
			continue
		}
		breakdown = append(breakdown, scorer.TermScore{
			Term:          term,
			TermFrequency: s.stats.TermFrequency(docIndex, term),
			IDF:           idf,
			Contribution:  s.contribution(term, docIndex, idf),
		})
	}

	return breakdown, nil
}

// Keyword is a term weighted by its average BM25 contribution across the
// documents containing it.
type Keyword struct {
	Term  string
	Score float64
}

// TopKeywords ranks the distinct in-vocabulary terms of text by their
// average contribution over matching documents and returns the top k.
// Ties break alphabetically for deterministic output.
func (s *Scorer) TopKeywords(text string, k int) ([]Keyword, error) {
	if s.stats == nil {
		return nil, scorer.ErrNotFitted
	}

	var keywords []Keyword
	for _, term := range distinct(s.stats.Tokenize(text)) {
		idf, ok := s.idf[term]
		if !ok {
			continue
		}

		var total float64
		var docs int
		for i := range s.stats.MatchingDocuments(term) {
			total += s.contribution(term, i, idf)
			docs++
		}
		if docs == 0 {
			continue
		}

		keywords = append(keywords, Keyword{Term: term, Score: total / float64(docs)})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Term < keywords[j].Term
	})

	if k < len(keywords) {
		keywords = keywords[:k]
	}

	return keywords, nil
}

// contribution computes the BM25 term score
// idf * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * |d| / avgdl)).
func (s *Scorer) contribution(term string, docIndex int, idf float64) float64 {
	tf := float64(s.stats.TermFrequency(docIndex, term))
	if tf == 0 {
		return 0
	}

	docLen := float64(s.stats.DocumentLength(docIndex))
	lengthNorm := 1 - s.b + s.b*(docLen/s.stats.AvgDocumentLength())

	return idf * (tf * (s.k1 + 1)) / (tf + s.k1*lengthNorm)
}

// distinct keeps the first occurrence of each term, preserving order.
func distinct(terms []string) []string {
	out := terms[:0:0]
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
