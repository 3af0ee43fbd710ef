package tfidf

import (
	"math"
	"sort"

	"github.com/hupe1980/rankgo/corpus"
	"github.com/hupe1980/rankgo/scorer"
)

// Options configures the TF-IDF scorer.
type Options struct {
	// LengthNormalize divides raw term counts by the length of the text
	// they came from, giving the classic TF = count/length weighting.
	// When false, raw counts are used directly. Cosine similarity is
	// scale-invariant per vector, so this flag changes reported weights
	// and explanations but not ranking order.
	LengthNormalize bool
}

// Scorer ranks documents by the cosine similarity of their TF-IDF vectors
// against the query's TF-IDF vector. The vector space is the full corpus
// vocabulary; terms outside it carry zero weight.
type Scorer struct {
	lengthNormalize bool

	stats   *corpus.Statistics
	idf     map[string]float64
	vectors []map[string]float64
	norms   []float64
}

// Ensure Scorer implements scorer.Scorer
var _ scorer.Scorer = (*Scorer)(nil)

// New creates a TF-IDF scorer. Length normalization is on by default.
func New(optFns ...func(o *Options)) *Scorer {
	opts := Options{
		LengthNormalize: true,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Scorer{
		lengthNormalize: opts.LengthNormalize,
	}
}

// WithLengthNormalize toggles TF length normalization.
func WithLengthNormalize(normalize bool) func(o *Options) {
	return func(o *Options) {
		o.LengthNormalize = normalize
	}
}

// Fit computes IDF weights as log(N / df) and precalculates the TF-IDF
// vector and norm of every document. It replaces any previously fitted
// statistics wholesale.
func (s *Scorer) Fit(stats *corpus.Statistics) error {
	n := float64(stats.DocumentCount())

	idf := make(map[string]float64, stats.VocabularySize())
	for term := range stats.Vocabulary() {
		// df >= 1 for every vocabulary term, so the quotient is finite.
		idf[term] = math.Log(n / float64(stats.DocumentFrequency(term)))
	}

	vectors := make([]map[string]float64, stats.DocumentCount())
	norms := make([]float64, stats.DocumentCount())

	for i := range vectors {
		vec := make(map[string]float64, len(stats.TermFrequencies(i)))
		for term, count := range stats.TermFrequencies(i) {
			vec[term] = s.termWeight(count, stats.DocumentLength(i), idf[term])
		}
		vectors[i] = vec
		norms[i] = norm(vec)
	}

	s.stats = stats
	s.idf = idf
	s.vectors = vectors
	s.norms = norms

	return nil
}

// Stats implements scorer.Scorer.
func (s *Scorer) Stats() *corpus.Statistics {
	return s.stats
}

// LengthNormalize reports whether TF weights are divided by text length.
func (s *Scorer) LengthNormalize() bool { return s.lengthNormalize }

// Score returns the cosine similarity between the query's TF-IDF vector and
// the document's, in [0, 1]. Queries with no vocabulary terms score 0, as
// does any pair involving a zero vector.
func (s *Scorer) Score(query string, docIndex int) (float64, error) {
	if s.stats == nil {
		return 0, scorer.ErrNotFitted
	}
	if docIndex < 0 || docIndex >= s.stats.DocumentCount() {
		return 0, &scorer.ErrDocumentOutOfRange{Index: docIndex, Count: s.stats.DocumentCount()}
	}

	qvec := s.queryVector(query)

	var dot float64
	for term, qw := range qvec {
		dot += qw * s.vectors[docIndex][term]
	}

	return cosine(dot, norm(qvec), s.norms[docIndex]), nil
}

// Explain breaks the cosine similarity down per distinct in-vocabulary
// query term, in order of first appearance. Each contribution is the
// term's share of the normalized dot product, so the contributions sum to
// the Score value for the same pair.
func (s *Scorer) Explain(query string, docIndex int) ([]scorer.TermScore, error) {
	if s.stats == nil {
		return nil, scorer.ErrNotFitted
	}
	if docIndex < 0 || docIndex >= s.stats.DocumentCount() {
		return nil, &scorer.ErrDocumentOutOfRange{Index: docIndex, Count: s.stats.DocumentCount()}
	}

	terms := s.stats.Tokenize(query)
	qvec := s.queryVector(query)
	qnorm := norm(qvec)
	dnorm := s.norms[docIndex]

	breakdown := make([]scorer.TermScore, 0, len(qvec))
	seen := make(map[string]struct{}, len(qvec))

	for _, term := range terms {
		qw, ok := qvec[term]
		if !ok {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}

		breakdown = append(breakdown, scorer.TermScore{
			Term:          term,
			TermFrequency: s.stats.TermFrequency(docIndex, term),
			IDF:           s.idf[term],
			Contribution:  cosine(qw*s.vectors[docIndex][term], qnorm, dnorm),
		})
	}

	return breakdown, nil
}

// Keyword is a term weighted by its TF-IDF value within a text.
type Keyword struct {
	Term  string
	Score float64
}

// TopKeywords ranks the in-vocabulary terms of text by their TF-IDF weight
// and returns the top k. Ties break alphabetically for deterministic output.
func (s *Scorer) TopKeywords(text string, k int) ([]Keyword, error) {
	if s.stats == nil {
		return nil, scorer.ErrNotFitted
	}

	keywords := make([]Keyword, 0)
	for term, weight := range s.queryVector(text) {
		keywords = append(keywords, Keyword{Term: term, Score: weight})
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

// queryVector builds the TF-IDF vector of arbitrary text over the corpus
// vocabulary. Out-of-vocabulary terms are dropped.
func (s *Scorer) queryVector(text string) map[string]float64 {
	terms := s.stats.Tokenize(text)

	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		if s.stats.InVocabulary(t) {
			counts[t]++
		}
	}

	vec := make(map[string]float64, len(counts))
	for term, count := range counts {
		vec[term] = s.termWeight(count, len(terms), s.idf[term])
	}

	return vec
}

func (s *Scorer) termWeight(count, textLen int, idf float64) float64 {
	tf := float64(count)
	if s.lengthNormalize && textLen > 0 {
		tf /= float64(textLen)
	}
	return tf * idf
}

// cosine divides a dot product by the vector norms, defining the similarity
// of zero vectors as 0 rather than NaN.
func cosine(dot, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

func norm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
