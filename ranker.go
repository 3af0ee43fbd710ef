package rankgo

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rankgo/corpus"
	"github.com/hupe1980/rankgo/scorer"
	"github.com/hupe1980/rankgo/scorer/bm25"
	"github.com/hupe1980/rankgo/scorer/tfidf"
	"github.com/hupe1980/rankgo/tokenizer"
)

// Result is a scored document.
type Result struct {
	// Index is the document's position in the fitted corpus.
	Index int
	// Document is the raw document text.
	Document string
	// Score is the relevance score. Non-negative for BM25, in [0, 1] for
	// TF-IDF cosine similarity. Exactly 0 means no query term matched.
	Score float64
}

// CorpusInfo summarizes a fitted corpus.
type CorpusInfo struct {
	Documents         int
	VocabularySize    int
	AvgDocumentLength float64
	TotalTerms        int64
	MinDocumentLength int
	MaxDocumentLength int
}

// Ranker orchestrates the fit/query lifecycle over a scoring model: fit a
// corpus once, then rank arbitrary queries against it repeatedly.
//
// A Ranker is safe for concurrent Rank/Score/Explain calls after Fit has
// returned. Interleaving Fit with queries requires external synchronization,
// e.g. a read-write lock held by the caller.
type Ranker struct {
	scorer           scorer.Scorer
	tokenizer        tokenizer.Tokenizer
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int

	stats *corpus.Statistics
}

// New creates a Ranker around the given scoring model.
func New(s scorer.Scorer, optFns ...Option) *Ranker {
	opts := options{
		tokenizer:        tokenizer.NewSimple(),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      runtime.GOMAXPROCS(0),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.parallelism < 1 {
		opts.parallelism = runtime.GOMAXPROCS(0)
	}

	return &Ranker{
		scorer:           s,
		tokenizer:        opts.tokenizer,
		logger:           opts.logger,
		metricsCollector: opts.metricsCollector,
		parallelism:      opts.parallelism,
	}
}

// NewBM25 creates a Ranker using BM25 with the standard parameters
// (k1=1.2, b=0.75). Use New with a configured bm25.Scorer for other values.
func NewBM25(optFns ...Option) *Ranker {
	return New(bm25.New(), optFns...)
}

// NewTFIDF creates a Ranker using TF-IDF cosine similarity with length
// normalization. Use New with a configured tfidf.Scorer for the raw-count
// variant.
func NewTFIDF(optFns ...Option) *Ranker {
	return New(tfidf.New(), optFns...)
}

// Fit builds corpus statistics from documents and fits the scoring model
// against them. The prior statistics, if any, are replaced wholesale; on
// error the Ranker keeps its previous fitted state.
func (r *Ranker) Fit(documents []string) error {
	start := time.Now()

	stats, err := corpus.Fit(documents, r.tokenizer)
	if err == nil {
		err = r.scorer.Fit(stats)
	}
	err = translateError(err)

	r.metricsCollector.RecordFit(len(documents), time.Since(start), err)
	if err != nil {
		r.logger.LogFit(context.Background(), len(documents), 0, err)
		return err
	}

	r.stats = stats
	r.logger.LogFit(context.Background(), stats.DocumentCount(), stats.VocabularySize(), nil)

	return nil
}

// Rank scores every fitted document against query and returns the topK best,
// sorted by descending score with ascending document index as tie-break.
// Fewer than topK results are returned when the corpus is smaller.
func (r *Ranker) Rank(query string, topK int) ([]Result, error) {
	start := time.Now()

	results, err := r.rank(query, topK)

	r.metricsCollector.RecordRank(topK, time.Since(start), err)
	r.logger.LogRank(context.Background(), topK, len(results), err)

	return results, err
}

func (r *Ranker) rank(query string, topK int) ([]Result, error) {
	if r.stats == nil {
		return nil, ErrNotFitted
	}
	if topK < 1 {
		return nil, ErrInvalidTopK
	}

	n := r.stats.DocumentCount()
	results := make([]Result, n)

	if err := r.scoreAll(query, results); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Index < results[j].Index
	})

	if topK < n {
		results = results[:topK]
	}

	return results, nil
}

// scoreAll fills results with one scored entry per document. Documents are
// independent, so they are scored in parallel; ordering is restored by
// writing each result to its own slot.
func (r *Ranker) scoreAll(query string, results []Result) error {
	n := len(results)

	chunk := (n + r.parallelism - 1) / r.parallelism
	if chunk < 1 {
		chunk = 1
	}

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				score, err := r.scorer.Score(query, i)
				if err != nil {
					return err
				}
				results[i] = Result{
					Index:    i,
					Document: r.stats.Document(i).Text,
					Score:    score,
				}
			}
			return nil
		})
	}

	return translateError(g.Wait())
}

// Score computes the relevance of a single document to query.
func (r *Ranker) Score(query string, docIndex int) (float64, error) {
	if r.stats == nil {
		return 0, ErrNotFitted
	}

	score, err := r.scorer.Score(query, docIndex)

	return score, translateError(err)
}

// Explain returns the per-term breakdown of the score for a query/document
// pair. The contributions sum to the value Score returns for the same pair.
func (r *Ranker) Explain(query string, docIndex int) ([]scorer.TermScore, error) {
	start := time.Now()

	var breakdown []scorer.TermScore
	err := ErrNotFitted
	if r.stats != nil {
		breakdown, err = r.scorer.Explain(query, docIndex)
		err = translateError(err)
	}

	r.metricsCollector.RecordExplain(time.Since(start), err)
	r.logger.LogExplain(context.Background(), docIndex, len(breakdown), err)

	return breakdown, err
}

// CorpusInfo returns summary statistics of the fitted corpus.
func (r *Ranker) CorpusInfo() (CorpusInfo, error) {
	if r.stats == nil {
		return CorpusInfo{}, ErrNotFitted
	}

	min, max := r.stats.MinMaxDocumentLength()

	return CorpusInfo{
		Documents:         r.stats.DocumentCount(),
		VocabularySize:    r.stats.VocabularySize(),
		AvgDocumentLength: r.stats.AvgDocumentLength(),
		TotalTerms:        r.stats.TotalTerms(),
		MinDocumentLength: min,
		MaxDocumentLength: max,
	}, nil
}

// Scorer returns the underlying scoring model, e.g. to reach model-specific
// APIs like TopKeywords.
func (r *Ranker) Scorer() scorer.Scorer {
	return r.scorer
}
