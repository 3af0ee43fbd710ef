package scorer

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rankgo/corpus"
)

// ErrNotFitted is returned when Score or Explain is called before Fit.
var ErrNotFitted = errors.New("scorer must be fitted before scoring")

// ErrInvalidParameter indicates a tuning parameter outside its domain.
type ErrInvalidParameter struct {
	Name  string
	Value float64
	// Domain describes the accepted range, e.g. "[0, 1]".
	Domain string
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: must be in %s", e.Name, e.Value, e.Domain)
}

// ErrDocumentOutOfRange indicates a document index outside the fitted corpus.
type ErrDocumentOutOfRange struct {
	Index int
	Count int
}

func (e *ErrDocumentOutOfRange) Error() string {
	return fmt.Sprintf("document index %d out of range: corpus has %d documents", e.Index, e.Count)
}

// TermScore is the per-term breakdown of a document score. The contributions
// of an explanation sum to the score reported for the same query/document
// pair.
type TermScore struct {
	// Term is the normalized query term.
	Term string
	// TermFrequency is the raw occurrence count of Term in the document.
	TermFrequency int
	// IDF is the inverse document frequency weight of Term.
	IDF float64
	// Contribution is the share of the document score owed to Term.
	Contribution float64
}

// Scorer is the shared scoring capability of the ranking models.
//
// A Scorer owns the Statistics passed to Fit. Fitting again replaces the
// prior statistics wholesale; callers that interleave Fit with Score must
// serialize externally.
type Scorer interface {
	// Fit prepares the scorer for queries against stats.
	Fit(stats *corpus.Statistics) error
	// Score computes the relevance of document docIndex to query.
	// A score of 0 means no query term matched.
	Score(query string, docIndex int) (float64, error)
	// Explain reproduces the per-term arithmetic behind Score, ordered by
	// first appearance of the term in the query.
	Explain(query string, docIndex int) ([]TermScore, error)
	// Stats returns the fitted statistics, or nil before Fit.
	Stats() *corpus.Statistics
}
