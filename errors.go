package rankgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rankgo/corpus"
	"github.com/hupe1980/rankgo/scorer"
)

var (
	// ErrEmptyCorpus is returned when Fit is called with zero documents.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrNotFitted is returned when Rank, Score or Explain is called
	// before Fit.
	ErrNotFitted = errors.New("not fitted")

	// ErrInvalidTopK is returned when top-k is not positive.
	ErrInvalidTopK = errors.New("top_k must be positive")
)

// ErrInvalidParameter indicates a scoring parameter outside its domain.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Name  string
	Value float64
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrDocumentOutOfRange indicates a document index outside the fitted corpus.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDocumentOutOfRange struct {
	Index int
	Count int
	cause error
}

func (e *ErrDocumentOutOfRange) Error() string {
	return fmt.Sprintf("document index %d out of range (%d documents)", e.Index, e.Count)
}

func (e *ErrDocumentOutOfRange) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the root taxonomy so callers
// only need to match against rankgo errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, corpus.ErrEmptyCorpus) {
		return fmt.Errorf("%w: %w", ErrEmptyCorpus, err)
	}
	if errors.Is(err, scorer.ErrNotFitted) {
		return fmt.Errorf("%w: %w", ErrNotFitted, err)
	}

	var ip *scorer.ErrInvalidParameter
	if errors.As(err, &ip) {
		return &ErrInvalidParameter{Name: ip.Name, Value: ip.Value, cause: err}
	}
	var oor *scorer.ErrDocumentOutOfRange
	if errors.As(err, &oor) {
		return &ErrDocumentOutOfRange{Index: oor.Index, Count: oor.Count, cause: err}
	}

	return err
}
