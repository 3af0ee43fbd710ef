package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rankgo/tokenizer"
)

func TestFit_EmptyCorpus(t *testing.T) {
	_, err := Fit(nil, tokenizer.NewSimple())
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Fit([]string{}, tokenizer.NewSimple())
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFit_SingleDocument(t *testing.T) {
	stats, err := Fit([]string{"only one document"}, tokenizer.NewSimple())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DocumentCount())
	assert.Equal(t, 3.0, stats.AvgDocumentLength())
	assert.Equal(t, 3, stats.VocabularySize())

	for term := range stats.Vocabulary() {
		assert.Equal(t, 1, stats.DocumentFrequency(term))
	}
}

func TestFit_Statistics(t *testing.T) {
	docs := []string{
		"the cat sat on the mat",
		"the dog sat on the log",
		"cats and dogs are pets",
	}

	stats, err := Fit(docs, tokenizer.NewSimple())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.DocumentCount())
	assert.InDelta(t, 17.0/3.0, stats.AvgDocumentLength(), 1e-12)
	assert.Equal(t, int64(17), stats.TotalTerms())

	// Document frequency counts documents, not occurrences: "the" appears
	// twice in each of two documents but df is 2.
	assert.Equal(t, 2, stats.DocumentFrequency("the"))
	assert.Equal(t, 1, stats.DocumentFrequency("cat"))
	assert.Equal(t, 0, stats.DocumentFrequency("zebra"))

	assert.Equal(t, 2, stats.TermFrequency(0, "the"))
	assert.Equal(t, 1, stats.TermFrequency(0, "cat"))
	assert.Equal(t, 0, stats.TermFrequency(2, "cat"))

	assert.True(t, stats.InVocabulary("pets"))
	assert.False(t, stats.InVocabulary("zebra"))
}

func TestFit_Invariants(t *testing.T) {
	docs := []string{
		"alpha beta alpha gamma",
		"beta beta delta",
		"gamma",
		"alpha beta gamma delta epsilon",
	}

	stats, err := Fit(docs, tokenizer.NewSimple())
	require.NoError(t, err)

	// df(t) <= N for every term.
	for term := range stats.Vocabulary() {
		assert.LessOrEqual(t, stats.DocumentFrequency(term), stats.DocumentCount())
		assert.GreaterOrEqual(t, stats.DocumentFrequency(term), 1)
	}

	// Sum of a document's term frequencies equals its length.
	for i := 0; i < stats.DocumentCount(); i++ {
		var sum int
		for _, count := range stats.TermFrequencies(i) {
			sum += count
		}
		assert.Equal(t, stats.DocumentLength(i), sum)
	}
}

func TestStatistics_MatchingDocuments(t *testing.T) {
	docs := []string{"alpha beta", "gamma", "alpha delta"}

	stats, err := Fit(docs, tokenizer.NewSimple())
	require.NoError(t, err)

	var matches []int
	for i := range stats.MatchingDocuments("alpha") {
		matches = append(matches, i)
	}
	assert.Equal(t, []int{0, 2}, matches)

	matches = nil
	for i := range stats.MatchingDocuments("zebra") {
		matches = append(matches, i)
	}
	assert.Empty(t, matches)
}

func TestStatistics_MinMaxDocumentLength(t *testing.T) {
	docs := []string{"one", "one two three", "one two"}

	stats, err := Fit(docs, tokenizer.NewSimple())
	require.NoError(t, err)

	min, max := stats.MinMaxDocumentLength()
	assert.Equal(t, 1, min)
	assert.Equal(t, 3, max)
}

func TestFit_NilTokenizerDefaults(t *testing.T) {
	stats, err := Fit([]string{"Hello World"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DocumentFrequency("hello"))
	assert.Equal(t, []string{"hello", "world"}, stats.Tokenize("Hello, World!"))
}

func TestFit_EmptyDocumentAllowed(t *testing.T) {
	// Empty documents are valid corpus members; only the empty corpus fails.
	stats, err := Fit([]string{"", "alpha"}, tokenizer.NewSimple())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.DocumentCount())
	assert.Equal(t, 0, stats.DocumentLength(0))
	assert.Equal(t, 0.5, stats.AvgDocumentLength())
}
