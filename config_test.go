package rankgo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rankgo/scorer/bm25"
	"github.com/hupe1980/rankgo/scorer/tfidf"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rankgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
model: bm25
k1: 1.5
b: 0.5
stop_words: [the, a, an]
top_k: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ModelBM25, cfg.Model)
	require.NotNil(t, cfg.K1)
	assert.Equal(t, 1.5, *cfg.K1)
	require.NotNil(t, cfg.B)
	assert.Equal(t, 0.5, *cfg.B)
	assert.Equal(t, []string{"the", "a", "an"}, cfg.StopWords)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, 5, cfg.ResolveTopK(10))
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "model: [not scalar"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "model: word2vec"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "b: 1.5"))
	var ip *ErrInvalidParameter
	assert.ErrorAs(t, err, &ip)

	_, err = LoadConfig(writeConfig(t, "k1: -2"))
	assert.ErrorAs(t, err, &ip)

	_, err = LoadConfig(writeConfig(t, "top_k: -1"))
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.ResolveTopK(10))

	r, err := cfg.NewRanker()
	require.NoError(t, err)

	s, ok := r.Scorer().(*bm25.Scorer)
	require.True(t, ok)
	assert.Equal(t, bm25.DefaultK1, s.K1())
	assert.Equal(t, bm25.DefaultB, s.B())
}

func TestConfig_NewRanker(t *testing.T) {
	k1, b := 2.0, 0.3
	cfg := &Config{Model: ModelBM25, K1: &k1, B: &b, StopWords: []string{"the"}}

	r, err := cfg.NewRanker()
	require.NoError(t, err)

	s, ok := r.Scorer().(*bm25.Scorer)
	require.True(t, ok)
	assert.Equal(t, 2.0, s.K1())
	assert.Equal(t, 0.3, s.B())

	require.NoError(t, r.Fit([]string{"the cat", "the dog"}))
	info, err := r.CorpusInfo()
	require.NoError(t, err)
	assert.Equal(t, 2, info.VocabularySize) // "the" filtered out

	norm := false
	cfg = &Config{Model: ModelTFIDF, TFNormalization: &norm}
	r, err = cfg.NewRanker()
	require.NoError(t, err)

	ts, ok := r.Scorer().(*tfidf.Scorer)
	require.True(t, ok)
	assert.False(t, ts.LengthNormalize())
}
