package rankgo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/rankgo/scorer"
	"github.com/hupe1980/rankgo/scorer/bm25"
	"github.com/hupe1980/rankgo/scorer/tfidf"
	"github.com/hupe1980/rankgo/tokenizer"
)

// Model names accepted in Config.
const (
	ModelBM25  = "bm25"
	ModelTFIDF = "tfidf"
)

// Config is the file-based configuration surface of the engine. Zero values
// fall back to the model defaults, so a minimal config only names the model:
//
//	model: bm25
//	k1: 1.5
//	b: 0.75
//	stop_words: [the, a, an]
//	top_k: 10
type Config struct {
	// Model selects the scoring model: "bm25" (default) or "tfidf".
	Model string `yaml:"model"`

	// K1 is the BM25 term-frequency saturation parameter.
	// Defaults to 1.2 when unset.
	K1 *float64 `yaml:"k1"`

	// B is the BM25 length-normalization strength.
	// Defaults to 0.75 when unset.
	B *float64 `yaml:"b"`

	// TFNormalization toggles TF length normalization for TF-IDF.
	// Defaults to true when unset.
	TFNormalization *bool `yaml:"tf_normalization"`

	// StopWords are excluded during tokenization.
	StopWords []string `yaml:"stop_words"`

	// TopK is the default result count for callers that rank with it.
	// Defaults to 10 when unset.
	TopK int `yaml:"top_k"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration domains. Scoring parameter domains are
// additionally enforced by the scorers at fit time.
func (c *Config) Validate() error {
	switch c.Model {
	case "", ModelBM25, ModelTFIDF:
	default:
		return fmt.Errorf("unknown model %q", c.Model)
	}

	if c.K1 != nil && *c.K1 < 0 {
		return &ErrInvalidParameter{Name: "k1", Value: *c.K1}
	}
	if c.B != nil && (*c.B < 0 || *c.B > 1) {
		return &ErrInvalidParameter{Name: "b", Value: *c.B}
	}
	if c.TopK < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTopK, c.TopK)
	}

	return nil
}

// ResolveTopK returns the configured top-k, or def when unset.
func (c *Config) ResolveTopK(def int) int {
	if c.TopK > 0 {
		return c.TopK
	}
	return def
}

// NewRanker builds a Ranker from the configuration. Additional options are
// applied after the config-derived ones, so they take precedence.
func (c *Config) NewRanker(optFns ...Option) (*Ranker, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var s scorer.Scorer
	switch c.Model {
	case ModelTFIDF:
		s = tfidf.New(func(o *tfidf.Options) {
			if c.TFNormalization != nil {
				o.LengthNormalize = *c.TFNormalization
			}
		})
	default:
		s = bm25.New(func(o *bm25.Options) {
			if c.K1 != nil {
				o.K1 = *c.K1
			}
			if c.B != nil {
				o.B = *c.B
			}
		})
	}

	opts := []Option{
		WithTokenizer(tokenizer.NewSimple(tokenizer.WithStopWords(c.StopWords...))),
	}
	opts = append(opts, optFns...)

	return New(s, opts...), nil
}
