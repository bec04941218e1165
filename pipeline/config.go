package pipeline

import (
	"fmt"
	"slices"

	"github.com/poiesic/coursematch"
	"github.com/poiesic/coursematch/ai"
	"github.com/poiesic/coursematch/corpus"
	"github.com/poiesic/coursematch/embedding"
	"github.com/poiesic/coursematch/report"
	"github.com/poiesic/coursematch/search"
)

// Output file names inside Config.OutputDir.
const (
	ProjectionFile = "embedding_space.png"
	ResultsFile    = "model_results.json"
)

// ComparisonFile returns the chart name for the i-th query, counting from 1.
func ComparisonFile(i int) string {
	return fmt.Sprintf("comparison_%d.png", i)
}

// Config holds the settings of one run.
type Config struct {
	// OutputDir receives the charts and the results file. Created if missing.
	OutputDir string

	// Queries are ranked in order. Default: the built-in demo queries.
	Queries []string

	// TopK is the number of courses ranked per method. Default: 5
	TopK int

	// ResultsTopN is the number of entries per method in the results file. Default: 3
	ResultsTopN int

	// MaxFeatures caps the LSA vocabulary. Default: 500
	MaxFeatures int

	// Components is the requested LSA dimensionality, clamped to courses-1. Default: 50
	Components int

	// Stemming toggles Porter stemming in the LSA analyzer. Default: true
	Stemming bool

	// Seed drives the projection layout. Default: 42
	Seed uint64

	// Perplexity for the projection, clamped to courses-1. Default: 7
	Perplexity float64

	// Iterations of the projection. Default: 1000
	Iterations int

	// Backend selects the semantic ranking method. Default: lsa
	Backend coursematch.Backend

	// AI configures the remote backend.
	AI *ai.Config
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithOutputDir sets the output directory.
func WithOutputDir(dir string) ConfigOption {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

// WithQueries replaces the queries.
func WithQueries(queries ...string) ConfigOption {
	return func(c *Config) {
		c.Queries = slices.Clone(queries)
	}
}

// WithTopK sets the ranking depth.
func WithTopK(k int) ConfigOption {
	return func(c *Config) {
		c.TopK = k
	}
}

// WithModel sets the LSA vocabulary cap, dimensionality and stemming.
func WithModel(maxFeatures, components int, stemming bool) ConfigOption {
	return func(c *Config) {
		c.MaxFeatures = maxFeatures
		c.Components = components
		c.Stemming = stemming
	}
}

// WithProjection sets the projection seed, perplexity and iteration count.
func WithProjection(seed uint64, perplexity float64, iterations int) ConfigOption {
	return func(c *Config) {
		c.Seed = seed
		c.Perplexity = perplexity
		c.Iterations = iterations
	}
}

// WithBackend selects the semantic backend.
func WithBackend(b coursematch.Backend) ConfigOption {
	return func(c *Config) {
		c.Backend = b
	}
}

// WithAIConfig sets the remote backend configuration.
func WithAIConfig(cfg *ai.Config) ConfigOption {
	return func(c *Config) {
		c.AI = cfg
	}
}

// DefaultConfig returns the settings of the demo run.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:   "output",
		Queries:     corpus.Queries(),
		TopK:        search.DefaultTopK,
		ResultsTopN: report.ResultsTopN,
		MaxFeatures: embedding.DefaultMaxFeatures,
		Components:  embedding.DefaultComponents,
		Stemming:    true,
		Seed:        42,
		Perplexity:  7,
		Iterations:  1000,
		Backend:     coursematch.BackendLSA,
		AI:          ai.DefaultConfig(),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Queries) == 0 {
		return ErrNoQueries
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: OutputDir is required", ErrInvalidConfig)
	}
	if c.TopK < 1 {
		return fmt.Errorf("%w: TopK must be at least 1", ErrInvalidConfig)
	}
	if c.ResultsTopN < 1 {
		return fmt.Errorf("%w: ResultsTopN must be at least 1", ErrInvalidConfig)
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("%w: MaxFeatures must be at least 1", ErrInvalidConfig)
	}
	if c.Components < 1 {
		return fmt.Errorf("%w: Components must be at least 1", ErrInvalidConfig)
	}
	if c.Perplexity <= 0 {
		return fmt.Errorf("%w: Perplexity must be positive", ErrInvalidConfig)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: Iterations must be at least 1", ErrInvalidConfig)
	}
	switch c.Backend {
	case coursematch.BackendLSA:
	case coursematch.BackendRemote:
		if c.AI == nil {
			return fmt.Errorf("%w: AI config is required for the remote backend", ErrInvalidConfig)
		}
		if err := c.AI.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, coursematch.ErrUnknownBackend, c.Backend)
	}
	return nil
}
