// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coursematch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/coursematch/ai"
	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/embedding"
	"github.com/poiesic/coursematch/search"
	"gonum.org/v1/gonum/floats"
)

// Backend names the semantic ranking method.
type Backend string

const (
	// BackendLSA is the locally fitted TF-IDF and truncated SVD model.
	BackendLSA Backend = "lsa"
	// BackendRemote ranks with vectors from an ai.Embedder.
	BackendRemote Backend = "remote"
)

var (
	// ErrCatalogRequired is returned when no catalog is given.
	ErrCatalogRequired = errors.New("catalog required")
	// ErrUnknownBackend is returned for an unrecognised Backend value.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrNoVocabulary is returned by vocabulary queries on the remote backend.
	ErrNoVocabulary = errors.New("backend has no vocabulary")
)

// Stats describes a fitted engine.
type Stats struct {
	Backend           Backend
	Courses           int
	VocabularySize    int
	Dimensions        int
	ExplainedVariance float64
	Digest            core.ID
}

// Engine pairs a course catalog with a keyword baseline and a fitted
// semantic backend.
type Engine struct {
	catalog *core.Catalog
	courses []core.Course
	backend Backend
	model   *embedding.Model
	remote  *search.SemanticSearcher
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	modelOpts  []embedding.Option
	embedder   ai.Embedder
	remoteOpts []search.SemanticOption
	logger     *slog.Logger
}

// WithModelOptions passes options to the LSA model.
func WithModelOptions(opts ...embedding.Option) EngineOption {
	return func(o *engineOptions) {
		o.modelOpts = append(o.modelOpts, opts...)
	}
}

// WithRemoteEmbedder selects the remote backend using embedder.
func WithRemoteEmbedder(embedder ai.Embedder, opts ...search.SemanticOption) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
		o.remoteOpts = append(o.remoteOpts, opts...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine fits the selected backend over the catalog.
// The LSA backend is used unless WithRemoteEmbedder is given.
func NewEngine(ctx context.Context, catalog *core.Catalog, opts ...EngineOption) (*Engine, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	options := &engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	e := &Engine{
		catalog: catalog,
		courses: catalog.Courses(),
		backend: BackendLSA,
		logger:  options.logger.With("component", "engine"),
	}

	if options.embedder != nil {
		e.backend = BackendRemote
		remoteOpts := append([]search.SemanticOption{search.WithLogger(options.logger)}, options.remoteOpts...)
		remote, err := search.NewSemanticSearcher(ctx, options.embedder, e.courses, remoteOpts...)
		if err != nil {
			return nil, fmt.Errorf("indexing courses: %w", err)
		}
		e.remote = remote
		e.logger.Debug("engine ready", "backend", e.backend, "courses", len(e.courses))
		return e, nil
	}

	modelOpts := append([]embedding.Option{embedding.WithLogger(options.logger)}, options.modelOpts...)
	model, err := embedding.NewModel(modelOpts...)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(catalog.Texts()); err != nil {
		return nil, fmt.Errorf("fitting model: %w", err)
	}
	e.model = model
	e.logger.Debug("engine ready", "backend", e.backend, "courses", len(e.courses))
	return e, nil
}

// Backend returns the semantic backend in use.
func (e *Engine) Backend() Backend {
	return e.backend
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *core.Catalog {
	return e.catalog
}

// Model returns the LSA model, or nil for the remote backend.
func (e *Engine) Model() *embedding.Model {
	return e.model
}

// Keyword ranks courses with the keyword baseline.
func (e *Engine) Keyword(query string, topK int) core.Ranking {
	return search.KeywordSearch(query, e.courses, topK)
}

// Recommend ranks courses with the semantic backend.
func (e *Engine) Recommend(ctx context.Context, query string, topK int) (core.Ranking, error) {
	switch e.backend {
	case BackendLSA:
		return e.model.Recommend(query, e.courses, topK)
	case BackendRemote:
		return e.remote.Recommend(ctx, query, topK)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, e.backend)
}

// Comparison holds both rankings for one query.
type Comparison struct {
	Query    string
	Keyword  core.Ranking
	Semantic core.Ranking
}

// Compare runs the keyword baseline and the semantic backend on query.
func (e *Engine) Compare(ctx context.Context, query string, topK int) (Comparison, error) {
	semantic, err := e.Recommend(ctx, query, topK)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{Query: query, Keyword: e.Keyword(query, topK), Semantic: semantic}, nil
}

// Embeddings returns one vector per course in catalog order.
func (e *Engine) Embeddings() ([][]float64, error) {
	if e.backend == BackendRemote {
		return e.remote.Embeddings(), nil
	}
	return e.model.Embeddings()
}

// TopFeatures returns the heaviest vocabulary terms of the LSA model.
func (e *Engine) TopFeatures(n int) ([]string, error) {
	if e.backend != BackendLSA {
		return nil, ErrNoVocabulary
	}
	return e.model.TopFeatures(n)
}

// Stats summarises the fitted backend. Vocabulary and variance are zero for
// the remote backend.
func (e *Engine) Stats() (Stats, error) {
	stats := Stats{
		Backend: e.backend,
		Courses: len(e.courses),
		Digest:  e.catalog.Digest(),
	}
	if e.backend == BackendRemote {
		stats.Dimensions = e.remote.Dimensions()
		return stats, nil
	}

	size, err := e.model.VocabularySize()
	if err != nil {
		return Stats{}, err
	}
	variance, err := e.model.ExplainedVarianceRatio()
	if err != nil {
		return Stats{}, err
	}
	stats.VocabularySize = size
	stats.Dimensions = e.model.Dimensions()
	stats.ExplainedVariance = floats.Sum(variance)
	return stats, nil
}
