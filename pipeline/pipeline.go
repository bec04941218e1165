package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/poiesic/coursematch"
	"github.com/poiesic/coursematch/ai"
	"github.com/poiesic/coursematch/ai/openai"
	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/embedding"
	"github.com/poiesic/coursematch/projection"
	"github.com/poiesic/coursematch/report"
	"github.com/poiesic/coursematch/search"
)

// QueryRanking holds both rankings for one query.
type QueryRanking struct {
	Index     int // 1-based
	Query     string
	Keyword   core.Ranking
	Embedding core.Ranking
}

// Summary describes a finished run. Fields are filled in as stages complete.
type Summary struct {
	coursematch.Stats
	TopFeatures    []string
	Queries        []QueryRanking
	ChartPaths     []string
	ProjectionPath string
	ResultsPath    string
}

// Pipeline runs the comparison over a catalog.
type Pipeline struct {
	catalog  *core.Catalog
	config   *Config
	embedder ai.Embedder
	monitor  Monitor
	logger   *slog.Logger
	// base is the caller's logger before the pipeline tags it; components
	// add their own "component" attribute to it.
	base *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithMonitor sets the stage observer.
func WithMonitor(m Monitor) Option {
	return func(p *Pipeline) error {
		if m == nil {
			m = &noopMonitor{}
		}
		p.monitor = m
		return nil
	}
}

// WithEmbedder supplies the embedder for the remote backend instead of
// building one from Config.AI.
func WithEmbedder(e ai.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = e
		return nil
	}
}

// New validates cfg and creates a pipeline. A nil cfg uses DefaultConfig.
func New(catalog *core.Catalog, cfg *Config, opts ...Option) (*Pipeline, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalog: catalog,
		config:  cfg,
		monitor: &noopMonitor{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.base = p.logger
	p.logger = p.logger.With("component", "pipeline")
	return p, nil
}

// Run executes every stage in order. The first error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	cfg := p.config
	p.monitor.Start(p.catalog.Len(), p.catalog.Digest())

	engine, err := p.newEngine(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := engine.Stats()
	if err != nil {
		return nil, err
	}
	summary := &Summary{Stats: stats}
	if engine.Backend() == coursematch.BackendLSA {
		if summary.TopFeatures, err = engine.TopFeatures(10); err != nil {
			return nil, err
		}
	}
	p.logger.Info("backend ready", "backend", stats.Backend, "dimensions", stats.Dimensions)
	p.monitor.AfterFit(summary)

	for i, query := range cfg.Queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cmp, err := engine.Compare(ctx, query, cfg.TopK)
		if err != nil {
			return nil, fmt.Errorf("ranking query %d: %w", i+1, err)
		}
		result := QueryRanking{Index: i + 1, Query: query, Keyword: cmp.Keyword, Embedding: cmp.Semantic}
		summary.Queries = append(summary.Queries, result)
		p.monitor.QueryRanked(result)
	}

	p.monitor.Rendering(len(summary.Queries) + 1)
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	for _, q := range summary.Queries {
		path := filepath.Join(cfg.OutputDir, ComparisonFile(q.Index))
		if err := report.ComparisonChart(path, q.Query, q.Keyword, q.Embedding); err != nil {
			return nil, fmt.Errorf("comparison chart %d: %w", q.Index, err)
		}
		summary.ChartPaths = append(summary.ChartPaths, path)
		p.monitor.FileWritten(path)
	}

	if summary.ProjectionPath, err = p.writeProjection(engine); err != nil {
		return nil, err
	}
	p.monitor.FileWritten(summary.ProjectionPath)

	results := report.Results{CorpusDigest: stats.Digest.String()}
	for _, q := range summary.Queries {
		results.Queries = append(results.Queries, report.NewQueryResult(q.Query, q.Keyword, q.Embedding, cfg.ResultsTopN))
	}
	summary.ResultsPath = filepath.Join(cfg.OutputDir, ResultsFile)
	if err := report.WriteResults(summary.ResultsPath, results); err != nil {
		return nil, err
	}
	p.monitor.FileWritten(summary.ResultsPath)

	p.logger.Info("run complete", "queries", len(summary.Queries), "output", cfg.OutputDir)
	p.monitor.Finish(summary)
	return summary, nil
}

func (p *Pipeline) newEngine(ctx context.Context) (*coursematch.Engine, error) {
	cfg := p.config
	opts := []coursematch.EngineOption{coursematch.WithLogger(p.base)}

	if cfg.Backend == coursematch.BackendRemote {
		embedder := p.embedder
		if embedder == nil {
			var err error
			embedder, err = openai.NewEmbedderWithLogger(cfg.AI, p.base)
			if err != nil {
				return nil, fmt.Errorf("create embedder: %w", err)
			}
		}
		opts = append(opts, coursematch.WithRemoteEmbedder(embedder, search.WithConfig(cfg.AI)))
	} else {
		opts = append(opts, coursematch.WithModelOptions(
			embedding.WithMaxFeatures(cfg.MaxFeatures),
			embedding.WithComponents(cfg.Components),
			embedding.WithStemming(cfg.Stemming),
		))
	}

	return coursematch.NewEngine(ctx, p.catalog, opts...)
}

func (p *Pipeline) writeProjection(engine *coursematch.Engine) (string, error) {
	cfg := p.config
	vectors, err := engine.Embeddings()
	if err != nil {
		return "", err
	}

	tsne, err := projection.NewTSNE(
		projection.WithPerplexity(math.Min(cfg.Perplexity, float64(len(vectors)-1))),
		projection.WithIterations(cfg.Iterations),
		projection.WithSeed(cfg.Seed),
		projection.WithLogger(p.base),
	)
	if err != nil {
		return "", err
	}
	coords, err := tsne.Embed(vectors)
	if err != nil {
		return "", fmt.Errorf("projecting embeddings: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, ProjectionFile)
	if err := report.EmbeddingSpaceChart(path, p.catalog.Courses(), coords); err != nil {
		return "", fmt.Errorf("projection chart: %w", err)
	}
	return path, nil
}
