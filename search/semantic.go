package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/poiesic/coursematch/ai"
	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/embedding"
)

// SemanticSearcher ranks courses by embedding similarity using a remote embedder.
type SemanticSearcher struct {
	embedder   ai.Embedder
	courses    []core.Course
	vectors    [][]float64
	batchSize  int
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// SemanticOption configures a SemanticSearcher.
type SemanticOption func(*SemanticSearcher) error

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SemanticOption {
	return func(s *SemanticSearcher) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithBatchSize sets how many course texts are sent per embedding request.
func WithBatchSize(size int) SemanticOption {
	return func(s *SemanticSearcher) error {
		if size < 1 {
			return fmt.Errorf("batch size must be at least 1, got %d", size)
		}
		s.batchSize = size
		return nil
	}
}

// WithRetry sets the attempt count and base delay for embedding requests.
func WithRetry(maxAttempts int, baseDelay time.Duration) SemanticOption {
	return func(s *SemanticSearcher) error {
		if maxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		s.maxRetries = maxAttempts
		s.retryDelay = baseDelay
		return nil
	}
}

// WithConfig applies the batch and retry settings of an ai.Config.
func WithConfig(cfg *ai.Config) SemanticOption {
	return func(s *SemanticSearcher) error {
		if err := WithBatchSize(cfg.BatchSize)(s); err != nil {
			return err
		}
		return WithRetry(cfg.MaxRetries, cfg.RetryDelay)(s)
	}
}

// NewSemanticSearcher embeds every course text and returns a searcher over them.
func NewSemanticSearcher(ctx context.Context, embedder ai.Embedder, courses []core.Course, opts ...SemanticOption) (*SemanticSearcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if len(courses) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &SemanticSearcher{
		embedder:   embedder,
		courses:    append([]core.Course(nil), courses...),
		batchSize:  16,
		maxRetries: 3,
		retryDelay: time.Second,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "semantic-searcher")

	if err := s.index(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SemanticSearcher) index(ctx context.Context) error {
	texts := core.CourseTexts(s.courses)
	s.vectors = make([][]float64, 0, len(texts))

	for start := 0; start < len(texts); start += s.batchSize {
		end := min(start+s.batchSize, len(texts))
		batch := texts[start:end]

		var vectors [][]float32
		err := retryWithBackoff(ctx, s.logger, func() error {
			var err error
			vectors, err = s.embedder.EmbedTexts(ctx, batch)
			return err
		}, s.maxRetries, s.retryDelay)
		if err != nil {
			return fmt.Errorf("embedding courses %d-%d: %w", start, end-1, err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("%w: got %d for %d texts", ErrEmbeddingCountMismatch, len(vectors), len(batch))
		}
		for i, v := range vectors {
			if len(v) == 0 || (len(s.vectors) > 0 && len(v) != len(s.vectors[0])) {
				return fmt.Errorf("%w: course %d has %d dimensions, want %d",
					ErrDimensionMismatch, start+i, len(v), s.Dimensions())
			}
			s.vectors = append(s.vectors, toFloat64(v))
		}
		s.logger.Debug("embedded batch", "start", start, "size", len(batch))
	}

	s.logger.Info("indexed courses", "count", len(s.vectors))
	return nil
}

// Courses returns the indexed courses in corpus order.
func (s *SemanticSearcher) Courses() []core.Course {
	return append([]core.Course(nil), s.courses...)
}

// Embeddings returns the course vectors in corpus order.
func (s *SemanticSearcher) Embeddings() [][]float64 {
	out := make([][]float64, len(s.vectors))
	for i, v := range s.vectors {
		out[i] = append([]float64(nil), v...)
	}
	return out
}

// Dimensions returns the length of the course vectors.
func (s *SemanticSearcher) Dimensions() int {
	if len(s.vectors) == 0 {
		return 0
	}
	return len(s.vectors[0])
}

// Recommend embeds the query and returns the topK courses by cosine similarity.
// topK <= 0 returns every course.
func (s *SemanticSearcher) Recommend(ctx context.Context, query string, topK int) (core.Ranking, error) {
	var vector []float32
	err := retryWithBackoff(ctx, s.logger, func() error {
		var err error
		vector, err = s.embedder.EmbedText(ctx, query)
		return err
	}, s.maxRetries, s.retryDelay)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vector) != s.Dimensions() {
		return nil, fmt.Errorf("%w: query has %d dimensions, want %d", ErrDimensionMismatch, len(vector), s.Dimensions())
	}
	q := toFloat64(vector)

	ranking := make(core.Ranking, len(s.courses))
	for i, c := range s.courses {
		ranking[i] = core.ScoredCourse{Course: c, Score: embedding.CosineSimilarity(q, s.vectors[i])}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	if topK <= 0 {
		return ranking, nil
	}
	return ranking.Top(topK), nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
