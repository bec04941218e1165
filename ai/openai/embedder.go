package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/coursematch/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Embedder implements ai.Embedder using OpenAI-compatible embedding APIs.
type Embedder struct {
	embedder  embeddings.Embedder
	batchSize int
	logger    *slog.Logger
}

func newEmbedder(config *ai.Config, logger *slog.Logger) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken(config.Token),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(client,
		embeddings.WithStripNewLines(true),
		embeddings.WithBatchSize(config.BatchSize),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Embedder{
		embedder:  embedder,
		batchSize: config.BatchSize,
		logger:    logger.With("component", "openai-embedder", "model", config.EmbeddingModel),
	}, nil
}

// NewEmbedder creates a new embedder using the provided configuration.
// The configuration is validated (and normalized) before the client is built.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	e, err := newEmbedder(config, nil)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// NewEmbedderWithLogger is NewEmbedder with an explicit logger.
func NewEmbedderWithLogger(config *ai.Config, logger *slog.Logger) (ai.Embedder, error) {
	e, err := newEmbedder(config, logger)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating embedding for single text", "length", len(text))

	vector, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, err
	}

	if len(vector) == 0 {
		e.logger.Warn("embedder returned empty result")
		return []float32{}, nil
	}

	return vector, nil
}

// EmbedTexts generates vector embeddings for multiple text strings.
// Requests are split into batches of the configured size.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating embeddings for texts", "count", len(texts), "batch_size", e.batchSize)

	vectors, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, err
	}

	return vectors, nil
}
