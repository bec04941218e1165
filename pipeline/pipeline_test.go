package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/coursematch"
	"github.com/poiesic/coursematch/ai/mock"
	"github.com/poiesic/coursematch/core"
	"github.com/poiesic/coursematch/corpus"
	"github.com/poiesic/coursematch/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMonitor struct {
	started  int
	fitted   *Summary
	queries  []string
	charts   int
	files    []string
	finished *Summary
}

func (m *recordingMonitor) Start(courses int, _ core.ID) { m.started = courses }
func (m *recordingMonitor) AfterFit(s *Summary)          { m.fitted = s }
func (m *recordingMonitor) QueryRanked(r QueryRanking)   { m.queries = append(m.queries, r.Query) }
func (m *recordingMonitor) Rendering(charts int)         { m.charts = charts }
func (m *recordingMonitor) FileWritten(path string)      { m.files = append(m.files, path) }
func (m *recordingMonitor) Finish(s *Summary)            { m.finished = s }

func testCatalog(t *testing.T) *core.Catalog {
	t.Helper()
	catalog, err := corpus.Catalog()
	require.NoError(t, err)
	return catalog
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrCatalogRequired)

	_, err = New(testCatalog(t), NewConfig(WithQueries()))
	assert.ErrorIs(t, err, ErrNoQueries)

	p, err := New(testCatalog(t), nil, WithLogger(nil), WithMonitor(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), p.config)
}

func TestRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	catalog := testCatalog(t)
	cfg := NewConfig(WithOutputDir(dir), WithProjection(42, 7, 300))
	monitor := &recordingMonitor{}

	p, err := New(catalog, cfg, WithMonitor(monitor))
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, coursematch.BackendLSA, summary.Backend)
	assert.Equal(t, catalog.Len(), summary.Courses)
	assert.Equal(t, catalog.Len()-1, summary.Dimensions)
	assert.Positive(t, summary.VocabularySize)
	assert.Len(t, summary.TopFeatures, 10)
	require.Len(t, summary.Queries, len(corpus.Queries()))
	for i, q := range summary.Queries {
		assert.Equal(t, i+1, q.Index)
		assert.Len(t, q.Keyword, 5)
		assert.Len(t, q.Embedding, 5)
	}

	// all outputs exist
	require.Len(t, summary.ChartPaths, len(corpus.Queries()))
	for i, path := range summary.ChartPaths {
		assert.Equal(t, filepath.Join(dir, ComparisonFile(i+1)), path)
		assert.FileExists(t, path)
	}
	assert.Equal(t, filepath.Join(dir, ProjectionFile), summary.ProjectionPath)
	assert.FileExists(t, summary.ProjectionPath)
	assert.FileExists(t, summary.ResultsPath)

	// monitor saw every stage
	assert.Equal(t, catalog.Len(), monitor.started)
	assert.NotNil(t, monitor.fitted)
	assert.Equal(t, corpus.Queries(), monitor.queries)
	assert.Equal(t, len(corpus.Queries())+1, monitor.charts)
	assert.Len(t, monitor.files, len(corpus.Queries())+2)
	assert.Same(t, summary, monitor.finished)
}

func TestRunResultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p, err := New(testCatalog(t), NewConfig(WithOutputDir(dir), WithProjection(42, 7, 250)))
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	results, err := report.ReadResults(summary.ResultsPath)
	require.NoError(t, err)
	assert.Equal(t, summary.Digest.String(), results.CorpusDigest)
	require.Len(t, results.Queries, len(summary.Queries))

	for i, q := range summary.Queries {
		got := results.Queries[i]
		assert.Equal(t, q.Query, got.Query)
		require.Len(t, got.KeywordTop, 3)
		require.Len(t, got.EmbeddingTop, 3)
		for j := 0; j < 3; j++ {
			assert.Equal(t, q.Keyword[j].Course.Code, got.KeywordTop[j].Code)
			assert.Equal(t, q.Keyword[j].Course.Name, got.KeywordTop[j].Name)
			assert.Equal(t, int(q.Keyword[j].Score), got.KeywordTop[j].Matches)
			assert.Equal(t, q.Embedding[j].Course.Code, got.EmbeddingTop[j].Code)
			assert.Equal(t, q.Embedding[j].Course.Name, got.EmbeddingTop[j].Name)
			assert.Equal(t, report.Round(q.Embedding[j].Score, 4), got.EmbeddingTop[j].Similarity)
		}
	}
}

func TestRunRemoteBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig(
		WithOutputDir(dir),
		WithQueries("Ethical Hacking"),
		WithBackend(coursematch.BackendRemote),
		WithProjection(1, 5, 250),
	)
	embedder := mock.NewMockEmbedder()

	p, err := New(testCatalog(t), cfg, WithEmbedder(embedder))
	require.NoError(t, err)

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, coursematch.BackendRemote, summary.Backend)
	assert.Equal(t, mock.DefaultDimensions, summary.Dimensions)
	assert.Zero(t, summary.VocabularySize)
	assert.Empty(t, summary.TopFeatures)
	require.Len(t, summary.Queries, 1)
	assert.Contains(t, summary.Queries[0].Embedding.Top(3).Codes(), "SEC-250")
	assert.FileExists(t, filepath.Join(dir, ResultsFile))
}

func TestRunLogsOneComponentPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := NewConfig(WithOutputDir(t.TempDir()), WithQueries("Ethical Hacking"), WithProjection(1, 5, 250))

	p, err := New(testCatalog(t), cfg, WithLogger(logger))
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)

	components := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		require.LessOrEqual(t, strings.Count(line, "component="), 1, line)
		if i := strings.Index(line, "component="); i >= 0 {
			components[strings.Fields(line[i:])[0]] = true
		}
	}
	assert.True(t, components["component=pipeline"])
	assert.True(t, components["component=engine"])
	assert.True(t, components["component=tsne"])
}

func TestRunCancelled(t *testing.T) {
	p, err := New(testCatalog(t), NewConfig(WithOutputDir(t.TempDir())))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunOutputDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	p, err := New(testCatalog(t), NewConfig(WithOutputDir(file), WithQueries("security")))
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	assert.Error(t, err)
}
