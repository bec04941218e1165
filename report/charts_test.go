package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/coursematch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", path)
}

func TestSimilarityColor(t *testing.T) {
	assert.Equal(t, strongColor, SimilarityColor(0.5))
	assert.Equal(t, mediumColor, SimilarityColor(0.3))
	assert.Equal(t, mutedColor, SimilarityColor(0.2))
	assert.Equal(t, mutedColor, SimilarityColor(-0.1))
}

func TestComparisonChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparison_1.png")
	require.NoError(t, ComparisonChart(path, "I want to learn how to hack into systems",
		ranking(2, 1, 1, 0), ranking(0.61, 0.3, 0.1, -0.05)))
	assertPNG(t, path)

	assert.ErrorIs(t, ComparisonChart(path, "q", nil, ranking(0.5)), ErrEmptyRanking)
}

func TestEmbeddingSpaceChart(t *testing.T) {
	courses := []core.Course{
		{Code: "CSI-160", Category: core.CategoryCSCore},
		{Code: "SEC-250", Category: core.CategoryCybersecurityCore},
		{Code: "MAT-310", Category: core.CategoryMath},
		{Code: "ART-101", Category: "Art"},
	}
	coords := [][]float64{{0, 0}, {1, 2}, {-3, 1}, {2, -2}}

	path := filepath.Join(t.TempDir(), "embedding_space.png")
	require.NoError(t, EmbeddingSpaceChart(path, courses, coords))
	assertPNG(t, path)

	assert.ErrorIs(t, EmbeddingSpaceChart(path, courses, coords[:2]), ErrCoordinateMismatch)
	assert.ErrorIs(t, EmbeddingSpaceChart(path, courses, [][]float64{{0}, {1}, {2}, {3}}), ErrCoordinateMismatch)
	assert.ErrorIs(t, EmbeddingSpaceChart(path, nil, nil), ErrEmptyRanking)
}
