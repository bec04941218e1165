package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoClusters returns five points near the origin followed by five points
// near (10, 10, 10).
func twoClusters() [][]float64 {
	var data [][]float64
	for _, base := range []float64{0, 10} {
		for i := 0; i < 5; i++ {
			off := float64(i) * 0.1
			data = append(data, []float64{base + off, base - off, base + off/2})
		}
	}
	return data
}

func distance(a, b []float64) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

func TestNewTSNEOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero perplexity", WithPerplexity(0)},
		{"zero iterations", WithIterations(0)},
		{"negative learning rate", WithLearningRate(-1)},
		{"exaggeration below one", WithEarlyExaggeration(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTSNE(tt.opt)
			assert.ErrorIs(t, err, ErrInvalidOption)
			assert.Nil(t, ts)
		})
	}

	ts, err := NewTSNE(WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 30.0, ts.perplexity)
	assert.Equal(t, uint64(42), ts.seed)
}

func TestTSNEInputValidation(t *testing.T) {
	ts, err := NewTSNE()
	require.NoError(t, err)

	_, err = ts.Embed(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = ts.Embed([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = ts.Embed([][]float64{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrRaggedInput)
}

func TestTSNEShapeAndFinite(t *testing.T) {
	ts, err := NewTSNE(WithIterations(300))
	require.NoError(t, err)

	// perplexity 30 is clamped to n-1
	coords, err := ts.Embed([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	require.Len(t, coords, 3)
	for _, c := range coords {
		require.Len(t, c, 2)
		assert.False(t, math.IsNaN(c[0]) || math.IsNaN(c[1]))
		assert.False(t, math.IsInf(c[0], 0) || math.IsInf(c[1], 0))
	}
}

func TestTSNEDeterministic(t *testing.T) {
	data := twoClusters()

	a, err := NewTSNE(WithPerplexity(3), WithSeed(7))
	require.NoError(t, err)
	b, err := NewTSNE(WithPerplexity(3), WithSeed(7))
	require.NoError(t, err)
	c, err := NewTSNE(WithPerplexity(3), WithSeed(8))
	require.NoError(t, err)

	ya, err := a.Embed(data)
	require.NoError(t, err)
	yb, err := b.Embed(data)
	require.NoError(t, err)
	yc, err := c.Embed(data)
	require.NoError(t, err)

	assert.Equal(t, ya, yb)
	assert.NotEqual(t, ya, yc)
}

func TestTSNESeparatesClusters(t *testing.T) {
	ts, err := NewTSNE(WithPerplexity(3))
	require.NoError(t, err)

	y, err := ts.Embed(twoClusters())
	require.NoError(t, err)

	var within, between float64
	var nWithin, nBetween int
	for i := range y {
		for j := i + 1; j < len(y); j++ {
			d := distance(y[i], y[j])
			if (i < 5) == (j < 5) {
				within += d
				nWithin++
			} else {
				between += d
				nBetween++
			}
		}
	}
	assert.Less(t, within/float64(nWithin), between/float64(nBetween))
}

func TestConditionalRowMatchesPerplexity(t *testing.T) {
	dist := squaredDistances(twoClusters())
	for _, perplexity := range []float64{2, 5} {
		row := conditionalRow(dist[0], 0, math.Log(perplexity))

		var sum, entropy float64
		for j, p := range row {
			if j == 0 {
				assert.Zero(t, p)
				continue
			}
			sum += p
			if p > 0 {
				entropy -= p * math.Log(p)
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
		assert.InDelta(t, perplexity, math.Exp(entropy), 0.01)
	}
}

func TestJointProbabilitiesSymmetric(t *testing.T) {
	p := jointProbabilities(squaredDistances(twoClusters()), 3)

	var total float64
	for i := range p {
		for j := range p[i] {
			assert.InDelta(t, p[i][j], p[j][i], 1e-15)
			total += p[i][j]
		}
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}
