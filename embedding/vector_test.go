package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected []float64
	}{
		{"unit vector unchanged", []float64{1, 0}, []float64{1, 0}},
		{"scaled", []float64{3, 4}, []float64{0.6, 0.8}},
		{"zero vector", []float64{0, 0}, []float64{0, 0}},
		{"empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVector(tt.input)
			assert.InDeltaSlice(t, tt.expected, got, 1e-12)
		})
	}

	in := []float64{3, 4}
	NormalizeVector(in)
	assert.Equal(t, []float64{3, 4}, in, "input must not be modified")
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 2}, []float64{1, 2}, 1},
		{"scaled", []float64{1, 2}, []float64{2, 4}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-2, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1}, []float64{1, 1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CosineSimilarity(tt.a, tt.b), 1e-12)
		})
	}
}
