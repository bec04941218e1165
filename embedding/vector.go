package embedding

import "gonum.org/v1/gonum/floats"

// NormalizeVector returns v scaled to unit length.
// A zero vector is returned as a new zero vector.
func NormalizeVector(v []float64) []float64 {
	out := make([]float64, len(v))
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return out
	}
	floats.ScaleTo(out, 1/norm, v)
	return out
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Mismatched lengths, empty vectors and zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := floats.Dot(a, b) / (na * nb)
	// rounding can push identical vectors just past 1
	if sim > 1 {
		return 1
	}
	if sim < -1 {
		return -1
	}
	return sim
}
