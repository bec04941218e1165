package embedding

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// truncatedSVD returns the top k right singular vectors of x as the columns
// of a (features x k) matrix, with their singular values. Each column is
// flipped so its largest-magnitude loading is positive, which makes the
// result independent of the solver's sign choice.
func truncatedSVD(x *mat.Dense, k int) (*mat.Dense, []float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, nil, ErrDecomposition
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	rows, _ := v.Dims()
	components := mat.NewDense(rows, k, nil)
	components.Copy(v.Slice(0, rows, 0, k))

	for j := 0; j < k; j++ {
		col := mat.Col(nil, j, components)
		best := 0
		for i := range col {
			if math.Abs(col[i]) > math.Abs(col[best]) {
				best = i
			}
		}
		if col[best] < 0 {
			for i := range col {
				col[i] = -col[i]
			}
			components.SetCol(j, col)
		}
	}

	return components, values[:k], nil
}

// explainedVarianceRatio returns, per column of projected, its variance
// divided by the total column variance of x.
func explainedVarianceRatio(x, projected *mat.Dense) []float64 {
	_, features := x.Dims()
	var total float64
	for j := 0; j < features; j++ {
		total += stat.Variance(mat.Col(nil, j, x), nil)
	}

	_, k := projected.Dims()
	ratios := make([]float64, k)
	if total == 0 {
		return ratios
	}
	for j := 0; j < k; j++ {
		ratios[j] = stat.Variance(mat.Col(nil, j, projected), nil) / total
	}
	return ratios
}
