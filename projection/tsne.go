package projection

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

const (
	outputDims          = 2
	exaggerationIters   = 250
	initialMomentum     = 0.5
	finalMomentum       = 0.8
	minGain             = 0.01
	perplexityTolerance = 1e-5
	perplexitySteps     = 50
	minProbability      = 1e-12
)

// TSNE projects points to two dimensions.
type TSNE struct {
	perplexity   float64
	iterations   int
	learningRate float64
	exaggeration float64
	seed         uint64
	logger       *slog.Logger
}

// Option configures a TSNE.
type Option func(*TSNE) error

// WithPerplexity sets the effective neighbour count. Embed clamps it to n-1.
func WithPerplexity(p float64) Option {
	return func(t *TSNE) error {
		if p <= 0 {
			return fmt.Errorf("%w: perplexity must be positive, got %v", ErrInvalidOption, p)
		}
		t.perplexity = p
		return nil
	}
}

// WithIterations sets the number of gradient steps.
func WithIterations(n int) Option {
	return func(t *TSNE) error {
		if n < 1 {
			return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidOption, n)
		}
		t.iterations = n
		return nil
	}
}

// WithLearningRate sets the gradient step size.
func WithLearningRate(rate float64) Option {
	return func(t *TSNE) error {
		if rate <= 0 {
			return fmt.Errorf("%w: learning rate must be positive, got %v", ErrInvalidOption, rate)
		}
		t.learningRate = rate
		return nil
	}
}

// WithEarlyExaggeration sets the factor applied to input affinities during
// the first 250 iterations.
func WithEarlyExaggeration(factor float64) Option {
	return func(t *TSNE) error {
		if factor < 1 {
			return fmt.Errorf("%w: early exaggeration must be at least 1, got %v", ErrInvalidOption, factor)
		}
		t.exaggeration = factor
		return nil
	}
}

// WithSeed sets the seed for the initial layout.
func WithSeed(seed uint64) Option {
	return func(t *TSNE) error {
		t.seed = seed
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *TSNE) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// NewTSNE creates a projector. Defaults: perplexity 30, 1000 iterations,
// learning rate 200, early exaggeration 12, seed 42.
func NewTSNE(opts ...Option) (*TSNE, error) {
	t := &TSNE{
		perplexity:   30,
		iterations:   1000,
		learningRate: 200,
		exaggeration: 12,
		seed:         42,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.logger = t.logger.With("component", "tsne")
	return t, nil
}

// Embed returns one (x, y) pair per input row.
func (t *TSNE) Embed(data [][]float64) ([][]float64, error) {
	n := len(data)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	for i := range data {
		if len(data[i]) != len(data[0]) {
			return nil, fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrRaggedInput, i, len(data[i]), len(data[0]))
		}
	}

	perplexity := math.Min(t.perplexity, float64(n-1))
	p := jointProbabilities(squaredDistances(data), perplexity)

	rng := rand.New(rand.NewPCG(t.seed, t.seed))
	y := make([][]float64, n)
	for i := range y {
		y[i] = make([]float64, outputDims)
		for d := range y[i] {
			y[i][d] = rng.NormFloat64() * 1e-4
		}
	}

	update := make([][]float64, n)
	gains := make([][]float64, n)
	grad := make([][]float64, n)
	for i := range y {
		update[i] = make([]float64, outputDims)
		grad[i] = make([]float64, outputDims)
		gains[i] = []float64{1, 1}
	}
	num := make([][]float64, n)
	for i := range num {
		num[i] = make([]float64, n)
	}

	for iter := 0; iter < t.iterations; iter++ {
		exaggeration, momentum := 1.0, finalMomentum
		if iter < exaggerationIters {
			exaggeration, momentum = t.exaggeration, initialMomentum
		}

		// Student-t affinities in the output space
		var sumNum float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := y[i][0] - y[j][0]
				dy := y[i][1] - y[j][1]
				v := 1 / (1 + dx*dx + dy*dy)
				num[i][j], num[j][i] = v, v
				sumNum += 2 * v
			}
		}

		for i := 0; i < n; i++ {
			grad[i][0], grad[i][1] = 0, 0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				q := math.Max(num[i][j]/sumNum, minProbability)
				mult := 4 * (exaggeration*p[i][j] - q) * num[i][j]
				grad[i][0] += mult * (y[i][0] - y[j][0])
				grad[i][1] += mult * (y[i][1] - y[j][1])
			}
		}

		for i := 0; i < n; i++ {
			for d := 0; d < outputDims; d++ {
				if (grad[i][d] > 0) != (update[i][d] > 0) {
					gains[i][d] += 0.2
				} else {
					gains[i][d] *= 0.8
				}
				gains[i][d] = math.Max(gains[i][d], minGain)
				update[i][d] = momentum*update[i][d] - t.learningRate*gains[i][d]*grad[i][d]
				y[i][d] += update[i][d]
			}
		}
		center(y)

		if (iter+1)%250 == 0 {
			t.logger.Debug("tsne progress", "iteration", iter+1, "kl", klDivergence(p, num, sumNum))
		}
	}

	return y, nil
}

func squaredDistances(data [][]float64) [][]float64 {
	n := len(data)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := range data[i] {
				diff := data[i][k] - data[j][k]
				sum += diff * diff
			}
			d[i][j], d[j][i] = sum, sum
		}
	}
	return d
}

// jointProbabilities returns symmetric input affinities whose per-point
// conditional distributions have the given perplexity.
func jointProbabilities(dist [][]float64, perplexity float64) [][]float64 {
	n := len(dist)
	cond := make([][]float64, n)
	target := math.Log(perplexity)
	for i := range dist {
		cond[i] = conditionalRow(dist[i], i, target)
	}

	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			p[i][j] = math.Max((cond[i][j]+cond[j][i])/(2*float64(n)), minProbability)
		}
	}
	return p
}

// conditionalRow binary-searches the Gaussian precision for point self so
// that its neighbour distribution has entropy target (in nats).
func conditionalRow(dist []float64, self int, target float64) []float64 {
	// Shift by the nearest distance so exp does not underflow.
	nearest := math.Inf(1)
	for j, d := range dist {
		if j != self && d < nearest {
			nearest = d
		}
	}

	row := make([]float64, len(dist))
	beta, lo, hi := 1.0, math.Inf(-1), math.Inf(1)
	for step := 0; step < perplexitySteps; step++ {
		var sum, weighted float64
		for j, d := range dist {
			if j == self {
				row[j] = 0
				continue
			}
			shifted := d - nearest
			row[j] = math.Exp(-shifted * beta)
			sum += row[j]
			weighted += shifted * row[j]
		}
		entropy := math.Log(sum) + beta*weighted/sum
		for j := range row {
			row[j] /= sum
		}

		diff := entropy - target
		if math.Abs(diff) < perplexityTolerance {
			break
		}
		if diff > 0 {
			lo = beta
			if math.IsInf(hi, 1) {
				beta *= 2
			} else {
				beta = (beta + hi) / 2
			}
		} else {
			hi = beta
			if math.IsInf(lo, -1) {
				beta /= 2
			} else {
				beta = (beta + lo) / 2
			}
		}
	}
	return row
}

func center(y [][]float64) {
	for d := 0; d < outputDims; d++ {
		var mean float64
		for i := range y {
			mean += y[i][d]
		}
		mean /= float64(len(y))
		for i := range y {
			y[i][d] -= mean
		}
	}
}

func klDivergence(p, num [][]float64, sumNum float64) float64 {
	var kl float64
	for i := range p {
		for j := range p[i] {
			if i == j {
				continue
			}
			q := math.Max(num[i][j]/sumNum, minProbability)
			kl += p[i][j] * math.Log(p[i][j]/q)
		}
	}
	return kl
}
