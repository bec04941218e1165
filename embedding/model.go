package embedding

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/poiesic/coursematch/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// State is the training state of a Model.
type State int

const (
	Untrained State = iota
	Trained
)

func (s State) String() string {
	if s == Trained {
		return "trained"
	}
	return "untrained"
}

// Default model settings.
const (
	DefaultMaxFeatures = 500
	DefaultComponents  = 50
)

// Model is a TF-IDF plus truncated SVD embedding of a fixed corpus.
type Model struct {
	maxFeatures int
	components  int
	minN, maxN  int
	sublinear   bool
	stem        bool
	stopWords   []string
	logger      *slog.Logger

	state      State
	vectorizer *Vectorizer
	tfidf      *mat.Dense
	basis      *mat.Dense // features x k
	embeddings *mat.Dense // corpus x k
	singular   []float64
	variance   []float64
}

// Option configures a Model.
type Option func(*Model) error

// WithMaxFeatures caps the vocabulary size.
func WithMaxFeatures(n int) Option {
	return func(m *Model) error {
		if n < 1 {
			return fmt.Errorf("%w: max features must be at least 1, got %d", ErrInvalidOption, n)
		}
		m.maxFeatures = n
		return nil
	}
}

// WithComponents sets the requested embedding dimensionality.
// Fit clamps it to the corpus size minus one.
func WithComponents(n int) Option {
	return func(m *Model) error {
		if n < 1 {
			return fmt.Errorf("%w: components must be at least 1, got %d", ErrInvalidOption, n)
		}
		m.components = n
		return nil
	}
}

// WithNGramRange sets the shortest and longest n-grams in the vocabulary.
func WithNGramRange(minN, maxN int) Option {
	return func(m *Model) error {
		if minN < 1 || maxN < minN {
			return fmt.Errorf("%w: n-gram range (%d, %d)", ErrInvalidOption, minN, maxN)
		}
		m.minN, m.maxN = minN, maxN
		return nil
	}
}

// WithSublinearTF toggles 1+ln(tf) term frequency scaling.
func WithSublinearTF(enabled bool) Option {
	return func(m *Model) error {
		m.sublinear = enabled
		return nil
	}
}

// WithStemming toggles Porter stemming of tokens.
func WithStemming(enabled bool) Option {
	return func(m *Model) error {
		m.stem = enabled
		return nil
	}
}

// WithStopWords replaces the stop list. nil disables stop-word removal.
func WithStopWords(words []string) Option {
	return func(m *Model) error {
		m.stopWords = slices.Clone(words)
		return nil
	}
}

// WithLogger sets the logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewModel creates an untrained model.
func NewModel(opts ...Option) (*Model, error) {
	m := &Model{
		maxFeatures: DefaultMaxFeatures,
		components:  DefaultComponents,
		minN:        1,
		maxN:        2,
		sublinear:   true,
		stem:        true,
		stopWords:   EnglishStopWords,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.logger = m.logger.With("component", "embedding-model")
	return m, nil
}

// State returns the training state.
func (m *Model) State() State {
	return m.state
}

// Fit learns the vocabulary and the SVD basis from texts and embeds them.
// It may only be called once.
func (m *Model) Fit(texts []string) error {
	if m.state == Trained {
		return ErrAlreadyFitted
	}
	if len(texts) < 2 {
		return fmt.Errorf("%w: got %d", ErrCorpusTooSmall, len(texts))
	}

	vectorizer := NewVectorizer(NewAnalyzer(m.stopWords, m.stem, m.minN, m.maxN), m.maxFeatures, m.sublinear)
	if err := vectorizer.Fit(texts); err != nil {
		return err
	}
	tfidf := vectorizer.TransformAll(texts)

	k := min(m.components, len(texts)-1, vectorizer.Size())
	if k < m.components {
		m.logger.Debug("clamped components", "requested", m.components, "actual", k)
	}

	basis, singular, err := truncatedSVD(tfidf, k)
	if err != nil {
		return err
	}

	var embeddings mat.Dense
	embeddings.Mul(tfidf, basis)

	m.vectorizer = vectorizer
	m.tfidf = tfidf
	m.basis = basis
	m.embeddings = &embeddings
	m.singular = singular
	m.variance = explainedVarianceRatio(tfidf, &embeddings)
	m.state = Trained

	m.logger.Info("fitted model",
		"documents", len(texts),
		"vocabulary", vectorizer.Size(),
		"dimensions", k,
		"variance", floats.Sum(m.variance))
	return nil
}

// EmbedQuery projects query into the embedding space.
func (m *Model) EmbedQuery(query string) ([]float64, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	row := mat.NewVecDense(m.vectorizer.Size(), m.vectorizer.Transform(query))
	var out mat.VecDense
	out.MulVec(m.basis.T(), row)
	return slices.Clone(out.RawVector().Data), nil
}

// Recommend ranks courses by cosine similarity between query and their
// fitted embeddings. courses must be in the order the texts were fitted.
// Ties keep corpus order; topK <= 0 returns every course.
func (m *Model) Recommend(query string, courses []core.Course, topK int) (core.Ranking, error) {
	q, err := m.EmbedQuery(query)
	if err != nil {
		return nil, err
	}
	n, _ := m.embeddings.Dims()
	if len(courses) != n {
		return nil, fmt.Errorf("%w: %d courses for %d fitted texts", ErrCorpusMismatch, len(courses), n)
	}

	ranking := make(core.Ranking, n)
	for i, c := range courses {
		ranking[i] = core.ScoredCourse{
			Course: c,
			Score:  CosineSimilarity(q, mat.Row(nil, i, m.embeddings)),
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	if topK <= 0 {
		return ranking, nil
	}
	return ranking.Top(topK), nil
}

// VocabularySize returns the number of fitted terms.
func (m *Model) VocabularySize() (int, error) {
	if m.state != Trained {
		return 0, ErrNotFitted
	}
	return m.vectorizer.Size(), nil
}

// FeatureNames returns the vocabulary in alphabetical order.
func (m *Model) FeatureNames() ([]string, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	return m.vectorizer.Features(), nil
}

// TopFeatures returns the n terms carrying the most TF-IDF weight across
// the corpus. Ties are alphabetical. This is a ranking, not a prefix of the
// vocabulary; use FeatureNames for the alphabetical first n.
func (m *Model) TopFeatures(n int) ([]string, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	features := m.vectorizer.Features()
	weights := make(map[string]float64, len(features))
	for j, f := range features {
		weights[f] = floats.Sum(mat.Col(nil, j, m.tfidf))
	}
	slices.SortStableFunc(features, func(a, b string) int {
		switch {
		case weights[a] > weights[b]:
			return -1
		case weights[a] < weights[b]:
			return 1
		}
		return strings.Compare(a, b)
	})
	if n >= 0 && n < len(features) {
		features = features[:n]
	}
	return features, nil
}

// Dimensions returns the embedding dimensionality, or 0 before Fit.
func (m *Model) Dimensions() int {
	if m.state != Trained {
		return 0
	}
	_, k := m.basis.Dims()
	return k
}

// Embeddings returns a copy of the corpus embeddings, one row per text.
func (m *Model) Embeddings() ([][]float64, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	n, _ := m.embeddings.Dims()
	out := make([][]float64, n)
	for i := range out {
		out[i] = mat.Row(nil, i, m.embeddings)
	}
	return out, nil
}

// ExplainedVarianceRatio returns the share of TF-IDF variance captured by
// each component.
func (m *Model) ExplainedVarianceRatio() ([]float64, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	return slices.Clone(m.variance), nil
}

// SingularValues returns the singular values of the kept components, largest first.
func (m *Model) SingularValues() ([]float64, error) {
	if m.state != Trained {
		return nil, ErrNotFitted
	}
	return slices.Clone(m.singular), nil
}
