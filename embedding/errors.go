package embedding

import "errors"

var (
	// ErrNotFitted is returned by query methods called before Fit.
	ErrNotFitted = errors.New("model is not fitted")
	// ErrAlreadyFitted is returned by a second call to Fit.
	ErrAlreadyFitted = errors.New("model is already fitted")
	// ErrCorpusTooSmall is returned when fewer than two texts are fitted.
	ErrCorpusTooSmall = errors.New("corpus needs at least two texts")
	// ErrEmptyVocabulary is returned when no term survives analysis.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	// ErrCorpusMismatch is returned when the courses passed to Recommend
	// do not line up with the fitted corpus.
	ErrCorpusMismatch = errors.New("courses do not match fitted corpus")
	// ErrInvalidOption is returned for out-of-range model options.
	ErrInvalidOption = errors.New("invalid option")
	// ErrDecomposition is returned when the SVD does not converge.
	ErrDecomposition = errors.New("singular value decomposition failed")
)
