package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		a, b := validCourse(), validCourse()
		b.Code = "CSI-200"

		cat, err := NewCatalog(a, b)
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
		assert.Equal(t, []string{"CSI-100", "CSI-200"}, []string{cat.Courses()[0].Code, cat.Courses()[1].Code})
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := NewCatalog()
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := NewCatalog(validCourse(), validCourse())
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("invalid course", func(t *testing.T) {
		bad := validCourse()
		bad.Credits = 0
		_, err := NewCatalog(bad)
		assert.ErrorIs(t, err, ErrInvalidCourse)
	})
}

func TestCatalogIsImmutable(t *testing.T) {
	src := validCourse()
	src.Prereqs = []string{"CSI-050"}

	cat, err := NewCatalog(src)
	require.NoError(t, err)

	// Mutating the input after construction has no effect.
	src.Prereqs[0] = "changed"

	courses := cat.Courses()
	courses[0].Name = "changed"
	courses[0].Prereqs[0] = "changed"

	got, ok := cat.Lookup("CSI-100")
	require.True(t, ok)
	assert.Equal(t, "Test Course", got.Name)
	assert.Equal(t, []string{"CSI-050"}, got.Prereqs)
}

func TestCatalogLookup(t *testing.T) {
	cat, err := NewCatalog(validCourse())
	require.NoError(t, err)

	_, ok := cat.Lookup("missing")
	assert.False(t, ok)
}

func TestCatalogDigest(t *testing.T) {
	a := validCourse()
	cat1, err := NewCatalog(a)
	require.NoError(t, err)
	cat2, err := NewCatalog(a)
	require.NoError(t, err)
	assert.Equal(t, cat1.Digest(), cat2.Digest())

	a.Description = "Different."
	cat3, err := NewCatalog(a)
	require.NoError(t, err)
	assert.NotEqual(t, cat1.Digest(), cat3.Digest())
}

func TestRanking(t *testing.T) {
	r := Ranking{
		{Course: Course{Code: "A"}, Score: 3},
		{Course: Course{Code: "B"}, Score: 2},
		{Course: Course{Code: "C"}, Score: 1},
	}

	assert.Equal(t, []string{"A", "B", "C"}, r.Codes())
	assert.Equal(t, []string{"A", "B"}, r.Top(2).Codes())
	assert.Len(t, r.Top(10), 3)
	assert.Len(t, r.Top(-1), 3)
	assert.Equal(t, 1, r.Position("B"))
	assert.Equal(t, -1, r.Position("Z"))
}
