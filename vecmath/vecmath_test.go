package vecmath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsep/vecmath"
)

const tol = 1e-9

// randVec returns a reproducible vector with entries in [-10, 10).
func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*20 - 10
	}
	return v
}

func TestDot_Basic(t *testing.T) {
	t.Parallel()

	got, err := vecmath.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got, tol, "1*4 + 2*-5 + 3*6")

	got, err = vecmath.Dot(nil, []float64{})
	require.NoError(t, err, "two empty vectors are compatible")
	assert.Equal(t, 0.0, got)
}

// TestDot_Commutative checks dot(a,b) == dot(b,a) over random vectors.
func TestDot_Commutative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 32; n++ {
		a, b := randVec(rng, n), randVec(rng, n)
		ab, err := vecmath.Dot(a, b)
		require.NoError(t, err)
		ba, err := vecmath.Dot(b, a)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, tol, "n=%d", n)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	v := []float64{1, -2, 0.5}
	got := vecmath.Scale(-2, v)
	assert.InDeltaSlice(t, []float64{-2, 4, -1}, got, tol)
	assert.Equal(t, []float64{1, -2, 0.5}, v, "input must not be modified")

	got[0] = 99
	assert.Equal(t, 1.0, v[0], "result must not alias input")

	assert.Len(t, vecmath.Scale(3, nil), 0)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3}
	b := []float64{0.5, -2, 10}
	got, err := vecmath.Add(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 0, 13}, got, tol)
	assert.Equal(t, []float64{1, 2, 3}, a, "input must not be modified")
}

// TestAdd_ScaleIdentity checks add(scale(1,a), scale(-1,a)) is the zero vector.
func TestAdd_ScaleIdentity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 32; n++ {
		a := randVec(rng, n)
		sum, err := vecmath.Add(vecmath.Scale(1, a), vecmath.Scale(-1, a))
		require.NoError(t, err)
		require.Len(t, sum, n)
		for i, x := range sum {
			assert.InDelta(t, 0.0, x, tol, "n=%d i=%d", n, i)
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b []float64
	}{
		{"empty_vs_one", nil, []float64{1}},
		{"two_vs_three", []float64{1, 2}, []float64{1, 2, 3}},
		{"three_vs_two", []float64{1, 2, 3}, []float64{1, 2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := vecmath.Dot(tc.a, tc.b)
			assert.ErrorIs(t, err, vecmath.ErrDimensionMismatch, "Dot")

			sum, err := vecmath.Add(tc.a, tc.b)
			assert.ErrorIs(t, err, vecmath.ErrDimensionMismatch, "Add")
			assert.Nil(t, sum, "no partial result on failure")
		})
	}
}

func TestCheckLenAndMessage(t *testing.T) {
	t.Parallel()

	assert.NoError(t, vecmath.CheckLen("GenerateFixed", []float64{1, 2}, 2))

	err := vecmath.CheckLen("GenerateFixed", []float64{1, 2}, 3)
	require.ErrorIs(t, err, vecmath.ErrDimensionMismatch)
	assert.EqualError(t, err, "GenerateFixed: len(a)=2, len(b)=3: vecmath: dimension mismatch")
}

func TestClone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, vecmath.Clone(nil))

	v := []float64{1, 2}
	c := vecmath.Clone(v)
	assert.Equal(t, v, c)
	c[0] = -1
	assert.Equal(t, 1.0, v[0], "clone must be independent")
}
