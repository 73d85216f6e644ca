package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRational(t *testing.T) {
	t.Run("reduces to lowest terms", func(t *testing.T) {
		r, err := NewRational(2, 4)
		require.NoError(t, err)
		require.Equal(t, "1/2", r.String())
		require.Equal(t, int64(1), r.Num().Int64())
		require.Equal(t, int64(2), r.Denom().Int64())
	})
	t.Run("sign moves to numerator", func(t *testing.T) {
		r, err := NewRational(3, -8)
		require.NoError(t, err)
		require.Equal(t, "-3/8", r.String())
		require.Equal(t, int64(8), r.Denom().Int64())
	})
	t.Run("zero denominator", func(t *testing.T) {
		_, err := NewRational(1, 0)
		require.Error(t, err)
	})
	t.Run("integer renders bare", func(t *testing.T) {
		require.Equal(t, "4", MustRational(8, 2).String())
	})
}

func TestRational_zeroValue(t *testing.T) {
	var r Rational
	require.True(t, r.IsZero())
	require.Equal(t, "0", r.String())
	require.True(t, r.Add(One).Equal(One))
}

func TestRational_arithmetic(t *testing.T) {
	a := MustRational(3, 8)
	b := MustRational(1, 8)

	require.Equal(t, "1/2", a.Add(b).String())
	require.Equal(t, "1/4", a.Sub(b).String())
	require.Equal(t, "3/64", a.Mul(b).String())
	require.Equal(t, "3", a.Quo(b).String())
	require.Equal(t, "-3/8", a.Neg().String())
	require.Equal(t, "3/8", a.Neg().Abs().String())
	require.True(t, b.Less(a))
	require.Equal(t, 0.375, a.Float64())
}

func TestRational_immutable(t *testing.T) {
	r := MustRational(3, 8)
	r.Num().SetInt64(99)
	r.Rat().SetInt64(7)
	require.Equal(t, "3/8", r.String())

	src := big.NewRat(1, 2)
	copied := FromBigRat(src)
	src.SetInt64(5)
	require.Equal(t, "1/2", copied.String())
}

func TestRational_Floor(t *testing.T) {
	require.Equal(t, int64(1), MustRational(11, 8).Floor().Int64())
	require.Equal(t, int64(-2), MustRational(-11, 8).Floor().Int64())
	require.Equal(t, int64(3), FromInt(3).Floor().Int64())
	require.Equal(t, int64(0), Zero.Floor().Int64())
}

func TestSplit(t *testing.T) {
	t.Run("mixed", func(t *testing.T) {
		m := Split(MustRational(11, 8))
		require.Equal(t, int64(1), m.Whole().Int64())
		require.Equal(t, "3/8", m.Remainder().String())
		require.True(t, m.Value().Equal(MustRational(11, 8)))
	})
	t.Run("proper fraction", func(t *testing.T) {
		m := Split(MustRational(3, 8))
		require.Equal(t, int64(0), m.Whole().Int64())
		require.Equal(t, "3/8", m.Remainder().String())
	})
	t.Run("whole number", func(t *testing.T) {
		m := Split(FromInt(2))
		require.Equal(t, int64(2), m.Whole().Int64())
		require.True(t, m.Remainder().IsZero())
	})
	t.Run("negative keeps remainder in range", func(t *testing.T) {
		m := Split(MustRational(-1, 4))
		require.Equal(t, int64(-1), m.Whole().Int64())
		require.Equal(t, "3/4", m.Remainder().String())
		require.True(t, m.Value().Equal(MustRational(-1, 4)))
	})
}
