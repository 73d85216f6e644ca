package convert

import (
	"testing"

	"decimal-converter/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestGrid_Nearest(t *testing.T) {
	cases := []struct {
		name     string
		grid     Grid
		x        domain.Rational
		expected string
	}{
		{"exact 64th", BinaryGrid, rat(5, 64), "5/64"},
		{"rounds down", BinaryGrid, rat(1001, 2000), "1/2"},
		{"rounds up to whole", BinaryGrid, rat(1279, 1280), "1"},
		{"zero", BinaryGrid, domain.Zero, "0"},
		{"above one", BinaryGrid, rat(19, 8), "19/8"},
		// 1/128 sits halfway between 0 and 1/64, 0 has the smaller denominator
		{"tie goes to smaller denominator", BinaryGrid, rat(1, 128), "0"},
		// 3/128 sits halfway between 1/64 and 1/32
		{"tie between 64th and 32nd", BinaryGrid, rat(3, 128), "1/32"},
		{"best grid thirds", BestGrid, rat(1, 3), "1/3"},
		{"best grid sevenths", BestGrid, rat(142857, 1000000), "1/7"},
		{"binary grid sevenths", BinaryGrid, rat(142857, 1000000), "9/64"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.grid.Nearest(tc.x).String())
		})
	}
}

func TestGridByName(t *testing.T) {
	g, err := GridByName("")
	require.NoError(t, err)
	require.Equal(t, "binary", g.Name())

	g, err = GridByName("best")
	require.NoError(t, err)
	require.Equal(t, "best", g.Name())

	_, err = GridByName("metric")
	require.Error(t, err)
}
