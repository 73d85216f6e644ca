package reference

import (
	"testing"

	"decimal-converter/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestCommonFractions(t *testing.T) {
	fractions := CommonFractions()
	require.Len(t, fractions, 63)

	counts := map[string]int{}
	for _, f := range fractions {
		counts[f.String()]++
	}
	for _, d := range Denominators {
		for n := int64(1); n < d; n++ {
			if gcd(n, d) != 1 {
				continue
			}
			require.Equal(t, 1, counts[domain.MustRational(n, d).String()], "%d/%d", n, d)
		}
	}
}

func TestCommonFractions_invariants(t *testing.T) {
	fractions := CommonFractions()
	for i, f := range fractions {
		require.Equal(t, 1, f.Sign(), f.String())
		require.True(t, f.Less(domain.One), f.String())

		den := f.Denom().Int64()
		require.LessOrEqual(t, den, int64(64))
		require.Zero(t, den&(den-1), "denominator %d is not a power of two", den)
		require.Equal(t, int64(1), gcd(f.Num().Int64(), den))

		if i > 0 {
			require.True(t, fractions[i-1].Less(f), "%s before %s", fractions[i-1], f)
		}
	}
	require.Equal(t, "1/64", fractions[0].String())
	require.Equal(t, "63/64", fractions[62].String())
}

func TestBuild_collapsesEquivalentFractions(t *testing.T) {
	candidates := 0
	for _, d := range Denominators {
		candidates += int(d) - 1
	}
	// 1/2, 2/4, 4/8 ... are all offered, only one survives
	require.Equal(t, 120, candidates)

	built := build()
	require.Len(t, built, 63)
	texts := map[string]bool{}
	for _, e := range built {
		require.False(t, texts[e.FractionText], "%s twice", e.FractionText)
		texts[e.FractionText] = true
	}
	require.True(t, texts["1/2"])
	require.False(t, texts["2/4"])
}

func TestCommonFractions_returnsCopy(t *testing.T) {
	fractions := CommonFractions()
	fractions[0] = domain.FromInt(7)
	require.Equal(t, "1/64", CommonFractions()[0].String())
}

func TestRows(t *testing.T) {
	t.Run("fraction", func(t *testing.T) {
		view, err := Rows(FractionContext)
		require.NoError(t, err)
		require.Equal(t, []string{"Fraction (in)", "Decimal (in)"}, view.Headers)
		require.Len(t, view.Rows, 63)

		expected := Row{
			Fraction:    "3/8",
			Inches:      "0.375000",
			Millimeters: "9.5250",
			Cells:       []string{"3/8", "0.375000"},
			Selection:   "3/8",
		}
		require.Empty(t, cmp.Diff(expected, findRow(t, view, "3/8")))
	})
	t.Run("inches", func(t *testing.T) {
		view, err := Rows(InchesContext)
		require.NoError(t, err)
		require.Equal(t, []string{"Fraction (in)", "Decimal (in)", "Millimeters"}, view.Headers)

		expected := Row{
			Fraction:    "1/2",
			Inches:      "0.500000",
			Millimeters: "12.7000",
			Cells:       []string{"1/2", "0.500000", "12.7000"},
			Selection:   "0.500000",
		}
		require.Empty(t, cmp.Diff(expected, findRow(t, view, "1/2")))
	})
	t.Run("millimeters", func(t *testing.T) {
		view, err := Rows(MillimetersContext)
		require.NoError(t, err)
		require.Equal(t, []string{"Millimeters", "Decimal (in)", "Fraction (in)"}, view.Headers)

		expected := Row{
			Fraction:    "1/64",
			Inches:      "0.015625",
			Millimeters: "0.3969",
			Cells:       []string{"0.3969", "0.015625", "1/64"},
			Selection:   "0.3969",
		}
		require.Empty(t, cmp.Diff(expected, view.Rows[0]))
	})
	t.Run("views share rows", func(t *testing.T) {
		a, err := Rows(FractionContext)
		require.NoError(t, err)
		b, err := Rows(MillimetersContext)
		require.NoError(t, err)
		for i := range a.Rows {
			require.Equal(t, a.Rows[i].Fraction, b.Rows[i].Fraction)
			require.Equal(t, a.Rows[i].Millimeters, b.Rows[i].Millimeters)
		}
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := Rows(Context("feet"))
		require.Error(t, err)
	})
}

func TestParseContext(t *testing.T) {
	for input, expected := range map[string]Context{
		"fraction":    FractionContext,
		" Inches ":    InchesContext,
		"millimeters": MillimetersContext,
		"mm":          MillimetersContext,
	} {
		c, err := ParseContext(input)
		require.NoError(t, err)
		require.Equal(t, expected, c)
	}
	for _, c := range Contexts {
		parsed, err := ParseContext(string(c))
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
	_, err := ParseContext("cubits")
	require.Error(t, err)
}

func findRow(t *testing.T, view View, fraction string) Row {
	t.Helper()
	for _, r := range view.Rows {
		if r.Fraction == fraction {
			return r
		}
	}
	t.Fatalf("no row for %s", fraction)
	return Row{}
}
