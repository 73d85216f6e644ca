// Package reference holds the common fraction table: every reduced
// fraction with a denominator of 2, 4, 8, 16, 32 or 64. the table is
// built once at init and never changes.
package reference

import (
	"fmt"
	"sort"
	"strings"

	"decimal-converter/internal/convert"
	"decimal-converter/internal/domain"
	"decimal-converter/internal/format"
	"decimal-converter/internal/util"
)

var Denominators = []int64{2, 4, 8, 16, 32, 64}

// Entry is one precomputed row, exact values plus their display text
type Entry struct {
	Fraction    domain.Rational
	Inches      domain.Inches
	Millimeters domain.Millimeters

	FractionText    string
	InchesText      string
	MillimetersText string
}

var entries = build()

func build() []Entry {
	// n/d is reduced on the way in, so 2/4 and 1/2 land on the same key
	seen := util.NewSet[string]()
	fractions := []domain.Rational{}
	for _, d := range Denominators {
		for n := int64(1); n < d; n++ {
			f := domain.MustRational(n, d)
			if seen.Add(f.String()) {
				fractions = append(fractions, f)
			}
		}
	}
	sort.Slice(fractions, func(i, j int) bool {
		return fractions[i].Less(fractions[j])
	})

	out := make([]Entry, 0, seen.Length())
	for _, f := range fractions {
		in, err := convert.FractionToDecimal(f)
		if err != nil {
			panic(fmt.Sprintf("reference fraction %s: %v", f, err))
		}
		mm, err := convert.InchesToMillimeters(f)
		if err != nil {
			panic(fmt.Sprintf("reference fraction %s: %v", f, err))
		}
		out = append(out, Entry{
			Fraction:        f,
			Inches:          in,
			Millimeters:     mm,
			FractionText:    format.Fraction(f),
			InchesText:      format.DecimalInches(in.Rational),
			MillimetersText: format.Millimeters(mm.Rational),
		})
	}
	return out
}

// CommonFractions returns the 63 fractions in ascending order,
// which is every multiple of 1/64 strictly between 0 and 1
func CommonFractions() []domain.Rational {
	out := make([]domain.Rational, len(entries))
	for i, e := range entries {
		out[i] = e.Fraction
	}
	return out
}

func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

type Context string

const (
	FractionContext    Context = "fraction"
	InchesContext      Context = "inches"
	MillimetersContext Context = "millimeters"
)

var Contexts = []Context{FractionContext, InchesContext, MillimetersContext}

func ParseContext(s string) (Context, error) {
	c := Context(strings.ToLower(strings.TrimSpace(s)))
	if c == "mm" {
		return MillimetersContext, nil
	}
	for _, known := range Contexts {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown reference context %q, expected one of fraction, inches, millimeters", s)
}

const (
	FractionHeader    = "Fraction (in)"
	InchesHeader      = "Decimal (in)"
	MillimetersHeader = "Millimeters"
)

// Row is one display-ready line of a view. Cells follow the view's
// headers; Selection is what a host should put back in its input
// box when the row is picked
type Row struct {
	Fraction    string
	Inches      string
	Millimeters string

	Cells     []string
	Selection string
}

type View struct {
	Context Context
	Headers []string
	Rows    []Row
}

// Rows is the view for one converter context. same 63 entries
// every time, only the column order and selection differ
func Rows(c Context) (View, error) {
	var headers []string
	var cells func(e Entry) []string
	var selection func(e Entry) string

	switch c {
	case FractionContext:
		headers = []string{FractionHeader, InchesHeader}
		cells = func(e Entry) []string { return []string{e.FractionText, e.InchesText} }
		selection = func(e Entry) string { return e.FractionText }
	case InchesContext:
		headers = []string{FractionHeader, InchesHeader, MillimetersHeader}
		cells = func(e Entry) []string { return []string{e.FractionText, e.InchesText, e.MillimetersText} }
		selection = func(e Entry) string { return e.InchesText }
	case MillimetersContext:
		headers = []string{MillimetersHeader, InchesHeader, FractionHeader}
		cells = func(e Entry) []string { return []string{e.MillimetersText, e.InchesText, e.FractionText} }
		selection = func(e Entry) string { return e.MillimetersText }
	default:
		return View{}, fmt.Errorf("unknown reference context %q", string(c))
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Fraction:    e.FractionText,
			Inches:      e.InchesText,
			Millimeters: e.MillimetersText,
			Cells:       cells(e),
			Selection:   selection(e),
		})
	}
	return View{
		Context: c,
		Headers: headers,
		Rows:    rows,
	}, nil
}
