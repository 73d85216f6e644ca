// Package convert holds the inch/millimeter arithmetic. every
// function is pure and works on exact rationals.
package convert

import (
	conv_errors "decimal-converter/internal"
	"decimal-converter/internal/domain"
)

// MillimetersPerInch is 25.4, exact by international agreement
var MillimetersPerInch = domain.MustRational(127, 5)

type MillimeterConversion struct {
	Inches  domain.Inches
	Nearest domain.MixedNumber
}

func FractionToDecimal(r domain.Rational) (domain.Inches, error) {
	if r.Sign() < 0 {
		return domain.Inches{}, conv_errors.NegativeError{Value: r.String()}
	}
	return domain.InchesOf(r), nil
}

func InchesToMillimeters(r domain.Rational) (domain.Millimeters, error) {
	if r.Sign() < 0 {
		return domain.Millimeters{}, conv_errors.NegativeError{Value: r.String()}
	}
	return domain.MillimetersOf(r.Mul(MillimetersPerInch)), nil
}

// MillimetersToInches uses BinaryGrid for the nearest fraction
func MillimetersToInches(mm domain.Rational) (MillimeterConversion, error) {
	return MillimetersToInchesOnGrid(mm, BinaryGrid)
}

func MillimetersToInchesOnGrid(mm domain.Rational, grid Grid) (MillimeterConversion, error) {
	if mm.Sign() < 0 {
		return MillimeterConversion{}, conv_errors.NegativeError{Value: mm.String()}
	}
	inches := mm.Quo(MillimetersPerInch)
	return MillimeterConversion{
		Inches:  domain.InchesOf(inches),
		Nearest: domain.Split(grid.Nearest(inches)),
	}, nil
}
