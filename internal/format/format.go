// Package format renders exact values for display. this is the only
// place a measurement gets rounded.
package format

import (
	"decimal-converter/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	DecimalInchPlaces = 6
	MillimeterPlaces  = 4
)

// DecimalInches renders 6 fractional digits, e.g. "0.375000"
func DecimalInches(r domain.Rational) string {
	return Fixed(r, DecimalInchPlaces)
}

// Millimeters renders 4 fractional digits, e.g. "9.5250"
func Millimeters(r domain.Rational) string {
	return Fixed(r, MillimeterPlaces)
}

// Fixed rounds the exact value half away from zero. dividing the
// big integers directly means no binary float ever sees the number
func Fixed(r domain.Rational, places int32) string {
	num := decimal.NewFromBigInt(r.Num(), 0)
	den := decimal.NewFromBigInt(r.Denom(), 0)
	return num.DivRound(den, places).StringFixed(places)
}

// Fraction renders "n/d", or a bare integer when d is 1
func Fraction(r domain.Rational) string {
	return r.String()
}

// MixedNumber renders "1 3/8", "3/8" when there's no whole part
// and "1" when there's no remainder
func MixedNumber(m domain.MixedNumber) string {
	whole := m.Whole()
	rem := m.Remainder()
	switch {
	case whole.Sign() == 0:
		return Fraction(rem)
	case rem.IsZero():
		return whole.String()
	}
	return whole.String() + " " + Fraction(rem)
}
