package domain

import "math/big"

// typed numbers that say which unit they are in. a bare Rational
// coming out of the converter could be inches or millimeters, and
// mixing them up is the one bug this whole repo can really have

type Inches struct {
	Rational
}

type Millimeters struct {
	Rational
}

func InchesOf(r Rational) Inches {
	return Inches{Rational: r}
}

func MillimetersOf(r Rational) Millimeters {
	return Millimeters{Rational: r}
}

// MixedNumber is a whole part plus a remainder in [0, 1),
// e.g. 1 3/8
type MixedNumber struct {
	whole     *big.Int
	remainder Rational
}

// Split decomposes r into floor(r) and r - floor(r). for negative
// input the whole part is negative and the remainder still
// non-negative, so Value() always round trips
func Split(r Rational) MixedNumber {
	whole := r.Floor()
	return MixedNumber{
		whole:     whole,
		remainder: r.Sub(FromBigInt(whole)),
	}
}

func (m MixedNumber) Whole() *big.Int {
	if m.whole == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(m.whole)
}

func (m MixedNumber) Remainder() Rational {
	return m.remainder
}

func (m MixedNumber) Value() Rational {
	return FromBigInt(m.Whole()).Add(m.remainder)
}
