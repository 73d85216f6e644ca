// Package parser turns free-form measurement text into exact
// rationals. nothing here goes through float64.
package parser

import (
	"math/big"
	"strings"

	conv_errors "decimal-converter/internal"
	"decimal-converter/internal/domain"

	"github.com/shopspring/decimal"
)

// Parse accepts "5", "3/8", "0.375" or a mixed number like "1 3/8".
// the sign of a mixed number's whole part applies to the whole
// value, so "-1 3/8" is -11/8
func Parse(text string) (domain.Rational, error) {
	parts := strings.Fields(text)
	switch len(parts) {
	case 0:
		return domain.Rational{}, conv_errors.ParseError{Input: text, Reason: "input is empty"}
	case 1:
		return parseRational(parts[0])
	case 2:
		return parseMixed(parts[0], parts[1])
	}
	return domain.Rational{}, conv_errors.ParseError{
		Input:  text,
		Reason: "expected a number, a fraction or a mixed number like 1 3/8",
	}
}

// ParseDecimal accepts plain decimal notation only. fractions and
// mixed numbers are rejected as not numeric
func ParseDecimal(text string) (domain.Rational, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Rational{}, conv_errors.NotNumericError{Input: text}
	}
	tok, err := decimalParser.ParseString("", trimmed)
	if err != nil {
		return domain.Rational{}, conv_errors.NotNumericError{Input: text, Err: err}
	}
	r, err := decimalToRational(tok.Digits)
	if err != nil {
		return domain.Rational{}, conv_errors.NotNumericError{Input: text, Err: err}
	}
	return applySign(tok.Sign, r), nil
}

func parseRational(s string) (domain.Rational, error) {
	tok, err := rationalParser.ParseString("", s)
	if err != nil {
		return domain.Rational{}, conv_errors.ParseError{Input: s, Reason: "not a number or fraction", Err: err}
	}

	var r domain.Rational
	switch {
	case tok.Value.Decimal != nil:
		r, err = decimalToRational(*tok.Value.Decimal)
		if err != nil {
			return domain.Rational{}, conv_errors.ParseError{Input: s, Reason: "malformed decimal", Err: err}
		}
	case tok.Value.Fraction != nil:
		den := "1"
		if tok.Value.Fraction.Denominator != nil {
			den = *tok.Value.Fraction.Denominator
		}
		r, err = fraction(s, tok.Value.Fraction.Numerator, den)
		if err != nil {
			return domain.Rational{}, err
		}
	default:
		return domain.Rational{}, conv_errors.ParseError{Input: s, Reason: "not a number or fraction"}
	}
	return applySign(tok.Sign, r), nil
}

func parseMixed(wholeText, fracText string) (domain.Rational, error) {
	input := wholeText + " " + fracText

	whole, err := integerParser.ParseString("", wholeText)
	if err != nil {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "whole number part is not an integer", Err: err}
	}
	frac, err := fractionParser.ParseString("", fracText)
	if err != nil {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "second part must be a fraction like 3/8", Err: err}
	}

	w, ok := new(big.Int).SetString(whole.Digits, 10)
	if !ok {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "whole number part is not an integer"}
	}
	f, err := fraction(input, frac.Numerator, frac.Denominator)
	if err != nil {
		return domain.Rational{}, err
	}

	// magnitudes first, then the sign of the whole part
	return applySign(whole.Sign, domain.FromBigInt(w).Add(f)), nil
}

func fraction(input, numText, denText string) (domain.Rational, error) {
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "malformed numerator"}
	}
	den, ok := new(big.Int).SetString(denText, 10)
	if !ok {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "malformed denominator"}
	}
	r, err := domain.FromBigFrac(num, den)
	if err != nil {
		return domain.Rational{}, conv_errors.ParseError{Input: input, Reason: "denominator is zero", Err: err}
	}
	return r, nil
}

// decimal strings are exact in base 10, so going through
// shopspring keeps every digit the user typed
func decimalToRational(s string) (domain.Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return domain.Rational{}, err
	}
	return domain.FromBigRat(d.Rat()), nil
}

func applySign(sign string, r domain.Rational) domain.Rational {
	if sign == "-" {
		return r.Neg()
	}
	return r
}
