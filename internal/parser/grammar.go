package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// measurementLexer tokenizes a single whitespace-free segment of
// user input. there's no whitespace rule on purpose, Parse splits
// on whitespace before any grammar runs, so a stray space inside a
// segment is a lexer error.
//
// exponents are capped at three digits so "1e999999999" can't make
// us build a billion digit integer
var measurementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Decimal", Pattern: `(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]{1,3})?|[0-9]+[eE][+-]?[0-9]{1,3}`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-+/]`},
})

// "5", "-3/8", "0.375", "+.5", "1e3"
//
//nolint:govet // participle grammar tags are not standard struct tags
type rationalToken struct {
	Sign  string       `@("+" | "-")?`
	Value *numberValue `@@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type numberValue struct {
	Decimal  *string       `  @Decimal`
	Fraction *fractionPart `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type fractionPart struct {
	Numerator   string  `@Int`
	Denominator *string `( "/" @Int )?`
}

// whole-number half of a mixed number, "1" or "-2"
//
//nolint:govet // participle grammar tags are not standard struct tags
type integerToken struct {
	Sign   string `@("+" | "-")?`
	Digits string `@Int`
}

// fractional half of a mixed number, strictly "n/d"
//
//nolint:govet // participle grammar tags are not standard struct tags
type fractionToken struct {
	Numerator   string `@Int "/"`
	Denominator string `@Int`
}

// plain decimal notation only, used for millimeters
//
//nolint:govet // participle grammar tags are not standard struct tags
type decimalToken struct {
	Sign   string `@("+" | "-")?`
	Digits string `( @Decimal | @Int )`
}

var (
	rationalParser = participle.MustBuild[rationalToken](participle.Lexer(measurementLexer))
	integerParser  = participle.MustBuild[integerToken](participle.Lexer(measurementLexer))
	fractionParser = participle.MustBuild[fractionToken](participle.Lexer(measurementLexer))
	decimalParser  = participle.MustBuild[decimalToken](participle.Lexer(measurementLexer))
)
