package service

import (
	"errors"
	"fmt"

	conv_errors "decimal-converter/internal"
	"decimal-converter/internal/convert"
	"decimal-converter/internal/format"
	"decimal-converter/internal/parser"
	"decimal-converter/internal/reference"

	"github.com/rs/zerolog"
)

const (
	fractionHint    = "Enter a fraction like  3/8  or  7/16"
	inchesHint      = "Enter a value like  3/8,  1 3/8,  or  0.375"
	millimetersHint = "Enter a numeric value in millimeters."
	negativeMessage = "Value must be positive."
)

// UserError is an error a person can fix by typing something else.
// Message is what to show them
type UserError struct {
	Kind    conv_errors.Kind
	Message string
	Err     error
}

func (e UserError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e UserError) Unwrap() error {
	return e.Err
}

func AsUserError(err error) (UserError, bool) {
	var userErr UserError
	ok := errors.As(err, &userErr)
	return userErr, ok
}

type FractionResult struct {
	Input         string
	Value         string
	DecimalInches string
}

type InchesResult struct {
	Input       string
	Value       string
	Millimeters string
}

type MillimetersResult struct {
	Input           string
	Millimeters     string
	DecimalInches   string
	NearestFraction string
}

type ConversionService interface {
	FractionToDecimal(input string) (*FractionResult, error)
	InchesToMillimeters(input string) (*InchesResult, error)
	MillimetersToInches(input string) (*MillimetersResult, error)
	ReferenceView(context string) (*reference.View, error)
	Grid() convert.Grid
}

type conversionServiceHandler struct {
	grid   convert.Grid
	logger zerolog.Logger
}

func NewConversionService(grid convert.Grid, logger zerolog.Logger) ConversionService {
	return conversionServiceHandler{
		grid:   grid,
		logger: logger,
	}
}

func (h conversionServiceHandler) Grid() convert.Grid {
	return h.grid
}

func (h conversionServiceHandler) FractionToDecimal(input string) (*FractionResult, error) {
	value, err := parser.Parse(input)
	if err != nil {
		return nil, h.reject("fraction", input, err, fractionHint)
	}
	inches, err := convert.FractionToDecimal(value)
	if err != nil {
		return nil, h.reject("fraction", input, err, fractionHint)
	}

	out := &FractionResult{
		Input:         input,
		Value:         format.Fraction(value),
		DecimalInches: format.DecimalInches(inches.Rational),
	}
	h.logger.Debug().
		Str("input", input).
		Str("decimalInches", out.DecimalInches).
		Msg("converted fraction")
	return out, nil
}

func (h conversionServiceHandler) InchesToMillimeters(input string) (*InchesResult, error) {
	value, err := parser.Parse(input)
	if err != nil {
		return nil, h.reject("inches", input, err, inchesHint)
	}
	mm, err := convert.InchesToMillimeters(value)
	if err != nil {
		return nil, h.reject("inches", input, err, inchesHint)
	}

	out := &InchesResult{
		Input:       input,
		Value:       format.Fraction(value),
		Millimeters: format.Millimeters(mm.Rational),
	}
	h.logger.Debug().
		Str("input", input).
		Str("millimeters", out.Millimeters).
		Msg("converted inches")
	return out, nil
}

func (h conversionServiceHandler) MillimetersToInches(input string) (*MillimetersResult, error) {
	mm, err := parser.ParseDecimal(input)
	if err != nil {
		return nil, h.reject("millimeters", input, err, millimetersHint)
	}
	conversion, err := convert.MillimetersToInchesOnGrid(mm, h.grid)
	if err != nil {
		return nil, h.reject("millimeters", input, err, millimetersHint)
	}

	out := &MillimetersResult{
		Input:           input,
		Millimeters:     format.Millimeters(mm),
		DecimalInches:   format.DecimalInches(conversion.Inches.Rational),
		NearestFraction: format.MixedNumber(conversion.Nearest),
	}
	h.logger.Debug().
		Str("input", input).
		Str("decimalInches", out.DecimalInches).
		Str("nearestFraction", out.NearestFraction).
		Str("grid", h.grid.Name()).
		Msg("converted millimeters")
	return out, nil
}

func (h conversionServiceHandler) ReferenceView(context string) (*reference.View, error) {
	c, err := reference.ParseContext(context)
	if err != nil {
		return nil, UserError{
			Kind:    conv_errors.KindUnknown,
			Message: "Choose one of fraction, inches or millimeters.",
			Err:     err,
		}
	}
	view, err := reference.Rows(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build reference rows for %s: %w", c, err)
	}
	return &view, nil
}

func (h conversionServiceHandler) reject(operation, input string, err error, hint string) error {
	kind := conv_errors.KindOf(err)
	message := hint
	if kind == conv_errors.KindNegative {
		message = negativeMessage
	}
	h.logger.Warn().
		Err(err).
		Str("operation", operation).
		Str("input", input).
		Str("kind", string(kind)).
		Msg("rejected input")
	return UserError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}
