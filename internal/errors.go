package conv_errors

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrNegative   = errors.New("negative value")
	ErrNotNumeric = errors.New("not numeric")
)

type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("could not parse empty input: %s", e.Reason)
	}
	return fmt.Sprintf("could not parse %q: %s", e.Input, e.Reason)
}

func (e ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// NegativeError is returned for measurements below zero. the
// parser keeps the sign, it's the converters that refuse it
type NegativeError struct {
	Value string
}

func (e NegativeError) Error() string {
	return fmt.Sprintf("value must not be negative, got %s", e.Value)
}

func (e NegativeError) Unwrap() error {
	return ErrNegative
}

// NotNumericError is for inputs that have to be a plain decimal,
// like millimeters, but weren't
type NotNumericError struct {
	Input string
	Err   error
}

func (e NotNumericError) Error() string {
	return fmt.Sprintf("%q is not a plain decimal number", e.Input)
}

func (e NotNumericError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrNotNumeric, e.Err}
	}
	return []error{ErrNotNumeric}
}

type Kind string

const (
	KindParse      Kind = "parse"
	KindNegative   Kind = "negative"
	KindNotNumeric Kind = "not_numeric"
	KindUnknown    Kind = ""
)

func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrNegative):
		return KindNegative
	case errors.Is(err, ErrNotNumeric):
		return KindNotNumeric
	}
	return KindUnknown
}
