package service

import (
	"bytes"
	"testing"

	conv_errors "decimal-converter/internal"
	"decimal-converter/internal/convert"
	"decimal-converter/internal/reference"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestConversionService(grid convert.Grid) (ConversionService, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewConversionService(grid, zerolog.New(buf).Level(zerolog.DebugLevel)), buf
}

func TestConversionService_FractionToDecimal(t *testing.T) {
	svc, _ := newTestConversionService(convert.BinaryGrid)

	t.Run("fraction", func(t *testing.T) {
		out, err := svc.FractionToDecimal("3/8")
		require.NoError(t, err)
		require.Equal(t, &FractionResult{Input: "3/8", Value: "3/8", DecimalInches: "0.375000"}, out)
	})
	t.Run("mixed number", func(t *testing.T) {
		out, err := svc.FractionToDecimal("1 3/8")
		require.NoError(t, err)
		require.Equal(t, "1.375000", out.DecimalInches)
		require.Equal(t, "11/8", out.Value)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := svc.FractionToDecimal("3//8")
		userErr, ok := AsUserError(err)
		require.True(t, ok)
		require.Equal(t, conv_errors.KindParse, userErr.Kind)
		require.Equal(t, "Enter a fraction like  3/8  or  7/16", userErr.Message)
		require.ErrorIs(t, err, conv_errors.ErrParse)
	})
	t.Run("negative", func(t *testing.T) {
		_, err := svc.FractionToDecimal("-1/2")
		userErr, ok := AsUserError(err)
		require.True(t, ok)
		require.Equal(t, conv_errors.KindNegative, userErr.Kind)
		require.Equal(t, "Value must be positive.", userErr.Message)
	})
}

func TestConversionService_InchesToMillimeters(t *testing.T) {
	svc, _ := newTestConversionService(convert.BinaryGrid)

	for input, expected := range map[string]string{
		"3/8":   "9.5250",
		"1 3/8": "34.9250",
		"0.375": "9.5250",
		"1":     "25.4000",
	} {
		out, err := svc.InchesToMillimeters(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, out.Millimeters, input)
	}

	_, err := svc.InchesToMillimeters("")
	userErr, ok := AsUserError(err)
	require.True(t, ok)
	require.Equal(t, "Enter a value like  3/8,  1 3/8,  or  0.375", userErr.Message)

	_, err = svc.InchesToMillimeters("-1 3/8")
	userErr, ok = AsUserError(err)
	require.True(t, ok)
	require.Equal(t, conv_errors.KindNegative, userErr.Kind)
}

func TestConversionService_MillimetersToInches(t *testing.T) {
	t.Run("one inch", func(t *testing.T) {
		svc, _ := newTestConversionService(convert.BinaryGrid)
		out, err := svc.MillimetersToInches("25.4")
		require.NoError(t, err)
		require.Equal(t, &MillimetersResult{
			Input:           "25.4",
			Millimeters:     "25.4000",
			DecimalInches:   "1.000000",
			NearestFraction: "1",
		}, out)
	})
	t.Run("three eighths", func(t *testing.T) {
		svc, _ := newTestConversionService(convert.BinaryGrid)
		out, err := svc.MillimetersToInches("9.525")
		require.NoError(t, err)
		require.Equal(t, "0.375000", out.DecimalInches)
		require.Equal(t, "3/8", out.NearestFraction)
	})
	t.Run("grid from config", func(t *testing.T) {
		svc, _ := newTestConversionService(convert.BestGrid)
		out, err := svc.MillimetersToInches("8.4667")
		require.NoError(t, err)
		require.Equal(t, "1/3", out.NearestFraction)
		require.Equal(t, "best", svc.Grid().Name())
	})
	t.Run("fractions are not numeric here", func(t *testing.T) {
		svc, _ := newTestConversionService(convert.BinaryGrid)
		_, err := svc.MillimetersToInches("3/8")
		userErr, ok := AsUserError(err)
		require.True(t, ok)
		require.Equal(t, conv_errors.KindNotNumeric, userErr.Kind)
		require.Equal(t, "Enter a numeric value in millimeters.", userErr.Message)
	})
	t.Run("negative", func(t *testing.T) {
		svc, logs := newTestConversionService(convert.BinaryGrid)
		_, err := svc.MillimetersToInches("-5")
		userErr, ok := AsUserError(err)
		require.True(t, ok)
		require.Equal(t, conv_errors.KindNegative, userErr.Kind)
		require.Contains(t, logs.String(), `"kind":"negative"`)
	})
}

func TestConversionService_ReferenceView(t *testing.T) {
	svc, _ := newTestConversionService(convert.BinaryGrid)

	view, err := svc.ReferenceView("mm")
	require.NoError(t, err)
	require.Equal(t, reference.MillimetersContext, view.Context)
	require.Len(t, view.Rows, 63)

	_, err = svc.ReferenceView("furlongs")
	_, ok := AsUserError(err)
	require.True(t, ok)
}
