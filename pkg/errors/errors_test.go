package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.toml", 0, stdErrors.New("bad key"))
	require.Equal(t, "parse error: config.toml: bad key", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("defaults.hover_scale", "must be between 1.00 and 1.15", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "defaults.hover_scale", validationErr.Field)
	require.Contains(t, err.Error(), "defaults.hover_scale")
}

func TestOptionErrorListsAllowedValues(t *testing.T) {
	t.Parallel()

	err := NewOptionError("size", "xxl", []string{"sm", "md"})

	var optionErr *OptionError
	require.ErrorAs(t, err, &optionErr)
	require.Equal(t, "size", optionErr.Option)
	require.Equal(t, `invalid size "xxl" (expected one of: sm, md)`, err.Error())
}
