package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		expected string
	}{
		"format":         {category: Format, expected: "Format Error"},
		"already exists": {category: AlreadyExists, expected: "Already Exists"},
		"argument":       {category: Argument, expected: "Argument Error"},
		"unexpected":     {category: Unexpected, expected: "Unexpected Error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.category.String())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("underlying failure")

	err := Wrap(cause, Format)
	require.NotNil(t, err)

	assert.Equal(t, Format, err.Category)
	assert.Equal(t, "underlying failure", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Unexpected))
	assert.Nil(t, WrapWithMessage(nil, Unexpected, "context"))
}

func TestWrapWithMessage(t *testing.T) {
	cause := stderrors.New("no such file")

	err := WrapWithMessage(cause, Unexpected, "reading changelog")
	require.NotNil(t, err)

	assert.Equal(t, "reading changelog: no such file", err.Message)
	assert.True(t, stderrors.Is(err, cause))
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewArgumentError("command is required")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
	assert.Nil(t, AsCLIError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewArgumentErrorWithUsage("command is required", "semlog <init|calc|print> [flags]")

	out := FormatErrorPlain(err)

	assert.Equal(t, "Error [Argument Error]: command is required\n\nUsage: semlog <init|calc|print> [flags]\n", out)
}

func TestFormatErrorNil(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}
