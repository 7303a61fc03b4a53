package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilentError(t *testing.T) {
	t.Parallel()

	inner := errors.New("hook execution failed")
	silent := NewSilentError(inner)

	assert.Equal(t, "hook execution failed", silent.Error())
	assert.ErrorIs(t, silent, inner)

	var target *SilentError
	require.True(t, errors.As(fmt.Errorf("execute: %w", silent), &target))
	assert.Same(t, inner, target.Err)
}

func TestExitCodeError(t *testing.T) {
	t.Parallel()

	inner := errors.New("settings file is not valid JSON")
	exitErr := NewExitCodeError(inner, 2)

	assert.Equal(t, "settings file is not valid JSON", exitErr.Error())
	assert.Equal(t, 2, exitErr.ExitCode)
	assert.ErrorIs(t, exitErr, inner)
}

func TestErrorsComposeAcrossWrapping(t *testing.T) {
	t.Parallel()

	// execute wraps an exit-code error in a SilentError after printing
	// the fallback payload; main.go must still see both.
	inner := errors.New("dispatch failed")
	silent := NewSilentError(NewExitCodeError(inner, 3))

	var silentTarget *SilentError
	require.True(t, errors.As(silent, &silentTarget))

	var exitTarget *ExitCodeError
	require.True(t, errors.As(silent, &exitTarget))
	assert.Equal(t, 3, exitTarget.ExitCode)
	assert.ErrorIs(t, silent, inner)
}
