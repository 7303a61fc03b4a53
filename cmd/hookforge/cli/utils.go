package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// IsAccessibleMode reports whether prompts should run in accessible
// mode. Set ACCESSIBLE=1 (or any non-empty value) to get simpler
// prompts that work better with screen readers.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func formTheme() *huh.Theme {
	return huh.ThemeDracula()
}

// NewAccessibleForm creates a huh form with accessibility mode enabled
// when the ACCESSIBLE environment variable is set. WithAccessible()
// only exists on forms, so confirmations always go through here.
func NewAccessibleForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(formTheme())
	if IsAccessibleMode() {
		form = form.WithAccessible(true)
	}
	return form
}

// copyFile copies a file from src to dst, preserving the given mode.
func copyFile(src, dst string, mode os.FileMode) error {
	input, err := os.ReadFile(src) //nolint:gosec // src is resolved from the running executable
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, input, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
