package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	upgradeBaseURL = "https://get.hookforge.dev"
	fetchTimeout   = 10 * time.Second
)

func newUpgradeCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade hookforge to the latest release",
		Long: `Check the release channel for a newer version and replace the
current executable with it. The running binary is backed up beside
itself as hookforge.backup.<timestamp> before the swap, and the swap
itself is an atomic rename.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			latest, err := fetchLatestVersion()
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}
			if latest == Version {
				fmt.Fprintf(out, "✅ Already up to date (%s)\n", Version)
				return nil
			}

			fmt.Fprintf(out, "Current version: %s\n", Version)
			fmt.Fprintf(out, "Latest version:  %s\n", latest)

			if !assumeYes {
				confirmed, err := confirmUpgrade(latest)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out, "Upgrade cancelled.")
					return nil
				}
			}

			if err := installVersion(out, latest); err != nil {
				return err
			}
			fmt.Fprintf(out, "✅ Upgraded to %s\n", latest)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func fetchLatestVersion() (string, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(upgradeBaseURL + "/version.txt")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("version check returned %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}
	version := strings.TrimSpace(string(body))
	if version == "" {
		return "", fmt.Errorf("version check returned an empty response")
	}
	return version, nil
}

func confirmUpgrade(latest string) (bool, error) {
	confirmed := false
	form := NewAccessibleForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Upgrade to %s?", latest)).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}

// installVersion downloads the platform binary, backs up the current
// executable, and renames the download into place. Either the new
// binary fully lands or the old one stays.
func installVersion(out io.Writer, version string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate the running executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("failed to resolve the running executable: %w", err)
	}

	url := fmt.Sprintf("%s/releases/%s/hookforge-%s-%s", upgradeBaseURL, version, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "⬇️  Downloading %s\n", url)

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url) //nolint:gosec // fixed release channel URL
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned %s", resp.Status)
	}

	dir := filepath.Dir(exe)
	tmp, err := os.CreateTemp(dir, ".hookforge-*.download")
	if err != nil {
		return fmt.Errorf("failed to stage download: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // no-op after successful rename

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close() //nolint:errcheck,gosec // copy error takes precedence
		return fmt.Errorf("download failed: %w", err)
	}
	if err := tmp.Chmod(0o755); err != nil { //nolint:gosec // executable needs exec bits
		tmp.Close() //nolint:errcheck,gosec // chmod error takes precedence
		return fmt.Errorf("failed to stage download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to stage download: %w", err)
	}

	backup := filepath.Join(dir, fmt.Sprintf("hookforge.backup.%s", time.Now().Format("20060102_150405")))
	if err := copyFile(exe, backup, 0o755); err != nil {
		return fmt.Errorf("failed to back up the current binary: %w", err)
	}
	fmt.Fprintf(out, "✓ Backed up: %s\n", backup)

	if err := os.Rename(tmpPath, exe); err != nil {
		return fmt.Errorf("failed to install the new binary: %w", err)
	}
	return nil
}
