package fluentemoji

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// FetchSource replaces any previous checkout of the upstream repository with
// a fresh shallow clone. A clone failure aborts the whole run. The clone
// output is buffered rather than streamed, as the progress spinner owns the
// terminal while the fetch is running; it is surfaced on failure only.
func FetchSource(cfg *Config) error {
	if err := os.RemoveAll(cfg.SourceDir); err != nil {
		return fmt.Errorf("unable to remove the previous checkout: %w", err)
	}

	cmd := exec.Command("git", "clone", "--depth", "1", cfg.RepoURL, cfg.SourceDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("unable to clone %s: %w: %s", cfg.RepoURL, err, bytes.TrimSpace(output))
	}
	return nil
}

// CheckSource verifies that a previously fetched checkout is present when the
// fetch step is skipped.
func CheckSource(cfg *Config) error {
	fi, err := os.Stat(cfg.AssetsDir())
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("no source tree under %s, run without -skip-fetch first", cfg.SourceDir)
	}
	return nil
}
