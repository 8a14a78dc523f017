package fluentemoji

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFetchSource_CloneFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	cfg := &Config{
		RepoURL:   filepath.Join(root, "no-such-repo"),
		SourceDir: filepath.Join(root, "src"),
	}

	err := FetchSource(cfg)
	if err == nil {
		t.Fatalf("Clone of a missing repository expected to fail")
	}
	if !strings.Contains(err.Error(), "unable to clone") {
		t.Errorf("Clone failure expected to surface the buffered git output. Got %v", err)
	}
}

func TestCheckSource(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{SourceDir: filepath.Join(root, "src")}

	if err := CheckSource(cfg); err == nil {
		t.Errorf("Missing checkout expected to be reported")
	}

	mkdir(t, cfg.AssetsDir())
	if err := CheckSource(cfg); err != nil {
		t.Errorf("Existing checkout expected to pass validation. Got %v", err)
	}
}
