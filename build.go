package fluentemoji

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"fluentemoji/utils"
)

// Span is one contiguous index range over the full icon list, assigned to a
// single worker process.
type Span struct {
	Start, End int
}

// Builder orchestrates a full build run: fetch, convert in isolated batches,
// merge the per-batch fragments into the final map.
type Builder struct {
	Config *Config
	// Spinner, when set, indicates progress during the upstream fetch.
	Spinner *utils.Spinner
	// Worker executes one batch. When nil the builder re-invokes its own
	// executable in worker mode, which is the protocol the fluentemoji
	// command implements. A binary embedding Builder must either handle
	// worker mode itself before calling Run, or set Worker to run batches
	// in-process.
	Worker func(batch int, span Span) error
}

// Run executes the whole pipeline and returns the number of produced entries.
func (b *Builder) Run() (int, error) {
	cfg := b.Config

	if cfg.SkipFetch {
		if err := CheckSource(cfg); err != nil {
			return 0, err
		}
	} else {
		if b.Spinner != nil {
			b.Spinner.Start()
		}
		err := FetchSource(cfg)
		if b.Spinner != nil {
			b.Spinner.Stop()
		}
		if err != nil {
			return 0, err
		}
	}

	if err := resetOutputTree(cfg); err != nil {
		return 0, err
	}

	icons, err := ListIcons(cfg.AssetsDir())
	if err != nil {
		return 0, err
	}

	worker := b.Worker
	if worker == nil {
		worker = b.runWorker
	}
	for i, span := range Partition(len(icons), cfg.BatchSize) {
		if err := worker(i, span); err != nil {
			log.Printf(utils.DecorateText("warning: batch %d failed: %v", utils.ErrorMessage), i, err)
		}
	}

	final, err := MergeFragments(cfg.ScratchDir())
	if err != nil {
		return 0, err
	}
	if err := final.WriteMap(cfg.MapFile()); err != nil {
		return 0, err
	}
	if err := os.RemoveAll(cfg.ScratchDir()); err != nil {
		return 0, fmt.Errorf("unable to remove the scratch directory: %w", err)
	}
	if !cfg.SkipFetch {
		if err := os.RemoveAll(cfg.SourceDir); err != nil {
			return 0, fmt.Errorf("unable to remove the checkout: %w", err)
		}
	}
	return len(final), nil
}

// runWorker launches one isolated worker process bound to an index range and
// waits for it to exit. The current executable is re-invoked with the worker
// flag, so this default only suits binaries implementing that protocol.
func (b *Builder) runWorker(batch int, span Span) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("unable to resolve the worker executable: %w", err)
	}
	cfg := b.Config

	cmd := exec.Command(exe,
		"-worker",
		"-source", cfg.SourceDir,
		"-out", cfg.OutDir,
		"-quality", strconv.Itoa(int(cfg.Quality)),
		strconv.Itoa(batch), strconv.Itoa(span.Start), strconv.Itoa(span.End),
	)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ListIcons enumerates the icon folders directly under the assets root in
// sorted order. Non-directory entries are ignored.
func ListIcons(assetsDir string) ([]string, error) {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return nil, fmt.Errorf("unable to list the assets root: %w", err)
	}
	var icons []string
	for _, entry := range entries {
		if entry.IsDir() {
			icons = append(icons, entry.Name())
		}
	}
	return icons, nil
}

// Partition splits n items into contiguous spans of at most size items each.
// The spans are disjoint, order-preserving and cover the whole list.
func Partition(n, size int) []Span {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var spans []Span
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

// MergeFragments unions every fragment file in the scratch directory into one
// map. Files are processed in directory-listing order and colliding keys are
// resolved last-writer-wins. A corrupt or unreadable fragment is skipped with
// a warning so that a single bad batch cannot void the whole run.
func MergeFragments(scratchDir string) (EmojiMap, error) {
	entries, err := os.ReadDir(scratchDir)
	if err != nil {
		return nil, fmt.Errorf("unable to list the scratch directory: %w", err)
	}

	final := EmojiMap{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		fragment, err := ReadFragment(filepath.Join(scratchDir, entry.Name()))
		if err != nil {
			log.Printf(utils.DecorateText("warning: %v", utils.ErrorMessage), err)
			continue
		}
		final.Merge(fragment)
	}
	return final, nil
}

// resetOutputTree recreates a clean output directory tree and the scratch
// directory, discarding any pre-existing output.
func resetOutputTree(cfg *Config) error {
	for _, dir := range []string{
		filepath.Join(cfg.OutDir, "3d"),
		cfg.FlatDir(),
		cfg.ScratchDir(),
	} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("unable to clean %s: %w", dir, err)
		}
	}
	for _, dir := range []string{
		cfg.TrimmedDir(),
		cfg.OriginalDir(),
		cfg.FlatDir(),
		cfg.ScratchDir(),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create %s: %w", dir, err)
		}
	}
	return nil
}
