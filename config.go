package fluentemoji

import "path/filepath"

// Default settings used when no flag overrides them.
const (
	// DefaultRepoURL is the upstream Fluent Emoji repository fetched on a full run.
	DefaultRepoURL = "https://github.com/microsoft/fluentui-emoji.git"
	// DefaultSourceDir is the local checkout directory of the upstream repository.
	DefaultSourceDir = "fluentui-emoji"
	// DefaultBatchSize is the number of icons processed by one worker process.
	DefaultBatchSize = 200
	// DefaultQuality is the lossy WebP encoding quality.
	DefaultQuality = 80
)

// Config holds the settings of one build run. It is constructed once in the
// command line front end and passed down to every component.
type Config struct {
	// RepoURL is the upstream repository fetched via shallow clone.
	RepoURL string
	// SourceDir is the local checkout of the upstream repository.
	SourceDir string
	// OutDir is the root of the produced asset tree.
	OutDir string
	// BatchSize is the number of icons assigned to one worker process.
	BatchSize int
	// Quality is the lossy WebP encoding quality.
	Quality float32
	// SkipFetch reuses an existing checkout instead of cloning a fresh one.
	SkipFetch bool
}

// DefaultConfig returns the reference build settings.
func DefaultConfig() *Config {
	return &Config{
		RepoURL:   DefaultRepoURL,
		SourceDir: DefaultSourceDir,
		OutDir:    ".",
		BatchSize: DefaultBatchSize,
		Quality:   DefaultQuality,
	}
}

// AssetsDir returns the root directory holding one sub-folder per icon.
func (c *Config) AssetsDir() string {
	return filepath.Join(c.SourceDir, "assets")
}

// TrimmedDir returns the output directory of the padding-trimmed WebP files.
func (c *Config) TrimmedDir() string {
	return filepath.Join(c.OutDir, "3d", "trimmed")
}

// OriginalDir returns the output directory of the untrimmed WebP files.
func (c *Config) OriginalDir() string {
	return filepath.Join(c.OutDir, "3d", "original")
}

// FlatDir returns the output directory of the flat SVG files.
func (c *Config) FlatDir() string {
	return filepath.Join(c.OutDir, "flat")
}

// ScratchDir returns the directory holding the per-batch fragment files.
func (c *Config) ScratchDir() string {
	return filepath.Join(c.OutDir, ".fragments")
}

// MapFile returns the path of the final emoji map.
func (c *Config) MapFile() string {
	return filepath.Join(c.OutDir, "emoji-map.json")
}
