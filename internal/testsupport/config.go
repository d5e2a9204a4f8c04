package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"feedtally/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The input directory exists and is empty; progress logging and colour are
// off so report output is deterministic.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputDir = filepath.Join(base, "feeds")
	cfgVal.Paths.LockPath = filepath.Join(base, "state", "feedtally.lock")
	cfgVal.Batch.ProgressInterval = 0
	cfgVal.Report.Color = config.ColorNever
	cfgVal.Logging.Level = "error"

	if err := os.MkdirAll(cfgVal.Paths.InputDir, 0o755); err != nil {
		t.Fatalf("mkdir input dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFeeds writes the named documents into the input directory.
func WithFeeds(docs map[string]string) ConfigOption {
	return func(b *configBuilder) {
		for name, body := range docs {
			WriteFeed(b.t, filepath.Join(b.cfg.Paths.InputDir, name), body)
		}
	}
}

// WithDanglingLink adds a symlink named name to the input directory that
// points at a missing file, so opening it fails.
func WithDanglingLink(name string) ConfigOption {
	return func(b *configBuilder) {
		link := filepath.Join(b.cfg.Paths.InputDir, name)
		if err := os.Symlink(filepath.Join(b.baseDir, "missing-"+name), link); err != nil {
			b.t.Skipf("symlinks unsupported: %v", err)
		}
	}
}

// WithProgressInterval sets batch.progress_interval in seconds.
func WithProgressInterval(seconds int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Batch.ProgressInterval = seconds
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.InputDir)
}
