package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"feedtally/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("FEEDTALLY_INPUT_DIR", "")
	t.Setenv("FEEDTALLY_LOG_LEVEL", "")
	chdirTemp(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Paths.InputDir != filepath.Join(wd, "test_feeds") {
		t.Fatalf("unexpected input dir: %q", cfg.Paths.InputDir)
	}
	wantLock := filepath.Join(tempHome, ".local", "share", "feedtally", "feedtally.lock")
	if cfg.Paths.LockPath != wantLock {
		t.Fatalf("unexpected lock path: got %q want %q", cfg.Paths.LockPath, wantLock)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if !cfg.Batch.SkipUnreadable {
		t.Fatal("expected unreadable documents to be skipped by default")
	}
	if cfg.ProgressEvery() != time.Second {
		t.Fatalf("unexpected progress interval: %v", cfg.ProgressEvery())
	}
	if !cfg.Parser.CharsetFallback {
		t.Fatal("expected charset fallback enabled by default")
	}
	if cfg.Report.Color != config.ColorAuto || cfg.Report.Table {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(wantLock)); err != nil || !info.IsDir() {
		t.Fatalf("expected lock directory to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "feedtally.toml")
	t.Setenv("FEEDTALLY_INPUT_DIR", "")
	t.Setenv("FEEDTALLY_LOG_LEVEL", "")

	type payload struct {
		Paths struct {
			InputDir string `toml:"input_dir"`
		} `toml:"paths"`
		Batch struct {
			Extensions       []string `toml:"extensions"`
			ProgressInterval int      `toml:"progress_interval"`
		} `toml:"batch"`
		Report struct {
			Table bool   `toml:"table"`
			Color string `toml:"color"`
		} `toml:"report"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.InputDir = filepath.Join(tempDir, "feeds")
	custom.Batch.Extensions = []string{"XML", ".rss", " .xml "}
	custom.Batch.ProgressInterval = 5
	custom.Report.Table = true
	custom.Report.Color = " Never "
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.InputDir != filepath.Join(tempDir, "feeds") {
		t.Fatalf("unexpected input dir: %q", cfg.Paths.InputDir)
	}
	if got := strings.Join(cfg.Batch.Extensions, ","); got != ".xml,.rss" {
		t.Fatalf("unexpected extensions: %q", got)
	}
	if cfg.ProgressEvery() != 5*time.Second {
		t.Fatalf("unexpected progress interval: %v", cfg.ProgressEvery())
	}
	if !cfg.Report.Table || cfg.Report.Color != config.ColorNever {
		t.Fatalf("unexpected report config: %+v", cfg.Report)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestEnvOverridesInputDirAndLevel(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("FEEDTALLY_INPUT_DIR", filepath.Join(tempDir, "from-env"))
	t.Setenv("FEEDTALLY_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load(filepath.Join(tempDir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.InputDir != filepath.Join(tempDir, "from-env") {
		t.Fatalf("expected input dir from env, got %q", cfg.Paths.InputDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[paths\ninput_dir = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	defaults := config.Default()
	if cfg.Paths.InputDir != defaults.Paths.InputDir {
		t.Fatalf("sample input dir %q differs from default %q", cfg.Paths.InputDir, defaults.Paths.InputDir)
	}
	if cfg.Batch.ProgressInterval != defaults.Batch.ProgressInterval || cfg.Batch.SkipUnreadable != defaults.Batch.SkipUnreadable {
		t.Fatalf("sample batch section differs from defaults: %+v", cfg.Batch)
	}
	if cfg.Report.Color != defaults.Report.Color {
		t.Fatalf("sample color %q differs from default", cfg.Report.Color)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.ProgressInterval = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative progress interval")
	}

	cfg = config.Default()
	cfg.Report.Color = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown color mode")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Paths.InputDir = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty input dir")
	}

	defaults := config.Default()
	if err := defaults.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

// chdirTemp changes into a fresh temp dir and restores the previous working
// directory on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working dir: %v", err)
		}
	})
}
