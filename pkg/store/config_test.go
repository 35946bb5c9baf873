package store

import (
	"os"
	"path/filepath"
	"testing"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	inTempDir(t)
	t.Setenv("TASKLIST_CONFIG_PATH", "")
	t.Setenv("TASKLIST_PATH", "")
	t.Setenv("TASKLIST_DRIVER", "")
	t.Setenv("TASKLIST_KEY", "")
	t.Setenv("TASKLIST_LOG", "")

	cfg, err := LoadConfig(Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Driver() != DriverDiskv {
		t.Fatalf("expected default driver %q, got %q", DriverDiskv, cfg.Driver())
	}
	if cfg.Key() != DefaultKey {
		t.Fatalf("expected default key %q, got %q", DefaultKey, cfg.Key())
	}
	if filepath.Base(cfg.BasePath()) != ".tasklist.db" || !filepath.IsAbs(cfg.BasePath()) {
		t.Fatalf("expected expanded default path, got %q", cfg.BasePath())
	}
	if cfg.LogPath() != filepath.Join(cfg.BasePath(), "tasklist.log") {
		t.Fatalf("unexpected default log path %q", cfg.LogPath())
	}
}

func TestLoadConfigFileEnvAndOverrides(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("TASKLIST_CONFIG_PATH", "")
	t.Setenv("TASKLIST_PATH", "")
	t.Setenv("TASKLIST_LOG", "")
	yaml := "path: " + filepath.Join(dir, "from-file") + "\ndriver: sqlite\nkey: todo\n"
	if err := os.WriteFile(filepath.Join(dir, ".tasklist.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKLIST_DRIVER", "diskv")

	cfg, err := LoadConfig(Overrides{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "from-file") {
		t.Fatalf("expected path from file, got %q", cfg.BasePath())
	}
	if cfg.Key() != "todo" {
		t.Fatalf("expected key from file, got %q", cfg.Key())
	}
	if cfg.Driver() != "diskv" {
		t.Fatalf("expected env to win over file, got %q", cfg.Driver())
	}

	cfg, err = LoadConfig(Overrides{Path: filepath.Join(dir, "flag"), Driver: "sqlite"})
	if err != nil {
		t.Fatalf("load with overrides: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "flag") || cfg.Driver() != "sqlite" {
		t.Fatalf("expected overrides to win, got path=%q driver=%q", cfg.BasePath(), cfg.Driver())
	}
}
