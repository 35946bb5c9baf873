package commands

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"tableflip.dev/tasklist/pkg/store"
	"tableflip.dev/tasklist/pkg/tasks"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func stored(t *testing.T, dir, driver string) []string {
	t.Helper()
	cfg, err := store.LoadConfig(store.Overrides{Path: dir, Driver: driver})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	kv, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()
	raw, ok, err := kv.Get(context.Background(), cfg.Key())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		return nil
	}
	list, err := tasks.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return list
}

func isolateConfig(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, env := range []string{"TASKLIST_CONFIG_PATH", "TASKLIST_PATH", "TASKLIST_DRIVER", "TASKLIST_KEY", "TASKLIST_LOG"} {
		t.Setenv(env, "")
	}
}

func TestAddListRemove(t *testing.T) {
	isolateConfig(t)
	for _, driver := range []string{store.DriverDiskv, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			dir := t.TempDir()
			flags := []string{"--path", dir, "--driver", driver}

			if err := run(t, append([]string{"add", "buy", "milk"}, flags...)...); err != nil {
				t.Fatalf("add: %v", err)
			}
			if err := run(t, append([]string{"add", "call mom"}, flags...)...); err != nil {
				t.Fatalf("add: %v", err)
			}
			if err := run(t, append([]string{"add", "pay rent"}, flags...)...); err != nil {
				t.Fatalf("add: %v", err)
			}
			if got := strings.Join(stored(t, dir, driver), "|"); got != "buy milk|call mom|pay rent" {
				t.Fatalf("unexpected list after add: %q", got)
			}

			if err := run(t, append([]string{"rm", "2"}, flags...)...); err != nil {
				t.Fatalf("rm: %v", err)
			}
			if got := strings.Join(stored(t, dir, driver), "|"); got != "buy milk|pay rent" {
				t.Fatalf("unexpected list after rm: %q", got)
			}

			if err := run(t, append([]string{"ls"}, flags...)...); err != nil {
				t.Fatalf("ls: %v", err)
			}
		})
	}
}

func TestArgumentErrors(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if err := run(t, "add", "--path", dir, "   "); err == nil || !strings.Contains(err.Error(), "requires a task") {
		t.Fatalf("expected requires a task, got %v", err)
	}
	if err := run(t, "rm", "--path", dir, "two"); err == nil {
		t.Fatalf("expected error for non-numeric task number")
	}
	if err := run(t, "rm", "--path", dir, "9"); err == nil || !strings.Contains(err.Error(), "no task at index 9") {
		t.Fatalf("expected no task at index 9, got %v", err)
	}
	if err := run(t, "ls", "--path", dir, "--driver", "etcd"); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestVersion(t *testing.T) {
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("expected version %q in %q", version, out.String())
	}
}
