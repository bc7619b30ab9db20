package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/receiptkeeper/assetkit/internal/eventlog"
	"github.com/receiptkeeper/assetkit/internal/paths"
)

// setRoot points the run at root and clears every other override.
func setRoot(t *testing.T, root string) {
	t.Helper()
	for _, k := range []string{
		"RECEIPTKIT_CONSTANTS_EXT", "RECEIPTKIT_BACKUP_CONSTANTS",
		"RECEIPTKIT_HISTORY", "RECEIPTKIT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("RECEIPTKIT_ROOT", root)
}

func TestRunFreshRepo(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(paths.ConstantsDir(root), paths.DirPerm); err != nil {
		t.Fatal(err)
	}
	setRoot(t, root)
	var stdout, stderr bytes.Buffer

	if code := run(&stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}

	matches, _ := filepath.Glob(filepath.Join(paths.ResDir(root), "mipmap-*", "*.png"))
	if len(matches) != 10 {
		t.Errorf("found %d PNGs, want 10", len(matches))
	}
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("stdout has %d lines, want 7:\n%s", len(lines), stdout.String())
	}
	if got := strings.Count(stdout.String(), "Generated "); got != 5 {
		t.Errorf("%d Generated lines, want 5", got)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr: %s", stderr.String())
	}
}

func TestRunMissingConfigDir(t *testing.T) {
	root := t.TempDir()
	setRoot(t, root)
	var stdout, stderr bytes.Buffer

	if code := run(&stdout, &stderr); code == 0 {
		t.Fatal("exit code = 0, want non-zero")
	}
	if !strings.Contains(stderr.String(), "kind=ConfigError") {
		t.Errorf("stderr missing ConfigError kind:\n%s", stderr.String())
	}
	matches, _ := filepath.Glob(filepath.Join(paths.ResDir(root), "mipmap-*", "*.png"))
	if len(matches) != 10 {
		t.Errorf("found %d PNGs after constants failure, want 10", len(matches))
	}
}

func TestRunBadEnvironment(t *testing.T) {
	setRoot(t, t.TempDir())
	t.Setenv("RECEIPTKIT_CONSTANTS_EXT", "rb")
	var stdout, stderr bytes.Buffer

	if code := run(&stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be generated, got:\n%s", stdout.String())
	}
}

func TestRunWithHistory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(paths.ConstantsDir(root), paths.DirPerm); err != nil {
		t.Fatal(err)
	}
	setRoot(t, root)
	t.Setenv("RECEIPTKIT_HISTORY", filepath.Join(".cache", "history.db"))
	var stdout, stderr bytes.Buffer

	if code := run(&stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	store, err := eventlog.NewSQLiteStore(filepath.Join(root, ".cache", "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	entries, err := store.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 11 {
		t.Errorf("history has %d entries, want 11", len(entries))
	}
}
