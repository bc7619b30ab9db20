package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLayout(t *testing.T) {
	root := filepath.FromSlash("/repo")
	tests := []struct {
		name, got, want string
	}{
		{"ResDir", ResDir(root), filepath.FromSlash("/repo/android/app/src/main/res")},
		{"MipmapDir", MipmapDir(root, "mipmap-hdpi"), filepath.FromSlash("/repo/android/app/src/main/res/mipmap-hdpi")},
		{"ConstantsDir", ConstantsDir(root), filepath.FromSlash("/repo/src/config")},
		{"ConstantsFile", ConstantsFile(root, "js"), filepath.FromSlash("/repo/src/config/constants.js")},
		{"SplashFile", SplashFile(root), filepath.FromSlash("/repo/assets/splash_animation.json")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestAtomicWriteCreatesParents(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	if err := AtomicWrite(p, []byte("hello")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestAtomicWriteOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "f.txt")
	if err := AtomicWrite(p, []byte("old contents")); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("new")); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(p)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestAtomicWriteBlockedParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, FilePerm); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(blocker, "child", "x.png")

	err := AtomicWrite(target, []byte("x"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *IOError", err)
	}
	if ioErr.Op != "mkdir" || ioErr.Path != filepath.Dir(target) {
		t.Errorf("IOError = %+v", ioErr)
	}
	if ioErr.Kind() != "IoError" {
		t.Errorf("Kind() = %q, want IoError", ioErr.Kind())
	}
}

func TestEnsureDirReusesExisting(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(keep, []byte("keep"), FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("existing file lost: %v", err)
	}
}

func TestRel(t *testing.T) {
	root := t.TempDir()
	got := Rel(root, ConstantsFile(root, "ts"))
	if got != "src/config/constants.ts" {
		t.Errorf("Rel = %q, want src/config/constants.ts", got)
	}
}
