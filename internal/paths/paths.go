package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	LauncherFileName      = "ic_launcher.png"
	RoundLauncherFileName = "ic_launcher_round.png"
	ConstantsBaseName     = "constants"
	SplashFileName        = "splash_animation.json"
	BackupSuffix          = ".bak"
	DirPerm               = 0755
	FilePerm              = 0644
)

// IOError reports a failed directory create or file write together with the
// offending path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Kind names the error class for diagnostics.
func (e *IOError) Kind() string { return "IoError" }

// ResDir returns the Android resource directory under root.
func ResDir(root string) string {
	return filepath.Join(root, "android", "app", "src", "main", "res")
}

// MipmapDir returns the resource directory for one density tag.
func MipmapDir(root, tag string) string {
	return filepath.Join(ResDir(root), tag)
}

// ConstantsDir returns the directory holding the app constants module.
func ConstantsDir(root string) string {
	return filepath.Join(root, "src", "config")
}

// ConstantsFile returns the constants module path for the given extension.
func ConstantsFile(root, ext string) string {
	return filepath.Join(ConstantsDir(root), ConstantsBaseName+"."+ext)
}

// SplashFile returns the Lottie splash animation path.
func SplashFile(root string) string {
	return filepath.Join(root, "assets", SplashFileName)
}

// EnsureDir creates dir and any missing parents. Existing directories are
// left as they are.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Rel returns path relative to root for display, or path itself when it
// cannot be expressed relatively.
func Rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
