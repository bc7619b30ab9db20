package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/receiptkeeper/assetkit/internal/paths"
)

// DefaultConstantsExt is the extension of the generated constants module.
const DefaultConstantsExt = "js"

// constantsExts lists the module extensions the app bundler understands.
var constantsExts = map[string]bool{"js": true, "ts": true, "jsx": true, "tsx": true}

// Config holds the optional environment overrides for a generation run.
// The tool has no command-line flags.
type Config struct {
	Root            string `env:"RECEIPTKIT_ROOT"             envDefault:"."`
	ConstantsExt    string `env:"RECEIPTKIT_CONSTANTS_EXT"    envDefault:"js"`
	BackupConstants bool   `env:"RECEIPTKIT_BACKUP_CONSTANTS"`
	History         string `env:"RECEIPTKIT_HISTORY"`
	LogLevel        string `env:"RECEIPTKIT_LOG_LEVEL"        envDefault:"info"`
}

// Error reports a configuration value or target location that does not
// resolve.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Kind names the error class for diagnostics.
func (e *Error) Kind() string { return "ConfigError" }

// Load reads the environment, applies defaults and makes Root absolute.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, &Error{Err: fmt.Errorf("parse env: %w", err)}
	}

	cfg.ConstantsExt = strings.TrimPrefix(strings.ToLower(cfg.ConstantsExt), ".")
	if !constantsExts[cfg.ConstantsExt] {
		return Config{}, &Error{Path: "RECEIPTKIT_CONSTANTS_EXT", Err: fmt.Errorf("unsupported extension %q", cfg.ConstantsExt)}
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, &Error{Path: "RECEIPTKIT_LOG_LEVEL", Err: err}
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return Config{}, &Error{Path: cfg.Root, Err: err}
	}
	cfg.Root = root
	return cfg, nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// HistoryPath returns the history location, resolving a relative one
// against Root. Empty means history is off.
func (c Config) HistoryPath() string {
	if c.History == "" || filepath.IsAbs(c.History) {
		return c.History
	}
	return filepath.Join(c.Root, c.History)
}

// ConstantsPath resolves the constants module under root. The containing
// src/config directory must already exist and, after following symlinks,
// must still live inside root.
func ConstantsPath(root, ext string) (string, error) {
	dir := paths.ConstantsDir(root)
	info, err := os.Stat(dir)
	if err != nil {
		return "", &Error{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &Error{Path: dir, Err: fmt.Errorf("not a directory")}
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", &Error{Path: root, Err: err}
	}
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", &Error{Path: dir, Err: err}
	}
	rel, err := filepath.Rel(realRoot, realDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &Error{Path: dir, Err: fmt.Errorf("resolves outside %s", root)}
	}

	return paths.ConstantsFile(root, ext), nil
}
