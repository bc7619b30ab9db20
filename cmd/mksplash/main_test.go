package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/receiptkeeper/assetkit/internal/paths"
)

func TestRunWritesSplash(t *testing.T) {
	root := t.TempDir()
	for _, k := range []string{"RECEIPTKIT_CONSTANTS_EXT", "RECEIPTKIT_HISTORY", "RECEIPTKIT_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("RECEIPTKIT_ROOT", root)
	var stdout, stderr bytes.Buffer

	if code := run(&stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	if _, err := os.Stat(paths.SplashFile(root)); err != nil {
		t.Fatalf("splash not written: %v", err)
	}
	want := "✓ Lottie animation saved to assets/splash_animation.json\n" +
		"  - Duration: 2.0s (120 frames @ 60fps)\n" +
		"  - Canvas: 200x200\n"
	if stdout.String() != want {
		t.Errorf("stdout =\n%q\nwant\n%q", stdout.String(), want)
	}
}
