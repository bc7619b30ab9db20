// mksplash writes the Lottie splash animation to assets/splash_animation.json.
// Like mkicon it takes no flags and honours RECEIPTKIT_ROOT and
// RECEIPTKIT_HISTORY.
// Usage: go run ./cmd/mksplash
package main

import (
	"io"
	"os"

	"github.com/receiptkeeper/assetkit/internal/config"
	"github.com/receiptkeeper/assetkit/internal/eventlog"
	"github.com/receiptkeeper/assetkit/internal/logging"
	"github.com/receiptkeeper/assetkit/internal/paths"
	"github.com/receiptkeeper/assetkit/internal/progress"
	"github.com/receiptkeeper/assetkit/internal/splash"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	log := logging.New(stderr)

	cfg, err := config.Load()
	if err != nil {
		logging.Failure(log, "splash failed", err)
		return 1
	}
	log = log.Level(cfg.Level())

	path, data, err := splash.Write(cfg.Root)
	if err != nil {
		logging.Failure(log, "splash failed", err)
		return 1
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote splash")

	if hp := cfg.HistoryPath(); hp != "" {
		store, err := eventlog.Open(hp)
		if err != nil {
			log.Warn().Err(err).Str("history", hp).Msg("history disabled")
		} else {
			if err := store.Record(eventlog.NewEntry(eventlog.KindSplash, path, data)); err != nil {
				log.Warn().Err(err).Str("history", hp).Msg("history record failed")
			}
			store.Close()
		}
	}

	out := progress.New(stdout)
	out.Success("Lottie animation saved to %s", paths.Rel(cfg.Root, path))
	out.Info("Duration: %.1fs (%d frames @ %dfps)", splash.Duration, splash.Frames, splash.FPS)
	out.Info("Canvas: %dx%d", splash.Width, splash.Height)
	return 0
}
