// mkicon renders the launcher icon for every Android density and rewrites
// src/config/constants.js. It takes no flags; optional RECEIPTKIT_*
// environment variables override the repository root and output details.
// Usage: go run ./cmd/mkicon
package main

import (
	"io"
	"os"

	"github.com/receiptkeeper/assetkit/internal/config"
	"github.com/receiptkeeper/assetkit/internal/eventlog"
	"github.com/receiptkeeper/assetkit/internal/logging"
	"github.com/receiptkeeper/assetkit/internal/progress"
	"github.com/receiptkeeper/assetkit/internal/runner"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	log := logging.New(stderr)

	cfg, err := config.Load()
	if err != nil {
		logging.Failure(log, "generation failed", err)
		return 1
	}
	log = log.Level(cfg.Level())

	opts := runner.Options{
		Root:            cfg.Root,
		ConstantsExt:    cfg.ConstantsExt,
		BackupConstants: cfg.BackupConstants,
		Out:             progress.New(stdout),
		Log:             log,
	}
	if cfg.History != "" {
		store, err := eventlog.Open(cfg.HistoryPath())
		if err != nil {
			log.Warn().Err(err).Str("history", cfg.History).Msg("history disabled")
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	if err := runner.Execute(opts); err != nil {
		logging.Failure(log, "generation failed", err)
		return 1
	}
	return 0
}
