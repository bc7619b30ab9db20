// Package logging sets up the zerolog diagnostic stream shared by the
// command-line tools.
package logging

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/receiptkeeper/assetkit/internal/config"
	"github.com/receiptkeeper/assetkit/internal/icon"
	"github.com/receiptkeeper/assetkit/internal/paths"
)

// New returns a console logger writing to w, coloured only on a terminal.
func New(w io.Writer) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// Failure writes one error event carrying the error kind and the path or
// size it concerns.
func Failure(log zerolog.Logger, msg string, err error) {
	ev := log.Error().Err(err)

	var kinded interface{ Kind() string }
	if errors.As(err, &kinded) {
		ev = ev.Str("kind", kinded.Kind())
	}

	var renderErr *icon.RenderError
	var ioErr *paths.IOError
	var cfgErr *config.Error
	switch {
	case errors.As(err, &renderErr):
		ev = ev.Int("size", renderErr.Size)
	case errors.As(err, &ioErr):
		ev = ev.Str("op", ioErr.Op).Str("path", ioErr.Path)
	case errors.As(err, &cfgErr) && cfgErr.Path != "":
		ev = ev.Str("path", cfgErr.Path)
	}
	ev.Msg(msg)
}
