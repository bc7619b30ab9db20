// Package runner sequences a generation run: launcher icons for every
// density, then the constants module.
package runner

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/receiptkeeper/assetkit/internal/brand"
	"github.com/receiptkeeper/assetkit/internal/config"
	"github.com/receiptkeeper/assetkit/internal/constants"
	"github.com/receiptkeeper/assetkit/internal/eventlog"
	"github.com/receiptkeeper/assetkit/internal/icon"
	"github.com/receiptkeeper/assetkit/internal/paths"
	"github.com/receiptkeeper/assetkit/internal/progress"
)

// Options configures a run. Zero values fall back to defaults: all brand
// densities, the default constants extension, discarded progress output and
// no history.
type Options struct {
	Root            string
	ConstantsExt    string
	BackupConstants bool
	Densities       []brand.Density
	History         eventlog.Store
	Out             *progress.Printer
	Log             zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Densities == nil {
		o.Densities = brand.Densities
	}
	if o.ConstantsExt == "" {
		o.ConstantsExt = config.DefaultConstantsExt
	}
	if o.Out == nil {
		o.Out = progress.New(io.Discard)
	}
	return o
}

// Asset describes one launcher file to write.
type Asset struct {
	Dir  string
	Name string
	Size int
}

// Path returns the asset's full file path.
func (a Asset) Path() string {
	return filepath.Join(a.Dir, a.Name)
}

// Assets returns the regular and round launcher files for a density.
func Assets(root string, d brand.Density) []Asset {
	dir := paths.MipmapDir(root, d.Tag)
	return []Asset{
		{Dir: dir, Name: paths.LauncherFileName, Size: d.Size},
		{Dir: dir, Name: paths.RoundLauncherFileName, Size: d.Size},
	}
}

// Execute renders and writes every density in order, stopping at the first
// failure, then rewrites the constants module. Files written before a
// failure stay on disk.
func Execute(opts Options) error {
	opts = opts.withDefaults()
	for _, d := range opts.Densities {
		if err := WriteDensity(opts, d); err != nil {
			return fmt.Errorf("%s: %w", d.Tag, err)
		}
	}
	opts.Out.Success("All launcher icons generated")
	return WriteConstants(opts)
}

// WriteDensity renders the mark once at the density's size and writes both
// launcher variants into its mipmap directory.
func WriteDensity(opts Options, d brand.Density) error {
	opts = opts.withDefaults()
	data, err := icon.Render(d.Size)
	if err != nil {
		return err
	}

	assets := Assets(opts.Root, d)
	if err := paths.EnsureDir(assets[0].Dir); err != nil {
		return err
	}
	for _, a := range assets {
		if err := paths.AtomicWrite(a.Path(), data); err != nil {
			return err
		}
		opts.Log.Debug().Str("path", a.Path()).Int("bytes", len(data)).Msg("wrote icon")

		e := eventlog.NewEntry(eventlog.KindIcon, a.Path(), data)
		e.Density, e.Size = d.Tag, d.Size
		record(opts, e)
	}

	opts.Out.Generated(d.Tag, d.Size)
	return nil
}

// WriteConstants resolves the constants module under the root and replaces
// its contents.
func WriteConstants(opts Options) error {
	opts = opts.withDefaults()
	path, err := config.ConstantsPath(opts.Root, opts.ConstantsExt)
	if err != nil {
		return err
	}
	if err := constants.Write(path, opts.BackupConstants); err != nil {
		return err
	}
	opts.Log.Debug().Str("path", path).Bool("backup", opts.BackupConstants).Msg("wrote constants")
	record(opts, eventlog.NewEntry(eventlog.KindConstants, path, constants.Render()))

	opts.Out.Success("Updated %s", paths.Rel(opts.Root, path))
	return nil
}

// record appends to the history store when one is configured. History is
// best-effort and never fails a run.
func record(opts Options, e eventlog.Entry) {
	if opts.History == nil {
		return
	}
	if err := opts.History.Record(e); err != nil {
		opts.Log.Warn().Err(err).Str("history", opts.History.Path()).Msg("history record failed")
	}
}
