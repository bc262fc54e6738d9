// Package lister runs fixture files through the record dumpers.
package lister

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vdptrace/internal/fixture"
	"vdptrace/internal/logging"
	"vdptrace/internal/printers"
	"vdptrace/internal/trace"
)

// Config holds the options of one lister run.
type Config struct {
	Fixtures     []string
	Stats        bool
	Indent       string // defaults to trace.DefaultIndent
	OutputWriter io.Writer
	Sink         *trace.Sink // overrides OutputWriter and Indent when set
	Logger       *zap.Logger // defaults to logging.Logger()
}

// loadLimit bounds the number of fixture files parsed at once.
const loadLimit = 4

// Run dumps every record of every fixture, in order, to the configured sink.
// Fixtures are parsed concurrently and dumped in argument order.
func Run(cfg Config) error {
	log := cfg.Logger
	if log == nil {
		log = logging.Logger()
	}

	sink := cfg.Sink
	if sink == nil {
		w := cfg.OutputWriter
		if w == nil {
			w = os.Stdout
		}
		sink = trace.NewSink(w)
		if cfg.Indent != "" {
			sink.SetIndent(cfg.Indent)
		}
	}

	if len(cfg.Fixtures) == 0 {
		return errors.New("no fixture files given")
	}

	p := printers.NewPrinter(sink)
	if cfg.Stats {
		p.SetCollectStats()
	}

	reg := printers.DefaultRegister()
	loaded := make([][]fixture.Record, len(cfg.Fixtures))
	var g errgroup.Group
	g.SetLimit(loadLimit)
	for i, path := range cfg.Fixtures {
		g.Go(func() error {
			log.Debug("reading fixture", zap.String("path", path))
			recs, err := fixture.Load(path, reg)
			if err != nil {
				return err
			}
			loaded[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range cfg.Fixtures {
		for j, r := range loaded[i] {
			if err := p.Print(r.Value); err != nil {
				return fmt.Errorf("%s: record %d: %w", path, j, err)
			}
		}
		log.Info("fixture dumped", zap.String("path", path), zap.Int("records", len(loaded[i])))
	}

	if cfg.Stats {
		p.PrintStats()
	}
	return nil
}
