package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fernwell/attune/internal/classifier"
	"github.com/fernwell/attune/internal/config"
	"github.com/fernwell/attune/internal/engine"
	"github.com/fernwell/attune/internal/engine/taxonomy"
	"github.com/fernwell/attune/internal/logging"
	"github.com/fernwell/attune/internal/output"
	outfile "github.com/fernwell/attune/internal/output/file"
	"github.com/fernwell/attune/internal/output/multi"
	"github.com/fernwell/attune/internal/output/stdout"
	"github.com/fernwell/attune/internal/pipeline"
	"github.com/fernwell/attune/internal/source"

	// Register source implementations.
	_ "github.com/fernwell/attune/internal/source/file"
	_ "github.com/fernwell/attune/internal/source/stdin"
)

func main() {
	cfg := config.Load()
	logging.Init(strings.Contains(cfg.Output.Kind, "stdout"), cfg.Log.Level)

	tax, err := loadTaxonomy(cfg.Engine.TaxonomyPath)
	if err != nil {
		fatal("load taxonomy", err)
	}

	provider, err := newProvider(cfg.Engine)
	if err != nil {
		fatal("create classifier", err)
	}
	if provider != nil {
		defer provider.Close()
	}

	eng := engine.New(tax)

	out, err := newOutput(cfg.Output)
	if err != nil {
		fatal("create output", err)
	}

	ctor, err := source.Get(cfg.Source.Kind)
	if err != nil {
		fatal("resolve source", err)
	}
	src, err := ctor(cfg.Source.Path)
	if err != nil {
		fatal("create source", err)
	}

	p := pipeline.New(src, provider, eng, out, cfg.Engine.Concurrency)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	slog.Info("starting",
		"source", cfg.Source.Kind,
		"output", cfg.Output.Kind,
		"provider", cfg.Engine.Provider,
		"concurrency", cfg.Engine.Concurrency)
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fatal("pipeline", err)
	}
}

func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(path)
}

// newProvider returns nil for the default "uniform" provider: the engine
// substitutes a uniform distribution itself and flags the record, which a
// pre-filled uniform map would mask.
func newProvider(cfg config.Engine) (classifier.Provider, error) {
	switch cfg.Provider {
	case "onnx":
		p, err := classifier.NewONNX(cfg.ModelPath, cfg.VocabPath, cfg.HeadPath)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, nil
	}
}

// newOutput builds the configured sink. A comma-separated kind such as
// "stdout,file" fans readings out to every listed sink.
func newOutput(cfg config.Output) (output.Output, error) {
	kinds := strings.Split(cfg.Kind, ",")
	if len(kinds) == 1 {
		return newSink(strings.TrimSpace(kinds[0]), cfg)
	}
	sinks := make([]output.Output, 0, len(kinds))
	for _, kind := range kinds {
		s, err := newSink(strings.TrimSpace(kind), cfg)
		if err != nil {
			for _, open := range sinks {
				open.Close()
			}
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return multi.New(sinks...), nil
}

func newSink(kind string, cfg config.Output) (output.Output, error) {
	switch kind {
	case "file":
		o, err := outfile.New(cfg.Path, cfg.Trace)
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return stdout.New(cfg.Trace, false), nil
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
