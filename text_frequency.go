// text_frequency.go
// Package textfrequency reports the most and least frequent tokens of a plain-text
// document after an optional chain of normalization steps:
//
//	tokenize -> lowercase -> stem -> lemmatize -> remove stopwords -> remove punctuation
//
// Tokenization always runs; every other step is switched on through Options.
// The report lists the top K and bottom K entries of the count-descending
// ranking, with ties kept in first-seen order.
package textfrequency

import (
	"bytes"
	"context"
	"io"

	"github.com/spf13/afero"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/document"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/report"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/pkg/frequency"
	"github.com/baditaflorin/l"
)

// Options selects the optional normalization steps.
type Options = frequency.Options

// Config holds configuration options for the report.
type Config struct {
	SliceSize int
	// Format is "text" or "json".
	Format string
	// Layout is "sections" or "single-pass"; text format only.
	Layout string
	// Stemmer is "porter" or "snowball".
	Stemmer string
	Fs      afero.Fs
	// Logger for tracing computation steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the report.
type Option func(*Config)

// WithSliceSize sets K.
func WithSliceSize(k int) Option {
	return func(cfg *Config) {
		cfg.SliceSize = k
	}
}

// WithFormat sets the report format.
func WithFormat(format string) Option {
	return func(cfg *Config) {
		cfg.Format = format
	}
}

// WithLayout sets the text report layout.
func WithLayout(layout string) Option {
	return func(cfg *Config) {
		cfg.Layout = layout
	}
}

// WithStemmer sets the stemming algorithm.
func WithStemmer(name string) Option {
	return func(cfg *Config) {
		cfg.Stemmer = name
	}
}

// WithFs sets the filesystem documents are read from.
func WithFs(fs afero.Fs) Option {
	return func(cfg *Config) {
		cfg.Fs = fs
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// TextFrequency loads documents and writes their frequency reports.
type TextFrequency struct {
	analyzer *frequency.Analyzer
	loader   *document.Loader
	renderer *report.Renderer
}

// New creates a new TextFrequency with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*TextFrequency, error) {
	rc := report.DefaultConfig()
	cfg := Config{
		SliceSize: domain.DefaultSliceSize,
		Format:    string(rc.Format),
		Layout:    string(rc.Layout),
		Stemmer:   "porter",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}

	renderer, err := report.NewRenderer(report.Config{
		Format: report.Format(cfg.Format),
		Layout: report.Layout(cfg.Layout),
	})
	if err != nil {
		return nil, domain.UsageError("new report", err)
	}

	analyzer, err := frequency.New(
		frequency.WithPortLogger(logger.FromExisting(cfg.Logger)),
		frequency.WithSliceSize(cfg.SliceSize),
		frequency.WithStemmer(cfg.Stemmer),
	)
	if err != nil {
		return nil, err
	}

	return &TextFrequency{
		analyzer: analyzer,
		loader:   document.NewLoader(cfg.Fs),
		renderer: renderer,
	}, nil
}

// Report loads the document at path, analyzes it and writes the report to w.
// Nothing is written to w when any step fails.
func (tf *TextFrequency) Report(ctx context.Context, path string, opts Options, w io.Writer) error {
	text, err := tf.loader.Load(path)
	if err != nil {
		return err
	}
	analysis, err := tf.analyzer.Analyze(ctx, text, opts)
	if err != nil {
		return err
	}
	return tf.renderer.Render(w, analysis)
}

// ReportString is Report into a string.
func (tf *TextFrequency) ReportString(ctx context.Context, path string, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := tf.Report(ctx, path, opts, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
