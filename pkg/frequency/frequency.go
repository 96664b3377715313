// Package frequency normalizes English text and ranks its tokens by frequency.
package frequency

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/nlp"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/core/pipeline"
	"github.com/baditaflorin/go_text_frequency/internal/core/ranking"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
	"github.com/baditaflorin/go_text_frequency/internal/warmup"
	"github.com/baditaflorin/l"
)

type (
	// Options selects the optional normalization stages.
	Options = domain.Options
	// Analysis is the result of one run.
	Analysis = domain.Analysis
	// Entry is a token and its count.
	Entry = domain.Entry
	// Series is the data of one bar chart.
	Series = domain.Series
)

// DefaultSliceSize is the number of entries in the top and bottom slices.
const DefaultSliceSize = domain.DefaultSliceSize

// Analyzer runs the normalization pipeline and ranks the resulting tokens.
type Analyzer struct {
	pipeline  *pipeline.Pipeline
	logger    ports.Logger
	sliceSize int

	warmOnce sync.Once
}

// AnalyzerOption defines a functional option for configuring an Analyzer.
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	Logger         ports.Logger
	Collaborators  *pipeline.Collaborators
	Stemmer        nlp.StemmerType
	ExtraStopwords []string
	SliceSize      int
	WarmUp         bool
	WarmUpConfig   warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortLogger sets a logger that already satisfies the internal logging port.
func WithPortLogger(lg ports.Logger) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.Logger = lg
	}
}

// WithCollaborators replaces the default NLP components. The stemmer and
// stopword options are ignored when this is set.
func WithCollaborators(c pipeline.Collaborators) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.Collaborators = &c
	}
}

// WithStemmer selects the stemming algorithm: "porter" (default) or "snowball".
func WithStemmer(name string) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.Stemmer = nlp.StemmerType(name)
	}
}

// WithExtraStopwords adds words to the stopword list.
func WithExtraStopwords(words ...string) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, words...)
	}
}

// WithSliceSize sets K, the size of the top and bottom slices.
func WithSliceSize(k int) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.SliceSize = k
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Analyzer.
func New(opts ...AnalyzerOption) (*Analyzer, error) {
	config := &analyzerConfig{
		Stemmer:      nlp.DefaultConfig().Stemmer,
		SliceSize:    DefaultSliceSize,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.SliceSize < 1 {
		return nil, domain.UsageError("new analyzer", errors.Errorf("slice size must be at least 1, got %d", config.SliceSize))
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	var collaborators pipeline.Collaborators
	if config.Collaborators != nil {
		collaborators = *config.Collaborators
	} else {
		var err error
		collaborators, err = nlp.NewFactory().CreateCollaborators(nlp.Config{
			Stemmer:        config.Stemmer,
			ExtraStopwords: config.ExtraStopwords,
		})
		if err != nil {
			return nil, domain.UsageError("new analyzer", err)
		}
	}

	p, err := pipeline.New(collaborators, config.Logger)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		pipeline:  p,
		logger:    config.Logger,
		sliceSize: config.SliceSize,
	}

	if config.WarmUp {
		a.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return a, nil
}

// SliceSize returns K.
func (a *Analyzer) SliceSize() int {
	return a.sliceSize
}

// Analyze normalizes text as selected by opts and ranks the resulting tokens.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts Options) (Analysis, error) {
	return a.AnalyzeTop(ctx, text, opts, a.sliceSize)
}

// AnalyzeTop is Analyze with a per-call slice size k.
func (a *Analyzer) AnalyzeTop(ctx context.Context, text string, opts Options, k int) (Analysis, error) {
	if k < 1 {
		return Analysis{}, domain.UsageError("analyze", errors.Errorf("slice size must be at least 1, got %d", k))
	}

	tokens, err := a.pipeline.Run(ctx, text, opts)
	if err != nil {
		a.logger.Error("Analysis failed", "options", opts.String(), "error", err)
		return Analysis{}, err
	}

	analysis := ranking.Analyze(tokens, k)
	a.logger.Info("Analyzed text",
		"options", opts.String(),
		"tokens", analysis.TotalTokens(),
		"distinct", analysis.DistinctTokens(),
	)
	return analysis, nil
}

// WarmUp runs sample text through every option combination once per
// analyzer lifetime so lazy model loads happen up front.
func (a *Analyzer) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	ran := false
	a.warmOnce.Do(func() {
		ran = true
		mgr := warmup.NewManager(a.logger, config)
		mgr.RegisterAnalyzer(a)
		mgr.WarmUp(ctx)
	})
	if !ran {
		a.logger.Debug("System already warmed up, skipping")
	}
}
