package main

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/chart"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/document"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/report"
	"github.com/baditaflorin/go_text_frequency/internal/config"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
	"github.com/baditaflorin/go_text_frequency/pkg/frequency"
)

// flagBindings maps setting keys to flag names.
var flagBindings = map[string]string{
	config.KeyStem:              "stem",
	config.KeyLemmatize:         "lemmatize",
	config.KeyLowercase:         "lowercase",
	config.KeyRemoveStopwords:   "stopwords",
	config.KeyRemovePunctuation: "punctuation",
	config.KeyTop:               "top",
	config.KeyFormat:            "format",
	config.KeyLayout:            "layout",
	config.KeyStemmer:           "stemmer",
	config.KeyExtraStopwords:    "extra-stopwords",
	config.KeyChartOut:          "chart-out",
	config.KeyVerbose:           "verbose",
}

func newRootCommand(fs afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "normalize <document.txt>",
		Short:         "Rank the tokens of a text document by frequency",
		Long:          "Tokenizes a plain-text document, applies the selected normalization steps in a fixed order (lowercase, stem, lemmatize, stopwords, punctuation) and prints the top and bottom tokens by count.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return domain.UsageError("arguments", errors.Errorf("expected exactly one document, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(fs)
			if err := loader.BindFlags(cmd.Flags(), flagBindings); err != nil {
				return domain.UsageError("flags", err)
			}
			settings, err := loader.Load(configFile)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), fs, settings, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.UsageError("flags", err)
	})

	d := config.Default()
	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolP("stem", "s", d.Stem, "stem tokens")
	flags.BoolP("lemmatize", "r", d.Lemmatize, "lemmatize tokens using part-of-speech tags (legacy: -lr)")
	flags.BoolP("lowercase", "l", d.Lowercase, "lowercase tokens")
	flags.BoolP("stopwords", "t", d.RemoveStopwords, "remove stopwords (legacy: -st)")
	flags.BoolP("punctuation", "p", d.RemovePunctuation, "remove punctuation tokens")
	flags.IntP("top", "k", d.Top, "number of tokens in the top and bottom lists")
	flags.String("format", d.Format, "report format (text|json)")
	flags.String("layout", d.Layout, "text report layout (sections|single-pass)")
	flags.String("stemmer", d.Stemmer, "stemming algorithm (porter|snowball)")
	flags.StringSlice("extra-stopwords", d.ExtraStopwords, "additional stopwords")
	flags.String("chart-out", d.ChartOut, "write bar charts to this PDF file")
	flags.BoolP("verbose", "v", d.Verbose, "log pipeline steps to stderr")
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	return cmd
}

// execute runs one analysis. The report is written to stdout only after the
// analysis, the report and any charts were all produced.
func execute(ctx context.Context, fs afero.Fs, s config.Settings, path string, stdout, stderr io.Writer) error {
	var log ports.Logger = logger.Nop()
	if s.Verbose {
		lg, err := logger.NewWriterLogger(stderr, false)
		if err != nil {
			return domain.ProcessingError("logger", err)
		}
		defer lg.Close()
		log = lg
	}
	if ctx == nil {
		ctx = context.Background()
	}

	text, err := document.NewLoader(fs).Load(path)
	if err != nil {
		return err
	}

	nlpCfg := s.NLP()
	analyzer, err := frequency.New(
		frequency.WithPortLogger(log),
		frequency.WithStemmer(string(nlpCfg.Stemmer)),
		frequency.WithExtraStopwords(nlpCfg.ExtraStopwords...),
		frequency.WithSliceSize(s.Top),
	)
	if err != nil {
		return err
	}

	analysis, err := analyzer.Analyze(ctx, text, s.Options())
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(s.Report())
	if err != nil {
		return domain.UsageError("report", err)
	}
	var out bytes.Buffer
	if err := renderer.Render(&out, analysis); err != nil {
		return domain.ProcessingError("report", err)
	}

	if s.ChartOut != "" {
		if err := writeCharts(fs, s.ChartOut, analysis.Charts); err != nil {
			return err
		}
		log.Info("Wrote charts", "path", s.ChartOut, "pages", len(analysis.Charts))
	}

	if _, err := out.WriteTo(stdout); err != nil {
		return domain.ProcessingError("report", errors.Wrap(err, "write report"))
	}
	return nil
}

func writeCharts(fs afero.Fs, path string, series []domain.Series) error {
	var pdf bytes.Buffer
	if err := chart.NewPDFRenderer(chart.DefaultConfig()).Render(&pdf, series); err != nil {
		return domain.ProcessingError("chart", err)
	}
	if err := afero.WriteFile(fs, path, pdf.Bytes(), 0o644); err != nil {
		return domain.InputError("chart", errors.Wrapf(err, "write %s", path))
	}
	return nil
}
