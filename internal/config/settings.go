// Package config loads run settings from defaults, an optional config file,
// TEXTFREQ_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/nlp"
	"github.com/baditaflorin/go_text_frequency/internal/adapters/report"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

// EnvPrefix prefixes every environment variable read by the loader.
const EnvPrefix = "TEXTFREQ"

// Setting keys.
const (
	KeyStem              = "stem"
	KeyLemmatize         = "lemmatize"
	KeyLowercase         = "lowercase"
	KeyRemoveStopwords   = "remove_stopwords"
	KeyRemovePunctuation = "remove_punctuation"
	KeyTop               = "top"
	KeyFormat            = "format"
	KeyLayout            = "layout"
	KeyStemmer           = "stemmer"
	KeyExtraStopwords    = "extra_stopwords"
	KeyChartOut          = "chart_out"
	KeyVerbose           = "verbose"
)

// Settings is the validated configuration of one run.
type Settings struct {
	Stem              bool     `mapstructure:"stem"`
	Lemmatize         bool     `mapstructure:"lemmatize"`
	Lowercase         bool     `mapstructure:"lowercase"`
	RemoveStopwords   bool     `mapstructure:"remove_stopwords"`
	RemovePunctuation bool     `mapstructure:"remove_punctuation"`
	Top               int      `mapstructure:"top"             validate:"min=1"`
	Format            string   `mapstructure:"format"          validate:"oneof=text json"`
	Layout            string   `mapstructure:"layout"          validate:"oneof=sections single-pass"`
	Stemmer           string   `mapstructure:"stemmer"         validate:"oneof=porter snowball"`
	ExtraStopwords    []string `mapstructure:"extra_stopwords" validate:"dive,required"`
	ChartOut          string   `mapstructure:"chart_out"       validate:"omitempty,endswith=.pdf"`
	Verbose           bool     `mapstructure:"verbose"`
}

// Default returns the settings used when nothing is configured: every
// normalization step off, K of 25, the sections text report and Porter stemming.
func Default() Settings {
	return Settings{
		Top:            domain.DefaultSliceSize,
		Format:         string(report.FormatText),
		Layout:         string(report.LayoutSections),
		Stemmer:        string(nlp.PorterStemmerType),
		ExtraStopwords: []string{},
	}
}

var validate = validator.New()

// Validate checks the settings and reports every invalid field.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate settings")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

// Options returns the normalization options selected by the settings.
func (s Settings) Options() domain.Options {
	return domain.Options{
		Stem:              s.Stem,
		Lemmatize:         s.Lemmatize,
		Lowercase:         s.Lowercase,
		RemoveStopwords:   s.RemoveStopwords,
		RemovePunctuation: s.RemovePunctuation,
	}
}

// NLP returns the collaborator configuration.
func (s Settings) NLP() nlp.Config {
	return nlp.Config{
		Stemmer:        nlp.StemmerType(s.Stemmer),
		ExtraStopwords: s.ExtraStopwords,
	}
}

// Report returns the report renderer configuration.
func (s Settings) Report() report.Config {
	return report.Config{
		Format: report.Format(s.Format),
		Layout: report.Layout(s.Layout),
	}
}

// Loader resolves Settings through viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment lookup in place.
// Config files are read from fs; a nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	if fs != nil {
		v.SetFs(fs)
	}

	d := Default()
	v.SetDefault(KeyStem, d.Stem)
	v.SetDefault(KeyLemmatize, d.Lemmatize)
	v.SetDefault(KeyLowercase, d.Lowercase)
	v.SetDefault(KeyRemoveStopwords, d.RemoveStopwords)
	v.SetDefault(KeyRemovePunctuation, d.RemovePunctuation)
	v.SetDefault(KeyTop, d.Top)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLayout, d.Layout)
	v.SetDefault(KeyStemmer, d.Stemmer)
	v.SetDefault(KeyExtraStopwords, d.ExtraStopwords)
	v.SetDefault(KeyChartOut, d.ChartOut)
	v.SetDefault(KeyVerbose, d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// BindFlags binds command-line flags to setting keys. bindings maps a
// setting key to a flag name.
func (l *Loader) BindFlags(flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		if err := l.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}

// Load reads the optional config file and returns validated settings.
// Every failure is a usage error.
func (l *Loader) Load(configFile string) (Settings, error) {
	const op = "load settings"

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return Settings{}, domain.UsageError(op, errors.Wrapf(err, "read config %s", configFile))
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, domain.UsageError(op, errors.Wrap(err, "decode settings"))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, domain.UsageError(op, err)
	}
	return s, nil
}
