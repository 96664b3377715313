// Package nlp adapts third-party English language tooling to the pipeline's
// collaborator ports.
package nlp

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_text_frequency/internal/core/pipeline"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// StemmerType names a stemming algorithm.
type StemmerType string

const (
	// PorterStemmerType is the original Porter algorithm.
	PorterStemmerType StemmerType = "porter"
	// SnowballStemmerType is the English Snowball (Porter2) algorithm.
	SnowballStemmerType StemmerType = "snowball"
)

// Config selects the collaborator implementations.
type Config struct {
	Stemmer        StemmerType
	ExtraStopwords []string
}

// DefaultConfig returns the Porter stemmer and the plain Snowball stopword list.
func DefaultConfig() Config {
	return Config{Stemmer: PorterStemmerType}
}

// Factory creates NLP collaborators.
type Factory struct{}

// NewFactory creates a new collaborator factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateStemmer returns the stemmer for the given type.
func (f *Factory) CreateStemmer(stemmerType StemmerType) (ports.Stemmer, error) {
	switch stemmerType {
	case PorterStemmerType, "":
		return PorterStemmer{}, nil
	case SnowballStemmerType:
		return SnowballStemmer{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q: must be %q or %q", stemmerType, PorterStemmerType, SnowballStemmerType)
	}
}

// CreateStopwords returns the stopword set with extra words lower-cased.
func (f *Factory) CreateStopwords(extra []string) ports.StopwordSet {
	lowered := make([]string, 0, len(extra))
	for _, w := range extra {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return NewSnowballStopwords(lowered...)
}

// CreateCollaborators builds the full collaborator set for the pipeline.
func (f *Factory) CreateCollaborators(cfg Config) (pipeline.Collaborators, error) {
	stemmer, err := f.CreateStemmer(cfg.Stemmer)
	if err != nil {
		return pipeline.Collaborators{}, err
	}
	return pipeline.Collaborators{
		Tokenizer:  NewProseTokenizer(),
		Stemmer:    stemmer,
		Lemmatizer: NewGolemLemmatizer(),
		Tagger:     NewProseTagger(),
		Stopwords:  f.CreateStopwords(cfg.ExtraStopwords),
	}, nil
}
