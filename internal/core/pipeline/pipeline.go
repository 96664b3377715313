// Package pipeline composes the lexical normalization stages that turn raw
// text into the token sequence counted by the ranker.
//
// Tokenization always runs first. The optional stages then run in a fixed
// order, because later stages depend on what earlier ones produced:
//
//	lowercase -> stem -> lemmatize -> stopwords -> punctuation
package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// Stage names, in execution order.
const (
	StageTokenize    = "tokenize"
	StageLowercase   = "lowercase"
	StageStem        = "stem"
	StageLemmatize   = "lemmatize"
	StageStopwords   = "stopwords"
	StagePunctuation = "punctuation"
)

// Collaborators bundles the NLP components the stages delegate to. Only the
// tokenizer is mandatory; the others are needed when their stage is enabled.
type Collaborators struct {
	Tokenizer  ports.Tokenizer
	Stemmer    ports.Stemmer
	Lemmatizer ports.Lemmatizer
	Tagger     ports.Tagger
	Stopwords  ports.StopwordSet
}

// StageFunc replaces a token sequence with a new one.
type StageFunc func(tokens []string) ([]string, error)

// Stage is a named step of the pipeline.
type Stage struct {
	Name  string
	Apply StageFunc
}

type step struct {
	name    string
	enabled func(domain.Options) bool
	build   func(Collaborators) (StageFunc, error)
}

// steps is the fixed stage order.
var steps = []step{
	{
		name:    StageLowercase,
		enabled: func(o domain.Options) bool { return o.Lowercase },
		build: func(Collaborators) (StageFunc, error) {
			return Lowercase, nil
		},
	},
	{
		name:    StageStem,
		enabled: func(o domain.Options) bool { return o.Stem },
		build: func(c Collaborators) (StageFunc, error) {
			if c.Stemmer == nil {
				return nil, errors.New("stemming enabled without a stemmer")
			}
			return StemWith(c.Stemmer), nil
		},
	},
	{
		name:    StageLemmatize,
		enabled: func(o domain.Options) bool { return o.Lemmatize },
		build: func(c Collaborators) (StageFunc, error) {
			if c.Tagger == nil {
				return nil, errors.New("lemmatization enabled without a part-of-speech tagger")
			}
			if c.Lemmatizer == nil {
				return nil, errors.New("lemmatization enabled without a lemmatizer")
			}
			return LemmatizeWith(c.Tagger, c.Lemmatizer), nil
		},
	},
	{
		name:    StageStopwords,
		enabled: func(o domain.Options) bool { return o.RemoveStopwords },
		build: func(c Collaborators) (StageFunc, error) {
			if c.Stopwords == nil {
				return nil, errors.New("stopword removal enabled without a stopword set")
			}
			return RemoveStopwordsWith(c.Stopwords), nil
		},
	},
	{
		name:    StagePunctuation,
		enabled: func(o domain.Options) bool { return o.RemovePunctuation },
		build: func(Collaborators) (StageFunc, error) {
			return RemovePunctuation, nil
		},
	},
}

// Pipeline runs tokenization followed by the enabled stages.
type Pipeline struct {
	collaborators Collaborators
	logger        ports.Logger
}

// New creates a pipeline over the given collaborators.
func New(c Collaborators, logger ports.Logger) (*Pipeline, error) {
	if c.Tokenizer == nil {
		return nil, domain.UsageError("pipeline", errors.New("a tokenizer is required"))
	}
	if logger == nil {
		return nil, domain.UsageError("pipeline", errors.New("a logger is required"))
	}
	return &Pipeline{collaborators: c, logger: logger}, nil
}

// Stages returns the stages enabled by opts, in execution order. Tokenization
// is not included; it always runs.
func (p *Pipeline) Stages(opts domain.Options) ([]Stage, error) {
	var stages []Stage
	for _, s := range steps {
		if !s.enabled(opts) {
			continue
		}
		fn, err := s.build(p.collaborators)
		if err != nil {
			return nil, domain.UsageError(s.name, err)
		}
		stages = append(stages, Stage{Name: s.name, Apply: fn})
	}
	return stages, nil
}

// Run tokenizes text and applies every stage enabled by opts. An empty result
// is not an error.
func (p *Pipeline) Run(ctx context.Context, text string, opts domain.Options) ([]string, error) {
	stages, err := p.Stages(opts)
	if err != nil {
		return nil, err
	}

	tokens, err := p.collaborators.Tokenizer.Tokenize(text)
	if err != nil {
		return nil, domain.ProcessingError(StageTokenize, errors.Wrap(err, "tokenize text"))
	}
	p.logger.Debug("Tokenized text",
		"stage", StageTokenize,
		"tokens", len(tokens),
	)

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			p.logger.Error("Pipeline cancelled", "stage", stage.Name, "error", err)
			return nil, domain.ProcessingError(stage.Name, err)
		}

		out, err := stage.Apply(tokens)
		if err != nil {
			return nil, domain.ProcessingError(stage.Name, err)
		}
		p.logger.Debug("Applied stage",
			"stage", stage.Name,
			"tokens_in", len(tokens),
			"tokens_out", len(out),
		)
		tokens = out
	}

	return tokens, nil
}
