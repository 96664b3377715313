package pipeline

import (
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// Lowercase replaces every token with its lower-cased form.
func Lowercase(tokens []string) ([]string, error) {
	lower := cases.Lower(language.Und)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = lower.String(t)
	}
	return out, nil
}

// StemWith returns a stage replacing every token with its stem.
func StemWith(stemmer ports.Stemmer) StageFunc {
	return func(tokens []string) ([]string, error) {
		out := make([]string, len(tokens))
		for i, t := range tokens {
			out[i] = stemmer.Stem(t)
		}
		return out, nil
	}
}

// LemmatizeWith returns a stage that tags the whole sequence in one pass and
// lemmatizes every token whose tag maps to a part of speech. Tokens without a
// mapping are kept as they are.
func LemmatizeWith(tagger ports.Tagger, lemmatizer ports.Lemmatizer) StageFunc {
	return func(tokens []string) ([]string, error) {
		tagged, err := tagger.Tag(tokens)
		if err != nil {
			return nil, errors.Wrap(err, "tag tokens")
		}
		if len(tagged) != len(tokens) {
			return nil, errors.Errorf("tagger returned %d tags for %d tokens", len(tagged), len(tokens))
		}

		out := make([]string, len(tokens))
		for i, tt := range tagged {
			pos := domain.PartOfSpeechFromTag(tt.Tag)
			if pos == domain.PosNone {
				out[i] = tokens[i]
				continue
			}
			out[i] = lemmatizer.Lemmatize(tokens[i], pos)
		}
		return out, nil
	}
}

// RemoveStopwordsWith returns a stage dropping every token whose lower-cased
// form is in set, whether or not the lowercase stage ran.
func RemoveStopwordsWith(set ports.StopwordSet) StageFunc {
	return func(tokens []string) ([]string, error) {
		lower := cases.Lower(language.Und)
		out := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if set.Contains(lower.String(t)) {
				continue
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// RemovePunctuation drops every token that is exactly a punctuation token.
func RemovePunctuation(tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsPunctuation(t) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
