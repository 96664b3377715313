package domain

import "strings"

// DefaultSliceSize is the number of entries reported at each end of a ranking.
const DefaultSliceSize = 25

// Options selects the optional normalization stages. The zero value runs
// tokenization only.
type Options struct {
	Stem              bool `json:"stem" mapstructure:"stem"`
	Lemmatize         bool `json:"lemmatize" mapstructure:"lemmatize"`
	Lowercase         bool `json:"lowercase" mapstructure:"lowercase"`
	RemoveStopwords   bool `json:"remove_stopwords" mapstructure:"remove_stopwords"`
	RemovePunctuation bool `json:"remove_punctuation" mapstructure:"remove_punctuation"`
}

// AllOptions returns Options with every stage enabled.
func AllOptions() Options {
	return Options{
		Stem:              true,
		Lemmatize:         true,
		Lowercase:         true,
		RemoveStopwords:   true,
		RemovePunctuation: true,
	}
}

// String lists the enabled stages, e.g. "lowercase+punctuation".
func (o Options) String() string {
	var parts []string
	if o.Lowercase {
		parts = append(parts, "lowercase")
	}
	if o.Stem {
		parts = append(parts, "stem")
	}
	if o.Lemmatize {
		parts = append(parts, "lemmatize")
	}
	if o.RemoveStopwords {
		parts = append(parts, "stopwords")
	}
	if o.RemovePunctuation {
		parts = append(parts, "punctuation")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// PartOfSpeech is the coarse word class a lemmatizer understands.
type PartOfSpeech int

const (
	// PosNone means the tag has no lemmatizer mapping.
	PosNone PartOfSpeech = iota
	Adjective
	Verb
	Noun
	Adverb
)

func (p PartOfSpeech) String() string {
	switch p {
	case Adjective:
		return "adjective"
	case Verb:
		return "verb"
	case Noun:
		return "noun"
	case Adverb:
		return "adverb"
	default:
		return "none"
	}
}

// PartOfSpeechFromTag maps a Penn Treebank tag (JJ, VBD, NNS, RB, ...) to a
// PartOfSpeech by its first letter.
func PartOfSpeechFromTag(tag string) PartOfSpeech {
	if tag == "" {
		return PosNone
	}
	switch tag[0] {
	case 'J':
		return Adjective
	case 'V':
		return Verb
	case 'N':
		return Noun
	case 'R':
		return Adverb
	default:
		return PosNone
	}
}

// TaggedToken pairs a token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Entry is one distinct token and its number of occurrences.
type Entry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Series is chart data handed to a renderer.
type Series struct {
	Title    string
	Labels   []string
	Values   []int
	LogScale bool
}

// Len returns the number of bars in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Analysis holds everything produced for one document.
type Analysis struct {
	// Tokens is the sequence fed to the ranker.
	Tokens []string
	// Counts maps each distinct token to its number of occurrences.
	Counts map[string]int
	// Ranking lists every distinct token, count descending, first-seen order among ties.
	Ranking []Entry
	// Top and Bottom are the first and last SliceSize entries of Ranking. They
	// overlap when the ranking holds fewer than 2*SliceSize entries.
	Top    []Entry
	Bottom []Entry
	// SliceSize is the K used for Top and Bottom.
	SliceSize int
	// Charts holds the top, bottom and full (log scaled) series, in that order.
	Charts []Series
}

// TotalTokens returns the number of tokens that reached the ranker.
func (a Analysis) TotalTokens() int {
	return len(a.Tokens)
}

// DistinctTokens returns the number of distinct tokens.
func (a Analysis) DistinctTokens() int {
	return len(a.Ranking)
}
