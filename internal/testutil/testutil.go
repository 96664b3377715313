// Package testutil provides deterministic stand-ins for the NLP collaborators,
// so pipeline behavior can be tested without loading language models.
package testutil

import (
	"regexp"
	"strings"
	"sync"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/core/pipeline"
)

var reToken = regexp.MustCompile(`[\pL\pN_]+(?:'[\pL\pN]+)?|\.{2,}|-{2,}|[^\pL\pN_\s]`)

// RegexTokenizer splits words, runs of dots or hyphens and single punctuation marks.
type RegexTokenizer struct{}

func (RegexTokenizer) Tokenize(text string) ([]string, error) {
	return reToken.FindAllString(text, -1), nil
}

// SuffixStemmer strips a handful of English suffixes.
type SuffixStemmer struct{}

func (SuffixStemmer) Stem(token string) string {
	for _, suffix := range []string{"ing", "ed", "s"} {
		if len(token) > len(suffix)+2 && strings.HasSuffix(token, suffix) {
			return strings.TrimSuffix(token, suffix)
		}
	}
	return token
}

// MapTagger tags tokens from a fixed table, "NN" by default, and records every
// sequence it was asked to tag.
type MapTagger struct {
	Tags map[string]string

	mu    sync.Mutex
	calls [][]string
}

func (m *MapTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), tokens...))
	m.mu.Unlock()

	out := make([]domain.TaggedToken, len(tokens))
	for i, t := range tokens {
		tag, ok := m.Tags[t]
		if !ok {
			tag = "NN"
		}
		out[i] = domain.TaggedToken{Text: t, Tag: tag}
	}
	return out, nil
}

// Calls returns the sequences passed to Tag.
func (m *MapTagger) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MapLemmatizer looks lemmas up by token and part of speech and records the
// tokens it saw.
type MapLemmatizer struct {
	Lemmas map[domain.PartOfSpeech]map[string]string

	mu   sync.Mutex
	seen []string
}

func (m *MapLemmatizer) Lemmatize(token string, pos domain.PartOfSpeech) string {
	m.mu.Lock()
	m.seen = append(m.seen, token)
	m.mu.Unlock()

	if lemma, ok := m.Lemmas[pos][token]; ok {
		return lemma
	}
	return token
}

// Seen returns the tokens passed to Lemmatize.
func (m *MapLemmatizer) Seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seen
}

// StopwordList is a fixed stopword set.
type StopwordList map[string]struct{}

// NewStopwordList builds a StopwordList from words.
func NewStopwordList(words ...string) StopwordList {
	s := make(StopwordList, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s StopwordList) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Collaborators returns a full set of fakes. The tagger marks "running" as a
// verb and "quickly" as an adverb; the lemmatizer knows a few English forms.
func Collaborators() pipeline.Collaborators {
	return pipeline.Collaborators{
		Tokenizer: RegexTokenizer{},
		Stemmer:   SuffixStemmer{},
		Tagger: &MapTagger{Tags: map[string]string{
			"the": "DT", "The": "DT", "a": "DT", "an": "DT",
			"running": "VBG", "runn": "VBG", "ran": "VBD",
			"quickly": "RB", "better": "JJR",
			".": ".", ",": ",", "!": ".",
		}},
		Lemmatizer: &MapLemmatizer{Lemmas: map[domain.PartOfSpeech]map[string]string{
			domain.Verb:      {"running": "run", "ran": "run"},
			domain.Noun:      {"cats": "cat", "mice": "mouse"},
			domain.Adjective: {"better": "good"},
		}},
		Stopwords: NewStopwordList("a", "an", "the", "and", "of"),
	}
}
