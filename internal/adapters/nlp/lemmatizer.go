package nlp

import (
	"sort"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

type detachment struct {
	suffix, replacement string
}

// detachments are the WordNet morphological rules, tried in order.
var detachments = map[domain.PartOfSpeech][]detachment{
	domain.Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	domain.Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	domain.Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// GolemLemmatizer lemmatizes English words with the golem dictionary, using
// the part of speech to choose among the dictionary's candidate lemmas.
//
// A suffix detachment confirmed by the dictionary wins. Otherwise verbs and
// adjectives prefer an irregular base form (ran -> run, better -> good) and
// nouns and adverbs keep a word the dictionary already lists as a lemma.
// Plural nouns unknown to the dictionary are singularized. A replacement
// lemma is lower case; a token that is its own lemma, or that nothing
// replaces, is returned exactly as given.
type GolemLemmatizer struct {
	once   sync.Once
	dict   *golem.Lemmatizer
	err    error
	plural *pluralize.Client

	// golem sorts its shared lemma slices in place on lookup.
	mu sync.Mutex
}

// NewGolemLemmatizer creates the lemmatizer. The dictionary is loaded on
// first use or by Load.
func NewGolemLemmatizer() *GolemLemmatizer {
	return &GolemLemmatizer{plural: pluralize.NewClient()}
}

// Load reads the English dictionary. It is safe to call more than once.
func (g *GolemLemmatizer) Load() error {
	g.once.Do(func() {
		g.dict, g.err = golem.New(en.New())
		if g.err != nil {
			g.err = errors.Wrap(g.err, "load english lemma dictionary")
		}
	})
	return g.err
}

// Lemmatize returns the lemma of token for pos, or token itself.
func (g *GolemLemmatizer) Lemmatize(token string, pos domain.PartOfSpeech) string {
	if token == "" || pos == domain.PosNone || g.Load() != nil {
		return token
	}

	word := strings.ToLower(token)
	if lemma := g.lemma(word, pos); lemma != word {
		return lemma
	}
	return token
}

// lemma resolves a lower-cased word. It returns word when nothing replaces it.
func (g *GolemLemmatizer) lemma(word string, pos domain.PartOfSpeech) string {
	known := g.lookup(word)
	if len(known) == 0 {
		if pos == domain.Noun && g.plural.IsPlural(word) {
			return g.plural.Singular(word)
		}
		return word
	}

	lemmas := make(map[string]struct{}, len(known))
	for _, l := range known {
		lemmas[l] = struct{}{}
	}

	for _, d := range detachments[pos] {
		if !strings.HasSuffix(word, d.suffix) || len(word) == len(d.suffix) {
			continue
		}
		candidate := word[:len(word)-len(d.suffix)] + d.replacement
		if _, ok := lemmas[candidate]; ok {
			return candidate
		}
	}

	_, isLemma := lemmas[word]
	irregular := irregularForms(word, known)
	switch pos {
	case domain.Verb, domain.Adjective:
		if len(irregular) > 0 {
			return irregular[0]
		}
		return word
	default:
		if isLemma || len(irregular) == 0 {
			return word
		}
		return irregular[0]
	}
}

// lookup returns a copy of the dictionary lemmas of word, or nil when the
// dictionary does not list it.
func (g *GolemLemmatizer) lookup(word string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.dict.InDict(word) {
		return nil
	}
	return append([]string(nil), g.dict.Lemmas(word)...)
}

// irregularForms returns the lemmas other than word, shortest first.
func irregularForms(word string, lemmas []string) []string {
	var out []string
	for _, l := range lemmas {
		if l != word && l != "" {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
