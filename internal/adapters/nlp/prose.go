package nlp

import (
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

// ProseTokenizer splits text into Treebank-style tokens; punctuation marks
// become tokens of their own.
type ProseTokenizer struct{}

// NewProseTokenizer creates a tokenizer backed by prose.
func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

// Tokenize returns the tokens of text in order.
func (t *ProseTokenizer) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "prose tokenizer")
	}

	toks := doc.Tokens()
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text
	}
	return out, nil
}

// ProseTagger assigns Penn Treebank tags with prose's averaged perceptron.
//
// The whole sequence is tagged at once: tokens are joined with spaces,
// tagged as a single document, and the tags are aligned back onto the input.
// The perceptron model is built on first use and shared by every later call.
type ProseTagger struct {
	once  sync.Once
	model *prose.Model
	err   error
}

// NewProseTagger creates a tagger backed by prose. The model is built on
// first use or by Load.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Load builds the tagging model. It is safe to call more than once.
func (t *ProseTagger) Load() error {
	t.once.Do(func() {
		doc, err := prose.NewDocument("",
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			t.err = errors.Wrap(err, "load prose tagging model")
			return
		}
		t.model = doc.Model
	})
	return t.err
}

// Tag tags tokens in one pass.
func (t *ProseTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	if len(tokens) == 0 {
		return []domain.TaggedToken{}, nil
	}
	if err := t.Load(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.UsingModel(t.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "prose tagger")
	}

	toks := doc.Tokens()
	pieces := make([]domain.TaggedToken, len(toks))
	for i, tok := range toks {
		pieces[i] = domain.TaggedToken{Text: tok.Text, Tag: tok.Tag}
	}
	return alignTags(tokens, pieces), nil
}

// quoteFolder mirrors the quote rewriting prose applies before tokenizing.
var quoteFolder = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// alignTags maps tagged pieces back onto tokens by character offset, spaces
// excluded. A token takes the tag of the piece starting where it starts when
// one text is a prefix of the other; any other token gets an empty tag.
// Offsets keep later tokens aligned after a piece spans a token boundary.
func alignTags(tokens []string, pieces []domain.TaggedToken) []domain.TaggedToken {
	out := make([]domain.TaggedToken, len(tokens))
	j, pieceStart := 0, 0
	tokStart := 0
	for i, tok := range tokens {
		out[i] = domain.TaggedToken{Text: tok}
		want := quoteFolder.Replace(tok)

		for j < len(pieces) && pieceStart < tokStart {
			pieceStart += len(quoteFolder.Replace(pieces[j].Text))
			j++
		}
		if j < len(pieces) && pieceStart == tokStart {
			got := quoteFolder.Replace(pieces[j].Text)
			if got != "" && (strings.HasPrefix(want, got) || strings.HasPrefix(got, want)) {
				out[i].Tag = pieces[j].Tag
			}
		}
		tokStart += len(want)
	}
	return out
}
