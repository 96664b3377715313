package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/core/pipeline"
)

func TestAlignTags(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		pieces []domain.TaggedToken
		want   []string
	}{
		{
			name:   "one to one",
			tokens: []string{"The", "cat", "sat", "."},
			pieces: []domain.TaggedToken{{Text: "The", Tag: "DT"}, {Text: "cat", Tag: "NN"}, {Text: "sat", Tag: "VBD"}, {Text: ".", Tag: "."}},
			want:   []string{"DT", "NN", "VBD", "."},
		},
		{
			name:   "token split by the tagger",
			tokens: []string{"don't", "stop"},
			pieces: []domain.TaggedToken{{Text: "do", Tag: "VBP"}, {Text: "n't", Tag: "RB"}, {Text: "stop", Tag: "VB"}},
			want:   []string{"VBP", "VB"},
		},
		{
			name:   "smart quotes folded",
			tokens: []string{"“", "hi", "”"},
			pieces: []domain.TaggedToken{{Text: `"`, Tag: "``"}, {Text: "hi", Tag: "UH"}, {Text: `"`, Tag: "''"}},
			want:   []string{"``", "UH", "''"},
		},
		{
			name:   "piece spanning a token boundary",
			tokens: []string{"x", "y", "z"},
			pieces: []domain.TaggedToken{{Text: "xy", Tag: "NN"}, {Text: "z", Tag: "VB"}},
			want:   []string{"NN", "", "VB"},
		},
		{
			name:   "unalignable tail",
			tokens: []string{"cat", "sat"},
			pieces: []domain.TaggedToken{{Text: "cat", Tag: "NN"}},
			want:   []string{"NN", ""},
		},
		{
			name:   "empty",
			tokens: nil,
			pieces: nil,
			want:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := alignTags(tc.tokens, tc.pieces)
			require.Len(t, got, len(tc.tokens))
			tags := make([]string, len(got))
			for i, tt := range got {
				tags[i] = tt.Tag
				assert.Equal(t, tc.tokens[i], tt.Text)
			}
			assert.Equal(t, tc.want, tags)
		})
	}
}

func TestStemmers(t *testing.T) {
	assert.Equal(t, "", PorterStemmer{}.Stem(""))
	assert.Equal(t, "", SnowballStemmer{}.Stem(""))
	assert.Equal(t, "run", PorterStemmer{}.Stem("running"))
	assert.Equal(t, "run", SnowballStemmer{}.Stem("running"))
}

func TestSnowballStopwords(t *testing.T) {
	s := NewSnowballStopwords("lorem")

	for _, w := range []string{"a", "an", "the", "and", "lorem"} {
		assert.True(t, s.Contains(w), w)
	}
	for _, w := range []string{"cat", "ipsum", "The"} {
		assert.False(t, s.Contains(w), w)
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	s, err := f.CreateStemmer(SnowballStemmerType)
	require.NoError(t, err)
	assert.IsType(t, SnowballStemmer{}, s)

	s, err = f.CreateStemmer("")
	require.NoError(t, err)
	assert.IsType(t, PorterStemmer{}, s)

	_, err = f.CreateStemmer("lancaster")
	assert.Error(t, err)

	stop := f.CreateStopwords([]string{" Lorem ", ""})
	assert.True(t, stop.Contains("lorem"))

	c, err := f.CreateCollaborators(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, c.Tokenizer)
	assert.NotNil(t, c.Stemmer)
	assert.NotNil(t, c.Lemmatizer)
	assert.NotNil(t, c.Tagger)
	assert.NotNil(t, c.Stopwords)
}

func TestIrregularForms(t *testing.T) {
	assert.Equal(t, []string{"good", "well"}, irregularForms("better", []string{"well", "better", "good"}))
	assert.Empty(t, irregularForms("walk", []string{"walk"}))
}

func TestGolemLemmatizer(t *testing.T) {
	g := NewGolemLemmatizer()
	require.NoError(t, g.Load())

	tests := []struct {
		token string
		pos   domain.PartOfSpeech
		want  string
	}{
		{"", domain.Noun, ""},
		{"Running", domain.PosNone, "Running"},
		{"running", domain.Verb, "run"},
		{"walked", domain.Verb, "walk"},
		{"mice", domain.Noun, "mouse"},
		{"leaves", domain.Noun, "leaf"},
		{"better", domain.Adjective, "good"},
		{"Cats", domain.Noun, "cat"},
		{"Cat", domain.Noun, "Cat"},
		{"CAT", domain.Verb, "CAT"},
		{"Smith", domain.Noun, "Smith"},
		{"U.S.", domain.Noun, "U.S."},
		{"blorbs", domain.Noun, "blorb"},
		{"Blorb", domain.Noun, "Blorb"},
	}

	for _, tc := range tests {
		t.Run(tc.token+"/"+tc.pos.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, g.Lemmatize(tc.token, tc.pos))
		})
	}
}

func TestProseTagger_SharesModel(t *testing.T) {
	tagger := NewProseTagger()
	require.NoError(t, tagger.Load())
	model := tagger.model
	require.NotNil(t, model)

	tagged, err := tagger.Tag([]string{"The", "cat", "sat"})
	require.NoError(t, err)
	require.Len(t, tagged, 3)
	assert.Equal(t, "DT", tagged[0].Tag)
	assert.Same(t, model, tagger.model)
}

func TestPipelineWithCollaborators(t *testing.T) {
	c, err := NewFactory().CreateCollaborators(DefaultConfig())
	require.NoError(t, err)
	p, err := pipeline.New(c, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name  string
		text  string
		opts  domain.Options
		check func(t *testing.T, tokens []string)
	}{
		{
			name: "lemmatize keeps case of words that are their own lemma",
			text: "Cat cat CAT Dog dog",
			opts: domain.Options{Lemmatize: true},
			check: func(t *testing.T, tokens []string) {
				assert.Equal(t, []string{"Cat", "cat", "CAT", "Dog", "dog"}, tokens)
			},
		},
		{
			name: "lemmatize uses the part of speech",
			text: "The mice were running",
			opts: domain.Options{Lemmatize: true},
			check: func(t *testing.T, tokens []string) {
				require.Len(t, tokens, 4)
				assert.Equal(t, "The", tokens[0])
				assert.Equal(t, "mouse", tokens[1])
				assert.Equal(t, "run", tokens[3])
			},
		},
		{
			name: "lemmatize only",
			text: "She studies maths",
			opts: domain.Options{Lemmatize: true},
			check: func(t *testing.T, tokens []string) {
				require.Len(t, tokens, 3)
				assert.Equal(t, "She", tokens[0])
				assert.Equal(t, "study", tokens[1])
			},
		},
		{
			name: "lemmatize runs on stemmed tokens",
			text: "She studies maths",
			opts: domain.Options{Stem: true, Lemmatize: true},
			check: func(t *testing.T, tokens []string) {
				assert.Equal(t, []string{"she", "studi", "math"}, tokens)
			},
		},
		{
			name: "stem and lemmatize running",
			text: "running",
			opts: domain.Options{Stem: true, Lemmatize: true},
			check: func(t *testing.T, tokens []string) {
				assert.Equal(t, []string{"run"}, tokens)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := p.Run(context.Background(), tc.text, tc.opts)
			require.NoError(t, err)
			tc.check(t, tokens)
		})
	}
}
