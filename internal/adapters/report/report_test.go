package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_frequency/internal/core/ranking"
)

func render(t *testing.T, cfg Config, tokens []string, k int) string {
	t.Helper()
	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, r.Render(&out, ranking.Analyze(tokens, k)))
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func TestRender_Sections(t *testing.T) {
	got := render(t, DefaultConfig(), []string{"the", "cat", "sat", "the", "cat", "sat"}, 25)

	want := lines(
		TopHeader(25), Separator,
		"the 2", "cat 2", "sat 2",
		" ",
		BottomHeader(25), Separator,
		"the 2", "cat 2", "sat 2",
	)
	assert.Equal(t, want, got)
}

func TestRender_SectionsEmpty(t *testing.T) {
	got := render(t, DefaultConfig(), nil, 25)

	assert.Equal(t, lines(TopHeader(25), Separator, " ", BottomHeader(25), Separator), got)
}

func TestRender_SinglePass(t *testing.T) {
	cfg := Config{Format: FormatText, Layout: LayoutSinglePass}

	tests := []struct {
		name   string
		tokens []string
		k      int
		want   string
	}{
		{
			name:   "bottom header opens at N-K",
			tokens: []string{"a", "a", "a", "b", "b", "c"},
			k:      2,
			want: lines(
				TopHeader(2), Separator, "a 3",
				" ", BottomHeader(2), Separator, "b 2", "c 1",
			),
		},
		{
			name:   "middle entries skipped",
			tokens: []string{"a", "a", "a", "a", "b", "b", "b", "c", "c", "d"},
			k:      1,
			want: lines(
				TopHeader(1), Separator, "a 4",
				" ", BottomHeader(1), Separator, "d 1",
			),
		},
		{
			name:   "fewer than K entries has no bottom header",
			tokens: []string{"x", "y"},
			k:      25,
			want:   lines(TopHeader(25), Separator, "x 1", "y 1"),
		},
		{
			name:   "empty ranking prints nothing",
			tokens: nil,
			k:      25,
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, cfg, tc.tokens, tc.k))
		})
	}
}

func TestRender_JSON(t *testing.T) {
	got := render(t, Config{Format: FormatJSON, Layout: LayoutSections}, []string{"b", "a", "b"}, 25)

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.Equal(t, 3, doc.TotalTokens)
	assert.Equal(t, 2, doc.DistinctTokens)
	assert.Equal(t, 25, doc.SliceSize)
	require.Len(t, doc.Top, 2)
	assert.Equal(t, "b", doc.Top[0].Token)
	assert.Equal(t, 2, doc.Top[0].Count)
	assert.Nil(t, doc.Tokens)
}

func TestRender_JSONEmptySlices(t *testing.T) {
	got := render(t, Config{Format: FormatJSON, Layout: LayoutSections}, nil, 25)

	assert.Contains(t, got, `"top":[]`)
	assert.Contains(t, got, `"bottom":[]`)
}

func TestNewDocument_WithTokens(t *testing.T) {
	doc := NewDocument(ranking.Analyze([]string{"x", "y"}, 25), true)
	assert.Equal(t, []string{"x", "y"}, doc.Tokens)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	r, err := NewRenderer(DefaultConfig())
	require.NoError(t, err)

	err = r.Render(failingWriter{}, ranking.Analyze([]string{"x"}, 25))
	assert.ErrorContains(t, err, "disk full")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{Format: "xml", Layout: LayoutSections}.Validate())
	assert.Error(t, Config{Format: FormatText, Layout: "columns"}.Validate())

	_, err := NewRenderer(Config{})
	assert.Error(t, err)
}
