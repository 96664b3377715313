// Package report renders a frequency analysis as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/pool"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Layout selects how the text format walks the ranking.
type Layout string

const (
	// LayoutSections prints the whole top slice, then the whole bottom slice.
	LayoutSections Layout = "sections"
	// LayoutSinglePass walks the ranking once and prints each entry at most once,
	// opening the bottom section at index N-K.
	LayoutSinglePass Layout = "single-pass"
)

// Separator is printed under each section header.
const Separator = "             ---------------                  "

// TopHeader returns the header of the top section.
func TopHeader(k int) string {
	return fmt.Sprintf("The top %d tokens with the highest word count:", k)
}

// BottomHeader returns the header of the bottom section.
func BottomHeader(k int) string {
	return fmt.Sprintf("The bottom %d tokens with the lowest word count:", k)
}

// Config holds renderer settings.
type Config struct {
	Format Format
	Layout Layout
}

// DefaultConfig returns the text format with the sections layout.
func DefaultConfig() Config {
	return Config{Format: FormatText, Layout: LayoutSections}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown report format %q", c.Format)
	}
	switch c.Layout {
	case LayoutSections, LayoutSinglePass:
	default:
		return errors.Errorf("unknown report layout %q", c.Layout)
	}
	return nil
}

// Renderer writes analyses to an io.Writer.
type Renderer struct {
	config  Config
	buffers *pool.BufferPool
}

// NewRenderer creates a renderer with the given configuration.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{config: cfg, buffers: pool.NewBufferPool()}, nil
}

// Render writes the report for a to w. Nothing is written unless the whole
// report was produced.
func (r *Renderer) Render(w io.Writer, a domain.Analysis) error {
	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	var err error
	switch r.config.Format {
	case FormatJSON:
		err = json.NewEncoder(buf).Encode(NewDocument(a, false))
	default:
		if r.config.Layout == LayoutSinglePass {
			writeSinglePass(buf, a)
		} else {
			writeSections(buf, a)
		}
	}
	if err != nil {
		return errors.Wrap(err, "encode report")
	}

	if _, err := w.Write(buf.B); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

func writeSections(buf *bytebufferpool.ByteBuffer, a domain.Analysis) {
	writeHeader(buf, TopHeader(a.SliceSize))
	for _, e := range a.Top {
		writeEntry(buf, e)
	}
	buf.WriteString(" \n")
	writeHeader(buf, BottomHeader(a.SliceSize))
	for _, e := range a.Bottom {
		writeEntry(buf, e)
	}
}

func writeSinglePass(buf *bytebufferpool.ByteBuffer, a domain.Analysis) {
	n, k := len(a.Ranking), a.SliceSize
	for i, e := range a.Ranking {
		if i >= k && i < n-k {
			continue
		}
		if i == 0 {
			writeHeader(buf, TopHeader(k))
		}
		if i == n-k {
			buf.WriteString(" \n")
			writeHeader(buf, BottomHeader(k))
		}
		writeEntry(buf, e)
	}
}

func writeHeader(buf *bytebufferpool.ByteBuffer, header string) {
	buf.WriteString(header)
	buf.WriteString("\n")
	buf.WriteString(Separator)
	buf.WriteString("\n")
}

func writeEntry(buf *bytebufferpool.ByteBuffer, e domain.Entry) {
	buf.WriteString(e.Token)
	buf.WriteString(" ")
	buf.B = strconv.AppendInt(buf.B, int64(e.Count), 10)
	buf.WriteString("\n")
}

// Document is the JSON shape of an analysis.
type Document struct {
	TotalTokens    int            `json:"total_tokens"`
	DistinctTokens int            `json:"distinct_tokens"`
	SliceSize      int            `json:"slice_size"`
	Top            []domain.Entry `json:"top"`
	Bottom         []domain.Entry `json:"bottom"`
	Tokens         []string       `json:"tokens,omitempty"`
}

// NewDocument converts an analysis to its JSON document. Slices are never
// nil so they encode as [] rather than null.
func NewDocument(a domain.Analysis, withTokens bool) Document {
	doc := Document{
		TotalTokens:    a.TotalTokens(),
		DistinctTokens: a.DistinctTokens(),
		SliceSize:      a.SliceSize,
		Top:            nonNil(a.Top),
		Bottom:         nonNil(a.Bottom),
	}
	if withTokens {
		doc.Tokens = a.Tokens
	}
	return doc
}

func nonNil(entries []domain.Entry) []domain.Entry {
	if entries == nil {
		return []domain.Entry{}
	}
	return entries
}
