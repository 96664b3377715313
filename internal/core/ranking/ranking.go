// Package ranking counts tokens and orders them by frequency.
//
// Ties are broken by first-seen order: among tokens with the same count, the
// one that appeared earlier in the token sequence ranks higher. The sort is
// stable over insertion order, so a given token sequence always yields the
// same ranking.
package ranking

import (
	"fmt"
	"slices"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

// Counts maps distinct tokens to their number of occurrences and remembers
// the order in which tokens were first seen. Tokens are compared exactly.
type Counts struct {
	order  []string
	counts map[string]int
	total  int
}

// Count builds Counts from a token sequence.
func Count(tokens []string) *Counts {
	c := &Counts{counts: make(map[string]int)}
	for _, t := range tokens {
		if _, ok := c.counts[t]; !ok {
			c.order = append(c.order, t)
		}
		c.counts[t]++
	}
	c.total = len(tokens)
	return c
}

// Total returns the sum of all counts.
func (c *Counts) Total() int {
	return c.total
}

// Len returns the number of distinct tokens.
func (c *Counts) Len() int {
	return len(c.order)
}

// Get returns the count of token, or 0.
func (c *Counts) Get(token string) int {
	return c.counts[token]
}

// Tokens returns the distinct tokens in first-seen order.
func (c *Counts) Tokens() []string {
	return slices.Clone(c.order)
}

// Map returns a copy of the count map.
func (c *Counts) Map() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// Ranking is a list of entries sorted by count, highest first.
type Ranking []domain.Entry

// Rank sorts the distinct tokens of c by count descending.
func Rank(c *Counts) Ranking {
	r := make(Ranking, len(c.order))
	for i, t := range c.order {
		r[i] = domain.Entry{Token: t, Count: c.counts[t]}
	}
	slices.SortStableFunc(r, func(a, b domain.Entry) int {
		return b.Count - a.Count
	})
	return r
}

// Top returns a copy of the first min(k, len(r)) entries.
func (r Ranking) Top(k int) Ranking {
	if k <= 0 {
		return Ranking{}
	}
	k = min(k, len(r))
	return slices.Clone(r[:k])
}

// Bottom returns a copy of the last min(k, len(r)) entries, in ranking order.
func (r Ranking) Bottom(k int) Ranking {
	if k <= 0 {
		return Ranking{}
	}
	k = min(k, len(r))
	return slices.Clone(r[len(r)-k:])
}

// Series turns the ranking into chart data.
func (r Ranking) Series(title string, logScale bool) domain.Series {
	s := domain.Series{
		Title:    title,
		Labels:   make([]string, len(r)),
		Values:   make([]int, len(r)),
		LogScale: logScale,
	}
	for i, e := range r {
		s.Labels[i] = e.Token
		s.Values[i] = e.Count
	}
	return s
}

// AllTitle is the title of the full, log scaled series.
const AllTitle = "Word frequency for all words log scaled"

// TopTitle is the title of the top-k series.
func TopTitle(k int) string {
	return fmt.Sprintf("Word frequency for the top %d words", k)
}

// BottomTitle is the title of the bottom-k series.
func BottomTitle(k int) string {
	return fmt.Sprintf("Word frequency for the bottom %d words", k)
}

// Analyze counts and ranks tokens and extracts the top and bottom k entries
// and the chart series.
func Analyze(tokens []string, k int) domain.Analysis {
	counts := Count(tokens)
	ranked := Rank(counts)
	top := ranked.Top(k)
	bottom := ranked.Bottom(k)

	return domain.Analysis{
		Tokens:    tokens,
		Counts:    counts.Map(),
		Ranking:   ranked,
		Top:       top,
		Bottom:    bottom,
		SliceSize: k,
		Charts: []domain.Series{
			top.Series(TopTitle(k), false),
			bottom.Series(BottomTitle(k), false),
			ranked.Series(AllTitle, true),
		},
	}
}
