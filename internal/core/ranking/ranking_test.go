package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

func TestCount(t *testing.T) {
	tokens := []string{"the", "cat", "sat", "the", "cat", "sat", "The"}
	c := Count(tokens)

	assert.Equal(t, 7, c.Total())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 2, c.Get("the"))
	assert.Equal(t, 1, c.Get("The"), "counting is case-sensitive")
	assert.Equal(t, 0, c.Get("dog"))
	assert.Equal(t, []string{"the", "cat", "sat", "The"}, c.Tokens())
}

func TestCount_Conservation(t *testing.T) {
	inputs := [][]string{
		nil,
		{"a"},
		{"a", "b", "a", "c", "c", "c"},
		{"x", "x", "x", "x"},
	}
	for i, tokens := range inputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			sum := 0
			for _, n := range Count(tokens).Map() {
				sum += n
			}
			assert.Equal(t, len(tokens), sum)
		})
	}
}

func TestCount_MapIsCopy(t *testing.T) {
	c := Count([]string{"a", "a"})
	m := c.Map()
	m["a"] = 100

	assert.Equal(t, 2, c.Get("a"))
}

func TestRank_CountDescendingFirstSeenTies(t *testing.T) {
	tokens := []string{"b", "a", "c", "a", "d", "c", "a", "e"}
	got := Rank(Count(tokens))

	want := Ranking{
		{Token: "a", Count: 3},
		{Token: "c", Count: 2},
		{Token: "b", Count: 1},
		{Token: "d", Count: 1},
		{Token: "e", Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestRank_ScenarioTies(t *testing.T) {
	got := Rank(Count([]string{"the", "cat", "sat", "the", "cat", "sat"}))

	require.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, 2, e.Count)
	}
	assert.Equal(t, []string{"the", "cat", "sat"}, got.Series("", false).Labels)
}

func TestRank_Deterministic(t *testing.T) {
	tokens := []string{"q", "w", "e", "r", "t", "y", "q", "w", "e"}
	first := Rank(Count(tokens))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Rank(Count(tokens)))
	}
}

func rankingOfSize(n int) Ranking {
	var tokens []string
	for i := 0; i < n; i++ {
		// token i appears n-i times so the ranking order is t0, t1, ...
		for j := 0; j < n-i; j++ {
			tokens = append(tokens, fmt.Sprintf("t%d", i))
		}
	}
	return Rank(Count(tokens))
}

func TestSlices(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		k          int
		wantTop    int
		wantBottom int
	}{
		{"empty", 0, 25, 0, 0},
		{"smaller than k", 10, 25, 10, 10},
		{"exactly k", 25, 25, 25, 25},
		{"between k and 2k", 40, 25, 25, 25},
		{"exactly 2k", 50, 25, 25, 25},
		{"larger than 2k", 60, 25, 25, 25},
		{"zero k", 10, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := rankingOfSize(tc.size)
			top := r.Top(tc.k)
			bottom := r.Bottom(tc.k)

			assert.Len(t, top, tc.wantTop)
			assert.Len(t, bottom, tc.wantBottom)
			if tc.wantTop > 0 {
				assert.Equal(t, r[0], top[0])
				assert.Equal(t, r[len(r)-1], bottom[len(bottom)-1])
			}
		})
	}
}

func TestSlices_OverlapNotDeduplicated(t *testing.T) {
	r := rankingOfSize(30)
	top := r.Top(25)
	bottom := r.Bottom(25)

	// entries 5..24 are in both slices
	assert.Equal(t, r[5:25], top[5:])
	assert.Equal(t, r[5:25], bottom[:20])

	small := rankingOfSize(3)
	assert.Equal(t, small.Top(25), small.Bottom(25))
}

func TestSlices_AreCopies(t *testing.T) {
	r := rankingOfSize(3)
	top := r.Top(2)
	top[0].Count = 99

	assert.NotEqual(t, 99, r[0].Count)
}

func TestAnalyze(t *testing.T) {
	tokens := []string{"the", "cat", "sat", "the", "cat", "sat"}
	a := Analyze(tokens, domain.DefaultSliceSize)

	assert.Equal(t, map[string]int{"the": 2, "cat": 2, "sat": 2}, a.Counts)
	assert.Equal(t, 6, a.TotalTokens())
	assert.Equal(t, 3, a.DistinctTokens())
	assert.Equal(t, a.Ranking, a.Top)
	assert.Equal(t, a.Ranking, a.Bottom)
	assert.Equal(t, 25, a.SliceSize)

	require.Len(t, a.Charts, 3)
	assert.Equal(t, "Word frequency for the top 25 words", a.Charts[0].Title)
	assert.Equal(t, "Word frequency for the bottom 25 words", a.Charts[1].Title)
	assert.Equal(t, AllTitle, a.Charts[2].Title)
	assert.False(t, a.Charts[0].LogScale)
	assert.True(t, a.Charts[2].LogScale)
	assert.Equal(t, []int{2, 2, 2}, a.Charts[2].Values)
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze(nil, domain.DefaultSliceSize)

	assert.Empty(t, a.Counts)
	assert.Empty(t, a.Ranking)
	assert.Empty(t, a.Top)
	assert.Empty(t, a.Bottom)
	require.Len(t, a.Charts, 3)
	for _, s := range a.Charts {
		assert.Zero(t, s.Len())
	}
}
