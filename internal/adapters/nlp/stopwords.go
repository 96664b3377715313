package nlp

import "github.com/kljensen/snowball/english"

// SnowballStopwords is the English Snowball stopword list plus optional extra
// words.
type SnowballStopwords struct {
	extra map[string]struct{}
}

// NewSnowballStopwords creates the stopword set. Extra words are expected in
// lower case.
func NewSnowballStopwords(extra ...string) *SnowballStopwords {
	s := &SnowballStopwords{extra: make(map[string]struct{}, len(extra))}
	for _, w := range extra {
		s.extra[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is a stopword.
func (s *SnowballStopwords) Contains(word string) bool {
	if _, ok := s.extra[word]; ok {
		return true
	}
	return english.IsStopWord(word)
}
