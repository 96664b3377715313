package nlp

import (
	"github.com/kljensen/snowball/english"
	"github.com/reiver/go-porterstemmer"
)

// PorterStemmer applies the original Porter algorithm.
type PorterStemmer struct{}

// Stem returns the Porter stem of token.
func (PorterStemmer) Stem(token string) string {
	if token == "" {
		return token
	}
	return porterstemmer.StemString(token)
}

// SnowballStemmer applies the English Snowball (Porter2) algorithm.
type SnowballStemmer struct{}

// Stem returns the Snowball stem of token. Stopwords are stemmed too.
func (SnowballStemmer) Stem(token string) string {
	if token == "" {
		return token
	}
	return english.Stem(token, true)
}
