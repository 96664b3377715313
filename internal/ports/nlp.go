package ports

import "github.com/baditaflorin/go_text_frequency/internal/core/domain"

// Tokenizer splits raw text into word and punctuation tokens, in text order.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Stemmer reduces a token to its stem.
type Stemmer interface {
	Stem(token string) string
}

// Lemmatizer returns the dictionary form of a token for the given part of speech.
type Lemmatizer interface {
	Lemmatize(token string, pos domain.PartOfSpeech) string
}

// Tagger assigns a part-of-speech tag to every token of a sequence. The result
// has the same length and order as the input.
type Tagger interface {
	Tag(tokens []string) ([]domain.TaggedToken, error)
}

// StopwordSet reports whether a lower-cased word is a stopword.
type StopwordSet interface {
	Contains(word string) bool
}

// Normalizer cleans raw document text before tokenization.
type Normalizer interface {
	Normalize(text string) string
}
