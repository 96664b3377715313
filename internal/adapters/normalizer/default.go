package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// DefaultNormalizer prepares raw document text for tokenization.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize composes the text to NFC, folds CRLF and lone CR line endings to
// LF and drops control characters other than tab and newline. Letters and
// punctuation are left alone; case and punctuation are pipeline stages.
func (n *DefaultNormalizer) Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\r':
			sb.WriteRune('\n')
		case r == '\n' || r == '\t':
			sb.WriteRune(r)
		case unicode.IsControl(r):
			// dropped
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
