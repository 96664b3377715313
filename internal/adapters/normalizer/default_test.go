package normalizer

import "testing"

func TestDefaultNormalizer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "The cat sat.", "The cat sat."},
		{"combining accent composed", "cafe\u0301", "caf\u00e9"},
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"control characters", "\x00a\x07b\tc", "ab\tc"},
		{"case and punctuation kept", "Hello, World!", "Hello, World!"},
		{"empty", "", ""},
	}

	n := NewDefaultNormalizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
