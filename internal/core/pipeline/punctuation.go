package pipeline

// asciiPunctuation holds the 32 ASCII punctuation characters.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// extraPunctuation lists tokens a tokenizer emits for punctuation that the
// ASCII characters alone do not cover.
var extraPunctuation = []string{
	// an empty token carries no word
	"",
	// smart quotes
	"“", "”", "‘", "’",
	// multi-character sequences
	"--", "---", "``", "''", "..", "...", "....",
	// ellipsis and dashes
	"…", "–", "—",
}

var punctuationSet = buildPunctuationSet()

func buildPunctuationSet() map[string]struct{} {
	set := make(map[string]struct{}, len(asciiPunctuation)+len(extraPunctuation))
	for _, r := range asciiPunctuation {
		set[string(r)] = struct{}{}
	}
	for _, p := range extraPunctuation {
		set[p] = struct{}{}
	}
	return set
}

// IsPunctuation reports whether token is a member of the extended punctuation
// set. Membership is exact: "hello," is not punctuation.
func IsPunctuation(token string) bool {
	_, ok := punctuationSet[token]
	return ok
}

