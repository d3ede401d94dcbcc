package gesture

import "strings"

// Phrase is an ordered token sequence with an associated display meaning.
type Phrase struct {
	Tokens  string
	Meaning string
}

// Shortcut maps an exact two-symbol suffix to a display word.
type Shortcut struct {
	Suffix string
	Word   string
}

// Vocabulary holds the static phrase, word, and shortcut lists. It is loaded
// once at startup and read-only for the lifetime of the process; list order
// is match priority order.
type Vocabulary struct {
	Phrases   []Phrase
	Words     []string
	Shortcuts []Shortcut
}

// DefaultVocabulary returns the built-in seed vocabulary, limited to the
// symbols the classifier can produce (A, B, D, K, L, V, W, Y).
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Phrases: []Phrase{
			{Tokens: "DAY", Meaning: "HAVE A GOOD DAY"},
			{Tokens: "WBA", Meaning: "WELCOME BACK"},
			{Tokens: "BYL", Meaning: "BE YOURSELF ALWAYS"},
		},
		Words: []string{
			"BAD",
			"DAD",
			"LAB",
			"WAVY",
			"YAK",
			"WALK",
			"BALD",
			"KAYAK",
		},
		Shortcuts: []Shortcut{
			{Suffix: "LY", Word: "LOVE YOU"},
			{Suffix: "KK", Word: "OKAY"},
			{Suffix: "BB", Word: "BYE BYE"},
		},
	}
}

// Matcher scans accumulated symbol sequences against a vocabulary.
// It is stateless given the input string.
type Matcher struct {
	vocab *Vocabulary
}

// NewMatcher creates a Matcher over the given vocabulary. A nil vocabulary
// falls back to the built-in seed lists.
func NewMatcher(v *Vocabulary) *Matcher {
	if v == nil {
		v = DefaultVocabulary()
	}
	return &Matcher{vocab: v}
}

// Match checks the sequence against phrases first, then words, then the
// two-symbol suffix shortcuts. Phrase and word checks are unanchored
// substring containment in list order; shortcuts require an exact match on
// the last two symbols. At most one match is reported.
func (m *Matcher) Match(sequence string) (MatchFound, bool) {
	for _, p := range m.vocab.Phrases {
		if p.Tokens != "" && strings.Contains(sequence, p.Tokens) {
			return MatchFound{Kind: MatchPhrase, Text: p.Tokens, Meaning: p.Meaning}, true
		}
	}

	for _, w := range m.vocab.Words {
		if w != "" && strings.Contains(sequence, w) {
			return MatchFound{Kind: MatchWord, Text: w, Meaning: w}, true
		}
	}

	if len(sequence) >= 2 {
		suffix := sequence[len(sequence)-2:]
		for _, sc := range m.vocab.Shortcuts {
			if suffix == sc.Suffix {
				return MatchFound{Kind: MatchShortcut, Text: sc.Suffix, Meaning: sc.Word}, true
			}
		}
	}

	return MatchFound{}, false
}
