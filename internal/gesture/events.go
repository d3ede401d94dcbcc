package gesture

// MatchKind identifies which vocabulary list produced a match.
type MatchKind string

const (
	// MatchPhrase is a hit on the phrase list.
	MatchPhrase MatchKind = "phrase"
	// MatchWord is a hit on the word list.
	MatchWord MatchKind = "word"
	// MatchShortcut is a hit on the two-symbol suffix shortcuts.
	MatchShortcut MatchKind = "shortcut"
)

// GestureUpdate is the per-frame classification event. Label is LabelNone
// when no hand is in the frame.
type GestureUpdate struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SymbolAccepted is emitted when the accumulator accepts a stabilized
// symbol. Sequence is the buffer's concatenated string form after the
// acceptance.
type SymbolAccepted struct {
	Label    string `json:"label"`
	Sequence string `json:"sequence"`
}

// MatchFound is emitted when the accumulated sequence matches the
// vocabulary. Only one match kind is ever active at a time.
type MatchFound struct {
	Kind    MatchKind `json:"kind"`
	Text    string    `json:"text"`
	Meaning string    `json:"meaning"`
}
