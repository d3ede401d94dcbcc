package gesture

// Stabilization constants.
const (
	// HistorySize is the capacity of the label history ring.
	HistorySize = 10
	// MinHistory is the number of observations required before any
	// stabilization decision is made.
	MinHistory = 5
	// StabilityCutoff is the minimum fraction of the history the mode label
	// must occupy to be emitted.
	StabilityCutoff = 0.6
)

// Stabilizer suppresses flicker between adjacent frames by holding a bounded
// FIFO history of recent labels and emitting a symbol only once it dominates
// the window. One Stabilizer serves one detection session.
type Stabilizer struct {
	history []string
	current string
}

// NewStabilizer creates an empty Stabilizer.
func NewStabilizer() *Stabilizer {
	return &Stabilizer{
		history: make([]string, 0, HistorySize),
	}
}

// Observe pushes a per-frame label into the history and reports whether the
// window now has a stable symbol. The stable label is returned with ok=true
// only when it occupies at least StabilityCutoff of a sufficiently full
// history.
func (s *Stabilizer) Observe(label string) (string, bool) {
	if len(s.history) >= HistorySize {
		copy(s.history, s.history[1:])
		s.history = s.history[:HistorySize-1]
	}
	s.history = append(s.history, label)

	if len(s.history) < MinHistory {
		return "", false
	}

	mode, count := s.mode()
	if float64(count)/float64(len(s.history)) < StabilityCutoff {
		return "", false
	}

	s.current = mode
	return mode, true
}

// mode returns the most frequent label in the history. Ties go to the label
// seen earliest in the window, which keeps the decision deterministic.
func (s *Stabilizer) mode() (string, int) {
	counts := make(map[string]int, len(s.history))
	best, bestCount := "", 0
	for _, label := range s.history {
		counts[label]++
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}
	return best, bestCount
}

// NoHand clears the current candidate. A held gesture does not persist once
// the hand leaves the frame; the history itself is not pushed to.
func (s *Stabilizer) NoHand() {
	s.current = ""
}

// Current returns the most recently stabilized label, or "" if none is held.
func (s *Stabilizer) Current() string {
	return s.current
}

// Reset clears all stabilizer state for a new session.
func (s *Stabilizer) Reset() {
	s.history = s.history[:0]
	s.current = ""
}

// Forwardable reports whether a stabilized label may enter the sequence
// accumulator. The unknown marker and the two-hand phrase label are terminal
// display states only.
func Forwardable(label string) bool {
	return label != "" && label != LabelUnknown && label != LabelILoveYou && label != LabelNone
}
