package gesture

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// Session bundles the cross-frame state of one detection session: the
// stabilizer history, the sequence buffer, and the vocabulary matcher.
// Sessions are created when detection is enabled and reset on clear; no
// state survives across independent sessions.
type Session struct {
	stabilizer  *Stabilizer
	accumulator *Accumulator
	matcher     *Matcher
}

// Result is the outcome of advancing a session by one frame. Update is
// always populated; Symbol and Match are set only on acceptance or a
// vocabulary hit.
type Result struct {
	Update GestureUpdate
	Symbol *SymbolAccepted
	Match  *MatchFound
}

// NewSession creates a fresh session over the given vocabulary.
func NewSession(vocab *Vocabulary) *Session {
	return &Session{
		stabilizer:  NewStabilizer(),
		accumulator: NewAccumulator(),
		matcher:     NewMatcher(vocab),
	}
}

// Advance consumes one frame's feature set (nil for "no hand") and drives the
// stabilize → accumulate → match chain.
func (s *Session) Advance(features *detector.FeatureSet) Result {
	if features == nil {
		s.stabilizer.NoHand()
		return Result{Update: GestureUpdate{Label: LabelNone}}
	}

	g := Classify(features)
	result := Result{Update: GestureUpdate{Label: g.Label, Confidence: g.Confidence}}

	stable, ok := s.stabilizer.Observe(g.Label)
	if !ok || !Forwardable(stable) {
		return result
	}

	sequence, accepted := s.accumulator.Offer(stable)
	if !accepted {
		return result
	}
	result.Symbol = &SymbolAccepted{Label: stable, Sequence: sequence}

	if match, found := s.matcher.Match(sequence); found {
		result.Match = &match
	}
	return result
}

// Current returns the currently stabilized display label, or "" if none.
func (s *Session) Current() string {
	return s.stabilizer.Current()
}

// Sequence returns the accumulated symbol string.
func (s *Session) Sequence() string {
	return s.accumulator.Sequence()
}

// SetCooldown adjusts the accumulator's acceptance cooldown.
func (s *Session) SetCooldown(d time.Duration) {
	s.accumulator.SetCooldown(d)
}

// Reset clears all session state: stabilizer history and sequence buffer.
func (s *Session) Reset() {
	s.stabilizer.Reset()
	s.accumulator.Reset()
}
