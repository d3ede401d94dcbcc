package gesture

import (
	"strings"
	"time"
)

// Accumulation constants.
const (
	// SequenceSize caps the rolling symbol buffer.
	SequenceSize = 10
	// DefaultCooldown is the minimum time between two accepted symbols.
	DefaultCooldown = 2000 * time.Millisecond
)

// Accumulator debounces stabilized symbols into a rolling sequence buffer.
// A symbol arriving before the cooldown has elapsed since the last
// acceptance is silently dropped, never queued.
type Accumulator struct {
	symbols    []string
	lastAccept time.Time
	cooldown   time.Duration
	now        func() time.Time
}

// NewAccumulator creates an Accumulator with the default cooldown.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		symbols:  make([]string, 0, SequenceSize),
		cooldown: DefaultCooldown,
		now:      time.Now,
	}
}

// SetCooldown overrides the acceptance cooldown. Non-positive values are
// ignored.
func (a *Accumulator) SetCooldown(d time.Duration) {
	if d <= 0 {
		return
	}
	a.cooldown = d
}

// Offer presents a stabilized symbol. If accepted, it returns the buffer's
// concatenated string form and true; otherwise the buffer is unchanged.
func (a *Accumulator) Offer(label string) (string, bool) {
	now := a.now()
	if !a.lastAccept.IsZero() && now.Sub(a.lastAccept) < a.cooldown {
		return "", false
	}

	if len(a.symbols) >= SequenceSize {
		copy(a.symbols, a.symbols[1:])
		a.symbols = a.symbols[:SequenceSize-1]
	}
	a.symbols = append(a.symbols, label)
	a.lastAccept = now

	return a.Sequence(), true
}

// Sequence returns the buffer's concatenated string form.
func (a *Accumulator) Sequence() string {
	return strings.Join(a.symbols, "")
}

// Len returns the number of buffered symbols.
func (a *Accumulator) Len() int {
	return len(a.symbols)
}

// Reset clears the buffer and the cooldown timestamp.
func (a *Accumulator) Reset() {
	a.symbols = a.symbols[:0]
	a.lastAccept = time.Time{}
}
