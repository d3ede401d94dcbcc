package gesture

import (
	"testing"
	"time"
)

// fakeClock drives an Accumulator deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestAccumulator() (*Accumulator, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	a := NewAccumulator()
	a.now = func() time.Time { return clock.t }
	return a, clock
}

func TestAccumulator_CooldownRejects(t *testing.T) {
	a, clock := newTestAccumulator()

	if _, ok := a.Offer("A"); !ok {
		t.Fatal("first symbol should be accepted")
	}

	// 500ms later: inside the 2000ms cooldown, silently dropped.
	clock.advance(500 * time.Millisecond)
	if seq, ok := a.Offer("B"); ok {
		t.Fatalf("symbol inside cooldown accepted, sequence %q", seq)
	}
	if a.Sequence() != "A" {
		t.Errorf("Sequence() = %q, want buffer unchanged at %q", a.Sequence(), "A")
	}
}

func TestAccumulator_CooldownElapsedAccepts(t *testing.T) {
	a, clock := newTestAccumulator()

	a.Offer("A")
	clock.advance(2500 * time.Millisecond)

	seq, ok := a.Offer("B")
	if !ok {
		t.Fatal("symbol after cooldown should be accepted")
	}
	if seq != "AB" {
		t.Errorf("sequence = %q, want AB", seq)
	}
}

func TestAccumulator_RejectionDoesNotResetCooldown(t *testing.T) {
	a, clock := newTestAccumulator()

	a.Offer("A")
	clock.advance(1500 * time.Millisecond)
	a.Offer("B") // rejected
	clock.advance(600 * time.Millisecond)

	// 2100ms since the last acceptance: the rejection must not have
	// restarted the clock.
	if _, ok := a.Offer("D"); !ok {
		t.Error("cooldown should be measured from the last acceptance")
	}
}

func TestAccumulator_BufferCap(t *testing.T) {
	a, clock := newTestAccumulator()

	labels := []string{"A", "B", "D", "K", "L", "V", "W", "Y", "A", "B", "D", "K"}
	for _, label := range labels {
		a.Offer(label)
		clock.advance(3 * time.Second)
	}

	if a.Len() != SequenceSize {
		t.Fatalf("Len() = %d, want %d", a.Len(), SequenceSize)
	}
	// The two oldest symbols were evicted.
	if got := a.Sequence(); got != "DKLVWYABDK" {
		t.Errorf("Sequence() = %q, want DKLVWYABDK", got)
	}
}

func TestAccumulator_Reset(t *testing.T) {
	a, clock := newTestAccumulator()

	a.Offer("A")
	a.Reset()

	if a.Sequence() != "" {
		t.Errorf("Sequence() = %q after Reset, want empty", a.Sequence())
	}

	// The cooldown timestamp is cleared too: the next symbol is accepted
	// immediately.
	clock.advance(time.Millisecond)
	if _, ok := a.Offer("B"); !ok {
		t.Error("first symbol after Reset should be accepted")
	}
}

func TestAccumulator_SetCooldown(t *testing.T) {
	a, clock := newTestAccumulator()
	a.SetCooldown(100 * time.Millisecond)

	a.Offer("A")
	clock.advance(150 * time.Millisecond)
	if _, ok := a.Offer("B"); !ok {
		t.Error("shortened cooldown should allow acceptance after 150ms")
	}

	a.SetCooldown(0) // ignored
	clock.advance(50 * time.Millisecond)
	if _, ok := a.Offer("D"); ok {
		t.Error("non-positive cooldown must be ignored")
	}
}
