package app

import (
	"sync"

	"github.com/ayusman/mudra/internal/gesture"
)

// Event types published on the hub.
const (
	EventGesture = "gesture"
	EventSymbol  = "symbol"
	EventMatch   = "match"
)

// Event is a typed pipeline event for UI collaborators. Exactly one of the
// payload fields is set, matching Type.
type Event struct {
	Type    string                  `json:"type"`
	Gesture *gesture.GestureUpdate  `json:"gesture,omitempty"`
	Symbol  *gesture.SymbolAccepted `json:"symbol,omitempty"`
	Match   *gesture.MatchFound     `json:"match,omitempty"`
}

// Hub fans pipeline events out to subscribers. Slow subscribers drop events
// rather than blocking the frame loop.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 64)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers an event to every subscriber, dropping it for any
// subscriber whose buffer is full.
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
