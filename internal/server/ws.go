// Package server provides the HTTP server for the Mudra hand sign system.
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// EventsHandler streams pipeline events (gesture updates, accepted symbols,
// vocabulary matches) to WebSocket clients. Each client gets its own hub
// subscription; a client that stops reading loses events rather than stalling
// the pipeline.
type EventsHandler struct {
	hub *app.Hub
}

// NewEventsHandler creates a new EventsHandler over the given event hub.
func NewEventsHandler(hub *app.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(events)

	// Reads drain control frames and detect the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
