package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ConfigHandler handles HTTP requests for runtime detection settings: the
// lighting preset, the enable state, and session control actions.
type ConfigHandler struct {
	ctrl Controller
}

// NewConfigHandler creates a new ConfigHandler over the given controller.
func NewConfigHandler(ctrl Controller) *ConfigHandler {
	return &ConfigHandler{ctrl: ctrl}
}

type configResponse struct {
	Preset   string `json:"preset"`
	Enabled  bool   `json:"enabled"`
	Sequence string `json:"sequence"`
}

type updateConfigRequest struct {
	Preset  *string `json:"preset"`
	Enabled *bool   `json:"enabled"`
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/config, /api/config/clear, /api/config/reset
	path := strings.TrimPrefix(r.URL.Path, "/api/config")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.get(w)
		case http.MethodPut:
			h.update(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "clear":
		h.clear(w, r)
	case "reset":
		h.reset(w, r)
	default:
		writeError(w, http.StatusNotFound, "Unknown config action")
	}
}

func (h *ConfigHandler) snapshot() configResponse {
	return configResponse{
		Preset:   h.ctrl.Preset(),
		Enabled:  h.ctrl.IsEnabled(),
		Sequence: h.ctrl.Sequence(),
	}
}

// get handles GET /api/config.
func (h *ConfigHandler) get(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, h.snapshot())
}

// update handles PUT /api/config. Only the fields present in the request
// change.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Preset != nil {
		if err := h.ctrl.SetPreset(*req.Preset); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Enabled != nil {
		h.ctrl.SetEnabled(*req.Enabled)
	}

	writeJSON(w, http.StatusOK, h.snapshot())
}

// clear handles POST /api/config/clear and empties the accumulated sequence.
func (h *ConfigHandler) clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.ctrl.ClearSession()
	writeJSON(w, http.StatusOK, h.snapshot())
}

// reset handles POST /api/config/reset: back to the "normal" preset with an
// empty session.
func (h *ConfigHandler) reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.ctrl.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset")
		return
	}
	writeJSON(w, http.StatusOK, h.snapshot())
}
