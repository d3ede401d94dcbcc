// Package api provides HTTP API handlers for the Mudra hand sign system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// Controller is the application surface the API handlers drive. The running
// app satisfies it; tests may substitute a lighter implementation.
type Controller interface {
	Preset() string
	SetPreset(name string) error
	IsEnabled() bool
	SetEnabled(enabled bool)
	Sequence() string
	ClearSession()
	Reset() error
	ReloadVocabulary()
}

// VocabularyHandler handles HTTP requests for the vocabulary lists. A
// mutation rebuilds the running recognition session so new entries match
// immediately.
type VocabularyHandler struct {
	store *store.Store
	ctrl  Controller
}

// NewVocabularyHandler creates a new VocabularyHandler with the given store.
// ctrl may be nil when no app is attached.
func NewVocabularyHandler(s *store.Store, ctrl Controller) *VocabularyHandler {
	return &VocabularyHandler{store: s, ctrl: ctrl}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// the per-list methods.
func (h *VocabularyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/vocabulary/{phrases|words|shortcuts}[/{id}]
	path := strings.TrimPrefix(r.URL.Path, "/api/vocabulary")
	path = strings.TrimPrefix(path, "/")

	list, id, _ := strings.Cut(path, "/")

	switch list {
	case "phrases":
		h.servePhrases(w, r, id)
	case "words":
		h.serveWords(w, r, id)
	case "shortcuts":
		h.serveShortcuts(w, r, id)
	default:
		writeError(w, http.StatusNotFound, "Unknown vocabulary list")
	}
}

// Request and response types

type createPhraseRequest struct {
	Tokens  string `json:"tokens"`
	Meaning string `json:"meaning"`
}

type createWordRequest struct {
	Word string `json:"word"`
}

type phraseResponse struct {
	ID      string `json:"id"`
	Tokens  string `json:"tokens"`
	Meaning string `json:"meaning"`
}

type wordResponse struct {
	ID   string `json:"id"`
	Word string `json:"word"`
}

type shortcutResponse struct {
	ID     string `json:"id"`
	Suffix string `json:"suffix"`
	Word   string `json:"word"`
}

type listPhrasesResponse struct {
	Phrases []phraseResponse `json:"phrases"`
}

type listWordsResponse struct {
	Words []wordResponse `json:"words"`
}

type listShortcutsResponse struct {
	Shortcuts []shortcutResponse `json:"shortcuts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// reload rebuilds the running session after a vocabulary mutation.
func (h *VocabularyHandler) reload() {
	if h.ctrl != nil {
		h.ctrl.ReloadVocabulary()
	}
}

func (h *VocabularyHandler) servePhrases(w http.ResponseWriter, r *http.Request, id string) {
	switch {
	case id == "" && r.Method == http.MethodGet:
		h.listPhrases(w)
	case id == "" && r.Method == http.MethodPost:
		h.createPhrase(w, r)
	case id != "" && r.Method == http.MethodDelete:
		h.deletePhrase(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *VocabularyHandler) serveWords(w http.ResponseWriter, r *http.Request, id string) {
	switch {
	case id == "" && r.Method == http.MethodGet:
		h.listWords(w)
	case id == "" && r.Method == http.MethodPost:
		h.createWord(w, r)
	case id != "" && r.Method == http.MethodDelete:
		h.deleteWord(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *VocabularyHandler) serveShortcuts(w http.ResponseWriter, r *http.Request, id string) {
	if id != "" || r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.listShortcuts(w)
}

// listPhrases handles GET /api/vocabulary/phrases.
func (h *VocabularyHandler) listPhrases(w http.ResponseWriter) {
	entries, err := h.store.Vocabulary().ListPhrases()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list phrases")
		return
	}

	response := listPhrasesResponse{Phrases: make([]phraseResponse, 0, len(entries))}
	for _, e := range entries {
		response.Phrases = append(response.Phrases, phraseResponse{ID: e.ID, Tokens: e.Tokens, Meaning: e.Meaning})
	}
	writeJSON(w, http.StatusOK, response)
}

// createPhrase handles POST /api/vocabulary/phrases.
func (h *VocabularyHandler) createPhrase(w http.ResponseWriter, r *http.Request) {
	var req createPhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.store.Vocabulary().CreatePhrase(req.Tokens, req.Meaning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.reload()

	writeJSON(w, http.StatusCreated, phraseResponse{ID: entry.ID, Tokens: entry.Tokens, Meaning: entry.Meaning})
}

// deletePhrase handles DELETE /api/vocabulary/phrases/{id}.
func (h *VocabularyHandler) deletePhrase(w http.ResponseWriter, id string) {
	if err := h.store.Vocabulary().DeletePhrase(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Phrase not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete phrase")
		return
	}
	h.reload()

	w.WriteHeader(http.StatusNoContent)
}

// listWords handles GET /api/vocabulary/words.
func (h *VocabularyHandler) listWords(w http.ResponseWriter) {
	entries, err := h.store.Vocabulary().ListWords()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list words")
		return
	}

	response := listWordsResponse{Words: make([]wordResponse, 0, len(entries))}
	for _, e := range entries {
		response.Words = append(response.Words, wordResponse{ID: e.ID, Word: e.Word})
	}
	writeJSON(w, http.StatusOK, response)
}

// createWord handles POST /api/vocabulary/words.
func (h *VocabularyHandler) createWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.store.Vocabulary().CreateWord(req.Word)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.reload()

	writeJSON(w, http.StatusCreated, wordResponse{ID: entry.ID, Word: entry.Word})
}

// deleteWord handles DELETE /api/vocabulary/words/{id}.
func (h *VocabularyHandler) deleteWord(w http.ResponseWriter, id string) {
	if err := h.store.Vocabulary().DeleteWord(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Word not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete word")
		return
	}
	h.reload()

	w.WriteHeader(http.StatusNoContent)
}

// listShortcuts handles GET /api/vocabulary/shortcuts.
func (h *VocabularyHandler) listShortcuts(w http.ResponseWriter) {
	entries, err := h.store.Vocabulary().ListShortcuts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shortcuts")
		return
	}

	response := listShortcutsResponse{Shortcuts: make([]shortcutResponse, 0, len(entries))}
	for _, e := range entries {
		response.Shortcuts = append(response.Shortcuts, shortcutResponse{ID: e.ID, Suffix: e.Suffix, Word: e.Word})
	}
	writeJSON(w, http.StatusOK, response)
}
