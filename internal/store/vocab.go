package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/gesture"
)

// PhraseEntry is a stored phrase: an ordered token sequence with a display
// meaning. Position is the match priority (lower matches first).
type PhraseEntry struct {
	ID        string
	Tokens    string
	Meaning   string
	Position  int
	CreatedAt time.Time
}

// WordEntry is a stored bare uppercase token.
type WordEntry struct {
	ID        string
	Word      string
	Position  int
	CreatedAt time.Time
}

// ShortcutEntry is a stored two-symbol suffix shortcut.
type ShortcutEntry struct {
	ID        string
	Suffix    string
	Word      string
	Position  int
	CreatedAt time.Time
}

// VocabularyRepository provides CRUD operations for the vocabulary lists.
type VocabularyRepository struct {
	db *sql.DB
}

// Vocabulary returns the vocabulary repository for this store.
func (s *Store) Vocabulary() *VocabularyRepository {
	return &VocabularyRepository{db: s.db}
}

// ListPhrases returns all phrases in position order.
func (r *VocabularyRepository) ListPhrases() ([]PhraseEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, tokens, meaning, position, created_at FROM phrases ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phrases []PhraseEntry
	for rows.Next() {
		var p PhraseEntry
		if err := rows.Scan(&p.ID, &p.Tokens, &p.Meaning, &p.Position, &p.CreatedAt); err != nil {
			return nil, err
		}
		phrases = append(phrases, p)
	}
	return phrases, rows.Err()
}

// ListWords returns all words in position order.
func (r *VocabularyRepository) ListWords() ([]WordEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, word, position, created_at FROM words ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []WordEntry
	for rows.Next() {
		var w WordEntry
		if err := rows.Scan(&w.ID, &w.Word, &w.Position, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// ListShortcuts returns all shortcuts in position order.
func (r *VocabularyRepository) ListShortcuts() ([]ShortcutEntry, error) {
	rows, err := r.db.Query(
		`SELECT id, suffix, word, position, created_at FROM shortcuts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shortcuts []ShortcutEntry
	for rows.Next() {
		var sc ShortcutEntry
		if err := rows.Scan(&sc.ID, &sc.Suffix, &sc.Word, &sc.Position, &sc.CreatedAt); err != nil {
			return nil, err
		}
		shortcuts = append(shortcuts, sc)
	}
	return shortcuts, rows.Err()
}

// CreatePhrase appends a phrase at the end of the priority order.
func (r *VocabularyRepository) CreatePhrase(tokens, meaning string) (*PhraseEntry, error) {
	tokens = strings.ToUpper(strings.TrimSpace(tokens))
	if tokens == "" {
		return nil, errors.New("phrase tokens must not be empty")
	}

	p := &PhraseEntry{
		ID:        uuid.NewString(),
		Tokens:    tokens,
		Meaning:   meaning,
		CreatedAt: time.Now(),
	}

	err := r.db.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM phrases`).Scan(&p.Position)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(
		`INSERT INTO phrases (id, tokens, meaning, position, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Tokens, p.Meaning, p.Position, p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateWord appends a word at the end of the priority order.
func (r *VocabularyRepository) CreateWord(word string) (*WordEntry, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return nil, errors.New("word must not be empty")
	}

	w := &WordEntry{
		ID:        uuid.NewString(),
		Word:      word,
		CreatedAt: time.Now(),
	}

	err := r.db.QueryRow(`SELECT COALESCE(MAX(position), -1) + 1 FROM words`).Scan(&w.Position)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(
		`INSERT INTO words (id, word, position, created_at) VALUES (?, ?, ?, ?)`,
		w.ID, w.Word, w.Position, w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// DeletePhrase removes a phrase by ID.
func (r *VocabularyRepository) DeletePhrase(id string) error {
	return r.deleteByID("phrases", id)
}

// DeleteWord removes a word by ID.
func (r *VocabularyRepository) DeleteWord(id string) error {
	return r.deleteByID("words", id)
}

func (r *VocabularyRepository) deleteByID(table, id string) error {
	res, err := r.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Load assembles the full in-memory vocabulary in priority order. This runs
// once at startup; the result is read-only for the life of the process.
func (r *VocabularyRepository) Load() (*gesture.Vocabulary, error) {
	phrases, err := r.ListPhrases()
	if err != nil {
		return nil, fmt.Errorf("load phrases: %w", err)
	}
	words, err := r.ListWords()
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	shortcuts, err := r.ListShortcuts()
	if err != nil {
		return nil, fmt.Errorf("load shortcuts: %w", err)
	}

	v := &gesture.Vocabulary{}
	for _, p := range phrases {
		v.Phrases = append(v.Phrases, gesture.Phrase{Tokens: p.Tokens, Meaning: p.Meaning})
	}
	for _, w := range words {
		v.Words = append(v.Words, w.Word)
	}
	for _, sc := range shortcuts {
		v.Shortcuts = append(v.Shortcuts, gesture.Shortcut{Suffix: sc.Suffix, Word: sc.Word})
	}
	return v, nil
}
