package store

import (
	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/gesture"
)

// seedVocabulary populates empty vocabulary tables with the built-in lists.
// Tables that already hold entries are left alone, so user edits survive
// restarts.
func (s *Store) seedVocabulary() error {
	defaults := gesture.DefaultVocabulary()
	repo := s.Vocabulary()

	var phraseCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM phrases`).Scan(&phraseCount); err != nil {
		return err
	}
	if phraseCount == 0 {
		for _, p := range defaults.Phrases {
			if _, err := repo.CreatePhrase(p.Tokens, p.Meaning); err != nil {
				return err
			}
		}
	}

	var wordCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&wordCount); err != nil {
		return err
	}
	if wordCount == 0 {
		for _, w := range defaults.Words {
			if _, err := repo.CreateWord(w); err != nil {
				return err
			}
		}
	}

	var shortcutCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM shortcuts`).Scan(&shortcutCount); err != nil {
		return err
	}
	if shortcutCount == 0 {
		for i, sc := range defaults.Shortcuts {
			if err := s.insertShortcut(sc, i); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Store) insertShortcut(sc gesture.Shortcut, position int) error {
	_, err := s.db.Exec(
		`INSERT INTO shortcuts (id, suffix, word, position) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), sc.Suffix, sc.Word, position,
	)
	return err
}
