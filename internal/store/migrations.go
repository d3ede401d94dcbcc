package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Phrases table - ordered token sequences with display meanings
		`CREATE TABLE IF NOT EXISTS phrases (
			id TEXT PRIMARY KEY,
			tokens TEXT NOT NULL UNIQUE,
			meaning TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Words table - ordered bare uppercase tokens
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			word TEXT NOT NULL UNIQUE,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Shortcuts table - two-symbol suffix shortcuts
		`CREATE TABLE IF NOT EXISTS shortcuts (
			id TEXT PRIMARY KEY,
			suffix TEXT NOT NULL UNIQUE CHECK(length(suffix) = 2),
			word TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes that keep list-order scans cheap
		`CREATE INDEX IF NOT EXISTS idx_phrases_position ON phrases(position)`,
		`CREATE INDEX IF NOT EXISTS idx_words_position ON words(position)`,
		`CREATE INDEX IF NOT EXISTS idx_shortcuts_position ON shortcuts(position)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
