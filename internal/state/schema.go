package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS songs (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			audio_url TEXT NOT NULL,
			stream_url TEXT,
			image_url TEXT,
			duration_ms INTEGER,
			style TEXT,
			prompt TEXT,
			task_id TEXT,
			suno_id TEXT,
			created_at INTEGER,
			cached_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_songs_position ON songs(position);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
