package state

import (
	"database/sql"
	"time"

	dbutil "github.com/boostlegends/Prodverse/internal/db"
)

// CachedSong is a catalog entry saved for offline startup.
type CachedSong struct {
	ID        string
	Title     string
	AudioURL  string
	StreamURL string
	ImageURL  string
	Duration  time.Duration
	Style     string
	Prompt    string
	TaskID    string
	SunoID    string
	CreatedAt time.Time
}

// SaveSongs replaces the cached catalog with songs, keeping their order.
func (m *Manager) SaveSongs(songs []CachedSong) error {
	return saveSongs(m.db, songs, time.Now())
}

// ListSongs returns the cached catalog in saved order.
func (m *Manager) ListSongs() ([]CachedSong, error) {
	return listSongs(m.db)
}

func saveSongs(sqlDB *sql.DB, songs []CachedSong, now time.Time) error {
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM songs`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO songs (id, position, title, audio_url, stream_url, image_url,
			                   duration_ms, style, prompt, task_id, suno_id, created_at, cached_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, s := range songs {
			var createdAt int64
			if !s.CreatedAt.IsZero() {
				createdAt = s.CreatedAt.Unix()
			}
			_, err = stmt.Exec(s.ID, i, s.Title, s.AudioURL,
				dbutil.NullString(s.StreamURL),
				dbutil.NullString(s.ImageURL),
				dbutil.NullInt64(s.Duration.Milliseconds()),
				dbutil.NullString(s.Style),
				dbutil.NullString(s.Prompt),
				dbutil.NullString(s.TaskID),
				dbutil.NullString(s.SunoID),
				dbutil.NullInt64(createdAt),
				now.Unix(),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func listSongs(db *sql.DB) ([]CachedSong, error) {
	rows, err := db.Query(`
		SELECT id, title, audio_url, stream_url, image_url, duration_ms,
		       style, prompt, task_id, suno_id, created_at
		FROM songs
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []CachedSong
	for rows.Next() {
		var s CachedSong
		var streamURL, imageURL, style, prompt, taskID, sunoID sql.NullString
		var durationMS, createdAt sql.NullInt64

		err := rows.Scan(&s.ID, &s.Title, &s.AudioURL, &streamURL, &imageURL,
			&durationMS, &style, &prompt, &taskID, &sunoID, &createdAt)
		if err != nil {
			return nil, err
		}

		s.StreamURL = dbutil.NullStringValue(streamURL)
		s.ImageURL = dbutil.NullStringValue(imageURL)
		s.Duration = time.Duration(dbutil.NullInt64Value(durationMS)) * time.Millisecond
		s.Style = dbutil.NullStringValue(style)
		s.Prompt = dbutil.NullStringValue(prompt)
		s.TaskID = dbutil.NullStringValue(taskID)
		s.SunoID = dbutil.NullStringValue(sunoID)
		if createdAt.Valid {
			s.CreatedAt = time.Unix(createdAt.Int64, 0)
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}
