package video

import (
	"context"
	"fmt"
	"time"

	storage "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage"
	domain "github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// timeLayout is RFC 3339 with a fixed-width nanosecond fraction. Timestamps
// are stored as UTC text, so lexicographic ORDER BY matches time order only
// when every value has the same width.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteSavedStore struct {
	db storage.SQLDB
}

// NewSavedSQLiteStore returns a SavedStore backed by SQLite.
func NewSavedSQLiteStore(db storage.SQLDB) SavedStore {
	return &sqliteSavedStore{db: db}
}

// Save inserts a new saved-video row. No uniqueness check: the same
// (owner, video) pair may be inserted repeatedly.
// PRE: v has been validated and v.ID is a fresh identifier
func (s *sqliteSavedStore) Save(ctx context.Context, v domain.SavedVideo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_video (id, owner_id, video_id, title, thumbnail, channel, saved_at)
		VALUES (?,?,?,?,?,?,?)`,
		v.ID,
		v.Owner,
		v.VideoID,
		v.Title,
		v.Thumbnail,
		v.Channel,
		v.SavedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("saved video save: %w", err)
	}
	return nil
}

// DeleteByOwnerAndVideo removes every saved row for (owner, videoID).
// POST: returns the number of rows removed; ErrNotSaved if zero matched
func (s *sqliteSavedStore) DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_video WHERE owner_id = ? AND video_id = ?`,
		owner, videoID)
	if err != nil {
		return 0, fmt.Errorf("saved video delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("saved video delete: %w", err)
	}
	if n == 0 {
		return 0, domain.ErrNotSaved
	}
	return n, nil
}

// ListByOwner returns the owner's saved videos sorted by saved_at descending.
func (s *sqliteSavedStore) ListByOwner(ctx context.Context, owner string) ([]domain.SavedVideo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, video_id, title, thumbnail, channel, saved_at
		FROM saved_video WHERE owner_id = ?
		ORDER BY saved_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("saved video list: %w", err)
	}
	defer rows.Close()

	var list []domain.SavedVideo
	for rows.Next() {
		var v domain.SavedVideo
		var savedAt string
		if err := rows.Scan(&v.ID, &v.Owner, &v.VideoID, &v.Title, &v.Thumbnail, &v.Channel, &savedAt); err != nil {
			return nil, fmt.Errorf("saved video scan: %w", err)
		}
		v.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved video list: %w", err)
	}
	return list, nil
}
