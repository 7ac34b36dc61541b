package video

import (
	"context"
	"fmt"
	"strings"

	storage "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage"
	domain "github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

type sqliteLikedStore struct {
	db storage.SQLDB
}

// NewLikedSQLiteStore returns a LikedStore backed by SQLite.
func NewLikedSQLiteStore(db storage.SQLDB) LikedStore {
	return &sqliteLikedStore{db: db}
}

// Save inserts a like. The UNIQUE(owner_id, video_id) constraint rejects
// duplicates at the database, so two concurrent identical likes cannot both
// succeed.
// POST: row inserted, or ErrAlreadyLiked on a duplicate
func (s *sqliteLikedStore) Save(ctx context.Context, v domain.LikedVideo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO liked_video (id, owner_id, video_id, liked_at)
		VALUES (?,?,?,?)`,
		v.ID,
		v.Owner,
		v.VideoID,
		v.LikedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("liked video save: %w", err)
	}
	return nil
}

// DeleteByOwnerAndVideo removes the unique like for (owner, videoID).
// POST: ErrNotLiked if no such like existed
func (s *sqliteLikedStore) DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM liked_video WHERE owner_id = ? AND video_id = ?`,
		owner, videoID)
	if err != nil {
		return fmt.Errorf("liked video delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("liked video delete: %w", err)
	}
	if n == 0 {
		return domain.ErrNotLiked
	}
	return nil
}

// ListIDsByOwner returns the owner's liked video ids sorted by liked_at
// descending.
func (s *sqliteLikedStore) ListIDsByOwner(ctx context.Context, owner string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT video_id FROM liked_video WHERE owner_id = ?
		ORDER BY liked_at DESC`, owner)
	if err != nil {
		return nil, fmt.Errorf("liked video list: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("liked video scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("liked video list: %w", err)
	}
	return ids, nil
}

// isUniqueViolation reports whether err is a SQLite unique-constraint error.
// modernc.org/sqlite surfaces these as "UNIQUE constraint failed: ..." text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
