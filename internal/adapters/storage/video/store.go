package video

import (
	"context"

	domain "github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// SavedStore persists SavedVideo state. Save never deduplicates: the same
// (owner, video) pair may be inserted any number of times.
type SavedStore interface {
	Save(ctx context.Context, v domain.SavedVideo) error
	// DeleteByOwnerAndVideo removes every row matching (owner, videoID) and
	// returns the number removed. Returns domain.ErrNotSaved when none matched.
	DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) (int64, error)
	// ListByOwner returns the owner's saved videos, most recently saved first.
	ListByOwner(ctx context.Context, owner string) ([]domain.SavedVideo, error)
}

// LikedStore persists LikedVideo state. (owner, video) is unique; the
// constraint lives in the database so concurrent duplicate likes cannot race
// past an application-level check.
type LikedStore interface {
	// Save inserts a like. Returns domain.ErrAlreadyLiked if the owner
	// already likes this video.
	Save(ctx context.Context, v domain.LikedVideo) error
	// DeleteByOwnerAndVideo removes the unique matching row. Returns
	// domain.ErrNotLiked when it does not exist.
	DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) error
	// ListIDsByOwner returns the owner's liked video ids, most recently
	// liked first.
	ListIDsByOwner(ctx context.Context, owner string) ([]string, error)
}
