package projections

import (
	"context"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// SavedVideosStore defines the store interface needed by the saved videos projection.
type SavedVideosStore interface {
	ListByOwner(ctx context.Context, owner string) ([]video.SavedVideo, error)
}

// GetSavedVideosQuery carries input for the saved videos projection.
type GetSavedVideosQuery struct {
	Owner string
}

// GetSavedVideosDeps holds dependencies for the saved videos projection.
type GetSavedVideosDeps struct {
	SavedStore SavedVideosStore
}

// QueryGetSavedVideos returns the owner's saved videos, most recently saved
// first, straight from the stored snapshots. No upstream calls are made.
// POST: result is never nil
func QueryGetSavedVideos(ctx context.Context, query GetSavedVideosQuery, deps GetSavedVideosDeps) ([]video.SavedVideo, error) {
	videos, err := deps.SavedStore.ListByOwner(ctx, query.Owner)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []video.SavedVideo{}
	}
	return videos, nil
}
