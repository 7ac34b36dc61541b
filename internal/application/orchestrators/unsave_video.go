package orchestrators

import (
	"context"
	"log/slog"
)

// SavedStoreForUnsave defines the store interface needed by UnsaveVideo.
type SavedStoreForUnsave interface {
	DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) (int64, error)
}

// UnsaveVideoInput carries input for the orchestrator.
type UnsaveVideoInput struct {
	Owner   string
	VideoID string
}

// UnsaveVideoDeps holds dependencies for UnsaveVideo.
type UnsaveVideoDeps struct {
	SavedStore SavedStoreForUnsave
}

// ExecuteUnsaveVideo removes every saved copy of the video for the owner.
// POST: Returns the number of rows removed; video.ErrNotSaved when zero
func ExecuteUnsaveVideo(ctx context.Context, input UnsaveVideoInput, deps UnsaveVideoDeps) (int64, error) {
	removed, err := deps.SavedStore.DeleteByOwnerAndVideo(ctx, input.Owner, input.VideoID)
	if err != nil {
		return 0, err
	}

	slog.Info("library_event", "event", "video_unsaved", "owner", input.Owner, "video_id", input.VideoID, "removed", removed)

	return removed, nil
}
