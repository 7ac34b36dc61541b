package orchestrators

import (
	"context"
	"log/slog"
)

// LikedStoreForUnlike defines the store interface needed by UnlikeVideo.
type LikedStoreForUnlike interface {
	DeleteByOwnerAndVideo(ctx context.Context, owner, videoID string) error
}

// UnlikeVideoInput carries input for the orchestrator.
type UnlikeVideoInput struct {
	Owner   string
	VideoID string
}

// UnlikeVideoDeps holds dependencies for UnlikeVideo.
type UnlikeVideoDeps struct {
	LikedStore LikedStoreForUnlike
}

// ExecuteUnlikeVideo removes the owner's like for the video.
// POST: Like no longer exists; video.ErrNotLiked if it never did
func ExecuteUnlikeVideo(ctx context.Context, input UnlikeVideoInput, deps UnlikeVideoDeps) error {
	if err := deps.LikedStore.DeleteByOwnerAndVideo(ctx, input.Owner, input.VideoID); err != nil {
		return err
	}

	slog.Info("library_event", "event", "video_unliked", "owner", input.Owner, "video_id", input.VideoID)

	return nil
}
