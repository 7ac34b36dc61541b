package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"

	"github.com/google/uuid"
)

// LikedStoreForLike defines the store interface needed by LikeVideo.
type LikedStoreForLike interface {
	Save(ctx context.Context, v video.LikedVideo) error
}

// LikeVideoInput carries input for the orchestrator.
type LikeVideoInput struct {
	Owner   string
	VideoID string
}

// LikeVideoDeps holds dependencies for LikeVideo.
type LikeVideoDeps struct {
	LikedStore LikedStoreForLike
}

// ExecuteLikeVideo records a like for the owner.
// POST: Like exists; video.ErrAlreadyLiked if it already did
// INVARIANT: (owner, video) holds at most one like
func ExecuteLikeVideo(ctx context.Context, input LikeVideoInput, deps LikeVideoDeps) (video.LikedVideo, error) {
	v := video.LikedVideo{
		ID:      uuid.New().String(),
		Owner:   input.Owner,
		VideoID: input.VideoID,
		LikedAt: time.Now(),
	}

	if err := v.Validate(); err != nil {
		return video.LikedVideo{}, err
	}

	if err := deps.LikedStore.Save(ctx, v); err != nil {
		return video.LikedVideo{}, err
	}

	slog.Info("library_event", "event", "video_liked", "owner", input.Owner, "video_id", input.VideoID)

	return v, nil
}
