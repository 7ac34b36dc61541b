package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"

	"github.com/google/uuid"
)

// SavedStoreForSave defines the store interface needed by SaveVideo.
type SavedStoreForSave interface {
	Save(ctx context.Context, v video.SavedVideo) error
}

// SaveVideoInput carries the client-supplied snapshot of the video.
type SaveVideoInput struct {
	Owner     string
	VideoID   string
	Title     string
	Thumbnail string
	Channel   string
}

// SaveVideoDeps holds dependencies for SaveVideo.
type SaveVideoDeps struct {
	SavedStore SavedStoreForSave
}

// ExecuteSaveVideo records a video in the owner's saved list.
// POST: A new row exists even if the same video was saved before
// INVARIANT: Saving never deduplicates
func ExecuteSaveVideo(ctx context.Context, input SaveVideoInput, deps SaveVideoDeps) (video.SavedVideo, error) {
	v := video.SavedVideo{
		ID:        uuid.New().String(),
		Owner:     input.Owner,
		VideoID:   input.VideoID,
		Title:     input.Title,
		Thumbnail: input.Thumbnail,
		Channel:   input.Channel,
		SavedAt:   time.Now(),
	}

	if err := v.Validate(); err != nil {
		return video.SavedVideo{}, err
	}

	if err := deps.SavedStore.Save(ctx, v); err != nil {
		return video.SavedVideo{}, err
	}

	slog.Info("library_event", "event", "video_saved", "owner", input.Owner, "video_id", input.VideoID)

	return v, nil
}
