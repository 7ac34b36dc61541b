package video

import (
	"errors"
	"time"
)

// Domain errors shared by the stores, orchestrators and projections.
var (
	ErrMissingVideoID   = errors.New("videoId is required")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingThumbnail = errors.New("thumbnail is required")
	ErrMissingChannel   = errors.New("channel is required")
	ErrAlreadyLiked     = errors.New("video already liked")
	ErrNotLiked         = errors.New("liked video not found")
	ErrNotSaved         = errors.New("saved video not found")
	ErrEnrichmentFailed = errors.New("failed to load liked video metadata")
)

// SavedVideo is a video reference a user stored for later, with the
// descriptive fields captured at save time. A user may save the same
// video any number of times; (Owner, VideoID) is deliberately not unique.
type SavedVideo struct {
	ID        string    `json:"id"`
	Owner     string    `json:"-"`
	VideoID   string    `json:"videoId"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Channel   string    `json:"channel"`
	SavedAt   time.Time `json:"savedAt"`
}

// Validate checks that all required fields are present.
// POST: returns the first missing-field error, nil if complete
func (v *SavedVideo) Validate() error {
	if v.VideoID == "" {
		return ErrMissingVideoID
	}
	if v.Title == "" {
		return ErrMissingTitle
	}
	if v.Thumbnail == "" {
		return ErrMissingThumbnail
	}
	if v.Channel == "" {
		return ErrMissingChannel
	}
	return nil
}

// LikedVideo records that a user liked a video. (Owner, VideoID) is unique:
// liking the same video twice is an error, not a no-op.
type LikedVideo struct {
	ID      string    `json:"id"`
	Owner   string    `json:"-"`
	VideoID string    `json:"videoId"`
	LikedAt time.Time `json:"likedAt"`
}

// Validate checks that the video id is present.
func (v *LikedVideo) Validate() error {
	if v.VideoID == "" {
		return ErrMissingVideoID
	}
	return nil
}

// Metadata is the descriptive data the upstream service holds for a video.
// It is owned by the upstream and observed at fetch time only.
type Metadata struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Uploader     string `json:"uploader"`
	Duration     int64  `json:"duration"`
}

// EnrichedVideo joins a liked video id with live upstream metadata.
// It is recomputed on every read and never persisted.
type EnrichedVideo struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Channel   string `json:"channel"`
	Duration  int64  `json:"duration"`
}

// Enrich maps upstream metadata onto a liked video id:
// thumbnailUrl becomes thumbnail, uploader becomes channel.
func Enrich(videoID string, md Metadata) EnrichedVideo {
	return EnrichedVideo{
		VideoID:   videoID,
		Title:     md.Title,
		Thumbnail: md.ThumbnailURL,
		Channel:   md.Uploader,
		Duration:  md.Duration,
	}
}
