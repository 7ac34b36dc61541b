package metadata

import (
	"context"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// Fetcher retrieves current descriptive data for a single video id from the
// upstream metadata service. Each call is one attempt: no retry, no cache.
// A failure for one id says nothing about other ids.
type Fetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (video.Metadata, error)
}
