package projections

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/metadata"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/application/fanout"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// LikedVideosStore defines the store interface needed by the liked videos projection.
type LikedVideosStore interface {
	ListIDsByOwner(ctx context.Context, owner string) ([]string, error)
}

// GetLikedVideosQuery carries input for the liked videos projection.
type GetLikedVideosQuery struct {
	Owner string
}

// GetLikedVideosDeps holds dependencies for the liked videos projection.
type GetLikedVideosDeps struct {
	LikedStore LikedVideosStore
	Fetcher    metadata.Fetcher
}

// QueryGetLikedVideos returns the owner's liked videos enriched with live
// upstream metadata, most recently liked first. Fetches run concurrently,
// one per liked id, and the read is all-or-nothing: a single fetch failure
// fails the whole projection with video.ErrEnrichmentFailed.
// POST: result order matches the store's liked-at-descending order
func QueryGetLikedVideos(ctx context.Context, query GetLikedVideosQuery, deps GetLikedVideosDeps) ([]video.EnrichedVideo, error) {
	ids, err := deps.LikedStore.ListIDsByOwner(ctx, query.Owner)
	if err != nil {
		return nil, err
	}

	enriched, err := fanout.JoinAll(ctx, len(ids), func(ctx context.Context, i int) (video.EnrichedVideo, error) {
		md, err := deps.Fetcher.FetchMetadata(ctx, ids[i])
		if err != nil {
			return video.EnrichedVideo{}, fmt.Errorf("%w: %s", video.ErrEnrichmentFailed, err)
		}
		return video.Enrich(ids[i], md), nil
	})
	if err != nil {
		slog.Warn("library_event", "event", "enrichment_failed", "owner", query.Owner, "liked", len(ids), "error", err)
		return nil, err
	}
	return enriched, nil
}
