package web

import (
	"errors"
	"net/http"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/middleware"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/application/orchestrators"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/application/projections"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/domain/video"
)

// requireSession rejects unauthenticated requests before any store access.
// Returns false if the request should not proceed.
func requireSession(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		jsonError(w, "not authenticated", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	return sess, true
}

// handleSaveVideo handles POST /save-video
func handleSaveVideo(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input struct {
		VideoID   string `json:"videoId"`
		Title     string `json:"title"`
		Thumbnail string `json:"thumbnail"`
		Channel   string `json:"channel"`
	}
	if err := strictDecode(r, &input); err != nil {
		jsonError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	v, err := orchestrators.ExecuteSaveVideo(r.Context(), orchestrators.SaveVideoInput{
		Owner:     sess.UserID,
		VideoID:   input.VideoID,
		Title:     input.Title,
		Thumbnail: input.Thumbnail,
		Channel:   input.Channel,
	}, orchestrators.SaveVideoDeps{SavedStore: stores.SavedVideoStore})
	if err != nil {
		switch {
		case errors.Is(err, video.ErrMissingVideoID),
			errors.Is(err, video.ErrMissingTitle),
			errors.Is(err, video.ErrMissingThumbnail),
			errors.Is(err, video.ErrMissingChannel):
			jsonError(w, err.Error(), http.StatusBadRequest)
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "savedId": v.ID})
}

// handleUnsaveVideo handles DELETE /unsave-video/{videoId}
// Removes every saved copy of the video for the current user.
func handleUnsaveVideo(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	videoID := r.PathValue("videoId")
	if videoID == "" {
		jsonError(w, video.ErrMissingVideoID.Error(), http.StatusBadRequest)
		return
	}

	_, err := orchestrators.ExecuteUnsaveVideo(r.Context(), orchestrators.UnsaveVideoInput{
		Owner:   sess.UserID,
		VideoID: videoID,
	}, orchestrators.UnsaveVideoDeps{SavedStore: stores.SavedVideoStore})
	if err != nil {
		if errors.Is(err, video.ErrNotSaved) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleLikeVideo handles POST /like-video
func handleLikeVideo(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input struct {
		VideoID string `json:"videoId"`
	}
	if err := strictDecode(r, &input); err != nil {
		jsonError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	v, err := orchestrators.ExecuteLikeVideo(r.Context(), orchestrators.LikeVideoInput{
		Owner:   sess.UserID,
		VideoID: input.VideoID,
	}, orchestrators.LikeVideoDeps{LikedStore: stores.LikedVideoStore})
	if err != nil {
		switch {
		case errors.Is(err, video.ErrMissingVideoID), errors.Is(err, video.ErrAlreadyLiked):
			jsonError(w, err.Error(), http.StatusBadRequest)
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "likeId": v.ID})
}

// handleUnlikeVideo handles DELETE /unlike-video/{videoId}
func handleUnlikeVideo(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	videoID := r.PathValue("videoId")
	if videoID == "" {
		jsonError(w, video.ErrMissingVideoID.Error(), http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteUnlikeVideo(r.Context(), orchestrators.UnlikeVideoInput{
		Owner:   sess.UserID,
		VideoID: videoID,
	}, orchestrators.UnlikeVideoDeps{LikedStore: stores.LikedVideoStore})
	if err != nil {
		if errors.Is(err, video.ErrNotLiked) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleGetSavedVideos handles GET /saved-videos
func handleGetSavedVideos(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	videos, err := projections.QueryGetSavedVideos(r.Context(),
		projections.GetSavedVideosQuery{Owner: sess.UserID},
		projections.GetSavedVideosDeps{SavedStore: stores.SavedVideoStore})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// handleGetLikedVideos handles GET /liked-videos
// Each liked id is enriched with live upstream metadata; the whole read
// fails if any single fetch fails.
func handleGetLikedVideos(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	videos, err := projections.QueryGetLikedVideos(r.Context(),
		projections.GetLikedVideosQuery{Owner: sess.UserID},
		projections.GetLikedVideosDeps{LikedStore: stores.LikedVideoStore, Fetcher: metadataFetcher})
	if err != nil {
		if errors.Is(err, video.ErrEnrichmentFailed) {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}
