package web

import "net/http"

// registerRoutes attaches all application routes to the mux.
// Method matching is delegated to ServeMux method patterns; a wrong method
// on a known path yields 405 from the mux itself.
func registerRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("POST /register", handleRegister)
	mux.HandleFunc("POST /login", handleLogin)
	mux.HandleFunc("POST /logout", handleLogout)
	mux.HandleFunc("GET /me", handleMe)

	// Library (session required)
	mux.HandleFunc("POST /save-video", handleSaveVideo)
	mux.HandleFunc("DELETE /unsave-video/{videoId}", handleUnsaveVideo)
	mux.HandleFunc("POST /like-video", handleLikeVideo)
	mux.HandleFunc("DELETE /unlike-video/{videoId}", handleUnlikeVideo)
	mux.HandleFunc("GET /saved-videos", handleGetSavedVideos)
	mux.HandleFunc("GET /liked-videos", handleGetLikedVideos)

	// Upstream passthrough
	mux.HandleFunc("GET /trending", handleTrending)
	mux.HandleFunc("GET /search", handleSearch)
	mux.HandleFunc("GET /streams/{videoId}", handleStreams)
	mux.HandleFunc("GET /comments/{videoId}", handleComments)

	// Operational
	mux.HandleFunc("GET /stats", handleStats)
}
