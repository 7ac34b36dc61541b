package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// proxyUpstream forwards a GET to the upstream API and relays the response
// unchanged: status code, Content-Type and body. A transport failure maps to
// 502 so clients can tell "upstream said no" from "upstream unreachable".
func proxyUpstream(w http.ResponseWriter, r *http.Request, path string, query url.Values) {
	resp, err := upstream.Get(r.Context(), path, query)
	if err != nil {
		slog.Warn("upstream_event", "event", "proxy_failed", "path", path, "error", err)
		jsonError(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// handleTrending handles GET /trending
func handleTrending(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	query := url.Values{}
	if region := r.URL.Query().Get("region"); region != "" {
		query.Set("region", region)
	}
	proxyUpstream(w, r, "/trending", query)
}

// handleSearch handles GET /search?q=<term>
func handleSearch(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		jsonError(w, "q is required", http.StatusBadRequest)
		return
	}
	query := url.Values{}
	query.Set("q", q)
	if filter := r.URL.Query().Get("filter"); filter != "" {
		query.Set("filter", filter)
	}
	proxyUpstream(w, r, "/search", query)
}

// handleStreams handles GET /streams/{videoId}
func handleStreams(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	videoID := r.PathValue("videoId")
	if videoID == "" {
		jsonError(w, "videoId is required", http.StatusBadRequest)
		return
	}
	proxyUpstream(w, r, "/streams/"+url.PathEscape(videoID), nil)
}

// handleComments handles GET /comments/{videoId}
func handleComments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	videoID := r.PathValue("videoId")
	if videoID == "" {
		jsonError(w, "videoId is required", http.StatusBadRequest)
		return
	}
	proxyUpstream(w, r, "/comments/"+url.PathEscape(videoID), nil)
}
