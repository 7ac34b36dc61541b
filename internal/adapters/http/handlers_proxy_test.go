package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/perf"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/metadata"
)

func TestHandleTrending_RelaysUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		if r.URL.Query().Get("region") != "NZ" {
			t.Errorf("region query not forwarded: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Trending One"}]`))
	}))
	defer srv.Close()
	upstream = metadata.NewClient(srv.URL)

	req := authRequest("GET", "/trending?region=NZ", "", viewerSession)
	rec := httptest.NewRecorder()
	handleTrending(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type not relayed: %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "Trending One") {
		t.Errorf("upstream body not relayed: %s", rec.Body.String())
	}
}

// TestProxyRoutes_RequireSession drives an unauthenticated request through the
// full mux and middleware chain and checks the upstream is never contacted.
func TestProxyRoutes_RequireSession(t *testing.T) {
	var upstreamHits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits.Add(1)
	}))
	defer srv.Close()

	RateLimitPerSecond = 1000
	handler := NewMux(newTestStores(), metadata.NewClient(srv.URL), perf.NewCollector(64))

	for _, url := range []string{"/trending", "/search?q=go", "/streams/vid-a", "/comments/vid-a"} {
		req := httptest.NewRequest("GET", url, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: got %d, want %d", url, rec.Code, http.StatusUnauthorized)
		}
	}
	if n := upstreamHits.Load(); n != 0 {
		t.Errorf("upstream contacted %d times by unauthenticated requests", n)
	}
}

func TestHandleSearch_RequiresQuery(t *testing.T) {
	req := authRequest("GET", "/search", "", viewerSession)
	rec := httptest.NewRecorder()
	handleSearch(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSearch_ForwardsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "go tutorials" {
			t.Errorf("q not forwarded: %q", got)
		}
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()
	upstream = metadata.NewClient(srv.URL)

	req := authRequest("GET", "/search?q=go+tutorials", "", viewerSession)
	rec := httptest.NewRecorder()
	handleSearch(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleStreams_RelaysUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/streams/vid-missing" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()
	upstream = metadata.NewClient(srv.URL)

	req := authRequest("GET", "/streams/vid-missing", "", viewerSession)
	req.SetPathValue("videoId", "vid-missing")
	rec := httptest.NewRecorder()
	handleStreams(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("upstream status not relayed: got %d", rec.Code)
	}
}

func TestHandleComments_UpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening
	upstream = metadata.NewClient(srv.URL)

	req := authRequest("GET", "/comments/vid-a", "", viewerSession)
	req.SetPathValue("videoId", "vid-a")
	rec := httptest.NewRecorder()
	handleComments(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadGateway)
	}
}
