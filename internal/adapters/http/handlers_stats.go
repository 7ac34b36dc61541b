package web

import "net/http"

// handleStats handles GET /stats
// Serves the perf collector's aggregated request/query timings.
func handleStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireSession(w, r); !ok {
		return
	}

	writeJSON(w, http.StatusOK, perfCollector.Snapshot())
}
