package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/email"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/middleware"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/perf"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/metadata"
	accountStore "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage/account"
	videoStore "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage/video"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore    accountStore.Store
	SavedVideoStore videoStore.SavedStore
	LikedVideoStore videoStore.LikedStore
}

// loadCSRFKey reads the CSRF secret from YTCLONE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("YTCLONE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("YTCLONE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("YTCLONE_ENV") == "production" {
		log.Fatal("YTCLONE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set YTCLONE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global upstream metadata client (set by NewMux)
var upstream *metadata.Client

// Global metadata fetcher used by the liked-videos read. Defaults to the
// upstream client; tests can swap in a fake.
var metadataFetcher metadata.Fetcher

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from string) {
	emailSender = sender
	emailFromAddress = from
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores, client *metadata.Client, collector *perf.Collector) http.Handler {
	stores = s
	upstream = client
	metadataFetcher = client
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("YTCLONE_ENV") == "production"

	mux := http.NewServeMux()
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
