package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/email"
	web "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/http/perf"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/metadata"
	"github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage"
	accountStore "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage/account"
	videoStore "github.com/ZetaGo-Aurum/YouTube-Clone/internal/adapters/storage/video"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("YTCLONE_DB", "ytclone.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Create store instances (using timed DB for query instrumentation)
	stores := &web.Stores{
		AccountStore:    accountStore.NewSQLiteStore(timedDB),
		SavedVideoStore: videoStore.NewSavedSQLiteStore(timedDB),
		LikedVideoStore: videoStore.NewLikedSQLiteStore(timedDB),
	}

	// Upstream video metadata API (Piped-compatible)
	upstreamURL := envOrDefault("YTCLONE_UPSTREAM_URL", "https://pipedapi.kavin.rocks")
	client := metadata.NewClient(upstreamURL)

	// Configure email sender
	resendKey := os.Getenv("YTCLONE_RESEND_KEY")
	emailFrom := envOrDefault("YTCLONE_RESEND_FROM", "YouTube Clone <noreply@ytclone.example>")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom)
		if os.Getenv("YTCLONE_ENV") == "production" {
			log.Println("WARNING: YTCLONE_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set YTCLONE_RESEND_KEY for real delivery)")
		}
	}

	// Create HTTP handler with middleware (pass collector for timing)
	mux := web.NewMux(stores, client, collector)

	// Start server
	addr := envOrDefault("YTCLONE_ADDR", ":8080")
	log.Printf("YouTube Clone %s starting on %s (env=%s, upstream=%s)", version, addr, envOrDefault("YTCLONE_ENV", "development"), upstreamURL)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
