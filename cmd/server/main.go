package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "zuzz/internal/adapters/email"
	web "zuzz/internal/adapters/http"
	"zuzz/internal/adapters/storage"
	accessRequestStore "zuzz/internal/adapters/storage/accessrequest"
	"zuzz/internal/config"
	"zuzz/internal/content"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize database with WAL mode, foreign keys, and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
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

	// Wrap DB with slow-query instrumentation
	timedDB := storage.NewTimedDB(db)

	stores := &web.Stores{
		AccessRequestStore: accessRequestStore.NewSQLiteStore(timedDB),
	}

	// Load blog articles from disk
	library, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatalf("failed to load blog content: %v", err)
	}
	log.Printf("Loaded %d blog articles", len(library.All()))

	// Configure email sender
	var sender emailPkg.Sender
	if cfg.ResendAPIKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if cfg.IsProduction() {
			log.Println("WARNING: ZUZZ_RESEND_API_KEY is not set — sales notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set ZUZZ_RESEND_API_KEY for real delivery)")
		}
	}

	mux := web.NewMux(cfg, stores, library, sender)

	log.Printf("Zuzz %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
