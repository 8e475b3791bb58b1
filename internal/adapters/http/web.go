package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"

	"zuzz/internal/adapters/email"
	"zuzz/internal/adapters/http/middleware"
	accessRequestStore "zuzz/internal/adapters/storage/accessrequest"
	"zuzz/internal/config"
	"zuzz/internal/content"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccessRequestStore accessRequestStore.Store
}

// loadCSRFKey decodes the CSRF secret (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is
// generated per startup.
func loadCSRFKey(keyHex string, production bool) []byte {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("ZUZZ_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if production {
		log.Fatal("ZUZZ_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (form tokens won't survive restart). Set ZUZZ_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global site configuration (set by NewMux)
var siteConfig config.Config

// Global blog library (set by NewMux)
var blog *content.Library

// Global email sender instance (set by NewMux)
var emailSender email.Sender

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Config, s *Stores, lib *content.Library, sender email.Sender) http.Handler {
	stores = s
	siteConfig = cfg
	blog = lib
	emailSender = sender

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey(cfg.CSRFKeyHex, cfg.IsProduction())

	// Apply middleware: Timing -> CountryCookie -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, cfg.IsProduction()),
		middleware.CountryCookie(cfg.CountryHeader),
		middleware.Timing(),
	)
}
