package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries all runtime settings, loaded from ZUZZ_* environment
// variables. Defaults suit local development; production overrides the
// addresses, keys and the Resend credentials.
type Config struct {
	Addr   string `env:"ZUZZ_ADDR" envDefault:":8080"`
	Env    string `env:"ZUZZ_ENV" envDefault:"development"`
	DBPath string `env:"ZUZZ_DB_PATH" envDefault:"zuzz.db"`

	StaticDir    string `env:"ZUZZ_STATIC_DIR" envDefault:"internal/adapters/http/static"`
	TemplatesDir string `env:"ZUZZ_TEMPLATES_DIR" envDefault:"internal/adapters/http/templates"`
	ContentDir   string `env:"ZUZZ_CONTENT_DIR" envDefault:"content/blog"`

	// CSRFKeyHex is the 64-hex-char (32 byte) gorilla/csrf auth key.
	// Required in production; a random per-start key is used otherwise.
	CSRFKeyHex string `env:"ZUZZ_CSRF_KEY"`

	// SchedulingURL is the external destination visitors are sent to after
	// a successful submission. The delay is a UX knob, not an invariant.
	SchedulingURL           string        `env:"ZUZZ_SCHEDULING_URL" envDefault:"https://calendly.com/getcxlus/free-consultation-to-implement-zuzz"`
	SchedulingRedirectDelay time.Duration `env:"ZUZZ_SCHEDULING_REDIRECT_DELAY" envDefault:"300ms"`

	// CountryHeader is the proxy-supplied geolocation header consulted by
	// the country-cookie middleware.
	CountryHeader string `env:"ZUZZ_COUNTRY_HEADER" envDefault:"X-Vercel-IP-Country"`

	// Resend credentials for the sales notification email. When the API
	// key is empty the server falls back to a log-only sender.
	ResendAPIKey string `env:"ZUZZ_RESEND_API_KEY"`
	EmailFrom    string `env:"ZUZZ_EMAIL_FROM" envDefault:"Zuzz <noreply@zuzz.ai>"`
	SalesEmail   string `env:"ZUZZ_SALES_EMAIL" envDefault:"sales@zuzz.ai"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
