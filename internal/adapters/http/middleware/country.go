package middleware

import (
	"net/http"
	"strings"
)

// CountryCookieName is the cookie page handlers read to pick a display
// language before any client code runs.
const CountryCookieName = "country"

// countryCookieMaxAge is 7 days in seconds.
const countryCookieMaxAge = 60 * 60 * 24 * 7

// CountryCookie returns middleware that records the visitor's country from
// the proxy-supplied geolocation header. The cookie is only set when no
// prior value exists, so a visitor's first-seen country sticks for its
// 7-day lifetime. Static assets and the API are skipped.
func CountryCookie(headerName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}

			country := r.Header.Get(headerName)
			if _, err := r.Cookie(CountryCookieName); err != nil && country != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     CountryCookieName,
					Value:    country,
					Path:     "/",
					MaxAge:   countryCookieMaxAge,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r)
		})
	}
}
