package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gorilla/csrf"

	"zuzz/internal/adapters/http/middleware"
	"zuzz/internal/i18n"
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// langFromRequest picks the display language from the country cookie set
// by the geolocation middleware. Missing or unknown countries fall back to
// English.
func langFromRequest(r *http.Request) i18n.Lang {
	c, err := r.Cookie(middleware.CountryCookieName)
	if err != nil {
		return i18n.LangEN
	}
	return i18n.FromCountry(c.Value)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, lang i18n.Lang, data map[string]any) {
	funcMap := template.FuncMap{
		"csrfToken":     func() string { return csrf.Token(r) },
		"csrfField":     func() template.HTML { return csrf.TemplateField(r) },
		"schedulingURL": func() string { return siteConfig.SchedulingURL },
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Dict"] = i18n.Get(lang)
	data["Lang"] = string(lang)

	layoutPath := filepath.Join(siteConfig.TemplatesDir, "layout.html")
	pagePath := filepath.Join(siteConfig.TemplatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("template_execute_failed", "template", templateName, "error", err.Error())
	}
}

// handleHome renders the landing page in the visitor's language.
func handleHome(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)
	renderTemplate(w, r, "home.html", lang, map[string]any{
		"Articles": blog.ByLang(string(lang)),
	})
}

// handleBrasil renders the Brazilian landing page, always in Portuguese.
func handleBrasil(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "home.html", i18n.LangPT, map[string]any{
		"Articles": blog.ByLang(string(i18n.LangPT)),
	})
}

// handleBlogIndex lists articles for the visitor's language.
func handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	lang := langFromRequest(r)
	articles := blog.ByLang(string(lang))
	if len(articles) == 0 {
		// Thin locales fall back to the full list rather than an empty page.
		articles = blog.All()
	}
	renderTemplate(w, r, "blog_index.html", lang, map[string]any{
		"Articles": articles,
	})
}

// handleBlogArticle renders one article by slug.
func handleBlogArticle(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	article, ok := blog.Get(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := map[string]any{"Article": article}
	if article.NextSlug != "" {
		if next, ok := blog.Get(article.NextSlug); ok {
			data["Next"] = next
		}
	}
	renderTemplate(w, r, "blog_article.html", i18n.Normalize(article.Lang), data)
}

// handleThanks renders the confirmation page. The page meta-refreshes to
// the external scheduling destination after the configured delay.
func handleThanks(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "thanks.html", langFromRequest(r), map[string]any{
		"RedirectSeconds": int(siteConfig.SchedulingRedirectDelay.Seconds()),
		"SchedulingURL":   siteConfig.SchedulingURL,
	})
}
