package web

import "net/http"

// registerRoutes wires every page and API route onto the mux.
func registerRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("GET /brasil", handleBrasil)
	mux.HandleFunc("GET /blog", handleBlogIndex)
	mux.HandleFunc("GET /blog/{slug}", handleBlogArticle)

	// Lead capture: no-JS form page and its POST target
	mux.HandleFunc("GET /request", handleRequestFormPage)
	mux.HandleFunc("POST /request", handleRequestFormSubmit)
	mux.HandleFunc("GET /thanks", handleThanks)

	// Open intake API used by the lead modal
	mux.HandleFunc("POST /api/access-request", handleAccessRequestAPI)
}
