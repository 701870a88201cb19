package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the certifications page and its fragment routes
// on the provided mux. Static assets are served from the embedded filesystem
// at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Page)

	// Fragments requested by certpanel.js; each falls back to a full-page
	// redirect when submitted without script.
	mux.HandleFunc("GET /app/grid", h.Grid)
	mux.HandleFunc("POST /app/select", h.Select)
	mux.HandleFunc("POST /app/detail/close", h.CloseDetail)
}
