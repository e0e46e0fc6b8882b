package handler

import (
	_ "embed"
	"net/http"
)

//go:embed static/no-movie.png
var placeholderPNG []byte

// GET /no-movie.png
func (h *Handler) GetPlaceholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(placeholderPNG)
}
