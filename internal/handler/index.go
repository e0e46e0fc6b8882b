package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// GET /
func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	// the lookup form submits back here
	if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
		http.Redirect(w, r, "/movie/"+url.PathEscape(id), http.StatusFound)
		return
	}
	h.render(w, r, http.StatusOK, "index", nil)
}
