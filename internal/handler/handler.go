package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/actuallystonmai/movie-details/internal/details"
	"github.com/actuallystonmai/movie-details/internal/metrics"
)

type Handler struct {
	fetcher details.Fetcher
	images  details.Images
	metrics *metrics.Recorder
	tpl     *template.Template
}

func NewHandler(fetcher details.Fetcher, images details.Images, rec *metrics.Recorder) *Handler {
	return &Handler{
		fetcher: fetcher,
		images:  images,
		metrics: rec,
		tpl:     template.Must(template.New("pages").Parse(pageTemplates)),
	}
}

// render executes a named template into a buffer first so a template failure
// still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
