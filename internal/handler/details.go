package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/actuallystonmai/movie-details/internal/details"
)

const partialParam = "partial"

type shellData struct {
	MovieID    string
	ContentURL string
	// rendered into a <template> the page clones when the partial request
	// itself fails
	FetchError errorData
}

type errorData struct {
	Message string
}

// GET /movie/{movieID}
//
// Without ?partial=1 this renders the page in its loading state; the page
// then requests the partial, which mounts a fresh Page, loads the record and
// renders whichever view it resolved to.
func (h *Handler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	movieID := lookupKey(r)

	if r.URL.Query().Get(partialParam) == "" {
		h.render(w, r, http.StatusOK, "details", shellData{
			MovieID:    movieID,
			ContentURL: "/movie/" + url.PathEscape(movieID) + "?" + partialParam + "=1",
		})
		return
	}

	page := details.NewPage(h.fetcher, *hlog.FromRequest(r), h.metrics)
	// a single Load on a fresh Page is never superseded
	view, _ := page.Load(r.Context(), movieID)

	switch {
	case view.State == details.StateError:
		h.render(w, r, http.StatusBadGateway, "error", errorData{Message: view.ErrorMessage()})
	case view.NotFound():
		h.render(w, r, http.StatusNotFound, "notfound", nil)
	default:
		h.render(w, r, http.StatusOK, "movie", details.NewMovieView(view.Movie, h.images))
	}
}

// lookupKey returns the decoded movieID segment. chi matches against the raw
// path when the request has one, so its params are still escaped then.
func lookupKey(r *http.Request) string {
	key := chi.URLParam(r, "movieID")
	if r.URL.RawPath == "" {
		return key
	}
	if decoded, err := url.PathUnescape(key); err == nil {
		return decoded
	}
	return key
}
