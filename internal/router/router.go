package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/actuallystonmai/movie-details/internal/handler"
	"github.com/actuallystonmai/movie-details/internal/metrics"
)

func Setup(h *handler.Handler, log zerolog.Logger, rec *metrics.Recorder, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(log))
	r.Use(requestIDField)
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	// Pages
	r.Get("/", h.GetIndex)
	r.Get("/movie/{movieID}", h.GetMovieDetails)

	// Assets and operations
	r.Get("/no-movie.png", h.GetPlaceholder)
	r.Get("/health", healthCheck)
	r.Method(http.MethodGet, "/metrics", rec.Handler())

	return r
}

// requestIDField tags the request logger with chi's request id.
func requestIDField(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
