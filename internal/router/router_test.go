package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/movie-details/internal/details"
	"github.com/actuallystonmai/movie-details/internal/domain"
	"github.com/actuallystonmai/movie-details/internal/handler"
	"github.com/actuallystonmai/movie-details/internal/metrics"
)

type staticFetcher struct {
	movie *domain.Movie
	keys  []string
}

func (f *staticFetcher) FetchMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	f.keys = append(f.keys, movieID)
	return f.movie, nil
}

func setup(t *testing.T, f details.Fetcher) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	rec := metrics.NewRecorder()
	h := handler.NewHandler(f, details.Images{BaseURL: "https://image.tmdb.org/t/p"}, rec)
	return Setup(h, zerolog.New(&logs), rec, 5*time.Second), &logs
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHealth(t *testing.T) {
	r, _ := setup(t, &staticFetcher{})
	rr := get(r, "/health")

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestMovieRouteForwardsKey(t *testing.T) {
	f := &staticFetcher{movie: &domain.Movie{ID: 603, Title: "The Matrix"}}
	r, _ := setup(t, f)

	rr := get(r, "/movie/603?partial=1")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"603"}, f.keys)
	assert.Contains(t, rr.Body.String(), "The Matrix")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := setup(t, &staticFetcher{})
	assert.Equal(t, http.StatusNotFound, get(r, "/movies").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/movie/1/cast").Code)
}

func TestAccessLogCarriesRequestID(t *testing.T) {
	r, logs := setup(t, &staticFetcher{})
	get(r, "/health")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry), logs.String())
	assert.Equal(t, "/health", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestMetricsEndpointCountsFetches(t *testing.T) {
	f := &staticFetcher{}
	r, _ := setup(t, f)

	get(r, "/movie/1?partial=1")
	rr := get(r, "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), fmt.Sprintf(`moviedetails_tmdb_fetch_total{outcome=%q} 1`, metrics.OutcomeNotFound))
}
