package details

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/movie-details/internal/domain"
	"github.com/actuallystonmai/movie-details/internal/metrics"
	"github.com/actuallystonmai/movie-details/internal/tmdb"
)

type State int

const (
	StateLoading State = iota
	StateError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

// ErrStale is returned by Load when a newer Load replaced it before its fetch
// completed. The stale result is discarded.
var ErrStale = errors.New("details: load superseded by a newer lookup key")

// Fetcher retrieves one movie record. A nil movie with a nil error means the
// response parsed but carried no record.
type Fetcher interface {
	FetchMovie(ctx context.Context, movieID string) (*domain.Movie, error)
}

// View is a snapshot of a page's view state.
type View struct {
	Key   string
	State State
	Movie *domain.Movie
	Err   error
}

// NotFound reports a successful load that produced no record.
func (v View) NotFound() bool {
	return v.State == StateSuccess && v.Movie == nil
}

func (v View) ErrorMessage() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

// Page holds the view state of one details page instance. Each Load cancels
// the previous in-flight fetch and bumps a generation counter; a fetch that
// completes under an older generation never touches the view.
type Page struct {
	fetcher Fetcher
	log     zerolog.Logger
	metrics *metrics.Recorder

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	view   View
}

func NewPage(fetcher Fetcher, log zerolog.Logger, rec *metrics.Recorder) *Page {
	return &Page{
		fetcher: fetcher,
		log:     log,
		metrics: rec,
		view:    View{State: StateLoading},
	}
}

// View returns the current view state.
func (p *Page) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// Load enters the loading state for key, fetches once and resolves to error or
// success. It returns ErrStale if a later Load took over meanwhile.
func (p *Page) Load(ctx context.Context, key string) (View, error) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.gen++
	gen := p.gen
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.view = View{Key: key, State: StateLoading}
	p.mu.Unlock()
	defer cancel()

	start := time.Now()
	movie, err := p.fetcher.FetchMovie(ctx, key)
	elapsed := time.Since(start)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || p.view.Key != key {
		p.metrics.ObserveFetch(metrics.OutcomeStale, elapsed)
		p.log.Debug().Str("movie_id", key).Msg("discarding stale movie details result")
		return p.view, ErrStale
	}
	p.cancel = nil

	if err != nil {
		p.log.Error().Err(err).Str("movie_id", key).Msg("error fetching movie details")
		p.metrics.ObserveFetch(outcomeOf(err), elapsed)
		p.view = View{Key: key, State: StateError, Err: err}
		return p.view, nil
	}

	if movie.Empty() {
		movie = nil
		p.metrics.ObserveFetch(metrics.OutcomeNotFound, elapsed)
	} else {
		p.metrics.ObserveFetch(metrics.OutcomeSuccess, elapsed)
	}
	p.view = View{Key: key, State: StateSuccess, Movie: movie}
	return p.view, nil
}

func outcomeOf(err error) string {
	kind, ok := tmdb.KindOf(err)
	if !ok {
		return metrics.OutcomeTransport
	}
	switch kind {
	case tmdb.KindStatus:
		return metrics.OutcomeStatus
	case tmdb.KindDecode:
		return metrics.OutcomeDecode
	default:
		return metrics.OutcomeTransport
	}
}
