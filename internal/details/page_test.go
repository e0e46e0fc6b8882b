package details

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/movie-details/internal/domain"
	"github.com/actuallystonmai/movie-details/internal/metrics"
	"github.com/actuallystonmai/movie-details/internal/tmdb"
)

type fetchFunc func(ctx context.Context, movieID string) (*domain.Movie, error)

func (f fetchFunc) FetchMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	return f(ctx, movieID)
}

func newTestPage(f fetchFunc) *Page {
	return NewPage(f, zerolog.Nop(), metrics.NewRecorder())
}

func TestPageInitialStateIsLoading(t *testing.T) {
	p := newTestPage(nil)
	v := p.View()
	assert.Equal(t, StateLoading, v.State)
	assert.Equal(t, "loading", v.State.String())
	assert.Nil(t, v.Movie)
}

func TestLoadIssuesExactlyOneFetch(t *testing.T) {
	var mu sync.Mutex
	var keys []string
	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		mu.Lock()
		keys = append(keys, id)
		mu.Unlock()
		return &domain.Movie{ID: 603, Title: "The Matrix"}, nil
	})

	v, err := p.Load(context.Background(), "603")
	require.NoError(t, err)

	assert.Equal(t, []string{"603"}, keys)
	assert.Equal(t, StateSuccess, v.State)
	assert.Equal(t, "603", v.Key)
	require.NotNil(t, v.Movie)
	assert.Equal(t, "The Matrix", v.Movie.Title)
	assert.False(t, v.NotFound())
	assert.Equal(t, v, p.View())
}

func TestLoadStatusErrorUsesFixedMessage(t *testing.T) {
	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		return nil, &tmdb.FetchError{Kind: tmdb.KindStatus, StatusCode: 500, Err: errors.New("boom")}
	})

	v, err := p.Load(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "Failed to fetch movie details", v.ErrorMessage())
}

func TestLoadTransportErrorKeepsMessage(t *testing.T) {
	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		return nil, &tmdb.FetchError{Kind: tmdb.KindTransport, Err: errors.New("network is unreachable")}
	})

	v, err := p.Load(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "network is unreachable", v.ErrorMessage())
	assert.Nil(t, v.Movie)
}

func TestLoadEmptyRecordIsNotFound(t *testing.T) {
	for name, m := range map[string]*domain.Movie{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
				return m, nil
			})
			v, err := p.Load(context.Background(), "42")
			require.NoError(t, err)
			assert.Equal(t, StateSuccess, v.State)
			assert.True(t, v.NotFound())
			assert.Empty(t, v.ErrorMessage())
		})
	}
}

func TestReloadRefetches(t *testing.T) {
	calls := 0
	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		calls++
		return &domain.Movie{ID: 1, Title: "x"}, nil
	})

	_, err := p.Load(context.Background(), "1")
	require.NoError(t, err)
	_, err = p.Load(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var firstCtxErr error

	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		if id == "old" {
			close(started)
			<-release
			firstCtxErr = ctx.Err()
			return &domain.Movie{ID: 1, Title: "Old"}, nil
		}
		return &domain.Movie{ID: 2, Title: "New"}, nil
	})

	type result struct {
		v   View
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := p.Load(context.Background(), "old")
		done <- result{v, err}
	}()
	<-started

	v, err := p.Load(context.Background(), "new")
	require.NoError(t, err)
	assert.Equal(t, "New", v.Movie.Title)

	close(release)
	stale := <-done
	require.ErrorIs(t, stale.err, ErrStale)
	assert.ErrorIs(t, firstCtxErr, context.Canceled, "older fetch should be cancelled")

	cur := p.View()
	assert.Equal(t, "new", cur.Key)
	assert.Equal(t, StateSuccess, cur.State)
	assert.Equal(t, "New", cur.Movie.Title)
}

func TestStaleErrorDoesNotOverwriteSuccess(t *testing.T) {
	started := make(chan struct{})
	p := newTestPage(func(ctx context.Context, id string) (*domain.Movie, error) {
		if id == "slow" {
			close(started)
			<-ctx.Done()
			return nil, &tmdb.FetchError{Kind: tmdb.KindTransport, Err: ctx.Err()}
		}
		return &domain.Movie{ID: 9, Title: "Fast"}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := p.Load(context.Background(), "slow")
		done <- err
	}()
	<-started

	_, err := p.Load(context.Background(), "fast")
	require.NoError(t, err)
	require.ErrorIs(t, <-done, ErrStale)
	assert.Equal(t, StateSuccess, p.View().State)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, metrics.OutcomeStatus, outcomeOf(&tmdb.FetchError{Kind: tmdb.KindStatus}))
	assert.Equal(t, metrics.OutcomeDecode, outcomeOf(&tmdb.FetchError{Kind: tmdb.KindDecode}))
	assert.Equal(t, metrics.OutcomeTransport, outcomeOf(&tmdb.FetchError{Kind: tmdb.KindTransport}))
	assert.Equal(t, metrics.OutcomeTransport, outcomeOf(errors.New("other")))
}
