package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/actuallystonmai/movie-details/internal/domain"
)

// StatusMessage is shown for any non-success response, whatever the status
// code or body.
const StatusMessage = "Failed to fetch movie details"

type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindStatus    ErrorKind = "status"
	KindDecode    ErrorKind = "decode"
)

// FetchError is returned by FetchMovie for every failure. Kind tells the
// three failure modes apart; Error() keeps the user-facing message.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus || e.Err == nil {
		return StatusMessage
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a FetchError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var target *FetchError
	if errors.As(err, &target) {
		return target.Kind, true
	}
	return "", false
}

func IsFetchError(err error) bool {
	_, ok := KindOf(err)
	return ok
}

type Options struct {
	BaseURL  string
	APIKey   string
	Language string
}

type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

// NewClient builds a client. A nil httpClient uses a plain http.Client with no
// timeout; callers bound requests through the context.
func NewClient(opts Options, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		language:   opts.Language,
		httpClient: httpClient,
	}
}

// MovieURL is the details endpoint for movieID.
func (c *Client) MovieURL(movieID string) string {
	u := c.baseURL + "/movie/" + url.PathEscape(movieID)
	if c.language != "" {
		u += "?language=" + url.QueryEscape(c.language)
	}
	return u
}

// FetchMovie issues one GET for movieID. A parseable but empty body yields a
// nil movie and a nil error.
func (c *Client) FetchMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MovieURL(movieID), nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("movie %s: unexpected status %d", movieID, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, StatusCode: resp.StatusCode, Err: err}
	}

	var movie *domain.Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		return nil, &FetchError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	if movie.Empty() {
		return nil, nil
	}
	return movie, nil
}
