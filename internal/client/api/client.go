// Package api is the single choke point for every request the client
// sends to the Event Hub API. It owns the base URL, the fixed per-request
// timeout, bearer-token attachment, and the normalization of every
// failure into one of three shapes: a server error carrying the remote
// payload, ErrNetwork when no response arrived, or a plain wrapped error
// when the request could not even be built. Callers branch on those
// shapes and nothing else.
package api

import (
	"net/http"
	"time"

	"github.com/apetrenko/eventhub/internal/logging"
)

// DefaultTimeout bounds every request; a request exceeding it is aborted
// and surfaces as a network-class error.
const DefaultTimeout = 10 * time.Second

// TokenSource yields the bearer token to attach to outgoing requests,
// "" when the session is anonymous. It is read per request because the
// session can change between calls.
type TokenSource func() string

// Client is the Event Hub API gateway.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	token          TokenSource
	onUnauthorized func()
	log            logging.Logger
}

// Option configures the client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithOnUnauthorized installs the hook invoked when the server answers
// 401, before the error propagates to the caller. This is the one place
// where a network call is allowed to mutate session state, made explicit
// so it can be tested in isolation.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log logging.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a gateway for the API at baseURL. token may not be nil;
// use a source returning "" for unauthenticated use.
func New(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logging.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
