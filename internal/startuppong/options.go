package startuppong

import (
	"net/http"
	"strings"
	"time"

	"github.com/mauv0809/startuppong/internal/metrics"
)

// Option configures an APIClient during construction in NewClient.
type Option func(*APIClient)

// WithBaseURL overrides the API host, e.g. to point at a test server.
func WithBaseURL(u string) Option {
	return func(c *APIClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds the total time spent on a single request.
func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient makes the client send requests through h's transport,
// redirect policy and cookie jar. h itself is not modified; the timeout from
// WithTimeout applies to the client's own copy.
func WithHTTPClient(h *http.Client) Option {
	return func(c *APIClient) { c.httpClient = h }
}

// WithMetrics records every round-trip on m.
func WithMetrics(m metrics.Metrics) Option {
	return func(c *APIClient) { c.metrics = m }
}
