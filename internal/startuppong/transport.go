package startuppong

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Outcome labels recorded for each round-trip.
const (
	outcomeOK           = "ok"
	outcomeNetworkError = "network_error"
	outcomeHTTPError    = "http_error"
	outcomeDecodeError  = "decode_error"
)

type request struct {
	op     string
	method string
	path   string
	query  map[string]string
	body   any
}

// roundTrip performs exactly one HTTP exchange and decodes a successful body
// with decode. On failure the zero T is returned alongside one of
// *NetworkError, *HTTPStatusError or *DecodeError.
func roundTrip[T any](ctx context.Context, c *APIClient, r request, decode func([]byte) (T, error)) (T, error) {
	var zero T
	start := time.Now()
	requestID := uuid.NewString()

	req := c.rest.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if r.query != nil {
		req.SetQueryParams(r.query)
	}
	if r.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(r.body)
	}

	log.Debug("Requesting startuppong API", "op", r.op, "method", r.method, "path", r.path, "request_id", requestID)
	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		err = c.redact(err)
		c.observe(r.op, outcomeNetworkError, start)
		log.Error("Request to startuppong API failed", "op", r.op, "error", err, "request_id", requestID)
		return zero, &NetworkError{Op: r.op, Err: err}
	}

	if !resp.IsSuccess() {
		c.observe(r.op, outcomeHTTPError, start)
		log.Error("Received non-OK HTTP status from startuppong API", "op", r.op, "status", resp.StatusCode(), "body", resp.String(), "request_id", requestID)
		return zero, &HTTPStatusError{Op: r.op, StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	out, err := decode(resp.Body())
	if err != nil {
		c.observe(r.op, outcomeDecodeError, start)
		log.Error("Failed to decode startuppong response", "op", r.op, "error", err, "request_id", requestID)
		return zero, &DecodeError{Op: r.op, Err: err}
	}

	c.observe(r.op, outcomeOK, start)
	log.Debug("startuppong API responded", "op", r.op, "status", resp.StatusCode(), "duration", time.Since(start), "request_id", requestID)
	return out, nil
}

func (c *APIClient) observe(op, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveRequest(op, outcome, time.Since(start).Seconds())
}

// redact removes the access key from transport errors. net/http reports
// failures as *url.Error, whose message carries the full request URL and so
// the credential query parameters.
func (c *APIClient) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
	}
	if key := c.account.Key; key != "" && strings.Contains(err.Error(), key) {
		return &redactedError{msg: strings.ReplaceAll(err.Error(), key, redacted), err: err}
	}
	return err
}

const redacted = "REDACTED"

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		base, _, _ := strings.Cut(raw, "?")
		return base
	}
	q := u.Query()
	if q.Has(paramAccessKey) {
		q.Set(paramAccessKey, redacted)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
