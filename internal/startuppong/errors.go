package startuppong

import "fmt"

// NetworkError is returned when the request never produced an HTTP response:
// connection refused, DNS failure, timeout or context cancellation.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("startuppong %s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any non-2xx response. Body holds the raw
// response body.
type HTTPStatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("startuppong %s: received non-OK HTTP status %d: %s", e.Op, e.StatusCode, e.Body)
}

// DecodeError is returned when a successful response does not match the
// expected schema.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("startuppong %s: failed to decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PlayerNotFoundError is returned by the name lookups when no player name
// contains Name.
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("startuppong: could not match player name %q to an id", e.Name)
}
