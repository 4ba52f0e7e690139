package clients

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the emotion backend. Every Analyze error matches
// exactly one of these sentinels via errors.Is; the struct kinds carry
// diagnostics and are reachable with errors.As.
var (
	ErrConnectionFailed  = errors.New("emotion backend unreachable")
	ErrTimedOut          = errors.New("emotion backend timed out")
	ErrRequestRejected   = errors.New("emotion backend rejected request")
	ErrMalformedResponse = errors.New("emotion backend returned malformed body")
	ErrUnexpectedSchema  = errors.New("emotion backend response schema changed")
	ErrUnknownFailure    = errors.New("emotion request failed")
)

// RequestRejectedError is returned for any non-2xx status. Body is kept
// raw for operator diagnostics.
type RequestRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RequestRejectedError) Error() string {
	return fmt.Sprintf("emotion backend rejected request: status %d: %s", e.StatusCode, e.Body)
}

func (e *RequestRejectedError) Is(target error) bool { return target == ErrRequestRejected }

// MalformedResponseError wraps a JSON decode failure of the response body.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("emotion backend returned malformed body: %v", e.Cause)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

func (e *MalformedResponseError) Unwrap() error { return e.Cause }

// SchemaError means the body parsed as JSON but the expected path to the
// emotion scores was missing. MissingKey names the first absent key.
type SchemaError struct {
	MissingKey string
	Body       string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("emotion backend response schema changed: missing %q", e.MissingKey)
}

func (e *SchemaError) Is(target error) bool { return target == ErrUnexpectedSchema }
