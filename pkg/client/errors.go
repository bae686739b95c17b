package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNoSession is returned when a request is built without a session
	// token.
	ErrNoSession = errors.New("no session token")

	// ErrInvalidKey is returned when an upsert names the primary Id field as
	// its alternate key. Upsert-by-Id is semantically a create or update and
	// must be issued as one of those.
	ErrInvalidKey = errors.New("upsert key must not be the Id field")
)

// APIError represents a non-2xx response from the vendor API. The response
// body is carried verbatim; the client performs no interpretation or retry.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("salesforce API error (status %d) on %s: %s",
		e.StatusCode, e.Endpoint, string(e.Body))
}
