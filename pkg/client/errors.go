// Package client is a Go SDK for the letters console backend. It carries
// the session store, route guard, resource client, and letter generation
// workflow that an administrative front-end needs on top of the REST API.
package client

import "fmt"

// AuthError reports a rejected login or an invalid token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError reports a missing selection or field caught before any
// request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NetworkError wraps a transport failure.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response with its decoded detail payload. Detail
// keeps the backend's shape untouched; FormatErrorMessage turns it into a
// display string.
type APIError struct {
	StatusCode int
	Detail     any
}

func (e *APIError) Error() string {
	return FormatErrorMessage(e.Detail)
}
