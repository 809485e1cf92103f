// Package api is the HTTP client for the THRIVE resource backend.
//
// Every response is a JSON envelope {success, data, pagination?, error?,
// message?}. Requests carry a fixed shared-admin-secret header; there is no
// per-user token. The client does no retrying, caching, or batching: each
// call is a single independent unit, and callers that no longer care about
// a result simply discard it.
package api

import (
	"errors"
	"fmt"
)

// NetworkError is a timeout or transport-level failure: the backend was
// never reached, or stopped answering. Callers prompt the user to retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response, or a 2xx envelope with success=false.
// Message carries the body's error/message field when present.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// NotReadyError is a 404 on a resource path. Some endpoints are provisioned
// after the console ships, so a 404 gets softened messaging instead of
// being treated as a hard failure.
type NotReadyError struct {
	Path string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("endpoint not ready: %s", e.Path)
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsNotReady reports whether err is a not-yet-provisioned endpoint.
func IsNotReady(err error) bool {
	var nre *NotReadyError
	return errors.As(err, &nre)
}

// HTTPStatus returns the status code of an HTTPError, or 0.
func HTTPStatus(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
