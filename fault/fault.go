// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault defines the error taxonomy of the restx pipeline.
//
// Every failure an invocation can produce is represented as an *Error
// carrying a Kind from a closed set, plus enough context (status code,
// body snippet, wrapped cause) to diagnose the failure without
// re-running the request. Function KindOf classifies any error value
// back into the taxonomy.
package fault

import (
	"errors"
	"fmt"
)

// A Kind is the taxonomy category of a pipeline failure, as reported
// by function KindOf.
//
// The category Unknown means the error did not originate from the
// restx pipeline (or was nil).
type Kind int

const (
	// Unknown indicates an error foreign to the pipeline, or nil.
	Unknown Kind = iota
	// Connectivity indicates the transport never produced a response:
	// timeout, DNS failure, connection refusal, offline host. The
	// pipeline never retries; surface the wrapped transport error
	// as-is.
	Connectivity
	// Configuration indicates a malformed descriptor/configuration
	// combination discovered at build time, for example an absolute
	// endpoint path or a required authorization that is not
	// configured. Always a programmer error.
	Configuration
	// Validation indicates the raw-response or basic-response hook
	// rejected the response.
	Validation
	// Service indicates a failure status whose body decoded into the
	// service's declared error shape. The decoded value is the wrapped
	// cause and carries the service's own fields.
	Service
	// Status indicates a failure status whose body did not decode into
	// the service's error shape (or no shape was configured). The
	// error carries the status code and a snippet of the raw body.
	Status
	// Decoding indicates response body bytes that did not conform to
	// the expected output or basic-response shape. The wrapped cause
	// is the underlying decode failure, which localizes the offending
	// bytes.
	Decoding
)

var kindNames = []string{
	"Unknown",
	"Connectivity",
	"Configuration",
	"Validation",
	"Service",
	"Status",
	"Decoding",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < Unknown || k > Decoding {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// snippetLen bounds the raw body excerpt stored on Status errors.
const snippetLen = 256

// An Error is a classified pipeline failure.
//
// Error supports the standard errors.Is/errors.As machinery: Unwrap
// returns the underlying cause, so a Service error unwraps to the
// service-decoded error value and a Connectivity error unwraps to the
// transport error.
type Error struct {
	// Kind is the taxonomy category. It is never Unknown on an Error
	// constructed by this package.
	Kind Kind

	// StatusCode is the HTTP status code for Service and Status kinds,
	// and zero otherwise.
	StatusCode int

	// Snippet holds the leading bytes of the raw response body for
	// Status kinds, for diagnostics. Empty otherwise.
	Snippet string

	// Err is the underlying cause: the transport error for
	// Connectivity, the hook error for Validation, the decode error
	// for Decoding, the service-decoded error value for Service. It
	// may be nil for Configuration and Status kinds.
	Err error
}

// Error returns a human-readable description of the failure.
func (e *Error) Error() string {
	switch e.Kind {
	case Service:
		return fmt.Sprintf("restx: service error (HTTP %d): %v", e.StatusCode, e.Err)
	case Status:
		if e.Snippet == "" {
			return fmt.Sprintf("restx: HTTP %d", e.StatusCode)
		}
		return fmt.Sprintf("restx: HTTP %d: %s", e.StatusCode, e.Snippet)
	default:
		return fmt.Sprintf("restx: %s: %v", lower(e.Kind), e.Err)
	}
}

func lower(k Kind) string {
	switch k {
	case Connectivity:
		return "connectivity"
	case Configuration:
		return "configuration"
	case Validation:
		return "validation"
	case Decoding:
		return "decoding"
	default:
		return k.String()
	}
}

// Unwrap returns the underlying cause of the failure, which may be
// nil.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConnectivity wraps a transport failure. The transport never
// produced a response.
func NewConnectivity(err error) *Error {
	return &Error{Kind: Connectivity, Err: err}
}

// NewConfiguration reports a build-time programmer error in the
// descriptor/configuration combination.
func NewConfiguration(err error) *Error {
	return &Error{Kind: Configuration, Err: err}
}

// Configurationf is shorthand for NewConfiguration with a formatted
// message.
func Configurationf(format string, args ...interface{}) *Error {
	return NewConfiguration(fmt.Errorf(format, args...))
}

// NewValidation wraps a rejection raised by a raw-response or
// basic-response validation hook.
func NewValidation(err error) *Error {
	return &Error{Kind: Validation, Err: err}
}

// NewService wraps a service-declared error value decoded from a
// failure response body, together with the response status code.
func NewService(statusCode int, decoded error) *Error {
	return &Error{Kind: Service, StatusCode: statusCode, Err: decoded}
}

// NewStatus reports a failure status whose body did not decode into
// the service error shape. Up to the first 256 bytes of body are
// retained as a diagnostic snippet.
func NewStatus(statusCode int, body []byte) *Error {
	s := body
	if len(s) > snippetLen {
		s = s[:snippetLen]
	}
	return &Error{Kind: Status, StatusCode: statusCode, Snippet: string(s)}
}

// NewDecoding wraps a decode failure: response bytes that did not
// conform to the expected shape.
func NewDecoding(err error) *Error {
	return &Error{Kind: Decoding, Err: err}
}

// KindOf returns the taxonomy kind of the given error.
//
// KindOf looks at wrapped cause errors contained within err, not just
// err itself, so an *Error remains classifiable after further
// wrapping. A nil error, and an error with no *Error anywhere in its
// chain, both produce Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}
