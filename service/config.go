// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package service defines the per-deployment configuration shared by
// all invocations against one remote service: the base URL, the
// authorization value, the service-wide response shapes, and the
// customization hooks the pipeline consults while building requests
// and interpreting responses.
//
// A Config is constructed once, typically at startup, and is read-only
// for the lifetime of the process. It is safe for concurrent use by
// any number of in-flight invocations.
package service

import (
	"errors"
	"fmt"
	"net/url"
)

// A Config carries the per-deployment values for one remote service.
//
// Only BaseURL is required. The zero value of every other field is
// meaningful: no authorization, no basic or error response shape, and
// no-op hooks.
type Config struct {
	// BaseURL is the absolute URL endpoint paths are resolved against.
	// Required.
	BaseURL string

	// Authorization is the service-wide authorization value. The zero
	// value carries none; endpoints declaring endpoint.AuthRequired
	// fail to build against a zero authorization.
	Authorization Authorization

	// NewBasicResponse, when non-nil, returns a fresh instance of the
	// shape decoded from every buffered response body before
	// endpoint-specific decoding. Use it for service-wide envelope
	// fields. A nil factory disables basic-response decoding. Basic
	// responses are never decoded for download executions.
	NewBasicResponse func() interface{}

	// NewErrorResponse, when non-nil, returns a fresh instance of the
	// error shape attempted when a response status falls outside the
	// success range. The decoded value is surfaced to the caller as
	// the cause of a fault.Service error.
	NewErrorResponse func() error

	// Hooks customizes request building and response interpretation.
	// A nil value means no-op hooks.
	Hooks Hooks
}

// Validate checks that the configuration is usable and returns an
// error describing the first problem found. BaseURL must parse as an
// absolute URL with a host.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("service: nil configuration")
	}
	if c.BaseURL == "" {
		return errors.New("service: base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("service: invalid base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("service: base URL %q is not absolute", c.BaseURL)
	}
	return nil
}

// EffectiveHooks returns the configuration's hooks, substituting the
// no-op BaseHooks for nil. It never returns nil, even on a nil Config.
func (c *Config) EffectiveHooks() Hooks {
	if c == nil || c.Hooks == nil {
		return BaseHooks{}
	}
	return c.Hooks
}
