// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request defines the transport-level value types exchanged
// between the restx pipeline and its injected transport: a built
// Request ready to send, and the raw Result received back.
package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	urlpkg "net/url"
)

// A Request is a fully built, transport-ready HTTP request: absolute
// URL, headers, and a pre-buffered body.
//
// The field structure mirrors the lower-level http.Request with
// server-only and stream-oriented fields removed. A Request is built
// once per invocation from an endpoint descriptor, a service
// configuration, and an optional input value; the request-adjustment
// hook receives it for final mutation before it is sent.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). It is
	// never empty on a built request.
	Method string

	// URL is the absolute URL to access, including any encoded query
	// string.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent, including
	// any content-type and authorization headers applied during the
	// build.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body
	// indicates no request body should be sent.
	Body []byte
}

// Clone returns a deep copy of the request. The URL and Header are
// copied so mutations of the clone do not affect the original; Body
// bytes are shared, as the pipeline treats them as immutable once
// encoded.
func (r *Request) Clone() *Request {
	r2 := &Request{
		Method: r.Method,
		Header: r.Header.Clone(),
		Body:   r.Body,
	}
	if r.URL != nil {
		u := *r.URL
		r2.URL = &u
	}
	return r2
}

// ToHTTP converts the built request into a standard http.Request bound
// to ctx, suitable for handing to any http.Client-compatible
// transport. The body, if any, is replayable via GetBody.
func (r *Request) ToHTTP(ctx context.Context) (*http.Request, error) {
	hr, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), nil)
	if err != nil {
		return nil, err
	}
	hr.Header = r.Header.Clone()
	if len(r.Body) > 0 {
		hr.Body = io.NopCloser(bytes.NewReader(r.Body))
		hr.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(r.Body)), nil
		}
		hr.ContentLength = int64(len(r.Body))
	}
	return hr, nil
}
