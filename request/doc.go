// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core value types Request (a fully built
HTTP request) and Result (a fully read HTTP response). These two types
are the currency the endpoint execution pipeline trades in.

A Request is produced by the request builder from an endpoint
descriptor, a service configuration, and an optional input value. For
those familiar with the Go standard HTTP library, net/http, a Request
looks like a stripped-down http.Request structure with all server-side
fields removed and the body fields replaced with a simple []byte: the
builder pre-buffers the encoded body so the same Request can be
converted to an http.Request any number of times. Request fields are
named and typed consistently with http.Request wherever possible.

Convert a Request into a sendable standard library request with ToHTTP:

	hr, err := r.ToHTTP(ctx)
	...
	resp, err := doer.Do(hr)
	...

A Result captures everything the response interpreter needs after the
transport has finished: the status code, the response headers, and
either the buffered body or, for downloads, the path of the temporary
file the body was streamed to. Result values are handed to response
validation hooks, so mutating them after interpretation has started is
not safe.
*/
package request
