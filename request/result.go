// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "net/http"

// A Result is the raw outcome the transport produced for one request:
// status, headers, and either a fully buffered body or, for download
// executions, the path of the temporary file the body was streamed to.
//
// Validation hooks receive the Result before any decoding happens.
// Hooks should treat it as read-only.
type Result struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Header contains the response headers. It is never nil for a
	// result produced by the pipeline.
	Header http.Header

	// Body is the complete buffered response body. It is nil for
	// download executions, whose body is streamed to File instead.
	Body []byte

	// File is the path of the temporary file holding the response body
	// of a download execution. It is empty for buffered executions.
	// The file is owned by the invocation and is only guaranteed to
	// exist until the completion callback returns.
	File string
}

// Success reports whether the status code is in the success range,
// HTTP 200-299 inclusive.
func (r *Result) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Downloaded reports whether the response body was streamed to a file
// rather than buffered in memory.
func (r *Result) Downloaded() bool {
	return r.File != ""
}
