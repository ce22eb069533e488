// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package codec implements the pluggable wire encodings of the restx
// pipeline: JSON, URL query, form URL-encoded, multipart form data,
// and XML on the input side; JSON and XML on the output side.
//
// Encoding and decoding behavior is adjusted per request through
// EncoderSettings and DecoderSettings, which the service
// configuration's adjustment hooks receive immediately before the
// codec is used.
package codec

import "time"

// EncoderSettings carries the adjustable knobs consulted when encoding
// a request input. A service configuration's encoder-adjustment hook
// receives a fresh settings value once per request, immediately before
// encoding.
type EncoderSettings struct {
	// JSONIndent, when non-empty, pretty-prints JSON bodies using the
	// given indent string.
	JSONIndent string

	// JSONEscapeHTML controls escaping of <, >, and & in JSON bodies.
	// NewEncoderSettings enables it, matching encoding/json defaults.
	JSONEscapeHTML bool

	// TimeLayout is the layout used to render time.Time fields in URL
	// query, form, and multipart encodings. NewEncoderSettings sets it
	// to time.RFC3339.
	TimeLayout string

	// XMLIndent, when non-empty, pretty-prints XML bodies using the
	// given indent string.
	XMLIndent string

	// Boundary, when non-empty, overrides the generated multipart
	// boundary token for FormData bodies. Leave it empty outside of
	// tests; the generated token is unique per request.
	Boundary string
}

// NewEncoderSettings returns encoder settings with the package
// defaults: compact HTML-escaped JSON, RFC 3339 times, generated
// multipart boundaries.
func NewEncoderSettings() *EncoderSettings {
	return &EncoderSettings{
		JSONEscapeHTML: true,
		TimeLayout:     time.RFC3339,
	}
}

// DecoderSettings carries the adjustable knobs consulted when decoding
// a response body. A service configuration's decoder-adjustment hook
// receives a fresh settings value once per request, before any decode
// attempt.
type DecoderSettings struct {
	// JSONUseNumber decodes JSON numbers into json.Number instead of
	// float64 when the target field is untyped.
	JSONUseNumber bool

	// JSONDisallowUnknownFields rejects JSON object keys that do not
	// match a field of the target shape.
	JSONDisallowUnknownFields bool

	// XMLLenient disables strict XML parsing, permitting common
	// real-world malformations the way encoding/xml's non-strict mode
	// does.
	XMLLenient bool
}

// NewDecoderSettings returns decoder settings with the package
// defaults, which match encoding/json and strict encoding/xml
// behavior.
func NewDecoderSettings() *DecoderSettings {
	return &DecoderSettings{}
}
