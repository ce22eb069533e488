// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package endpoint describes remote HTTP operations as immutable typed
// data.
//
// A Descriptor declares the shape of one remote operation: whether it
// consumes an input value and produces an output value (Variant), the
// HTTP method and path, the wire formats used for input and output,
// and whether the operation requires service authorization. Descriptors
// are typically constructed once, at startup, and shared read-only for
// the lifetime of the process.
package endpoint

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// A Variant classifies a remote operation by whether it consumes a
// typed input value and whether it produces a typed output value.
type Variant int

const (
	// Empty describes an operation with no input and no output. Only
	// the response status (and any service-wide basic response) carry
	// information.
	Empty Variant = iota
	// In describes an operation that consumes an input value but whose
	// response carries no typed output.
	In
	// Out describes an operation with no input whose response body
	// decodes into a typed output value.
	Out
	// InOut describes an operation that both consumes an input value
	// and produces a typed output value.
	InOut
)

var variantNames = []string{"Empty", "In", "Out", "InOut"}

// HasInput reports whether the variant consumes an input value.
func (v Variant) HasInput() bool {
	return v == In || v == InOut
}

// HasOutput reports whether the variant produces an output value.
func (v Variant) HasOutput() bool {
	return v == Out || v == InOut
}

// String returns the name of the variant.
func (v Variant) String() string {
	if v < Empty || v > InOut {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// A Format identifies a wire encoding for a request input or a
// response output.
//
// JSON and XML are valid on both sides. URLQuery, FormURLEncoded, and
// FormData are input-only encodings. The zero value FormatNone means
// no explicit format was chosen; the pipeline substitutes JSON where a
// format is needed.
type Format int

const (
	// FormatNone indicates no explicit format choice.
	FormatNone Format = iota
	// JSON encodes or decodes a value as a JSON document.
	JSON
	// URLQuery encodes the input value's fields into the request URL's
	// query string. The request carries no body.
	URLQuery
	// FormURLEncoded encodes the input value's fields as a
	// percent-encoded application/x-www-form-urlencoded body.
	FormURLEncoded
	// FormData encodes the input value's fields as a multipart/form-data
	// body. Fields of type []byte become file parts.
	FormData
	// XML encodes or decodes a value as an XML document.
	XML
)

var formatNames = []string{"FormatNone", "JSON", "URLQuery", "FormURLEncoded", "FormData", "XML"}

// String returns the name of the format.
func (f Format) String() string {
	if f < FormatNone || f > XML {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// InputOnly reports whether the format is only meaningful for request
// inputs.
func (f Format) InputOnly() bool {
	return f == URLQuery || f == FormURLEncoded || f == FormData
}

// An AuthRequirement states whether an operation needs the service's
// authorization value to be configured.
type AuthRequirement int

const (
	// NoAuth means the operation never sends authorization.
	NoAuth AuthRequirement = iota
	// AuthOptional means the operation sends authorization when the
	// service configuration has one, and proceeds without it otherwise.
	AuthOptional
	// AuthRequired means building a request for the operation fails
	// unless the service configuration carries an authorization value.
	AuthRequired
)

var authNames = []string{"NoAuth", "AuthOptional", "AuthRequired"}

// String returns the name of the authorization requirement.
func (a AuthRequirement) String() string {
	if a < NoAuth || a > AuthRequired {
		return fmt.Sprintf("AuthRequirement(%d)", int(a))
	}
	return authNames[a]
}

// Methods accepted by Validate. An empty Descriptor.Method means GET.
var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// A Descriptor is an immutable declaration of one remote operation:
// its variant, HTTP method and path, wire formats, and authorization
// requirement.
//
// The zero value of every field is meaningful: an all-zero Descriptor
// is an Empty GET of the service base URL with no authorization.
// Descriptors are plain values; copy them freely. They must not be
// mutated after first use.
type Descriptor struct {
	// Variant classifies the operation's input/output shape.
	Variant Variant

	// Method is the HTTP method. An empty string means GET. Validate
	// accepts GET, POST, PUT, PATCH, and DELETE.
	Method string

	// Path is the operation's path relative to the service base URL.
	// It must not be an absolute URL.
	Path string

	// InputFormat selects the input encoding for variants that consume
	// input. FormatNone means JSON. Variants without input must leave
	// it FormatNone.
	InputFormat Format

	// OutputFormat selects the output decoding for variants that
	// produce output. FormatNone means JSON. Variants without output
	// must leave it FormatNone. Only JSON and XML are valid.
	OutputFormat Format

	// Auth states whether the operation requires, tolerates, or never
	// sends the service authorization value.
	Auth AuthRequirement
}

// EffectiveMethod returns the descriptor's method, substituting GET for
// the empty string.
func (d Descriptor) EffectiveMethod() string {
	if d.Method == "" {
		return "GET"
	}
	return d.Method
}

// EffectiveInputFormat returns the input format, substituting JSON for
// FormatNone. The result is only meaningful for variants with input.
func (d Descriptor) EffectiveInputFormat() Format {
	if d.InputFormat == FormatNone {
		return JSON
	}
	return d.InputFormat
}

// EffectiveOutputFormat returns the output format, substituting JSON
// for FormatNone. The result is only meaningful for variants with
// output.
func (d Descriptor) EffectiveOutputFormat() Format {
	if d.OutputFormat == FormatNone {
		return JSON
	}
	return d.OutputFormat
}

// Validate checks the descriptor's internal consistency and returns an
// error describing the first problem found, or nil if the descriptor
// is well-formed.
//
// The rules are:
//
// • Method must be empty (meaning GET) or one of GET, POST, PUT,
// PATCH, DELETE, and must be a valid HTTP token.
//
// • Variants without input must not carry an input format; variants
// without output must not carry an output format.
//
// • OutputFormat, when set, must be JSON or XML; input-only formats
// are rejected.
func (d Descriptor) Validate() error {
	if d.Variant < Empty || d.Variant > InOut {
		return fmt.Errorf("endpoint: invalid variant %d", int(d.Variant))
	}
	m := d.EffectiveMethod()
	if !httpguts.ValidHeaderFieldName(m) || !validMethods[strings.ToUpper(m)] || m != strings.ToUpper(m) {
		return fmt.Errorf("endpoint: invalid method %q", d.Method)
	}
	if !d.Variant.HasInput() && d.InputFormat != FormatNone {
		return fmt.Errorf("endpoint: variant %s carries no input but has input format %s", d.Variant, d.InputFormat)
	}
	if !d.Variant.HasOutput() && d.OutputFormat != FormatNone {
		return fmt.Errorf("endpoint: variant %s carries no output but has output format %s", d.Variant, d.OutputFormat)
	}
	if d.InputFormat < FormatNone || d.InputFormat > XML {
		return fmt.Errorf("endpoint: invalid input format %d", int(d.InputFormat))
	}
	if d.OutputFormat != FormatNone && d.OutputFormat != JSON && d.OutputFormat != XML {
		return fmt.Errorf("endpoint: invalid output format %s", d.OutputFormat)
	}
	if d.Auth < NoAuth || d.Auth > AuthRequired {
		return fmt.Errorf("endpoint: invalid auth requirement %d", int(d.Auth))
	}
	return nil
}
