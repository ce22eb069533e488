// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package service

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

type authKind int

const (
	authNone authKind = iota
	authBasic
	authBearer
	authCustom
)

// An Authorization is the service-wide authorization value applied to
// outgoing requests after input encoding. The zero value carries no
// authorization; construct non-empty values with Basic, Bearer, or
// Custom.
type Authorization struct {
	kind          authKind
	user, pass    string
	token         string
	header, value string
}

// Basic returns an authorization that sets the Authorization header to
// HTTP Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted. Some protocols may impose additional requirements
// on pre-escaping the username and password.
func Basic(user, pass string) Authorization {
	return Authorization{kind: authBasic, user: user, pass: pass}
}

// Bearer returns an authorization that sets the Authorization header
// to the bearer scheme with the provided token.
func Bearer(token string) Authorization {
	return Authorization{kind: authBearer, token: token}
}

// Custom returns an authorization that sets a caller-named header to
// the provided value, for services whose authorization does not use
// the Authorization header (for example an API key header).
func Custom(header, value string) Authorization {
	return Authorization{kind: authCustom, header: header, value: value}
}

// IsZero reports whether the authorization carries no value. Building
// a request for an endpoint with a required authorization fails when
// the configuration's authorization is zero.
func (a Authorization) IsZero() bool {
	return a.kind == authNone
}

// Apply sets the authorization's header on h. Applying the zero
// authorization does nothing. A Custom authorization with an invalid
// header name or value returns an error.
func (a Authorization) Apply(h http.Header) error {
	switch a.kind {
	case authNone:
		return nil
	case authBasic:
		return a.applyHeader(h, "Authorization", "Basic "+basicAuth(a.user, a.pass))
	case authBearer:
		return a.applyHeader(h, "Authorization", "Bearer "+a.token)
	default:
		return a.applyHeader(h, a.header, a.value)
	}
}

func (a Authorization) applyHeader(h http.Header, name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("service: invalid authorization header name %q", name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("service: invalid authorization header value for %q", name)
	}
	h.Set(name, value)
	return nil
}

// basicAuth follows RFC 2617: the client sends the userid and
// password, separated by a single colon, within a base64 encoded
// string in the credentials. It is not meant to be urlencoded.
func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}
