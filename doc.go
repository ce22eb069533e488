// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package restx turns typed endpoint descriptions into executed HTTP
calls with validated, decoded, typed outcomes.

Describe each remote operation once as an endpoint.Descriptor, describe
the deployment once as a service.Config, and create a Caller to begin
making requests:

	cfg := &service.Config{BaseURL: "https://api.example.com"}
	caller := &restx.Caller{Config: cfg}

	login := endpoint.Descriptor{
		Variant: endpoint.InOut,
		Method:  "POST",
		Path:    "/login",
	}
	var session Session
	err := caller.CallSync(ctx, login, &Credentials{User: "u"}, &session)

Every invocation runs the same pipeline: the request builder composes
descriptor, configuration, and input into a transport request; the
injected transport (any http.Client-compatible HTTPDoer) executes it;
and the response interpreter validates the result and decodes the
success or error body. Failures surface as *fault.Error values
classified into a closed taxonomy (connectivity, configuration,
validation, service, status, decoding); see package fault.

For callback-based calling, use Call, which returns immediately and
fires its completion callback exactly once:

	caller.Call(ctx, login, creds, &session, func(err error) {
		...
	}, restx.WithDispatcher(uiLoop))

For large payloads, Download streams the response body to a temporary
file instead of buffering it, and WithProgress delivers fractional
completion updates strictly before the completion callback:

	caller.Download(ctx, export, nil, func(path string, err error) {
		...	// move or open path before returning
	}, restx.WithProgress(func(f float64) { bar.Set(f) }))

Per-service behavior is customized through the service.Hooks interface:
adjust the outgoing request or the codec settings, and validate raw or
basic responses. All hooks default to no-ops.

The pipeline never retries and exposes no cancellation of its own;
callers wanting either compose them outside, for example by injecting
a retrying HTTPDoer as the transport.
*/
package restx
