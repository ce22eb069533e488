// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"net/http"
	urlpkg "net/url"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/endpoint"
	"github.com/gogama/restx/fault"
	"github.com/gogama/restx/request"
	"github.com/gogama/restx/service"
)

// buildRequest composes a descriptor, a configuration, and an optional
// input value into a transport-ready request.
//
// Build order is fixed: descriptor and configuration validation, URL
// resolution, input encoding, authorization, and finally the
// request-adjustment hook over the finished request. Every failure is
// a build-time programmer error and surfaces as a fault.Configuration
// error. Building twice from the same inputs produces byte-identical
// requests, except for the generated FormData boundary.
func buildRequest(d endpoint.Descriptor, cfg *service.Config, in interface{}, encS *codec.EncoderSettings, hooks service.Hooks) (*request.Request, error) {
	if err := d.Validate(); err != nil {
		return nil, fault.NewConfiguration(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fault.NewConfiguration(err)
	}
	u, err := resolveURL(cfg.BaseURL, d.Path)
	if err != nil {
		return nil, err
	}

	req := &request.Request{
		Method: d.EffectiveMethod(),
		URL:    u,
		Header: make(http.Header),
	}

	if d.Variant.HasInput() {
		if in == nil {
			return nil, fault.Configurationf("restx: variant %s requires an input value", d.Variant)
		}
		if err := encodeInput(req, d, in, encS); err != nil {
			return nil, err
		}
	} else if in != nil {
		return nil, fault.Configurationf("restx: variant %s carries no input but an input value was given", d.Variant)
	}

	if d.Auth == endpoint.AuthRequired && cfg.Authorization.IsZero() {
		return nil, fault.Configurationf("restx: endpoint %s %s requires authorization but none is configured", req.Method, d.Path)
	}
	if d.Auth != endpoint.NoAuth {
		if err := cfg.Authorization.Apply(req.Header); err != nil {
			return nil, fault.NewConfiguration(err)
		}
	}

	if err := hooks.AdjustRequest(req); err != nil {
		return nil, fault.NewConfiguration(err)
	}
	return req, nil
}

// resolveURL appends the endpoint path to the base URL as a path
// component. The path must be relative; an absolute URL in the
// descriptor is a configuration error.
func resolveURL(base, path string) (*urlpkg.URL, error) {
	u, err := urlpkg.Parse(base)
	if err != nil {
		return nil, fault.NewConfiguration(err)
	}
	if path != "" {
		p, err := urlpkg.Parse(path)
		if err != nil {
			return nil, fault.Configurationf("restx: invalid endpoint path %q: %v", path, err)
		}
		if p.IsAbs() || p.Host != "" {
			return nil, fault.Configurationf("restx: endpoint path %q must be relative to the base URL", path)
		}
		u = u.JoinPath(path)
	}
	return u, nil
}

// encodeInput applies the descriptor's input format: URLQuery merges
// the input's fields into the URL query string and sends no body;
// every other format produces a body plus its content type.
func encodeInput(req *request.Request, d endpoint.Descriptor, in interface{}, encS *codec.EncoderSettings) error {
	format := d.EffectiveInputFormat()
	if format == endpoint.URLQuery {
		vals, err := codec.QueryValues(in, encS)
		if err != nil {
			return fault.NewConfiguration(err)
		}
		q := req.URL.Query()
		for k, vs := range vals {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
		return nil
	}
	body, contentType, err := codec.EncodeBody(format, in, encS)
	if err != nil {
		return fault.NewConfiguration(err)
	}
	req.Body = body
	req.Header.Set("Content-Type", contentType)
	return nil
}
