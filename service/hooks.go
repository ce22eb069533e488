// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package service

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/request"
)

// Hooks is the per-service customization surface of the pipeline.
// Every method has a no-op default in BaseHooks; implement Hooks by
// embedding BaseHooks and overriding the methods of interest, or use
// HookFuncs for one-off function hooks.
//
// Hook methods must be safe for concurrent use: one Config, and
// therefore one Hooks value, is shared by all in-flight invocations.
type Hooks interface {
	// AdjustRequest receives the fully built request, after encoding
	// and authorization, for final mutation (extra headers, signing).
	// A non-nil error aborts the build.
	AdjustRequest(r *request.Request) error

	// AdjustEncoder receives the encoder settings for one request,
	// immediately before the input is encoded.
	AdjustEncoder(s *codec.EncoderSettings)

	// AdjustDecoder receives the decoder settings for one request,
	// before any decode attempt against the response.
	AdjustDecoder(s *codec.DecoderSettings)

	// ValidateResponse receives the raw transport result before any
	// decoding. A non-nil error rejects the response as a
	// fault.Validation failure.
	ValidateResponse(res *request.Result) error

	// ValidateBasicResponse receives the decoded basic response, when
	// the configuration declares one. A non-nil error rejects the
	// response as a fault.Validation failure.
	ValidateBasicResponse(v interface{}) error
}

// BaseHooks is the no-op Hooks implementation. Embed it to implement
// only the hooks of interest.
type BaseHooks struct{}

// AdjustRequest does nothing.
func (BaseHooks) AdjustRequest(*request.Request) error { return nil }

// AdjustEncoder does nothing.
func (BaseHooks) AdjustEncoder(*codec.EncoderSettings) {}

// AdjustDecoder does nothing.
func (BaseHooks) AdjustDecoder(*codec.DecoderSettings) {}

// ValidateResponse accepts every response.
func (BaseHooks) ValidateResponse(*request.Result) error { return nil }

// ValidateBasicResponse accepts every basic response.
func (BaseHooks) ValidateBasicResponse(interface{}) error { return nil }

// HookFuncs adapts ordinary functions to the Hooks interface. Nil
// fields behave as no-ops, so a one-hook configuration needs only the
// field of interest:
//
//	cfg.Hooks = &service.HookFuncs{
//		Request: func(r *request.Request) error {
//			r.Header.Set("X-Trace-Id", nextTraceID())
//			return nil
//		},
//	}
type HookFuncs struct {
	Request       func(*request.Request) error
	Encoder       func(*codec.EncoderSettings)
	Decoder       func(*codec.DecoderSettings)
	Response      func(*request.Result) error
	BasicResponse func(interface{}) error
}

// AdjustRequest calls the Request func if non-nil.
func (h *HookFuncs) AdjustRequest(r *request.Request) error {
	if h.Request != nil {
		return h.Request(r)
	}
	return nil
}

// AdjustEncoder calls the Encoder func if non-nil.
func (h *HookFuncs) AdjustEncoder(s *codec.EncoderSettings) {
	if h.Encoder != nil {
		h.Encoder(s)
	}
}

// AdjustDecoder calls the Decoder func if non-nil.
func (h *HookFuncs) AdjustDecoder(s *codec.DecoderSettings) {
	if h.Decoder != nil {
		h.Decoder(s)
	}
}

// ValidateResponse calls the Response func if non-nil.
func (h *HookFuncs) ValidateResponse(res *request.Result) error {
	if h.Response != nil {
		return h.Response(res)
	}
	return nil
}

// ValidateBasicResponse calls the BasicResponse func if non-nil.
func (h *HookFuncs) ValidateBasicResponse(v interface{}) error {
	if h.BasicResponse != nil {
		return h.BasicResponse(v)
	}
	return nil
}

var validate = validator.New()

// ValidatingHooks decorates next with struct-tag validation of the
// decoded basic response, using go-playground/validator semantics: a
// basic response shape declaring `validate:"..."` tags is checked
// before next.ValidateBasicResponse runs. Non-struct basic responses
// pass through untouched. A nil next behaves as BaseHooks.
func ValidatingHooks(next Hooks) Hooks {
	if next == nil {
		next = BaseHooks{}
	}
	return &validatingHooks{next: next}
}

type validatingHooks struct {
	next Hooks
}

func (h *validatingHooks) AdjustRequest(r *request.Request) error { return h.next.AdjustRequest(r) }

func (h *validatingHooks) AdjustEncoder(s *codec.EncoderSettings) { h.next.AdjustEncoder(s) }

func (h *validatingHooks) AdjustDecoder(s *codec.DecoderSettings) { h.next.AdjustDecoder(s) }

func (h *validatingHooks) ValidateResponse(res *request.Result) error {
	return h.next.ValidateResponse(res)
}

func (h *validatingHooks) ValidateBasicResponse(v interface{}) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if err := validate.Struct(rv.Interface()); err != nil {
			return err
		}
	}
	return h.next.ValidateBasicResponse(v)
}
