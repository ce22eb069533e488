// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/request"
)

func TestBaseHooks(t *testing.T) {
	var h BaseHooks
	assert.NoError(t, h.AdjustRequest(&request.Request{}))
	h.AdjustEncoder(codec.NewEncoderSettings())
	h.AdjustDecoder(codec.NewDecoderSettings())
	assert.NoError(t, h.ValidateResponse(&request.Result{StatusCode: 500}))
	assert.NoError(t, h.ValidateBasicResponse(nil))
}

func TestHookFuncs(t *testing.T) {
	t.Run("nil funcs are no-ops", func(t *testing.T) {
		h := &HookFuncs{}
		assert.NoError(t, h.AdjustRequest(&request.Request{}))
		h.AdjustEncoder(codec.NewEncoderSettings())
		h.AdjustDecoder(codec.NewDecoderSettings())
		assert.NoError(t, h.ValidateResponse(&request.Result{}))
		assert.NoError(t, h.ValidateBasicResponse(nil))
	})
	t.Run("funcs are delegated to", func(t *testing.T) {
		reject := errors.New("rejected")
		var encoderAdjusted, decoderAdjusted bool
		h := &HookFuncs{
			Request: func(r *request.Request) error {
				r.Method = "PATCH"
				return nil
			},
			Encoder: func(s *codec.EncoderSettings) {
				encoderAdjusted = true
			},
			Decoder: func(s *codec.DecoderSettings) {
				decoderAdjusted = true
			},
			Response: func(res *request.Result) error {
				return reject
			},
			BasicResponse: func(v interface{}) error {
				return reject
			},
		}
		r := &request.Request{Method: "GET"}
		require.NoError(t, h.AdjustRequest(r))
		assert.Equal(t, "PATCH", r.Method)
		h.AdjustEncoder(codec.NewEncoderSettings())
		h.AdjustDecoder(codec.NewDecoderSettings())
		assert.True(t, encoderAdjusted)
		assert.True(t, decoderAdjusted)
		assert.Same(t, reject, h.ValidateResponse(&request.Result{}))
		assert.Same(t, reject, h.ValidateBasicResponse(42))
	})
}

type envelope struct {
	Status string `json:"status" validate:"required,oneof=ok error"`
}

func TestValidatingHooks(t *testing.T) {
	t.Run("valid struct passes through", func(t *testing.T) {
		h := ValidatingHooks(nil)
		assert.NoError(t, h.ValidateBasicResponse(&envelope{Status: "ok"}))
	})
	t.Run("invalid struct is rejected", func(t *testing.T) {
		h := ValidatingHooks(nil)
		assert.Error(t, h.ValidateBasicResponse(&envelope{}))
		assert.Error(t, h.ValidateBasicResponse(&envelope{Status: "maybe"}))
	})
	t.Run("non-struct passes through", func(t *testing.T) {
		h := ValidatingHooks(nil)
		assert.NoError(t, h.ValidateBasicResponse("plain string"))
		assert.NoError(t, h.ValidateBasicResponse(nil))
	})
	t.Run("delegates to next", func(t *testing.T) {
		reject := errors.New("next rejected")
		h := ValidatingHooks(&HookFuncs{
			BasicResponse: func(v interface{}) error {
				return reject
			},
		})
		assert.Same(t, reject, h.ValidateBasicResponse(&envelope{Status: "ok"}))
	})
	t.Run("other hooks delegate", func(t *testing.T) {
		adjusted := false
		h := ValidatingHooks(&HookFuncs{
			Encoder: func(*codec.EncoderSettings) {
				adjusted = true
			},
		})
		assert.NoError(t, h.AdjustRequest(&request.Request{}))
		h.AdjustEncoder(codec.NewEncoderSettings())
		h.AdjustDecoder(codec.NewDecoderSettings())
		assert.NoError(t, h.ValidateResponse(&request.Result{}))
		assert.True(t, adjusted)
	})
}
