// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"go.uber.org/zap"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/endpoint"
	"github.com/gogama/restx/fault"
	"github.com/gogama/restx/request"
	"github.com/gogama/restx/service"
)

// interpret turns a raw transport result into the invocation's typed
// outcome. The state machine is linear with early exits:
//
// 1. Transport failures never reach interpret; send classifies them as
// connectivity errors.
//
// 2. The raw-response validation hook runs first; its rejection is a
// validation error.
//
// 3. If the configuration declares a basic response shape, the body is
// decoded against it and the basic-response validation hook runs.
//
// 4. A status outside 200-299 produces a service error if the body
// decodes into the configured error shape, and a generic status error
// otherwise.
//
// 5. On success, variants without output produce the unit outcome;
// otherwise the body is decoded into out per the descriptor's output
// format.
func (c *Caller) interpret(d endpoint.Descriptor, res *request.Result, out interface{}, decS *codec.DecoderSettings, hooks service.Hooks) error {
	if err := hooks.ValidateResponse(res); err != nil {
		return c.fail(fault.NewValidation(err))
	}
	if c.Config.NewBasicResponse != nil && !res.Downloaded() && len(res.Body) > 0 {
		basic := c.Config.NewBasicResponse()
		if err := codec.Decode(serviceShapeFormat(d), res.Body, basic, decS); err != nil {
			return c.fail(fault.NewDecoding(err))
		}
		if err := hooks.ValidateBasicResponse(basic); err != nil {
			return c.fail(fault.NewValidation(err))
		}
	}
	if !res.Success() {
		return c.fail(c.failureOutcome(d, res, decS))
	}
	if !d.Variant.HasOutput() {
		return nil
	}
	if err := codec.Decode(d.EffectiveOutputFormat(), res.Body, out, decS); err != nil {
		return c.fail(fault.NewDecoding(err))
	}
	return nil
}

// interpretDownload is the download variant of interpret: validation
// operates on status and headers only, and no basic-response decode is
// attempted against the file-backed body.
func (c *Caller) interpretDownload(d endpoint.Descriptor, res *request.Result, decS *codec.DecoderSettings, hooks service.Hooks) error {
	if err := hooks.ValidateResponse(res); err != nil {
		return c.fail(fault.NewValidation(err))
	}
	if !res.Success() {
		// A failure status is never streamed to disk, so the buffered
		// body is available for error-shape decoding here too.
		return c.fail(c.failureOutcome(d, res, decS))
	}
	return nil
}

// failureOutcome maps a failure status to the error taxonomy: a
// service error when the body decodes into the configured error shape,
// a generic status error otherwise.
func (c *Caller) failureOutcome(d endpoint.Descriptor, res *request.Result, decS *codec.DecoderSettings) error {
	if c.Config.NewErrorResponse != nil && len(res.Body) > 0 {
		decoded := c.Config.NewErrorResponse()
		if err := codec.Decode(serviceShapeFormat(d), res.Body, decoded, decS); err == nil {
			return fault.NewService(res.StatusCode, decoded)
		}
	}
	return fault.NewStatus(res.StatusCode, res.Body)
}

// serviceShapeFormat picks the decode format for service-wide shapes
// (basic and error responses): the endpoint's output format when it
// declares one, JSON otherwise.
func serviceShapeFormat(d endpoint.Descriptor) endpoint.Format {
	if d.Variant.HasOutput() {
		return d.EffectiveOutputFormat()
	}
	return endpoint.JSON
}

func (c *Caller) fail(err error) error {
	c.logger().Debug("call failed",
		zap.Stringer("kind", fault.KindOf(err)),
		zap.Error(err))
	return err
}
