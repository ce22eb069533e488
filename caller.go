// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"context"
	"io"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/endpoint"
	"github.com/gogama/restx/fault"
	"github.com/gogama/restx/request"
	"github.com/gogama/restx/service"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A CompletionFunc receives the terminal outcome of one invocation.
// The error is nil for a success outcome; otherwise it is a
// *fault.Error classifiable with fault.KindOf. It fires exactly once
// per invocation.
type CompletionFunc func(err error)

// A DownloadCompletionFunc receives the terminal outcome of one
// download invocation. On success, path names the temporary file
// holding the response body; the file is guaranteed to exist only
// until the callback returns, so move or open it before returning.
type DownloadCompletionFunc func(path string, err error)

// A ProgressFunc receives fractional completion updates while the
// response body is transferred. The fraction is in [0.0, 1.0], or
// ProgressUnknown when the expected total is unknown. Progress fires
// zero or more times per invocation, always strictly before the
// completion callback, and on the same Dispatcher.
type ProgressFunc func(fraction float64)

// ProgressUnknown is delivered to a ProgressFunc when the transport
// does not report an expected total size for the response body.
const ProgressUnknown = -1.0

// A Dispatcher delivers progress and completion callbacks onto a
// caller-chosen execution context, for example a UI or event-loop
// goroutine. A Dispatcher must preserve submission order: the pipeline
// relies on it to keep progress deliveries strictly before the
// completion delivery.
type Dispatcher interface {
	Dispatch(f func())
}

// The DispatcherFunc type is an adapter to allow the use of ordinary
// functions as dispatchers.
type DispatcherFunc func(func())

// Dispatch calls d(f).
func (d DispatcherFunc) Dispatch(f func()) {
	d(f)
}

type callOptions struct {
	progress   ProgressFunc
	dispatcher Dispatcher
}

// An Option adjusts one invocation of a Caller.
type Option func(*callOptions)

// WithProgress installs a progress callback for the invocation.
func WithProgress(fn ProgressFunc) Option {
	return func(o *callOptions) {
		o.progress = fn
	}
}

// WithDispatcher routes the invocation's progress and completion
// callbacks through d. A nil Dispatcher restores the default, which
// runs callbacks on the pipeline's worker goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(o *callOptions) {
		o.dispatcher = d
	}
}

func applyOptions(opts []Option) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *callOptions) dispatch(f func()) {
	if o.dispatcher != nil {
		o.dispatcher.Dispatch(f)
		return
	}
	f()
}

// A Caller executes endpoint descriptors against one remote service.
// It is the single execution engine of the pipeline: it builds the
// transport request, drives the injected transport, validates and
// decodes the response, and surfaces a typed outcome through either a
// callback-based (Call, Download) or blocking (CallSync, DownloadSync)
// entry point.
//
// Only the Config field is required. The zero values of the remaining
// fields are valid: http.DefaultClient as the transport and a no-op
// logger.
//
// A Caller is higher-level than an HTTPDoer. The HTTPDoer is
// responsible for all details of sending the HTTP request and
// receiving the response (connection management, redirects, TLS),
// while Caller builds on top of the HTTPDoer's feature set. Typically
// the Go standard HTTP client is used as the HTTPDoer, but this is not
// required; any compatible implementation works, including wrapping
// clients that add their own policy.
//
// Caller does no retrying of its own: every failure is terminal for
// the invocation and surfaces through the completion callback or the
// blocking return. It is safe for concurrent use by multiple
// goroutines; the Config is shared read-only and each invocation owns
// its own request and outcome.
type Caller struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer

	// Config carries the per-deployment service values: base URL,
	// authorization, response shapes, and hooks. Required.
	Config *service.Config

	// Logger receives debug-level lifecycle events (request built,
	// response received, outcome). If Logger is nil, nothing is
	// logged.
	Logger *zap.Logger
}

// Call executes the descriptor asynchronously and returns immediately.
//
// For variants with input, in supplies the value to encode; it must be
// nil otherwise. For variants with output, out must be a non-nil
// pointer the response body is decoded into; it must be nil otherwise.
// Out is fully populated before done fires and must not be read until
// then.
//
// The completion callback fires exactly once, on the Dispatcher given
// via WithDispatcher if any, otherwise on an unspecified goroutine.
func (c *Caller) Call(ctx context.Context, d endpoint.Descriptor, in, out interface{}, done CompletionFunc, opts ...Option) {
	if done == nil {
		panic("restx: nil completion callback")
	}
	o := applyOptions(opts)
	go func() {
		err := c.execute(ctx, d, in, out, o)
		o.dispatch(func() {
			done(err)
		})
	}()
}

// Download executes the descriptor asynchronously, streaming the
// response body to a temporary file instead of buffering it in memory,
// and returns immediately.
//
// Validation runs on status and headers only; the service's basic
// response shape does not apply to downloads. On success the callback
// receives the temporary file's path. The invocation owns the file
// until the callback returns, after which it is removed; move or open
// it inside the callback.
func (c *Caller) Download(ctx context.Context, d endpoint.Descriptor, in interface{}, done DownloadCompletionFunc, opts ...Option) {
	if done == nil {
		panic("restx: nil completion callback")
	}
	o := applyOptions(opts)
	go func() {
		path, err := c.executeDownload(ctx, d, in, o)
		o.dispatch(func() {
			done(path, err)
			if path != "" {
				os.Remove(path)
			}
		})
	}()
}

// execute runs the full buffered pipeline for one invocation: build,
// send, interpret. Every failure comes back as a *fault.Error.
func (c *Caller) execute(ctx context.Context, d endpoint.Descriptor, in, out interface{}, o *callOptions) error {
	if d.Variant.HasOutput() && out == nil {
		return fault.Configurationf("restx: variant %s requires a non-nil output target", d.Variant)
	}
	if !d.Variant.HasOutput() && out != nil {
		return fault.Configurationf("restx: variant %s carries no output but an output target was given", d.Variant)
	}
	hooks := c.Config.EffectiveHooks()
	req, decS, err := c.prepare(d, in, hooks)
	if err != nil {
		return err
	}
	res, err := c.send(ctx, req, o, false)
	if err != nil {
		return err
	}
	return c.interpret(d, res, out, decS, hooks)
}

func (c *Caller) executeDownload(ctx context.Context, d endpoint.Descriptor, in interface{}, o *callOptions) (string, error) {
	hooks := c.Config.EffectiveHooks()
	req, decS, err := c.prepare(d, in, hooks)
	if err != nil {
		return "", err
	}
	res, err := c.send(ctx, req, o, true)
	if err != nil {
		return "", err
	}
	if err := c.interpretDownload(d, res, decS, hooks); err != nil {
		if res.File != "" {
			os.Remove(res.File)
		}
		return "", err
	}
	return res.File, nil
}

// prepare adjusts the codec settings through the hooks and builds the
// transport request. The returned decoder settings are consumed later,
// during interpretation.
func (c *Caller) prepare(d endpoint.Descriptor, in interface{}, hooks service.Hooks) (*request.Request, *codec.DecoderSettings, error) {
	encS := codec.NewEncoderSettings()
	hooks.AdjustEncoder(encS)
	decS := codec.NewDecoderSettings()
	hooks.AdjustDecoder(decS)
	req, err := buildRequest(d, c.Config, in, encS, hooks)
	if err != nil {
		return nil, nil, err
	}
	c.logger().Debug("request built",
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL))
	return req, decS, nil
}

// send drives the transport and materializes the raw result. For
// download invocations with a success status, the body is streamed to
// a temporary file; in every other case it is buffered, so failure
// bodies remain available for error-shape decoding.
func (c *Caller) send(ctx context.Context, req *request.Request, o *callOptions, download bool) (*request.Result, error) {
	hr, err := req.ToHTTP(ctx)
	if err != nil {
		return nil, fault.NewConfiguration(err)
	}
	resp, err := c.doer().Do(hr)
	if err != nil {
		c.logger().Debug("transport failed", zap.Error(err))
		return nil, fault.NewConnectivity(err)
	}
	defer resp.Body.Close()

	res := &request.Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}
	body := newProgressReader(resp.Body, resp.ContentLength, o)
	if download && res.Success() {
		path, err := downloadBody(body)
		if err != nil {
			return nil, fault.NewConnectivity(err)
		}
		res.File = path
	} else {
		b, err := io.ReadAll(body)
		if err != nil {
			return nil, fault.NewConnectivity(err)
		}
		res.Body = b
	}
	c.logger().Debug("response received",
		zap.Int("status", res.StatusCode),
		zap.Bool("download", res.Downloaded()))
	return res, nil
}

func (c *Caller) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Caller) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
