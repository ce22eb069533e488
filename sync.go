// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"context"
	"os"

	"github.com/gogama/restx/codec"
	"github.com/gogama/restx/endpoint"
	"github.com/gogama/restx/fault"
)

// A handoff is the single-use synchronization primitive bridging the
// asynchronous pipeline to a blocking caller: exactly one outcome is
// written, then the waiting goroutine resumes. The buffered channel
// guarantees the writing goroutine never blocks on delivery.
type handoff struct {
	ch chan syncOutcome
}

type syncOutcome struct {
	path string
	err  error
}

func newHandoff() handoff {
	return handoff{ch: make(chan syncOutcome, 1)}
}

func (h handoff) complete(path string, err error) {
	h.ch <- syncOutcome{path: path, err: err}
}

func (h handoff) wait() (string, error) {
	o := <-h.ch
	return o.path, o.err
}

// CallSync executes the descriptor and blocks the calling goroutine
// until the outcome is available: build, transport, and interpretation
// all complete before it returns. On success, out (for variants with
// output) has been populated; on failure the returned error is a
// *fault.Error.
//
// CallSync runs the asynchronous path internally with no target
// dispatcher, so any WithDispatcher option is overridden: the blocked
// goroutine cannot also be the callbacks' execution context. Progress
// callbacks, when installed, run on the pipeline's worker goroutine.
//
// Do not invoke CallSync from a context the response needs in order to
// complete (for example, from inside a Dispatcher serving another
// in-flight invocation); that is a caller obligation the bridge cannot
// detect.
func (c *Caller) CallSync(ctx context.Context, d endpoint.Descriptor, in, out interface{}, opts ...Option) error {
	h := newHandoff()
	opts = append(opts, WithDispatcher(nil))
	c.Call(ctx, d, in, out, func(err error) {
		h.complete("", err)
	}, opts...)
	_, err := h.wait()
	return err
}

// DownloadSync executes the descriptor, streaming the response body to
// a temporary file, and blocks until the outcome is available. On
// success it returns the file's path.
//
// Unlike Download, ownership of the file transfers to the caller,
// which is responsible for removing it. Dispatcher handling matches
// CallSync.
func (c *Caller) DownloadSync(ctx context.Context, d endpoint.Descriptor, in interface{}, opts ...Option) (string, error) {
	h := newHandoff()
	o := applyOptions(append(opts, WithDispatcher(nil)))
	go func() {
		path, err := c.executeDownload(ctx, d, in, o)
		h.complete(path, err)
	}()
	return h.wait()
}

// DownloadDecodeSync is DownloadSync followed by a typed decode of the
// downloaded file against the descriptor's output format, for
// descriptors whose variant produces output. The file is decoded by
// streaming, never re-buffered in memory. On success the caller owns
// the returned file, exactly as with DownloadSync; on a decode failure
// the file is removed and a fault.Decoding error is returned.
func (c *Caller) DownloadDecodeSync(ctx context.Context, d endpoint.Descriptor, in, out interface{}, opts ...Option) (string, error) {
	if !d.Variant.HasOutput() || out == nil {
		return "", fault.Configurationf("restx: DownloadDecodeSync requires a variant with output and a non-nil output target")
	}
	path, err := c.DownloadSync(ctx, d, in, opts...)
	if err != nil {
		return "", err
	}
	decS := codec.NewDecoderSettings()
	c.Config.EffectiveHooks().AdjustDecoder(decS)
	if err := codec.DecodeFile(d.EffectiveOutputFormat(), path, out, decS); err != nil {
		os.Remove(path)
		return "", c.fail(fault.NewDecoding(err))
	}
	return path, nil
}
