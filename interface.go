// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"context"

	"github.com/gogama/restx/endpoint"
)

// Invoker is the interface that wraps the asynchronous Call method.
// Caller implements Invoker, and any other implementation must behave
// substantially the same as Caller.Call: return immediately and fire
// the completion callback exactly once.
type Invoker interface {
	Call(ctx context.Context, d endpoint.Descriptor, in, out interface{}, done CompletionFunc, opts ...Option)
}

// SyncInvoker is the interface that wraps the blocking CallSync
// method. Caller implements SyncInvoker.
type SyncInvoker interface {
	CallSync(ctx context.Context, d endpoint.Descriptor, in, out interface{}, opts ...Option) error
}

// Downloader is the interface that wraps the asynchronous Download
// method. Caller implements Downloader.
type Downloader interface {
	Download(ctx context.Context, d endpoint.Descriptor, in interface{}, done DownloadCompletionFunc, opts ...Option)
}

// SyncDownloader is the interface that wraps the blocking DownloadSync
// method. Caller implements SyncDownloader.
type SyncDownloader interface {
	DownloadSync(ctx context.Context, d endpoint.Descriptor, in interface{}, opts ...Option) (string, error)
}

// Pipeline is the interface that groups all four entry points of the
// execution engine. Caller implements Pipeline.
type Pipeline interface {
	Invoker
	SyncInvoker
	Downloader
	SyncDownloader
}

// Get uses the specified SyncInvoker to execute an Out GET of the
// given path, decoding the JSON response body into out.
//
// For control over formats and authorization, construct an
// endpoint.Descriptor and use CallSync.
func Get(s SyncInvoker, ctx context.Context, path string, out interface{}) error {
	d := endpoint.Descriptor{Variant: endpoint.Out, Path: path}
	return s.CallSync(ctx, d, nil, out)
}

// Post uses the specified SyncInvoker to execute an InOut POST of the
// given path, sending in as a JSON body and decoding the JSON response
// body into out.
//
// For control over formats and authorization, construct an
// endpoint.Descriptor and use CallSync.
func Post(s SyncInvoker, ctx context.Context, path string, in, out interface{}) error {
	d := endpoint.Descriptor{Variant: endpoint.InOut, Method: "POST", Path: path}
	return s.CallSync(ctx, d, in, out)
}

// Put uses the specified SyncInvoker to execute an In PUT of the given
// path, sending in as a JSON body and expecting no typed output.
//
// For control over formats and authorization, construct an
// endpoint.Descriptor and use CallSync.
func Put(s SyncInvoker, ctx context.Context, path string, in interface{}) error {
	d := endpoint.Descriptor{Variant: endpoint.In, Method: "PUT", Path: path}
	return s.CallSync(ctx, d, in, nil)
}

// Delete uses the specified SyncInvoker to execute an Empty DELETE of
// the given path.
//
// For control over formats and authorization, construct an
// endpoint.Descriptor and use CallSync.
func Delete(s SyncInvoker, ctx context.Context, path string) error {
	d := endpoint.Descriptor{Variant: endpoint.Empty, Method: "DELETE", Path: path}
	return s.CallSync(ctx, d, nil, nil)
}
