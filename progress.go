// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import "io"

// newProgressReader wraps the response body so byte-level transfer
// progress is converted to fractional completion updates on the
// invocation's progress callback. When no callback is installed the
// body is returned untouched.
func newProgressReader(r io.Reader, total int64, o *callOptions) io.Reader {
	if o.progress == nil {
		return r
	}
	return &progressReader{r: r, total: total, o: o}
}

type progressReader struct {
	r        io.Reader
	total    int64
	received int64
	o        *callOptions
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.received += int64(n)
		fraction := p.fraction()
		p.o.dispatch(func() {
			p.o.progress(fraction)
		})
	}
	return n, err
}

// fraction reports received over expected total, clamped to 1.0 in
// case the server sends more bytes than its declared content length.
// An unknown total reports ProgressUnknown.
func (p *progressReader) fraction() float64 {
	if p.total <= 0 {
		return ProgressUnknown
	}
	f := float64(p.received) / float64(p.total)
	if f > 1 {
		f = 1
	}
	return f
}
