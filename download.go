// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package restx

import (
	"io"
	"os"
)

// downloadBody streams the response body to a freshly created
// temporary file and returns its path. On any failure the partial file
// is removed; temp-file and copy failures both mean the response could
// not be materialized, so callers classify them as connectivity
// failures.
func downloadBody(r io.Reader) (string, error) {
	f, err := os.CreateTemp("", "restx-*.download")
	if err != nil {
		return "", err
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
