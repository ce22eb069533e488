// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(errors.New("foo")))
	assert.Equal(t, Unknown, KindOf(wrapper{errors.New("bar")}))
	assert.Equal(t, Connectivity, KindOf(NewConnectivity(syscall.ECONNREFUSED)))
	assert.Equal(t, Configuration, KindOf(Configurationf("bad %s", "path")))
	assert.Equal(t, Validation, KindOf(NewValidation(errors.New("rejected"))))
	assert.Equal(t, Service, KindOf(NewService(401, errors.New("bad credentials"))))
	assert.Equal(t, Status, KindOf(NewStatus(500, []byte("oops"))))
	assert.Equal(t, Decoding, KindOf(NewDecoding(errors.New("unexpected EOF"))))
	// Classification survives further wrapping.
	assert.Equal(t, Decoding, KindOf(wrapper{NewDecoding(errors.New("x"))}))
	assert.Equal(t, Status, KindOf(fmt.Errorf("outer: %w", NewStatus(404, nil))))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("offline")
	err := NewConnectivity(cause)
	assert.True(t, errors.Is(err, cause))

	svc := &serviceError{Message: "no such user"}
	var got *serviceError
	require.True(t, errors.As(NewService(404, svc), &got))
	assert.Equal(t, "no such user", got.Message)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "restx: connectivity: dial tcp: timeout",
		NewConnectivity(errors.New("dial tcp: timeout")).Error())
	assert.Equal(t, "restx: service error (HTTP 401): bad credentials",
		NewService(401, errors.New("bad credentials")).Error())
	assert.Equal(t, "restx: HTTP 502: <html>bad gateway</html>",
		NewStatus(502, []byte("<html>bad gateway</html>")).Error())
	assert.Equal(t, "restx: HTTP 204", NewStatus(204, nil).Error())
}

func TestStatusSnippetTruncation(t *testing.T) {
	body := []byte(strings.Repeat("x", 1000))
	err := NewStatus(500, body)
	assert.Len(t, err.Snippet, 256)
	assert.Equal(t, 500, err.StatusCode)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Connectivity", Connectivity.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

type wrapper struct {
	wrappedError error
}

func (err wrapper) Error() string {
	return fmt.Sprintf("wrapper - wraps %v", err.wrappedError)
}

func (err wrapper) Unwrap() error {
	return err.wrappedError
}

type serviceError struct {
	Message string `json:"message"`
}

func (e *serviceError) Error() string {
	return e.Message
}
