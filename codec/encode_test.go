// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/restx/endpoint"
)

type credentials struct {
	Username string `json:"username" schema:"username"`
	Password string `json:"password" schema:"password"`
}

func TestEncodeJSON(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		body, contentType, err := EncodeBody(endpoint.JSON, &credentials{Username: "u", Password: "p"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, `{"username":"u","password":"p"}`, string(body))
	})
	t.Run("format none defaults to JSON", func(t *testing.T) {
		body, contentType, err := EncodeBody(endpoint.FormatNone, map[string]int{"n": 1}, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, `{"n":1}`, string(body))
	})
	t.Run("indent", func(t *testing.T) {
		s := NewEncoderSettings()
		s.JSONIndent = "  "
		body, _, err := EncodeBody(endpoint.JSON, map[string]int{"n": 1}, s)
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"n\": 1\n}", string(body))
	})
	t.Run("html escaping", func(t *testing.T) {
		escaped, _, err := EncodeBody(endpoint.JSON, map[string]string{"h": "<b>"}, nil)
		require.NoError(t, err)
		assert.Contains(t, string(escaped), "\\u003cb\\u003e")

		s := NewEncoderSettings()
		s.JSONEscapeHTML = false
		raw, _, err := EncodeBody(endpoint.JSON, map[string]string{"h": "<b>"}, s)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "<b>")
	})
}

func TestEncodeXML(t *testing.T) {
	type note struct {
		XMLName struct{} `xml:"note"`
		Text    string   `xml:"text"`
	}
	body, contentType, err := EncodeBody(endpoint.XML, &note{Text: "hi"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/xml", contentType)
	assert.Equal(t, "<note><text>hi</text></note>", string(body))
}

func TestEncodeFormURLEncoded(t *testing.T) {
	body, contentType, err := EncodeBody(endpoint.FormURLEncoded, &credentials{Username: "u&x", Password: "p"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	// url.Values.Encode sorts keys, so the output is deterministic.
	assert.Equal(t, "password=p&username=u%26x", string(body))
}

func TestQueryValues(t *testing.T) {
	type search struct {
		Query string    `schema:"q"`
		Limit int       `schema:"limit"`
		Since time.Time `schema:"since"`
	}
	since := time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)
	v, err := QueryValues(&search{Query: "ham", Limit: 10, Since: since}, nil)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"q":     {"ham"},
		"limit": {"10"},
		"since": {"2026-05-04T03:02:01Z"},
	}, v)
}

func TestQueryValuesTimeLayout(t *testing.T) {
	type window struct {
		Day time.Time `schema:"day"`
	}
	s := NewEncoderSettings()
	s.TimeLayout = "2006-01-02"
	v, err := QueryValues(&window{Day: time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC)}, s)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-04", v.Get("day"))
}

func TestEncodeFormData(t *testing.T) {
	type upload struct {
		Name    string `schema:"name"`
		Avatar  []byte `schema:"avatar"`
		Skipped string `schema:"-"`
	}
	in := &upload{Name: "karl", Avatar: []byte{0x1, 0x2, 0x3}, Skipped: "no"}

	body, contentType, err := EncodeBody(endpoint.FormData, in, nil)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	boundary := params["boundary"]
	require.NotEmpty(t, boundary)

	r := multipart.NewReader(bytes.NewReader(body), boundary)
	part1, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "name", part1.FormName())
	b, _ := io.ReadAll(part1)
	assert.Equal(t, "karl", string(b))

	part2, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "avatar", part2.FormName())
	assert.Equal(t, "avatar", part2.FileName())
	b, _ = io.ReadAll(part2)
	assert.Equal(t, []byte{0x1, 0x2, 0x3}, b)

	_, err = r.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestEncodeFormDataBoundary(t *testing.T) {
	in := &credentials{Username: "u", Password: "p"}

	t.Run("generated boundaries differ, content does not", func(t *testing.T) {
		body1, ct1, err := EncodeBody(endpoint.FormData, in, nil)
		require.NoError(t, err)
		body2, ct2, err := EncodeBody(endpoint.FormData, in, nil)
		require.NoError(t, err)

		_, p1, _ := mime.ParseMediaType(ct1)
		_, p2, _ := mime.ParseMediaType(ct2)
		assert.NotEqual(t, p1["boundary"], p2["boundary"])

		// Normalizing the boundary token makes the bodies identical.
		n1 := strings.ReplaceAll(string(body1), p1["boundary"], "B")
		n2 := strings.ReplaceAll(string(body2), p2["boundary"], "B")
		assert.Equal(t, n1, n2)
	})
	t.Run("boundary override", func(t *testing.T) {
		s := NewEncoderSettings()
		s.Boundary = "fixedboundarytoken"
		body1, _, err := EncodeBody(endpoint.FormData, in, s)
		require.NoError(t, err)
		body2, _, err := EncodeBody(endpoint.FormData, in, s)
		require.NoError(t, err)
		assert.Equal(t, body1, body2)
		assert.Contains(t, string(body1), "fixedboundarytoken")
	})
}

func TestEncodeBodyErrors(t *testing.T) {
	_, _, err := EncodeBody(endpoint.URLQuery, &credentials{}, nil)
	assert.Error(t, err)
	_, _, err = EncodeBody(endpoint.Format(42), &credentials{}, nil)
	assert.Error(t, err)
	_, _, err = EncodeBody(endpoint.FormData, "not a struct", nil)
	assert.Error(t, err)
	_, _, err = EncodeBody(endpoint.FormData, (*credentials)(nil), nil)
	assert.Error(t, err)
}
