// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"mime/multipart"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/gogama/restx/endpoint"
)

// EncodeBody encodes the input value as a request body in the given
// format and returns the body bytes together with the content type to
// send.
//
// The supported formats are:
//
// • endpoint.JSON (and endpoint.FormatNone): a JSON document, compact
// unless EncoderSettings.JSONIndent is set.
//
// • endpoint.FormURLEncoded: the input's fields percent-encoded as
// application/x-www-form-urlencoded. Field order is the sorted key
// order of url.Values.Encode, so output is deterministic.
//
// • endpoint.FormData: a multipart/form-data body. Fields of type
// []byte become file parts; all other fields become ordinary form
// fields. The boundary token is freshly generated per call unless
// EncoderSettings.Boundary overrides it, so two encodings of the same
// input differ only in the boundary.
//
// • endpoint.XML: an XML document.
//
// endpoint.URLQuery produces no body; callers encode it into the URL
// with QueryValues instead, and EncodeBody returns an error for it.
//
// A nil settings value uses NewEncoderSettings defaults.
func EncodeBody(f endpoint.Format, in interface{}, s *EncoderSettings) (body []byte, contentType string, err error) {
	if s == nil {
		s = NewEncoderSettings()
	}
	switch f {
	case endpoint.JSON, endpoint.FormatNone:
		return encodeJSON(in, s)
	case endpoint.FormURLEncoded:
		v, err := QueryValues(in, s)
		if err != nil {
			return nil, "", err
		}
		return []byte(v.Encode()), "application/x-www-form-urlencoded", nil
	case endpoint.FormData:
		return encodeMultipart(in, s)
	case endpoint.XML:
		return encodeXML(in, s)
	case endpoint.URLQuery:
		return nil, "", fmt.Errorf("codec: format %s produces no body (use QueryValues)", f)
	default:
		return nil, "", fmt.Errorf("codec: invalid input format %s", f)
	}
}

// QueryValues encodes the input value's fields into url.Values for use
// as a URL query string or a form body. Input must be a struct or a
// non-nil pointer to one; field names follow the "schema" struct tag,
// defaulting to the Go field name. time.Time fields are rendered with
// EncoderSettings.TimeLayout.
func QueryValues(in interface{}, s *EncoderSettings) (url.Values, error) {
	if s == nil {
		s = NewEncoderSettings()
	}
	enc := schema.NewEncoder()
	layout := s.TimeLayout
	if layout == "" {
		layout = time.RFC3339
	}
	enc.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		return v.Interface().(time.Time).Format(layout)
	})
	v := url.Values{}
	if err := enc.Encode(in, v); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeJSON(in interface{}, s *EncoderSettings) ([]byte, string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(s.JSONEscapeHTML)
	if s.JSONIndent != "" {
		enc.SetIndent("", s.JSONIndent)
	}
	if err := enc.Encode(in); err != nil {
		return nil, "", err
	}
	// json.Encoder terminates the stream with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), "application/json", nil
}

func encodeXML(in interface{}, s *EncoderSettings) ([]byte, string, error) {
	var b []byte
	var err error
	if s.XMLIndent != "" {
		b, err = xml.MarshalIndent(in, "", s.XMLIndent)
	} else {
		b, err = xml.Marshal(in)
	}
	if err != nil {
		return nil, "", err
	}
	return b, "application/xml", nil
}

var byteSliceType = reflect.TypeOf([]byte(nil))

func encodeMultipart(in interface{}, s *EncoderSettings) ([]byte, string, error) {
	rv := reflect.ValueOf(in)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, "", fmt.Errorf("codec: nil input for multipart body")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, "", fmt.Errorf("codec: multipart input must be a struct, got %T", in)
	}

	// Raw byte fields become file parts, in declaration order. All
	// remaining fields go through the form encoder.
	type filePart struct {
		name string
		data []byte
	}
	var files []filePart
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		name := multipartFieldName(sf)
		if name == "" {
			continue
		}
		if sf.Type == byteSliceType {
			files = append(files, filePart{name: name, data: rv.Field(i).Bytes()})
		}
	}

	vals, err := QueryValues(in, s)
	if err != nil {
		return nil, "", err
	}
	for _, fp := range files {
		vals.Del(fp.name)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	boundary := s.Boundary
	if boundary == "" {
		boundary = "restx" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if err := w.SetBoundary(boundary); err != nil {
		return nil, "", err
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range vals[k] {
			if err := w.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}
	for _, fp := range files {
		pw, err := w.CreateFormFile(fp.name, fp.name)
		if err != nil {
			return nil, "", err
		}
		if _, err := pw.Write(fp.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// multipartFieldName resolves a struct field's form name the same way
// the gorilla/schema encoder does: "schema" tag first, Go field name
// otherwise, "-" meaning skip.
func multipartFieldName(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("schema"); ok {
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}
