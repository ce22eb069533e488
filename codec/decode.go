// Copyright 2026 The restx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/gogama/restx/endpoint"
)

// Decode decodes buffered response body bytes into out according to
// the given output format. Out must be a non-nil pointer. Only
// endpoint.JSON (the endpoint.FormatNone default) and endpoint.XML are
// valid output formats.
//
// A nil settings value uses NewDecoderSettings defaults.
func Decode(f endpoint.Format, data []byte, out interface{}, s *DecoderSettings) error {
	return decodeReader(f, bytes.NewReader(data), out, s)
}

// DecodeFile decodes the contents of the file at path into out
// according to the given output format, streaming rather than
// buffering the file. It is used by the download variant of the
// pipeline.
func DecodeFile(f endpoint.Format, path string, out interface{}, s *DecoderSettings) error {
	fl, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fl.Close()
	return decodeReader(f, fl, out, s)
}

func decodeReader(f endpoint.Format, r io.Reader, out interface{}, s *DecoderSettings) error {
	if s == nil {
		s = NewDecoderSettings()
	}
	switch f {
	case endpoint.JSON, endpoint.FormatNone:
		dec := json.NewDecoder(r)
		if s.JSONUseNumber {
			dec.UseNumber()
		}
		if s.JSONDisallowUnknownFields {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(out)
	case endpoint.XML:
		dec := xml.NewDecoder(r)
		dec.Strict = !s.XMLLenient
		return dec.Decode(out)
	default:
		return fmt.Errorf("codec: format %s cannot decode a response", f)
	}
}
