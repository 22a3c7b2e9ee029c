// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/fitness-api/internal/pipeline"
	"github.com/MKhiriev/fitness-api/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// bodyParser decodes JSON request bodies. Requests with other media types
// pass through untouched.
type bodyParser struct {
	limit int64
}

func newBodyParserStage(limit int64) pipeline.Stage {
	p := &bodyParser{limit: limit}
	return pipeline.NewStage(StageBodyParser, p.process)
}

func (p *bodyParser) process(x *pipeline.Exchange) (*pipeline.Response, error) {
	r := x.Request

	contentType := r.Header.Get("Content-Type")
	if !isJSONMediaType(contentType) {
		return nil, nil
	}

	if err := checkCharset(contentType); err != nil {
		return nil, err
	}

	if r.ContentLength > p.limit && !hasContentEncoding(r) {
		return nil, fmt.Errorf("%w: content length %d exceeds %d", pipeline.ErrBodyTooLarge, r.ContentLength, p.limit)
	}

	raw, err := p.read(r)
	if err != nil {
		return nil, err
	}

	value, err := parseJSON(raw, contentType)
	if err != nil {
		return nil, err
	}

	r = r.WithContext(context.WithValue(r.Context(), utils.BodyCtxKey, value))
	r.Body = io.NopCloser(bytes.NewReader(raw))
	r.ContentLength = int64(len(raw))
	r.Header.Del("Content-Encoding")
	r.Header.Set("Content-Length", strconv.Itoa(len(raw)))

	x.Request = r
	return nil, nil
}

// read returns the decoded body, reading at most limit bytes after
// decompression.
func (p *bodyParser) read(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()

	body, release, err := decodeContent(r)
	if err != nil {
		return nil, err
	}
	defer release()

	raw, err := io.ReadAll(io.LimitReader(body, p.limit+1))
	if err != nil {
		return nil, &pipeline.ParseError{ContentType: r.Header.Get("Content-Type"), Err: err}
	}

	if int64(len(raw)) > p.limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", pipeline.ErrBodyTooLarge, p.limit)
	}

	return raw, nil
}

// decodeContent wraps the body in a decompressor for its Content-Encoding.
func decodeContent(r *http.Request) (io.Reader, func(), error) {
	encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
	contentType := r.Header.Get("Content-Type")

	switch encoding {
	case "", "identity":
		return r.Body, func() {}, nil

	case "gzip":
		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			return nil, nil, &pipeline.ParseError{ContentType: contentType, Err: err}
		}

		return gzipReader, func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		}, nil

	case "deflate":
		zlibReader, err := zlib.NewReader(r.Body)
		if err != nil {
			return nil, nil, &pipeline.ParseError{ContentType: contentType, Err: err}
		}

		return zlibReader, func() { zlibReader.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", pipeline.ErrUnsupportedEncoding, encoding)
	}
}

// parseJSON decodes raw in strict mode: only an object or an array is
// accepted at the top level. An empty body decodes to an empty object.
func parseJSON(raw []byte, contentType string) (any, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	if trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, &pipeline.ParseError{ContentType: contentType, Err: errors.New("top-level value must be an object or an array")}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, &pipeline.ParseError{ContentType: contentType, Err: err}
	}

	return value, nil
}

// isJSONMediaType reports whether contentType is application/json or an
// application/*+json type.
func isJSONMediaType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	if mediaType == "application/json" {
		return true
	}

	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

func checkCharset(contentType string) error {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}

	charset, ok := params["charset"]
	if !ok {
		return nil
	}

	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return nil
	default:
		return fmt.Errorf("%w: charset %q", pipeline.ErrUnsupportedEncoding, charset)
	}
}

func hasContentEncoding(r *http.Request) bool {
	encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
	return encoding != "" && encoding != "identity"
}
