// Package rest implements the typed client for the storefront backend: a
// thin HTTP transport, per-resource endpoint descriptors, and a generic CRUD
// client that normalizes the backend's inconsistent response envelopes.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"heritageloom/pkg/errors"
	"heritageloom/pkg/logger"

	"github.com/google/uuid"
)

// File is one named attachment for a multipart request. The content is
// passed through to the wire untouched.
type File struct {
	Field string
	Name  string
	Data  []byte
}

// Transport executes requests against the backend. All paths are resolved
// relative to the configured base URL unless already absolute, which the
// editor-upload side-channel relies on.
type Transport struct {
	baseURL string
	client  *http.Client
}

func NewTransport(baseURL string, timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (t *Transport) resolve(path string, query url.Values) string {
	u := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		u = t.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// RequestJSON issues a request with an optional JSON body. A nil body sends
// no payload at all, which the publish/unpublish actions require.
func (t *Transport) RequestJSON(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Internal("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return t.do(ctx, method, t.resolve(path, query), contentType, reader)
}

// RequestForm issues a multipart/form-data request carrying all scalar
// fields plus zero or more files. The multipart content type with its
// boundary comes from the writer; callers must not set their own.
func (t *Transport) RequestForm(ctx context.Context, method, path string, fields url.Values, files []File) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				return nil, errors.Internal("failed to encode form field "+key, err)
			}
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return nil, errors.Internal("failed to encode file "+file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, errors.Internal("failed to encode file "+file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Internal("failed to finalize form body", err)
	}

	return t.do(ctx, method, t.resolve(path, nil), writer.FormDataContentType(), &buf)
}

func (t *Transport) do(ctx context.Context, method, url, contentType string, body io.Reader) (json.RawMessage, error) {
	requestID := uuid.New().String()[:8]

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Internal("failed to build request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logger.Debug("[%s] %s %s", requestID, method, url)

	resp, err := t.client.Do(req)
	if err != nil {
		logger.Warn("[%s] request failed: %v", requestID, err)
		return nil, errors.Transport(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport(resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the backend returns plain-text errors as often as JSON ones; keep
		// the raw text so callers can show it
		logger.Warn("[%s] %s %s -> %d", requestID, method, url, resp.StatusCode)
		return nil, errors.Transport(resp.StatusCode, strings.TrimSpace(string(raw)), nil)
	}

	if !json.Valid(raw) {
		// some write actions answer 200 with an empty or non-JSON body;
		// treat the call as successful with no payload
		return nil, nil
	}
	return json.RawMessage(raw), nil
}
