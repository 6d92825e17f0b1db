package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"heritageloom/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFormEncodesFieldsAndFiles(t *testing.T) {
	var gotContentType string
	var gotFields url.Values
	var gotFileNames []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = url.Values(r.MultipartForm.Value)
		for _, headers := range r.MultipartForm.File {
			for _, h := range headers {
				gotFileNames = append(gotFileNames, h.Filename)
			}
		}
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	transport := NewTransport(server.URL, time.Second)
	fields := url.Values{"title": {"Rug A"}, "ref_number": {"R-1"}}
	files := []File{{Field: "images[0]", Name: "a.jpg", Data: []byte("jpegbytes")}}

	_, err := transport.RequestForm(context.Background(), http.MethodPost, "/products", fields, files)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="))
	assert.Equal(t, "Rug A", gotFields.Get("title"))
	assert.Equal(t, "R-1", gotFields.Get("ref_number"))
	assert.Equal(t, []string{"a.jpg"}, gotFileNames)
}

func TestNon2xxCarriesStatusAndRawText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("ref_number already exists"))
	}))
	defer server.Close()

	transport := NewTransport(server.URL, time.Second)
	_, err := transport.RequestJSON(context.Background(), http.MethodGet, "/products", nil, nil)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "TRANSPORT_ERROR", appErr.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Equal(t, "ref_number already exists", appErr.Message)
}

func TestNetworkFailureHasNoStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	transport := NewTransport(server.URL, time.Second)
	_, err := transport.RequestJSON(context.Background(), http.MethodGet, "/products", nil, nil)

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "TRANSPORT_ERROR", appErr.Code)
	assert.Equal(t, 0, appErr.Status)
}

func TestNonJSONSuccessBodyIsEmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	transport := NewTransport(server.URL, time.Second)
	raw, err := transport.RequestJSON(context.Background(), http.MethodPost, "/blog/1/publish", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestTimeoutSurfacesAsTransportError(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	transport := NewTransport(server.URL, 50*time.Millisecond)
	_, err := transport.RequestJSON(context.Background(), http.MethodGet, "/blogs", nil, nil)

	<-started
	require.Error(t, err)
	assert.True(t, errors.Is(err, "TRANSPORT_ERROR"))
}

func TestAbsoluteURLsBypassBase(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"url":"https://cdn.example/x.jpg"}`))
	}))
	defer server.Close()

	transport := NewTransport("http://backend.invalid/api", time.Second)
	uploader := NewUploader(transport, server.URL+"/side/upload")

	url, err := uploader.UploadImage(context.Background(), "x.jpg", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "/side/upload", gotPath)
	assert.Equal(t, "https://cdn.example/x.jpg", url)
}
