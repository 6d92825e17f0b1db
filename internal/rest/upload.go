package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"heritageloom/pkg/errors"
)

// Uploader is the rich-text editor's image side-channel: a single multipart
// field named "image" posted to a dedicated URL, answered with {url}.
type Uploader struct {
	transport *Transport
	uploadURL string
}

func NewUploader(transport *Transport, uploadURL string) *Uploader {
	return &Uploader{transport: transport, uploadURL: uploadURL}
}

func (u *Uploader) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	raw, err := u.transport.RequestForm(ctx, http.MethodPost, u.uploadURL, url.Values{}, []File{
		{Field: "image", Name: filename, Data: data},
	})
	if err != nil {
		return "", err
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &result); err != nil || result.URL == "" {
		return "", errors.Decode("upload response missing url", err)
	}
	return result.URL, nil
}
