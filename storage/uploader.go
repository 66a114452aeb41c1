package storage

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// UploadResult describes a stored object. Location is its public URL.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores event attachments (documents, photos, videos).
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// joinPublicURL resolves key against base, keeping any path prefix of base.
func joinPublicURL(base, key string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}
	pathURL, err := url.Parse(strings.TrimPrefix(key, "/"))
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(pathURL).String(), nil
}
