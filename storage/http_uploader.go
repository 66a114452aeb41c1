package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

var ErrDeleteUnsupported = errors.New("upload endpoint does not support deletion")

const defaultUploadTimeout = 60 * time.Second

type HTTPUploaderConfig struct {
	EndpointURL   string
	PublicBaseURL string // optional, used by GetPublicURL
	Client        *http.Client
}

type httpUploader struct {
	endpoint      string
	publicBaseURL string
	client        *http.Client
}

type httpUploadRequest struct {
	FileName    string `json:"file_name"`
	FileContent string `json:"file_content"`
	FileType    string `json:"file_type,omitempty"`
}

type httpUploadResponse struct {
	URL    string `json:"url"`
	FileID string `json:"file_id,omitempty"`
}

// NewHTTPUploader sends files to an external upload endpoint as base64 JSON
// and takes the object URL from its response.
func NewHTTPUploader(cfg HTTPUploaderConfig) (FileUploader, error) {
	if cfg.EndpointURL == "" {
		return nil, errors.New("upload endpoint URL is required")
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: defaultUploadTimeout}
	}
	return &httpUploader{
		endpoint:      cfg.EndpointURL,
		publicBaseURL: cfg.PublicBaseURL,
		client:        client,
	}, nil
}

func (u *httpUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body (key: %s): %w", key, err)
	}

	payload, err := json.Marshal(httpUploadRequest{
		FileName:    key,
		FileContent: base64.StdEncoding.EncodeToString(content),
		FileType:    fileTypeTag(key, contentType),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed (key: %s): %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload endpoint returned %d (key: %s): %s", resp.StatusCode, key, bytes.TrimSpace(detail))
	}

	var out httpUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.URL == "" {
		return nil, fmt.Errorf("upload endpoint returned no url (key: %s)", key)
	}

	return &UploadResult{Key: key, Location: out.URL, ETag: out.FileID}, nil
}

func (u *httpUploader) Delete(ctx context.Context, key string) error {
	return ErrDeleteUnsupported
}

func (u *httpUploader) GetPublicURL(key string) string {
	if u.publicBaseURL == "" || key == "" {
		return ""
	}
	full, err := joinPublicURL(u.publicBaseURL, key)
	if err != nil {
		return ""
	}
	return full
}

// fileTypeTag derives the endpoint's optional kind tag from the key folder.
func fileTypeTag(key, contentType string) string {
	switch strings.SplitN(path.Clean(key), "/", 2)[0] {
	case "photos":
		return "image"
	case "videos":
		return "video"
	case "documents":
		return "document"
	}
	return contentType
}
