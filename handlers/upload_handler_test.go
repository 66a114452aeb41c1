package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/Dosada05/sports-calendar/services"
)

func TestUploadDocument(t *testing.T) {
	ts := newTestServer(t)

	req := services.UploadRequest{
		FileName:    "Положение.pdf",
		FileContent: base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
	}
	rec := ts.do(t, http.MethodPost, "/api/uploads/document", req, "")
	expectStatus(t, rec, http.StatusCreated)

	var resp services.UploadResponse
	decode(t, rec, &resp)
	if !strings.HasPrefix(resp.URL, "https://files.example/documents/") || !strings.HasSuffix(resp.URL, ".pdf") {
		t.Errorf("url = %q", resp.URL)
	}
	if resp.FileName != "Положение.pdf" || resp.FileID == "" {
		t.Errorf("resp = %+v", resp)
	}
	if got := len(ts.uploader.objects); got != 1 {
		t.Errorf("stored objects = %d, want 1", got)
	}
}

func TestUploadRejectsBadFiles(t *testing.T) {
	ts := newTestServer(t)
	content := base64.StdEncoding.EncodeToString([]byte("data"))

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"exe document", "/api/uploads/document", services.UploadRequest{FileName: "virus.exe", FileContent: content}, http.StatusBadRequest},
		{"bad base64", "/api/uploads/document", services.UploadRequest{FileName: "a.pdf", FileContent: "***"}, http.StatusBadRequest},
		{"empty content", "/api/uploads/media", services.UploadRequest{FileName: "a.jpg"}, http.StatusBadRequest},
		{"unknown media", "/api/uploads/media", services.UploadRequest{FileName: "a.txt", FileContent: content}, http.StatusBadRequest},
		{"photo", "/api/uploads/media", services.UploadRequest{FileName: "finish.jpg", FileContent: content}, http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, ts.do(t, http.MethodPost, tt.path, tt.body, ""), tt.want)
		})
	}
}
