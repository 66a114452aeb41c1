package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/storage"
)

const MaxUploadBytes = 20 << 20

var documentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}

var mediaExtensions = map[string]models.MediaKind{
	".jpg":  models.MediaImage,
	".jpeg": models.MediaImage,
	".png":  models.MediaImage,
	".gif":  models.MediaImage,
	".webp": models.MediaImage,
	".mp4":  models.MediaVideo,
	".mov":  models.MediaVideo,
	".webm": models.MediaVideo,
	".avi":  models.MediaVideo,
}

// IsAllowedDocument reports whether name has a document extension (pdf, doc, docx, xls, xlsx).
func IsAllowedDocument(name string) bool {
	return documentExtensions[strings.ToLower(path.Ext(name))]
}

// UploadRequest is the body accepted by the upload endpoints.
type UploadRequest struct {
	FileName    string `json:"file_name"`
	FileContent string `json:"file_content"`
	FileType    string `json:"file_type,omitempty"`
}

type UploadResponse struct {
	URL      string           `json:"url"`
	FileName string           `json:"file_name"`
	FileID   string           `json:"file_id"`
	FileType models.MediaKind `json:"file_type,omitempty"`
}

type UploadService interface {
	UploadDocument(ctx context.Context, req UploadRequest) (UploadResponse, error)
	UploadMedia(ctx context.Context, req UploadRequest) (UploadResponse, error)
	FileReleaser
}

// FileReleaser removes stored files that no event points to any more.
// Failures are logged, never returned: the event change has already happened.
type FileReleaser interface {
	Release(ctx context.Context, urls ...string)
}

type nopReleaser struct{}

func (nopReleaser) Release(context.Context, ...string) {}

func releaserOrNop(f FileReleaser) FileReleaser {
	if f == nil {
		return nopReleaser{}
	}
	return f
}

// uploadFolders are the key prefixes written by upload.
var uploadFolders = map[string]bool{"documents": true, "photos": true, "videos": true}

type uploadService struct {
	uploader storage.FileUploader
	logger   *slog.Logger
	newID    func() string
}

func NewUploadService(uploader storage.FileUploader, logger *slog.Logger) UploadService {
	return &uploadService{
		uploader: uploader,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
	}
}

func (s *uploadService) UploadDocument(ctx context.Context, req UploadRequest) (UploadResponse, error) {
	ext := strings.ToLower(path.Ext(req.FileName))
	if !documentExtensions[ext] {
		return UploadResponse{}, fmt.Errorf("%w: unsupported document type %q", ErrInvalidUpload, ext)
	}
	return s.upload(ctx, req, "documents", ext, "")
}

func (s *uploadService) UploadMedia(ctx context.Context, req UploadRequest) (UploadResponse, error) {
	ext := strings.ToLower(path.Ext(req.FileName))
	kind := models.MediaKind(req.FileType)
	if kind == "" {
		kind = mediaExtensions[ext]
	}
	if !kind.IsValid() {
		return UploadResponse{}, fmt.Errorf("%w: unsupported media type %q", ErrInvalidUpload, ext)
	}

	folder := "photos"
	if kind == models.MediaVideo {
		folder = "videos"
	}
	return s.upload(ctx, req, folder, ext, kind)
}

func (s *uploadService) upload(ctx context.Context, req UploadRequest, folder, ext string, kind models.MediaKind) (UploadResponse, error) {
	name := strings.TrimSpace(req.FileName)
	if name == "" || req.FileContent == "" {
		return UploadResponse{}, fmt.Errorf("%w: file_name and file_content are required", ErrInvalidUpload)
	}

	content, err := decodeContent(req.FileContent)
	if err != nil {
		return UploadResponse{}, fmt.Errorf("%w: file_content is not valid base64", ErrInvalidUpload)
	}
	if len(content) > MaxUploadBytes {
		return UploadResponse{}, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidUpload, MaxUploadBytes)
	}

	id := s.newID()
	key := fmt.Sprintf("%s/%s%s", folder, id, ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := s.uploader.Upload(ctx, key, contentType, bytes.NewReader(content))
	if err != nil {
		s.logger.ErrorContext(ctx, "file upload failed", slog.String("key", key), slog.Any("error", err))
		return UploadResponse{}, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "file uploaded", slog.String("key", result.Key), slog.Int("bytes", len(content)))
	return UploadResponse{
		URL:      result.Location,
		FileName: name,
		FileID:   id,
		FileType: kind,
	}, nil
}

func (s *uploadService) Release(ctx context.Context, urls ...string) {
	for _, u := range urls {
		key, ok := uploadKeyFromURL(u)
		if !ok {
			s.logger.DebugContext(ctx, "skipping foreign file url", slog.String("url", u))
			continue
		}
		err := s.uploader.Delete(ctx, key)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "file released", slog.String("key", key))
		case errors.Is(err, storage.ErrDeleteUnsupported):
			s.logger.DebugContext(ctx, "file left in place", slog.String("key", key))
		default:
			s.logger.WarnContext(ctx, "file release failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}

// uploadKeyFromURL recovers the "<folder>/<name>" key from a public file URL.
func uploadKeyFromURL(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return "", false
	}
	dir, name := path.Split(path.Clean(parsed.Path))
	folder := path.Base(dir)
	if name == "" || !uploadFolders[folder] {
		return "", false
	}
	return folder + "/" + name, true
}

// decodeContent accepts plain base64 or a data URL ("data:...;base64,...").
func decodeContent(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}
