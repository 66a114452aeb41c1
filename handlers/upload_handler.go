package handlers

import (
	"context"
	"net/http"

	"github.com/Dosada05/sports-calendar/services"
)

// Base64 inflates the payload by a third, plus room for the JSON envelope.
const maxUploadBodyBytes = services.MaxUploadBytes/3*4 + 64*1024

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(us services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: us,
	}
}

// UploadDocument godoc
// @Summary Загрузить документ
// @Tags uploads
// @Description Положение, регламент и т.п. Допустимы pdf, doc, docx, xls, xlsx.
// @Accept json
// @Produce json
// @Param body body services.UploadRequest true "Имя файла и содержимое в base64"
// @Success 201 {object} services.UploadResponse
// @Failure 400 {object} map[string]string "Недопустимый файл"
// @Failure 500 {object} map[string]string "Ошибка хранилища"
// @Router /uploads/document [post]
func (h *UploadHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.uploadService.UploadDocument)
}

// UploadMedia godoc
// @Summary Загрузить фото или видео
// @Tags uploads
// @Accept json
// @Produce json
// @Param body body services.UploadRequest true "Имя файла, содержимое в base64 и тип (image|video)"
// @Success 201 {object} services.UploadResponse
// @Failure 400 {object} map[string]string "Недопустимый файл"
// @Failure 500 {object} map[string]string "Ошибка хранилища"
// @Router /uploads/media [post]
func (h *UploadHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, h.uploadService.UploadMedia)
}

func (h *UploadHandler) upload(
	w http.ResponseWriter,
	r *http.Request,
	do func(ctx context.Context, req services.UploadRequest) (services.UploadResponse, error),
) {
	var req services.UploadRequest
	if err := readJSONLimit(w, r, &req, maxUploadBodyBytes); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	resp, err := do(r.Context(), req)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
