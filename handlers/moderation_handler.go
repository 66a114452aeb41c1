package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/services"
)

type ModerationHandler struct {
	moderationService services.ModerationService
}

func NewModerationHandler(ms services.ModerationService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: ms,
	}
}

// ApproveEvent godoc
// @Summary Одобрить мероприятие
// @Tags admin
// @Description Публикует мероприятие и уведомляет автора заявки по email.
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} services.ModerationResult
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Failure 409 {object} map[string]string "Недопустимый переход статуса"
// @Security BearerAuth
// @Router /admin/events/{eventID}/approve [post]
func (h *ModerationHandler) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.moderationService.ApproveEvent(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RejectEvent godoc
// @Summary Отклонить мероприятие из очереди модерации
// @Tags admin
// @Description Удаляет мероприятие и отправляет автору письмо об отказе.
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} services.ModerationResult
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Security BearerAuth
// @Router /admin/events/{eventID}/reject [post]
func (h *ModerationHandler) RejectEvent(w http.ResponseWriter, r *http.Request) {
	h.rejectEvent(w, r, true)
}

// DeleteEvent godoc
// @Summary Удалить мероприятие
// @Tags admin
// @Description Удаление из режима редактирования, без уведомления автора.
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} services.ModerationResult
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Security BearerAuth
// @Router /admin/events/{eventID} [delete]
func (h *ModerationHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	h.rejectEvent(w, r, false)
}

func (h *ModerationHandler) rejectEvent(w http.ResponseWriter, r *http.Request, notify bool) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.moderationService.RejectEvent(r.Context(), eventID, notify)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags admin
// @Produce json
// @Param state query string false "Фильтр по статусу (pending, approved)"
// @Success 200 {object} map[string]interface{} "Пользователи"
// @Failure 400 {object} map[string]string "Неизвестный статус"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *ModerationHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	state := models.ModerationState(strings.TrimSpace(r.URL.Query().Get("state")))
	if state != "" && !state.IsValid() {
		badRequestResponse(w, r, errors.New("invalid state filter"))
		return
	}

	users, err := h.moderationService.Users(r.Context(), state)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"users": users}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ApproveUser godoc
// @Summary Одобрить пользователя
// @Tags admin
// @Produce json
// @Param email path string true "Email пользователя"
// @Success 200 {object} services.ModerationResult
// @Failure 404 {object} map[string]string "Пользователь не найден"
// @Failure 409 {object} map[string]string "Недопустимый переход статуса"
// @Security BearerAuth
// @Router /admin/users/{email}/approve [post]
func (h *ModerationHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	email, err := getEmailFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.moderationService.ApproveUser(r.Context(), email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RejectUser godoc
// @Summary Отклонить пользователя
// @Tags admin
// @Description Удаляет пользователя и отправляет письмо об отказе.
// @Produce json
// @Param email path string true "Email пользователя"
// @Success 200 {object} services.ModerationResult
// @Failure 404 {object} map[string]string "Пользователь не найден"
// @Security BearerAuth
// @Router /admin/users/{email}/reject [post]
func (h *ModerationHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	email, err := getEmailFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.moderationService.RejectUser(r.Context(), email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func getEmailFromURL(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "email")
	email, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.New("invalid email in URL path")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("missing email in URL path")
	}
	return email, nil
}
