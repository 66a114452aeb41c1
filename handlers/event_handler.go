package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/sports-calendar/middleware"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/services"
)

type EventHandler struct {
	eventService services.EventService
	logger       *slog.Logger
}

func NewEventHandler(es services.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventService: es,
		logger:       logger,
	}
}

// Dictionaries godoc
// @Summary Справочники видов спорта, уровней и типов мероприятий
// @Tags events
// @Produce json
// @Success 200 {object} models.Dictionaries
// @Router /dictionaries [get]
func (h *EventHandler) Dictionaries(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.eventService.Dictionaries(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListEvents godoc
// @Summary Список одобренных мероприятий
// @Tags events
// @Description Возвращает предстоящие и прошедшие мероприятия с учетом фильтров.
// @Produce json
// @Param sport query string false "Вид спорта (all - без фильтра)"
// @Param search query string false "Поиск по названию, месту, организатору и номеру мероприятия"
// @Success 200 {object} services.EventLists
// @Failure 500 {object} map[string]string "Внутренняя ошибка"
// @Router /events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.EventFilter{
		Sport:  models.Sport(strings.TrimSpace(q.Get("sport"))),
		Search: q.Get("search"),
	}

	lists, err := h.eventService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, lists, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetEventByID godoc
// @Summary Получить мероприятие по ID
// @Tags events
// @Description Неодобренные мероприятия видны только администратору и автору заявки.
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} map[string]interface{} "Мероприятие"
// @Failure 400 {object} map[string]string "Некорректный ID"
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Router /events/{eventID} [get]
func (h *EventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.Get(r.Context(), eventID, middleware.SessionFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateEvent godoc
// @Summary Подать мероприятие
// @Tags events
// @Description Мероприятие администратора публикуется сразу, остальные попадают на модерацию.
// @Accept json
// @Produce json
// @Param body body models.EventDraft true "Данные мероприятия"
// @Success 201 {object} map[string]interface{} "Мероприятие создано"
// @Failure 400 {object} map[string]string "Некорректный запрос"
// @Failure 422 {object} map[string]interface{} "Не заполнены обязательные поля"
// @Router /events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var draft models.EventDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.Submit(r.Context(), draft, middleware.SessionFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterForEvent godoc
// @Summary Записаться на мероприятие
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 201 {object} map[string]interface{} "Регистрация и обновленное мероприятие"
// @Failure 400 {object} map[string]string "Некорректный ID"
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Failure 409 {object} map[string]string "Мест нет / регистрация закрыта"
// @Router /events/{eventID}/register [post]
func (h *EventHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registration, event, err := h.eventService.Register(r.Context(), eventID, middleware.SessionFromContext(r.Context()))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": registration, "event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPendingEvents godoc
// @Summary Очередь модерации мероприятий
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Мероприятия в ожидании"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Security BearerAuth
// @Router /admin/events/pending [get]
func (h *EventHandler) ListPendingEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.Pending(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MyRegistrations godoc
// @Summary Мои регистрации на мероприятия
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Регистрации пользователя"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Только для пользователей"
// @Security BearerAuth
// @Router /me/registrations [get]
func (h *EventHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session.UserEmail() == nil {
		forbiddenResponse(w, r, "registrations are available for user sessions only")
		return
	}

	regs, err := h.eventService.MyRegistrations(r.Context(), session)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrations": regs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListRegistrations godoc
// @Summary Регистрации на мероприятие
// @Tags admin
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} map[string]interface{} "Регистрации"
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Security BearerAuth
// @Router /admin/events/{eventID}/registrations [get]
func (h *EventHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	regs, err := h.eventService.Registrations(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrations": regs}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateEvent godoc
// @Summary Редактировать мероприятие
// @Tags admin
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body models.EventPatch true "Изменяемые поля"
// @Success 200 {object} map[string]interface{} "Обновленное мероприятие"
// @Failure 400 {object} map[string]string "Некорректный запрос"
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /admin/events/{eventID} [patch]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var patch models.EventPatch
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.Edit(r.Context(), eventID, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportRegistrations godoc
// @Summary Выгрузка регистраций мероприятия в CSV
// @Tags admin
// @Produce text/csv
// @Param eventID path int true "Event ID"
// @Success 200 {file} file "CSV"
// @Failure 404 {object} map[string]string "Мероприятие не найдено"
// @Security BearerAuth
// @Router /admin/events/{eventID}/registrations.csv [get]
func (h *EventHandler) ExportRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.eventService.WriteRegistrationsCSV(r.Context(), eventID, &buf); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="event-%d-registrations.csv"`, eventID))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write csv export", slog.Int("event_id", eventID), slog.Any("error", err))
	}
}
