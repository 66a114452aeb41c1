package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/services"
)

type CalendarHandler struct {
	calendarService services.CalendarService
	logger          *slog.Logger
	now             func() time.Time
}

func NewCalendarHandler(cs services.CalendarService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: cs,
		logger:          logger,
		now:             time.Now,
	}
}

type monthRef struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// parseYearMonth reads ?year=&month= falling back to the current month.
// When allowWholeYear is set, a year without month selects month 0.
func (h *CalendarHandler) parseYearMonth(r *http.Request, allowWholeYear bool) (int, time.Month, error) {
	now := h.now()
	q := r.URL.Query()

	year := now.Year()
	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, fmt.Errorf("invalid year value: %q", v)
		}
		year = y
	}

	month := now.Month()
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month value: %q", v)
		}
		month = time.Month(m)
	} else if allowWholeYear && q.Get("year") != "" {
		month = 0
	}
	return year, month, nil
}

// GetMonth godoc
// @Summary Календарная сетка месяца
// @Tags calendar
// @Description Сетка начинается с воскресенья; в днях перечислены одобренные предстоящие мероприятия.
// @Produce json
// @Param year query int false "Год (по умолчанию текущий)"
// @Param month query int false "Месяц 1-12 (по умолчанию текущий)"
// @Success 200 {object} map[string]interface{} "Сетка и ссылки на соседние месяцы"
// @Failure 400 {object} map[string]string "Некорректные параметры"
// @Router /calendar [get]
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.parseYearMonth(r, false)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	grid, err := h.calendarService.Month(r.Context(), year, month)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	prevYear, prevMonth := calendar.Shift(year, month, -1)
	nextYear, nextMonth := calendar.Shift(year, month, 1)
	resp := jsonResponse{
		"calendar": grid,
		"prev":     monthRef{Year: prevYear, Month: prevMonth},
		"next":     monthRef{Year: nextYear, Month: nextMonth},
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportICS godoc
// @Summary Экспорт мероприятий в iCalendar
// @Tags calendar
// @Description Если указан только год, выгружается весь год.
// @Produce text/calendar
// @Param year query int false "Год"
// @Param month query int false "Месяц 1-12"
// @Success 200 {file} file "ICS"
// @Failure 400 {object} map[string]string "Некорректные параметры"
// @Router /calendar.ics [get]
func (h *CalendarHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	year, month, err := h.parseYearMonth(r, true)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.calendarService.WriteICS(r.Context(), &buf, year, month); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	filename := fmt.Sprintf("sports-%04d.ics", year)
	if month != 0 {
		filename = fmt.Sprintf("sports-%04d-%02d.ics", year, int(month))
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write ics export", slog.Any("error", err))
	}
}
