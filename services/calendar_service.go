package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/repositories"
)

type CalendarService interface {
	// Month returns the grid of approved upcoming events for the month.
	Month(ctx context.Context, year int, month time.Month) (calendar.Month, error)
	// WriteICS exports approved upcoming events; month == 0 exports the whole year.
	WriteICS(ctx context.Context, w io.Writer, year int, month time.Month) error
}

type gridKey struct {
	year    int
	month   time.Month
	version int64
	today   string
}

type calendarService struct {
	eventRepo repositories.EventRepository
	now       func() time.Time

	mu    sync.Mutex
	cache map[gridKey]calendar.Month
}

func NewCalendarService(eventRepo repositories.EventRepository) CalendarService {
	return &calendarService{
		eventRepo: eventRepo,
		now:       time.Now,
		cache:     make(map[gridKey]calendar.Month),
	}
}

func (s *calendarService) Month(ctx context.Context, year int, month time.Month) (calendar.Month, error) {
	if month < time.January || month > time.December {
		return calendar.Month{}, &ValidationError{Fields: map[string]string{"month": "месяц должен быть от 1 до 12"}}
	}

	today := s.now()
	key := gridKey{
		year:    year,
		month:   month,
		version: s.eventRepo.Version(),
		today:   today.Format(models.DateLayout),
	}

	s.mu.Lock()
	if m, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return m, nil
	}
	s.mu.Unlock()

	events, err := s.upcoming(ctx)
	if err != nil {
		return calendar.Month{}, err
	}
	m := calendar.Month{
		Year:  year,
		Month: month,
		Title: calendar.MonthTitle(year, month),
		Days:  calendar.BuildMonth(year, month, events, today),
	}

	s.mu.Lock()
	// Entries built for an older version or day are never hit again.
	for k := range s.cache {
		if k.version != key.version || k.today != key.today {
			delete(s.cache, k)
		}
	}
	s.cache[key] = m
	s.mu.Unlock()

	return m, nil
}

func (s *calendarService) WriteICS(ctx context.Context, w io.Writer, year int, month time.Month) error {
	events, err := s.upcoming(ctx)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("%04d-", year)
	name := fmt.Sprintf("Спортивные мероприятия %d", year)
	if month != 0 {
		prefix = fmt.Sprintf("%04d-%02d-", year, int(month))
		name = "Спортивные мероприятия: " + calendar.MonthTitle(year, month)
	}

	selected := make([]models.Event, 0, len(events))
	for _, e := range events {
		if strings.HasPrefix(e.Date, prefix) {
			selected = append(selected, e)
		}
	}
	return calendar.WriteICS(w, name, selected, s.now())
}

func (s *calendarService) upcoming(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return EventFilter{}.Partition(events).Upcoming, nil
}
