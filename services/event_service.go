package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/repositories"
)

type EventService interface {
	Dictionaries() models.Dictionaries
	List(ctx context.Context, filter EventFilter) (EventLists, error)
	Get(ctx context.Context, id int, session *models.Session) (models.Event, error)
	Pending(ctx context.Context) ([]models.Event, error)
	Submit(ctx context.Context, draft models.EventDraft, session *models.Session) (models.Event, error)
	Edit(ctx context.Context, id int, patch models.EventPatch) (models.Event, error)
	Register(ctx context.Context, id int, session *models.Session) (models.Registration, models.Event, error)
	Registrations(ctx context.Context, id int) ([]models.Registration, error)
	MyRegistrations(ctx context.Context, session *models.Session) ([]UserRegistration, error)
	WriteRegistrationsCSV(ctx context.Context, id int, w io.Writer) error
}

// UserRegistration pairs a sign-up with the event it points to. Event is nil
// once the event has been withdrawn from the public calendar.
type UserRegistration struct {
	models.Registration
	Event *models.Event `json:"event,omitempty"`
}

type eventService struct {
	eventRepo        repositories.EventRepository
	registrationRepo repositories.RegistrationRepository
	publisher        Publisher
	files            FileReleaser
	logger           *slog.Logger
	now              func() time.Time
}

func NewEventService(
	eventRepo repositories.EventRepository,
	registrationRepo repositories.RegistrationRepository,
	publisher Publisher,
	files FileReleaser,
	logger *slog.Logger,
) EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		publisher:        publisherOrNop(publisher),
		files:            releaserOrNop(files),
		logger:           logger,
		now:              time.Now,
	}
}

func (s *eventService) Dictionaries() models.Dictionaries {
	return models.BuildDictionaries()
}

func (s *eventService) List(ctx context.Context, filter EventFilter) (EventLists, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return EventLists{}, fmt.Errorf("failed to list events: %w", err)
	}
	return filter.Partition(events), nil
}

// Get hides unapproved events from everyone except the admin and their submitter.
func (s *eventService) Get(ctx context.Context, id int, session *models.Session) (models.Event, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return models.Event{}, mapRepoError(err)
	}
	if e.Approved() || session.IsAdmin() {
		return e, nil
	}
	if email := session.UserEmail(); email != nil && e.SubmittedBy != nil && *email == *e.SubmittedBy {
		return e, nil
	}
	return models.Event{}, ErrEventNotFound
}

func (s *eventService) Pending(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	pending := make([]models.Event, 0)
	for _, e := range events {
		if e.State == models.StatePending {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

func (s *eventService) Submit(ctx context.Context, draft models.EventDraft, session *models.Session) (models.Event, error) {
	e, err := validateEventDraft(draft)
	if err != nil {
		return models.Event{}, err
	}

	e.SubmittedAt = s.now()
	if session.IsAdmin() {
		e.State = models.StateApproved
	} else {
		e.State = models.StatePending
		e.SubmittedBy = session.UserEmail()
	}
	manualNumber := strings.TrimSpace(draft.EventNumber)

	created, err := s.eventRepo.Create(ctx, func(id int) (models.Event, error) {
		e.ID = id
		if number, ok := EventNumberFor(e.EventType, e.EventLevel, e.Date, id); ok {
			e.EventNumber = &number
		} else if manualNumber != "" {
			e.EventNumber = &manualNumber
		}
		return e, nil
	})
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.InfoContext(ctx, "event submitted",
		slog.Int("event_id", created.ID),
		slog.String("state", string(created.State)),
	)
	s.publisher.Publish(calendar.MessageEventCreated, eventPayload(created))
	return created, nil
}

func (s *eventService) Edit(ctx context.Context, id int, patch models.EventPatch) (models.Event, error) {
	var previous models.Event
	updated, err := s.eventRepo.Update(ctx, id, func(e models.Event) (models.Event, error) {
		next, err := e.ApplyPatch(patch)
		if err != nil {
			return e, err
		}
		previous = e
		next.EventNumber = renumber(e, next)
		return next, nil
	})
	if err != nil {
		return models.Event{}, mapRepoError(err)
	}
	s.logger.InfoContext(ctx, "event updated", slog.Int("event_id", id))
	s.publisher.Publish(calendar.MessageEventUpdated, eventPayload(updated))

	s.files.Release(ctx, unreferencedURLs(ctx, s.eventRepo, droppedURLs(previous, updated))...)
	return updated, nil
}

// MyRegistrations lists the session user's sign-ups, newest event data included.
func (s *eventService) MyRegistrations(ctx context.Context, session *models.Session) ([]UserRegistration, error) {
	email := session.UserEmail()
	if email == nil {
		return nil, ErrUserNotFound
	}
	regs, err := s.registrationRepo.ListByUser(ctx, *email)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	out := make([]UserRegistration, 0, len(regs))
	for _, r := range regs {
		item := UserRegistration{Registration: r}
		if e, err := s.eventRepo.GetByID(ctx, r.EventID); err == nil && e.Approved() {
			item.Event = &e
		}
		out = append(out, item)
	}
	return out, nil
}

// Register signs the session (or an anonymous visitor) up for an approved upcoming
// event. Repeated sign-ups are accepted and counted separately.
func (s *eventService) Register(ctx context.Context, id int, session *models.Session) (models.Registration, models.Event, error) {
	reg, e, err := s.registrationRepo.Create(ctx, id, session.UserEmail(), s.now(), func(e models.Event) error {
		switch {
		case !e.Approved():
			return ErrEventNotFound
		case e.Status != models.EventStatusUpcoming:
			return ErrRegistrationClosed
		case e.IsFull():
			return ErrEventFull
		}
		return nil
	})
	if err != nil {
		return models.Registration{}, models.Event{}, mapRepoError(err)
	}

	s.publisher.Publish(calendar.MessageEventRegistered, map[string]interface{}{
		"event_id":         e.ID,
		"participants":     e.Participants,
		"max_participants": e.MaxParticipants,
	})
	return reg, e, nil
}

func (s *eventService) Registrations(ctx context.Context, id int) ([]models.Registration, error) {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return nil, mapRepoError(err)
	}
	return s.registrationRepo.ListByEvent(ctx, id)
}

var registrationCSVHeader = []string{"registration_id", "event_id", "event_number", "event_title", "user_email", "registered_at"}

func (s *eventService) WriteRegistrationsCSV(ctx context.Context, id int, w io.Writer) error {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	regs, err := s.registrationRepo.ListByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list registrations: %w", err)
	}

	number := ""
	if e.EventNumber != nil {
		number = *e.EventNumber
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(registrationCSVHeader); err != nil {
		return err
	}
	for _, r := range regs {
		email := ""
		if r.UserEmail != nil {
			email = *r.UserEmail
		}
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(e.ID),
			number,
			e.Title,
			email,
			r.RegisteredAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func validateEventDraft(d models.EventDraft) (models.Event, error) {
	fe := fieldErrors{}
	fe.require("title", d.Title, "укажите название")
	fe.require("date", d.Date, "укажите дату")
	fe.require("time", d.Time, "укажите время")
	fe.require("location", d.Location, "укажите место проведения")
	fe.require("organizer", d.Organizer, "укажите организатора")
	fe.require("event_level", string(d.EventLevel), "укажите уровень мероприятия")

	date := strings.TrimSpace(d.Date)
	if _, ok := fe["date"]; !ok {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			fe["date"] = "дата должна быть в формате ГГГГ-ММ-ДД"
		}
	}
	clock := strings.TrimSpace(d.Time)
	if _, ok := fe["time"]; !ok {
		if _, err := time.Parse(models.TimeLayout, clock); err != nil {
			fe["time"] = "время должно быть в формате ЧЧ:ММ"
		}
	}

	sport := d.Sport
	if sport == "" {
		sport = models.SportRunning
	}
	custom := strings.TrimSpace(d.CustomSport)
	switch {
	case !sport.IsValid():
		fe["sport"] = "неизвестный вид спорта"
	case sport == models.SportOther && custom == "":
		fe["custom_sport"] = "укажите вид спорта"
	}

	eventType := d.EventType
	if eventType == "" {
		eventType = models.EventTypeLocal
	}
	if !eventType.IsValid() {
		fe["event_type"] = "неизвестный тип мероприятия"
	}
	if _, ok := fe["event_level"]; !ok && !d.EventLevel.IsValid() {
		fe["event_level"] = "неизвестный уровень мероприятия"
	}

	status := d.Status
	if status == "" {
		status = models.EventStatusUpcoming
	}
	if !status.IsValid() {
		fe["status"] = "неизвестный статус"
	}
	result := strings.TrimSpace(d.Result)
	if result != "" && status != models.EventStatusPast {
		fe["result"] = "результат указывается только для прошедших мероприятий"
	}

	for _, doc := range d.Documents {
		if !IsAllowedDocument(doc.Name) {
			fe["documents"] = "допустимы только файлы pdf, doc, docx, xls, xlsx"
			break
		}
	}
	for _, m := range d.Media {
		if !m.Kind.IsValid() {
			fe["media"] = "допустимы только изображения и видео"
			break
		}
	}

	if err := fe.err(); err != nil {
		return models.Event{}, err
	}

	if sport != models.SportOther {
		custom = ""
	}
	title := models.TitleWithCustomSport(strings.TrimSpace(d.Title), custom)

	e := models.Event{
		Title:           title,
		Sport:           sport,
		CustomSport:     custom,
		EventType:       eventType,
		EventLevel:      d.EventLevel,
		Date:            date,
		Time:            clock,
		Status:          status,
		MaxParticipants: d.MaxParticipants,
		Description:     strings.TrimSpace(d.Description),
		Organizer:       strings.TrimSpace(d.Organizer),
		Location:        strings.TrimSpace(d.Location),
		Documents:       append([]models.Attachment{}, d.Documents...),
		Media:           append([]models.Media{}, d.Media...),
	}
	if e.MaxParticipants <= 0 {
		e.MaxParticipants = models.DefaultMaxParticipants
	}
	if d.MaxSpectators != nil && *d.MaxSpectators > 0 {
		v := *d.MaxSpectators
		e.MaxSpectators = &v
	}
	if result != "" {
		e.Result = &result
	}
	return e, nil
}

// droppedURLs lists files attached to prev that next no longer carries.
func droppedURLs(prev, next models.Event) []string {
	kept := make(map[string]bool)
	for _, u := range next.FileURLs() {
		kept[u] = true
	}
	var dropped []string
	for _, u := range prev.FileURLs() {
		if !kept[u] {
			dropped = append(dropped, u)
		}
	}
	return dropped
}

// unreferencedURLs filters out files still attached to some stored event.
func unreferencedURLs(ctx context.Context, repo repositories.EventRepository, urls []string) []string {
	if len(urls) == 0 {
		return nil
	}
	events, err := repo.List(ctx)
	if err != nil {
		return nil
	}
	used := make(map[string]bool)
	for _, e := range events {
		for _, u := range e.FileURLs() {
			used[u] = true
		}
	}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !used[u] {
			out = append(out, u)
		}
	}
	return out
}

// mapRepoError translates repository sentinels into service errors.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrEventNotFound):
		return ErrEventNotFound
	case errors.Is(err, repositories.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, repositories.ErrUserEmailConflict):
		return ErrUserEmailConflict
	default:
		return err
	}
}
