package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/repositories"
)

func validDraft() models.EventDraft {
	return models.EventDraft{
		Title:      "Весенний кросс",
		Date:       "2026-03-05",
		Time:       "10:00",
		Location:   "Стадион",
		Organizer:  "Спорткомитет",
		Sport:      models.SportRunning,
		EventType:  models.EventTypeLocal,
		EventLevel: models.LevelMunicipal,
	}
}

var (
	adminSession = &models.Session{Role: models.RoleAdmin}
	userSession  = &models.Session{Role: models.RoleUser, Email: "org@example.com", Name: "Организатор"}
)

func TestSubmitAssignsNumberAndState(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()

	e, err := env.events.Submit(ctx, validDraft(), adminSession)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if e.ID != 7 {
		t.Errorf("ID = %d, want 7", e.ID)
	}
	if e.EventNumber == nil || *e.EventNumber != "MO-2026-007" {
		t.Errorf("EventNumber = %v, want MO-2026-007", e.EventNumber)
	}
	if e.State != models.StateApproved || e.SubmittedBy != nil {
		t.Errorf("admin submission: state %q, submitted_by %v", e.State, e.SubmittedBy)
	}
	if e.Participants != 0 || e.MaxParticipants != models.DefaultMaxParticipants || e.Status != models.EventStatusUpcoming {
		t.Errorf("defaults not applied: %+v", e)
	}
	if len(env.publisher.types) != 1 || env.publisher.types[0] != calendar.MessageEventCreated {
		t.Errorf("published %v", env.publisher.types)
	}
}

func TestSubmitByUserIsPending(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()

	e, err := env.events.Submit(ctx, validDraft(), userSession)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if e.State != models.StatePending {
		t.Errorf("state = %q, want pending", e.State)
	}
	if e.SubmittedBy == nil || *e.SubmittedBy != userSession.Email {
		t.Errorf("submitted_by = %v", e.SubmittedBy)
	}

	lists, _ := env.events.List(ctx, EventFilter{})
	for _, listed := range append(lists.Upcoming, lists.Past...) {
		if listed.ID == e.ID {
			t.Fatal("pending event appears in public listing")
		}
	}
	pending, _ := env.events.Pending(ctx)
	if len(pending) != 1 || pending[0].ID != e.ID {
		t.Errorf("pending queue = %v", ids(pending))
	}

	if _, err := env.events.Get(ctx, e.ID, nil); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("anonymous Get of pending event: %v", err)
	}
	if _, err := env.events.Get(ctx, e.ID, userSession); err != nil {
		t.Errorf("submitter Get of pending event: %v", err)
	}
}

func TestSubmitAnonymousHasNoSubmitter(t *testing.T) {
	env := newDemoEnv()
	e, err := env.events.Submit(context.Background(), validDraft(), nil)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if e.State != models.StatePending || e.SubmittedBy != nil {
		t.Errorf("state %q, submitted_by %v", e.State, e.SubmittedBy)
	}
}

func TestSubmitNumberingPolicy(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.EventDraft)
		want   *string
	}{
		{"away event keeps manual number", func(d *models.EventDraft) {
			d.EventType = models.EventTypeAway
			d.EventNumber = "ВЫЕЗД-12"
		}, strPtr("ВЫЕЗД-12")},
		{"regional without number", func(d *models.EventDraft) {
			d.EventLevel = models.LevelRegional
		}, nil},
		{"auto number overrides manual", func(d *models.EventDraft) {
			d.EventNumber = "manual"
		}, strPtr("MO-2026-007")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDemoEnv()
			d := validDraft()
			tt.modify(&d)
			e, err := env.events.Submit(context.Background(), d, adminSession)
			if err != nil {
				t.Fatalf("Submit() error: %v", err)
			}
			switch {
			case tt.want == nil && e.EventNumber != nil:
				t.Errorf("EventNumber = %q, want nil", *e.EventNumber)
			case tt.want != nil && (e.EventNumber == nil || *e.EventNumber != *tt.want):
				t.Errorf("EventNumber = %v, want %q", e.EventNumber, *tt.want)
			}
		})
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.EventDraft)
		field  string
	}{
		{"missing title", func(d *models.EventDraft) { d.Title = "  " }, "title"},
		{"missing date", func(d *models.EventDraft) { d.Date = "" }, "date"},
		{"missing time", func(d *models.EventDraft) { d.Time = "" }, "time"},
		{"missing location", func(d *models.EventDraft) { d.Location = "" }, "location"},
		{"missing organizer", func(d *models.EventDraft) { d.Organizer = "" }, "organizer"},
		{"missing level", func(d *models.EventDraft) { d.EventLevel = "" }, "event_level"},
		{"other without custom sport", func(d *models.EventDraft) { d.Sport = models.SportOther }, "custom_sport"},
		{"bad date format", func(d *models.EventDraft) { d.Date = "05.03.2026" }, "date"},
		{"result on upcoming", func(d *models.EventDraft) { d.Result = "1:0" }, "result"},
		{"bad document", func(d *models.EventDraft) {
			d.Documents = []models.Attachment{{Name: "virus.exe", URL: "http://x"}}
		}, "documents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDemoEnv()
			d := validDraft()
			tt.modify(&d)
			before := env.store.Version()

			_, err := env.events.Submit(context.Background(), d, adminSession)
			if !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Fields[tt.field] == "" {
				t.Errorf("expected field %q in %v", tt.field, err)
			}
			if env.store.Version() != before {
				t.Error("failed submission changed the store")
			}
		})
	}
}

func TestSubmitCustomSportSuffixesTitle(t *testing.T) {
	env := newDemoEnv()
	d := validDraft()
	d.Sport = models.SportOther
	d.CustomSport = "Городки"

	e, err := env.events.Submit(context.Background(), d, adminSession)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if e.Title != "Весенний кросс (Городки)" || e.CustomSport != "Городки" {
		t.Errorf("title %q, custom sport %q", e.Title, e.CustomSport)
	}
}

func TestRegisterKeepsDuplicates(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, _, err := env.events.Register(ctx, 1, userSession); err != nil {
			t.Fatalf("Register() #%d error: %v", i+1, err)
		}
	}
	regs, err := env.events.Registrations(ctx, 1)
	if err != nil {
		t.Fatalf("Registrations() error: %v", err)
	}
	if len(regs) != 2 {
		t.Errorf("expected 2 registrations, got %d", len(regs))
	}
	e, _ := env.events.Get(ctx, 1, nil)
	if e.Participants != 126 {
		t.Errorf("participants = %d, want 126", e.Participants)
	}
}

func TestRegisterRefusals(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()

	full, err := env.events.Submit(ctx, func() models.EventDraft {
		d := validDraft()
		d.MaxParticipants = 1
		return d
	}(), adminSession)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if _, _, err := env.events.Register(ctx, full.ID, nil); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	pending, _ := env.events.Submit(ctx, validDraft(), userSession)

	tests := []struct {
		name string
		id   int
		want error
	}{
		{"full event", full.ID, ErrEventFull},
		{"past event", 4, ErrRegistrationClosed},
		{"pending event", pending.ID, ErrEventNotFound},
		{"unknown event", 999, ErrEventNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := env.events.Register(ctx, tt.id, userSession); !errors.Is(err, tt.want) {
				t.Errorf("Register() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEditAppliesPatch(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	title := "Новое название"
	capacity := 10

	e, err := env.events.Edit(ctx, 1, models.EventPatch{Title: &title})
	if err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	if e.Title != title || e.ID != 1 {
		t.Errorf("edited event = %+v", e)
	}

	if _, err := env.events.Edit(ctx, 1, models.EventPatch{MaxParticipants: &capacity}); !errors.Is(err, models.ErrPatchOverCapacity) {
		t.Errorf("expected ErrPatchOverCapacity, got %v", err)
	}
	if _, err := env.events.Edit(ctx, 404, models.EventPatch{Title: &title}); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEditRenumbers(t *testing.T) {
	regional := models.LevelRegional
	municipal := models.LevelMunicipal
	away := models.EventTypeAway
	nextYear := "2027-01-15"
	manual := "РЕГ-7"

	tests := []struct {
		name    string
		patches []models.EventPatch
		want    string
	}{
		{"date moves the year", []models.EventPatch{{Date: &nextYear}}, "MO-2027-%03d"},
		{"level leaves the policy", []models.EventPatch{{EventLevel: &regional}}, ""},
		{"away event loses the auto number", []models.EventPatch{{EventType: &away}}, ""},
		{"manual number survives", []models.EventPatch{{EventLevel: &regional}, {EventNumber: &manual}, {Date: &nextYear}}, "РЕГ-7"},
		{"back under the policy", []models.EventPatch{{EventLevel: &regional}, {EventLevel: &municipal}}, "MO-2026-%03d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDemoEnv()
			ctx := context.Background()
			e, err := env.events.Submit(ctx, validDraft(), adminSession)
			if err != nil {
				t.Fatalf("Submit() error: %v", err)
			}
			for _, p := range tt.patches {
				if e, err = env.events.Edit(ctx, e.ID, p); err != nil {
					t.Fatalf("Edit() error: %v", err)
				}
			}
			want := tt.want
			if strings.Contains(want, "%") {
				want = fmt.Sprintf(want, e.ID)
			}
			got := ""
			if e.EventNumber != nil {
				got = *e.EventNumber
			}
			if got != want {
				t.Errorf("event number = %q, want %q", got, want)
			}
		})
	}
}

func TestEditReleasesDroppedFiles(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	shared := "https://files.example.com/documents/shared.pdf"
	d := validDraft()
	d.Documents = []models.Attachment{
		{Name: "polozhenie.pdf", URL: "https://files.example.com/documents/a.pdf"},
		{Name: "shared.pdf", URL: shared},
	}
	d.Media = []models.Media{{Kind: models.MediaImage, URL: "https://files.example.com/photos/b.jpg"}}
	e, _ := env.events.Submit(ctx, d, adminSession)
	other := validDraft()
	other.Documents = []models.Attachment{{Name: "shared.pdf", URL: shared}}
	env.events.Submit(ctx, other, adminSession)

	docs := []models.Attachment{}
	if _, err := env.events.Edit(ctx, e.ID, models.EventPatch{Documents: &docs}); err != nil {
		t.Fatalf("Edit() error: %v", err)
	}
	if len(env.files.urls) != 1 || env.files.urls[0] != "https://files.example.com/documents/a.pdf" {
		t.Errorf("released %v", env.files.urls)
	}
}

func TestMyRegistrations(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	env.events.Register(ctx, 1, userSession)
	env.events.Register(ctx, 2, nil)
	env.events.Register(ctx, 2, userSession)

	regs, err := env.events.MyRegistrations(ctx, userSession)
	if err != nil {
		t.Fatalf("MyRegistrations() error: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}
	for _, r := range regs {
		if r.UserEmail == nil || *r.UserEmail != userSession.Email {
			t.Errorf("foreign registration %+v", r.Registration)
		}
		if r.Event == nil || r.Event.ID != r.EventID {
			t.Errorf("registration %d missing its event", r.ID)
		}
	}

	if _, err := env.events.MyRegistrations(ctx, adminSession); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("admin session: expected ErrUserNotFound, got %v", err)
	}
}

func TestWriteRegistrationsCSV(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	env.events.Register(ctx, 1, userSession)
	env.events.Register(ctx, 1, nil)

	var buf bytes.Buffer
	if err := env.events.WriteRegistrationsCSV(ctx, 1, &buf); err != nil {
		t.Fatalf("WriteRegistrationsCSV() error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][2] != "MO-2025-001" || rows[1][4] != userSession.Email || rows[2][4] != "" {
		t.Errorf("unexpected rows: %v", rows[1:])
	}

	if err := env.events.WriteRegistrationsCSV(ctx, 404, &buf); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestListOnEmptyStore(t *testing.T) {
	env := newTestEnv(repositories.Snapshot{})
	lists, err := env.events.List(context.Background(), EventFilter{Sport: models.SportAll})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if lists.Upcoming == nil || lists.Past == nil || len(lists.Upcoming)+len(lists.Past) != 0 {
		t.Errorf("expected empty non-nil lists, got %+v", lists)
	}
}
