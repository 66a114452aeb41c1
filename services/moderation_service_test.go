package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/models"
)

func registerUser(t *testing.T, env *testEnv, email, password string) {
	t.Helper()
	_, err := env.auth.Register(context.Background(), models.RegistrationDraft{
		Email:          email,
		Password:       password,
		Name:           "Иван",
		Phone:          "+7 900 000-00-00",
		UserType:       models.UserTypeIndividual,
		BirthDate:      "1990-01-01",
		PassportSeries: "4500",
		PassportNumber: "123456",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
}

func TestApproveUserEnablesLogin(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	registerUser(t, env, "ivan@example.com", "secret")
	creds := models.LoginDraft{Email: "ivan@example.com", Password: "secret"}

	if _, err := env.auth.Login(ctx, creds); !errors.Is(err, ErrUserNotApproved) {
		t.Fatalf("login before approval: expected ErrUserNotApproved, got %v", err)
	}

	res, err := env.moderation.ApproveUser(ctx, "ivan@example.com")
	if err != nil {
		t.Fatalf("ApproveUser() error: %v", err)
	}
	if res.State != models.StateApproved || res.NotificationError != "" {
		t.Errorf("result = %+v", res)
	}
	if len(env.sender.sent) != 1 || env.sender.sent[0].To != "ivan@example.com" {
		t.Errorf("sent = %+v", env.sender.sent)
	}

	session, err := env.auth.Login(ctx, creds)
	if err != nil {
		t.Fatalf("login after approval: %v", err)
	}
	if session.Role != models.RoleUser || session.Email != "ivan@example.com" {
		t.Errorf("session = %+v", session)
	}

	if _, err := env.moderation.ApproveUser(ctx, "ivan@example.com"); !errors.Is(err, models.ErrInvalidTransition) {
		t.Errorf("second approve: expected ErrInvalidTransition, got %v", err)
	}
}

func TestRejectUserRemovesAccount(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	registerUser(t, env, "petr@example.com", "secret")

	res, err := env.moderation.RejectUser(ctx, "petr@example.com")
	if err != nil {
		t.Fatalf("RejectUser() error: %v", err)
	}
	if res.State != models.StateDeleted {
		t.Errorf("state = %q, want deleted", res.State)
	}
	if len(env.sender.sent) != 1 || !strings.Contains(env.sender.sent[0].Subject, "отклонена") {
		t.Errorf("sent = %+v", env.sender.sent)
	}

	_, err = env.auth.Login(ctx, models.LoginDraft{Email: "petr@example.com", Password: "secret"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("login after reject: expected ErrUserNotFound, got %v", err)
	}
	users, _ := env.moderation.Users(ctx, "")
	if len(users) != 0 {
		t.Errorf("users = %v", users)
	}
}

func TestApproveEventNotifiesSubmitter(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	e, _ := env.events.Submit(ctx, validDraft(), userSession)

	res, err := env.moderation.ApproveEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("ApproveEvent() error: %v", err)
	}
	if res.Event == nil || !res.Event.Approved() {
		t.Fatalf("result = %+v", res)
	}
	if len(env.sender.sent) != 1 || env.sender.sent[0].To != userSession.Email {
		t.Fatalf("sent = %+v", env.sender.sent)
	}
	if !strings.Contains(env.sender.sent[0].HTML, "MO-2026-007") {
		t.Errorf("approval email lacks event number: %s", env.sender.sent[0].HTML)
	}

	lists, _ := env.events.List(ctx, EventFilter{Search: "кросс"})
	if !equalIDs(ids(lists.Upcoming), []int{e.ID}) {
		t.Errorf("approved event not listed: %v", ids(lists.Upcoming))
	}
}

func TestNotificationFailureKeepsStateChange(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	e, _ := env.events.Submit(ctx, validDraft(), userSession)
	env.sender.err = errMailDown

	res, err := env.moderation.ApproveEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("ApproveEvent() error: %v", err)
	}
	if !strings.Contains(res.NotificationError, errMailDown.Error()) {
		t.Errorf("notification_error = %q", res.NotificationError)
	}
	stored, _ := env.events.Get(ctx, e.ID, nil)
	if !stored.Approved() {
		t.Error("approval rolled back after mail failure")
	}
}

func TestRejectEvent(t *testing.T) {
	tests := []struct {
		name      string
		adminMade bool
		notify    bool
		wantMails int
	}{
		{"pending queue reject notifies", false, true, 1},
		{"generic delete is silent", false, false, 0},
		{"approved event reject is silent", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newDemoEnv()
			ctx := context.Background()
			session := userSession
			if tt.adminMade {
				session = adminSession
			}
			e, _ := env.events.Submit(ctx, validDraft(), session)

			res, err := env.moderation.RejectEvent(ctx, e.ID, tt.notify)
			if err != nil {
				t.Fatalf("RejectEvent() error: %v", err)
			}
			if res.State != models.StateDeleted {
				t.Errorf("state = %q", res.State)
			}
			if len(env.sender.sent) != tt.wantMails {
				t.Errorf("sent %d mails, want %d", len(env.sender.sent), tt.wantMails)
			}
			if _, err := env.events.Get(ctx, e.ID, adminSession); !errors.Is(err, ErrEventNotFound) {
				t.Errorf("rejected event still stored: %v", err)
			}
		})
	}
}

func TestRejectApprovedEventLeavesNoTrace(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	env.events.Register(ctx, 2, userSession)

	if _, err := env.moderation.RejectEvent(ctx, 2, false); err != nil {
		t.Fatalf("RejectEvent() error: %v", err)
	}

	lists, _ := env.events.List(ctx, EventFilter{})
	for _, e := range append(lists.Upcoming, lists.Past...) {
		if e.ID == 2 {
			t.Fatal("rejected event still listed")
		}
	}
	for _, e := range env.store.Snapshot().Events {
		if e.ID == 2 {
			t.Fatal("rejected event still in the collection")
		}
	}
	if n := len(env.store.Snapshot().Registrations); n != 0 {
		t.Errorf("%d orphaned registrations", n)
	}
	if _, err := env.moderation.RejectEvent(ctx, 2, false); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("second reject: expected ErrEventNotFound, got %v", err)
	}
}

func TestUserModerationPublishesNoPersonalData(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	registerUser(t, env, "ivan@example.com", "secret")
	registerUser(t, env, "petr@example.com", "secret")

	if _, err := env.moderation.ApproveUser(ctx, "ivan@example.com"); err != nil {
		t.Fatalf("ApproveUser() error: %v", err)
	}
	if _, err := env.moderation.RejectUser(ctx, "petr@example.com"); err != nil {
		t.Fatalf("RejectUser() error: %v", err)
	}

	want := []string{calendar.MessageUserApproved, calendar.MessageUserDeleted}
	if len(env.publisher.types) != len(want) {
		t.Fatalf("published %v, want %v", env.publisher.types, want)
	}
	for i, typ := range want {
		if env.publisher.types[i] != typ {
			t.Errorf("message %d = %q, want %q", i, env.publisher.types[i], typ)
		}
		if env.publisher.payloads[i] != nil {
			t.Errorf("%s carries payload %v", typ, env.publisher.payloads[i])
		}
	}
}

func TestRejectEventReleasesFiles(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	d := validDraft()
	d.Documents = []models.Attachment{{Name: "polozhenie.pdf", URL: "https://files.example.com/documents/a.pdf"}}
	d.Media = []models.Media{{Kind: models.MediaVideo, URL: "https://files.example.com/videos/b.mp4"}}
	e, _ := env.events.Submit(ctx, d, userSession)

	if _, err := env.moderation.RejectEvent(ctx, e.ID, true); err != nil {
		t.Fatalf("RejectEvent() error: %v", err)
	}
	want := []string{"https://files.example.com/documents/a.pdf", "https://files.example.com/videos/b.mp4"}
	if strings.Join(env.files.urls, " ") != strings.Join(want, " ") {
		t.Errorf("released %v, want %v", env.files.urls, want)
	}
}

func TestRejectEventTwiceChangesNothing(t *testing.T) {
	env := newDemoEnv()
	ctx := context.Background()
	e, _ := env.events.Submit(ctx, validDraft(), userSession)
	if _, err := env.moderation.RejectEvent(ctx, e.ID, false); err != nil {
		t.Fatalf("RejectEvent() error: %v", err)
	}
	before := env.store.Version()

	if _, err := env.moderation.RejectEvent(ctx, e.ID, true); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
	if env.store.Version() != before || len(env.sender.sent) != 0 {
		t.Errorf("failed reject changed state: version %d->%d, mails %d", before, env.store.Version(), len(env.sender.sent))
	}
}
