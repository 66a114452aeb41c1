package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/sports-calendar/mailer"
	"github.com/Dosada05/sports-calendar/repositories"
)

var testNow = time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	types    []string
	payloads []interface{}
}

func (p *recordingPublisher) Publish(msgType string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, msgType)
	p.payloads = append(p.payloads, payload)
}

type recordingReleaser struct {
	mu   sync.Mutex
	urls []string
}

func (r *recordingReleaser) Release(_ context.Context, urls ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, urls...)
}

type testEnv struct {
	store      *repositories.Store
	events     EventService
	moderation ModerationService
	auth       AuthService
	sender     *recordingSender
	publisher  *recordingPublisher
	files      *recordingReleaser
}

func newTestEnv(initial repositories.Snapshot) *testEnv {
	store := repositories.NewStore(initial)
	eventRepo := repositories.NewMemoryEventRepository(store)
	userRepo := repositories.NewMemoryUserRepository(store)
	regRepo := repositories.NewMemoryRegistrationRepository(store)

	sender := &recordingSender{}
	emails, err := NewEmailService(sender)
	if err != nil {
		panic(err)
	}
	pub := &recordingPublisher{}
	files := &recordingReleaser{}

	events := NewEventService(eventRepo, regRepo, pub, files, discardLogger()).(*eventService)
	events.now = func() time.Time { return testNow }
	auth := NewAuthService(userRepo, AdminCredentials{Password: "admin2025"}, discardLogger()).(*authService)
	auth.now = func() time.Time { return testNow }

	return &testEnv{
		store:      store,
		events:     events,
		moderation: NewModerationService(eventRepo, userRepo, emails, pub, files, discardLogger()),
		auth:       auth,
		sender:     sender,
		publisher:  pub,
		files:      files,
	}
}

func newDemoEnv() *testEnv {
	return newTestEnv(repositories.DemoSnapshot(testNow))
}

var errMailDown = errors.New("mail endpoint unavailable")
