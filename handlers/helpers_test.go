package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/mailer"
	"github.com/Dosada05/sports-calendar/middleware"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/pages"
	"github.com/Dosada05/sports-calendar/repositories"
	"github.com/Dosada05/sports-calendar/services"
	"github.com/Dosada05/sports-calendar/storage"
)

const testSecret = "test-secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (u *memoryUploader) Upload(_ context.Context, key, _ string, r io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.objects == nil {
		u.objects = make(map[string][]byte)
	}
	u.objects[key] = data
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://files.example/" + key
}

type testServer struct {
	router   http.Handler
	sessions *middleware.Sessions
	sender   *recordingSender
	uploader *memoryUploader
	hub      *calendar.Hub
	store    *repositories.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := discardLogger()

	store := repositories.NewStore(repositories.DemoSnapshot(time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)))
	eventRepo := repositories.NewMemoryEventRepository(store)
	userRepo := repositories.NewMemoryUserRepository(store)
	registrationRepo := repositories.NewMemoryRegistrationRepository(store)

	sender := &recordingSender{}
	emails, err := services.NewEmailService(sender)
	if err != nil {
		t.Fatalf("NewEmailService: %v", err)
	}
	registry, err := pages.Load()
	if err != nil {
		t.Fatalf("pages.Load: %v", err)
	}
	uploader := &memoryUploader{}
	hub := calendar.NewHub(logger)
	sessions := middleware.NewSessions(testSecret)

	uploadService := services.NewUploadService(uploader, logger)

	eventHandler := NewEventHandler(services.NewEventService(eventRepo, registrationRepo, hub, uploadService, logger), logger)
	moderationHandler := NewModerationHandler(services.NewModerationService(eventRepo, userRepo, emails, hub, uploadService, logger))
	authHandler := NewAuthHandler(services.NewAuthService(userRepo, services.AdminCredentials{Password: "admin2025"}, logger), sessions)
	calendarHandler := NewCalendarHandler(services.NewCalendarService(eventRepo), logger)
	uploadHandler := NewUploadHandler(uploadService)
	pageHandler := NewPageHandler(registry)
	wsHandler := NewWebSocketHandler(hub, nil, logger)
	healthHandler := NewHealthHandler(store.Version)

	r := chi.NewRouter()
	r.Use(sessions.Authenticate)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/privacy", pageHandler.Page("privacy"))
	r.Get("/missing", pageHandler.Page("missing"))
	r.Get("/ws/calendar", wsHandler.ServeCalendar)
	r.Route("/api", func(r chi.Router) {
		r.Get("/dictionaries", eventHandler.Dictionaries)
		r.Get("/events", eventHandler.ListEvents)
		r.Post("/events", eventHandler.CreateEvent)
		r.Get("/events/{eventID}", eventHandler.GetEventByID)
		r.Post("/events/{eventID}/register", eventHandler.RegisterForEvent)
		r.Get("/calendar", calendarHandler.GetMonth)
		r.Get("/calendar.ics", calendarHandler.ExportICS)
		r.Post("/uploads/document", uploadHandler.UploadDocument)
		r.Post("/uploads/media", uploadHandler.UploadMedia)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/admin", authHandler.AdminLogin)
		r.With(middleware.RequireSession).Get("/me", authHandler.Me)
		r.With(middleware.RequireSession).Patch("/me", authHandler.UpdateMe)
		r.With(middleware.RequireSession).Get("/me/registrations", eventHandler.MyRegistrations)
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authorize(models.RoleAdmin))
			r.Get("/events/pending", eventHandler.ListPendingEvents)
			r.Patch("/events/{eventID}", eventHandler.UpdateEvent)
			r.Delete("/events/{eventID}", moderationHandler.DeleteEvent)
			r.Post("/events/{eventID}/approve", moderationHandler.ApproveEvent)
			r.Post("/events/{eventID}/reject", moderationHandler.RejectEvent)
			r.Get("/events/{eventID}/registrations", eventHandler.ListRegistrations)
			r.Get("/events/{eventID}/registrations.csv", eventHandler.ExportRegistrations)
			r.Get("/users", moderationHandler.ListUsers)
			r.Post("/users/{email}/approve", moderationHandler.ApproveUser)
			r.Post("/users/{email}/reject", moderationHandler.RejectUser)
		})
	})

	return &testServer{
		router:   r,
		sessions: sessions,
		sender:   sender,
		uploader: uploader,
		hub:      hub,
		store:    store,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		js, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(js)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) token(t *testing.T, session *models.Session) string {
	t.Helper()
	token, err := ts.sessions.Issue(session)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return token
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.token(t, &models.Session{Role: models.RoleAdmin, Name: "Администратор"})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func eventIDs(events []models.Event) []int {
	ids := make([]int, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func validEventDraft() models.EventDraft {
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

func itoa(n int) string {
	return strconv.Itoa(n)
}
