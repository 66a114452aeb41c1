package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/sports-calendar/docs"
	"github.com/Dosada05/sports-calendar/handlers"
	"github.com/Dosada05/sports-calendar/middleware"
	"github.com/Dosada05/sports-calendar/models"
)

// Handlers groups everything the router mounts. Upload is nil when no upload
// backend is configured.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Event      *handlers.EventHandler
	Moderation *handlers.ModerationHandler
	Calendar   *handlers.CalendarHandler
	Upload     *handlers.UploadHandler
	Page       *handlers.PageHandler
	WebSocket  *handlers.WebSocketHandler
	Health     *handlers.HealthHandler
}

type Options struct {
	Sessions       *middleware.Sessions
	AllowedOrigins []string
	Logger         *slog.Logger
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(opts.Sessions.Authenticate)

	router.Get("/healthz", h.Health.Healthz)
	router.Get("/privacy", h.Page.Page("privacy"))
	router.Get("/ws/calendar", h.WebSocket.ServeCalendar)
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	router.Route("/api", func(r chi.Router) {
		r.Get("/dictionaries", h.Event.Dictionaries)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.Event.ListEvents)
			r.Post("/", h.Event.CreateEvent)
			r.Get("/{eventID}", h.Event.GetEventByID)
			r.Post("/{eventID}/register", h.Event.RegisterForEvent)
		})

		r.Get("/calendar", h.Calendar.GetMonth)
		r.Get("/calendar.ics", h.Calendar.ExportICS)

		if h.Upload != nil {
			r.Route("/uploads", func(r chi.Router) {
				r.Post("/document", h.Upload.UploadDocument)
				r.Post("/media", h.Upload.UploadMedia)
			})
		} else {
			r.Post("/uploads/*", uploadsDisabled)
		}

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/admin", h.Auth.AdminLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/me", h.Auth.Me)
			r.Patch("/me", h.Auth.UpdateMe)
			r.Get("/me/registrations", h.Event.MyRegistrations)
		})

		// Модерация и управление только для администратора
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Get("/events/pending", h.Event.ListPendingEvents)
			r.Route("/events/{eventID}", func(r chi.Router) {
				r.Patch("/", h.Event.UpdateEvent)
				r.Delete("/", h.Moderation.DeleteEvent)
				r.Post("/approve", h.Moderation.ApproveEvent)
				r.Post("/reject", h.Moderation.RejectEvent)
				r.Get("/registrations", h.Event.ListRegistrations)
				r.Get("/registrations.csv", h.Event.ExportRegistrations)
			})

			r.Get("/users", h.Moderation.ListUsers)
			r.Post("/users/{email}/approve", h.Moderation.ApproveUser)
			r.Post("/users/{email}/reject", h.Moderation.RejectUser)
		})
	})
}

func uploadsDisabled(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(`{"error":"file uploads are not configured"}` + "\n"))
}
