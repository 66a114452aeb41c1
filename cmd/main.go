package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/sports-calendar/calendar"
	"github.com/Dosada05/sports-calendar/config"
	"github.com/Dosada05/sports-calendar/handlers"
	"github.com/Dosada05/sports-calendar/mailer"
	"github.com/Dosada05/sports-calendar/middleware"
	"github.com/Dosada05/sports-calendar/pages"
	"github.com/Dosada05/sports-calendar/repositories"
	api "github.com/Dosada05/sports-calendar/routes"
	"github.com/Dosada05/sports-calendar/services"
	"github.com/Dosada05/sports-calendar/storage"
)

const shutdownTimeout = 15 * time.Second

// @title Sports Calendar API
// @version 1.0
// @description Календарь спортивных мероприятий муниципального образования.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Введите "Bearer" и JWT токен.
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("upload_backend", cfg.UploadBackend),
		slog.String("mail_backend", cfg.MailBackend),
		slog.Bool("seed_demo_data", cfg.SeedDemoData),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Хранилище в памяти
	initial := repositories.Snapshot{}
	if cfg.SeedDemoData {
		initial = repositories.DemoSnapshot(time.Now())
	}
	store := repositories.NewStore(initial)
	eventRepo := repositories.NewMemoryEventRepository(store)
	userRepo := repositories.NewMemoryUserRepository(store)
	registrationRepo := repositories.NewMemoryRegistrationRepository(store)
	logger.Info("store initialized", slog.Int("events", len(initial.Events)))

	sender, err := newMailSender(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	emailService, err := services.NewEmailService(sender)
	if err != nil {
		return fmt.Errorf("failed to initialize email templates: %w", err)
	}

	uploader, err := newUploader(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize uploader: %w", err)
	}

	registry, err := pages.Load()
	if err != nil {
		return fmt.Errorf("failed to render static pages: %w", err)
	}

	// Инициализация WebSocket Hub
	wsHub := calendar.NewHub(logger)

	// Инициализация сервисов
	var uploadService services.UploadService
	var files services.FileReleaser
	if uploader != nil {
		uploadService = services.NewUploadService(uploader, logger)
		files = uploadService
	}
	eventService := services.NewEventService(eventRepo, registrationRepo, wsHub, files, logger)
	moderationService := services.NewModerationService(eventRepo, userRepo, emailService, wsHub, files, logger)
	authService := services.NewAuthService(userRepo, services.AdminCredentials{
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordBcrypt,
	}, logger)
	calendarService := services.NewCalendarService(eventRepo)

	// Инициализация обработчиков HTTP
	sessions := middleware.NewSessions(cfg.JWTSecretKey)
	h := api.Handlers{
		Auth:       handlers.NewAuthHandler(authService, sessions),
		Event:      handlers.NewEventHandler(eventService, logger),
		Moderation: handlers.NewModerationHandler(moderationService),
		Calendar:   handlers.NewCalendarHandler(calendarService, logger),
		Page:       handlers.NewPageHandler(registry),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
		Health:     handlers.NewHealthHandler(store.Version),
	}
	if uploadService != nil {
		h.Upload = handlers.NewUploadHandler(uploadService)
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, h, api.Options{
		Sessions:       sessions,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("WebSocket Hub started")
		return wsHub.Run(gCtx)
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			return server.Close()
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}

func newMailSender(cfg *config.Config, logger *slog.Logger) (mailer.Sender, error) {
	switch cfg.MailBackend {
	case config.MailBackendHTTP:
		return mailer.NewHTTPSender(cfg.MailEndpointURL, &http.Client{Timeout: 15 * time.Second})
	case config.MailBackendSMTP:
		return mailer.NewSMTPSender(mailer.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		})
	default:
		logger.Warn("mail backend not configured, notifications will only be logged")
		return mailer.NewNoopSender(logger), nil
	}
}

// newUploader returns nil when uploads are disabled.
func newUploader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.FileUploader, error) {
	switch cfg.UploadBackend {
	case config.UploadBackendHTTP:
		return storage.NewHTTPUploader(storage.HTTPUploaderConfig{
			EndpointURL: cfg.UploadEndpointURL,
			Client:      &http.Client{Timeout: 60 * time.Second},
		})
	case config.UploadBackendR2:
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		}, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Cloudflare R2 uploader initialized")
		return uploader, nil
	default:
		logger.Warn("upload backend not configured, upload endpoints are disabled")
		return nil, nil
	}
}
