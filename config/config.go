package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAdminPassword = "admin2025"

// Бэкенды загрузки файлов
const (
	UploadBackendNone = ""
	UploadBackendHTTP = "http"
	UploadBackendR2   = "r2"
)

// Бэкенды отправки почты
const (
	MailBackendNoop = "noop"
	MailBackendHTTP = "http"
	MailBackendSMTP = "smtp"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort   int
	JWTSecretKey string
	LogLevel     slog.Level

	AdminPassword       string
	AdminPasswordBcrypt string

	UploadBackend     string
	UploadEndpointURL string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	MailBackend     string
	MailEndpointURL string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string

	CORSAllowedOrigins []string
	SeedDemoData       bool
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intFromEnv(getenv, "SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:   port,
		JWTSecretKey: jwtKey,
		LogLevel:     level,

		AdminPassword:       getenv("ADMIN_PASSWORD"),
		AdminPasswordBcrypt: getenv("ADMIN_PASSWORD_BCRYPT"),

		UploadBackend:     strings.ToLower(getenv("UPLOAD_BACKEND")),
		UploadEndpointURL: getenv("UPLOAD_ENDPOINT_URL"),
		R2AccountID:       getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   getenv("R2_PUBLIC_BASE_URL"),

		MailBackend:     strings.ToLower(getenv("MAIL_BACKEND")),
		MailEndpointURL: getenv("MAIL_ENDPOINT_URL"),
		SMTPHost:        getenv("SMTP_HOST"),
		SMTPUser:        getenv("SMTP_USER"),
		SMTPPass:        getenv("SMTP_PASS"),
		SMTPFrom:        getenv("SMTP_FROM"),

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		SeedDemoData:       true,
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = defaultAdminPassword
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if v := getenv("SEED_DEMO_DATA"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DEMO_DATA environment variable: %w", err)
		}
		cfg.SeedDemoData = seed
	}

	if cfg.SMTPPort, err = intFromEnv(getenv, "SMTP_PORT", 587); err != nil {
		return nil, err
	}

	if err := cfg.resolveUploadBackend(); err != nil {
		return nil, err
	}
	if err := cfg.resolveMailBackend(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveUploadBackend picks the backend from the configured credentials when
// UPLOAD_BACKEND is empty. No credentials at all disables uploads.
func (c *Config) resolveUploadBackend() error {
	if c.UploadBackend == UploadBackendNone {
		switch {
		case c.UploadEndpointURL != "":
			c.UploadBackend = UploadBackendHTTP
		case c.R2AccountID != "":
			c.UploadBackend = UploadBackendR2
		}
	}

	switch c.UploadBackend {
	case UploadBackendNone:
		return nil
	case UploadBackendHTTP:
		if c.UploadEndpointURL == "" {
			return fmt.Errorf("UPLOAD_ENDPOINT_URL is required for upload backend %q", c.UploadBackend)
		}
	case UploadBackendR2:
		for name, v := range map[string]string{
			"R2_ACCOUNT_ID":        c.R2AccountID,
			"R2_ACCESS_KEY_ID":     c.R2AccessKeyID,
			"R2_SECRET_ACCESS_KEY": c.R2SecretAccessKey,
			"R2_BUCKET_NAME":       c.R2BucketName,
			"R2_PUBLIC_BASE_URL":   c.R2PublicBaseURL,
		} {
			if v == "" {
				return fmt.Errorf("%s is required for upload backend %q", name, c.UploadBackend)
			}
		}
	default:
		return fmt.Errorf("unknown UPLOAD_BACKEND %q", c.UploadBackend)
	}
	return nil
}

func (c *Config) resolveMailBackend() error {
	if c.MailBackend == "" {
		switch {
		case c.MailEndpointURL != "":
			c.MailBackend = MailBackendHTTP
		case c.SMTPHost != "":
			c.MailBackend = MailBackendSMTP
		default:
			c.MailBackend = MailBackendNoop
		}
	}

	switch c.MailBackend {
	case MailBackendNoop:
	case MailBackendHTTP:
		if c.MailEndpointURL == "" {
			return fmt.Errorf("MAIL_ENDPOINT_URL is required for mail backend %q", c.MailBackend)
		}
	case MailBackendSMTP:
		if c.SMTPHost == "" || c.SMTPFrom == "" {
			return fmt.Errorf("SMTP_HOST and SMTP_FROM are required for mail backend %q", c.MailBackend)
		}
	default:
		return fmt.Errorf("unknown MAIL_BACKEND %q", c.MailBackend)
	}
	return nil
}

func intFromEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
