package services

import (
	"errors"
	"sort"
	"strings"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации и бизнес-правил
	ErrMissingFields      = errors.New("required fields are missing")
	ErrEventFull          = errors.New("event registration is full")
	ErrRegistrationClosed = errors.New("event is not open for registration")
	ErrInvalidUpload      = errors.New("invalid upload request")

	// Ошибки конфликтов
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Ошибки аутентификации и авторизации
	ErrUserNotApproved      = errors.New("user is not approved yet")
	ErrInvalidAdminPassword = errors.New("invalid administrator password")

	// Ошибки, специфичные для сущностей
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ValidationError lists the offending fields of a rejected draft.
// errors.Is(err, ErrMissingFields) holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return ErrMissingFields.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingFields
}

type fieldErrors map[string]string

func (f fieldErrors) require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
