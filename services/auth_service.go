package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/repositories"
	"github.com/Dosada05/sports-calendar/utils"
)

// AdminCredentials holds the shared administrator password. When PasswordHash
// is set it takes precedence over the plain Password.
type AdminCredentials struct {
	Password     string
	PasswordHash string
}

type AuthService interface {
	Register(ctx context.Context, draft models.RegistrationDraft) (models.User, error)
	Login(ctx context.Context, draft models.LoginDraft) (*models.Session, error)
	AdminLogin(ctx context.Context, draft models.AdminLoginDraft) (*models.Session, error)
	Profile(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, email string, patch models.UserPatch) (models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	admin    AdminCredentials
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, admin AdminCredentials, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		admin:    admin,
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a pending user. The account cannot log in until approved.
func (s *authService) Register(ctx context.Context, draft models.RegistrationDraft) (models.User, error) {
	user, err := validateRegistrationDraft(draft)
	if err != nil {
		return models.User{}, err
	}
	user.State = models.StatePending
	user.SubmittedAt = s.now()

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return models.User{}, ErrUserEmailConflict
		}
		return models.User{}, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("email", user.Email))
	return user, nil
}

// Login matches email and password exactly. A wrong password is reported the
// same way as an unknown email.
func (s *authService) Login(ctx context.Context, draft models.LoginDraft) (*models.Session, error) {
	email := strings.TrimSpace(draft.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user.Password != draft.Password {
		return nil, ErrUserNotFound
	}
	if !user.Approved() {
		return nil, ErrUserNotApproved
	}

	return &models.Session{Role: models.RoleUser, Email: user.Email, Name: user.Name}, nil
}

func (s *authService) AdminLogin(ctx context.Context, draft models.AdminLoginDraft) (*models.Session, error) {
	if !s.checkAdminPassword(draft.Password) {
		s.logger.WarnContext(ctx, "admin login rejected")
		return nil, ErrInvalidAdminPassword
	}
	return &models.Session{Role: models.RoleAdmin, Name: "Администратор"}, nil
}

func (s *authService) checkAdminPassword(password string) bool {
	return utils.CheckPassword(password, s.admin.Password, s.admin.PasswordHash)
}

func (s *authService) Profile(ctx context.Context, email string) (models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, mapRepoError(err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, email string, patch models.UserPatch) (models.User, error) {
	user, err := s.userRepo.Update(ctx, email, func(u models.User) (models.User, error) {
		return u.ApplyPatch(patch)
	})
	if err != nil {
		return models.User{}, mapRepoError(err)
	}
	return user, nil
}

func validateRegistrationDraft(d models.RegistrationDraft) (models.User, error) {
	fe := fieldErrors{}
	fe.require("email", d.Email, "укажите email")
	fe.require("password", d.Password, "укажите пароль")
	fe.require("name", d.Name, "укажите имя")
	fe.require("phone", d.Phone, "укажите телефон")

	email := strings.TrimSpace(d.Email)
	if _, ok := fe["email"]; !ok {
		if _, err := mail.ParseAddress(email); err != nil {
			fe["email"] = "некорректный email"
		}
	}

	userType := d.UserType
	if userType == "" {
		userType = models.UserTypeIndividual
	}
	switch userType {
	case models.UserTypeIndividual:
		fe.require("birth_date", d.BirthDate, "укажите дату рождения")
		fe.require("passport_series", d.PassportSeries, "укажите серию паспорта")
		fe.require("passport_number", d.PassportNumber, "укажите номер паспорта")
	case models.UserTypeLegal:
		fe.require("inn", d.INN, "укажите ИНН")
		fe.require("company_name", d.CompanyName, "укажите название организации")
		fe.require("legal_address", d.LegalAddress, "укажите юридический адрес")
	default:
		fe["user_type"] = "неизвестный тип пользователя"
	}

	if err := fe.err(); err != nil {
		return models.User{}, err
	}

	u := models.User{
		Email:    email,
		Password: d.Password,
		Name:     strings.TrimSpace(d.Name),
		Phone:    strings.TrimSpace(d.Phone),
		UserType: userType,
	}
	if userType == models.UserTypeIndividual {
		u.BirthDate = strings.TrimSpace(d.BirthDate)
		u.PassportSeries = strings.TrimSpace(d.PassportSeries)
		u.PassportNumber = strings.TrimSpace(d.PassportNumber)
		u.PassportIssueDate = strings.TrimSpace(d.PassportIssueDate)
		u.PassportIssuedBy = strings.TrimSpace(d.PassportIssuedBy)
	} else {
		u.INN = strings.TrimSpace(d.INN)
		u.CompanyName = strings.TrimSpace(d.CompanyName)
		u.LegalAddress = strings.TrimSpace(d.LegalAddress)
	}
	return u, nil
}
