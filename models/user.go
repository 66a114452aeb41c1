package models

import "time"

type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeLegal      UserType = "legal"
)

func (t UserType) IsValid() bool {
	return t == UserTypeIndividual || t == UserTypeLegal
}

// User - зарегистрированный организатор (физическое или юридическое лицо).
type User struct {
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	UserType UserType `json:"user_type"`

	// Физическое лицо
	BirthDate         string `json:"birth_date,omitempty"`
	PassportSeries    string `json:"passport_series,omitempty"`
	PassportNumber    string `json:"passport_number,omitempty"`
	PassportIssueDate string `json:"passport_issue_date,omitempty"`
	PassportIssuedBy  string `json:"passport_issued_by,omitempty"`

	// Юридическое лицо
	INN          string `json:"inn,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	LegalAddress string `json:"legal_address,omitempty"`

	State       ModerationState `json:"state"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

func (u User) Approved() bool {
	return u.State == StateApproved
}

// RegistrationDraft is the sign-up form of a new user.
type RegistrationDraft struct {
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	Name              string   `json:"name"`
	Phone             string   `json:"phone"`
	UserType          UserType `json:"user_type"`
	BirthDate         string   `json:"birth_date"`
	PassportSeries    string   `json:"passport_series"`
	PassportNumber    string   `json:"passport_number"`
	PassportIssueDate string   `json:"passport_issue_date"`
	PassportIssuedBy  string   `json:"passport_issued_by"`
	INN               string   `json:"inn"`
	CompanyName       string   `json:"company_name"`
	LegalAddress      string   `json:"legal_address"`
}

type LoginDraft struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginDraft struct {
	Password string `json:"password"`
}

// Role of a session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the decoded session value: a logged-in user or the admin capability.
type Session struct {
	Role  Role   `json:"role"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// UserEmail returns the submitter identity for user sessions only.
func (s *Session) UserEmail() *string {
	if s == nil || s.Role != RoleUser || s.Email == "" {
		return nil
	}
	email := s.Email
	return &email
}
