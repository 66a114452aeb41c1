package handlers

import (
	"net/http"
	"testing"

	"github.com/Dosada05/sports-calendar/models"
)

func individualDraft(email, password string) models.RegistrationDraft {
	return models.RegistrationDraft{
		Email:          email,
		Password:       password,
		Name:           "Иван Петров",
		Phone:          "+7 900 000-00-00",
		UserType:       models.UserTypeIndividual,
		BirthDate:      "1990-01-01",
		PassportSeries: "4500",
		PassportNumber: "123456",
	}
}

type sessionResponse struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

func TestUserSignUpApprovalAndLogin(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)
	creds := models.LoginDraft{Email: "ivan@example.com", Password: "secret"}

	rec := ts.do(t, http.MethodPost, "/api/auth/register", individualDraft(creds.Email, creds.Password), "")
	expectStatus(t, rec, http.StatusCreated)
	var created struct {
		User models.User `json:"user"`
	}
	decode(t, rec, &created)
	if created.User.State != models.StatePending {
		t.Fatalf("state = %q, want pending", created.User.State)
	}

	expectStatus(t, ts.do(t, http.MethodPost, "/api/auth/register", individualDraft(creds.Email, "other"), ""), http.StatusConflict)
	expectStatus(t, ts.do(t, http.MethodPost, "/api/auth/login", creds, ""), http.StatusForbidden)

	rec = ts.do(t, http.MethodPost, "/api/admin/users/ivan@example.com/approve", nil, admin)
	expectStatus(t, rec, http.StatusOK)
	if got := len(ts.sender.messages()); got != 1 {
		t.Errorf("approval emails = %d, want 1", got)
	}

	rec = ts.do(t, http.MethodPost, "/api/auth/login", creds, "")
	expectStatus(t, rec, http.StatusOK)
	var login sessionResponse
	decode(t, rec, &login)
	if login.Token == "" || login.Session.Role != models.RoleUser || login.Session.Email != creds.Email {
		t.Fatalf("unexpected login response: %+v", login)
	}

	rec = ts.do(t, http.MethodGet, "/api/me", nil, login.Token)
	expectStatus(t, rec, http.StatusOK)
	var me struct {
		Session models.Session `json:"session"`
		User    models.User    `json:"user"`
	}
	decode(t, rec, &me)
	if me.User.Email != creds.Email || me.User.Name != "Иван Петров" {
		t.Errorf("me = %+v", me)
	}

	rec = ts.do(t, http.MethodPatch, "/api/me", map[string]string{"name": "Иван Сидоров"}, login.Token)
	expectStatus(t, rec, http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodPatch, "/api/me", map[string]string{"email": "new@example.com"}, login.Token), http.StatusUnprocessableEntity)
}

func TestLoginFailures(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"unknown user", "/api/auth/login", models.LoginDraft{Email: "nobody@example.com", Password: "x"}, http.StatusUnauthorized},
		{"bad admin password", "/api/auth/admin", models.AdminLoginDraft{Password: "wrong"}, http.StatusUnauthorized},
		{"malformed body", "/api/auth/login", `{"email": 1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, ts.do(t, http.MethodPost, tt.path, tt.body, ""), tt.want)
		})
	}
}

func TestAdminLoginIssuesAdminSession(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/admin", models.AdminLoginDraft{Password: "admin2025"}, "")
	expectStatus(t, rec, http.StatusOK)
	var resp sessionResponse
	decode(t, rec, &resp)
	if resp.Session.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", resp.Session.Role)
	}

	expectStatus(t, ts.do(t, http.MethodGet, "/api/admin/users", nil, resp.Token), http.StatusOK)
	expectStatus(t, ts.do(t, http.MethodGet, "/api/me", nil, resp.Token), http.StatusOK)
	// У администратора нет профиля
	expectStatus(t, ts.do(t, http.MethodPatch, "/api/me", map[string]string{"name": "x"}, resp.Token), http.StatusForbidden)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	draft := individualDraft("not-an-email", "secret")
	draft.PassportNumber = ""
	rec := ts.do(t, http.MethodPost, "/api/auth/register", draft, "")
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	var resp struct {
		Error map[string]string `json:"error"`
	}
	decode(t, rec, &resp)
	for _, field := range []string{"email", "passport_number"} {
		if _, ok := resp.Error[field]; !ok {
			t.Errorf("missing validation message for %q in %v", field, resp.Error)
		}
	}
}

func TestMeRequiresSession(t *testing.T) {
	ts := newTestServer(t)
	expectStatus(t, ts.do(t, http.MethodGet, "/api/me", nil, ""), http.StatusUnauthorized)
}
