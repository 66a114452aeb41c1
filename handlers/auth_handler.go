package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/sports-calendar/middleware"
	"github.com/Dosada05/sports-calendar/models"
	"github.com/Dosada05/sports-calendar/services"
)

type AuthHandler struct {
	authService services.AuthService
	sessions    *middleware.Sessions
}

func NewAuthHandler(as services.AuthService, sessions *middleware.Sessions) *AuthHandler {
	return &AuthHandler{
		authService: as,
		sessions:    sessions,
	}
}

// Register godoc
// @Summary Регистрация организатора
// @Tags auth
// @Description Создает пользователя в статусе ожидания модерации.
// @Accept json
// @Produce json
// @Param body body models.RegistrationDraft true "Данные регистрации"
// @Success 201 {object} map[string]interface{} "Пользователь создан"
// @Failure 400 {object} map[string]string "Некорректный запрос"
// @Failure 409 {object} map[string]string "Email уже занят"
// @Failure 422 {object} map[string]interface{} "Ошибка валидации"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var draft models.RegistrationDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.Register(r.Context(), draft)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Login godoc
// @Summary Вход пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginDraft true "Email и пароль"
// @Success 200 {object} map[string]interface{} "Токен и сессия"
// @Failure 401 {object} map[string]string "Неверный email или пароль"
// @Failure 403 {object} map[string]string "Аккаунт еще не одобрен"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var draft models.LoginDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.authService.Login(r.Context(), draft)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			unauthorizedResponse(w, r, "invalid email or password")
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respondWithSession(w, r, session)
}

// AdminLogin godoc
// @Summary Вход администратора
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.AdminLoginDraft true "Пароль администратора"
// @Success 200 {object} map[string]interface{} "Токен и сессия"
// @Failure 401 {object} map[string]string "Неверный пароль"
// @Router /auth/admin [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var draft models.AdminLoginDraft
	if err := readJSON(w, r, &draft); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.authService.AdminLogin(r.Context(), draft)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.respondWithSession(w, r, session)
}

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, r *http.Request, session *models.Session) {
	token, err := h.sessions.Issue(session)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"token": token, "session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Me godoc
// @Summary Текущая сессия
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Сессия и профиль пользователя"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	resp := jsonResponse{"session": session}
	if email := session.UserEmail(); email != nil {
		user, err := h.authService.Profile(r.Context(), *email)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		resp["user"] = user
	}

	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMe godoc
// @Summary Обновить профиль
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.UserPatch true "Изменяемые поля"
// @Success 200 {object} map[string]interface{} "Обновленный профиль"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Только для пользователей"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /me [patch]
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	email := session.UserEmail()
	if email == nil {
		forbiddenResponse(w, r, "profile is available for user sessions only")
		return
	}

	var patch models.UserPatch
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.UpdateProfile(r.Context(), *email, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": user}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
