package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/complaint-tracker/internal/domain"
	"github.com/msomdec/complaint-tracker/internal/session"
	"github.com/msomdec/complaint-tracker/internal/validate"
)

// AuthHandler handles registration, login, and logout requests.
type AuthHandler struct {
	manager *session.Manager
	secure  bool
}

// NewAuthHandler creates a new AuthHandler. secure controls the cookie's
// Secure attribute.
func NewAuthHandler(manager *session.Manager, secure bool) *AuthHandler {
	return &AuthHandler{manager: manager, secure: secure}
}

// HandleRegister processes a JSON registration request.
// POST /api/auth/register
// Request:  {"username":"...","email":"...","password":"...","confirmPassword":"..."}
// Response: {"user": {...}, "message": "..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.manager.Register(r.Context(), validate.RegistrationForm{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var verr *validate.Error
		switch {
		case errors.As(err, &verr):
			writeValidationErrors(w, verr.Messages)
		case errors.Is(err, domain.ErrDuplicateUser):
			writeError(w, http.StatusConflict, "An account with that username or email already exists.")
		default:
			slog.Error("register user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.setAuthCookie(w, user)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":    toUserDTO(user),
		"message": "Registration successful! Redirecting...",
	})
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"username":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.manager.Login(r.Context(), validate.LoginForm{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var verr *validate.Error
		switch {
		case errors.As(err, &verr):
			writeValidationErrors(w, verr.Messages)
		case errors.Is(err, domain.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid username or password.")
		default:
			slog.Error("login user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	h.setAuthCookie(w, user)
	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleLogout clears the session and the auth cookie.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Logout(r.Context()); err != nil {
		slog.Error("logout", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the currently authenticated user.
// GET /api/auth/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, user *domain.User) {
	token, err := h.manager.IssueToken(user)
	if err != nil {
		slog.Error("issue token", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}
