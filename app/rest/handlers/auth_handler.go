package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"admin-gate/app/domain"
	"admin-gate/app/port"
	"admin-gate/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	sessions    *SessionStore
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, sessions *SessionStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
		validator:   validator.New(),
		logger:      logger.With("component", "auth_handler"),
	}
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// NonceRequest asks for a new session and nonce
type NonceRequest struct {
	Domain string `json:"domain" validate:"required"`
}

// NonceResponse carries the issued session and its nonce
type NonceResponse struct {
	SessionID string `json:"session_id"`
	Nonce     string `json:"nonce"`
}

// IssueNonce handles POST /v1/auth/nonce. The returned nonce must be mixed
// into the credential hash presented on login for the same session.
func (h *AuthHandler) IssueNonce(c echo.Context) error {
	var req NonceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	session := h.sessions.Issue(req.Domain, c.RealIP())
	return c.JSON(http.StatusOK, NonceResponse{
		SessionID: session.ID(),
		Nonce:     session.Nonce(),
	})
}

// LoginRequest authenticates a previously issued session
type LoginRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	LoginName string `json:"login_name" validate:"required"`
	Hash      string `json:"hash" validate:"required"`
	Force     bool   `json:"force"`
}

// LoginResponse carries the authenticated admin profile
type LoginResponse struct {
	SessionID string        `json:"session_id"`
	Admin     *domain.Admin `json:"admin"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	session, ok := h.sessions.Get(req.SessionID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unknown session"})
	}

	admin, err := h.authUsecase.Login(c.Request().Context(), session, req.LoginName, req.Hash, req.Force)
	if err != nil {
		h.logger.Info("login failed",
			"domain", session.Domain(),
			"login_name", req.LoginName,
			"remote", session.RemoteAddress(),
			"code", domain.ErrorCode(err))
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		SessionID: session.ID(),
		Admin:     admin,
	})
}

// LogoutRequest releases a session
type LogoutRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Logout handles POST /v1/auth/logout. Idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if session, ok := h.sessions.Get(req.SessionID); ok {
		h.authUsecase.Logout(c.Request().Context(), session)
	}
	// Drop the store entry even when the session is already closed, so an
	// evicted session does not linger after its client acknowledges the
	// terminate notice with a logout.
	h.sessions.Remove(req.SessionID)
	return c.NoContent(http.StatusNoContent)
}

// ActiveSessionResponse describes one admitted session
type ActiveSessionResponse struct {
	SessionID     string    `json:"session_id"`
	LoginName     string    `json:"login_name"`
	RoleLevel     int       `json:"role_level"`
	LoginTime     time.Time `json:"login_time"`
	RemoteAddress string    `json:"ip"`
}

// ListSessions handles GET /v1/domains/:domain/sessions
func (h *AuthHandler) ListSessions(c echo.Context) error {
	domainName := c.Param("domain")

	active := h.authUsecase.ActiveSessions(domainName)
	out := make([]ActiveSessionResponse, 0, len(active))
	for _, entry := range active {
		out = append(out, ActiveSessionResponse{
			SessionID:     entry.Session.ID(),
			LoginName:     entry.LoginName,
			RoleLevel:     entry.RoleLevel,
			LoginTime:     entry.LoginTime,
			RemoteAddress: entry.Session.RemoteAddress(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// errorResponse maps tagged authentication failures onto HTTP statuses.
func (h *AuthHandler) errorResponse(c echo.Context, err error) error {
	code := domain.ErrorCode(err)
	body := ErrorResponse{
		Error:   err.Error(),
		Code:    code,
		Details: domain.ErrorDetails(err),
	}

	switch code {
	case domain.CodeAdminNotFound, domain.CodeRequestAdminNotFound:
		return c.JSON(http.StatusNotFound, body)
	case domain.CodeInvalidPassword, domain.CodeInvalidOtpPassword:
		return c.JSON(http.StatusUnauthorized, body)
	case domain.CodeNotTrustHost, domain.CodePermissionDenied, domain.CodeCannotRemoveRequester:
		return c.JSON(http.StatusForbidden, body)
	case domain.CodeLockedAdmin:
		return c.JSON(http.StatusLocked, body)
	case domain.CodeMaxSession:
		return c.JSON(http.StatusConflict, body)
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusBadRequest, body)
	}

	h.logger.Error("internal error", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
