package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"admin-gate/app/domain"
	"admin-gate/app/port"
	"admin-gate/app/utils/validator"
)

// HeaderRequestingAdmin names the admin on whose behalf a management
// request is made.
const HeaderRequestingAdmin = "X-Requesting-Admin"

// AdminHandler handles admin account management HTTP requests
type AdminHandler struct {
	adminUsecase port.AdminUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase port.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator.New(),
		logger:       logger.With("component", "admin_handler"),
	}
}

// List handles GET /v1/domains/:domain/admins
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.adminUsecase.ListAdmins(c.Request().Context(), c.Param("domain"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, admins)
}

// Get handles GET /v1/domains/:domain/admins/:login
func (h *AdminHandler) Get(c echo.Context) error {
	admin, err := h.adminUsecase.GetAdmin(c.Request().Context(), c.Param("domain"), c.Param("login"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, admin)
}

// SetAdminRequest creates or replaces an admin account
type SetAdminRequest struct {
	RoleName       string   `json:"role_name" validate:"required"`
	RoleLevel      int      `json:"role_level" validate:"min=0"`
	Language       string   `json:"language"`
	Enabled        bool     `json:"enabled"`
	UseLoginLock   bool     `json:"use_login_lock"`
	LoginLockCount int      `json:"login_lock_count" validate:"min=0"`
	UseOtp         bool     `json:"use_otp"`
	UseACL         bool     `json:"use_acl"`
	TrustHosts     []string `json:"trust_hosts"`
}

// Put handles PUT /v1/domains/:domain/admins/:login
func (h *AdminHandler) Put(c echo.Context) error {
	var req SetAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	admin := &domain.Admin{
		RoleName:       req.RoleName,
		RoleLevel:      req.RoleLevel,
		Language:       req.Language,
		Enabled:        req.Enabled,
		UseLoginLock:   req.UseLoginLock,
		LoginLockCount: req.LoginLockCount,
		UseOtp:         req.UseOtp,
		UseACL:         req.UseACL,
		TrustHosts:     req.TrustHosts,
	}

	err := h.adminUsecase.SetAdmin(c.Request().Context(),
		c.Param("domain"), c.Request().Header.Get(HeaderRequestingAdmin), c.Param("login"), admin)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, admin)
}

// Delete handles DELETE /v1/domains/:domain/admins/:login
func (h *AdminHandler) Delete(c echo.Context) error {
	err := h.adminUsecase.UnsetAdmin(c.Request().Context(),
		c.Param("domain"), c.Request().Header.Get(HeaderRequestingAdmin), c.Param("login"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// OtpSeedResponse carries a freshly rotated OTP seed
type OtpSeedResponse struct {
	OtpSeed string `json:"otp_seed"`
}

// RotateOtpSeed handles POST /v1/domains/:domain/admins/:login/otp-seed
func (h *AdminHandler) RotateOtpSeed(c echo.Context) error {
	seed, err := h.adminUsecase.RotateOtpSeed(c.Request().Context(),
		c.Param("domain"), c.Request().Header.Get(HeaderRequestingAdmin), c.Param("login"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, OtpSeedResponse{OtpSeed: seed})
}

func (h *AdminHandler) errorResponse(c echo.Context, err error) error {
	code := domain.ErrorCode(err)
	body := ErrorResponse{Error: err.Error(), Code: code}

	switch code {
	case domain.CodeAdminNotFound:
		return c.JSON(http.StatusNotFound, body)
	case domain.CodeRequestAdminNotFound, domain.CodePermissionDenied, domain.CodeCannotRemoveRequester:
		return c.JSON(http.StatusForbidden, body)
	}

	h.logger.Error("internal error", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
