package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// otpSeedAlphabet is the base32 alphabet so generated seeds are valid TOTP
// secrets.
const (
	otpSeedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	otpSeedLength   = 10
)

// AdminUseCase implements administrative management of admin accounts:
// listing, role assignment, removal and OTP seed rotation, all guarded by
// role-level permission checks against the requesting admin.
type AdminUseCase struct {
	admins  port.AdminRepository
	logger  *slog.Logger
	nowTime func() time.Time
}

// AdminUseCaseOption modifies the use case.
type AdminUseCaseOption func(*AdminUseCase)

// WithAdminNowTime sets the clock (primarily for testing).
func WithAdminNowTime(nowFunc func() time.Time) AdminUseCaseOption {
	return func(uc *AdminUseCase) {
		uc.nowTime = nowFunc
	}
}

// NewAdminUseCase creates the admin management use case.
func NewAdminUseCase(admins port.AdminRepository, logger *slog.Logger, options ...AdminUseCaseOption) *AdminUseCase {
	uc := &AdminUseCase{
		admins:  admins,
		logger:  logger.With("component", "admin_usecase"),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// ListAdmins returns every admin of the domain.
func (uc *AdminUseCase) ListAdmins(ctx context.Context, domainName string) ([]*domain.Admin, error) {
	return uc.admins.ListAdmins(ctx, domainName)
}

// GetAdmin returns the named admin or an admin-not-found failure.
func (uc *AdminUseCase) GetAdmin(ctx context.Context, domainName, loginName string) (*domain.Admin, error) {
	admin, err := uc.admins.FindAdmin(ctx, domainName, loginName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, domain.NewAuthError(domain.CodeAdminNotFound, domain.ErrAccountNotFound, nil)
	}
	return admin, nil
}

// SetAdmin creates or updates the target admin. The requesting admin must
// exist and its role level must not be below the written one.
func (uc *AdminUseCase) SetAdmin(ctx context.Context, domainName, requestingLogin, targetLogin string, admin *domain.Admin) error {
	if err := uc.checkPermissionLevel(ctx, domainName, requestingLogin, admin.RoleLevel); err != nil {
		return err
	}

	admin.Domain = domainName
	admin.LoginName = targetLogin
	uc.prepare(admin)

	if err := uc.admins.SaveAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to save admin: %w", err)
	}

	uc.logger.Info("admin saved",
		"domain", domainName,
		"login_name", targetLogin,
		"requested_by", requestingLogin,
		"role_level", admin.RoleLevel)
	return nil
}

// UnsetAdmin removes the target admin. Self-removal is rejected and the
// requester must outrank or tie the target.
func (uc *AdminUseCase) UnsetAdmin(ctx context.Context, domainName, requestingLogin, targetLogin string) error {
	if requestingLogin == targetLogin {
		return domain.NewAuthError(domain.CodeCannotRemoveRequester, domain.ErrPermissionDenied, nil)
	}

	target, err := uc.GetAdmin(ctx, domainName, targetLogin)
	if err != nil {
		return err
	}
	if err := uc.checkPermissionLevel(ctx, domainName, requestingLogin, target.RoleLevel); err != nil {
		return err
	}

	if err := uc.admins.DeleteAdmin(ctx, domainName, targetLogin); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	uc.logger.Info("admin removed",
		"domain", domainName,
		"login_name", targetLogin,
		"requested_by", requestingLogin)
	return nil
}

// RotateOtpSeed generates and persists a fresh OTP seed for the target
// admin, returning the new seed.
func (uc *AdminUseCase) RotateOtpSeed(ctx context.Context, domainName, requestingLogin, targetLogin string) (string, error) {
	target, err := uc.GetAdmin(ctx, domainName, targetLogin)
	if err != nil {
		return "", err
	}

	seed, err := NewOtpSeed()
	if err != nil {
		return "", fmt.Errorf("failed to generate otp seed: %w", err)
	}
	target.OtpSeed = seed

	if err := uc.SetAdmin(ctx, domainName, requestingLogin, targetLogin, target); err != nil {
		return "", err
	}
	return seed, nil
}

// checkPermissionLevel rejects requests from unknown admins and from admins
// whose role level is below the target level.
func (uc *AdminUseCase) checkPermissionLevel(ctx context.Context, domainName, requestingLogin string, targetLevel int) error {
	if requestingLogin == "" {
		return domain.NewAuthError(domain.CodeRequestAdminNotFound, domain.ErrRequestingAdminNotFound, nil)
	}
	requester, err := uc.admins.FindAdmin(ctx, domainName, requestingLogin)
	if err != nil {
		return fmt.Errorf("failed to look up requesting admin: %w", err)
	}
	if requester == nil {
		return domain.NewAuthError(domain.CodeRequestAdminNotFound, domain.ErrRequestingAdminNotFound, nil)
	}
	if requester.RoleLevel < targetLevel {
		return domain.NewAuthError(domain.CodePermissionDenied, domain.ErrPermissionDenied, nil)
	}
	return nil
}

// prepare fills defaults for a freshly written admin record.
func (uc *AdminUseCase) prepare(admin *domain.Admin) {
	now := uc.nowTime()
	if admin.Language == "" {
		admin.Language = "en"
	}
	if admin.OtpSeed == "" {
		if seed, err := NewOtpSeed(); err == nil {
			admin.OtpSeed = seed
		}
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now
}

// NewOtpSeed returns a random seed from the base32 alphabet.
func NewOtpSeed() (string, error) {
	seed := make([]byte, otpSeedLength)
	max := big.NewInt(int64(len(otpSeedAlphabet)))
	for i := range seed {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		seed[i] = otpSeedAlphabet[n.Int64()]
	}
	return string(seed), nil
}
