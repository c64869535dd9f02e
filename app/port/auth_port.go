package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"admin-gate/app/domain"
)

// AuthUsecase defines the authentication and session admission surface.
type AuthUsecase interface {
	// Login authenticates the session against the named admin account and
	// admits it into the domain's active set, possibly evicting a
	// lower-priority session when force is set.
	Login(ctx context.Context, session domain.SessionHandle, loginName, presentedHash string, force bool) (*domain.Admin, error)
	// Logout releases the session's admission slot. A no-op for sessions
	// that never bound a domain and login.
	Logout(ctx context.Context, session domain.SessionHandle)

	RegisterObserver(observer LoginObserver)
	UnregisterObserver(observer LoginObserver)

	// ActiveSessions lists the currently admitted sessions for a domain in
	// eviction order.
	ActiveSessions(domainName string) []*domain.ActiveSession
}

// AdminUsecase defines administrative management of admin accounts.
type AdminUsecase interface {
	ListAdmins(ctx context.Context, domainName string) ([]*domain.Admin, error)
	GetAdmin(ctx context.Context, domainName, loginName string) (*domain.Admin, error)
	// SetAdmin creates or updates the target admin on behalf of the
	// requesting admin, whose role level must not be below the written one.
	SetAdmin(ctx context.Context, domainName, requestingLogin, targetLogin string, admin *domain.Admin) error
	// UnsetAdmin removes the target admin. Self-removal is rejected.
	UnsetAdmin(ctx context.Context, domainName, requestingLogin, targetLogin string) error
	// RotateOtpSeed generates, persists and returns a fresh OTP seed for
	// the target admin.
	RotateOtpSeed(ctx context.Context, domainName, requestingLogin, targetLogin string) (string, error)
}
