package port

//go:generate mockgen -source=admin_port.go -destination=../mocks/mock_admin_port.go -package=mocks

import (
	"context"

	"admin-gate/app/domain"
)

// AdminRepository defines the account store contract. Account records are
// owned by the store; this service reads them and writes back the mutable
// login bookkeeping fields.
type AdminRepository interface {
	ListAdmins(ctx context.Context, domainName string) ([]*domain.Admin, error)
	// FindAdmin returns (nil, nil) when no such admin exists.
	FindAdmin(ctx context.Context, domainName, loginName string) (*domain.Admin, error)
	// SaveAdmin inserts or replaces the admin record.
	SaveAdmin(ctx context.Context, admin *domain.Admin) error
	DeleteAdmin(ctx context.Context, domainName, loginName string) error
}

// IdentityDirectory resolves the base user record behind an admin account,
// which carries the stored password hash.
type IdentityDirectory interface {
	// ResolveIdentity returns (nil, nil) when no such identity exists.
	ResolveIdentity(ctx context.Context, domainName, loginName string) (*domain.Identity, error)
}

// OTPProvider yields the current one-time-password value for a seed. The
// provider is an optional capability; components must check for its absence
// before use.
type OTPProvider interface {
	CurrentValue(seed string) (string, error)
}
