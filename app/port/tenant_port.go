package port

//go:generate mockgen -source=tenant_port.go -destination=../mocks/mock_tenant_port.go -package=mocks

import "context"

// Tenant parameter keys consumed by the authentication flow.
const (
	ParamLoginLockTime = "login_lock_time"
	ParamMaxSessions   = "max_sessions"
)

// TenantConfig exposes per-tenant organization parameters.
type TenantConfig interface {
	// GetParameter returns the raw parameter value and whether it is set.
	GetParameter(ctx context.Context, domainName, key string) (string, bool, error)
}
