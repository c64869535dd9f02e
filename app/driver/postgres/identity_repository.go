package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// IdentityRepository implements port.IdentityDirectory for PostgreSQL.
type IdentityRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewIdentityRepository creates a new PostgreSQL identity directory.
func NewIdentityRepository(db DatabaseIface, logger *slog.Logger) port.IdentityDirectory {
	return &IdentityRepository{
		db:     db,
		logger: logger.With("component", "identity_repository"),
	}
}

// ResolveIdentity returns the base user record, or (nil, nil) when absent.
func (r *IdentityRepository) ResolveIdentity(ctx context.Context, domainName, loginName string) (*domain.Identity, error) {
	query := `
		SELECT domain, login_name, name, password_hash
		FROM identities WHERE domain = $1 AND login_name = $2`

	var identity domain.Identity
	err := r.db.QueryRow(ctx, query, domainName, loginName).Scan(
		&identity.Domain,
		&identity.LoginName,
		&identity.Name,
		&identity.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	return &identity, nil
}
