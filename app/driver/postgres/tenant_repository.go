package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"admin-gate/app/port"
)

// TenantRepository implements port.TenantConfig for PostgreSQL.
type TenantRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTenantRepository creates a new PostgreSQL tenant parameter store.
func NewTenantRepository(db DatabaseIface, logger *slog.Logger) port.TenantConfig {
	return &TenantRepository{
		db:     db,
		logger: logger.With("component", "tenant_repository"),
	}
}

// GetParameter returns the tenant parameter value and whether it is set.
func (r *TenantRepository) GetParameter(ctx context.Context, domainName, key string) (string, bool, error) {
	query := `SELECT value FROM tenant_params WHERE domain = $1 AND key = $2`

	var value string
	err := r.db.QueryRow(ctx, query, domainName, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read tenant parameter: %w", err)
	}
	return value, true, nil
}

// SetParameter upserts a tenant parameter.
func (r *TenantRepository) SetParameter(ctx context.Context, domainName, key, value string) error {
	query := `
		INSERT INTO tenant_params (domain, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (domain, key) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.db.Exec(ctx, query, domainName, key, value); err != nil {
		r.logger.Error("failed to set tenant parameter",
			"domain", domainName, "key", key, "error", err)
		return fmt.Errorf("failed to set tenant parameter: %w", err)
	}
	return nil
}
