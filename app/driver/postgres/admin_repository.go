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

// AdminRepository implements port.AdminRepository for PostgreSQL.
type AdminRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAdminRepository creates a new PostgreSQL admin repository.
func NewAdminRepository(db DatabaseIface, logger *slog.Logger) port.AdminRepository {
	return &AdminRepository{
		db:     db,
		logger: logger.With("component", "admin_repository"),
	}
}

const adminColumns = `
	domain, login_name, role_name, role_level, language, enabled,
	use_login_lock, login_lock_count, login_failures,
	last_login_at, last_login_failed_at,
	use_otp, otp_seed, use_acl, trust_hosts,
	created_at, updated_at`

// ListAdmins returns every admin of the domain ordered by login name.
func (r *AdminRepository) ListAdmins(ctx context.Context, domainName string) ([]*domain.Admin, error) {
	query := `SELECT` + adminColumns + `
		FROM admins WHERE domain = $1 ORDER BY login_name`

	rows, err := r.db.Query(ctx, query, domainName)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admins: %w", err)
	}
	return admins, nil
}

// FindAdmin returns the named admin, or (nil, nil) when absent.
func (r *AdminRepository) FindAdmin(ctx context.Context, domainName, loginName string) (*domain.Admin, error) {
	query := `SELECT` + adminColumns + `
		FROM admins WHERE domain = $1 AND login_name = $2`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, domainName, loginName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

// SaveAdmin inserts or replaces the admin record.
func (r *AdminRepository) SaveAdmin(ctx context.Context, admin *domain.Admin) error {
	query := `
		INSERT INTO admins (` + adminColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (domain, login_name) DO UPDATE SET
			role_name = EXCLUDED.role_name,
			role_level = EXCLUDED.role_level,
			language = EXCLUDED.language,
			enabled = EXCLUDED.enabled,
			use_login_lock = EXCLUDED.use_login_lock,
			login_lock_count = EXCLUDED.login_lock_count,
			login_failures = EXCLUDED.login_failures,
			last_login_at = EXCLUDED.last_login_at,
			last_login_failed_at = EXCLUDED.last_login_failed_at,
			use_otp = EXCLUDED.use_otp,
			otp_seed = EXCLUDED.otp_seed,
			use_acl = EXCLUDED.use_acl,
			trust_hosts = EXCLUDED.trust_hosts,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		admin.Domain,
		admin.LoginName,
		admin.RoleName,
		admin.RoleLevel,
		admin.Language,
		admin.Enabled,
		admin.UseLoginLock,
		admin.LoginLockCount,
		admin.LoginFailures,
		admin.LastLoginAt,
		admin.LastLoginFailedAt,
		admin.UseOtp,
		admin.OtpSeed,
		admin.UseACL,
		admin.TrustHosts,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to save admin",
			"domain", admin.Domain, "login_name", admin.LoginName, "error", err)
		return fmt.Errorf("failed to save admin: %w", err)
	}
	return nil
}

// DeleteAdmin removes the named admin.
func (r *AdminRepository) DeleteAdmin(ctx context.Context, domainName, loginName string) error {
	query := `DELETE FROM admins WHERE domain = $1 AND login_name = $2`

	tag, err := r.db.Exec(ctx, query, domainName, loginName)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewAuthError(domain.CodeAdminNotFound, domain.ErrAccountNotFound, nil)
	}
	return nil
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var admin domain.Admin
	err := row.Scan(
		&admin.Domain,
		&admin.LoginName,
		&admin.RoleName,
		&admin.RoleLevel,
		&admin.Language,
		&admin.Enabled,
		&admin.UseLoginLock,
		&admin.LoginLockCount,
		&admin.LoginFailures,
		&admin.LastLoginAt,
		&admin.LastLoginFailedAt,
		&admin.UseOtp,
		&admin.OtpSeed,
		&admin.UseACL,
		&admin.TrustHosts,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
