package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-gate/app/domain"
	"admin-gate/app/utils/logger"
)

// Helper function to create a test admin repository with mocked database
func createTestAdminRepository(t *testing.T) (*AdminRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewAdminRepository(mockDB, testLogger).(*AdminRepository)
	return repo, mockDB
}

func createTestAdmin(t *testing.T) *domain.Admin {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Admin{
		Domain:         "acme",
		LoginName:      "alice",
		RoleName:       "operator",
		RoleLevel:      5,
		Language:       "en",
		Enabled:        true,
		UseLoginLock:   true,
		LoginLockCount: 3,
		UseOtp:         false,
		OtpSeed:        "SEED234567",
		UseACL:         true,
		TrustHosts:     []string{"10.0.0.1"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func adminRows(admins ...*domain.Admin) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"domain", "login_name", "role_name", "role_level", "language", "enabled",
		"use_login_lock", "login_lock_count", "login_failures",
		"last_login_at", "last_login_failed_at",
		"use_otp", "otp_seed", "use_acl", "trust_hosts",
		"created_at", "updated_at",
	})
	for _, a := range admins {
		rows.AddRow(
			a.Domain, a.LoginName, a.RoleName, a.RoleLevel, a.Language, a.Enabled,
			a.UseLoginLock, a.LoginLockCount, a.LoginFailures,
			a.LastLoginAt, a.LastLoginFailedAt,
			a.UseOtp, a.OtpSeed, a.UseACL, a.TrustHosts,
			a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}

func TestAdminRepository_FindAdmin(t *testing.T) {
	tests := []struct {
		name      string
		setupDB   func(pgxmock.PgxPoolIface)
		wantAdmin bool
		wantErr   bool
	}{
		{
			name: "admin found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM admins WHERE domain").
					WithArgs("acme", "alice").
					WillReturnRows(adminRows(createTestAdmin(t)))
			},
			wantAdmin: true,
		},
		{
			name: "absent admin is nil without error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM admins WHERE domain").
					WithArgs("acme", "alice").
					WillReturnRows(adminRows())
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM admins WHERE domain").
					WithArgs("acme", "alice").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAdminRepository(t)
			defer mockDB.Close()
			tt.setupDB(mockDB)

			admin, err := repo.FindAdmin(context.Background(), "acme", "alice")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				if tt.wantAdmin {
					require.NotNil(t, admin)
					assert.Equal(t, "alice", admin.LoginName)
					assert.Equal(t, []string{"10.0.0.1"}, admin.TrustHosts)
				} else {
					assert.Nil(t, admin)
				}
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_ListAdmins(t *testing.T) {
	repo, mockDB := createTestAdminRepository(t)
	defer mockDB.Close()

	first := createTestAdmin(t)
	second := createTestAdmin(t)
	second.LoginName = "bob"

	mockDB.ExpectQuery("SELECT(.+)FROM admins WHERE domain(.+)ORDER BY login_name").
		WithArgs("acme").
		WillReturnRows(adminRows(first, second))

	admins, err := repo.ListAdmins(context.Background(), "acme")

	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "alice", admins[0].LoginName)
	assert.Equal(t, "bob", admins[1].LoginName)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestAdminRepository_SaveAdmin(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.Admin)
		wantErr bool
	}{
		{
			name: "successful upsert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, admin *domain.Admin) {
				mockDB.ExpectExec("INSERT INTO admins").
					WithArgs(
						admin.Domain, admin.LoginName, admin.RoleName, admin.RoleLevel,
						admin.Language, admin.Enabled, admin.UseLoginLock, admin.LoginLockCount,
						admin.LoginFailures, admin.LastLoginAt, admin.LastLoginFailedAt,
						admin.UseOtp, admin.OtpSeed, admin.UseACL, admin.TrustHosts,
						admin.CreatedAt, admin.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface, admin *domain.Admin) {
				mockDB.ExpectExec("INSERT INTO admins").
					WithArgs(
						admin.Domain, admin.LoginName, admin.RoleName, admin.RoleLevel,
						admin.Language, admin.Enabled, admin.UseLoginLock, admin.LoginLockCount,
						admin.LoginFailures, admin.LastLoginAt, admin.LastLoginFailedAt,
						admin.UseOtp, admin.OtpSeed, admin.UseACL, admin.TrustHosts,
						admin.CreatedAt, admin.UpdatedAt,
					).
					WillReturnError(errors.New("constraint violation"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAdminRepository(t)
			defer mockDB.Close()

			admin := createTestAdmin(t)
			tt.setupDB(mockDB, admin)

			err := repo.SaveAdmin(context.Background(), admin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_DeleteAdmin(t *testing.T) {
	t.Run("deletes existing admin", func(t *testing.T) {
		repo, mockDB := createTestAdminRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM admins").
			WithArgs("acme", "alice").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteAdmin(context.Background(), "acme", "alice"))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing admin reported as not found", func(t *testing.T) {
		repo, mockDB := createTestAdminRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM admins").
			WithArgs("acme", "ghost").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteAdmin(context.Background(), "acme", "ghost")
		require.Error(t, err)
		assert.Equal(t, domain.CodeAdminNotFound, domain.ErrorCode(err))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
