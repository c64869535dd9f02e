package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_CheckLocked(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-30 * time.Second)
	old := now.Add(-10 * time.Minute)

	tests := []struct {
		name         string
		admin        Admin
		lockDuration time.Duration
		wantLocked   bool
	}{
		{
			name:       "enabled account is never locked",
			admin:      Admin{Enabled: true},
			wantLocked: false,
		},
		{
			name:       "disabled with no failure time stays locked",
			admin:      Admin{Enabled: false},
			wantLocked: true,
		},
		{
			name:         "disabled with recent failure stays locked",
			admin:        Admin{Enabled: false, LastLoginFailedAt: &recent},
			lockDuration: 180 * time.Second,
			wantLocked:   true,
		},
		{
			name:         "disabled with expired failure is retryable",
			admin:        Admin{Enabled: false, LastLoginFailedAt: &old},
			lockDuration: 180 * time.Second,
			wantLocked:   false,
		},
		{
			name:       "zero lock duration falls back to default",
			admin:      Admin{Enabled: false, LastLoginFailedAt: &recent},
			wantLocked: true,
		},
		{
			name:         "negative lock duration falls back to default",
			admin:        Admin{Enabled: false, LastLoginFailedAt: &old},
			lockDuration: -1,
			wantLocked:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.admin.CheckLocked(now, tt.lockDuration)
			if tt.wantLocked {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrLockedAccount))
				assert.Equal(t, CodeLockedAdmin, ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdmin_CheckLocked_ExpiryDoesNotReEnable(t *testing.T) {
	now := time.Now()
	old := now.Add(-time.Hour)
	admin := Admin{Enabled: false, LastLoginFailedAt: &old}

	require.NoError(t, admin.CheckLocked(now, 180*time.Second))
	// Only a successful login flips the flag back.
	assert.False(t, admin.Enabled)
}

func TestAdmin_RecordLoginFailure(t *testing.T) {
	now := time.Now()

	t.Run("increments failures and disables at threshold", func(t *testing.T) {
		admin := Admin{Enabled: true, UseLoginLock: true, LoginLockCount: 3}

		admin.RecordLoginFailure(now)
		admin.RecordLoginFailure(now)
		assert.True(t, admin.Enabled)
		assert.Equal(t, 2, admin.LoginFailures)

		admin.RecordLoginFailure(now)
		assert.False(t, admin.Enabled)
		assert.Equal(t, 3, admin.LoginFailures)
	})

	t.Run("never disables when lock is off", func(t *testing.T) {
		admin := Admin{Enabled: true, UseLoginLock: false, LoginLockCount: 1}
		for i := 0; i < 10; i++ {
			admin.RecordLoginFailure(now)
		}
		assert.True(t, admin.Enabled)
		assert.Equal(t, 10, admin.LoginFailures)
	})

	t.Run("zero threshold never disables", func(t *testing.T) {
		admin := Admin{Enabled: true, UseLoginLock: true, LoginLockCount: 0}
		admin.RecordLoginFailure(now)
		assert.True(t, admin.Enabled)
	})

	t.Run("failure time frozen while disabled", func(t *testing.T) {
		first := now
		later := now.Add(time.Minute)
		admin := Admin{Enabled: true, UseLoginLock: true, LoginLockCount: 1}

		admin.RecordLoginFailure(first)
		require.False(t, admin.Enabled)
		require.NotNil(t, admin.LastLoginFailedAt)
		assert.Equal(t, first, *admin.LastLoginFailedAt)

		// Probing a locked account must not extend the window.
		admin.RecordLoginFailure(later)
		assert.Equal(t, first, *admin.LastLoginFailedAt)
		assert.Equal(t, 2, admin.LoginFailures)
	})
}

func TestAdmin_RecordLoginSuccess(t *testing.T) {
	now := time.Now()
	failedAt := now.Add(-time.Minute)
	admin := Admin{
		Enabled:           false,
		LoginFailures:     4,
		LastLoginFailedAt: &failedAt,
	}

	admin.RecordLoginSuccess(now)

	assert.True(t, admin.Enabled)
	assert.Zero(t, admin.LoginFailures)
	assert.Nil(t, admin.LastLoginFailedAt)
	require.NotNil(t, admin.LastLoginAt)
	assert.Equal(t, now, *admin.LastLoginAt)
}
