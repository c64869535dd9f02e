package domain

import "time"

// DefaultLockDuration applies when the tenant does not configure
// login_lock_time.
const DefaultLockDuration = 180 * time.Second

// CheckLocked reports whether the account is still inside its lockout
// window at the given evaluation time. A disabled account with no recorded
// failure time stays locked; only a failure older than the window makes the
// account eligible for retry again. The stored Enabled flag is flipped back
// only by RecordLoginSuccess.
func (a *Admin) CheckLocked(now time.Time, lockDuration time.Duration) error {
	if a.Enabled {
		return nil
	}
	if lockDuration <= 0 {
		lockDuration = DefaultLockDuration
	}
	if a.LastLoginFailedAt == nil || now.Sub(*a.LastLoginFailedAt) < lockDuration {
		return NewAuthError(CodeLockedAdmin, ErrLockedAccount, nil)
	}
	return nil
}

// RecordLoginFailure increments the failure counter and disables the
// account once the configured lock threshold is reached. The last-failed
// timestamp is not overwritten while the account is already disabled, so
// repeated probing cannot extend the lock window indefinitely.
func (a *Admin) RecordLoginFailure(now time.Time) {
	if a.Enabled {
		a.LastLoginFailedAt = &now
	}
	a.LoginFailures++
	if a.UseLoginLock && a.LoginLockCount > 0 && a.LoginFailures >= a.LoginLockCount {
		a.Enabled = false
	}
}

// RecordLoginSuccess resets the failure bookkeeping and re-enables the
// account.
func (a *Admin) RecordLoginSuccess(now time.Time) {
	a.LastLoginAt = &now
	a.LastLoginFailedAt = nil
	a.LoginFailures = 0
	a.Enabled = true
}
