package domain

import "time"

// Admin represents a privileged account scoped to a tenant domain.
// The mutable login bookkeeping fields (LoginFailures, LastLoginAt,
// LastLoginFailedAt, Enabled) are owned by the account store and updated
// through it as a side effect of authentication outcomes.
type Admin struct {
	Domain    string `json:"domain"`
	LoginName string `json:"login_name"`

	// Role
	RoleName  string `json:"role_name"`
	RoleLevel int    `json:"role_level"`

	Language string `json:"lang"`
	Enabled  bool   `json:"enabled"`

	// Lockout policy and bookkeeping
	UseLoginLock      bool       `json:"use_login_lock"`
	LoginLockCount    int        `json:"login_lock_count"`
	LoginFailures     int        `json:"login_failures"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	LastLoginFailedAt *time.Time `json:"last_login_failed_at,omitempty"`

	// Credential mode: static password hash (via the identity directory)
	// or one-time password derived from OtpSeed.
	UseOtp  bool   `json:"use_otp"`
	OtpSeed string `json:"-"`

	// Network origin restriction
	UseACL     bool     `json:"use_acl"`
	TrustHosts []string `json:"trust_hosts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the base user record resolved from the identity directory.
// It is the source of the stored password hash for password-mode admins.
type Identity struct {
	Domain       string `json:"domain"`
	LoginName    string `json:"login_name"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
