package usecase

import (
	"crypto/sha1"
	"encoding/hex"
	"log/slog"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// HashFunc is the externally-supplied credential hash. The wire scheme
// compares presented hashes as hash(secret + nonce).
type HashFunc func(s string) string

// SHA1Hex is the default credential hash: lowercase hex SHA-1.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CredentialVerifier validates a presented credential hash against an
// account's configured factor: the stored password hash, or the current
// one-time password for the account's seed.
type CredentialVerifier struct {
	otp    port.OTPProvider // nil when the capability is absent
	hash   HashFunc
	logger *slog.Logger
}

// CredentialVerifierOption modifies the verifier.
type CredentialVerifierOption func(*CredentialVerifier)

// WithHashFunc overrides the credential hash function.
func WithHashFunc(hash HashFunc) CredentialVerifierOption {
	return func(v *CredentialVerifier) {
		v.hash = hash
	}
}

// NewCredentialVerifier creates a verifier. otp may be nil when no OTP
// provider is available.
func NewCredentialVerifier(otp port.OTPProvider, logger *slog.Logger, options ...CredentialVerifierOption) *CredentialVerifier {
	v := &CredentialVerifier{
		otp:    otp,
		hash:   SHA1Hex,
		logger: logger.With("component", "credential_verifier"),
	}
	for _, opt := range options {
		opt(v)
	}
	return v
}

// Verify checks presentedHash against hash(secret + nonce), where secret is
// the hashed current OTP value for OTP-mode accounts and the stored
// password hash otherwise.
//
// An OTP-mode account with no provider available fails with the generic
// invalid-password error; it never falls back to password verification.
func (v *CredentialVerifier) Verify(admin *domain.Admin, identity *domain.Identity, nonce, presentedHash string) error {
	var secret string
	if admin.UseOtp {
		if v.otp == nil {
			v.logger.Warn("otp required but no provider available",
				"domain", admin.Domain, "login_name", admin.LoginName)
			return domain.NewAuthError(domain.CodeInvalidPassword, domain.ErrInvalidPassword, nil)
		}
		value, err := v.otp.CurrentValue(admin.OtpSeed)
		if err != nil {
			v.logger.Error("otp provider failed",
				"domain", admin.Domain, "login_name", admin.LoginName, "error", err)
			return domain.NewAuthError(domain.CodeInvalidOtpPassword, domain.ErrInvalidOtp, nil)
		}
		secret = v.hash(value)
	} else {
		secret = identity.PasswordHash
	}

	if secret == "" {
		return domain.NewAuthError(domain.CodeInvalidPassword, domain.ErrInvalidPassword, nil)
	}

	if presentedHash != v.hash(secret+nonce) {
		if admin.UseOtp {
			return domain.NewAuthError(domain.CodeInvalidOtpPassword, domain.ErrInvalidOtp, nil)
		}
		return domain.NewAuthError(domain.CodeInvalidPassword, domain.ErrInvalidPassword, nil)
	}
	return nil
}
