package domain

import "errors"

// Authentication and admission failures. All are request-scoped and
// recoverable by the caller.
var (
	ErrAccountNotFound         = errors.New("admin not found")
	ErrLockedAccount           = errors.New("account locked")
	ErrUntrustedOrigin         = errors.New("origin host not trusted")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrInvalidOtp              = errors.New("invalid otp password")
	ErrMaxSession              = errors.New("max session limit reached")
	ErrRequestingAdminNotFound = errors.New("requesting admin not found")
	ErrPermissionDenied        = errors.New("permission denied")
)

// Stable error codes surfaced to clients.
const (
	CodeAdminNotFound         = "admin-not-found"
	CodeLockedAdmin           = "locked-admin"
	CodeNotTrustHost          = "not-trust-host"
	CodeInvalidPassword       = "invalid-password"
	CodeInvalidOtpPassword    = "invalid-otp-password"
	CodeMaxSession            = "max-session"
	CodeRequestAdminNotFound  = "request-admin-not-found"
	CodePermissionDenied      = "permission-denied"
	CodeCannotRemoveRequester = "cannot-remove-requesting-admin"
)

// AuthError is a tagged authentication failure carrying a stable code and
// an optional structured payload (for example the blocking-session
// descriptor of a max-session rejection).
type AuthError struct {
	Code    string
	Details map[string]any
	Err     error
}

// NewAuthError creates a tagged failure wrapping the matching sentinel.
func NewAuthError(code string, err error, details map[string]any) *AuthError {
	return &AuthError{Code: code, Err: err, Details: details}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// BlockingSession identifies the active session that blocked a non-forcing
// admission, so the caller can present it to the requester.
type BlockingSession struct {
	LoginName     string `json:"login_name"`
	SessionID     string `json:"session_id"`
	RemoteAddress string `json:"ip"`
}

// NewMaxSessionError builds a max-session failure. The blocker descriptor
// is attached for non-forcing rejections and nil for forcing ones.
func NewMaxSessionError(blocker *BlockingSession) *AuthError {
	var details map[string]any
	if blocker != nil {
		details = map[string]any{
			"login_name": blocker.LoginName,
			"session_id": blocker.SessionID,
			"ip":         blocker.RemoteAddress,
		}
	}
	return NewAuthError(CodeMaxSession, ErrMaxSession, details)
}

// ErrorCode extracts the stable code from an error chain, or empty when the
// error is not a tagged authentication failure.
func ErrorCode(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}
	return ""
}

// ErrorDetails extracts the structured payload from an error chain, if any.
func ErrorDetails(err error) map[string]any {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Details
	}
	return nil
}
