package usecase

import (
	"log/slog"

	"admin-gate/app/domain"
)

// AccessGate validates a session's network origin against an admin's
// trust-host allow-list.
type AccessGate struct {
	logger *slog.Logger
}

// NewAccessGate creates a new access gate.
func NewAccessGate(logger *slog.Logger) *AccessGate {
	return &AccessGate{
		logger: logger.With("component", "access_gate"),
	}
}

// Check passes when ACL enforcement is off for the account or the session's
// remote address exactly matches a trust-host entry. An enforced empty list
// rejects every origin.
func (g *AccessGate) Check(admin *domain.Admin, session domain.SessionHandle) error {
	if !admin.UseACL {
		return nil
	}

	remote := session.RemoteAddress()
	for _, host := range admin.TrustHosts {
		if host != "" && host == remote {
			return nil
		}
	}

	g.logger.Warn("login rejected by trust host list",
		"domain", session.Domain(),
		"login_name", admin.LoginName,
		"remote", remote)
	return domain.NewAuthError(domain.CodeNotTrustHost, domain.ErrUntrustedOrigin, nil)
}
