package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// AuthUseCase sequences an authentication attempt: lockout check, origin
// check, credential check, then session admission. Every failure after the
// account is resolved updates the lockout bookkeeping before being
// surfaced, and observers are notified of the outcome.
type AuthUseCase struct {
	admins     port.AdminRepository
	identities port.IdentityDirectory
	tenants    port.TenantConfig
	verifier   *CredentialVerifier
	gate       *AccessGate
	admission  *AdmissionController
	observers  *ObserverRegistry
	logger     *slog.Logger
	nowTime    func() time.Time
}

// AuthUseCaseOption modifies the use case.
type AuthUseCaseOption func(*AuthUseCase)

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(nowFunc func() time.Time) AuthUseCaseOption {
	return func(uc *AuthUseCase) {
		uc.nowTime = nowFunc
	}
}

// NewAuthUseCase creates the authentication orchestrator.
func NewAuthUseCase(
	admins port.AdminRepository,
	identities port.IdentityDirectory,
	tenants port.TenantConfig,
	verifier *CredentialVerifier,
	gate *AccessGate,
	admission *AdmissionController,
	logger *slog.Logger,
	options ...AuthUseCaseOption,
) *AuthUseCase {
	uc := &AuthUseCase{
		admins:     admins,
		identities: identities,
		tenants:    tenants,
		verifier:   verifier,
		gate:       gate,
		admission:  admission,
		observers:  NewObserverRegistry(logger),
		logger:     logger.With("component", "auth_usecase"),
		nowTime:    time.Now,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

// Login authenticates the session for the named admin of the session's
// domain and admits it into the active set.
func (uc *AuthUseCase) Login(ctx context.Context, session domain.SessionHandle, loginName, presentedHash string, force bool) (*domain.Admin, error) {
	domainName := session.Domain()

	admin, err := uc.admins.FindAdmin(ctx, domainName, loginName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, domain.NewAuthError(domain.CodeAdminNotFound, domain.ErrAccountNotFound, nil)
	}

	now := uc.nowTime()

	if err := uc.authenticate(ctx, domainName, admin, session, presentedHash, force, now); err != nil {
		uc.recordFailure(ctx, admin, now)
		if errors.Is(err, domain.ErrLockedAccount) {
			uc.observers.NotifyLocked(admin, session)
		} else {
			uc.observers.NotifyFailed(admin, session, err)
		}
		return nil, err
	}

	admin.RecordLoginSuccess(now)
	uc.saveBookkeeping(ctx, admin)

	session.Bind(domainName, admin.LoginName)
	uc.logger.Info("admin logged in",
		"domain", domainName,
		"login_name", admin.LoginName,
		"session_id", session.ID(),
		"remote", session.RemoteAddress())

	uc.observers.NotifySuccess(admin, session)
	return admin, nil
}

func (uc *AuthUseCase) authenticate(ctx context.Context, domainName string, admin *domain.Admin, session domain.SessionHandle, presentedHash string, force bool, now time.Time) error {
	if err := admin.CheckLocked(now, uc.lockDuration(ctx, domainName)); err != nil {
		return err
	}

	if err := uc.gate.Check(admin, session); err != nil {
		return err
	}

	identity, err := uc.identities.ResolveIdentity(ctx, domainName, admin.LoginName)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	if identity == nil {
		return domain.NewAuthError(domain.CodeAdminNotFound, domain.ErrAccountNotFound, nil)
	}

	if err := uc.verifier.Verify(admin, identity, session.Nonce(), presentedHash); err != nil {
		return err
	}

	entry := &domain.ActiveSession{
		RoleLevel: admin.RoleLevel,
		LoginTime: now,
		Session:   session,
		LoginName: admin.LoginName,
	}
	return uc.admission.Admit(ctx, domainName, entry, uc.maxSessions(ctx, domainName), force)
}

// Logout releases the session's slot and notifies observers. Sessions that
// never bound a domain and login are ignored.
func (uc *AuthUseCase) Logout(ctx context.Context, session domain.SessionHandle) {
	domainName := session.Domain()
	loginName := session.AdminLoginName()
	if domainName == "" || loginName == "" {
		return
	}

	uc.logger.Debug("admin logged out",
		"domain", domainName,
		"login_name", loginName,
		"session_id", session.ID())

	uc.admission.Release(domainName, session)

	admin, err := uc.admins.FindAdmin(ctx, domainName, loginName)
	if err != nil || admin == nil {
		return
	}
	uc.observers.NotifyLogout(admin, session)
}

// RegisterObserver adds a login observer.
func (uc *AuthUseCase) RegisterObserver(observer port.LoginObserver) {
	uc.observers.Register(observer)
}

// UnregisterObserver removes a login observer.
func (uc *AuthUseCase) UnregisterObserver(observer port.LoginObserver) {
	uc.observers.Unregister(observer)
}

// ActiveSessions lists the domain's admitted sessions in eviction order.
func (uc *AuthUseCase) ActiveSessions(domainName string) []*domain.ActiveSession {
	return uc.admission.Sessions(domainName)
}

// recordFailure updates the lockout bookkeeping through the account store.
// Failure accounting must not be skipped by an early return, so persistence
// problems are logged rather than surfaced.
func (uc *AuthUseCase) recordFailure(ctx context.Context, admin *domain.Admin, now time.Time) {
	admin.RecordLoginFailure(now)
	uc.saveBookkeeping(ctx, admin)
}

func (uc *AuthUseCase) saveBookkeeping(ctx context.Context, admin *domain.Admin) {
	if err := uc.admins.SaveAdmin(ctx, admin); err != nil {
		uc.logger.Error("failed to persist login bookkeeping",
			"domain", admin.Domain,
			"login_name", admin.LoginName,
			"error", err)
	}
}

func (uc *AuthUseCase) lockDuration(ctx context.Context, domainName string) time.Duration {
	value, ok := uc.intParameter(ctx, domainName, port.ParamLoginLockTime)
	if !ok {
		return domain.DefaultLockDuration
	}
	return time.Duration(value) * time.Second
}

func (uc *AuthUseCase) maxSessions(ctx context.Context, domainName string) int {
	value, ok := uc.intParameter(ctx, domainName, port.ParamMaxSessions)
	if !ok {
		return 0 // unlimited
	}
	return value
}

func (uc *AuthUseCase) intParameter(ctx context.Context, domainName, key string) (int, bool) {
	raw, found, err := uc.tenants.GetParameter(ctx, domainName, key)
	if err != nil {
		uc.logger.Warn("failed to read tenant parameter",
			"domain", domainName, "key", key, "error", err)
		return 0, false
	}
	if !found {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		uc.logger.Warn("malformed tenant parameter",
			"domain", domainName, "key", key, "value", raw)
		return 0, false
	}
	return value, true
}
