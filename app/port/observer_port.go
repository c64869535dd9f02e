package port

//go:generate mockgen -source=observer_port.go -destination=../mocks/mock_observer_port.go -package=mocks

import "admin-gate/app/domain"

// LoginObserver receives session lifecycle events. Invocation is
// synchronous and fire-and-forget; a misbehaving observer never affects the
// authentication outcome.
type LoginObserver interface {
	OnLoginSuccess(admin *domain.Admin, session domain.SessionHandle)
	OnLoginFailed(admin *domain.Admin, session domain.SessionHandle, err error)
	OnLoginLocked(admin *domain.Admin, session domain.SessionHandle)
	OnLogout(admin *domain.Admin, session domain.SessionHandle)
}
