package usecase

import (
	"log/slog"
	"sync"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// ObserverRegistry is a thread-safe set of login observers owned by the
// orchestrator. Dispatch runs over a snapshot so membership changes and
// observer panics never touch admission state.
type ObserverRegistry struct {
	logger *slog.Logger

	mu        sync.RWMutex
	observers map[port.LoginObserver]struct{}
}

// NewObserverRegistry creates an empty registry.
func NewObserverRegistry(logger *slog.Logger) *ObserverRegistry {
	return &ObserverRegistry{
		logger:    logger.With("component", "observer_registry"),
		observers: make(map[port.LoginObserver]struct{}),
	}
}

// Register adds an observer. Adding the same observer twice is a no-op.
func (r *ObserverRegistry) Register(observer port.LoginObserver) {
	if observer == nil {
		return
	}
	r.mu.Lock()
	r.observers[observer] = struct{}{}
	r.mu.Unlock()
}

// Unregister removes an observer. Unknown observers are ignored.
func (r *ObserverRegistry) Unregister(observer port.LoginObserver) {
	r.mu.Lock()
	delete(r.observers, observer)
	r.mu.Unlock()
}

// NotifySuccess dispatches a login-success event.
func (r *ObserverRegistry) NotifySuccess(admin *domain.Admin, session domain.SessionHandle) {
	for _, o := range r.snapshot() {
		r.dispatch(func() { o.OnLoginSuccess(admin, session) })
	}
}

// NotifyFailed dispatches a generic login-failure event.
func (r *ObserverRegistry) NotifyFailed(admin *domain.Admin, session domain.SessionHandle, err error) {
	for _, o := range r.snapshot() {
		r.dispatch(func() { o.OnLoginFailed(admin, session, err) })
	}
}

// NotifyLocked dispatches a lockout-triggered failure event.
func (r *ObserverRegistry) NotifyLocked(admin *domain.Admin, session domain.SessionHandle) {
	for _, o := range r.snapshot() {
		r.dispatch(func() { o.OnLoginLocked(admin, session) })
	}
}

// NotifyLogout dispatches a logout event.
func (r *ObserverRegistry) NotifyLogout(admin *domain.Admin, session domain.SessionHandle) {
	for _, o := range r.snapshot() {
		r.dispatch(func() { o.OnLogout(admin, session) })
	}
}

func (r *ObserverRegistry) snapshot() []port.LoginObserver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]port.LoginObserver, 0, len(r.observers))
	for o := range r.observers {
		out = append(out, o)
	}
	return out
}

// dispatch isolates a single observer invocation; a panicking observer is
// logged and must not mask the authentication result.
func (r *ObserverRegistry) dispatch(notify func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("login observer panicked", "panic", rec)
		}
	}()
	notify()
}
