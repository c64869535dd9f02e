package usecase

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"admin-gate/app/domain"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []string
	panics bool
}

func (o *recordingObserver) record(event string) {
	o.mu.Lock()
	o.events = append(o.events, event)
	o.mu.Unlock()
	if o.panics {
		panic("observer exploded")
	}
}

func (o *recordingObserver) seen() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	copy(out, o.events)
	return out
}

func (o *recordingObserver) OnLoginSuccess(admin *domain.Admin, session domain.SessionHandle) {
	o.record("success")
}

func (o *recordingObserver) OnLoginFailed(admin *domain.Admin, session domain.SessionHandle, err error) {
	o.record("failed")
}

func (o *recordingObserver) OnLoginLocked(admin *domain.Admin, session domain.SessionHandle) {
	o.record("locked")
}

func (o *recordingObserver) OnLogout(admin *domain.Admin, session domain.SessionHandle) {
	o.record("logout")
}

func TestObserverRegistry_Dispatch(t *testing.T) {
	r := NewObserverRegistry(testLogger(t))
	observer := &recordingObserver{}
	r.Register(observer)

	admin := &domain.Admin{LoginName: "alice"}
	session := newFakeSession("s-1", "10.0.0.1")

	r.NotifySuccess(admin, session)
	r.NotifyFailed(admin, session, errors.New("bad password"))
	r.NotifyLocked(admin, session)
	r.NotifyLogout(admin, session)

	assert.Equal(t, []string{"success", "failed", "locked", "logout"}, observer.seen())
}

func TestObserverRegistry_RegisterTwiceDispatchesOnce(t *testing.T) {
	r := NewObserverRegistry(testLogger(t))
	observer := &recordingObserver{}
	r.Register(observer)
	r.Register(observer)

	r.NotifySuccess(&domain.Admin{}, newFakeSession("s-1", "h"))
	assert.Len(t, observer.seen(), 1)
}

func TestObserverRegistry_Unregister(t *testing.T) {
	r := NewObserverRegistry(testLogger(t))
	observer := &recordingObserver{}
	r.Register(observer)
	r.Unregister(observer)

	r.NotifySuccess(&domain.Admin{}, newFakeSession("s-1", "h"))
	assert.Empty(t, observer.seen())

	// Unknown observers and nil are ignored.
	r.Unregister(&recordingObserver{})
	r.Register(nil)
}

func TestObserverRegistry_PanicDoesNotStopDispatch(t *testing.T) {
	r := NewObserverRegistry(testLogger(t))
	bad := &recordingObserver{panics: true}
	good := &recordingObserver{}
	r.Register(bad)
	r.Register(good)

	assert.NotPanics(t, func() {
		r.NotifySuccess(&domain.Admin{}, newFakeSession("s-1", "h"))
	})
	assert.Len(t, good.seen(), 1)
	assert.Len(t, bad.seen(), 1)
}
