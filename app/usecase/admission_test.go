package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin-gate/app/domain"
	"admin-gate/app/mocks"
	"admin-gate/app/utils/logger"
)

// fakeSession is the in-memory session handle shared by the usecase tests.
type fakeSession struct {
	id     string
	remote string
	nonce  string

	mu        sync.Mutex
	domain    string
	loginName string
	closed    bool
}

func newFakeSession(id, remote string) *fakeSession {
	return &fakeSession{id: id, remote: remote, nonce: "nonce-" + id}
}

func (s *fakeSession) ID() string            { return s.id }
func (s *fakeSession) RemoteAddress() string { return s.remote }
func (s *fakeSession) Nonce() string         { return s.nonce }

func (s *fakeSession) Domain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.domain
}

func (s *fakeSession) AdminLoginName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginName
}

func (s *fakeSession) Bind(domainName, loginName string) {
	s.mu.Lock()
	s.domain = domainName
	s.loginName = loginName
	s.mu.Unlock()
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *fakeSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	return l
}

func entryFor(session *fakeSession, loginName string, level int, loginTime time.Time) *domain.ActiveSession {
	return &domain.ActiveSession{
		RoleLevel: level,
		LoginTime: loginTime,
		Session:   session,
		LoginName: loginName,
	}
}

func TestAdmissionController_UnlimitedWhenNoMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))
	now := time.Now()

	for i, id := range []string{"s-1", "s-2", "s-3"} {
		entry := entryFor(newFakeSession(id, "10.0.0.1"), "admin", i, now)
		require.NoError(t, c.Admit(context.Background(), "acme", entry, 0, false))
	}
	assert.Equal(t, 3, c.Count("acme"))
}

func TestAdmissionController_NonForceRejectedAtCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))
	now := time.Now()

	occupant := newFakeSession("s-occupant", "10.0.0.5")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(occupant, "first", 5, now), 1, false))

	err := c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-new", "10.0.0.6"), "second", 9, now.Add(time.Second)), 1, false)

	require.Error(t, err)
	assert.Equal(t, domain.CodeMaxSession, domain.ErrorCode(err))

	// The rejection names the blocking session even when the candidate
	// outranks it; plain admission never evicts.
	details := domain.ErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "first", details["login_name"])
	assert.Equal(t, "s-occupant", details["session_id"])
	assert.Equal(t, "10.0.0.5", details["ip"])

	assert.Equal(t, 1, c.Count("acme"))
	assert.False(t, occupant.isClosed())
}

func TestAdmissionController_ForceEvictsLowestPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t),
		WithEvictionWait(20*time.Millisecond))
	now := time.Now()

	victim := newFakeSession("s-victim", "10.0.0.5")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(victim, "operator", 5, now), 1, false))

	push.EXPECT().
		Push(gomock.Any(), victim, "terminate", map[string]any{"kick_by": "root"}).
		Return(nil)

	err := c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-root", "10.0.0.6"), "root", 9, now.Add(time.Second)), 1, true)
	require.NoError(t, err)

	// The victim ignored the notice, so its handle was closed on timeout.
	assert.True(t, victim.isClosed())

	sessions := c.Sessions("acme")
	require.Len(t, sessions, 1)
	assert.Equal(t, "root", sessions[0].LoginName)
}

func TestAdmissionController_ForceEvictionWaitsForLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t),
		WithEvictionWait(5*time.Second))
	now := time.Now()

	victim := newFakeSession("s-victim", "10.0.0.5")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(victim, "operator", 5, now), 1, false))

	// The victim's client logs out on its own once notified.
	push.EXPECT().
		Push(gomock.Any(), victim, "terminate", gomock.Any()).
		DoAndReturn(func(context.Context, domain.SessionHandle, string, map[string]any) error {
			go func() {
				time.Sleep(10 * time.Millisecond)
				c.Release("acme", victim)
			}()
			return nil
		})

	start := time.Now()
	err := c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-root", "10.0.0.6"), "root", 9, now.Add(time.Second)), 1, true)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second, "must not run out the full wait")
	assert.False(t, victim.isClosed(), "cooperative logout leaves the handle open")
	assert.Equal(t, 1, c.Count("acme"))
}

func TestAdmissionController_ForceNeverEvictsHigherPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))
	now := time.Now()

	superior := newFakeSession("s-superior", "10.0.0.5")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(superior, "root", 9, now), 1, false))

	err := c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-op", "10.0.0.6"), "operator", 5, now.Add(time.Second)), 1, true)

	require.Error(t, err)
	assert.Equal(t, domain.CodeMaxSession, domain.ErrorCode(err))
	assert.Nil(t, domain.ErrorDetails(err), "forcing rejection carries no blocker")
	assert.False(t, superior.isClosed())
	assert.Equal(t, 1, c.Count("acme"))
}

func TestAdmissionController_ForceEqualPriorityEvictsEarlierLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t),
		WithEvictionWait(20*time.Millisecond))
	now := time.Now()

	older := newFakeSession("s-older", "10.0.0.5")
	newer := newFakeSession("s-newer", "10.0.0.6")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(older, "alice", 5, now), 2, false))
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(newer, "bob", 5, now.Add(time.Minute)), 2, false))

	push.EXPECT().
		Push(gomock.Any(), older, "terminate", gomock.Any()).
		Return(nil)

	err := c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-carol", "10.0.0.7"), "carol", 5, now.Add(2*time.Minute)), 2, true)
	require.NoError(t, err)

	assert.True(t, older.isClosed())
	assert.False(t, newer.isClosed())
}

func TestAdmissionController_EvictionOrderSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))
	now := time.Now()

	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-b", "h"), "bob", 7, now.Add(time.Second)), 0, false))
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-a", "h"), "alice", 3, now.Add(2*time.Second)), 0, false))
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-c", "h"), "carol", 7, now), 0, false))

	sessions := c.Sessions("acme")
	require.Len(t, sessions, 3)
	assert.Equal(t, "alice", sessions[0].LoginName)
	assert.Equal(t, "carol", sessions[1].LoginName)
	assert.Equal(t, "bob", sessions[2].LoginName)
}

func TestAdmissionController_ReleaseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))

	session := newFakeSession("s-1", "h")
	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(session, "alice", 5, time.Now()), 0, false))

	c.Release("acme", session)
	c.Release("acme", session)
	c.Release("unknown-domain", session)

	assert.Zero(t, c.Count("acme"))
}

func TestAdmissionController_DomainsAreIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t))
	now := time.Now()

	require.NoError(t, c.Admit(context.Background(), "acme",
		entryFor(newFakeSession("s-1", "h"), "alice", 5, now), 1, false))

	// A full acme does not block globex.
	require.NoError(t, c.Admit(context.Background(), "globex",
		entryFor(newFakeSession("s-2", "h"), "bob", 5, now), 1, false))

	assert.Equal(t, 1, c.Count("acme"))
	assert.Equal(t, 1, c.Count("globex"))
	assert.Nil(t, c.Sessions("unknown"))
}

func TestAdmissionController_EvictSkipsAlreadyReleasedVictim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Push expectation: a victim that logged out before the eviction
	// reached it must not receive a terminate notice.
	push := mocks.NewMockPushChannel(ctrl)
	c := NewAdmissionController(push, testLogger(t), WithEvictionWait(10*time.Millisecond))

	session := newFakeSession("s-alice", "10.0.0.1")
	victim := entryFor(session, "alice", 1, time.Now())
	require.NoError(t, c.Admit(context.Background(), "acme", victim, 0, false))
	c.Release("acme", session)

	c.evict(context.Background(), "acme", c.domain("acme"), victim, "bob")
	assert.False(t, session.isClosed(), "released victim's handle left open")
}
