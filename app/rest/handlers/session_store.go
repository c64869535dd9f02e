package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"admin-gate/app/domain"
)

// clientSession is the HTTP-facing session handle. It is issued together
// with its nonce before login and bound to an admin identity on success.
type clientSession struct {
	id        string
	remote    string
	nonce     string
	createdAt time.Time

	mu        sync.RWMutex
	domain    string
	loginName string
	closed    bool
}

func (s *clientSession) ID() string            { return s.id }
func (s *clientSession) RemoteAddress() string { return s.remote }
func (s *clientSession) Nonce() string         { return s.nonce }

func (s *clientSession) Domain() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.domain
}

func (s *clientSession) AdminLoginName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginName
}

func (s *clientSession) Bind(domainName, loginName string) {
	s.mu.Lock()
	s.domain = domainName
	s.loginName = loginName
	s.mu.Unlock()
}

func (s *clientSession) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *clientSession) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

var _ domain.SessionHandle = (*clientSession)(nil)

// SessionStore issues and tracks client sessions. Unbound sessions expire
// after the nonce TTL; bound sessions live until logout.
type SessionStore struct {
	ttl     time.Duration
	nowTime func() time.Time

	mu       sync.Mutex
	sessions map[string]*clientSession
}

// NewSessionStore creates a session store with the given nonce TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		nowTime:  time.Now,
		sessions: make(map[string]*clientSession),
	}
}

// Issue creates a session for the tenant domain and remote address with a
// fresh random nonce.
func (st *SessionStore) Issue(domainName, remote string) *clientSession {
	session := &clientSession{
		id:        uuid.New().String(),
		remote:    remote,
		nonce:     uuid.New().String(),
		createdAt: st.nowTime(),
		domain:    domainName,
	}

	st.mu.Lock()
	st.purgeLocked()
	st.sessions[session.id] = session
	st.mu.Unlock()
	return session
}

// Get returns the session by ID, if present and not closed.
func (st *SessionStore) Get(id string) (*clientSession, bool) {
	st.mu.Lock()
	session, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok || session.isClosed() {
		return nil, false
	}
	return session, true
}

// Remove drops the session. Idempotent.
func (st *SessionStore) Remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// purgeLocked drops closed sessions and expired sessions that never bound
// an identity. Closed sessions reach the store when an eviction closes the
// handle without the client ever logging out.
func (st *SessionStore) purgeLocked() {
	cutoff := st.nowTime().Add(-st.ttl)
	for id, session := range st.sessions {
		if session.isClosed() {
			delete(st.sessions, id)
			continue
		}
		if session.AdminLoginName() == "" && session.createdAt.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
