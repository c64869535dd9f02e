package domain

import "time"

// SessionHandle is the network session this service admits or evicts. The
// session object itself (socket, addressing, wire format) is owned by the
// transport layer; this is the contract the controller needs from it.
type SessionHandle interface {
	// ID uniquely identifies the session. Two ActiveSessions are equal iff
	// they reference the same session ID.
	ID() string
	// RemoteAddress is the requester's origin, matched against trust hosts.
	RemoteAddress() string
	// Domain is the tenant domain the session belongs to.
	Domain() string
	// AdminLoginName is the login bound to the session after a successful
	// authentication; empty until then.
	AdminLoginName() string
	// Nonce is the session-scoped random string mixed into the credential
	// hash.
	Nonce() string
	// Bind attaches the resolved domain and login to the session.
	Bind(domain, loginName string)
	// Close forcibly terminates the session.
	Close() error
}

// ActiveSession is one admitted session for one tenant domain.
type ActiveSession struct {
	RoleLevel int
	LoginTime time.Time
	Session   SessionHandle
	LoginName string
}

// Before reports whether s is a better eviction candidate than other:
// lower role level first, earlier login time breaking ties.
func (s *ActiveSession) Before(other *ActiveSession) bool {
	if s.RoleLevel != other.RoleLevel {
		return s.RoleLevel < other.RoleLevel
	}
	return s.LoginTime.Before(other.LoginTime)
}

// Is reports whether the entry references the given session.
func (s *ActiveSession) Is(session SessionHandle) bool {
	return s.Session != nil && session != nil && s.Session.ID() == session.ID()
}
