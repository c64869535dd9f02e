package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"admin-gate/app/domain"
	"admin-gate/app/port"
)

// DefaultEvictionWait bounds how long a forced eviction waits for the
// evicted session's own logout before closing its handle directly.
const DefaultEvictionWait = 5 * time.Second

// AdmissionController maintains the per-domain set of active sessions,
// enforces the configured maximum and performs priority eviction. Within a
// domain the whole capacity-check / evict / insert sequence is serialized;
// Release only takes the state lock so a logout racing an in-flight
// eviction wait can satisfy the wait condition.
type AdmissionController struct {
	push         port.PushChannel
	logger       *slog.Logger
	evictionWait time.Duration

	mu      sync.Mutex
	domains map[string]*domainSessions
}

type domainSessions struct {
	admitMu sync.Mutex // serializes admission decisions

	mu      sync.Mutex              // guards entries and changed
	entries []*domain.ActiveSession // ordered by (role level asc, login time asc)
	changed chan struct{}           // closed and replaced on every removal
}

// AdmissionOption modifies the controller.
type AdmissionOption func(*AdmissionController)

// WithEvictionWait overrides the forced-eviction wait deadline.
func WithEvictionWait(d time.Duration) AdmissionOption {
	return func(c *AdmissionController) {
		c.evictionWait = d
	}
}

// NewAdmissionController creates a controller dispatching eviction notices
// through the given push channel.
func NewAdmissionController(push port.PushChannel, logger *slog.Logger, options ...AdmissionOption) *AdmissionController {
	c := &AdmissionController{
		push:         push,
		logger:       logger.With("component", "admission_controller"),
		evictionWait: DefaultEvictionWait,
		domains:      make(map[string]*domainSessions),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *AdmissionController) domain(name string) *domainSessions {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.domains[name]
	if !ok {
		d = &domainSessions{changed: make(chan struct{})}
		c.domains[name] = d
	}
	return d
}

// Admit registers the entry as active for the domain, enforcing
// maxSessions (unlimited when <= 0). At capacity a non-forcing admission
// fails with a max-session error naming the current lowest-priority
// session; plain admission never evicts. A forcing admission evicts
// lower-or-equal-priority sessions until room exists, or fails with
// max-session as soon as the eviction candidate outranks the entry.
func (c *AdmissionController) Admit(ctx context.Context, domainName string, entry *domain.ActiveSession, maxSessions int, force bool) error {
	d := c.domain(domainName)
	d.admitMu.Lock()
	defer d.admitMu.Unlock()

	if maxSessions <= 0 {
		d.insert(entry)
		return nil
	}

	if !force {
		d.mu.Lock()
		if len(d.entries) >= maxSessions {
			lowest := d.entries[0]
			d.mu.Unlock()
			return domain.NewMaxSessionError(&domain.BlockingSession{
				LoginName:     lowest.LoginName,
				SessionID:     lowest.Session.ID(),
				RemoteAddress: lowest.Session.RemoteAddress(),
			})
		}
		d.insertLocked(entry)
		d.mu.Unlock()
		return nil
	}

	for {
		d.mu.Lock()
		if len(d.entries) < maxSessions {
			d.insertLocked(entry)
			d.mu.Unlock()
			return nil
		}
		lowest := d.entries[0]
		d.mu.Unlock()

		// A forcing caller may never evict someone more privileged.
		if lowest.RoleLevel > entry.RoleLevel {
			return domain.NewMaxSessionError(nil)
		}
		c.evict(ctx, domainName, d, lowest, entry.LoginName)
	}
}

// evict sends the terminate notice to the victim and waits for its own
// logout to remove it from the active set. When the wait deadline expires
// the session handle is closed and the entry removed directly; the timeout
// is expected degradation, not an error.
func (c *AdmissionController) evict(ctx context.Context, domainName string, d *domainSessions, victim *domain.ActiveSession, kickedBy string) {
	// The victim may have logged out between the capacity check and here;
	// no notice is owed to a session already gone.
	d.mu.Lock()
	present := d.containsLocked(victim.Session)
	d.mu.Unlock()
	if !present {
		return
	}

	payload := map[string]any{"kick_by": kickedBy}
	if err := c.push.Push(ctx, victim.Session, port.PushEventTerminate, payload); err != nil {
		c.logger.Warn("terminate push failed",
			"domain", domainName,
			"login_name", victim.LoginName,
			"session_id", victim.Session.ID(),
			"error", err)
	}

	deadline := time.NewTimer(c.evictionWait)
	defer deadline.Stop()

	for {
		d.mu.Lock()
		if !d.containsLocked(victim.Session) {
			d.mu.Unlock()
			return
		}
		changed := d.changed
		d.mu.Unlock()

		select {
		case <-changed:
		case <-deadline.C:
			c.logger.Info("evicted session did not log out in time, closing handle",
				"domain", domainName,
				"login_name", victim.LoginName,
				"session_id", victim.Session.ID())
			if err := victim.Session.Close(); err != nil {
				c.logger.Warn("session close failed",
					"session_id", victim.Session.ID(), "error", err)
			}
			d.mu.Lock()
			d.removeLocked(victim.Session)
			d.mu.Unlock()
			return
		}
	}
}

// Release removes the session from the domain's active set. It is
// idempotent and safe to call concurrently with an in-flight eviction wait,
// which it signals.
func (c *AdmissionController) Release(domainName string, session domain.SessionHandle) {
	c.mu.Lock()
	d, ok := c.domains[domainName]
	c.mu.Unlock()
	if !ok {
		return
	}

	d.mu.Lock()
	d.removeLocked(session)
	d.mu.Unlock()
}

// Sessions returns a snapshot of the domain's active sessions in eviction
// order.
func (c *AdmissionController) Sessions(domainName string) []*domain.ActiveSession {
	c.mu.Lock()
	d, ok := c.domains[domainName]
	c.mu.Unlock()
	if !ok {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*domain.ActiveSession, len(d.entries))
	copy(out, d.entries)
	return out
}

// Count returns the number of active sessions for the domain.
func (c *AdmissionController) Count(domainName string) int {
	c.mu.Lock()
	d, ok := c.domains[domainName]
	c.mu.Unlock()
	if !ok {
		return 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func (d *domainSessions) insert(entry *domain.ActiveSession) {
	d.mu.Lock()
	d.insertLocked(entry)
	d.mu.Unlock()
}

func (d *domainSessions) insertLocked(entry *domain.ActiveSession) {
	i := sort.Search(len(d.entries), func(i int) bool {
		return entry.Before(d.entries[i])
	})
	d.entries = append(d.entries, nil)
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = entry
}

func (d *domainSessions) containsLocked(session domain.SessionHandle) bool {
	for _, e := range d.entries {
		if e.Is(session) {
			return true
		}
	}
	return false
}

func (d *domainSessions) removeLocked(session domain.SessionHandle) {
	for i, e := range d.entries {
		if e.Is(session) {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			close(d.changed)
			d.changed = make(chan struct{})
			return
		}
	}
}
