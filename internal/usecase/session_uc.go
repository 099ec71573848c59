package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nexgen-pricing/internal/domain/model"
)

// SnapshotRenderer retains the most recent render outputs so polling clients
// can fetch what a browser would have painted.
type SnapshotRenderer struct {
	mu        sync.Mutex
	tierCards *model.CatalogEntry
	consult   bool
	billing   model.BillingSnapshot
	section   Section
}

var _ BillingRenderer = (*SnapshotRenderer)(nil)

func NewSnapshotRenderer() *SnapshotRenderer { return &SnapshotRenderer{} }

func (r *SnapshotRenderer) RenderTierCards(entry model.CatalogEntry, consultationOnly bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tierCards = &entry
	r.consult = consultationOnly
}

func (r *SnapshotRenderer) RenderBillingSummary(snapshot model.BillingSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.billing = snapshot
}

func (r *SnapshotRenderer) Advance(section Section) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.section = section
}

// TierCards returns the last rendered entry, or false before any render.
func (r *SnapshotRenderer) TierCards() (model.CatalogEntry, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tierCards == nil {
		return model.CatalogEntry{}, false, false
	}
	return *r.tierCards, r.consult, true
}

func (r *SnapshotRenderer) Billing() model.BillingSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.billing
}

func (r *SnapshotRenderer) Section() Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.section
}

// Session is one visitor's in-progress pricing selection. The browser event
// loop serialized operations in the original page; here a per-session mutex
// does. Discarding a session carries no cleanup obligations.
type Session struct {
	ID        string
	VisitorID string
	Renderer  *SnapshotRenderer

	mu       sync.Mutex
	engine   PricingEngine
	lastSeen time.Time
}

// Do runs fn against the engine with the session lock held.
func (s *Session) Do(fn func(PricingEngine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// EngineFactory builds a pricing engine for a new session.
type EngineFactory func(visitorID string, displayCurrency model.CurrencyCode, renderer BillingRenderer) PricingEngine

// SessionManager owns the live pricing sessions and evicts idle ones.
// Selection state is deliberately not durable: a reload starts over, unlike
// the preference store.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	factory  EngineFactory
	log      *zerolog.Logger
}

func NewSessionManager(factory EngineFactory, ttl time.Duration, logger *zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		factory:  factory,
		log:      logger,
	}
}

// Create starts an empty session for a visitor.
func (m *SessionManager) Create(visitorID string, displayCurrency model.CurrencyCode) *Session {
	renderer := NewSnapshotRenderer()
	s := &Session{
		ID:        uuid.NewString(),
		VisitorID: visitorID,
		Renderer:  renderer,
		engine:    m.factory(visitorID, displayCurrency, renderer),
		lastSeen:  time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a live session and refreshes its idle timer.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

// Run sweeps idle sessions until ctx is cancelled.
func (m *SessionManager) Run(ctx context.Context) {
	interval := m.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.sweep(now); n > 0 {
				m.log.Debug().Int("evicted", n).Msg("pricing sessions expired")
			}
		}
	}
}

func (m *SessionManager) sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}
