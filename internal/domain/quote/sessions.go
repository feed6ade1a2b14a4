package quote

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"barrigudo/internal/domain/media"
	"barrigudo/internal/domain/storage"
)

// Session binds one wizard instance to one page view. All wizard access is
// serialized through the session mutex, mirroring the single-threaded event
// model of the form: no two transitions ever race.
type Session struct {
	ID string

	mu         sync.Mutex
	wizard     *Wizard
	intake     *media.Intake
	ctx        context.Context
	cancel     context.CancelFunc
	lastActive time.Time
}

// Do runs fn with exclusive access to the session's wizard. The passed
// context is cancelled when the session is torn down, so in-flight lookups
// and submissions from a discarded session cannot resurrect it.
func (s *Session) Do(fn func(ctx context.Context, w *Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return fn(s.ctx, s.wizard)
}

// Sessions owns all live wizard sessions.
type Sessions struct {
	mu   sync.RWMutex
	byID map[string]*Session
	ttl  time.Duration

	orgID    string
	spoolDir string
	zips     ZipLookup
	store    LeadStore
	objects  storage.ObjectStorage
}

func NewSessions(orgID, spoolDir string, ttl time.Duration, zips ZipLookup, store LeadStore, objects storage.ObjectStorage) *Sessions {
	return &Sessions{
		byID:     make(map[string]*Session),
		ttl:      ttl,
		orgID:    orgID,
		spoolDir: spoolDir,
		zips:     zips,
		store:    store,
		objects:  objects,
	}
}

// Create starts a fresh wizard session. serviceSlug and zipPrefill come
// from the quote page's query parameters.
func (m *Sessions) Create(serviceSlug, zipPrefill string) (*Session, error) {
	id := uuid.New().String()

	intake, err := media.NewIntake(m.spoolDir, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:         id,
		wizard:     NewWizard(m.orgID, serviceSlug, zipPrefill, m.zips, m.store, m.objects, intake),
		intake:     intake,
		ctx:        ctx,
		cancel:     cancel,
		lastActive: time.Now(),
	}

	// The zip transition is data-driven: a valid prefilled zip already
	// satisfies it at mount, so enrichment and the service reveal run now.
	if zipPrefill != "" {
		_ = s.Do(func(ctx context.Context, w *Wizard) error {
			w.SetZip(ctx, zipPrefill)
			return nil
		})
	}

	m.mu.Lock()
	m.byID[id] = s
	m.mu.Unlock()

	return s, nil
}

func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove tears a session down: the context is cancelled and the media
// spool is released.
func (m *Sessions) Remove(id string) {
	m.mu.Lock()
	s, ok := m.byID[id]
	delete(m.byID, id)
	m.mu.Unlock()
	if !ok {
		return
	}

	s.cancel()
	if err := s.intake.Close(); err != nil {
		log.Warn().Err(err).Str("session", id).Msg("failed to release media spool")
	}
}

// StartJanitor sweeps idle sessions until ctx is cancelled.
func (m *Sessions) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

func (m *Sessions) sweep() {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.RLock()
	var stale []string
	for id, s := range m.byID {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range stale {
		m.Remove(id)
	}
}
