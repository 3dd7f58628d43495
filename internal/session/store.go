package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-clinic/internal/form"
)

const (
	DefaultIdleTTL = 30 * time.Minute
	DefaultMax     = 10000
)

// Session is one browser's page lifetime.
type Session struct {
	ID         string
	Controller *form.Controller
	View       *PageView

	lastSeen time.Time
}

// Factory builds the form controller for a new session.
type Factory func(sessionID string) *form.Controller

type Options struct {
	IdleTTL time.Duration
	Max     int
	Logger  *zap.Logger
	// OnCount is told the number of live sessions after every change.
	OnCount func(n int)
	Now     func() time.Time
}

// Store keeps the live sessions in memory. Nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	newController Factory
	idleTTL       time.Duration
	max           int
	logger        *zap.Logger
	onCount       func(int)
	now           func() time.Time
}

func NewStore(factory Factory, opts Options) *Store {
	s := &Store{
		sessions:      make(map[string]*Session),
		newController: factory,
		idleTTL:       opts.IdleTTL,
		max:           opts.Max,
		logger:        opts.Logger,
		onCount:       opts.OnCount,
		now:           opts.Now,
	}
	if s.idleTTL <= 0 {
		s.idleTTL = DefaultIdleTTL
	}
	if s.max <= 0 {
		s.max = DefaultMax
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.onCount == nil {
		s.onCount = func(int) {}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Get returns a live session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// GetOrCreate returns the session for id, or a brand new one when id is
// unknown or expired. created reports which.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// Create starts a session, evicting the least recently seen one when the
// store is full.
func (s *Store) Create() *Session {
	id := uuid.NewString()
	sess := &Session{
		ID:         id,
		Controller: s.newController(id),
		View:       &PageView{},
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		sess.Controller.Close()
		return sess
	}

	var evicted *Session
	if len(s.sessions) >= s.max {
		evicted = s.oldestLocked()
		delete(s.sessions, evicted.ID)
	}
	sess.lastSeen = s.now()
	s.sessions[id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	if evicted != nil {
		evicted.Controller.Close()
		s.logger.Debug("evicted page session", zap.String("session_id", evicted.ID))
	}
	s.onCount(n)
	return sess
}

// Sweep tears down sessions idle for longer than the TTL.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Controller.Close()
	}
	if len(expired) > 0 {
		s.logger.Debug("swept idle page sessions", zap.Int("expired", len(expired)), zap.Int("live", n))
		s.onCount(n)
	}
	return len(expired)
}

// Run sweeps on every tick until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close tears down every session. Sessions created afterwards are born closed.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Controller.Close()
	}
	s.onCount(0)
}

func (s *Store) oldestLocked() *Session {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	return oldest
}
