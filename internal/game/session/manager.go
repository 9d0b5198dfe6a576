// Package session hosts multiple independent Farkle games behind a
// serialization boundary, so concurrent front ends (one connection per
// session) can share a process with the single-writer game core.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/farkle/internal/game/dice"
	"github.com/cory-johannsen/farkle/internal/game/engine"
)

// Session is one live game plus the mutex that serializes access to it.
// The game core assumes exclusive, non-reentrant access; every operation
// on the embedded game must go through Do.
type Session struct {
	// ID is the unique session identifier.
	ID string

	mu   sync.Mutex
	game *engine.Game
}

// Do runs fn with exclusive access to the session's game.
//
// Precondition: fn must not retain the *engine.Game beyond its call and
// must not call back into the session (the lock is not reentrant).
// Postcondition: Returns fn's error unchanged.
func (s *Session) Do(fn func(g *engine.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Manager tracks all active game sessions.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg    engine.Config
	src    dice.Source
	logger *zap.Logger
}

// NewManager creates an empty session Manager. Every game it creates
// shares cfg and src.
//
// Precondition: src must be non-nil.
func NewManager(cfg engine.Config, src dice.Source, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		src:      src,
		logger:   logger,
	}
}

// Create starts a new game session and returns it.
//
// Postcondition: the returned session is registered and retrievable by ID.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	sess := &Session{
		ID:   id,
		game: engine.NewGame(m.cfg, m.src, m.logger.With(zap.String("session_id", id))),
	}
	m.sessions[id] = sess
	m.logger.Info("session created", zap.String("session_id", id))
	return sess
}

// Get returns the session with the given ID.
//
// Postcondition: Returns (session, true) if found, or (nil, false).
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Reset replaces the session's game with a fresh one, keeping the session
// ID. Used by the new_game action after a game is won.
//
// Postcondition: Returns an error if the session is not found.
func (m *Manager) Reset(id string) error {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session %q not found", id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.game = engine.NewGame(m.cfg, m.src, m.logger.With(zap.String("session_id", id)))
	m.logger.Info("session reset", zap.String("session_id", id))
	return nil
}

// Remove deletes the session with the given ID.
//
// Postcondition: Returns an error if the session is not found.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("session %q not found", id)
	}
	delete(m.sessions, id)
	m.logger.Info("session removed", zap.String("session_id", id))
	return nil
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
