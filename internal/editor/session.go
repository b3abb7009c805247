package editor

import (
	"sync"
	"time"

	"gotolinks/internal/models"
)

// FlushFunc persists a snapshot of the working copy. It runs outside the
// session lock; a returned error marks the session dirty again so the next
// idle window retries.
type FlushFunc func(*models.Profile) error

// Session is the in-memory editing state for one profile. All block
// operations go through it; reads and writes are serialized by the mutex.
type Session struct {
	mu       sync.Mutex
	profile  *models.Profile
	dirty    bool
	lastErr  error
	autosave *autosave
	flush    FlushFunc
}

// NewSession wraps a loaded profile in an editing session. The session takes
// ownership of the profile; callers must not retain it.
func NewSession(profile *models.Profile, idle time.Duration, flush FlushFunc) *Session {
	s := &Session{
		profile: profile,
		flush:   flush,
	}
	s.autosave = newAutosave(idle, func() { _ = s.Flush() })
	return s
}

// Snapshot returns a copy of the current working state.
func (s *Session) Snapshot() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Dirty reports whether unsaved edits exist.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastError reports the outcome of the most recent flush attempt. The working
// copy stays authoritative; a non-nil value means it has not been persisted.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// AddBlock appends a new block and schedules an autosave.
func (s *Session) AddBlock(t models.BlockType, data models.BlockData) (*models.ProfileBlock, error) {
	s.mu.Lock()
	next, block, err := AddBlock(s.profile, t, data)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	added := *block
	s.commit(next)
	s.mu.Unlock()
	return &added, nil
}

// UpdateBlockData merges a patch into one block and schedules an autosave.
func (s *Session) UpdateBlockData(blockID string, patch models.BlockDataPatch) error {
	s.mu.Lock()
	next, err := UpdateBlockData(s.profile, blockID, patch)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.commit(next)
	s.mu.Unlock()
	return nil
}

// DeleteBlock removes one block and schedules an autosave.
func (s *Session) DeleteBlock(blockID string) error {
	s.mu.Lock()
	next, err := DeleteBlock(s.profile, blockID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.commit(next)
	s.mu.Unlock()
	return nil
}

// MoveBlock swaps one block with its neighbor and schedules an autosave.
func (s *Session) MoveBlock(blockID string, dir MoveDirection) error {
	s.mu.Lock()
	next, err := MoveBlock(s.profile, blockID, dir)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.commit(next)
	s.mu.Unlock()
	return nil
}

// UpdateDetails replaces the profile's descriptive fields and schedules an
// autosave. Blocks are untouched.
func (s *Session) UpdateDetails(apply func(*models.Profile)) {
	s.mu.Lock()
	next := s.profile.Clone()
	apply(next)
	next.Blocks = s.profile.Blocks
	next.UpdatedAt = time.Now()
	s.commit(next)
	s.mu.Unlock()
}

// commit installs the new working copy. Caller holds the lock.
func (s *Session) commit(next *models.Profile) {
	s.profile = next
	s.dirty = true
	s.autosave.Touch()
}

// Flush persists the working copy if it has unsaved edits and returns the
// persistence error, if any. On failure the session stays dirty so the next
// idle window retries. Safe to call from the autosave timer and from explicit
// save requests concurrently.
func (s *Session) Flush() error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	snapshot := s.profile.Clone()
	s.mu.Unlock()

	err := s.flush(snapshot)

	s.mu.Lock()
	s.lastErr = err
	if err != nil {
		s.dirty = true
	}
	s.mu.Unlock()

	if err != nil {
		s.autosave.Touch()
	}
	return err
}

// Close cancels the autosave timer and flushes any pending edits.
func (s *Session) Close() {
	s.autosave.Stop()
	_ = s.Flush()
}

// Sessions tracks live editing sessions keyed by profile id.
type Sessions struct {
	mu       sync.Mutex
	idle     time.Duration
	sessions map[string]*Session
}

// NewSessions creates a session registry with the given idle window.
func NewSessions(idle time.Duration) *Sessions {
	return &Sessions{
		idle:     idle,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the live session for profileID, loading one via load
// when none exists yet.
func (m *Sessions) GetOrCreate(profileID string, load func() (*models.Profile, FlushFunc, error)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[profileID]; ok {
		return s, nil
	}

	profile, flush, err := load()
	if err != nil {
		return nil, err
	}
	s := NewSession(profile, m.idle, flush)
	m.sessions[profileID] = s
	return s, nil
}

// Get returns the live session for profileID, if any.
func (m *Sessions) Get(profileID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[profileID]
	return s, ok
}

// Drop closes and removes the session for profileID.
func (m *Sessions) Drop(profileID string) {
	m.mu.Lock()
	s, ok := m.sessions[profileID]
	delete(m.sessions, profileID)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// CloseAll flushes and removes every session. Called on shutdown.
func (m *Sessions) CloseAll() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}
