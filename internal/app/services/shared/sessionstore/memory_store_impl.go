package sessionstore

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"medichat-service/internal/pkg/utils"
	"sync"
)

// memorySessionStore keeps sessions in a process-local map. Sessions are lost
// on restart and the map grows for the life of the process.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.IntakeSession
}

func NewMemorySessionStore() contracts.SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]*models.IntakeSession),
	}
}

func (s *memorySessionStore) Create(ctx context.Context) (*models.IntakeSession, error) {
	session := models.NewIntakeSession(utils.GenerateSessionID())

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	s.mu.RLock()
	session, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	// Copy so callers mutate their own view until Update.
	clone := *session
	clone.Data = make(map[string]interface{}, len(session.Data))
	for k, v := range session.Data {
		clone.Data[k] = v
	}
	return &clone, nil
}

func (s *memorySessionStore) Update(ctx context.Context, session *models.IntakeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.SessionID]; !exists {
		return exceptions.ErrSessionNotFound(nil)
	}
	s.sessions[session.SessionID] = session
	return nil
}
