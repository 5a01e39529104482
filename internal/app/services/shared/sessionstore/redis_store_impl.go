package sessionstore

import (
	"context"
	"fmt"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"medichat-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "intake:session:"

// redisSessionStore keeps sessions in Redis so intake can survive restarts
// and run across processes.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) contracts.SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisSessionStore) Create(ctx context.Context) (*models.IntakeSession, error) {
	session := models.NewIntakeSession(utils.GenerateSessionID())
	if err := s.set(ctx, session); err != nil {
		return nil, exceptions.ErrSessionStoreCreate(err)
	}
	return session, nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.IntakeSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var session models.IntakeSession
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, exceptions.ErrSessionStoreGet(err)
	}
	return &session, nil
}

func (s *redisSessionStore) Update(ctx context.Context, session *models.IntakeSession) error {
	exists, err := s.client.Exists(ctx, sessionKey(session.SessionID)).Result()
	if err != nil {
		return exceptions.ErrRedisGet(err)
	}
	if exists == 0 {
		return exceptions.ErrSessionNotFound(nil)
	}
	if err := s.set(ctx, session); err != nil {
		return exceptions.ErrSessionStoreUpdate(err)
	}
	return nil
}

func (s *redisSessionStore) set(ctx context.Context, session *models.IntakeSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), payload, s.ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}
