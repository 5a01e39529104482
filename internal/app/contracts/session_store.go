package contracts

import (
	"context"
	"medichat-service/internal/app/models"
)

// SessionStore keeps intake sessions between requests. Implementations must be
// safe for concurrent use.
type SessionStore interface {
	Create(ctx context.Context) (*models.IntakeSession, error)
	Get(ctx context.Context, sessionID string) (*models.IntakeSession, error)
	Update(ctx context.Context, session *models.IntakeSession) error
}
