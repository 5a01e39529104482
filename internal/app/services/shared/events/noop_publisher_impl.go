package events

import (
	"context"
	"medichat-service/internal/app/contracts"

	"go.uber.org/zap"
)

// noopPublisher is used when no message broker is configured.
type noopPublisher struct {
	Log *zap.Logger
}

func NewNoopPublisher(log *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: log}
}

func (p *noopPublisher) PublishPatientSaved(ctx context.Context, event *contracts.PatientSavedEvent) error {
	p.Log.Debug("saved event publishing disabled, dropping event",
		zap.String("session_id", event.SessionID),
	)
	return nil
}
