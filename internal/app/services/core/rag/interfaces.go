package rag

import (
	"context"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	Initialize(ctx context.Context) (*responses.ChatInitialized, error)
	Status(ctx context.Context) *responses.ChatStatus
	Ask(ctx context.Context, question string) (*models.ChatAnswer, error)
	History(ctx context.Context) *responses.ChatHistory
	ClearHistory(ctx context.Context)
}
