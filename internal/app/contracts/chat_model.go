package contracts

import (
	"context"
	"medichat-service/internal/app/models"
)

// ChatModel invokes the hosted language model with retrieved context and
// parses its structured JSON reply.
type ChatModel interface {
	Answer(ctx context.Context, question, contextText string) (*models.ChatAnswer, error)
}
