package rag

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/dto/responses"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type chatUsecase struct {
	Log            *zap.Logger
	DocumentSource contracts.DocumentSource
	BucketSyncer   contracts.BucketSyncer
	VectorIndex    contracts.VectorIndex
	ChatModel      contracts.ChatModel
	TopK           int

	mu      sync.Mutex
	history []models.ChatMessage
}

func NewChatUsecase(
	logger *zap.Logger,
	documentSource contracts.DocumentSource,
	bucketSyncer contracts.BucketSyncer,
	vectorIndex contracts.VectorIndex,
	chatModel contracts.ChatModel,
	topK int,
) ChatUsecase {
	return &chatUsecase{
		Log:            logger,
		DocumentSource: documentSource,
		BucketSyncer:   bucketSyncer,
		VectorIndex:    vectorIndex,
		ChatModel:      chatModel,
		TopK:           topK,
	}
}

func (uc *chatUsecase) Initialize(ctx context.Context) (*responses.ChatInitialized, error) {
	if uc.BucketSyncer != nil {
		synced, err := uc.BucketSyncer.Sync(ctx)
		if err != nil {
			return nil, err
		}
		uc.Log.Info("documents synced from bucket", zap.Int("objects", synced))
	}

	paths, err := uc.DocumentSource.Discover(ctx)
	if err != nil {
		return nil, err
	}

	chunks, err := uc.DocumentSource.Load(ctx, paths)
	if err != nil {
		return nil, err
	}

	if err := uc.VectorIndex.Build(ctx, chunks); err != nil {
		return nil, err
	}

	uc.Log.Info("knowledge base initialized",
		zap.Int("documents", len(paths)),
		zap.Int("chunks", len(chunks)),
	)
	return &responses.ChatInitialized{
		Documents: len(paths),
		Chunks:    len(chunks),
	}, nil
}

func (uc *chatUsecase) Status(ctx context.Context) *responses.ChatStatus {
	return &responses.ChatStatus{
		Initialized: uc.VectorIndex.Ready(),
		Chunks:      uc.VectorIndex.Count(),
	}
}

func (uc *chatUsecase) Ask(ctx context.Context, question string) (*models.ChatAnswer, error) {
	sources, err := uc.VectorIndex.Query(ctx, question, uc.TopK)
	if err != nil {
		return nil, err
	}

	contextParts := make([]string, 0, len(sources))
	for _, source := range sources {
		contextParts = append(contextParts, source.Content)
	}

	answer, err := uc.ChatModel.Answer(ctx, question, strings.Join(contextParts, "\n\n"))
	if err != nil {
		return nil, err
	}
	answer.Sources = sources

	uc.appendHistory(question, answer)
	return answer, nil
}

func (uc *chatUsecase) History(ctx context.Context) *responses.ChatHistory {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	messages := make([]models.ChatMessage, len(uc.history))
	copy(messages, uc.history)
	return &responses.ChatHistory{Messages: messages}
}

func (uc *chatUsecase) ClearHistory(ctx context.Context) {
	uc.mu.Lock()
	uc.history = nil
	uc.mu.Unlock()
}

func (uc *chatUsecase) appendHistory(question string, answer *models.ChatAnswer) {
	now := time.Now()
	uc.mu.Lock()
	uc.history = append(uc.history,
		models.ChatMessage{Role: models.ChatRoleUser, Question: question, AskedAt: now},
		models.ChatMessage{Role: models.ChatRoleAssistant, Answer: answer, AskedAt: now},
	)
	uc.mu.Unlock()
}
