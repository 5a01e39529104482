package contracts

import (
	"context"
	"medichat-service/internal/app/models"
)

// VectorIndex embeds chunks into a persistent similarity index and answers
// nearest-neighbor queries. All vector math is delegated to the backing
// library.
type VectorIndex interface {
	Build(ctx context.Context, chunks []models.DocumentChunk) error
	Load(ctx context.Context) error
	Query(ctx context.Context, question string, k int) ([]models.SourceChunk, error)
	Ready() bool
	Count() int
}
