package contracts

import (
	"context"
	"medichat-service/internal/app/models"
)

// DocumentSource discovers and loads the local knowledge-base documents.
type DocumentSource interface {
	Discover(ctx context.Context) ([]string, error)
	Load(ctx context.Context, paths []string) ([]models.DocumentChunk, error)
}

// BucketSyncer mirrors documents from an object-storage bucket into the local
// documents folder before ingestion.
type BucketSyncer interface {
	Sync(ctx context.Context) (int, error)
}
