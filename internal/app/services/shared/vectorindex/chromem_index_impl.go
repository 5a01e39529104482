package vectorindex

import (
	"context"
	"fmt"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"runtime"
	"sync"

	"github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

// EmbedFunc turns a text into its embedding vector. Satisfied by the
// configured embedding client.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// chromemIndex persists embeddings under the index directory. Similarity math
// and storage layout belong to chromem.
type chromemIndex struct {
	Log        *zap.Logger
	db         *chromem.DB
	name       string
	embed      EmbedFunc
	mu         sync.RWMutex
	collection *chromem.Collection
}

func NewChromemIndex(log *zap.Logger, indexDir, collectionName string, embed EmbedFunc) (contracts.VectorIndex, error) {
	db, err := chromem.NewPersistentDB(indexDir, false)
	if err != nil {
		return nil, exceptions.ErrVectorIndexBuild(err)
	}
	return &chromemIndex{
		Log:   log,
		db:    db,
		name:  collectionName,
		embed: embed,
	}, nil
}

func (i *chromemIndex) Build(ctx context.Context, chunks []models.DocumentChunk) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.db.DeleteCollection(i.name); err != nil {
		return exceptions.ErrVectorIndexBuild(err)
	}

	collection, err := i.db.GetOrCreateCollection(i.name, nil, chromem.EmbeddingFunc(i.embed))
	if err != nil {
		return exceptions.ErrVectorIndexBuild(err)
	}

	docs := make([]chromem.Document, 0, len(chunks))
	for idx, chunk := range chunks {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("%s-%d", chunk.Source, idx),
			Metadata: map[string]string{"source": chunk.Source},
			Content:  chunk.Content,
		})
	}

	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return exceptions.ErrVectorIndexBuild(err)
	}

	i.collection = collection
	i.Log.Info("vector index built",
		zap.String("collection", i.name),
		zap.Int("chunks", len(docs)),
	)
	return nil
}

func (i *chromemIndex) Load(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	collection := i.db.GetCollection(i.name, chromem.EmbeddingFunc(i.embed))
	if collection == nil {
		return exceptions.ErrVectorIndexNotReady()
	}
	i.collection = collection
	i.Log.Info("vector index loaded",
		zap.String("collection", i.name),
		zap.Int("chunks", collection.Count()),
	)
	return nil
}

func (i *chromemIndex) Query(ctx context.Context, question string, k int) ([]models.SourceChunk, error) {
	i.mu.RLock()
	collection := i.collection
	i.mu.RUnlock()

	if collection == nil || collection.Count() == 0 {
		return nil, exceptions.ErrVectorIndexNotReady()
	}
	if count := collection.Count(); k > count {
		k = count
	}

	results, err := collection.Query(ctx, question, k, nil, nil)
	if err != nil {
		return nil, exceptions.ErrVectorIndexQuery(err)
	}

	chunks := make([]models.SourceChunk, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, models.SourceChunk{
			File:    result.Metadata["source"],
			Content: result.Content,
			Score:   float64(result.Similarity),
		})
	}
	return chunks, nil
}

func (i *chromemIndex) Ready() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.collection != nil && i.collection.Count() > 0
}

func (i *chromemIndex) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.collection == nil {
		return 0
	}
	return i.collection.Count()
}
