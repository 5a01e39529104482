package documents

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"
)

var recognizedExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".pdf": true,
}

type documentService struct {
	Log      *zap.Logger
	Folder   string
	splitter textsplitter.RecursiveCharacter
}

func NewDocumentService(log *zap.Logger, folder string, chunkSize, chunkOverlap int) contracts.DocumentSource {
	return &documentService{
		Log:    log,
		Folder: folder,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
		),
	}
}

func (s *documentService) Discover(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.Folder)
	if err != nil || !info.IsDir() {
		return nil, exceptions.ErrDocumentsFolderNotFound(s.Folder)
	}

	var paths []string
	err = filepath.WalkDir(s.Folder, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if recognizedExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, exceptions.ErrDocumentLoad(err, s.Folder)
	}
	if len(paths) == 0 {
		return nil, exceptions.ErrNoDocumentsFound(s.Folder)
	}
	return paths, nil
}

func (s *documentService) Load(ctx context.Context, paths []string) ([]models.DocumentChunk, error) {
	var chunks []models.DocumentChunk
	for _, path := range paths {
		docs, err := s.loadOne(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			chunks = append(chunks, models.DocumentChunk{
				Source:  filepath.Base(path),
				Content: doc.PageContent,
			})
		}
		s.Log.Debug("document loaded",
			zap.String("path", path),
			zap.Int("chunks", len(docs)),
		)
	}
	return chunks, nil
}

func (s *documentService) loadOne(ctx context.Context, path string) ([]schema.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, exceptions.ErrDocumentLoad(err, path)
	}
	defer file.Close()

	var loader documentloaders.Loader
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		info, err := file.Stat()
		if err != nil {
			return nil, exceptions.ErrDocumentLoad(err, path)
		}
		loader = documentloaders.NewPDF(file, info.Size())
	} else {
		loader = documentloaders.NewText(file)
	}

	docs, err := loader.LoadAndSplit(ctx, s.splitter)
	if err != nil {
		return nil, exceptions.ErrDocumentLoad(err, path)
	}
	return docs, nil
}
