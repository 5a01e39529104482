package documents

import (
	"context"
	"medichat-service/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDocumentService_Discover_MissingFolder(t *testing.T) {
	service := NewDocumentService(zap.NewNop(), filepath.Join(t.TempDir(), "does-not-exist"), 700, 200)

	_, err := service.Discover(context.Background())

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestDocumentService_Discover_EmptyFolder(t *testing.T) {
	service := NewDocumentService(zap.NewNop(), t.TempDir(), 700, 200)

	_, err := service.Discover(context.Background())

	assert.Error(t, err)
}

func TestDocumentService_Discover_RecognizedExtensionsOnly(t *testing.T) {
	folder := t.TempDir()
	for _, name := range []string{"guide.txt", "notes.md", "report.pdf", "image.png", "data.csv"} {
		assert.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte("content"), 0o644))
	}

	service := NewDocumentService(zap.NewNop(), folder, 700, 200)

	paths, err := service.Discover(context.Background())

	assert.NoError(t, err)
	assert.Len(t, paths, 3)
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		assert.Contains(t, []string{".txt", ".md", ".pdf"}, ext)
	}
}

func TestDocumentService_Load_SplitsTextIntoChunks(t *testing.T) {
	folder := t.TempDir()
	content := strings.Repeat("Diabetes management requires consistent monitoring of blood glucose. ", 40)
	path := filepath.Join(folder, "diabetes.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	service := NewDocumentService(zap.NewNop(), folder, 200, 50)

	chunks, err := service.Load(context.Background(), []string{path})

	assert.NoError(t, err)
	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.Equal(t, "diabetes.txt", chunk.Source)
		assert.NotEmpty(t, chunk.Content)
	}
}
