package patients

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const (
	lockRetryInterval = 10 * time.Millisecond
	lockRetryAttempts = 100
)

// jsonFilePatientRepository appends completed records to a single JSON array
// file. Writes go through a temp file plus rename so a crash cannot truncate
// the store, and a lock file keeps concurrent writers out.
type jsonFilePatientRepository struct {
	mu       sync.Mutex
	dataDir  string
	fileName string
}

func NewJSONFilePatientRepository(dataDir, fileName string) contracts.PatientRepository {
	return &jsonFilePatientRepository{
		dataDir:  dataDir,
		fileName: fileName,
	}
}

func (r *jsonFilePatientRepository) Save(ctx context.Context, entry *models.StoredPatientEntry) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return 0, exceptions.ErrPatientFileWrite(err)
	}

	unlock, err := r.acquireLock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	entries, err := r.readAll()
	if err != nil {
		return 0, err
	}

	entries = append(entries, *entry)

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	tempPath := r.filePath() + ".tmp"
	if err := os.WriteFile(tempPath, payload, 0o644); err != nil {
		return 0, exceptions.ErrPatientFileWrite(err)
	}
	if err := os.Rename(tempPath, r.filePath()); err != nil {
		return 0, exceptions.ErrPatientFileWrite(err)
	}

	return len(entries), nil
}

func (r *jsonFilePatientRepository) FindAll(ctx context.Context) ([]models.StoredPatientEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

func (r *jsonFilePatientRepository) Location() string {
	absolute, err := filepath.Abs(r.filePath())
	if err != nil {
		return r.filePath()
	}
	return absolute
}

func (r *jsonFilePatientRepository) filePath() string {
	return filepath.Join(r.dataDir, r.fileName)
}

func (r *jsonFilePatientRepository) lockPath() string {
	return r.filePath() + ".lock"
}

func (r *jsonFilePatientRepository) readAll() ([]models.StoredPatientEntry, error) {
	payload, err := os.ReadFile(r.filePath())
	if os.IsNotExist(err) {
		return []models.StoredPatientEntry{}, nil
	} else if err != nil {
		return nil, exceptions.ErrPatientFileRead(err)
	}

	var entries []models.StoredPatientEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, exceptions.ErrPatientFileRead(err)
	}
	return entries, nil
}

// acquireLock creates the lock file exclusively, waiting out other processes.
func (r *jsonFilePatientRepository) acquireLock(ctx context.Context) (func(), error) {
	for attempt := 0; attempt < lockRetryAttempts; attempt++ {
		file, err := os.OpenFile(r.lockPath(), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			file.Close()
			return func() { os.Remove(r.lockPath()) }, nil
		}
		if !os.IsExist(err) {
			return nil, exceptions.ErrPatientFileLock(err)
		}
		select {
		case <-ctx.Done():
			return nil, exceptions.ErrPatientFileLock(ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
	return nil, exceptions.ErrPatientFileLock(os.ErrExist)
}
