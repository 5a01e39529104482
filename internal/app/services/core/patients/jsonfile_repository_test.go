package patients

import (
	"context"
	"medichat-service/internal/app/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func testEntry(sessionID string) *models.StoredPatientEntry {
	return &models.StoredPatientEntry{
		SessionID: sessionID,
		Timestamp: "2026-08-24T10:00:00Z",
		Patient: models.PatientSnapshot{
			Name:       "Jane Roe",
			Age:        34,
			Mobile:     "9876543210",
			Email:      "jane@example.com",
			BloodGroup: "O+",
			Height:     1.75,
			Weight:     70,
			BMI:        22.86,
			Verdict:    models.VerdictNormal,
		},
	}
}

func TestJSONFilePatientRepository_SaveAppends(t *testing.T) {
	ctx := context.Background()
	repository := NewJSONFilePatientRepository(t.TempDir(), "patients.json")

	total, err := repository.Save(ctx, testEntry("session-1"))
	assert.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = repository.Save(ctx, testEntry("session-2"))
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	entries, err := repository.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "session-1", entries[0].SessionID)
	assert.Equal(t, "session-2", entries[1].SessionID)
}

func TestJSONFilePatientRepository_FindAll_MissingFile(t *testing.T) {
	repository := NewJSONFilePatientRepository(t.TempDir(), "patients.json")

	entries, err := repository.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJSONFilePatientRepository_WritesValidJSONArray(t *testing.T) {
	dataDir := t.TempDir()
	repository := NewJSONFilePatientRepository(dataDir, "patients.json")

	_, err := repository.Save(context.Background(), testEntry("session-1"))
	assert.NoError(t, err)

	payload, err := os.ReadFile(filepath.Join(dataDir, "patients.json"))
	assert.NoError(t, err)

	var entries []models.StoredPatientEntry
	assert.NoError(t, json.Unmarshal(payload, &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, 22.86, entries[0].Patient.BMI)
}

func TestJSONFilePatientRepository_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "patient_data")
	repository := NewJSONFilePatientRepository(dataDir, "patients.json")

	_, err := repository.Save(context.Background(), testEntry("session-1"))

	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "patients.json"))
	assert.NoError(t, err)
}

func TestJSONFilePatientRepository_ReleasesLockFile(t *testing.T) {
	dataDir := t.TempDir()
	repository := NewJSONFilePatientRepository(dataDir, "patients.json")

	_, err := repository.Save(context.Background(), testEntry("session-1"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dataDir, "patients.json.lock"))
	assert.True(t, os.IsNotExist(err))
}

func TestJSONFilePatientRepository_Location(t *testing.T) {
	repository := NewJSONFilePatientRepository("patient_data", "patients.json")

	location := repository.Location()

	assert.True(t, filepath.IsAbs(location))
	assert.Equal(t, "patients.json", filepath.Base(location))
}
