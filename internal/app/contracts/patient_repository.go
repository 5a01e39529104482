package contracts

import (
	"context"
	"medichat-service/internal/app/models"
)

// PatientRepository persists completed intake records. Save returns the total
// number of stored entries after the append.
type PatientRepository interface {
	Save(ctx context.Context, entry *models.StoredPatientEntry) (int, error)
	FindAll(ctx context.Context) ([]models.StoredPatientEntry, error)
	// Location describes where entries end up, for the save response.
	Location() string
}
