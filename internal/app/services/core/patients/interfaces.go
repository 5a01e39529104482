package patients

import (
	"context"
	"medichat-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*responses.PatientList, error)
}
