package patients

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/pkg/dto/responses"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientRepository contracts.PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context) (*responses.PatientList, error) {
	entries, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.PatientList{
		Total:    len(entries),
		Patients: entries,
	}, nil
}
