package intake

import (
	"context"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/dto/responses"
)

type IntakeUsecase interface {
	CreateSession(ctx context.Context) (*responses.IntakeQuestion, error)
	GetSession(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error)
	SubmitAnswer(ctx context.Context, sessionID string, request *requests.AnswerIntakeQuestion) (*responses.IntakeQuestion, error)
	GoBack(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error)
	GetSummary(ctx context.Context, sessionID string) (*responses.IntakeSummary, error)
	SavePatient(ctx context.Context, sessionID string) (*responses.PatientSaved, error)
}
