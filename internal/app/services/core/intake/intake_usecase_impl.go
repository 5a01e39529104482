package intake

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/dto/responses"
	"medichat-service/internal/pkg/exceptions"
	"medichat-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type intakeUsecase struct {
	Log               *zap.Logger
	SessionStore      contracts.SessionStore
	PatientRepository contracts.PatientRepository
	EventPublisher    contracts.EventPublisher
}

func NewIntakeUsecase(
	logger *zap.Logger,
	sessionStore contracts.SessionStore,
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
) IntakeUsecase {
	return &intakeUsecase{
		Log:               logger,
		SessionStore:      sessionStore,
		PatientRepository: patientRepository,
		EventPublisher:    eventPublisher,
	}
}

func (uc *intakeUsecase) CreateSession(ctx context.Context) (*responses.IntakeQuestion, error) {
	session, err := uc.SessionStore.Create(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("intake session created", zap.String("session_id", session.SessionID))
	return buildQuestionResponse(session, false), nil
}

func (uc *intakeUsecase) GetSession(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error) {
	session, err := uc.SessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildQuestionResponse(session, true), nil
}

func (uc *intakeUsecase) SubmitAnswer(ctx context.Context, sessionID string, request *requests.AnswerIntakeQuestion) (*responses.IntakeQuestion, error) {
	session, err := uc.SessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Completed() {
		return nil, exceptions.ErrRegistrationAlreadyComplete()
	}

	expectedField := session.Step.Field()
	if request.Field != expectedField {
		return nil, exceptions.ErrUnexpectedField(expectedField, request.Field)
	}

	value, err := session.Step.ParseAnswer(request.Value)
	if err != nil {
		return nil, exceptions.ErrFieldValidation(expectedField, err.Error())
	}

	session.Data[expectedField] = value
	session.Step = session.Step.Next()

	if err := uc.SessionStore.Update(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Debug("intake answer accepted",
		zap.String("session_id", session.SessionID),
		zap.String("field", expectedField),
		zap.Int("step", int(session.Step)),
	)
	return buildQuestionResponse(session, false), nil
}

func (uc *intakeUsecase) GoBack(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error) {
	session, err := uc.SessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Previously entered data stays so the revisited field can be re-answered.
	session.Step = session.Step.Prev()

	if err := uc.SessionStore.Update(ctx, session); err != nil {
		return nil, err
	}
	return buildQuestionResponse(session, false), nil
}

func (uc *intakeUsecase) GetSummary(ctx context.Context, sessionID string) (*responses.IntakeSummary, error) {
	session, err := uc.SessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	record, err := uc.validateComplete(session)
	if err != nil {
		return nil, err
	}

	return &responses.IntakeSummary{
		SessionID: session.SessionID,
		Patient:   record.Snapshot(),
	}, nil
}

func (uc *intakeUsecase) SavePatient(ctx context.Context, sessionID string) (*responses.PatientSaved, error) {
	session, err := uc.SessionStore.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	record, err := uc.validateComplete(session)
	if err != nil {
		return nil, err
	}

	entry := &models.StoredPatientEntry{
		SessionID: session.SessionID,
		Timestamp: time.Now().Format(time.RFC3339),
		Patient:   record.Snapshot(),
	}

	total, err := uc.PatientRepository.Save(ctx, entry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patient saved",
		zap.String("session_id", session.SessionID),
		zap.Float64("bmi", entry.Patient.BMI),
		zap.String("verdict", entry.Patient.Verdict),
		zap.Int("total", total),
	)

	// Best effort: a failed event must not fail the save.
	publishErr := uc.EventPublisher.PublishPatientSaved(ctx, &contracts.PatientSavedEvent{
		SessionID: entry.SessionID,
		Timestamp: entry.Timestamp,
		BMI:       entry.Patient.BMI,
		Verdict:   entry.Patient.Verdict,
		Total:     total,
	})
	if publishErr != nil {
		uc.Log.Warn("failed to publish patient saved event",
			zap.String("session_id", session.SessionID),
			zap.Error(publishErr),
		)
	}

	return &responses.PatientSaved{
		File:          uc.PatientRepository.Location(),
		TotalPatients: total,
	}, nil
}

// validateComplete runs full-record validation, only reachable once all seven
// steps are answered.
func (uc *intakeUsecase) validateComplete(session *models.IntakeSession) (*models.PatientRecord, error) {
	if !session.Completed() {
		return nil, exceptions.ErrRegistrationIncomplete()
	}

	record, err := models.PatientFromData(session.Data)
	if err != nil {
		return nil, exceptions.ErrFieldValidation("record", err.Error())
	}
	if err := utils.ValidateStruct(record); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return record, nil
}

func buildQuestionResponse(session *models.IntakeSession, includeData bool) *responses.IntakeQuestion {
	response := &responses.IntakeQuestion{
		SessionID: session.SessionID,
		Step:      int(session.Step),
		Completed: session.Completed(),
	}
	if includeData || session.Completed() {
		response.Data = session.Data
	}
	if !session.Completed() {
		response.Question = session.Step.Question()
		response.Field = session.Step.Field()
		response.Type = session.Step.InputType()
		response.Options = session.Step.Options()
	}
	return response
}
