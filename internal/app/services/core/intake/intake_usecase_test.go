package intake

import (
	"context"
	"medichat-service/internal/app/contracts"
	"medichat-service/internal/app/models"
	"medichat-service/internal/app/services/shared/sessionstore"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Save(ctx context.Context, entry *models.StoredPatientEntry) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.StoredPatientEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.StoredPatientEntry), args.Error(1)
}

func (m *MockPatientRepository) Location() string {
	args := m.Called()
	return args.String(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishPatientSaved(ctx context.Context, event *contracts.PatientSavedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var wizardAnswers = []struct {
	field string
	value interface{}
}{
	{models.FieldName, "Jane Roe"},
	{models.FieldAge, float64(34)},
	{models.FieldMobile, "9876543210"},
	{models.FieldEmail, "jane@example.com"},
	{models.FieldBloodGroup, "O+"},
	{models.FieldHeight, 1.75},
	{models.FieldWeight, float64(70)},
}

func newTestUsecase(repository *MockPatientRepository, publisher *MockEventPublisher) IntakeUsecase {
	return NewIntakeUsecase(zap.NewNop(), sessionstore.NewMemorySessionStore(), repository, publisher)
}

func answerAll(t *testing.T, usecase IntakeUsecase, sessionID string) {
	t.Helper()
	ctx := context.Background()
	for _, answer := range wizardAnswers {
		_, err := usecase.SubmitAnswer(ctx, sessionID, &requests.AnswerIntakeQuestion{
			Field: answer.field,
			Value: answer.value,
		})
		assert.NoError(t, err)
	}
}

func TestIntakeUsecase_FullWizardFlow(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, err := usecase.CreateSession(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)
	assert.Equal(t, 1, created.Step)
	assert.Equal(t, models.FieldName, created.Field)

	answerAll(t, usecase, created.SessionID)

	session, err := usecase.GetSession(ctx, created.SessionID)
	assert.NoError(t, err)
	assert.True(t, session.Completed)
	assert.Len(t, session.Data, 7)
	assert.Empty(t, session.Question)
}

func TestIntakeUsecase_GetSession_NotFound(t *testing.T) {
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	_, err := usecase.GetSession(context.Background(), "missing")

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestIntakeUsecase_SubmitAnswer_UnexpectedField(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)

	_, err := usecase.SubmitAnswer(ctx, created.SessionID, &requests.AnswerIntakeQuestion{
		Field: models.FieldAge,
		Value: float64(34),
	})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 400, customErr.StatusCode)
}

func TestIntakeUsecase_SubmitAnswer_InvalidValueKeepsStep(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)

	_, err := usecase.SubmitAnswer(ctx, created.SessionID, &requests.AnswerIntakeQuestion{
		Field: models.FieldName,
		Value: "J",
	})
	assert.Error(t, err)

	session, err := usecase.GetSession(ctx, created.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, session.Step)
	assert.Empty(t, session.Data)
}

func TestIntakeUsecase_SubmitAnswer_AfterCompletion(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)
	answerAll(t, usecase, created.SessionID)

	_, err := usecase.SubmitAnswer(ctx, created.SessionID, &requests.AnswerIntakeQuestion{
		Field: models.FieldName,
		Value: "Another Name",
	})

	assert.Error(t, err)
}

func TestIntakeUsecase_GoBack(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)

	// Going back from the first question is a no-op.
	response, err := usecase.GoBack(ctx, created.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Step)

	_, err = usecase.SubmitAnswer(ctx, created.SessionID, &requests.AnswerIntakeQuestion{
		Field: models.FieldName,
		Value: "Jane Roe",
	})
	assert.NoError(t, err)

	response, err = usecase.GoBack(ctx, created.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Step)
	assert.Equal(t, models.FieldName, response.Field)
}

func TestIntakeUsecase_GetSummary_Incomplete(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)

	_, err := usecase.GetSummary(ctx, created.SessionID)

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 400, customErr.StatusCode)
}

func TestIntakeUsecase_GetSummary_DerivesBMIAndVerdict(t *testing.T) {
	ctx := context.Background()
	usecase := newTestUsecase(new(MockPatientRepository), new(MockEventPublisher))

	created, _ := usecase.CreateSession(ctx)
	answerAll(t, usecase, created.SessionID)

	summary, err := usecase.GetSummary(ctx, created.SessionID)

	assert.NoError(t, err)
	assert.Equal(t, created.SessionID, summary.SessionID)
	assert.Equal(t, 22.86, summary.Patient.BMI)
	assert.Equal(t, models.VerdictNormal, summary.Patient.Verdict)
}

func TestIntakeUsecase_SavePatient(t *testing.T) {
	ctx := context.Background()
	mockRepository := new(MockPatientRepository)
	mockPublisher := new(MockEventPublisher)
	usecase := newTestUsecase(mockRepository, mockPublisher)

	created, _ := usecase.CreateSession(ctx)
	answerAll(t, usecase, created.SessionID)

	mockRepository.On("Save", mock.Anything, mock.AnythingOfType("*models.StoredPatientEntry")).Return(3, nil)
	mockRepository.On("Location").Return("/data/patients.json")
	mockPublisher.On("PublishPatientSaved", mock.Anything, mock.AnythingOfType("*contracts.PatientSavedEvent")).Return(nil)

	saved, err := usecase.SavePatient(ctx, created.SessionID)

	assert.NoError(t, err)
	assert.Equal(t, "/data/patients.json", saved.File)
	assert.Equal(t, 3, saved.TotalPatients)
	mockRepository.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestIntakeUsecase_SavePatient_PublishFailureDoesNotFailSave(t *testing.T) {
	ctx := context.Background()
	mockRepository := new(MockPatientRepository)
	mockPublisher := new(MockEventPublisher)
	usecase := newTestUsecase(mockRepository, mockPublisher)

	created, _ := usecase.CreateSession(ctx)
	answerAll(t, usecase, created.SessionID)

	mockRepository.On("Save", mock.Anything, mock.Anything).Return(1, nil)
	mockRepository.On("Location").Return("/data/patients.json")
	mockPublisher.On("PublishPatientSaved", mock.Anything, mock.Anything).
		Return(exceptions.ErrPublishMessage(assert.AnError))

	saved, err := usecase.SavePatient(ctx, created.SessionID)

	assert.NoError(t, err)
	assert.Equal(t, 1, saved.TotalPatients)
}
