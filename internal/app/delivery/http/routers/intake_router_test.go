package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/services/core/intake"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/dto/responses"
	"medichat-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockIntakeUsecase struct {
	mock.Mock
}

func (m *MockIntakeUsecase) CreateSession(ctx context.Context) (*responses.IntakeQuestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.IntakeQuestion), args.Error(1)
}

func (m *MockIntakeUsecase) GetSession(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.IntakeQuestion), args.Error(1)
}

func (m *MockIntakeUsecase) SubmitAnswer(ctx context.Context, sessionID string, request *requests.AnswerIntakeQuestion) (*responses.IntakeQuestion, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.IntakeQuestion), args.Error(1)
}

func (m *MockIntakeUsecase) GoBack(ctx context.Context, sessionID string) (*responses.IntakeQuestion, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.IntakeQuestion), args.Error(1)
}

func (m *MockIntakeUsecase) GetSummary(ctx context.Context, sessionID string) (*responses.IntakeSummary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.IntakeSummary), args.Error(1)
}

func (m *MockIntakeUsecase) SavePatient(ctx context.Context, sessionID string) (*responses.PatientSaved, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PatientSaved), args.Error(1)
}

func newIntakeTestRouter(mockUsecase *MockIntakeUsecase) *chi.Mux {
	logger := zap.NewNop()
	intakeController := intake.NewIntakeController(logger, mockUsecase)
	middlewareInstance := &middlewares.Middlewares{Log: logger}

	router := chi.NewRouter()
	attachIntakeRoutes(router, middlewareInstance, intakeController)
	return router
}

func TestIntakeRouter_CreateSession(t *testing.T) {
	mockUsecase := new(MockIntakeUsecase)
	mockUsecase.On("CreateSession", mock.Anything).Return(&responses.IntakeQuestion{
		SessionID: "session-1",
		Step:      1,
		Question:  "What is your full name?",
		Field:     "name",
		Type:      "text",
	}, nil)

	router := newIntakeTestRouter(mockUsecase)

	req := httptest.NewRequest("POST", "/create", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestIntakeRouter_GetSession_NotFound(t *testing.T) {
	mockUsecase := new(MockIntakeUsecase)
	mockUsecase.On("GetSession", mock.Anything, "missing").
		Return(nil, exceptions.ErrSessionNotFound(nil))

	router := newIntakeTestRouter(mockUsecase)

	req := httptest.NewRequest("GET", "/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestIntakeRouter_SubmitAnswer(t *testing.T) {
	mockUsecase := new(MockIntakeUsecase)
	mockUsecase.On("SubmitAnswer", mock.Anything, "session-1", mock.AnythingOfType("*requests.AnswerIntakeQuestion")).
		Return(&responses.IntakeQuestion{SessionID: "session-1", Step: 2}, nil)

	router := newIntakeTestRouter(mockUsecase)

	payload, _ := json.Marshal(requests.AnswerIntakeQuestion{Field: "name", Value: "Jane Roe"})
	req := httptest.NewRequest("POST", "/session-1/answer", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}

func TestIntakeRouter_SubmitAnswer_MissingBodyFields(t *testing.T) {
	mockUsecase := new(MockIntakeUsecase)
	router := newIntakeTestRouter(mockUsecase)

	req := httptest.NewRequest("POST", "/session-1/answer", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUsecase.AssertNotCalled(t, "SubmitAnswer")
}

func TestIntakeRouter_SavePatient(t *testing.T) {
	mockUsecase := new(MockIntakeUsecase)
	mockUsecase.On("SavePatient", mock.Anything, "session-1").
		Return(&responses.PatientSaved{File: "/data/patients.json", TotalPatients: 5}, nil)

	router := newIntakeTestRouter(mockUsecase)

	req := httptest.NewRequest("POST", "/session-1/save", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockUsecase.AssertExpectations(t)
}
