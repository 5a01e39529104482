package intake

import (
	"context"
	"medichat-service/internal/pkg/constvars"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/exceptions"
	"medichat-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeController struct {
	Log           *zap.Logger
	IntakeUsecase IntakeUsecase
}

func NewIntakeController(logger *zap.Logger, intakeUsecase IntakeUsecase) *IntakeController {
	return &IntakeController{
		Log:           logger,
		IntakeUsecase: intakeUsecase,
	}
}

func (ctrl *IntakeController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.CreateSession(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SessionCreatedSuccess, result)
}

func (ctrl *IntakeController) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetSession(ctx, chi.URLParam(r, "sessionID"))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, result)
}

func (ctrl *IntakeController) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AnswerIntakeQuestion)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.SubmitAnswer(ctx, chi.URLParam(r, "sessionID"), request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	message := constvars.AnswerAcceptedSuccess
	if result.Completed {
		message = constvars.RegistrationComplete
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *IntakeController) GoBack(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GoBack(ctx, chi.URLParam(r, "sessionID"))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StepBackSuccess, result)
}

func (ctrl *IntakeController) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetSummary(ctx, chi.URLParam(r, "sessionID"))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SummaryGetSuccess, result)
}

func (ctrl *IntakeController) SavePatient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.SavePatient(ctx, chi.URLParam(r, "sessionID"))
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientSavedSuccess, result)
}

func (ctrl *IntakeController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
