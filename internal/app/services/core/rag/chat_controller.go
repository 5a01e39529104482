package rag

import (
	"context"
	"medichat-service/internal/pkg/constvars"
	"medichat-service/internal/pkg/dto/requests"
	"medichat-service/internal/pkg/exceptions"
	"medichat-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase ChatUsecase
}

func NewChatController(logger *zap.Logger, chatUsecase ChatUsecase) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) Initialize(w http.ResponseWriter, r *http.Request) {
	// Embedding every chunk can take a while on large folders.
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	result, err := ctrl.ChatUsecase.Initialize(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatInitializedSuccess, result)
}

func (ctrl *ChatController) Status(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatStatusGetSuccess, ctrl.ChatUsecase.Status(r.Context()))
}

func (ctrl *ChatController) Ask(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AskQuestion)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.ChatUsecase.Ask(ctx, request.Question)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatAnswerSuccess, result)
}

func (ctrl *ChatController) History(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatHistoryGetSuccess, ctrl.ChatUsecase.History(r.Context()))
}

func (ctrl *ChatController) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctrl.ChatUsecase.ClearHistory(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatHistoryClearedSuccess, nil)
}

func (ctrl *ChatController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
