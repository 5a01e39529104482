package routers

import (
	"medichat-service/internal/app/config"
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/services/core/rag"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, chatController *rag.ChatController) {
	// Model calls get a tighter per-IP budget than the global limiter.
	questionLimiter := middlewares.NewQuestionRateLimiter(internalConfig.RAG.QuestionsPerMinute, time.Minute)

	router.Post("/initialize", chatController.Initialize)
	router.Get("/status", chatController.Status)
	router.With(questionLimiter.Limit).Post("/ask", chatController.Ask)
	router.Get("/history", chatController.History)
	router.Post("/history/clear", chatController.ClearHistory)
}
