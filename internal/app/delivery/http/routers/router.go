package routers

import (
	"medichat-service/internal/app/config"
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/services/core/intake"
	"medichat-service/internal/app/services/core/patients"
	"medichat-service/internal/app/services/core/rag"
	"medichat-service/internal/pkg/constvars"
	"medichat-service/internal/pkg/dto/responses"
	"medichat-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	intakeController *intake.IntakeController,
	patientController *patients.PatientController,
	chatController *rag.ChatController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.ServiceBanner{
			Message: "Medical Data Collection API",
			Status:  "running",
			Version: internalConfig.App.Version,
		})
	})

	router.Route("/session", func(r chi.Router) {
		attachIntakeRoutes(r, middlewares, intakeController)
	})

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	router.Route("/chat", func(r chi.Router) {
		attachChatRoutes(r, internalConfig, middlewares, chatController)
	})
}
