package routers

import (
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/services/core/intake"

	"github.com/go-chi/chi/v5"
)

func attachIntakeRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeController *intake.IntakeController) {
	router.Post("/create", intakeController.CreateSession)
	router.Get("/{sessionID}", intakeController.GetSession)
	router.Post("/{sessionID}/answer", intakeController.SubmitAnswer)
	router.Post("/{sessionID}/back", intakeController.GoBack)
	router.Get("/{sessionID}/summary", intakeController.GetSummary)
	router.Post("/{sessionID}/save", intakeController.SavePatient)
}
