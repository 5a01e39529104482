package routers

import (
	"medichat-service/internal/app/delivery/http/middlewares"
	"medichat-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Get("/", patientController.ListPatients)
}
