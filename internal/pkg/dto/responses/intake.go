package responses

import "medichat-service/internal/app/models"

// IntakeQuestion describes the question the client should render next.
type IntakeQuestion struct {
	SessionID string                 `json:"session_id,omitempty"`
	Step      int                    `json:"step"`
	Question  string                 `json:"question,omitempty"`
	Field     string                 `json:"field,omitempty"`
	Type      string                 `json:"type,omitempty"`
	Options   []string               `json:"options,omitempty"`
	Completed bool                   `json:"completed"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

type IntakeSummary struct {
	SessionID string                 `json:"session_id"`
	Patient   models.PatientSnapshot `json:"patient"`
}

type PatientSaved struct {
	File          string `json:"file"`
	TotalPatients int    `json:"total_patients"`
}

type PatientList struct {
	Total    int                         `json:"total"`
	Patients []models.StoredPatientEntry `json:"patients"`
}

type ServiceBanner struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}
