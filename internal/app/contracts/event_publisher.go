package contracts

import "context"

// PatientSavedEvent is published to the configured queue after a record is
// appended to the patient store.
type PatientSavedEvent struct {
	SessionID string  `json:"session_id"`
	Timestamp string  `json:"timestamp"`
	BMI       float64 `json:"bmi"`
	Verdict   string  `json:"verdict"`
	Total     int     `json:"total"`
}

type EventPublisher interface {
	PublishPatientSaved(ctx context.Context, event *PatientSavedEvent) error
}
