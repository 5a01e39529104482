package requests

// AnswerIntakeQuestion carries one wizard answer. Value may be a string or a
// JSON number depending on the field.
type AnswerIntakeQuestion struct {
	Field string      `json:"field" validate:"required"`
	Value interface{} `json:"value" validate:"required"`
}
