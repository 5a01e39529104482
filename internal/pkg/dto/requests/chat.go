package requests

type AskQuestion struct {
	Question string `json:"question" validate:"required,min=3"`
}
