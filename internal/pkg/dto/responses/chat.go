package responses

import "medichat-service/internal/app/models"

type ChatInitialized struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}

type ChatStatus struct {
	Initialized bool `json:"initialized"`
	Chunks      int  `json:"chunks"`
}

type ChatHistory struct {
	Messages []models.ChatMessage `json:"messages"`
}
