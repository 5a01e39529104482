package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// DocumentChunk is a bounded slice of source document text sized for the
// embedding model's context window.
type DocumentChunk struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// SourceChunk is a retrieved chunk with its similarity score, attached to an
// answer for display.
type SourceChunk struct {
	File    string  `json:"file"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// ChatAnswer is the structured reply the hosted model is instructed to return.
type ChatAnswer struct {
	Reply                    string        `json:"reply"`
	GuidanceCaution          string        `json:"guidance_caution"`
	AdditionalResourcePrompt string        `json:"additional_resource_prompt"`
	Sources                  []SourceChunk `json:"sources,omitempty"`
}

type ChatMessage struct {
	Role     string      `json:"role"`
	Question string      `json:"question,omitempty"`
	Answer   *ChatAnswer `json:"answer,omitempty"`
	AskedAt  time.Time   `json:"asked_at"`
}
