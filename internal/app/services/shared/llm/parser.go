package llm

import (
	"fmt"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
)

// ParseAnswer extracts the structured answer from raw model output. Hosted
// models routinely wrap JSON in code fences or surrounding prose, so the
// parser cuts from the first '{' to the last '}' before unmarshalling.
func ParseAnswer(output string) (*models.ChatAnswer, error) {
	trimmed := strings.TrimSpace(output)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return nil, exceptions.ErrModelOutputParse(fmt.Errorf("no JSON object in output"))
	}

	var answer models.ChatAnswer
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &answer); err != nil {
		return nil, exceptions.ErrModelOutputParse(err)
	}
	if answer.Reply == "" {
		return nil, exceptions.ErrModelOutputParse(fmt.Errorf("reply field missing or empty"))
	}
	return &answer, nil
}
