package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswer_PlainJSON(t *testing.T) {
	output := `{"reply": "Stay hydrated.", "guidance_caution": "Consult a doctor.", "additional_resource_prompt": "Ask about diet plans."}`

	answer, err := ParseAnswer(output)

	assert.NoError(t, err)
	assert.Equal(t, "Stay hydrated.", answer.Reply)
	assert.Equal(t, "Consult a doctor.", answer.GuidanceCaution)
	assert.Equal(t, "Ask about diet plans.", answer.AdditionalResourcePrompt)
}

func TestParseAnswer_FencedJSON(t *testing.T) {
	output := "```json\n{\"reply\": \"Rest well.\", \"guidance_caution\": \"Not medical advice.\", \"additional_resource_prompt\": \"See sleep hygiene resources.\"}\n```"

	answer, err := ParseAnswer(output)

	assert.NoError(t, err)
	assert.Equal(t, "Rest well.", answer.Reply)
}

func TestParseAnswer_JSONWithSurroundingProse(t *testing.T) {
	output := `Here is the requested answer:
{"reply": "Limit salt intake.", "guidance_caution": "Individual needs vary.", "additional_resource_prompt": "Ask about DASH diet."}
Hope that helps!`

	answer, err := ParseAnswer(output)

	assert.NoError(t, err)
	assert.Equal(t, "Limit salt intake.", answer.Reply)
}

func TestParseAnswer_NoJSONObject(t *testing.T) {
	_, err := ParseAnswer("I cannot answer that question.")

	assert.Error(t, err)
}

func TestParseAnswer_EmptyReply(t *testing.T) {
	_, err := ParseAnswer(`{"reply": "", "guidance_caution": "x", "additional_resource_prompt": "y"}`)

	assert.Error(t, err)
}

func TestParseAnswer_MalformedJSON(t *testing.T) {
	_, err := ParseAnswer(`{"reply": "unterminated`)

	assert.Error(t, err)
}
