package llm

import (
	"context"
	"medichat-service/internal/app/config"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"
)

const answerPromptTemplate = `You are a healthcare assistant. Answer based on the context provided.

Context: {{.context}}
Question: {{.question}}

Respond in JSON format:
{
  "reply": "your answer",
  "guidance_caution": "medical disclaimer",
  "additional_resource_prompt": "follow-up suggestion"
}`

// Client talks to the hosted OpenAI-compatible endpoint for both chat
// completions and embeddings.
type Client struct {
	Log      *zap.Logger
	llm      *openai.LLM
	embedder *embeddings.EmbedderImpl
	prompt   prompts.PromptTemplate
	cfg      config.RAG
}

func NewClient(log *zap.Logger, cfg config.RAG) (*Client, error) {
	llmClient, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.APIBaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	)
	if err != nil {
		return nil, exceptions.ErrModelInvoke(err)
	}

	embedder, err := embeddings.NewEmbedder(llmClient)
	if err != nil {
		return nil, exceptions.ErrModelInvoke(err)
	}

	return &Client{
		Log:      log,
		llm:      llmClient,
		embedder: embedder,
		prompt:   prompts.NewPromptTemplate(answerPromptTemplate, []string{"context", "question"}),
		cfg:      cfg,
	}, nil
}

// Answer renders the fixed prompt, invokes the model and parses the expected
// 3-field JSON reply.
func (c *Client) Answer(ctx context.Context, question, contextText string) (*models.ChatAnswer, error) {
	prompt, err := c.prompt.Format(map[string]any{
		"context":  contextText,
		"question": question,
	})
	if err != nil {
		return nil, exceptions.ErrModelInvoke(err)
	}

	completion, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(0),
		llms.WithMaxTokens(c.cfg.MaxTokens),
	)
	if err != nil {
		return nil, exceptions.ErrModelInvoke(err)
	}

	answer, err := ParseAnswer(completion)
	if err != nil {
		c.Log.Warn("model returned unparseable output",
			zap.String("model", c.cfg.Model),
			zap.Int("output_length", len(completion)),
		)
		return nil, err
	}
	return answer, nil
}

// EmbedQuery exposes the embedding side of the client for index construction
// and retrieval.
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vector, err := c.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, exceptions.ErrModelInvoke(err)
	}
	return vector, nil
}
