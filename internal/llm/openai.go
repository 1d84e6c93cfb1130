package llm

import (
	"context"
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAI talks to any OpenAI-compatible endpoint, e.g. a hosted API or a
// local ollama. Prompt sizes are logged as cl100k_base token estimates.
type OpenAI struct {
	llm    llms.LLM
	model  string
	enc    *tiktoken.Tiktoken
	logger *zap.Logger
}

func NewOpenAI(baseURL, token, model string, logger *zap.Logger) (*OpenAI, error) {
	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("openai: new client: %w", err)
	}
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("openai: load tokenizer: %w", err)
	}
	return &OpenAI{llm: llm, model: model, enc: enc, logger: logger}, nil
}

func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Generate(ctx context.Context, prompt string) Result {
	o.logger.Debug("calling model",
		zap.String("model", o.model),
		zap.Int("promptTokens", len(o.enc.Encode(prompt, nil, nil))))

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, o.llm, prompt)
	if err != nil {
		return Failed(err)
	}
	if strings.TrimSpace(completion) == "" {
		return Failed(ErrNoReply)
	}
	return Ok(completion)
}
