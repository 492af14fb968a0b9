// internal/endpoint/warmup.go
package endpoint

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mwiater/balbis/internal/logging"
)

const warmupPrompt = "Say OK."

// Warmup sends a minimal one-token chat completion so the first
// benchmarked request does not pay first-inference cost. The serving
// endpoint has already passed readiness when this runs, but kernel
// warmup can still be slow, so the call is bounded by the overall wait
// timeout rather than the short probe timeout. Failures are returned
// for the caller to report; a run proceeds without a warmup.
func (c *Client) Warmup(ctx context.Context, model string) error {
	cfg := openai.DefaultConfig("")
	cfg.BaseURL = c.baseURL
	if c.client != nil {
		cfg.HTTPClient = c.client
	}
	client := openai.NewClientWithConfig(cfg)

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: warmupPrompt}},
		// Older servers read max_tokens, newer ones max_completion_tokens.
		MaxTokens:           1,
		MaxCompletionTokens: 1,
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	logging.LogRequest("BALBIS->LLM", c.baseURL+"/chat/completions", model, req)
	resp, err := client.CreateChatCompletion(reqCtx, req)
	if err != nil {
		return fmt.Errorf("warmup request: %w", err)
	}
	logging.LogRequest("LLM->BALBIS", c.baseURL+"/chat/completions", model, resp)
	return nil
}
