// Package openai implements the ReviewProvider port using the go-openai
// chat completions client.
package openai

import (
	"context"
	"fmt"

	oai "github.com/sashabaranov/go-openai"

	"github.com/reviewloop/reviewloop/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ReviewProvider = (*Provider)(nil)

// Sampling configuration, fixed for every review call. Low temperature keeps
// the output stable across runs; the token bound caps cost per hunk.
const (
	reviewTemperature      = 0.2
	reviewMaxTokens        = 700
	reviewTopP             = 1
	reviewFrequencyPenalty = 0
	reviewPresencePenalty  = 0
)

// Provider sends review prompts to the OpenAI chat completions API. It makes
// exactly one call per prompt with no retry or backoff: transient failures
// surface as errors and the orchestrator treats them as zero suggestions.
type Provider struct {
	client *oai.Client
	model  string
}

// NewProvider creates a Provider for the given API key and model.
func NewProvider(apiKey, model string) *Provider {
	return &Provider{
		client: oai.NewClient(apiKey),
		model:  model,
	}
}

// NewProviderWithBaseURL creates a Provider pointed at a custom API base URL.
// This constructor is intended for testing against an httptest server.
func NewProviderWithBaseURL(apiKey, model, baseURL string) *Provider {
	cfg := oai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Provider{
		client: oai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Review sends the rendered prompt as a single system message and returns
// the raw response text. When the configured model supports it, the strict
// JSON-object response format is requested so the reply needs no heuristic
// extraction.
func (p *Provider) Review(ctx context.Context, prompt string) (string, error) {
	req := oai.ChatCompletionRequest{
		Model:            p.model,
		Temperature:      reviewTemperature,
		MaxTokens:        reviewMaxTokens,
		TopP:             reviewTopP,
		FrequencyPenalty: reviewFrequencyPenalty,
		PresencePenalty:  reviewPresencePenalty,
		Messages: []oai.ChatCompletionMessage{
			{Role: oai.ChatMessageRoleSystem, Content: prompt},
		},
	}
	if SupportsJSONMode(p.model) {
		req.ResponseFormat = &oai.ChatCompletionResponseFormat{
			Type: oai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
