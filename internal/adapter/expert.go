package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
)

// Advisor system prompt sent with every question.
const expertSystemPrompt = "You are a professional real estate advisor. " +
	"Give clear, practical, and honest advice about house buying in the UK."

// Expert asks an OpenAI-compatible chat completion endpoint for house-buying
// advice.
type Expert struct {
	client *resty.Client
	model  string
	logger *logger.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewExpert returns an Expert configured from cfg.
func NewExpert(cfg config.Expert, log *logger.Logger) *Expert {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.APIKey)

	return &Expert{
		client: client,
		model:  cfg.Model,
		logger: log.GetChildLogger(),
	}
}

// Ask sends question to the advice model and returns the generated answer.
func (e *Expert) Ask(ctx context.Context, question string) (string, error) {
	body := chatCompletionRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: expertSystemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	}

	var completion chatCompletionResponse
	res, err := e.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&completion).
		Post("/chat/completions")
	if err != nil {
		e.logger.Error().Err(err).Msg("expert request failed")
		return "", fmt.Errorf("%w: %w", ErrExpertFailed, err)
	}
	if res.IsError() {
		e.logger.Error().Int("status", res.StatusCode()).Msg("expert returned error status")
		return "", fmt.Errorf("%w: status %d", ErrExpertFailed, res.StatusCode())
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
