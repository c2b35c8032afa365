package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultModel = "claude-sonnet-4-20250514"

// Anthropic implements Provider with the Anthropic Go SDK.
type Anthropic struct {
	apiKey string
	model  string
	// baseURL overrides the API endpoint; empty means the SDK default.
	baseURL    string
	httpClient *http.Client
}

// NewAnthropic creates a new Anthropic provider. The key falls back to ANTHROPIC_API_KEY.
func NewAnthropic(model, apiKey string) (*Anthropic, error) {
	key, err := resolveKey(apiKey, "ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = anthropicDefaultModel
	}
	return &Anthropic{
		apiKey:     key,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (a *Anthropic) Name() string { return ProviderAnthropic }

// Model returns the model id requests are sent to.
func (a *Anthropic) Model() string { return a.model }

func (a *Anthropic) client() anthropic.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(a.apiKey),
		// Rate limits are retried by retryWithBackoff only.
		option.WithMaxRetries(0),
	}
	if a.baseURL != "" {
		opts = append(opts, option.WithBaseURL(a.baseURL))
	}
	if a.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(a.httpClient))
	}
	return anthropic.NewClient(opts...)
}

func (a *Anthropic) Generate(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	client := a.client()

	var resp Response
	err := retryWithBackoff(ctx, maxRetries, func() error {
		msg, err := client.Messages.New(ctx, params)
		if err != nil {
			return classifyAnthropicError(err)
		}

		var content string
		for _, block := range msg.Content {
			if block.Type == "text" {
				content += block.Text
			}
		}

		resp = Response{
			Content:    content,
			TokensUsed: int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		}
		return nil
	})

	return resp, err
}

// classifyAnthropicError maps API status codes onto the retry classes.
func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("sending request: %w", err)
	}
	switch apiErr.StatusCode {
	case http.StatusTooManyRequests:
		return &rateLimitError{message: apiErr.Error()}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &authError{message: apiErr.Error()}
	}
	return fmt.Errorf("API error (status %d): %w", apiErr.StatusCode, err)
}
