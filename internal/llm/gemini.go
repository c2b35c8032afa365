package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const geminiDefaultModel = "gemini-2.5-flash"

// Gemini implements Provider with the Google Gen AI SDK.
type Gemini struct {
	apiKey string
	model  string
	// baseURL overrides the API endpoint; empty means the SDK default.
	baseURL string
}

// NewGemini creates a new Gemini provider. The key falls back to
// GEMINI_API_KEY, then GOOGLE_API_KEY.
func NewGemini(model, apiKey string) (*Gemini, error) {
	key, err := resolveKey(apiKey, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &Gemini{apiKey: key, model: model}, nil
}

func (g *Gemini) Name() string { return ProviderGemini }

// Model returns the model id requests are sent to.
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Generate(ctx context.Context, req Request) (Response, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return Response{}, fmt.Errorf("creating gemini client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.SystemPrompt}}}
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	var resp Response
	err = retryWithBackoff(ctx, maxRetries, func() error {
		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.UserPrompt), cfg)
		if err != nil {
			return classifyGeminiError(err)
		}

		resp = Response{Content: result.Text()}
		if result.UsageMetadata != nil {
			resp.TokensUsed = int(result.UsageMetadata.TotalTokenCount)
		}
		return nil
	})

	return resp, err
}

// classifyGeminiError maps SDK status codes onto the retry classes.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr):
		apiErr = *apiErrPtr
	default:
		return err
	}
	switch apiErr.Code {
	case http.StatusTooManyRequests:
		return &rateLimitError{message: apiErr.Message}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &authError{message: apiErr.Message}
	}
	return err
}
