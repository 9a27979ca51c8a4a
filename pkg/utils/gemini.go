package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiSuggestionClient implements POISuggestionClientInterface on Google's
// Gemini models.
type GeminiSuggestionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiSuggestionClient(ctx context.Context, apiKey, model string) (*GeminiSuggestionClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiSuggestionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSuggestionClient) SuggestPOIs(ctx context.Context, destination string, categories []string, limit int) ([]SuggestedPOI, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(suggestionSystemPrompt(categories))},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(fmt.Sprintf("Destination: %s\nReturn up to %d attractions.", destination, limit)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	text, err := geminiReplyText(resp)
	if err != nil {
		return nil, err
	}

	suggestions, err := ParseSuggestions(text)
	if err != nil {
		return nil, err
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func (c *GeminiSuggestionClient) Close() error {
	return c.client.Close()
}

// geminiReplyText joins the text parts of the first candidate. Gemini may
// split one JSON reply across several parts.
func geminiReplyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini reply has no text")
	}
	return b.String(), nil
}
