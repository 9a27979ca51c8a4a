package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// SuggestedPOI is one attraction proposed by a language model. Coordinates and
// categories are untrusted and are validated by the caller.
type SuggestedPOI struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	VisitMinutes int     `json:"visit_minutes"`
	Rating       float64 `json:"rating"`
	Address      string  `json:"address"`
}

type POISuggestionClientInterface interface {
	SuggestPOIs(ctx context.Context, destination string, categories []string, limit int) ([]SuggestedPOI, error)
}

type OpenAISuggestionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAISuggestionClient(apiKey, model string) *OpenAISuggestionClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISuggestionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAISuggestionClient) SuggestPOIs(ctx context.Context, destination string, categories []string, limit int) ([]SuggestedPOI, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt(categories)},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Destination: %s\nReturn up to %d attractions.", destination, limit)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	suggestions, err := ParseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func suggestionSystemPrompt(categories []string) string {
	var b strings.Builder
	b.WriteString("You list real, visitable tourist attractions. ")
	b.WriteString(`Reply with JSON only: {"attractions":[{"name":"","category":"","latitude":0,"longitude":0,"visit_minutes":0,"rating":0,"address":""}]}. `)
	b.WriteString("category must be exactly one of: ")
	b.WriteString(strings.Join(categories, "; "))
	b.WriteString(". visit_minutes is the typical time spent there, rating is 0 to 5.")
	return b.String()
}

// ParseSuggestions decodes the model's JSON reply. Code fences around the
// object are tolerated.
func ParseSuggestions(raw string) ([]SuggestedPOI, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var payload struct {
		Attractions []SuggestedPOI `json:"attractions"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return payload.Attractions, nil
}
