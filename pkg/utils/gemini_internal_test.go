package utils

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiReplyText_joinsPartsForParsing(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role: "model",
				Parts: []genai.Part{
					genai.Text(`{"attractions":[{"name":"Ben Thanh Market","category":"Shopping Districts",`),
					genai.Text(`"latitude":10.7725,"longitude":106.6980,"visit_minutes":75,"rating":4.3}]}`),
				},
			},
		}},
	}

	text, err := geminiReplyText(resp)
	require.NoError(t, err)

	got, err := ParseSuggestions(text)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ben Thanh Market", got[0].Name)
	assert.Equal(t, "Shopping Districts", got[0].Category)
	assert.Equal(t, 75, got[0].VisitMinutes)
}

func TestGeminiReplyText_noCandidates(t *testing.T) {
	_, err := geminiReplyText(&genai.GenerateContentResponse{})
	assert.ErrorContains(t, err, "no candidates")

	_, err = geminiReplyText(nil)
	assert.Error(t, err)
}

func TestGeminiReplyText_nonTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{0x89}}}},
		}},
	}

	_, err := geminiReplyText(resp)
	assert.ErrorContains(t, err, "no text")
}
