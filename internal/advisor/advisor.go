// Package advisor is the AI dog-wellbeing chat, backed by Gemini. The
// advisor answers canine questions only; the prompt envelope steers
// anything else back to dogs.
package advisor

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const promptEnvelope = `You are an AI assistant specialized in dog wellbeing.
Your role is to provide information and advice only on dog-related topics,
such as canine health, nutrition, behavior, exercise, grooming and general
care. If a question is not about dogs, politely steer the conversation back
to canine topics.

User question: %s

Answer concisely and to the point, focusing exclusively on dog-related
aspects.`

type Advisor struct {
	model   *genai.GenerativeModel
	limiter *rate.Limiter
}

// New builds the advisor. The generation settings mirror what the mobile
// client shipped with; the limiter keeps us at one request per second,
// which is also the pace the upstream quota expects from a single device.
func New(ctx context.Context, apiKey, modelName string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopK(40)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(1024)

	return &Advisor{
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}, nil
}

// Ask sends one user question and returns the advisor's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(promptEnvelope, question)
	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
