package ai

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const defaultModel = "gemini-1.5-flash"

// GeminiSuggestionProvider generates part/labor suggestions through the
// Gemini API.
//
// Env vars:
//   - GEMINI_API_KEY (required unless mock mode)
//   - GEMINI_MODEL (optional, default gemini-1.5-flash)
//   - SUGGESTION_PROVIDER_MOCK / GEMINI_MOCK (mock mode, no network)
type GeminiSuggestionProvider struct {
	client   *genai.Client
	model    string
	mockMode bool
}

func NewGeminiSuggestionProvider(ctx context.Context, apiKey string) (*GeminiSuggestionProvider, error) {
	if isSuggestionProviderMockEnabled() {
		log.Printf("[suggestion][provider] mock mode enabled")
		return &GeminiSuggestionProvider{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[suggestion][provider] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("[suggestion][provider] failed creating sdk client err=%v", err)
		return nil, err
	}
	log.Printf("[suggestion][provider] Gemini client initialized")

	return &GeminiSuggestionProvider{
		client: client,
		model:  getenvDefault("GEMINI_MODEL", defaultModel),
	}, nil
}

func (p *GeminiSuggestionProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p != nil && p.mockMode {
		log.Printf("[suggestion][provider] mock generate prompt_len=%d", len(prompt))
		return "```json\n{\"items\": [{\"desc\": \"Filtro de óleo\", \"price\": 45}, {\"desc\": \"Vela de ignição\", \"price\": 30}], \"labor\": 120}\n```", nil
	}
	if p == nil || p.client == nil {
		return "", errors.New("gemini provider not configured")
	}

	log.Printf("[suggestion][provider] generate start model=%s prompt_len=%d", p.model, len(prompt))
	resp, err := p.client.GenerativeModel(p.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[suggestion][provider] sdk generate failed err=%v", err)
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if sb.Len() == 0 {
		log.Printf("[suggestion][provider] empty response")
		return "", errors.New("empty response from provider")
	}
	log.Printf("[suggestion][provider] generate success response_len=%d", sb.Len())
	return sb.String(), nil
}

func isSuggestionProviderMockEnabled() bool {
	for _, key := range []string{"SUGGESTION_PROVIDER_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
