package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase/interfaces"
)

var (
	ErrMissingSuggestInput   = errors.New("missing problem description or vehicle")
	ErrSuggestionUnavailable = errors.New("suggestion provider not configured")
	ErrSuggestionFailed      = errors.New("suggestion failed")
)

// SuggestionUseCase turns a free-text problem description plus vehicle context
// into a validated set of priced items and a labor estimate.
//
// The provider response is untrusted text expected to contain a JSON payload,
// possibly wrapped in code fences. A parse or validation failure surfaces as
// ErrSuggestionFailed and nothing is merged; the caller's draft stays
// byte-identical to its pre-call state.
type SuggestionUseCase struct {
	provider interfaces.ISuggestionProvider
}

func NewSuggestionUseCase(provider interfaces.ISuggestionProvider) *SuggestionUseCase {
	return &SuggestionUseCase{provider: provider}
}

func (u *SuggestionUseCase) Suggest(ctx context.Context, problem, vehicleModel string) (entities.Suggestion, error) {
	problem = strings.TrimSpace(problem)
	vehicleModel = strings.TrimSpace(vehicleModel)
	if problem == "" || vehicleModel == "" {
		return entities.Suggestion{}, ErrMissingSuggestInput
	}
	if u == nil || u.provider == nil {
		return entities.Suggestion{}, ErrSuggestionUnavailable
	}

	prompt := fmt.Sprintf(`Analise o problema: %q no %s. Sugira peças e mão de obra em JSON: {"items": [{"desc": "nome", "price": 0}], "labor": 0}`, problem, vehicleModel)

	log.Printf("[suggestion][usecase] generate start vehicle_model=%q", vehicleModel)
	raw, err := u.provider.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[suggestion][usecase] provider failed err=%v", err)
		return entities.Suggestion{}, fmt.Errorf("%w: %v", ErrSuggestionFailed, err)
	}

	s, err := parseSuggestionPayload(raw)
	if err != nil {
		log.Printf("[suggestion][usecase] payload rejected err=%v", err)
		return entities.Suggestion{}, fmt.Errorf("%w: %v", ErrSuggestionFailed, err)
	}
	log.Printf("[suggestion][usecase] generate success items=%d labor=%.2f", len(s.Items), s.Labor)
	return s, nil
}

// parseSuggestionPayload strips formatting fences and decodes the payload into
// the strict intermediate shape. Malformed entries are rejected, never
// coerced.
func parseSuggestionPayload(raw string) (entities.Suggestion, error) {
	cleaned := strings.NewReplacer("```json", "", "```", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)

	var s entities.Suggestion
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return entities.Suggestion{}, err
	}
	if s.Labor < 0 {
		return entities.Suggestion{}, fmt.Errorf("negative labor %v", s.Labor)
	}
	for i, it := range s.Items {
		if strings.TrimSpace(it.Description) == "" {
			return entities.Suggestion{}, fmt.Errorf("item %d: empty description", i)
		}
		if it.Price < 0 {
			return entities.Suggestion{}, fmt.Errorf("item %d: negative price %v", i, it.Price)
		}
	}
	return s, nil
}
