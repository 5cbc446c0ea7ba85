package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	mock_interfaces "kaenpro_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSuggestionUseCase_Suggest(t *testing.T) {
	t.Run("missing problem", func(t *testing.T) {
		uc := NewSuggestionUseCase(nil)
		_, err := uc.Suggest(context.Background(), "   ", "Gol 1.6")
		if !errors.Is(err, ErrMissingSuggestInput) {
			t.Fatalf("expected ErrMissingSuggestInput, got %v", err)
		}
	})

	t.Run("missing vehicle", func(t *testing.T) {
		uc := NewSuggestionUseCase(nil)
		_, err := uc.Suggest(context.Background(), "barulho ao frear", "")
		if !errors.Is(err, ErrMissingSuggestInput) {
			t.Fatalf("expected ErrMissingSuggestInput, got %v", err)
		}
	})

	t.Run("no provider", func(t *testing.T) {
		uc := NewSuggestionUseCase(nil)
		_, err := uc.Suggest(context.Background(), "barulho ao frear", "Gol 1.6")
		if !errors.Is(err, ErrSuggestionUnavailable) {
			t.Fatalf("expected ErrSuggestionUnavailable, got %v", err)
		}
	})

	t.Run("prompt carries problem and vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockISuggestionProvider(ctrl)
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, `"barulho ao frear"`) || !strings.Contains(prompt, "Gol 1.6") {
					t.Fatalf("unexpected prompt: %s", prompt)
				}
				if !strings.Contains(prompt, `{"items": [{"desc": "nome", "price": 0}], "labor": 0}`) {
					t.Fatalf("prompt missing expected shape: %s", prompt)
				}
				return `{"items": [], "labor": 0}`, nil
			},
		)

		uc := NewSuggestionUseCase(provider)
		if _, err := uc.Suggest(context.Background(), "barulho ao frear", "Gol 1.6"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider error wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockISuggestionProvider(ctrl)
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

		uc := NewSuggestionUseCase(provider)
		_, err := uc.Suggest(context.Background(), "problema", "Uno")
		if !errors.Is(err, ErrSuggestionFailed) {
			t.Fatalf("expected ErrSuggestionFailed, got %v", err)
		}
	})

	t.Run("fenced payload accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockISuggestionProvider(ctrl)
		provider.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(
			"```json\n{\"items\": [{\"desc\": \"pastilha\", \"price\": 89.9}], \"labor\": 120}\n```", nil)

		uc := NewSuggestionUseCase(provider)
		s, err := uc.Suggest(context.Background(), "freio rangendo", "Civic")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Items) != 1 || s.Items[0].Description != "pastilha" || s.Items[0].Price != 89.9 || s.Labor != 120 {
			t.Fatalf("unexpected suggestion: %+v", s)
		}
	})
}

func TestParseSuggestionPayload(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		s, err := parseSuggestionPayload(`{"items": [{"desc": "vela", "price": 12}], "labor": 60}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Items) != 1 || s.Labor != 60 {
			t.Fatalf("unexpected suggestion: %+v", s)
		}
	})

	t.Run("bare fence", func(t *testing.T) {
		if _, err := parseSuggestionPayload("```\n{\"items\": [], \"labor\": 10}\n```"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		cases := []struct {
			name string
			raw  string
		}{
			{"not json", "desculpe, não entendi"},
			{"negative labor", `{"items": [], "labor": -5}`},
			{"empty description", `{"items": [{"desc": "  ", "price": 10}], "labor": 0}`},
			{"negative price", `{"items": [{"desc": "vela", "price": -1}], "labor": 0}`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := parseSuggestionPayload(tc.raw); err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
			})
		}
	})
}
