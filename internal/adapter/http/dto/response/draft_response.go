package response

import (
	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase"
)

// DraftResponse exposes the composer state for one in-flight draft.
//
// Draft is the live snapshot (status RASCUNHO until finalize) and Total is
// recomputed from the current items/labor/discount on every read.

type DraftResponse struct {
	DraftID string               `json:"draft_id"`
	Phase   string               `json:"phase"`
	Total   float64              `json:"total"`
	Draft   ServiceOrderResponse `json:"draft"`
}

func FromDraft(id string, composer *usecase.OrderComposer) DraftResponse {
	return DraftResponse{
		DraftID: id,
		Phase:   string(composer.Phase()),
		Total:   composer.Total(),
		Draft:   FromServiceOrder(composer.Snapshot()),
	}
}

type SuggestionResponse struct {
	Items []SuggestedItemResponse `json:"items"`
	Labor float64                 `json:"labor"`
}

type SuggestedItemResponse struct {
	Description string  `json:"desc"`
	Price       float64 `json:"price"`
}

// SuggestionAppliedResponse carries both the suggestion that was merged and
// the draft state after the merge.
type SuggestionAppliedResponse struct {
	Suggestion SuggestionResponse `json:"suggestion"`
	Draft      DraftResponse      `json:"draft"`
}

func FromSuggestion(s entities.Suggestion) SuggestionResponse {
	items := make([]SuggestedItemResponse, 0, len(s.Items))
	for _, i := range s.Items {
		items = append(items, SuggestedItemResponse{Description: i.Description, Price: i.Price})
	}
	return SuggestionResponse{Items: items, Labor: s.Labor}
}
