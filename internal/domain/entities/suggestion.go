package entities

// SuggestedItem is one candidate part proposed by the suggestion provider.
type SuggestedItem struct {
	Description string  `json:"desc"`
	Price       float64 `json:"price"`
}

// Suggestion is the validated result of one AI suggestion round trip.
//
// Labor replaces (never adds to) the draft's current labor value when the
// suggestion is merged.
type Suggestion struct {
	Items []SuggestedItem `json:"items"`
	Labor float64         `json:"labor"`
}
