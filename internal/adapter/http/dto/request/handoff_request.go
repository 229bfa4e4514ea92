package request

import (
	"strings"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase"
)

type SourceRequest struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// HandoffRequest selects a message template. Listing intents (inquire, buy,
// loan_collateral) need listing_id; quote intents need amount.
type HandoffRequest struct {
	Intent      string          `json:"intent" binding:"required"`
	ListingID   string          `json:"listing_id"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Sources     []SourceRequest `json:"sources"`
}

func (r HandoffRequest) ToCommand() usecase.HandoffRequest {
	sources := make([]entities.ValuationSource, 0, len(r.Sources))
	for _, s := range r.Sources {
		sources = append(sources, entities.ValuationSource{Title: s.Title, URI: s.URI})
	}
	return usecase.HandoffRequest{
		Intent:      usecase.HandoffIntent(strings.ToLower(strings.TrimSpace(r.Intent))),
		ListingID:   r.ListingID,
		Amount:      r.Amount,
		Description: r.Description,
		Sources:     sources,
	}
}
