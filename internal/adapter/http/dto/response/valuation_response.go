package response

import (
	"time"

	"wetrade/internal/domain/entities"
)

type ValuationSourceResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type ValuationResultResponse struct {
	EstimatedMarketValue float64                   `json:"estimated_market_value"`
	MaxLoanOffer         float64                   `json:"max_loan_offer"`
	ConfidenceScore      float64                   `json:"confidence_score"`
	Analysis             string                    `json:"analysis"`
	Sources              []ValuationSourceResponse `json:"sources"`
	SellLink             string                    `json:"sell_link,omitempty"`
	LoanLink             string                    `json:"loan_link,omitempty"`
}

type ValuationResponse struct {
	RequestID string                   `json:"request_id"`
	SessionID string                   `json:"session_id,omitempty"`
	State     string                   `json:"state"`
	Reason    string                   `json:"reason,omitempty"`
	Result    *ValuationResultResponse `json:"result,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func FromValuationHandle(h entities.ValuationHandle) ValuationResponse {
	out := ValuationResponse{
		RequestID: h.ID,
		SessionID: h.SessionID,
		State:     string(h.State),
		Reason:    h.Reason,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
	if h.Result != nil {
		sources := make([]ValuationSourceResponse, 0, len(h.Result.Sources))
		for _, s := range h.Result.Sources {
			sources = append(sources, ValuationSourceResponse{Title: s.Title, URI: s.URI})
		}
		out.Result = &ValuationResultResponse{
			EstimatedMarketValue: h.Result.EstimatedMarketValue,
			MaxLoanOffer:         h.Result.MaxLoanOffer,
			ConfidenceScore:      h.Result.ConfidenceScore,
			Analysis:             h.Result.Analysis,
			Sources:              sources,
		}
	}
	return out
}
