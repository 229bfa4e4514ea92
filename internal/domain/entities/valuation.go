package entities

import (
	"math"
	"time"
)

// ValuationPolicy is the single authoritative statement of the loan cap:
// an offer is at most LoanToValue × market value and never above Ceiling.
type ValuationPolicy struct {
	LoanToValue float64
	Ceiling     float64
}

func DefaultValuationPolicy() ValuationPolicy {
	return ValuationPolicy{LoanToValue: 0.70, Ceiling: 500000}
}

// MaxOffer returns min(LoanToValue × marketValue, Ceiling), floored at zero.
func (p ValuationPolicy) MaxOffer(marketValue float64) float64 {
	if marketValue <= 0 || math.IsNaN(marketValue) {
		return 0
	}
	return math.Min(marketValue*p.LoanToValue, p.Ceiling)
}

// Clamp caps an offer proposed by an untrusted party.
func (p ValuationPolicy) Clamp(offer, marketValue float64) float64 {
	if offer <= 0 || math.IsNaN(offer) {
		return 0
	}
	return math.Min(offer, p.MaxOffer(marketValue))
}

// InlineImage is a single photo attached to a valuation request.
type InlineImage struct {
	MIMEType string
	Data     []byte
}

// ValuationRequest is a free-text gadget description with an optional photo.
type ValuationRequest struct {
	Description string
	Image       *InlineImage
}

// ValuationSource is a cited web page backing an estimate.
type ValuationSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ValuationResult is produced by one round trip to the valuation service.
type ValuationResult struct {
	EstimatedMarketValue float64           `json:"estimated_market_value"`
	MaxLoanOffer         float64           `json:"max_loan_offer"`
	ConfidenceScore      float64           `json:"confidence_score"`
	Analysis             string            `json:"analysis"`
	Sources              []ValuationSource `json:"sources"`
}

// ValuationState is the lifecycle of one valuation request.
type ValuationState string

const (
	ValuationStatePending   ValuationState = "pending"
	ValuationStateCompleted ValuationState = "completed"
	ValuationStateFailed    ValuationState = "failed"
	ValuationStateCancelled ValuationState = "cancelled"
)

func (s ValuationState) Terminal() bool {
	return s == ValuationStateCompleted || s == ValuationStateFailed || s == ValuationStateCancelled
}

// ValuationHandle tracks one request. A newer request in the same session
// cancels a pending one.
type ValuationHandle struct {
	ID        string
	SessionID string
	State     ValuationState
	Result    *ValuationResult
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
