package response

import (
	"math"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase"
)

type LoanTermsResponse struct {
	MinPrincipal  int64   `json:"min_principal"`
	MaxPrincipal  int64   `json:"max_principal"`
	PrincipalStep int64   `json:"principal_step"`
	MonthlyRate   float64 `json:"monthly_rate"`
	Durations     []int   `json:"durations"`
}

type SchedulePointResponse struct {
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
}

// LoanQuoteResponse keeps exact figures and adds the whole-currency monthly
// amount shown to customers.
type LoanQuoteResponse struct {
	Principal               int64                   `json:"principal"`
	MonthlyRate             float64                 `json:"monthly_rate"`
	Duration                int                     `json:"duration"`
	TotalInterest           float64                 `json:"total_interest"`
	TotalRepayment          float64                 `json:"total_repayment"`
	MonthlyRepayment        float64                 `json:"monthly_repayment"`
	MonthlyRepaymentRounded int64                   `json:"monthly_repayment_rounded"`
	Schedule                []SchedulePointResponse `json:"schedule"`
}

type LoanOptionsResponse struct {
	Principal int64                `json:"principal"`
	Options   []usecase.LoanOption `json:"options"`
}

func FromLoanTerms(t entities.LoanTerms) LoanTermsResponse {
	return LoanTermsResponse{
		MinPrincipal:  t.MinPrincipal,
		MaxPrincipal:  t.MaxPrincipal,
		PrincipalStep: t.PrincipalStep,
		MonthlyRate:   t.MonthlyRate,
		Durations:     t.Durations,
	}
}

func FromLoanQuote(q entities.LoanQuote) LoanQuoteResponse {
	schedule := make([]SchedulePointResponse, 0, len(q.Schedule))
	for _, p := range q.Schedule {
		schedule = append(schedule, SchedulePointResponse{Label: p.Label, Balance: p.Balance})
	}
	return LoanQuoteResponse{
		Principal:               q.Principal,
		MonthlyRate:             q.MonthlyRate,
		Duration:                q.Duration,
		TotalInterest:           q.TotalInterest,
		TotalRepayment:          q.TotalRepayment,
		MonthlyRepayment:        q.MonthlyRepayment,
		MonthlyRepaymentRounded: int64(math.Round(q.MonthlyRepayment)),
		Schedule:                schedule,
	}
}
