package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidDuration = errors.New("invalid loan duration")

// LoanTerms are the configured bounds of the loan calculator.
type LoanTerms struct {
	MinPrincipal  int64   `json:"min_principal"`
	MaxPrincipal  int64   `json:"max_principal"`
	PrincipalStep int64   `json:"principal_step"`
	MonthlyRate   float64 `json:"monthly_rate"`
	Durations     []int   `json:"durations"`
}

func (t LoanTerms) AllowsDuration(months int) bool {
	for _, d := range t.Durations {
		if d == months {
			return true
		}
	}
	return false
}

// SchedulePoint is one point of the linear paydown curve.
type SchedulePoint struct {
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
}

// LoanQuote is an ephemeral, recomputed-on-demand loan estimate.
//
// Interest is simple and non-compounding: principal × monthly rate × months.
// Schedule has Duration+1 points, from "Start" down to zero.
type LoanQuote struct {
	Principal        int64           `json:"principal"`
	MonthlyRate      float64         `json:"monthly_rate"`
	Duration         int             `json:"duration"`
	TotalInterest    float64         `json:"total_interest"`
	TotalRepayment   float64         `json:"total_repayment"`
	MonthlyRepayment float64         `json:"monthly_repayment"`
	Schedule         []SchedulePoint `json:"schedule"`
}

// CalculateLoanQuote is a pure function of its inputs. The only error is a
// non-positive duration.
func CalculateLoanQuote(principal int64, monthlyRate float64, duration int) (LoanQuote, error) {
	if duration <= 0 {
		return LoanQuote{}, ErrInvalidDuration
	}

	p := decimal.NewFromInt(principal)
	months := decimal.NewFromInt(int64(duration))
	totalInterest := p.Mul(decimal.NewFromFloat(monthlyRate)).Mul(months)
	totalRepayment := p.Add(totalInterest)
	monthlyRepayment := totalRepayment.Div(months)

	schedule := make([]SchedulePoint, 0, duration+1)
	for i := 0; i <= duration; i++ {
		balance := totalRepayment.Sub(monthlyRepayment.Mul(decimal.NewFromInt(int64(i))))
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		schedule = append(schedule, SchedulePoint{
			Label:   scheduleLabel(i),
			Balance: balance.InexactFloat64(),
		})
	}

	return LoanQuote{
		Principal:        principal,
		MonthlyRate:      monthlyRate,
		Duration:         duration,
		TotalInterest:    totalInterest.InexactFloat64(),
		TotalRepayment:   totalRepayment.InexactFloat64(),
		MonthlyRepayment: monthlyRepayment.InexactFloat64(),
		Schedule:         schedule,
	}, nil
}

// RoundedMonthly is the monthly repayment in whole currency units, as shown on
// the duration buttons.
func RoundedMonthly(principal int64, monthlyRate float64, duration int) (int64, error) {
	if duration <= 0 {
		return 0, ErrInvalidDuration
	}
	p := decimal.NewFromInt(principal)
	months := decimal.NewFromInt(int64(duration))
	total := p.Add(p.Mul(decimal.NewFromFloat(monthlyRate)).Mul(months))
	return total.Div(months).Round(0).IntPart(), nil
}

func scheduleLabel(month int) string {
	if month == 0 {
		return "Start"
	}
	return fmt.Sprintf("M%d", month)
}
