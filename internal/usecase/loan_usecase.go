package usecase

import (
	"errors"

	"wetrade/internal/domain/entities"
)

var (
	ErrPrincipalOutOfRange = errors.New("principal out of range")
	ErrInvalidDuration     = entities.ErrInvalidDuration
)

// LoanOption is the monthly repayment of one selectable duration.
type LoanOption struct {
	Duration         int   `json:"duration"`
	MonthlyRepayment int64 `json:"monthly_repayment"`
}

// ILoanUseCase exposes the loan calculator. Everything is pure and recomputed per call.
type ILoanUseCase interface {
	Terms() entities.LoanTerms
	Quote(principal int64, duration int) (entities.LoanQuote, error)
	Options(principal int64) ([]LoanOption, error)
}

type LoanUseCase struct {
	terms entities.LoanTerms
}

var _ ILoanUseCase = (*LoanUseCase)(nil)

func NewLoanUseCase(terms entities.LoanTerms) *LoanUseCase {
	return &LoanUseCase{terms: terms}
}

func (u *LoanUseCase) Terms() entities.LoanTerms {
	t := u.terms
	t.Durations = append([]int(nil), u.terms.Durations...)
	return t
}

func (u *LoanUseCase) Quote(principal int64, duration int) (entities.LoanQuote, error) {
	if err := u.checkPrincipal(principal); err != nil {
		return entities.LoanQuote{}, err
	}
	if !u.terms.AllowsDuration(duration) {
		return entities.LoanQuote{}, ErrInvalidDuration
	}
	return entities.CalculateLoanQuote(principal, u.terms.MonthlyRate, duration)
}

func (u *LoanUseCase) Options(principal int64) ([]LoanOption, error) {
	if err := u.checkPrincipal(principal); err != nil {
		return nil, err
	}
	out := make([]LoanOption, 0, len(u.terms.Durations))
	for _, d := range u.terms.Durations {
		monthly, err := entities.RoundedMonthly(principal, u.terms.MonthlyRate, d)
		if err != nil {
			return nil, err
		}
		out = append(out, LoanOption{Duration: d, MonthlyRepayment: monthly})
	}
	return out, nil
}

func (u *LoanUseCase) checkPrincipal(principal int64) error {
	if principal < u.terms.MinPrincipal || principal > u.terms.MaxPrincipal {
		return ErrPrincipalOutOfRange
	}
	return nil
}
