package entities

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateLoanQuote_Scenario(t *testing.T) {
	q, err := CalculateLoanQuote(500000, 0.15, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalInterest != 225000 {
		t.Fatalf("expected interest 225000, got %v", q.TotalInterest)
	}
	if q.TotalRepayment != 725000 {
		t.Fatalf("expected total 725000, got %v", q.TotalRepayment)
	}
	if math.Round(q.MonthlyRepayment) != 241667 {
		t.Fatalf("expected monthly ~241667, got %v", q.MonthlyRepayment)
	}
	want := []string{"Start", "M1", "M2", "M3"}
	if len(q.Schedule) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(q.Schedule))
	}
	for i, label := range want {
		if q.Schedule[i].Label != label {
			t.Fatalf("point %d: expected %s, got %s", i, label, q.Schedule[i].Label)
		}
	}
}

func TestCalculateLoanQuote_Properties(t *testing.T) {
	rate := 0.15
	for principal := int64(20000); principal <= 500000; principal += 35000 {
		for duration := 1; duration <= 6; duration++ {
			q, err := CalculateLoanQuote(principal, rate, duration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(q.MonthlyRepayment*float64(duration)-q.TotalRepayment) > 1e-6 {
				t.Fatalf("p=%d d=%d: monthly×d=%v total=%v", principal, duration, q.MonthlyRepayment*float64(duration), q.TotalRepayment)
			}
			if len(q.Schedule) != duration+1 {
				t.Fatalf("p=%d d=%d: schedule length %d", principal, duration, len(q.Schedule))
			}
			if q.Schedule[0].Balance != q.TotalRepayment {
				t.Fatalf("p=%d d=%d: first point %v != total %v", principal, duration, q.Schedule[0].Balance, q.TotalRepayment)
			}
			last := q.Schedule[duration].Balance
			if last < 0 || last > 1e-6 {
				t.Fatalf("p=%d d=%d: last point %v", principal, duration, last)
			}
			for i := 1; i < len(q.Schedule); i++ {
				if q.Schedule[i].Balance > q.Schedule[i-1].Balance {
					t.Fatalf("p=%d d=%d: schedule not decreasing", principal, duration)
				}
			}
		}
	}
}

func TestCalculateLoanQuote_ZeroDuration(t *testing.T) {
	if _, err := CalculateLoanQuote(100000, 0.15, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := RoundedMonthly(100000, 0.15, -1); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestRoundedMonthly(t *testing.T) {
	got, err := RoundedMonthly(500000, 0.15, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 241667 {
		t.Fatalf("expected 241667, got %d", got)
	}
	got, _ = RoundedMonthly(100000, 0.15, 1)
	if got != 115000 {
		t.Fatalf("expected 115000, got %d", got)
	}
}

func TestLoanTermsAllowsDuration(t *testing.T) {
	terms := LoanTerms{Durations: []int{1, 3, 6}}
	if !terms.AllowsDuration(3) || terms.AllowsDuration(2) || terms.AllowsDuration(0) {
		t.Fatalf("unexpected duration membership")
	}
}
