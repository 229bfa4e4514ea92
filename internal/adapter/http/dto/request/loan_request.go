package request

type LoanQuoteRequest struct {
	Principal int64 `json:"principal" binding:"required"`
	Duration  int   `json:"duration" binding:"required"`
}
