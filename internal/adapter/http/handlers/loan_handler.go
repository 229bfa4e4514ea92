package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "wetrade/internal/adapter/http/dto/request"
	response "wetrade/internal/adapter/http/dto/response"
	"wetrade/internal/usecase"
	"wetrade/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoanPayload = pkg.NewDomainErrorSimple("INVALID_LOAN_INPUT", "Invalid loan payload", http.StatusBadRequest)
)

// LoanHandler exposes the loan calculator. Nothing here is persisted.
type LoanHandler struct {
	usecase usecase.ILoanUseCase
}

func NewLoanHandler(uc usecase.ILoanUseCase) *LoanHandler {
	return &LoanHandler{usecase: uc}
}

// Terms godoc
// @Summary  Loan calculator bounds
// @Tags     loans
// @Produce  json
// @Success  200  {object}  response.LoanTermsResponse
// @Router   /loans/terms [get]
func (h *LoanHandler) Terms(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromLoanTerms(h.usecase.Terms()))
}

// Quote godoc
// @Summary      Quote a loan
// @Description  Simple interest: principal × monthly rate × months, repaid in equal instalments.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        quote  body      request.LoanQuoteRequest  true  "Principal and duration"
// @Success      200    {object}  response.LoanQuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /loans/quote [post]
func (h *LoanHandler) Quote(c *gin.Context) {
	var payload request.LoanQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoanPayload.HTTPStatus, errInvalidLoanPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(payload.Principal, payload.Duration)
	if err != nil {
		appErr := mapLoanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLoanQuote(quote))
}

// Options godoc
// @Summary  Monthly repayment for every duration
// @Tags     loans
// @Produce  json
// @Param    principal  query     int  true  "Principal"
// @Success  200        {object}  response.LoanOptionsResponse
// @Failure  400        {object}  pkg.HTTPError
// @Router   /loans/options [get]
func (h *LoanHandler) Options(c *gin.Context) {
	principal, err := strconv.ParseInt(strings.TrimSpace(c.Query("principal")), 10, 64)
	if err != nil {
		c.JSON(errInvalidLoanPayload.HTTPStatus, errInvalidLoanPayload.ToHTTPError())
		return
	}

	options, err := h.usecase.Options(principal)
	if err != nil {
		appErr := mapLoanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.LoanOptionsResponse{Principal: principal, Options: options})
}

func mapLoanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPrincipalOutOfRange):
		return pkg.NewDomainErrorSimple("PRINCIPAL_OUT_OF_RANGE", "Principal is outside the allowed range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_DURATION", "Duration is not offered", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
