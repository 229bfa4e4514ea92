package handlers

import (
	"errors"
	"net/http"

	request "wetrade/internal/adapter/http/dto/request"
	response "wetrade/internal/adapter/http/dto/response"
	"wetrade/internal/logging"
	"wetrade/internal/usecase"
	"wetrade/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderSessionID groups valuation requests of one browser session.
const HeaderSessionID = "X-Session-ID"

var (
	errInvalidValuationPayload = pkg.NewDomainErrorSimple("INVALID_VALUATION_INPUT", "Please describe your gadget", http.StatusBadRequest)
	errValuationUnavailable    = pkg.NewDomainErrorSimple("VALUATION_UNAVAILABLE", "Could not process the valuation. Please try again with more details.", http.StatusBadGateway)
)

// ValuationLimits bounds the photos accepted with a valuation.
type ValuationLimits struct {
	MaxPhotos     int
	MaxImageBytes int
}

type ValuationHandler struct {
	usecase usecase.IValuationUseCase
	handoff usecase.IHandoffUseCase
	limits  ValuationLimits
}

func NewValuationHandler(uc usecase.IValuationUseCase, handoff usecase.IHandoffUseCase, limits ValuationLimits) *ValuationHandler {
	return &ValuationHandler{usecase: uc, handoff: handoff, limits: limits}
}

// CreateValuation godoc
// @Summary      Value a gadget
// @Description  Live market valuation with a loan offer capped by policy. A newer request with the same session cancels the older one.
// @Tags         valuations
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string                    false  "Session"
// @Param        valuation     body      request.ValuationRequest  true   "Description and photos"
// @Success      200           {object}  response.ValuationResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Router       /valuations [post]
func (h *ValuationHandler) CreateValuation(c *gin.Context) {
	log := logging.Component("valuation", "handler")

	var payload request.ValuationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}

	image, err := payload.ResolveImage(h.limits.MaxPhotos, h.limits.MaxImageBytes)
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sessionID := payload.ResolveSessionID(c.GetHeader(HeaderSessionID))
	handle, err := h.usecase.Value(c.Request.Context(), sessionID, payload.ToEntity(image))
	if err != nil {
		log.WithField("request_id", handle.ID).WithField("reason", usecase.FailureReason(err)).Warn("valuation failed")
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromValuationHandle(handle)
	if res.Result != nil && h.handoff != nil {
		if link, err := h.handoff.Link(c.Request.Context(), usecase.HandoffRequest{Intent: usecase.IntentSellQuote, Amount: res.Result.EstimatedMarketValue}); err == nil {
			res.Result.SellLink = link.URL
		}
		if link, err := h.handoff.Link(c.Request.Context(), usecase.HandoffRequest{Intent: usecase.IntentLoanQuote, Amount: res.Result.MaxLoanOffer}); err == nil {
			res.Result.LoanLink = link.URL
		}
	}
	c.JSON(http.StatusOK, res)
}

// GetValuation godoc
// @Summary  Valuation request state
// @Tags     valuations
// @Produce  json
// @Param    request_id  path      string  true  "Request ID"
// @Success  200         {object}  response.ValuationResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /valuations/{request_id} [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	handle, err := h.usecase.Status(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapValuationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValuationHandle(handle))
}

// mapValuationError collapses every upstream failure into one generic message.
func mapValuationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInputInvalid):
		return errInvalidValuationPayload
	case errors.Is(err, request.ErrTooManyPhotos):
		return pkg.NewDomainErrorSimple("TOO_MANY_PHOTOS", "Up to 3 photos are accepted", http.StatusBadRequest)
	case errors.Is(err, request.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Photo is too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, request.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Photo could not be read", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancelled):
		return pkg.NewDomainErrorSimple("VALUATION_SUPERSEDED", "A newer valuation replaced this one", http.StatusConflict)
	case errors.Is(err, usecase.ErrValuationNotFound):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_FOUND", "Valuation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError(errValuationUnavailable.Code, errValuationUnavailable.Message, err, errValuationUnavailable.HTTPStatus)
	}
}
