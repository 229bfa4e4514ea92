package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "wetrade/internal/adapter/http/dto/request"
	response "wetrade/internal/adapter/http/dto/response"
	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase"
	"wetrade/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidListingPayload   = pkg.NewDomainErrorSimple("INVALID_LISTING_INPUT", "Invalid listing payload", http.StatusBadRequest)
	errInvalidPromotionPayload = pkg.NewDomainErrorSimple("INVALID_PROMOTION_INPUT", "Invalid promotion payload", http.StatusBadRequest)
	errInvalidServicePayload   = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
)

// CatalogHandler serves listings, promotions and service cards.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	handoff usecase.IHandoffUseCase
}

// NewCatalogHandler wires the catalog. handoff may be nil, in which case listing
// cards are rendered without links.
func NewCatalogHandler(uc usecase.ICatalogUseCase, handoff usecase.IHandoffUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc, handoff: handoff}
}

// ListListings godoc
// @Summary      List listings
// @Description  Newest first. Optional filters by category and tier.
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "phone | laptop | tablet | accessory"
// @Param        tier      query  string  false  "pristine | value"
// @Success      200  {array}   response.ListingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /catalog/listings [get]
func (h *CatalogHandler) ListListings(c *gin.Context) {
	filter := usecase.ListingFilter{
		Category: entities.Category(strings.ToLower(strings.TrimSpace(c.Query("category")))),
		Tier:     entities.Tier(strings.ToLower(strings.TrimSpace(c.Query("tier")))),
	}

	listings, err := h.usecase.ListListings(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListings(listings, h.links()))
}

// ListingTiers godoc
// @Summary      Listings split by tier
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.ListingTiersResponse
// @Router       /catalog/listings/tiers [get]
func (h *CatalogHandler) ListingTiers(c *gin.Context) {
	pristine, value, err := h.usecase.ListingsByTier(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ListingTiersResponse{
		Pristine: response.FromListings(pristine, h.links()),
		Value:    response.FromListings(value, h.links()),
	})
}

// GetListing godoc
// @Summary      Get one listing
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Listing ID"
// @Success      200  {object}  response.ListingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/listings/{id} [get]
func (h *CatalogHandler) GetListing(c *gin.Context) {
	listing, err := h.usecase.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(listing, h.links()))
}

// CreateListing godoc
// @Summary      Add a listing
// @Description  Admin form. Missing condition, category and image get defaults.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        listing  body      request.ListingRequest  true  "Listing"
// @Success      201      {object}  response.ListingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /catalog/listings [post]
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	var payload request.ListingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidListingPayload.HTTPStatus, errInvalidListingPayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		appErr := mapCatalogError(usecase.ErrInvalidPrice)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AddListing(c.Request.Context(), payload.ToEntity(price))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromListing(created, h.links()))
}

// ListPromotions godoc
// @Summary  List promotions
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.PromotionResponse
// @Router   /catalog/promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.usecase.ListPromotions(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPromotions(promotions))
}

// CreatePromotion godoc
// @Summary  Add a promotion
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    promotion  body      request.PromotionRequest  true  "Promotion"
// @Success  201        {object}  response.PromotionResponse
// @Failure  400        {object}  pkg.HTTPError
// @Router   /catalog/promotions [post]
func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var payload request.PromotionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPromotionPayload.HTTPStatus, errInvalidPromotionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddPromotion(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPromotion(created))
}

// ListServices godoc
// @Summary  List service cards
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.ServiceResponse
// @Router   /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// CreateService godoc
// @Summary  Add a service card
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    service  body      request.ServiceRequest  true  "Service"
// @Success  201      {object}  response.ServiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /catalog/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.AddService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) links() func(entities.Listing) usecase.ListingLinks {
	if h.handoff == nil {
		return nil
	}
	return h.handoff.ListingLinks
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidListingID), errors.Is(err, usecase.ErrInvalidListing):
		return errInvalidListingPayload
	case errors.Is(err, usecase.ErrInvalidPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE", "Price must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Category must be phone, laptop, tablet or accessory", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTier):
		return pkg.NewDomainErrorSimple("INVALID_TIER", "Tier must be pristine or value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPromotion):
		return errInvalidPromotionPayload
	case errors.Is(err, usecase.ErrInvalidService):
		return errInvalidServicePayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
