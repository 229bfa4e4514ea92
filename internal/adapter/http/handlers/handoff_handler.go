package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "wetrade/internal/adapter/http/dto/request"
	response "wetrade/internal/adapter/http/dto/response"
	"wetrade/internal/usecase"
	"wetrade/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidHandoffPayload = pkg.NewDomainErrorSimple("INVALID_HANDOFF_INPUT", "Invalid handoff payload", http.StatusBadRequest)
	errInvalidChatPayload    = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Message is required", http.StatusBadRequest)
)

// HandoffHandler returns messaging deep links and answers assistant chat.
type HandoffHandler struct {
	handoff   usecase.IHandoffUseCase
	assistant usecase.IAssistantUseCase
}

func NewHandoffHandler(handoff usecase.IHandoffUseCase, assistant usecase.IAssistantUseCase) *HandoffHandler {
	return &HandoffHandler{handoff: handoff, assistant: assistant}
}

// CreateLink godoc
// @Summary      Build a messaging link
// @Description  Intents: inquire, buy, loan_collateral (listing_id), sell_quote, loan_quote, accept_offer (amount).
// @Tags         handoff
// @Accept       json
// @Produce      json
// @Param        handoff  body      request.HandoffRequest  true  "Intent"
// @Success      200      {object}  response.HandoffResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /handoff [post]
func (h *HandoffHandler) CreateLink(c *gin.Context) {
	var payload request.HandoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHandoffPayload.HTTPStatus, errInvalidHandoffPayload.ToHTTPError())
		return
	}

	link, err := h.handoff.Link(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapHandoffError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHandoffLink(link))
}

// Chat godoc
// @Summary  Ask the storefront assistant
// @Tags     assistant
// @Accept   json
// @Produce  json
// @Param    chat  body      request.ChatRequest  true  "Message"
// @Success  200   {object}  response.ChatResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /assistant/chat [post]
func (h *HandoffHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), payload.Message, payload.Context)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
			return
		}
		reply = usecase.AssistantFallback
	}
	c.JSON(http.StatusOK, response.ChatResponse{Reply: reply})
}

func mapHandoffError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntent):
		return pkg.NewDomainErrorSimple("INVALID_INTENT", "Unknown handoff intent", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDescription), errors.Is(err, usecase.ErrInvalidListingID):
		return errInvalidHandoffPayload
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
