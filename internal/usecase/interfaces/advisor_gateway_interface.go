package interfaces

import (
	"context"
	"errors"
	"wetrade/internal/domain/entities"
)

var (
	// ErrGatewayTransient marks failures worth one more attempt (connection reset,
	// 5xx, rate limiting).
	ErrGatewayTransient = errors.New("advisor gateway transient failure")
	// ErrGatewayNotConfigured is returned when no credential was provided and mock mode is off.
	ErrGatewayNotConfigured = errors.New("advisor gateway not configured")
)

// SchemaField declares one property of the JSON object the model must return.
type SchemaField struct {
	Name        string
	Type        string // "number" or "string"
	Description string
}

// AppraisalPrompt is everything the gateway needs for one valuation round trip.
type AppraisalPrompt struct {
	Instruction       string
	SystemInstruction string
	Image             *entities.InlineImage
	Schema            []SchemaField
	SearchGrounding   bool
}

// AppraisalReply is the raw, untrusted answer of the valuation service.
type AppraisalReply struct {
	Text    string
	Sources []entities.ValuationSource
}

// IAdvisorGateway abstracts the external generative-AI provider (e.g. Gemini).
//
// Implementations perform exactly one outbound call per method invocation; retry and
// timeout policy belong to the caller.
type IAdvisorGateway interface {
	Appraise(ctx context.Context, prompt AppraisalPrompt) (AppraisalReply, error)
	Chat(ctx context.Context, systemInstruction, message string) (string, error)
}
