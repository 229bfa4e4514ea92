package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"wetrade/internal/logging"
	"wetrade/internal/usecase/interfaces"
)

// AssistantFallback is returned whenever the chat model gives nothing usable.
const AssistantFallback = "I'm sorry, I couldn't process that."

var ErrEmptyMessage = errors.New("chat message is empty")

const assistantInstruction = "You are the WeTrade Assistant. Help users with gadget sales, swaps, and quick collateralized loans. Current context: "

type IAssistantUseCase interface {
	Reply(ctx context.Context, message, pageContext string) (string, error)
}

type AssistantUseCase struct {
	gateway interfaces.IAdvisorGateway
	timeout time.Duration
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(gateway interfaces.IAdvisorGateway, timeout time.Duration) *AssistantUseCase {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &AssistantUseCase{gateway: gateway, timeout: timeout}
}

// Reply answers one chat message. Upstream failures are logged and answered with
// AssistantFallback; only an empty message is an error.
func (u *AssistantUseCase) Reply(ctx context.Context, message, pageContext string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	log := logging.Component("assistant", "usecase")
	if u.gateway == nil {
		log.Warn("gateway not configured")
		return AssistantFallback, nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.gateway.Chat(ctx, assistantInstruction+strings.TrimSpace(pageContext), message)
	if err != nil {
		log.Warnf("chat failed: %v", err)
		return AssistantFallback, nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return AssistantFallback, nil
	}
	return text, nil
}
