package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"wetrade/internal/domain/entities"
	"wetrade/internal/infrastructure/retry"
	"wetrade/internal/logging"
	"wetrade/internal/usecase/interfaces"
)

var (
	ErrInputInvalid           = errors.New("valuation description is empty")
	ErrEmptyResponse          = errors.New("valuation service returned no text")
	ErrMalformedResponse      = errors.New("valuation service returned malformed json")
	ErrNetworkFailure         = errors.New("valuation service unreachable")
	ErrTimeout                = errors.New("valuation service timed out")
	ErrCancelled              = errors.New("valuation superseded by a newer request")
	ErrValuationNotConfigured = errors.New("valuation gateway not configured")
	ErrValuationNotFound      = errors.New("valuation request not found")
)

const defaultSourceTitle = "Market Source"

// ValuationConfig groups the knobs of the valuation flow.
type ValuationConfig struct {
	Policy       entities.ValuationPolicy
	Market       MarketContext
	Timeout      time.Duration
	MaxAttempts  int
	RetryDelay   time.Duration
	TrackedLimit int
}

func DefaultValuationConfig() ValuationConfig {
	return ValuationConfig{
		Policy:       entities.DefaultValuationPolicy(),
		Market:       DefaultMarketContext(),
		Timeout:      25 * time.Second,
		MaxAttempts:  2,
		RetryDelay:   500 * time.Millisecond,
		TrackedLimit: 256,
	}
}

// IValuationUseCase turns a gadget description into a capped loan offer.
//
// Each call is one request handle: pending, then completed, failed or cancelled.
// A newer call in the same session cancels an older pending one.
type IValuationUseCase interface {
	Value(ctx context.Context, sessionID string, req entities.ValuationRequest) (entities.ValuationHandle, error)
	Status(ctx context.Context, requestID string) (entities.ValuationHandle, error)
	Policy() entities.ValuationPolicy
}

type ValuationUseCase struct {
	gateway interfaces.IAdvisorGateway
	cfg     ValuationConfig
	tracker *ValuationTracker
	retry   retry.Policy
}

var _ IValuationUseCase = (*ValuationUseCase)(nil)

func NewValuationUseCase(gateway interfaces.IAdvisorGateway, cfg ValuationConfig) *ValuationUseCase {
	return &ValuationUseCase{
		gateway: gateway,
		cfg:     cfg,
		tracker: NewValuationTracker(cfg.TrackedLimit),
		retry: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			BaseDelay:   cfg.RetryDelay,
			Retryable:   func(err error) bool { return errors.Is(err, interfaces.ErrGatewayTransient) },
			Logger:      logging.Component("valuation", "retry"),
		},
	}
}

func (u *ValuationUseCase) Policy() entities.ValuationPolicy {
	return u.cfg.Policy
}

func (u *ValuationUseCase) Value(ctx context.Context, sessionID string, req entities.ValuationRequest) (entities.ValuationHandle, error) {
	log := logging.Component("valuation", "usecase")
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		log.Debug("rejected empty description")
		return entities.ValuationHandle{}, ErrInputInvalid
	}
	if u.gateway == nil {
		log.Warn("gateway not configured")
		return entities.ValuationHandle{}, ErrValuationNotConfigured
	}

	reqCtx, id := u.tracker.Begin(ctx, sessionID)
	log = log.WithField("request_id", id).WithField("session_id", sessionID)
	log.WithField("has_image", req.Image != nil).Info("valuation start")

	result, err := u.run(reqCtx, desc, req.Image)
	if err == nil && errors.Is(context.Cause(reqCtx), ErrCancelled) {
		err = ErrCancelled
	}
	if err != nil {
		err = u.classify(reqCtx, err)
		u.tracker.Fail(id, err)
		log.WithField("reason", FailureReason(err)).Warnf("valuation failed: %v", err)
	} else {
		u.tracker.Complete(id, result)
		log.WithField("market_value", result.EstimatedMarketValue).
			WithField("max_offer", result.MaxLoanOffer).
			WithField("sources", len(result.Sources)).
			Info("valuation success")
	}

	handle, _ := u.tracker.Get(id)
	return handle, err
}

func (u *ValuationUseCase) Status(_ context.Context, requestID string) (entities.ValuationHandle, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ValuationHandle{}, ErrValuationNotFound
	}
	h, ok := u.tracker.Get(requestID)
	if !ok {
		return entities.ValuationHandle{}, ErrValuationNotFound
	}
	return h, nil
}

func (u *ValuationUseCase) run(ctx context.Context, desc string, image *entities.InlineImage) (entities.ValuationResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()

	prompt := BuildAppraisalPrompt(desc, image, u.cfg.Policy, u.cfg.Market)
	var reply interfaces.AppraisalReply
	err := u.retry.Do(callCtx, "valuation appraise", func(ctx context.Context) error {
		r, err := u.gateway.Appraise(ctx, prompt)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		if ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return entities.ValuationResult{}, ErrTimeout
		}
		return entities.ValuationResult{}, err
	}
	return ParseAppraisalReply(reply, u.cfg.Policy)
}

func (u *ValuationUseCase) classify(reqCtx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrEmptyResponse), errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrCancelled):
		return err
	case errors.Is(context.Cause(reqCtx), ErrCancelled), reqCtx.Err() != nil:
		return ErrCancelled
	case errors.Is(err, interfaces.ErrGatewayNotConfigured):
		return ErrValuationNotConfigured
	default:
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
}

// FailureReason is the short code stored on a failed or cancelled handle.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputInvalid):
		return "input_invalid"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrCancelled):
		return "cancelled"
	case errors.Is(err, ErrValuationNotConfigured):
		return "not_configured"
	default:
		return "network_failure"
	}
}

type appraisalPayload struct {
	EstimatedMarketValue *float64 `json:"estimatedMarketValue"`
	MaxLoanOffer         *float64 `json:"maxLoanOffer"`
	ConfidenceScore      *float64 `json:"confidenceScore"`
	Analysis             *string  `json:"analysis"`
}

// ParseAppraisalReply validates the untrusted reply and re-applies the policy cap.
// Any shape other than an object with the four required fields is malformed.
func ParseAppraisalReply(reply interfaces.AppraisalReply, policy entities.ValuationPolicy) (entities.ValuationResult, error) {
	text := stripCodeFence(strings.TrimSpace(reply.Text))
	if text == "" {
		return entities.ValuationResult{}, ErrEmptyResponse
	}

	var p appraisalPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return entities.ValuationResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if p.EstimatedMarketValue == nil || p.MaxLoanOffer == nil || p.ConfidenceScore == nil || p.Analysis == nil {
		return entities.ValuationResult{}, fmt.Errorf("%w: missing required field", ErrMalformedResponse)
	}
	mv := *p.EstimatedMarketValue
	if mv < 0 || math.IsInf(mv, 0) {
		return entities.ValuationResult{}, fmt.Errorf("%w: invalid market value %v", ErrMalformedResponse, mv)
	}

	return entities.ValuationResult{
		EstimatedMarketValue: mv,
		MaxLoanOffer:         policy.Clamp(*p.MaxLoanOffer, mv),
		ConfidenceScore:      math.Max(0, math.Min(1, *p.ConfidenceScore)),
		Analysis:             strings.TrimSpace(*p.Analysis),
		Sources:              normalizeSources(reply.Sources),
	}, nil
}

func normalizeSources(in []entities.ValuationSource) []entities.ValuationSource {
	out := make([]entities.ValuationSource, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		uri := strings.TrimSpace(s.URI)
		if uri == "" {
			continue
		}
		if _, dup := seen[uri]; dup {
			continue
		}
		seen[uri] = struct{}{}
		title := strings.TrimSpace(s.Title)
		if title == "" {
			title = defaultSourceTitle
		}
		out = append(out, entities.ValuationSource{Title: title, URI: uri})
	}
	return out
}

// stripCodeFence unwraps ```json ... ``` blocks some models emit around JSON.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		return ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
