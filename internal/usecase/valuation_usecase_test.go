package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"
	mock_interfaces "wetrade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testValuationConfig() ValuationConfig {
	cfg := DefaultValuationConfig()
	cfg.Timeout = time.Second
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func TestParseAppraisalReply(t *testing.T) {
	policy := entities.DefaultValuationPolicy()

	t.Run("empty text", func(t *testing.T) {
		_, err := ParseAppraisalReply(interfaces.AppraisalReply{Text: "  \n"}, policy)
		if !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	malformed := []string{
		"the phone is worth a lot",
		`[1,2,3]`,
		`null`,
		`{"estimatedMarketValue": 100, "maxLoanOffer": 70, "confidenceScore": 0.5}`,
		`{"estimatedMarketValue": "100", "maxLoanOffer": 70, "confidenceScore": 0.5, "analysis": "x"}`,
		`{"estimatedMarketValue": -1, "maxLoanOffer": 70, "confidenceScore": 0.5, "analysis": "x"}`,
		"```json\n```",
	}
	for _, text := range malformed {
		t.Run("malformed "+text, func(t *testing.T) {
			_, err := ParseAppraisalReply(interfaces.AppraisalReply{Text: text}, policy)
			if !errors.Is(err, ErrMalformedResponse) && !errors.Is(err, ErrEmptyResponse) {
				t.Fatalf("expected malformed/empty, got %v", err)
			}
		})
	}

	t.Run("ceiling applied over upstream value", func(t *testing.T) {
		res, err := ParseAppraisalReply(interfaces.AppraisalReply{
			Text: `{"estimatedMarketValue": 800000, "maxLoanOffer": 560000, "confidenceScore": 0.8, "analysis": "Strong demand"}`,
		}, policy)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MaxLoanOffer != 500000 {
			t.Fatalf("expected 500000, got %v", res.MaxLoanOffer)
		}
		if res.EstimatedMarketValue != 800000 || res.ConfidenceScore != 0.8 || res.Analysis != "Strong demand" {
			t.Fatalf("unexpected fields: %+v", res)
		}
		if res.Sources == nil || len(res.Sources) != 0 {
			t.Fatalf("expected empty non-nil sources, got %+v", res.Sources)
		}
	})

	t.Run("fields kept when under cap", func(t *testing.T) {
		res, err := ParseAppraisalReply(interfaces.AppraisalReply{
			Text: "```json\n{\"estimatedMarketValue\": 400000, \"maxLoanOffer\": 250000, \"confidenceScore\": 1.7, \"analysis\": \" ok \"}\n```",
		}, policy)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MaxLoanOffer != 250000 || res.EstimatedMarketValue != 400000 {
			t.Fatalf("unexpected amounts: %+v", res)
		}
		if res.ConfidenceScore != 1 || res.Analysis != "ok" {
			t.Fatalf("expected clamped confidence and trimmed analysis: %+v", res)
		}
	})

	t.Run("upstream above seventy percent", func(t *testing.T) {
		res, err := ParseAppraisalReply(interfaces.AppraisalReply{
			Text: `{"estimatedMarketValue": 100000, "maxLoanOffer": 95000, "confidenceScore": 0.4, "analysis": "x"}`,
		}, policy)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MaxLoanOffer > 70000.0001 {
			t.Fatalf("expected offer capped at 70%%, got %v", res.MaxLoanOffer)
		}
	})

	t.Run("sources normalized", func(t *testing.T) {
		res, err := ParseAppraisalReply(interfaces.AppraisalReply{
			Text: `{"estimatedMarketValue": 1, "maxLoanOffer": 0, "confidenceScore": 0, "analysis": ""}`,
			Sources: []entities.ValuationSource{
				{Title: "Jumia - Phones", URI: "https://jumia.example/a"},
				{Title: "", URI: "https://slot.example/b"},
				{Title: "dup", URI: "https://jumia.example/a"},
				{Title: "no uri"},
			},
		}, policy)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Sources) != 2 {
			t.Fatalf("expected 2 sources, got %+v", res.Sources)
		}
		if res.Sources[1].Title != "Market Source" {
			t.Fatalf("expected default title, got %q", res.Sources[1].Title)
		}
	})
}

func TestValuationUseCase_Value(t *testing.T) {
	okReply := interfaces.AppraisalReply{
		Text:    `{"estimatedMarketValue": 800000, "maxLoanOffer": 560000, "confidenceScore": 0.9, "analysis": "S23 Ultra prices are stable"}`,
		Sources: []entities.ValuationSource{{Title: "Slot", URI: "https://slot.ng/s23"}},
	}

	t.Run("empty description never calls gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())

		_, err := uc.Value(context.Background(), "s", entities.ValuationRequest{Description: "   "})
		if !errors.Is(err, ErrInputInvalid) {
			t.Fatalf("expected ErrInputInvalid, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewValuationUseCase(nil, testValuationConfig())
		_, err := uc.Value(context.Background(), "s", entities.ValuationRequest{Description: "PS5"})
		if !errors.Is(err, ErrValuationNotConfigured) {
			t.Fatalf("expected ErrValuationNotConfigured, got %v", err)
		}
	})

	t.Run("success clamps and tracks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())

		img := &entities.InlineImage{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p interfaces.AppraisalPrompt) (interfaces.AppraisalReply, error) {
				if !strings.Contains(p.Instruction, `"Samsung S23 Ultra"`) {
					t.Fatalf("instruction should embed the description: %s", p.Instruction)
				}
				if p.Image != img || !p.SearchGrounding || len(p.Schema) != 4 {
					t.Fatalf("unexpected prompt: %+v", p)
				}
				return okReply, nil
			},
		)

		h, err := uc.Value(context.Background(), "s-1", entities.ValuationRequest{Description: " Samsung S23 Ultra ", Image: img})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.State != entities.ValuationStateCompleted || h.Result == nil {
			t.Fatalf("unexpected handle: %+v", h)
		}
		if h.Result.MaxLoanOffer != 500000 || len(h.Result.Sources) != 1 {
			t.Fatalf("unexpected result: %+v", h.Result)
		}

		status, err := uc.Status(context.Background(), h.ID)
		if err != nil || status.State != entities.ValuationStateCompleted {
			t.Fatalf("unexpected status %+v err=%v", status, err)
		}
	})

	t.Run("malformed reply fails without panicking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(interfaces.AppraisalReply{Text: "not json"}, nil)

		h, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"})
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse, got %v", err)
		}
		if h.State != entities.ValuationStateFailed || h.Result != nil || h.Reason != "malformed_response" {
			t.Fatalf("unexpected handle: %+v", h)
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(interfaces.AppraisalReply{}, nil)

		if _, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"}); !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("transient failure retried once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())
		gomock.InOrder(
			gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(interfaces.AppraisalReply{}, interfaces.ErrGatewayTransient),
			gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(okReply, nil),
		)

		h, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"})
		if err != nil || h.State != entities.ValuationStateCompleted {
			t.Fatalf("expected success after retry, got %+v err=%v", h, err)
		}
	})

	t.Run("persistent transient failure is a network failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(interfaces.AppraisalReply{}, interfaces.ErrGatewayTransient).Times(2)

		h, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"})
		if !errors.Is(err, ErrNetworkFailure) || h.Reason != "network_failure" {
			t.Fatalf("expected ErrNetworkFailure, got %+v err=%v", h, err)
		}
	})

	t.Run("permanent failure not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).Return(interfaces.AppraisalReply{}, errors.New("400 bad request")).Times(1)

		if _, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"}); !errors.Is(err, ErrNetworkFailure) {
			t.Fatalf("expected ErrNetworkFailure, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		cfg := testValuationConfig()
		cfg.Timeout = 20 * time.Millisecond
		uc := NewValuationUseCase(gw, cfg)
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ interfaces.AppraisalPrompt) (interfaces.AppraisalReply, error) {
				<-ctx.Done()
				return interfaces.AppraisalReply{}, ctx.Err()
			},
		)

		h, err := uc.Value(context.Background(), "", entities.ValuationRequest{Description: "iPhone"})
		if !errors.Is(err, ErrTimeout) || h.State != entities.ValuationStateFailed || h.Reason != "timeout" {
			t.Fatalf("expected timeout, got %+v err=%v", h, err)
		}
	})

	t.Run("newer request in session cancels older", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAdvisorGateway(ctrl)
		uc := NewValuationUseCase(gw, testValuationConfig())

		started := make(chan struct{})
		gw.EXPECT().Appraise(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p interfaces.AppraisalPrompt) (interfaces.AppraisalReply, error) {
				if strings.Contains(p.Instruction, "first") {
					close(started)
					<-ctx.Done()
					return interfaces.AppraisalReply{}, ctx.Err()
				}
				return okReply, nil
			},
		).Times(2)

		type outcome struct {
			h   entities.ValuationHandle
			err error
		}
		done := make(chan outcome, 1)
		go func() {
			h, err := uc.Value(context.Background(), "session", entities.ValuationRequest{Description: "first"})
			done <- outcome{h, err}
		}()
		<-started

		second, err := uc.Value(context.Background(), "session", entities.ValuationRequest{Description: "second"})
		if err != nil || second.State != entities.ValuationStateCompleted {
			t.Fatalf("second request should complete, got %+v err=%v", second, err)
		}

		first := <-done
		if !errors.Is(first.err, ErrCancelled) || first.h.State != entities.ValuationStateCancelled {
			t.Fatalf("first request should be cancelled, got %+v err=%v", first.h, first.err)
		}
	})
}

func TestValuationUseCase_Status(t *testing.T) {
	uc := NewValuationUseCase(nil, testValuationConfig())
	if _, err := uc.Status(context.Background(), "unknown"); !errors.Is(err, ErrValuationNotFound) {
		t.Fatalf("expected ErrValuationNotFound, got %v", err)
	}
	if _, err := uc.Status(context.Background(), " "); !errors.Is(err, ErrValuationNotFound) {
		t.Fatalf("expected ErrValuationNotFound, got %v", err)
	}
	if uc.Policy().Ceiling != 500000 {
		t.Fatalf("unexpected policy %+v", uc.Policy())
	}
}

func TestFailureReason(t *testing.T) {
	cases := map[error]string{
		nil:                       "",
		ErrInputInvalid:           "input_invalid",
		ErrEmptyResponse:          "empty_response",
		ErrMalformedResponse:      "malformed_response",
		ErrTimeout:                "timeout",
		ErrCancelled:              "cancelled",
		ErrValuationNotConfigured: "not_configured",
		errors.New("dial tcp"):    "network_failure",
	}
	for err, want := range cases {
		if got := FailureReason(err); got != want {
			t.Fatalf("FailureReason(%v) = %q, want %q", err, got, want)
		}
	}
}
