package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	response "wetrade/internal/adapter/http/dto/response"
	"wetrade/internal/adapter/http/handlers/mocks"
	"wetrade/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newHandoffRouter(h *HandoffHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/handoff", h.CreateLink)
	r.POST("/v1/assistant/chat", h.Chat)
	return r
}

func TestHandoffHandler_CreateLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown intent", usecase.ErrInvalidIntent, http.StatusBadRequest},
		{"bad amount", usecase.ErrInvalidAmount, http.StatusBadRequest},
		{"listing missing", usecase.ErrListingNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			handoff := mocks.NewMockIHandoffUseCase(ctrl)
			r := newHandoffRouter(NewHandoffHandler(handoff, nil))

			handoff.EXPECT().Link(gomock.Any(), gomock.Any()).Return(usecase.HandoffLink{}, tc.err)

			if w := perform(r, http.MethodPost, "/v1/handoff", `{"intent":"buy","listing_id":"1"}`); w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("missing intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newHandoffRouter(NewHandoffHandler(mocks.NewMockIHandoffUseCase(ctrl), nil))

		if w := perform(r, http.MethodPost, "/v1/handoff", `{"amount":5}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handoff := mocks.NewMockIHandoffUseCase(ctrl)
		r := newHandoffRouter(NewHandoffHandler(handoff, nil))

		handoff.EXPECT().Link(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req usecase.HandoffRequest) (usecase.HandoffLink, error) {
				if req.Intent != usecase.IntentLoanQuote || req.Amount != 600000 {
					t.Fatalf("unexpected command %+v", req)
				}
				return usecase.HandoffLink{Intent: req.Intent, Message: "I need a loan. AI Market Quote: ₦500,000", URL: "https://wa.me/234?text=x"}, nil
			},
		)

		w := perform(r, http.MethodPost, "/v1/handoff", `{"intent":"loan_quote","amount":600000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode[response.HandoffResponse](t, w); body.Intent != "loan_quote" || body.URL == "" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestHandoffHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newHandoffRouter(NewHandoffHandler(nil, mocks.NewMockIAssistantUseCase(ctrl)))

		if w := perform(r, http.MethodPost, "/v1/assistant/chat", `{"message":"   "}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		r := newHandoffRouter(NewHandoffHandler(nil, assistant))

		assistant.EXPECT().Reply(gomock.Any(), "hello", "home").Return("Hi there", nil)

		w := perform(r, http.MethodPost, "/v1/assistant/chat", `{"message":"hello","context":"home"}`)
		if w.Code != http.StatusOK || decode[response.ChatResponse](t, w).Reply != "Hi there" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unexpected error falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		assistant := mocks.NewMockIAssistantUseCase(ctrl)
		r := newHandoffRouter(NewHandoffHandler(nil, assistant))

		assistant.EXPECT().Reply(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		w := perform(r, http.MethodPost, "/v1/assistant/chat", `{"message":"hello"}`)
		if w.Code != http.StatusOK || decode[response.ChatResponse](t, w).Reply != usecase.AssistantFallback {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
