package response

import "wetrade/internal/usecase"

type HandoffResponse struct {
	Intent  string `json:"intent"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func FromHandoffLink(l usecase.HandoffLink) HandoffResponse {
	return HandoffResponse{Intent: string(l.Intent), Message: l.Message, URL: l.URL}
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
