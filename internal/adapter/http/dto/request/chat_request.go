package request

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}
