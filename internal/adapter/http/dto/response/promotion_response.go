package response

import (
	"time"

	"wetrade/internal/domain/entities"
)

type PromotionResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Badge       string    `json:"badge"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPromotion(p entities.Promotion) PromotionResponse {
	return PromotionResponse{ID: p.ID, Title: p.Title, Description: p.Description, Badge: p.Badge, Image: p.Image, CreatedAt: p.CreatedAt}
}

func FromPromotions(in []entities.Promotion) []PromotionResponse {
	out := make([]PromotionResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPromotion(p))
	}
	return out
}

func FromService(s entities.ServiceOffering) ServiceResponse {
	return ServiceResponse{ID: s.ID, Title: s.Title, Description: s.Description, Icon: s.Icon, CreatedAt: s.CreatedAt}
}

func FromServices(in []entities.ServiceOffering) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromService(s))
	}
	return out
}
