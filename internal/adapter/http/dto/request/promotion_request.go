package request

import "wetrade/internal/domain/entities"

type PromotionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Badge       string `json:"badge"`
	Image       string `json:"image"`
}

func (r PromotionRequest) ToEntity() entities.Promotion {
	return entities.Promotion{Title: r.Title, Description: r.Description, Badge: r.Badge, Image: r.Image}
}

type ServiceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon"`
}

func (r ServiceRequest) ToEntity() entities.ServiceOffering {
	return entities.ServiceOffering{Title: r.Title, Description: r.Description, Icon: r.Icon}
}
