package entities

import "time"

// Promotion is a display-only deal shown in the storefront marquee.
type Promotion struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Badge       string    `json:"badge" yaml:"badge"`
	Image       string    `json:"image,omitempty" yaml:"image"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

// ServiceOffering is a display-only service card (swap, warranty, loans...).
type ServiceOffering struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}
