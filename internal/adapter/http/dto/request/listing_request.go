package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"wetrade/internal/domain/entities"
)

var (
	ErrInvalidListingPrice = errors.New("invalid listing price")
)

// ListingRequest is the admin form payload. Price may be sent as a number or
// as a string typed into the form ("1,200,000", "₦450000").
type ListingRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       json.RawMessage `json:"price" swaggertype:"number"`
	Condition   string          `json:"condition"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

func (r ListingRequest) ResolvePrice() (int64, error) {
	raw := bytes.TrimSpace(r.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrInvalidListingPrice
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, ErrInvalidListingPrice
		}
		text = strings.NewReplacer(",", "", "₦", "", " ", "").Replace(text)
	} else {
		text = string(raw)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > math.MaxInt64/2 {
		return 0, ErrInvalidListingPrice
	}
	return int64(math.Round(v)), nil
}

func (r ListingRequest) ToEntity(price int64) entities.Listing {
	return entities.Listing{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Condition:   r.Condition,
		Category:    entities.Category(strings.ToLower(strings.TrimSpace(r.Category))),
		Image:       r.Image,
	}
}
