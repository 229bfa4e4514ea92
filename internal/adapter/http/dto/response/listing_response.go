package response

import (
	"time"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase"

	"github.com/dustin/go-humanize"
)

type ListingLinksResponse struct {
	Inquire string `json:"inquire"`
	Buy     string `json:"buy"`
	Loan    string `json:"loan"`
}

type ListingResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       int64                `json:"price"`
	PriceLabel  string               `json:"price_label"`
	Condition   string               `json:"condition"`
	Category    string               `json:"category"`
	Image       string               `json:"image"`
	Tier        string               `json:"tier"`
	Links       ListingLinksResponse `json:"links"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ListingTiersResponse struct {
	Pristine []ListingResponse `json:"pristine"`
	Value    []ListingResponse `json:"value"`
}

// FromListing renders a listing card. links may be nil when no handoff is wired.
func FromListing(l entities.Listing, links func(entities.Listing) usecase.ListingLinks) ListingResponse {
	out := ListingResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		PriceLabel:  "₦" + humanize.Comma(l.Price),
		Condition:   l.Condition,
		Category:    string(l.Category),
		Image:       l.Image,
		Tier:        string(l.Tier()),
		CreatedAt:   l.CreatedAt,
	}
	if links != nil {
		ll := links(l)
		out.Links = ListingLinksResponse{Inquire: ll.Inquire.URL, Buy: ll.Buy.URL, Loan: ll.Loan.URL}
	}
	return out
}

func FromListings(listings []entities.Listing, links func(entities.Listing) usecase.ListingLinks) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, FromListing(l, links))
	}
	return out
}
