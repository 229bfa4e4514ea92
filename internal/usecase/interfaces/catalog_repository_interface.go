package interfaces

import (
	"context"
	"wetrade/internal/domain/entities"
)

// ICatalogRepository abstracts the storefront catalog (listings, promotions, services).
//
// The catalog is append-only: new entries go to the front of each collection and
// there is no update or delete. Lookups return a zero value (empty ID) when not found.

type ICatalogRepository interface {
	AddListing(ctx context.Context, l entities.Listing) (entities.Listing, error)
	GetListing(ctx context.Context, id string) (entities.Listing, error)
	ListListings(ctx context.Context) ([]entities.Listing, error)

	AddPromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
	ListPromotions(ctx context.Context) ([]entities.Promotion, error)

	AddService(ctx context.Context, s entities.ServiceOffering) (entities.ServiceOffering, error)
	ListServices(ctx context.Context) ([]entities.ServiceOffering, error)
}
