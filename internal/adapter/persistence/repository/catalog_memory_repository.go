package repository

import (
	"context"
	"sync"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"
)

// CatalogMemoryRepository keeps the storefront catalog in process memory.
//
// Storage model:
//   - one slice per collection, newest first (Add* prepends)
//   - listings are also indexed by id
//
// Nothing is persisted: a restart drops every addition and reloads the seed.

type CatalogMemoryRepository struct {
	mu         sync.RWMutex
	listings   []entities.Listing
	byID       map[string]int
	promotions []entities.Promotion
	services   []entities.ServiceOffering
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	return &CatalogMemoryRepository{byID: map[string]int{}}
}

func (r *CatalogMemoryRepository) AddListing(_ context.Context, l entities.Listing) (entities.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listings = append([]entities.Listing{l}, r.listings...)
	r.reindex()
	return l, nil
}

func (r *CatalogMemoryRepository) GetListing(_ context.Context, id string) (entities.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return entities.Listing{}, nil
	}
	return r.listings[idx], nil
}

func (r *CatalogMemoryRepository) ListListings(_ context.Context) ([]entities.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *CatalogMemoryRepository) AddPromotion(_ context.Context, p entities.Promotion) (entities.Promotion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.promotions = append([]entities.Promotion{p}, r.promotions...)
	return p, nil
}

func (r *CatalogMemoryRepository) ListPromotions(_ context.Context) ([]entities.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Promotion, len(r.promotions))
	copy(out, r.promotions)
	return out, nil
}

func (r *CatalogMemoryRepository) AddService(_ context.Context, s entities.ServiceOffering) (entities.ServiceOffering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services = append([]entities.ServiceOffering{s}, r.services...)
	return s, nil
}

func (r *CatalogMemoryRepository) ListServices(_ context.Context) ([]entities.ServiceOffering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ServiceOffering, len(r.services))
	copy(out, r.services)
	return out, nil
}

// reindex must be called with the write lock held. Prepending shifts every index,
// so the map is rebuilt; the catalog is small enough for this to be fine.
func (r *CatalogMemoryRepository) reindex() {
	r.byID = make(map[string]int, len(r.listings))
	for i := len(r.listings) - 1; i >= 0; i-- {
		r.byID[r.listings[i].ID] = i
	}
}
