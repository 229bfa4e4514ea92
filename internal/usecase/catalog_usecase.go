package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"wetrade/internal/domain/entities"
	"wetrade/internal/logging"
	"wetrade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrInvalidListingID     = errors.New("invalid listing id")
	ErrInvalidListing       = errors.New("invalid listing")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidTier          = errors.New("invalid tier")
	ErrInvalidPromotion     = errors.New("invalid promotion")
	ErrInvalidService       = errors.New("invalid service")
	ErrCatalogNotConfigured = errors.New("catalog repository not configured")
)

// Defaults applied by the admin form when a field is left empty.
const (
	DefaultCondition   = "Grade A++"
	DefaultImage       = "https://picsum.photos/seed/new/600/400"
	DefaultPromoBadge  = "NEW DEAL"
	DefaultServiceIcon = "fa-star"
	DefaultCategory    = entities.CategoryPhone
)

// ListingFilter narrows ListListings. Zero values mean "any".
type ListingFilter struct {
	Category entities.Category
	Tier     entities.Tier
}

// ICatalogUseCase exposes the storefront catalog.
//
// Mutations are commands (AddListing, AddPromotion, AddService); reads never change state.
type ICatalogUseCase interface {
	AddListing(ctx context.Context, l entities.Listing) (entities.Listing, error)
	AddPromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
	AddService(ctx context.Context, s entities.ServiceOffering) (entities.ServiceOffering, error)
	GetListing(ctx context.Context, id string) (entities.Listing, error)
	ListListings(ctx context.Context, filter ListingFilter) ([]entities.Listing, error)
	ListingsByTier(ctx context.Context) (pristine []entities.Listing, value []entities.Listing, err error)
	ListPromotions(ctx context.Context) ([]entities.Promotion, error)
	ListServices(ctx context.Context) ([]entities.ServiceOffering, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) AddListing(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	l.Name = strings.TrimSpace(l.Name)
	l.Description = strings.TrimSpace(l.Description)
	l.Condition = strings.TrimSpace(l.Condition)
	l.Image = strings.TrimSpace(l.Image)
	if l.Name == "" || l.Description == "" {
		return entities.Listing{}, ErrInvalidListing
	}
	if l.Price <= 0 {
		return entities.Listing{}, ErrInvalidPrice
	}
	if l.Category == "" {
		l.Category = DefaultCategory
	}
	if !l.Category.Valid() {
		return entities.Listing{}, ErrInvalidCategory
	}
	if l.Condition == "" {
		l.Condition = DefaultCondition
	}
	if l.Image == "" {
		l.Image = DefaultImage
	}
	if u.repo == nil {
		return entities.Listing{}, ErrCatalogNotConfigured
	}

	l.ID = uuid.NewString()
	l.CreatedAt = time.Now().UTC()
	created, err := u.repo.AddListing(ctx, l)
	if err != nil {
		return entities.Listing{}, err
	}
	logging.Component("catalog", "usecase").
		WithField("listing_id", created.ID).
		WithField("tier", created.Tier()).
		Info("listing added")
	return created, nil
}

func (u *CatalogUseCase) AddPromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Badge = strings.TrimSpace(p.Badge)
	if p.Title == "" || p.Description == "" {
		return entities.Promotion{}, ErrInvalidPromotion
	}
	if p.Badge == "" {
		p.Badge = DefaultPromoBadge
	}
	if u.repo == nil {
		return entities.Promotion{}, ErrCatalogNotConfigured
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	return u.repo.AddPromotion(ctx, p)
}

func (u *CatalogUseCase) AddService(ctx context.Context, s entities.ServiceOffering) (entities.ServiceOffering, error) {
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	s.Icon = strings.TrimSpace(s.Icon)
	if s.Title == "" || s.Description == "" {
		return entities.ServiceOffering{}, ErrInvalidService
	}
	if s.Icon == "" {
		s.Icon = DefaultServiceIcon
	}
	if u.repo == nil {
		return entities.ServiceOffering{}, ErrCatalogNotConfigured
	}

	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	return u.repo.AddService(ctx, s)
}

func (u *CatalogUseCase) GetListing(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}

	l, err := u.repo.GetListing(ctx, id)
	if err != nil {
		return entities.Listing{}, err
	}
	if l.ID == "" {
		return entities.Listing{}, ErrListingNotFound
	}
	return l, nil
}

func (u *CatalogUseCase) ListListings(ctx context.Context, filter ListingFilter) ([]entities.Listing, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if filter.Tier != "" && filter.Tier != entities.TierPristine && filter.Tier != entities.TierValue {
		return nil, ErrInvalidTier
	}

	all, err := u.repo.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Listing, 0, len(all))
	for _, l := range all {
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.Tier != "" && l.Tier() != filter.Tier {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (u *CatalogUseCase) ListingsByTier(ctx context.Context) ([]entities.Listing, []entities.Listing, error) {
	all, err := u.repo.ListListings(ctx)
	if err != nil {
		return nil, nil, err
	}
	pristine, value := entities.PartitionByTier(all)
	return pristine, value, nil
}

func (u *CatalogUseCase) ListPromotions(ctx context.Context) ([]entities.Promotion, error) {
	return u.repo.ListPromotions(ctx)
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.ServiceOffering, error) {
	return u.repo.ListServices(ctx)
}
