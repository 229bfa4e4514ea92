package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"wetrade/internal/domain/entities"
	"wetrade/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
)

var (
	ErrInvalidIntent       = errors.New("invalid handoff intent")
	ErrInvalidAmount       = errors.New("invalid handoff amount")
	ErrMissingDescription  = errors.New("handoff description is required")
	ErrHandoffNotAvailable = errors.New("handoff listing lookup not configured")
)

// HandoffIntent names the pre-filled message a link opens with.
type HandoffIntent string

const (
	IntentInquire        HandoffIntent = "inquire"
	IntentBuy            HandoffIntent = "buy"
	IntentLoanCollateral HandoffIntent = "loan_collateral"
	IntentSellQuote      HandoffIntent = "sell_quote"
	IntentLoanQuote      HandoffIntent = "loan_quote"
	IntentAcceptOffer    HandoffIntent = "accept_offer"
)

func (i HandoffIntent) needsListing() bool {
	return i == IntentInquire || i == IntentBuy || i == IntentLoanCollateral
}

type HandoffRequest struct {
	Intent      HandoffIntent
	ListingID   string
	Amount      float64
	Description string
	Sources     []entities.ValuationSource
}

type HandoffLink struct {
	Intent  HandoffIntent `json:"intent"`
	Message string        `json:"message"`
	URL     string        `json:"url"`
}

// ListingLinks are the links rendered next to a catalog card.
type ListingLinks struct {
	Inquire HandoffLink
	Buy     HandoffLink
	Loan    HandoffLink
}

type HandoffConfig struct {
	BaseURL string
	Phone   string
	Ceiling float64
}

// IHandoffUseCase builds messaging deep links. Nothing is sent or recorded.
type IHandoffUseCase interface {
	Link(ctx context.Context, req HandoffRequest) (HandoffLink, error)
	ListingLinks(l entities.Listing) ListingLinks
}

type HandoffUseCase struct {
	repo interfaces.ICatalogRepository
	cfg  HandoffConfig
}

var _ IHandoffUseCase = (*HandoffUseCase)(nil)

func NewHandoffUseCase(repo interfaces.ICatalogRepository, cfg HandoffConfig) *HandoffUseCase {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://wa.me"
	}
	if cfg.Ceiling <= 0 {
		cfg.Ceiling = entities.DefaultValuationPolicy().Ceiling
	}
	return &HandoffUseCase{repo: repo, cfg: cfg}
}

func (u *HandoffUseCase) Link(ctx context.Context, req HandoffRequest) (HandoffLink, error) {
	if req.Intent.needsListing() {
		l, err := u.listing(ctx, req.ListingID)
		if err != nil {
			return HandoffLink{}, err
		}
		return u.listingLink(req.Intent, l), nil
	}

	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount < 0 {
		return HandoffLink{}, ErrInvalidAmount
	}

	var msg string
	switch req.Intent {
	case IntentSellQuote:
		msg = "I am selling my gadget. AI Market Quote: ₦" + naira(req.Amount)
	case IntentLoanQuote:
		msg = "I need a loan. AI Market Quote: ₦" + naira(math.Min(req.Amount, u.cfg.Ceiling))
	case IntentAcceptOffer:
		desc := strings.TrimSpace(req.Description)
		if desc == "" {
			return HandoffLink{}, ErrMissingDescription
		}
		uris := make([]string, 0, len(req.Sources))
		for _, s := range req.Sources {
			if s.URI != "" {
				uris = append(uris, s.URI)
			}
		}
		msg = fmt.Sprintf("Accepting Loan Offer of ₦%s for my %s. Sources: %s", naira(req.Amount), desc, strings.Join(uris, ", "))
	default:
		return HandoffLink{}, ErrInvalidIntent
	}
	return u.build(req.Intent, msg), nil
}

func (u *HandoffUseCase) ListingLinks(l entities.Listing) ListingLinks {
	return ListingLinks{
		Inquire: u.listingLink(IntentInquire, l),
		Buy:     u.listingLink(IntentBuy, l),
		Loan:    u.listingLink(IntentLoanCollateral, l),
	}
}

func (u *HandoffUseCase) listing(ctx context.Context, id string) (entities.Listing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Listing{}, ErrInvalidListingID
	}
	if u.repo == nil {
		return entities.Listing{}, ErrHandoffNotAvailable
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

func (u *HandoffUseCase) listingLink(intent HandoffIntent, l entities.Listing) HandoffLink {
	value := l.Tier() == entities.TierValue
	var msg string
	switch intent {
	case IntentBuy:
		msg = "I am interested in buying the " + l.Name
		if value {
			msg = "I want to buy the Value Series " + l.Name
		}
	case IntentLoanCollateral:
		msg = "I want to apply for a loan using my " + l.Name + " as collateral."
		if value {
			msg = "I want to apply for a loan using my " + l.Name + " (Value Series) as collateral."
		}
	default:
		msg = "Hello WeTrade, I am interested in the " + l.Name
	}
	return u.build(intent, msg)
}

func (u *HandoffUseCase) build(intent HandoffIntent, msg string) HandoffLink {
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return HandoffLink{
		Intent:  intent,
		Message: msg,
		URL:     strings.TrimRight(u.cfg.BaseURL, "/") + "/" + u.cfg.Phone + "?text=" + text,
	}
}

func naira(amount float64) string {
	return humanize.Comma(int64(math.Round(amount)))
}
