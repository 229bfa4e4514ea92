package entities

import (
	"strings"
	"time"
)

// Category is the product family of a listing.
type Category string

const (
	CategoryPhone     Category = "phone"
	CategoryLaptop    Category = "laptop"
	CategoryTablet    Category = "tablet"
	CategoryAccessory Category = "accessory"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPhone, CategoryLaptop, CategoryTablet, CategoryAccessory:
		return true
	}
	return false
}

// Tier is the display partition of a listing. It is derived from the condition
// label on every read and never stored.
type Tier string

const (
	TierPristine Tier = "pristine"
	TierValue    Tier = "value"
)

// crackMarker flags a listing as part of the value series.
const crackMarker = "crack"

// TierOf classifies a condition label. Any label containing "crack" (case-insensitive)
// is value tier; everything else is pristine.
func TierOf(condition string) Tier {
	if strings.Contains(strings.ToLower(condition), crackMarker) {
		return TierValue
	}
	return TierPristine
}

// Listing is a device offered for sale. Price is in whole currency units.
//
// Listings are immutable once created: the catalog has no update or delete.
type Listing struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Price       int64     `json:"price" yaml:"price"`
	Condition   string    `json:"condition" yaml:"condition"`
	Category    Category  `json:"category" yaml:"category"`
	Image       string    `json:"image" yaml:"image"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

func (l Listing) Tier() Tier {
	return TierOf(l.Condition)
}

// PartitionByTier splits listings into pristine and value partitions, keeping order.
func PartitionByTier(listings []Listing) (pristine, value []Listing) {
	pristine = make([]Listing, 0, len(listings))
	value = make([]Listing, 0)
	for _, l := range listings {
		if l.Tier() == TierValue {
			value = append(value, l)
			continue
		}
		pristine = append(pristine, l)
	}
	return pristine, value
}
