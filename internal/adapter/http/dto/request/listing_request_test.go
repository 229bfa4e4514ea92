package request

import (
	"encoding/json"
	"errors"
	"testing"

	"wetrade/internal/domain/entities"
)

func TestListingRequest_ResolvePrice(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{"number", `1200000`, 1200000, true},
		{"fractional number", `450000.6`, 450001, true},
		{"plain string", `"450000"`, 450000, true},
		{"formatted string", `"₦ 1,200,000"`, 1200000, true},
		{"missing", ``, 0, false},
		{"null", `null`, 0, false},
		{"zero", `0`, 0, false},
		{"negative", `-5`, 0, false},
		{"text", `"cheap"`, 0, false},
		{"bool", `true`, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ListingRequest{Price: json.RawMessage(tc.raw)}
			got, err := r.ResolvePrice()
			if !tc.valid {
				if !errors.Is(err, ErrInvalidListingPrice) {
					t.Fatalf("expected ErrInvalidListingPrice, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("ResolvePrice() = %d, %v; want %d", got, err, tc.want)
			}
		})
	}
}

func TestListingRequest_ToEntity(t *testing.T) {
	var r ListingRequest
	if err := json.Unmarshal([]byte(`{"name":"PS5","description":"Slim","price":"450000","category":" Accessory ","condition":"Pristine"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	price, err := r.ResolvePrice()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := r.ToEntity(price)
	if l.Category != entities.CategoryAccessory || l.Price != 450000 || l.Name != "PS5" || l.Condition != "Pristine" {
		t.Fatalf("unexpected entity %+v", l)
	}
}
