package models

import "strings"

// Product is a catalog entry owned by a buyer.
//
// ID is assigned by the server once the product is persisted remotely.
// Products seeded locally (e.g. from the registration product list) carry
// only TempID until a remote create succeeds; such entries must not be
// sent to mutation endpoints.
type Product struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Category    string `json:"category,omitempty"`
	// Image is either a server-relative path, an absolute URL, or a local
	// file path that still needs uploading.
	Image   string `json:"image,omitempty"`
	BuyerID string `json:"buyerId,omitempty"`

	TempID string `json:"tempId,omitempty"`
}

// Persisted reports whether the product has a server-assigned identifier.
func (p Product) Persisted() bool { return p.ID != "" }

// EqualName compares product names case-insensitively, ignoring
// surrounding whitespace. Name uniqueness per buyer is enforced by
// callers, not by the store or the server.
func (p Product) EqualName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name))
}

// PricePoint is one entry of a product's price history.
type PricePoint struct {
	ID             string  `json:"_id,omitempty"`
	PricePer100g   float64 `json:"pricePer100g"`
	WeeklyQuantity float64 `json:"weeklyQuantity"`
	Date           string  `json:"date,omitempty"`
	PriceUpdated   string  `json:"priceUpdated,omitempty"`
	Availability   string  `json:"availability,omitempty"`
}
