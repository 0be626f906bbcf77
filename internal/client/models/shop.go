package models

import (
	"errors"
	"regexp"
	"strings"
)

// ShopDetails is the detailed shop view returned by the shop discovery
// endpoint for a given product.
type ShopDetails struct {
	ShopID         string `json:"shopId,omitempty"`
	ShopName       string `json:"shopName,omitempty"`
	ShopOwnerName  string `json:"shopOwnerName,omitempty"`
	Description    string `json:"description,omitempty"`
	Price          string `json:"price,omitempty"`
	Availability   string `json:"availability,omitempty"`
	WeeklyQuantity string `json:"weeklyQuantity,omitempty"`
	ContactNumber  string `json:"contactNumber,omitempty"`
	Telephone      string `json:"telephone,omitempty"`
	ShopLocation   string `json:"shopLocation,omitempty"`
}

// Reservation is a buyer's request to reserve a weekly quantity from a shop.
type Reservation struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name"`
	MobileNo      string `json:"mobileNo"`
	Location      string `json:"location"`
	TotalQuantity string `json:"totalQuantity"`
	PaymentMethod string `json:"paymentMethod"`
	ProductName   string `json:"productName,omitempty"`
	ShopID        string `json:"shopId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

var mobileNoRe = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,15}$`)

var (
	ErrReservationIncomplete = errors.New("reservation is missing required fields")
	ErrInvalidMobileNo       = errors.New("invalid mobile number")
)

// Validate checks the required reservation fields before submission.
func (r Reservation) Validate() error {
	required := []string{r.Name, r.MobileNo, r.Location, r.TotalQuantity, r.PaymentMethod}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return ErrReservationIncomplete
		}
	}
	if !mobileNoRe.MatchString(strings.TrimSpace(r.MobileNo)) {
		return ErrInvalidMobileNo
	}
	return nil
}
