// Package models defines the client-side data types exchanged with the
// SpicesLink backend.
package models

// User is the logged-in buyer identity as returned by the backend.
// The client never computes derived fields from it; it is held in memory
// and persisted verbatim until logout.
type User struct {
	ID            string `json:"_id"`
	ShopName      string `json:"shopName,omitempty"`
	ShopOwnerName string `json:"shopOwnerName,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	EmailAddress  string `json:"emailAddress,omitempty"`
	ShopLocation  string `json:"shopLocation,omitempty"`
}

// Registration is the payload for creating a buyer account. ProductNames
// seeds the local catalog after a successful registration and is not sent
// to the server.
type Registration struct {
	ShopName      string `json:"shopName"`
	ShopOwnerName string `json:"shopOwnerName"`
	ContactNumber string `json:"contactNumber"`
	EmailAddress  string `json:"emailAddress"`
	Password      string `json:"password"`
	ShopLocation  string `json:"shopLocation"`

	ProductNames []string `json:"-"`
}
