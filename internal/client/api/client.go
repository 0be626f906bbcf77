// Package api implements the SpicesLink backend client. The backend itself
// is an external collaborator; this package owns the request/response shapes
// the client assumes.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Wrapped errors carry the underlying cause.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx HTTP response. The raw body is embedded so the
// interactive layer can decide on the user-facing message.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Body)
}

// ClientError reports whether the response was a 4xx.
func (e *Error) ClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// Client is the remote API surface consumed by the store and services.
// A bearer token, where required, is passed through verbatim; the client
// never inspects or refreshes it.
type Client interface {
	Ping(ctx context.Context) error

	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, reg models.Registration) (string, error)

	ListProducts(ctx context.Context, token, buyerID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, p models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, updates map[string]any) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListPrices(ctx context.Context, token, productID string) ([]models.PricePoint, error)
	AddPrice(ctx context.Context, token, productID string, p models.PricePoint) (*models.PricePoint, error)
	UpdatePrice(ctx context.Context, token, productID, priceID string, p models.PricePoint) (*models.PricePoint, error)

	ShopDetails(ctx context.Context, shopID, productName string) (*models.ShopDetails, error)
	CreateReservation(ctx context.Context, token string, r models.Reservation) (*models.Reservation, error)
}
