package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/api"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/store"
)

var ErrMissingShopID = errors.New("missing shop id")

// ShopService exposes shop discovery and reservations.
type ShopService interface {
	Details(ctx context.Context, shopID, productName string) (*models.ShopDetails, error)
	Reserve(ctx context.Context, r models.Reservation) (*models.Reservation, error)
}

type shopService struct {
	client api.Client
	store  *store.Store
}

func NewShopService(client api.Client, st *store.Store) ShopService {
	return &shopService{client: client, store: st}
}

func (s *shopService) Details(ctx context.Context, shopID, productName string) (*models.ShopDetails, error) {
	if shopID == "" {
		return nil, ErrMissingShopID
	}
	details, err := s.client.ShopDetails(ctx, shopID, productName)
	if err != nil {
		return nil, fmt.Errorf("shop details: %w", err)
	}
	return details, nil
}

// Reserve validates the reservation locally and submits it. The creation
// timestamp is stamped client-side, matching what the mobile client sent.
func (s *shopService) Reserve(ctx context.Context, r models.Reservation) (*models.Reservation, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.CreatedAt == "" {
		r.CreatedAt = nowFn().UTC().Format(time.RFC3339)
	}

	created, err := s.client.CreateReservation(ctx, s.store.Token(), r)
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	return created, nil
}
