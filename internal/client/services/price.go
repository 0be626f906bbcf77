package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/api"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/store"
	"github.com/Abeygunawardhanahs/spiceslink/internal/common"
)

// nowFn is a test seam for timestamping new price points.
var nowFn = time.Now

// PriceService tracks supplier price history per product.
type PriceService interface {
	History(ctx context.Context, productID string) ([]models.PricePoint, error)
	Add(ctx context.Context, productID string, p models.PricePoint) (*models.PricePoint, error)
	Update(ctx context.Context, productID, priceID string, p models.PricePoint) (*models.PricePoint, error)
}

type priceService struct {
	client api.Client
	store  *store.Store
}

func NewPriceService(client api.Client, st *store.Store) PriceService {
	return &priceService{client: client, store: st}
}

func (s *priceService) History(ctx context.Context, productID string) ([]models.PricePoint, error) {
	if productID == "" {
		return nil, common.ErrMissingProductID
	}
	prices, err := s.client.ListPrices(ctx, s.store.Token(), productID)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	return prices, nil
}

// Add records a new price point. A missing date is stamped with the current
// time, matching what the mobile client sent.
func (s *priceService) Add(ctx context.Context, productID string, p models.PricePoint) (*models.PricePoint, error) {
	if productID == "" {
		return nil, common.ErrMissingProductID
	}
	if p.Date == "" {
		p.Date = nowFn().UTC().Format(time.RFC3339)
	}

	added, err := s.client.AddPrice(ctx, s.store.Token(), productID, p)
	if err != nil {
		return nil, fmt.Errorf("add price: %w", err)
	}
	return added, nil
}

func (s *priceService) Update(ctx context.Context, productID, priceID string, p models.PricePoint) (*models.PricePoint, error) {
	if productID == "" || priceID == "" {
		return nil, common.ErrMissingProductID
	}

	updated, err := s.client.UpdatePrice(ctx, s.store.Token(), productID, priceID, p)
	if err != nil {
		return nil, fmt.Errorf("update price: %w", err)
	}
	return updated, nil
}
