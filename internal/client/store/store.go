// Package store holds the process-wide session and catalog state: the
// authenticated buyer, the bearer token, and the locally cached product
// list. Every create/read/update/delete against the remote product API goes
// through it.
//
// Consistency policy: the cached list mirrors the server's list for the
// current buyer on a best-effort basis. Mutations apply an optimistic local
// change and then reconcile with a full refetch; failed mutations are not
// rolled back locally, the reconcile fetch is the correction mechanism.
// Concurrent operations are not fenced: whichever response lands last wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/api"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
	"github.com/Abeygunawardhanahs/spiceslink/internal/client/session"
	"github.com/Abeygunawardhanahs/spiceslink/internal/common"
	"github.com/Abeygunawardhanahs/spiceslink/internal/logging"
)

// DefaultReconcileDelay is how long a successful delete waits before the
// reconciling refetch against the server's authoritative state.
const DefaultReconcileDelay = 500 * time.Millisecond

// scheduleReconcile is a test seam for the delayed post-delete refetch.
var scheduleReconcile = time.AfterFunc

// Store is the session and catalog container. The mutex serializes
// individual state transitions; network calls happen outside the lock, so
// multi-step operations remain interruptible by concurrent callers.
type Store struct {
	api  api.Client
	repo session.Repository
	log  logging.Logger

	reconcileDelay time.Duration

	mu          sync.Mutex
	products    []models.Product
	currentUser *models.User
	authToken   string
	inflight    int
	initialized bool
}

// New builds a Store. A non-positive reconcileDelay falls back to
// DefaultReconcileDelay.
func New(apiClient api.Client, repo session.Repository, log logging.Logger, reconcileDelay time.Duration) *Store {
	if reconcileDelay <= 0 {
		reconcileDelay = DefaultReconcileDelay
	}
	return &Store{
		api:            apiClient,
		repo:           repo,
		log:            log,
		reconcileDelay: reconcileDelay,
	}
}

// Products returns a copy of the cached product list in its current order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// CurrentUser returns the logged-in buyer, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Token returns the bearer token, or the empty string when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authToken
}

// Loading reports whether any store-issued network operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Initialized reports whether the initial load from persisted storage has
// completed, successfully or not.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Store) end() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

// LoadPersistedSession restores a previously persisted token and user blob
// and, when both are present, triggers an initial product fetch.
// Storage failures are logged and swallowed; this is fire-and-forget
// initialization with no retry. Initialized becomes true regardless of
// outcome.
func (s *Store) LoadPersistedSession(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
	}()

	token, err := s.repo.Get(ctx, session.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "reading persisted token failed", "error", err)
		return
	}
	blob, err := s.repo.Get(ctx, session.KeyUser)
	if err != nil {
		s.log.Warn(ctx, "reading persisted user failed", "error", err)
		return
	}
	if len(token) == 0 || len(blob) == 0 {
		return
	}

	var user models.User
	if err := json.Unmarshal(blob, &user); err != nil {
		s.log.Warn(ctx, "persisted user blob is not valid JSON", "error", err)
		return
	}

	s.mu.Lock()
	s.authToken = string(token)
	s.currentUser = &user
	s.mu.Unlock()

	s.FetchProducts(ctx, "", "")
}

// SetUser stores the buyer in memory and persists it. Persistence failures
// are logged, not surfaced; the in-memory session stays valid either way.
func (s *Store) SetUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()

	blob, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "serializing user failed", "error", err)
		return
	}
	if err := s.repo.Set(ctx, session.KeyUser, blob); err != nil {
		s.log.Warn(ctx, "persisting user failed", "error", err)
	}
}

// SetToken stores the bearer token in memory and persists it, best-effort.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.authToken = token
	s.mu.Unlock()

	if err := s.repo.Set(ctx, session.KeyToken, []byte(token)); err != nil {
		s.log.Warn(ctx, "persisting token failed", "error", err)
	}
}

// ClearSession removes the persisted token and user and resets all session
// state. The in-memory reset happens even when the storage delete fails.
// The token is not invalidated server-side.
func (s *Store) ClearSession(ctx context.Context) {
	if err := s.repo.Delete(ctx, session.KeyToken); err != nil {
		s.log.Warn(ctx, "removing persisted token failed", "error", err)
	}
	if err := s.repo.Delete(ctx, session.KeyUser); err != nil {
		s.log.Warn(ctx, "removing persisted user failed", "error", err)
	}

	s.mu.Lock()
	s.authToken = ""
	s.currentUser = nil
	s.products = nil
	s.mu.Unlock()
}

// FetchProducts refreshes the cached list from the server. token and
// buyerID default to the current session when empty; with no session it is
// a no-op. It never surfaces errors:
//
//   - 2xx: the cache is replaced wholesale with the response.
//   - 4xx: the cache is cleared (treated as "no products for this buyer").
//   - 5xx or transport failure: the cache is left untouched rather than
//     destroying known-good local state on a transient failure.
func (s *Store) FetchProducts(ctx context.Context, token, buyerID string) {
	s.mu.Lock()
	if token == "" {
		token = s.authToken
	}
	if buyerID == "" && s.currentUser != nil {
		buyerID = s.currentUser.ID
	}
	s.mu.Unlock()

	if token == "" || buyerID == "" {
		return
	}

	s.begin()
	defer s.end()

	list, err := s.api.ListProducts(ctx, token, buyerID)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.ClientError() {
			s.log.Warn(ctx, "product fetch rejected, clearing cache", "status", apiErr.Status)
			s.mu.Lock()
			s.products = []models.Product{}
			s.mu.Unlock()
			return
		}
		s.log.Warn(ctx, "product fetch failed, keeping cached list", "error", err)
		return
	}

	s.mu.Lock()
	s.products = list
	s.mu.Unlock()
}

// AddProduct creates the product remotely, appends the server's
// representation to the cache, and immediately refetches the full list to
// reconcile. A brief duplicate-then-corrected window is accepted.
// Requires an authenticated session. Failures are returned to the caller
// with HTTP status and body embedded; nothing is retried.
func (s *Store) AddProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	s.mu.Lock()
	token, user := s.authToken, s.currentUser
	s.mu.Unlock()

	if token == "" || user == nil {
		return nil, common.ErrAuthenticationRequired
	}
	if p.BuyerID == "" {
		p.BuyerID = user.ID
	}

	s.begin()
	defer s.end()

	created, err := s.api.CreateProduct(ctx, token, p)
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()

	s.FetchProducts(ctx, "", "")
	return created, nil
}

// DeleteProduct removes the product remotely, drops it from the cache, and
// schedules a delayed refetch to reconcile with the server. An empty id is
// rejected before any network call; it covers products that only exist
// locally. On failure the optimistic state is not restored automatically.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	token := s.authToken
	s.mu.Unlock()

	if token == "" {
		return common.ErrAuthenticationRequired
	}
	if productID == "" {
		return common.ErrMissingProductID
	}

	s.begin()
	defer s.end()

	if err := s.api.DeleteProduct(ctx, token, productID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()

	scheduleReconcile(s.reconcileDelay, func() {
		s.FetchProducts(context.Background(), "", "")
	})
	return nil
}

// UpdateProduct sends a partial update and replaces the cached entry with
// the server's returned representation. No rollback on failure.
func (s *Store) UpdateProduct(ctx context.Context, productID string, updates map[string]any) (*models.Product, error) {
	s.mu.Lock()
	token := s.authToken
	s.mu.Unlock()

	if token == "" {
		return nil, common.ErrAuthenticationRequired
	}
	if productID == "" {
		return nil, common.ErrMissingProductID
	}

	s.begin()
	defer s.end()

	updated, err := s.api.UpdateProduct(ctx, token, productID, updates)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// SeedFromRegistration replaces the cache with local-only placeholder
// products for the names collected during registration. Entries carry a
// temporary identifier and are never sent to the server.
func (s *Store) SeedFromRegistration(names []string) {
	seeded := make([]models.Product, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		seeded = append(seeded, models.Product{
			TempID:      uuid.NewString(),
			Name:        name,
			Description: "Set a description for this product.",
			Price:       "0.00",
		})
	}

	s.mu.Lock()
	s.products = seeded
	s.mu.Unlock()
}
