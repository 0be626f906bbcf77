package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the SpicesLink backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://localhost:5000/api". A zero timeout means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do issues a JSON request and decodes the response body into out (when
// out is non-nil). Transport failures wrap ErrUnavailable; non-2xx
// responses become *Error with the raw body attached.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	} `json:"data"`
}

// Login authenticates a buyer and returns the user blob and bearer token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	payload := map[string]string{"email": strings.TrimSpace(email), "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login/buyer", "", payload, &resp); err != nil {
		return nil, "", err
	}
	if !resp.Success || resp.Data.User == nil || resp.Data.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = "login failed"
		}
		return nil, "", fmt.Errorf("login rejected: %s", msg)
	}
	return resp.Data.User, resp.Data.Token, nil
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Register creates a buyer account and returns the new user id.
func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) (string, error) {
	var resp registerResponse
	if err := c.do(ctx, http.MethodPost, "/users/register/buyer", "", reg, &resp); err != nil {
		return "", err
	}
	if resp.UserID == "" && !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "registration failed"
		}
		return "", fmt.Errorf("registration rejected: %s", msg)
	}
	return resp.UserID, nil
}

// ListProducts fetches the buyer's catalog. The endpoint historically
// answered with either a bare array or a {"products": [...]} envelope;
// both are accepted. Any other 2xx body yields an empty list.
func (c *HTTPClient) ListProducts(ctx context.Context, token, buyerID string) ([]models.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/products/buyer/"+url.PathEscape(buyerID), token, nil, &raw); err != nil {
		return nil, err
	}
	return decodeProductList(raw), nil
}

func decodeProductList(raw json.RawMessage) []models.Product {
	if len(raw) == 0 {
		return []models.Product{}
	}
	var list []models.Product
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []models.Product{}
		}
		return list
	}
	var envelope struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Products != nil {
		return envelope.Products
	}
	return []models.Product{}
}

type productEnvelope struct {
	Product *models.Product `json:"product"`
}

// CreateProduct persists a new product and returns the server's
// representation. The canonical response is a {"product": ...} envelope;
// a bare product body is accepted for older backend revisions.
func (c *HTTPClient) CreateProduct(ctx context.Context, token string, p models.Product) (*models.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/products", token, p, &raw); err != nil {
		return nil, err
	}

	var envelope productEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Product != nil {
		return envelope.Product, nil
	}
	var bare models.Product
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &bare, nil
}

// UpdateProduct sends a partial update and returns the server's
// representation of the product.
func (c *HTTPClient) UpdateProduct(ctx context.Context, token, id string, updates map[string]any) (*models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), token, updates, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, nil)
}

type pricesResponse struct {
	Success bool                `json:"success"`
	Prices  []models.PricePoint `json:"prices"`
}

func (c *HTTPClient) ListPrices(ctx context.Context, token, productID string) ([]models.PricePoint, error) {
	var resp pricesResponse
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID)+"/prices", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Prices == nil {
		return []models.PricePoint{}, nil
	}
	return resp.Prices, nil
}

type priceEnvelope struct {
	Success bool               `json:"success"`
	Price   *models.PricePoint `json:"price"`
	Message string             `json:"message"`
}

func (c *HTTPClient) AddPrice(ctx context.Context, token, productID string, p models.PricePoint) (*models.PricePoint, error) {
	var resp priceEnvelope
	if err := c.do(ctx, http.MethodPost, "/products/"+url.PathEscape(productID)+"/prices", token, p, &resp); err != nil {
		return nil, err
	}
	if resp.Price == nil {
		return &p, nil
	}
	return resp.Price, nil
}

func (c *HTTPClient) UpdatePrice(ctx context.Context, token, productID, priceID string, p models.PricePoint) (*models.PricePoint, error) {
	path := "/products/" + url.PathEscape(productID) + "/prices/" + url.PathEscape(priceID)
	var resp priceEnvelope
	if err := c.do(ctx, http.MethodPut, path, token, p, &resp); err != nil {
		return nil, err
	}
	if resp.Price == nil {
		return &p, nil
	}
	return resp.Price, nil
}

type shopDetailsResponse struct {
	Success     bool                `json:"success"`
	ShopDetails *models.ShopDetails `json:"shopDetails"`
	Message     string              `json:"message"`
}

func (c *HTTPClient) ShopDetails(ctx context.Context, shopID, productName string) (*models.ShopDetails, error) {
	path := "/products/shops/" + url.PathEscape(shopID) + "/details?productName=" + url.QueryEscape(productName)

	var resp shopDetailsResponse
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.ShopDetails == nil {
		msg := resp.Message
		if msg == "" {
			msg = "no shop details"
		}
		return nil, fmt.Errorf("shop details unavailable: %s", msg)
	}
	return resp.ShopDetails, nil
}

type reservationResponse struct {
	Success     bool                `json:"success"`
	Reservation *models.Reservation `json:"reservation"`
	Message     string              `json:"message"`
}

func (c *HTTPClient) CreateReservation(ctx context.Context, token string, r models.Reservation) (*models.Reservation, error) {
	var resp reservationResponse
	if err := c.do(ctx, http.MethodPost, "/reservations", token, r, &resp); err != nil {
		return nil, err
	}
	if resp.Reservation == nil {
		return &r, nil
	}
	return resp.Reservation, nil
}
