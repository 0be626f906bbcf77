package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeygunawardhanahs/spiceslink/internal/client/models"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login/buyer", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "shop@example.org", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "tok-1",
				"user":  models.User{ID: "b1", ShopName: "Samagi Store"},
			},
		})
	}))

	user, token, err := c.Login(context.Background(), " shop@example.org ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "b1", user.ID)
	assert.Equal(t, "Samagi Store", user.ShopName)
}

func TestLogin_RejectedBySuccessFlag(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "wrong password"})
	}))

	_, _, err := c.Login(context.Background(), "shop@example.org", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong password")
}

func TestRegister_ReturnsUserID(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/register/buyer", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "userId": "b42"})
	}))

	id, err := c.Register(context.Background(), models.Registration{ShopName: "Samagi Store"})
	require.NoError(t, err)
	assert.Equal(t, "b42", id)
}

func TestListProducts_BareArray(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/buyer/b1", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Product{{ID: "p1", Name: "Cloves"}})
	}))

	got, err := c.ListProducts(context.Background(), "tok-1", "b1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cloves", got[0].Name)
}

func TestListProducts_Envelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []models.Product{{ID: "p1", Name: "Cinnamon"}},
		})
	}))

	got, err := c.ListProducts(context.Background(), "tok-1", "b1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cinnamon", got[0].Name)
}

func TestListProducts_NonArrayBodyCoercedToEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"unexpected": true})
	}))

	got, err := c.ListProducts(context.Background(), "tok-1", "b1")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestListProducts_HTTPErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no products for buyer", http.StatusNotFound)
	}))

	_, err := c.ListProducts(context.Background(), "tok-1", "b1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.True(t, apiErr.ClientError())
	assert.Contains(t, apiErr.Body, "no products for buyer")
}

func TestCreateProduct_EnvelopeAndBare(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"envelope", map[string]any{"product": models.Product{ID: "p9", Name: "Pepper"}}},
		{"bare", models.Product{ID: "p9", Name: "Pepper"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/products", r.URL.Path)
				_ = json.NewEncoder(w).Encode(tc.body)
			}))

			got, err := c.CreateProduct(context.Background(), "tok-1", models.Product{Name: "Pepper"})
			require.NoError(t, err)
			assert.Equal(t, "p9", got.ID)
		})
	}
}

func TestDeleteProduct_SendsBearer(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/products/p1", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteProduct(context.Background(), "tok-1", "p1"))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestPing_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := NewHTTPClient(srv.URL, time.Second)
	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestListPrices(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p1/prices", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"prices": []models.PricePoint{
				{ID: "pr1", PricePer100g: 120, WeeklyQuantity: 50, Availability: "In Stock"},
			},
		})
	}))

	got, err := c.ListPrices(context.Background(), "", "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 120.0, got[0].PricePer100g)
}

func TestShopDetails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/shops/s1/details", r.URL.Path)
		require.Equal(t, "Ceylon Cinnamon", r.URL.Query().Get("productName"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"shopDetails": models.ShopDetails{ShopID: "s1", ShopName: "Samagi Store"},
		})
	}))

	got, err := c.ShopDetails(context.Background(), "s1", "Ceylon Cinnamon")
	require.NoError(t, err)
	assert.Equal(t, "Samagi Store", got.ShopName)
}

func TestCreateReservation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reservations", r.URL.Path)
		var res models.Reservation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&res))
		res.ID = "r1"
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "reservation": res})
	}))

	got, err := c.CreateReservation(context.Background(), "tok-1", models.Reservation{
		Name: "Mr. Perera", MobileNo: "0702031499", Location: "Matara",
		TotalQuantity: "50", PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}
