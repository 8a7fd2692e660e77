package inventoryapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = retryablehttp.RetryConfig{
	MaxRetries: 1,
	BaseDelay:  time.Millisecond,
	MaxDelay:   2 * time.Millisecond,
	MaxJitter:  time.Millisecond,
}

func newInventoryServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/v1/stock/{item}", handler)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func TestClient_Quantity(t *testing.T) {
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KTOP001", chi.URLParam(r, "item"))
		assert.Equal(t, "M", r.URL.Query().Get("size"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"item_id":"KTOP001","size":"M","quantity":8}`))
	})

	client := New(server.URL, 3, fastRetry)

	qty, err := client.Quantity(context.Background(), "KTOP001", "M")

	require.NoError(t, err)
	assert.Equal(t, 8, qty)
}

func TestClient_Quantity_UnknownItem(t *testing.T) {
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := New(server.URL, 3, fastRetry)

	_, err := client.Quantity(context.Background(), "KSHOE999", "250")

	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestClient_StockStatus_FromQuantity(t *testing.T) {
	quantities := map[string]string{
		"S":  `{"quantity":12}`,
		"L":  `{"quantity":3}`,
		"XL": `{"quantity":0}`,
	}
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "블랙", r.URL.Query().Get("color"))
		w.Write([]byte(quantities[r.URL.Query().Get("size")]))
	})

	client := New(server.URL, 3, fastRetry)

	tests := map[string]model.StockStatus{
		"S":  model.StockInStock,
		"L":  model.StockLowStock,
		"XL": model.StockOutOfStock,
	}
	for size, want := range tests {
		t.Run(size, func(t *testing.T) {
			status, err := client.StockStatus(context.Background(), "KTOP001", model.Option{Color: "블랙", Size: size})

			require.NoError(t, err)
			assert.Equal(t, want, status)
		})
	}
}

func TestClient_StockStatus_ReportedStatusWins(t *testing.T) {
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quantity":50,"status":"low_stock"}`))
	})

	client := New(server.URL, 3, fastRetry)

	status, err := client.StockStatus(context.Background(), "KTOP001", model.Option{Size: "M"})

	require.NoError(t, err)
	assert.Equal(t, model.StockLowStock, status)
}

func TestClient_StockStatus_UnknownItemIsOutOfStock(t *testing.T) {
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := New(server.URL, 3, fastRetry)

	status, err := client.StockStatus(context.Background(), "UNKNOWN", model.Option{Size: "M"})

	require.NoError(t, err)
	assert.Equal(t, model.StockOutOfStock, status)
}

func TestClient_StockStatus_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := newInventoryServer(t, func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"quantity":9}`))
	})

	client := New(server.URL, 3, fastRetry)

	status, err := client.StockStatus(context.Background(), "KTOP001", model.Option{Size: "S"})

	require.NoError(t, err)
	assert.Equal(t, model.StockInStock, status)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_StockStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server keeps failing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"quantity":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newInventoryServer(t, tt.handler)
			client := New(server.URL, 3, fastRetry)

			status, err := client.StockStatus(context.Background(), "KTOP001", model.Option{Size: "M"})

			assert.Error(t, err)
			assert.Empty(t, status)
		})
	}
}

func TestNew_AddsScheme(t *testing.T) {
	assert.Equal(t, "http://inventory:8081", New("inventory:8081/", 3, retryablehttp.RetryConfig{}).baseURL)
	assert.Equal(t, "https://inventory.example.com", New("https://inventory.example.com", 3, retryablehttp.RetryConfig{}).baseURL)
}
