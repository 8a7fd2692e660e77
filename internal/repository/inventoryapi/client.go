package inventoryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ibeloyar/returndesk/internal/model"
	"github.com/ibeloyar/returndesk/pgk/retryablehttp"
)

const requestTimeout = 3 * time.Second

// Client reads stock levels from the inventory service:
//
//	GET {base}/v1/stock/{item_id}?size=M&color=블랙
//
// A 404 means the item is unknown. The status field is optional; when it is
// absent the status is derived from the quantity.
type Client struct {
	baseURL           string
	client            *retryablehttp.RetryableClient
	lowStockThreshold int
}

type stockResponse struct {
	ItemID   string            `json:"item_id"`
	Color    string            `json:"color"`
	Size     string            `json:"size"`
	Quantity int               `json:"quantity"`
	Status   model.StockStatus `json:"status"`
}

func New(address string, lowStockThreshold int, retry retryablehttp.RetryConfig) *Client {
	if retry.Timeout == 0 {
		retry.Timeout = requestTimeout
	}

	baseURL := strings.TrimRight(address, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		baseURL:           baseURL,
		client:            retryablehttp.NewRetryableClient(retry),
		lowStockThreshold: lowStockThreshold,
	}
}

func (c *Client) Quantity(ctx context.Context, itemID, size string) (int, error) {
	stock, err := c.fetch(ctx, itemID, model.Option{Size: size})
	if err != nil {
		return 0, err
	}

	return stock.Quantity, nil
}

func (c *Client) StockStatus(ctx context.Context, itemID string, option model.Option) (model.StockStatus, error) {
	stock, err := c.fetch(ctx, itemID, option)
	if err != nil {
		if errors.Is(err, model.ErrItemNotFound) {
			return model.StockOutOfStock, nil
		}
		return "", err
	}

	switch stock.Status {
	case model.StockInStock, model.StockLowStock, model.StockOutOfStock:
		return stock.Status, nil
	}

	switch {
	case stock.Quantity <= 0:
		return model.StockOutOfStock, nil
	case stock.Quantity <= c.lowStockThreshold:
		return model.StockLowStock, nil
	default:
		return model.StockInStock, nil
	}
}

func (c *Client) fetch(ctx context.Context, itemID string, option model.Option) (*stockResponse, error) {
	query := url.Values{}
	if option.Size != "" {
		query.Set("size", option.Size)
	}
	if option.Color != "" {
		query.Set("color", option.Color)
	}

	endpoint := c.baseURL + "/v1/stock/" + url.PathEscape(itemID)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("inventory request for %s: %w", itemID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, model.ErrItemNotFound
	default:
		return nil, fmt.Errorf("inventory request for %s: %s", itemID, resp.Status)
	}

	var stock stockResponse
	if err := json.NewDecoder(resp.Body).Decode(&stock); err != nil {
		return nil, fmt.Errorf("decode inventory response for %s: %w", itemID, err)
	}

	return &stock, nil
}
