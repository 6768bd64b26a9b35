package ozon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"seller-sync/core/reconcile"

	"golang.org/x/time/rate"
)

const (
	pageLimit = 1000

	// Batch caps of the import endpoints.
	StockChunkSize = 100
	PriceChunkSize = 900
)

// Client talks to the Ozon Seller API. All outbound calls go through a
// shared rate limiter and honor context cancellation.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new Ozon Seller API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 2
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
	}
}

// ListOfferIDs returns the identifiers of every product currently known
// to the seller account, following the last_id cursor until the
// reported total is reached.
func (c *Client) ListOfferIDs(ctx context.Context) (map[string]struct{}, error) {
	known := make(map[string]struct{})
	lastID := ""

	for {
		payload := productListRequest{
			Filter: productFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  pageLimit,
		}

		var page productListResponse
		if err := c.post(ctx, "/v2/product/list", payload, &page); err != nil {
			return nil, &reconcile.FetchError{Source: "ozon", Err: err}
		}

		for _, item := range page.Result.Items {
			known[item.OfferID] = struct{}{}
		}

		lastID = page.Result.LastID
		if len(known) >= page.Result.Total || len(page.Result.Items) == 0 {
			break
		}
	}

	return known, nil
}

// ImportPrices uploads one chunk of price updates. Per-offer rejections
// are returned as UploadError values; they do not fail the chunk.
func (c *Client) ImportPrices(ctx context.Context, updates []reconcile.PriceUpdate) ([]reconcile.UploadError, error) {
	payload := priceImportRequest{Prices: make([]priceImportItem, 0, len(updates))}
	for _, u := range updates {
		payload.Prices = append(payload.Prices, priceImportItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           u.ID,
			OldPrice:          "0",
			Price:             strconv.FormatInt(u.Price, 10),
		})
	}

	var result importResponse
	if err := c.post(ctx, "/v1/product/import/prices", payload, &result); err != nil {
		return nil, &reconcile.FetchError{Source: "ozon", Err: err}
	}

	return rejections(result), nil
}

// ImportStocks uploads one chunk of stock updates.
func (c *Client) ImportStocks(ctx context.Context, updates []reconcile.StockUpdate) ([]reconcile.UploadError, error) {
	payload := stockImportRequest{Stocks: make([]stockImportItem, 0, len(updates))}
	for _, u := range updates {
		payload.Stocks = append(payload.Stocks, stockImportItem{OfferID: u.ID, Stock: u.Stock})
	}

	var result importResponse
	if err := c.post(ctx, "/v1/product/import/stocks", payload, &result); err != nil {
		return nil, &reconcile.FetchError{Source: "ozon", Err: err}
	}

	return rejections(result), nil
}

// rejections extracts per-offer errors from an import response.
func rejections(result importResponse) []reconcile.UploadError {
	var rejected []reconcile.UploadError
	for _, item := range result.Result {
		for _, itemErr := range item.Errors {
			rejected = append(rejected, reconcile.UploadError{
				ID:      item.OfferID,
				Code:    itemErr.Code,
				Message: itemErr.Message,
			})
		}
	}
	return rejected
}

// post sends an authenticated JSON request and decodes the response
// into out.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Client-Id", c.cfg.ClientID)
	req.Header.Set("Api-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
