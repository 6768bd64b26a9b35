package yandex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"seller-sync/core/reconcile"

	"golang.org/x/time/rate"
)

const (
	pageLimit = 200

	// Batch caps of the campaign mutation endpoints.
	ListingChunkSize = 500
	PriceChunkSize   = 500
	StockChunkSize   = 2000
)

// Client talks to the Yandex Market partner API for a single campaign.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter

	// now is stubbed in tests for deterministic stock timestamps.
	now func() time.Time
}

// NewClient creates a new campaign-scoped Yandex Market client.
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
		now:     time.Now,
	}
}

// ListOfferIDs returns the shop SKUs of every offer in the campaign,
// following the page token until the listing is exhausted.
func (c *Client) ListOfferIDs(ctx context.Context) (map[string]struct{}, error) {
	known := make(map[string]struct{})
	pageToken := ""

	for {
		query := url.Values{"limit": {fmt.Sprint(pageLimit)}}
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}
		path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries?%s", c.cfg.CampaignID, query.Encode())

		var page offerMappingResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, &reconcile.FetchError{Source: "yandex", Err: err}
		}

		for _, entry := range page.Result.OfferMappingEntries {
			known[entry.Offer.ShopSKU] = struct{}{}
		}

		pageToken = page.Result.Paging.NextPageToken
		if pageToken == "" || len(page.Result.OfferMappingEntries) == 0 {
			break
		}
	}

	return known, nil
}

// UploadListings publishes one chunk of new offers with the configured
// delivery tag. Rejected offers are returned individually.
func (c *Client) UploadListings(ctx context.Context, uploads []reconcile.ListingUpload) ([]reconcile.UploadError, error) {
	payload := listingUploadRequest{OfferMappingEntries: make([]offerEntry, 0, len(uploads))}
	for _, u := range uploads {
		payload.OfferMappingEntries = append(payload.OfferMappingEntries, offerEntry{
			Offer: offerPayload{
				ShopSKU:      u.ID,
				Availability: "ACTIVE",
				DeliveryType: string(u.Delivery),
			},
		})
	}

	path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries/updates", c.cfg.CampaignID)

	var result updateResponse
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, &reconcile.FetchError{Source: "yandex", Err: err}
	}

	return rejections(result), nil
}

// UpdatePrices uploads one chunk of price updates.
func (c *Client) UpdatePrices(ctx context.Context, updates []reconcile.PriceUpdate) ([]reconcile.UploadError, error) {
	payload := priceUpdateRequest{Offers: make([]priceOffer, 0, len(updates))}
	for _, u := range updates {
		payload.Offers = append(payload.Offers, priceOffer{
			OfferID: u.ID,
			Price:   priceValue{Value: u.Price, CurrencyID: "RUR"},
		})
	}

	path := fmt.Sprintf("/campaigns/%s/offer-prices/updates", c.cfg.CampaignID)

	var result updateResponse
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, &reconcile.FetchError{Source: "yandex", Err: err}
	}

	return rejections(result), nil
}

// UpdateStocks uploads one chunk of warehouse stock counts. The stocks
// endpoint accepts or rejects the whole request, so there are no
// per-offer rejections to report.
func (c *Client) UpdateStocks(ctx context.Context, updates []reconcile.StockUpdate) error {
	updatedAt := c.now().Format(time.RFC3339)

	payload := stockUpdateRequest{SKUs: make([]stockSKU, 0, len(updates))}
	for _, u := range updates {
		payload.SKUs = append(payload.SKUs, stockSKU{
			SKU:         u.ID,
			WarehouseID: c.cfg.WarehouseID,
			Items:       []stockItem{{Count: u.Stock, Type: "FIT", UpdatedAt: updatedAt}},
		})
	}

	path := fmt.Sprintf("/campaigns/%s/offers/stocks", c.cfg.CampaignID)

	var result updateResponse
	if err := c.do(ctx, http.MethodPut, path, payload, &result); err != nil {
		return &reconcile.FetchError{Source: "yandex", Err: err}
	}

	if result.Status != "OK" {
		return &reconcile.FetchError{Source: "yandex", Err: fmt.Errorf("stock update status %q", result.Status)}
	}
	return nil
}

// rejections extracts per-offer errors from a mutation response.
func rejections(result updateResponse) []reconcile.UploadError {
	var rejected []reconcile.UploadError
	for _, offer := range result.Result.RejectedOffers {
		rejected = append(rejected, reconcile.UploadError{
			ID:      offer.OfferID,
			Code:    offer.Code,
			Message: offer.Message,
		})
	}
	return rejected
}

// do sends an authenticated JSON request and decodes the response into
// out.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Api-Key", c.cfg.Token)
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
