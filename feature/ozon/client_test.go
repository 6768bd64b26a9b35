package ozon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seller-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srvURL string) *Client {
	return NewClient(Config{
		BaseURL:   srvURL,
		ClientID:  "client-123",
		APIKey:    "token-123",
		RateLimit: 1000, // keep tests fast
	})
}

func TestListOfferIDs_Pagination(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product/list", r.URL.Path)
		assert.Equal(t, "client-123", r.Header.Get("Client-Id"))
		assert.Equal(t, "token-123", r.Header.Get("Api-Key"))

		var req productListRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ALL", req.Filter.Visibility)

		calls++
		switch calls {
		case 1:
			assert.Empty(t, req.LastID)
			_, _ = w.Write([]byte(`{"result":{"items":[{"offer_id":"CA001"},{"offer_id":"CA002"}],"total":3,"last_id":"page2"}}`))
		default:
			assert.Equal(t, "page2", req.LastID)
			_, _ = w.Write([]byte(`{"result":{"items":[{"offer_id":"CA003"}],"total":3,"last_id":""}}`))
		}
	}))
	t.Cleanup(srv.Close)

	known, err := testClient(srv.URL).ListOfferIDs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, map[string]struct{}{
		"CA001": {},
		"CA002": {},
		"CA003": {},
	}, known)
}

func TestListOfferIDs_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	_, err := testClient(srv.URL).ListOfferIDs(context.Background())

	var fetchErr *reconcile.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "ozon", fetchErr.Source)
}

func TestImportPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/prices", r.URL.Path)

		var req priceImportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Prices, 2)
		assert.Equal(t, priceImportItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           "CA001",
			OldPrice:          "0",
			Price:             "4500",
		}, req.Prices[0])

		_, _ = w.Write([]byte(`{"result":[
			{"offer_id":"CA001","updated":true,"errors":[]},
			{"offer_id":"CA002","updated":false,"errors":[{"code":"INVALID_PRICE","message":"price too low"}]}
		]}`))
	}))
	t.Cleanup(srv.Close)

	rejected, err := testClient(srv.URL).ImportPrices(context.Background(), []reconcile.PriceUpdate{
		{ID: "CA001", Price: 4500},
		{ID: "CA002", Price: 10},
	})
	require.NoError(t, err)

	require.Len(t, rejected, 1)
	assert.Equal(t, "CA002", rejected[0].ID)
	assert.Equal(t, "INVALID_PRICE", rejected[0].Code)
}

func TestImportStocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/stocks", r.URL.Path)

		var req stockImportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []stockImportItem{
			{OfferID: "CA001", Stock: 5},
			{OfferID: "CA002", Stock: 0},
		}, req.Stocks)

		_, _ = w.Write([]byte(`{"result":[{"offer_id":"CA001","updated":true},{"offer_id":"CA002","updated":true}]}`))
	}))
	t.Cleanup(srv.Close)

	rejected, err := testClient(srv.URL).ImportStocks(context.Background(), []reconcile.StockUpdate{
		{ID: "CA001", Stock: 5},
		{ID: "CA002", Stock: 0},
	})
	require.NoError(t, err)
	assert.Empty(t, rejected)
}
