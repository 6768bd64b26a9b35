package ozon

import (
	"context"
	"testing"

	"seller-sync/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMarketplace struct {
	known    map[string]struct{}
	rejected []reconcile.UploadError

	stockBatches [][]reconcile.StockUpdate
	priceBatches [][]reconcile.PriceUpdate
}

func (f *fakeMarketplace) ListOfferIDs(ctx context.Context) (map[string]struct{}, error) {
	return f.known, nil
}

func (f *fakeMarketplace) ImportPrices(ctx context.Context, updates []reconcile.PriceUpdate) ([]reconcile.UploadError, error) {
	f.priceBatches = append(f.priceBatches, updates)
	return f.rejected, nil
}

func (f *fakeMarketplace) ImportStocks(ctx context.Context, updates []reconcile.StockUpdate) ([]reconcile.UploadError, error) {
	f.stockBatches = append(f.stockBatches, updates)
	return nil, nil
}

type fakeFeed struct {
	records []reconcile.ProductRecord
}

func (f *fakeFeed) FetchCatalog(ctx context.Context) ([]reconcile.ProductRecord, error) {
	return f.records, nil
}

func feedRecord(id string, stock int, price string) reconcile.ProductRecord {
	return reconcile.ProductRecord{ID: id, Stock: stock, Price: decimal.RequireFromString(price)}
}

func TestSync_UploadsMissingAndRefreshesListed(t *testing.T) {
	market := &fakeMarketplace{known: map[string]struct{}{"CA001": {}}}
	feed := &fakeFeed{records: []reconcile.ProductRecord{
		feedRecord("CA001", 5, "99.99"),
		feedRecord("CA002", 3, "149.50"),
	}}

	report, err := NewService(market, feed, zap.NewNop()).Sync(context.Background(), SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.NewListings)
	assert.Equal(t, 0, report.Skipped)

	// One chunk each; the new listing CA002 rides along with refreshes.
	require.Len(t, market.stockBatches, 1)
	assert.Equal(t, []reconcile.StockUpdate{
		{ID: "CA002", Stock: 3},
		{ID: "CA001", Stock: 5},
	}, market.stockBatches[0])

	require.Len(t, market.priceBatches, 1)
	assert.Equal(t, []reconcile.PriceUpdate{
		{ID: "CA002", Price: 150},
		{ID: "CA001", Price: 100},
	}, market.priceBatches[0])
}

func TestSync_ZeroesListingsGoneFromFeed(t *testing.T) {
	market := &fakeMarketplace{known: map[string]struct{}{"CA001": {}, "GONE1": {}}}
	feed := &fakeFeed{records: []reconcile.ProductRecord{feedRecord("CA001", 2, "500")}}

	_, err := NewService(market, feed, zap.NewNop()).Sync(context.Background(), SyncOptions{})
	require.NoError(t, err)

	require.Len(t, market.stockBatches, 1)
	assert.Contains(t, market.stockBatches[0], reconcile.StockUpdate{ID: "GONE1", Stock: 0})
}

func TestSync_DryRunUploadsNothing(t *testing.T) {
	market := &fakeMarketplace{known: map[string]struct{}{}}
	feed := &fakeFeed{records: []reconcile.ProductRecord{feedRecord("CA002", 3, "149.50")}}

	report, err := NewService(market, feed, zap.NewNop()).Sync(context.Background(), SyncOptions{DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.NewListings)
	assert.Empty(t, market.stockBatches)
	assert.Empty(t, market.priceBatches)
}

func TestSync_ReportsRejectionsAndSkips(t *testing.T) {
	market := &fakeMarketplace{
		known:    map[string]struct{}{},
		rejected: []reconcile.UploadError{{ID: "CA009", Code: "INVALID_PRICE", Message: "price too low"}},
	}
	feed := &fakeFeed{records: []reconcile.ProductRecord{
		feedRecord("CA009", 1, "10"),
		feedRecord("BAD1", -5, "10"),
	}}

	report, err := NewService(market, feed, zap.NewNop()).Sync(context.Background(), SyncOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "CA009", report.Rejected[0].ID)
}
