package ozon

import (
	"context"

	"seller-sync/core/reconcile"

	"go.uber.org/zap"
)

// FeedFetcher supplies the current supplier catalog.
type FeedFetcher interface {
	FetchCatalog(ctx context.Context) ([]reconcile.ProductRecord, error)
}

// Marketplace is the slice of the Ozon client the sync needs.
type Marketplace interface {
	ListOfferIDs(ctx context.Context) (map[string]struct{}, error)
	ImportPrices(ctx context.Context, updates []reconcile.PriceUpdate) ([]reconcile.UploadError, error)
	ImportStocks(ctx context.Context, updates []reconcile.StockUpdate) ([]reconcile.UploadError, error)
}

// Service reconciles the Ozon catalog against the supplier feed.
type Service struct {
	market Marketplace
	feed   FeedFetcher
	logger *zap.Logger
}

// NewService creates a new Ozon sync service.
func NewService(market Marketplace, feed FeedFetcher, logger *zap.Logger) *Service {
	return &Service{market: market, feed: feed, logger: logger}
}

// SyncOptions controls sync behavior.
type SyncOptions struct {
	// DryRun computes and reports the plan without uploading anything.
	DryRun bool
}

// Report summarizes one sync run.
type Report struct {
	// NewListings is the number of supplier items missing from the
	// marketplace and queued for publication.
	NewListings int

	// StockUpdates and PriceUpdates count refreshes of already listed
	// offers, new listings included.
	StockUpdates int
	PriceUpdates int

	// Skipped counts supplier records excluded by validation.
	Skipped int

	// Rejected lists per-offer marketplace rejections.
	Rejected []reconcile.UploadError

	// DryRun records whether uploads were suppressed.
	DryRun bool
}

// Sync runs one reconciliation pass: snapshot the marketplace listing
// set, fetch the supplier catalog, compute the diff, and upload it in
// chunks. The pass is idempotent; re-running with unchanged inputs
// uploads the same batches.
func (s *Service) Sync(ctx context.Context, opts SyncOptions) (*Report, error) {
	known, err := s.market.ListOfferIDs(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched marketplace listings", zap.Int("count", len(known)))

	records, err := s.feed.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched supplier catalog", zap.Int("count", len(records)))

	plan := reconcile.MissingListings(known, records, reconcile.DeliveryNone)
	stocks := reconcile.StockRefresh(known, records)
	prices, priceSkips := reconcile.PriceRefresh(known, records)

	for _, skip := range append(plan.Skipped, priceSkips...) {
		s.logger.Warn("skipped supplier record",
			zap.String("offer_id", skip.ID),
			zap.String("reason", skip.Reason),
		)
	}

	report := &Report{
		NewListings:  len(plan.Uploads),
		StockUpdates: len(stocks) + len(plan.Uploads),
		PriceUpdates: len(prices) + len(plan.Uploads),
		Skipped:      len(plan.Skipped) + len(priceSkips),
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		s.logger.Info("dry-run, nothing uploaded",
			zap.Int("new_listings", report.NewListings),
			zap.Int("stock_updates", report.StockUpdates),
			zap.Int("price_updates", report.PriceUpdates),
		)
		return report, nil
	}

	// New listings enter Ozon through the same import endpoints as
	// refreshes, so both go out in shared chunks.
	stockBatch := make([]reconcile.StockUpdate, 0, len(plan.Uploads)+len(stocks))
	priceBatch := make([]reconcile.PriceUpdate, 0, len(plan.Uploads)+len(prices))
	for _, upload := range plan.Uploads {
		stockBatch = append(stockBatch, reconcile.StockUpdate{ID: upload.ID, Stock: upload.Stock})
		priceBatch = append(priceBatch, reconcile.PriceUpdate{ID: upload.ID, Price: upload.Price})
	}
	stockBatch = append(stockBatch, stocks...)
	priceBatch = append(priceBatch, prices...)

	stockChunks, err := reconcile.Chunk(stockBatch, StockChunkSize)
	if err != nil {
		return nil, err
	}
	for _, chunk := range stockChunks {
		rejected, err := s.market.ImportStocks(ctx, chunk)
		if err != nil {
			return nil, err
		}
		report.Rejected = append(report.Rejected, rejected...)
	}

	priceChunks, err := reconcile.Chunk(priceBatch, PriceChunkSize)
	if err != nil {
		return nil, err
	}
	for _, chunk := range priceChunks {
		rejected, err := s.market.ImportPrices(ctx, chunk)
		if err != nil {
			return nil, err
		}
		report.Rejected = append(report.Rejected, rejected...)
	}

	for _, rejection := range report.Rejected {
		s.logger.Warn("offer rejected by marketplace",
			zap.String("offer_id", rejection.ID),
			zap.String("code", rejection.Code),
			zap.String("message", rejection.Message),
		)
	}

	return report, nil
}
