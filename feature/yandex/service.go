package yandex

import (
	"context"
	"fmt"

	"seller-sync/core/reconcile"

	"go.uber.org/zap"
)

// FeedFetcher supplies the current supplier catalog.
type FeedFetcher interface {
	FetchCatalog(ctx context.Context) ([]reconcile.ProductRecord, error)
}

// Marketplace is the slice of the campaign client the sync needs.
type Marketplace interface {
	ListOfferIDs(ctx context.Context) (map[string]struct{}, error)
	UploadListings(ctx context.Context, uploads []reconcile.ListingUpload) ([]reconcile.UploadError, error)
	UpdatePrices(ctx context.Context, updates []reconcile.PriceUpdate) ([]reconcile.UploadError, error)
	UpdateStocks(ctx context.Context, updates []reconcile.StockUpdate) error
}

// Service reconciles one Yandex Market campaign against the supplier
// feed. Every published listing carries the campaign's delivery tag.
type Service struct {
	market   Marketplace
	feed     FeedFetcher
	delivery reconcile.DeliveryType
	logger   *zap.Logger
}

// NewService creates a new campaign sync service. The delivery type
// must be FBS or DBS; Yandex Market listings are always tagged.
func NewService(market Marketplace, feed FeedFetcher, delivery reconcile.DeliveryType, logger *zap.Logger) (*Service, error) {
	if !delivery.IsValid() || delivery == reconcile.DeliveryNone {
		return nil, fmt.Errorf("invalid delivery type %q", delivery)
	}

	return &Service{market: market, feed: feed, delivery: delivery, logger: logger}, nil
}

// SyncOptions controls sync behavior.
type SyncOptions struct {
	// DryRun computes and reports the plan without uploading anything.
	DryRun bool
}

// Report summarizes one sync run.
type Report struct {
	// NewListings is the number of supplier items missing from the
	// campaign and queued for publication.
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

// Sync runs one reconciliation pass against the campaign: snapshot the
// offer listing, fetch the supplier catalog, publish missing offers
// with the delivery tag, then refresh stocks and prices in chunks.
func (s *Service) Sync(ctx context.Context, opts SyncOptions) (*Report, error) {
	known, err := s.market.ListOfferIDs(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched campaign offers", zap.Int("count", len(known)))

	records, err := s.feed.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("fetched supplier catalog", zap.Int("count", len(records)))

	plan := reconcile.MissingListings(known, records, s.delivery)
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

	listingChunks, err := reconcile.Chunk(plan.Uploads, ListingChunkSize)
	if err != nil {
		return nil, err
	}
	for _, chunk := range listingChunks {
		rejected, err := s.market.UploadListings(ctx, chunk)
		if err != nil {
			return nil, err
		}
		report.Rejected = append(report.Rejected, rejected...)
	}

	// New listings get their stock and price through the refresh
	// endpoints once published.
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
		if err := s.market.UpdateStocks(ctx, chunk); err != nil {
			return nil, err
		}
	}

	priceChunks, err := reconcile.Chunk(priceBatch, PriceChunkSize)
	if err != nil {
		return nil, err
	}
	for _, chunk := range priceChunks {
		rejected, err := s.market.UpdatePrices(ctx, chunk)
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
