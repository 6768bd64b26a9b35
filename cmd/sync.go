package cmd

import (
	"context"
	"fmt"

	"seller-sync/core/config"
	"seller-sync/core/logger"
	"seller-sync/feature/casio"
	"seller-sync/feature/ozon"
	"seller-sync/feature/yandex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

// syncCmd is the parent command for all marketplace sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile marketplace listings against the supplier feed",
	Long: `Reconcile marketplace listings against the Casio stock feed.
Models missing from the marketplace are published; stocks and prices of
listed models are refreshed, with sold-out models zeroed.`,
}

// ozonSyncCmd runs one reconciliation pass against Ozon.
var ozonSyncCmd = &cobra.Command{
	Use:   "ozon",
	Short: "Sync the Ozon catalog",
	Long: `Sync the Ozon catalog against the supplier feed.

Examples:
  # Report what would be uploaded, without uploading
  seller-sync sync ozon --dry-run

  # Full sync
  seller-sync sync ozon`,
	RunE: runOzonSync,
}

// yandexSyncCmd runs one reconciliation pass against a Yandex Market
// campaign. The campaign's delivery type (FBS or DBS) comes from the
// configuration and tags every published listing.
var yandexSyncCmd = &cobra.Command{
	Use:   "yandex",
	Short: "Sync a Yandex Market campaign",
	RunE:  runYandexSync,
}

func init() {
	syncCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Compute and report the plan without uploading")

	syncCmd.AddCommand(ozonSyncCmd)
	syncCmd.AddCommand(yandexSyncCmd)
	RootCmd.AddCommand(syncCmd)
}

func runOzonSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	l.Info("starting ozon sync", zap.Bool("dry_run", dryRun))

	feed := casio.NewFeed(cfg.Supplier, l)
	client := ozon.NewClient(cfg.Ozon)
	service := ozon.NewService(client, feed, l)

	report, err := service.Sync(ctx, ozon.SyncOptions{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("ozon sync failed: %w", err)
	}

	printReport(l, report.NewListings, report.StockUpdates, report.PriceUpdates, report.Skipped, len(report.Rejected), report.DryRun)
	return nil
}

func runYandexSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	l.Info("starting yandex sync",
		zap.String("campaign_id", cfg.Yandex.CampaignID),
		zap.String("delivery_type", cfg.Yandex.DeliveryType),
		zap.Bool("dry_run", dryRun),
	)

	feed := casio.NewFeed(cfg.Supplier, l)
	client := yandex.NewClient(cfg.Yandex)

	service, err := yandex.NewService(client, feed, cfg.Yandex.Delivery(), l)
	if err != nil {
		return err
	}

	report, err := service.Sync(ctx, yandex.SyncOptions{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("yandex sync failed: %w", err)
	}

	printReport(l, report.NewListings, report.StockUpdates, report.PriceUpdates, report.Skipped, len(report.Rejected), report.DryRun)
	return nil
}

// setup loads configuration and builds the run-scoped logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.WithRunID(l), nil
}

// printReport prints a formatted sync report using logger.
func printReport(l *zap.Logger, newListings, stockUpdates, priceUpdates, skipped, rejected int, dryRun bool) {
	l.Info("sync report",
		zap.Int("new_listings", newListings),
		zap.Int("stock_updates", stockUpdates),
		zap.Int("price_updates", priceUpdates),
		zap.Int("skipped_records", skipped),
		zap.Int("rejected_offers", rejected),
		zap.Bool("dry_run", dryRun),
	)
}
