package yandex

import "seller-sync/core/reconcile"

// Config holds credentials and routing settings for the Yandex Market
// partner API. One config targets one campaign; FBS and DBS stores run
// as separate campaigns with their own warehouses.
type Config struct {
	// BaseURL is the API endpoint, overridable for testing.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// Token is the seller API key.
	Token string `mapstructure:"token" default:""`
	// CampaignID identifies the store within the seller account.
	CampaignID string `mapstructure:"campaign_id" default:""`
	// WarehouseID routes stock updates to the seller warehouse.
	WarehouseID int64 `mapstructure:"warehouse_id" default:"0"`
	// DeliveryType tags uploaded listings: FBS or DBS.
	DeliveryType string `mapstructure:"delivery_type" default:"FBS"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RateLimit is the outbound request budget in requests per second.
	RateLimit float64 `mapstructure:"rate_limit" default:"2"`
}

// Delivery returns the configured delivery type.
func (c Config) Delivery() reconcile.DeliveryType {
	return reconcile.DeliveryType(c.DeliveryType)
}
