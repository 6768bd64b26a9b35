package ozon

// Config holds credentials and transport settings for the Ozon Seller API.
type Config struct {
	// BaseURL is the API endpoint, overridable for testing.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID identifies the seller account.
	ClientID string `mapstructure:"client_id" default:""`
	// APIKey is the seller API token.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RateLimit is the outbound request budget in requests per second.
	RateLimit float64 `mapstructure:"rate_limit" default:"2"`
}
