package config_test

import (
	"testing"

	"seller-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api-seller.ozon.ru", cfg.Ozon.BaseURL)
	assert.Equal(t, "https://api.partner.market.yandex.ru", cfg.Yandex.BaseURL)
	assert.Equal(t, "FBS", cfg.Yandex.DeliveryType)
	assert.Equal(t, "https://timeworld.ru/upload/files/ostatki.zip", cfg.Supplier.URL)
	assert.Equal(t, 17, cfg.Supplier.HeaderRow)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OZON_CLIENT_ID", "client-from-env")
	t.Setenv("OZON_API_KEY", "key-from-env")
	t.Setenv("YANDEX_CAMPAIGN_ID", "98765")
	t.Setenv("YANDEX_DELIVERY_TYPE", "DBS")
	t.Setenv("SUPPLIER_HEADER_ROW", "5")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "client-from-env", cfg.Ozon.ClientID)
	assert.Equal(t, "key-from-env", cfg.Ozon.APIKey)
	assert.Equal(t, "98765", cfg.Yandex.CampaignID)
	assert.Equal(t, "DBS", cfg.Yandex.DeliveryType)
	assert.Equal(t, 5, cfg.Supplier.HeaderRow)
}
