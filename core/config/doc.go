// Package config provides configuration management for seller-sync.
//
// It utilizes Viper for loading configuration from environment
// variables and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Supplier: Casio feed URL and workbook layout
//   - Ozon: Seller API credentials and rate limits
//   - Yandex: campaign credentials, warehouse and delivery type
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ozon.ClientID)
package config
