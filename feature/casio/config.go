package casio

// Config holds configuration for the supplier feed download.
type Config struct {
	// URL is the address of the zipped stock workbook.
	URL string `mapstructure:"url" default:"https://timeworld.ru/upload/files/ostatki.zip"`
	// HeaderRow is the zero-based row index of the column titles.
	// The wholesale workbook carries a letterhead above the table.
	HeaderRow int `mapstructure:"header_row" default:"17"`
	// TimeoutSeconds is the HTTP timeout for the download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
