package ozon

// productListRequest is the payload of POST /v2/product/list.
type productListRequest struct {
	Filter productFilter `json:"filter"`
	LastID string        `json:"last_id"`
	Limit  int           `json:"limit"`
}

type productFilter struct {
	Visibility string `json:"visibility"`
}

// productListResponse is the paginated product listing. LastID is the
// cursor for the next page; Total is the full catalog size.
type productListResponse struct {
	Result struct {
		Items []struct {
			OfferID   string `json:"offer_id"`
			ProductID int64  `json:"product_id"`
		} `json:"items"`
		Total  int    `json:"total"`
		LastID string `json:"last_id"`
	} `json:"result"`
}

// priceImportRequest is the payload of POST /v1/product/import/prices.
// Prices are sent as strings of whole rubles; old_price "0" clears any
// previous strikethrough price.
type priceImportRequest struct {
	Prices []priceImportItem `json:"prices"`
}

type priceImportItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

// stockImportRequest is the payload of POST /v1/product/import/stocks.
type stockImportRequest struct {
	Stocks []stockImportItem `json:"stocks"`
}

type stockImportItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// importResponse reports the per-offer outcome of a price or stock
// import. A rejected offer carries its errors without failing the rest
// of the batch.
type importResponse struct {
	Result []struct {
		OfferID string `json:"offer_id"`
		Updated bool   `json:"updated"`
		Errors  []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"result"`
}
