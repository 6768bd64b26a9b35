package yandex

// offerMappingResponse is one page of the campaign's offer listing,
// paginated by nextPageToken.
type offerMappingResponse struct {
	Result struct {
		OfferMappingEntries []struct {
			Offer struct {
				ShopSKU string `json:"shopSku"`
			} `json:"offer"`
		} `json:"offerMappingEntries"`
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
	} `json:"result"`
}

// listingUploadRequest publishes new offers into the campaign.
type listingUploadRequest struct {
	OfferMappingEntries []offerEntry `json:"offerMappingEntries"`
}

type offerEntry struct {
	Offer offerPayload `json:"offer"`
}

type offerPayload struct {
	ShopSKU      string `json:"shopSku"`
	Availability string `json:"availability"`
	DeliveryType string `json:"deliveryType,omitempty"`
}

// priceUpdateRequest is the payload of offer-prices/updates. Prices are
// whole rubles.
type priceUpdateRequest struct {
	Offers []priceOffer `json:"offers"`
}

type priceOffer struct {
	OfferID string     `json:"offerId"`
	Price   priceValue `json:"price"`
}

type priceValue struct {
	Value      int64  `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// stockUpdateRequest is the payload of offers/stocks, scoped to one
// warehouse.
type stockUpdateRequest struct {
	SKUs []stockSKU `json:"skus"`
}

type stockSKU struct {
	SKU         string      `json:"sku"`
	WarehouseID int64       `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// updateResponse reports the outcome of a mutation request. Rejected
// offers are listed individually and do not fail the rest of the batch.
type updateResponse struct {
	Status string `json:"status"`
	Result struct {
		RejectedOffers []struct {
			OfferID string `json:"offerId"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"rejectedOffers"`
	} `json:"result"`
}
