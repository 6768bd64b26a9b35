package reconcile

import "github.com/shopspring/decimal"

// DeliveryType tags how a listing is fulfilled on marketplaces that
// distinguish delivery models (Yandex Market). Ozon listings carry no tag.
type DeliveryType string

const (
	// DeliveryNone means the marketplace does not use delivery tagging.
	DeliveryNone DeliveryType = ""
	// DeliveryFBS is Fulfillment by Seller: the seller ships from own warehouse.
	DeliveryFBS DeliveryType = "FBS"
	// DeliveryDBS is Delivery by Seller: the seller delivers directly to the buyer.
	DeliveryDBS DeliveryType = "DBS"
)

// IsValid reports whether the delivery type is one of the known values.
func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryNone, DeliveryFBS, DeliveryDBS:
		return true
	default:
		return false
	}
}

// ProductRecord is one row of the supplier's stock feed.
// It is immutable once read; the engine never mutates its inputs.
type ProductRecord struct {
	// ID is the supplier catalog code, unique within one feed snapshot.
	ID string

	// Stock is the available quantity reported by the supplier.
	Stock int

	// Price is the raw supplier price, fractional currency units included.
	Price decimal.Decimal
}

// ListingUpload is one entry of the batch sent to a marketplace to
// create or update a listing.
type ListingUpload struct {
	// ID is the offer identifier, equal to the supplier catalog code.
	ID string `json:"offer_id"`

	// Price is the normalized price in whole currency units.
	Price int64 `json:"price"`

	// Stock is the quantity to publish.
	Stock int `json:"stock"`

	// Delivery is set for marketplaces that require a delivery model tag.
	Delivery DeliveryType `json:"delivery_type,omitempty"`
}

// StockUpdate adjusts the published quantity of an already listed offer.
type StockUpdate struct {
	ID    string `json:"offer_id"`
	Stock int    `json:"stock"`
}

// PriceUpdate adjusts the published price of an already listed offer.
type PriceUpdate struct {
	ID    string `json:"offer_id"`
	Price int64  `json:"price"`
}

// Plan is the output of one reconciliation pass: the uploads to send,
// the supplier records that failed validation, and aggregate counts.
// The engine never drops a record silently; everything it refuses to
// upload is accounted for in Skipped.
type Plan struct {
	// Uploads contains one entry per valid supplier record missing from
	// the marketplace, sorted by identifier for reproducible output.
	Uploads []ListingUpload `json:"uploads"`

	// Skipped lists supplier records excluded by validation.
	Skipped []ValidationError `json:"skipped"`

	// Summary provides aggregate counts for reporting.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconciliation plan.
type PlanSummary struct {
	// SupplierRecords is the number of records read from the feed.
	SupplierRecords int `json:"supplier_records"`

	// KnownListings is the size of the marketplace identifier snapshot.
	KnownListings int `json:"known_listings"`

	// Uploads is the number of new listings to publish.
	Uploads int `json:"uploads"`

	// Skipped counts supplier records excluded by validation.
	Skipped int `json:"skipped"`
}
