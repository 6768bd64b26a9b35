package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MissingListings computes the upload batch for one marketplace: one
// ListingUpload per supplier record whose identifier is absent from the
// marketplace snapshot. Records failing validation are skipped and
// reported in the plan, never fatal to the batch.
//
// The function is pure: it performs no I/O and does not mutate its
// inputs. Re-running it with the same inputs yields the same plan.
func MissingListings(known map[string]struct{}, records []ProductRecord, delivery DeliveryType) *Plan {
	plan := &Plan{
		Uploads: make([]ListingUpload, 0, len(records)),
		Skipped: []ValidationError{},
		Summary: PlanSummary{
			SupplierRecords: len(records),
			KnownListings:   len(known),
		},
	}

	for _, rec := range records {
		if _, listed := known[rec.ID]; listed {
			continue
		}
		if verr := validate(rec); verr != nil {
			plan.Skipped = append(plan.Skipped, *verr)
			continue
		}
		plan.Uploads = append(plan.Uploads, ListingUpload{
			ID:       rec.ID,
			Price:    RoundPrice(rec.Price),
			Stock:    rec.Stock,
			Delivery: delivery,
		})
	}

	// Sort by identifier for deterministic output.
	sort.Slice(plan.Uploads, func(i, j int) bool {
		return plan.Uploads[i].ID < plan.Uploads[j].ID
	})

	plan.Summary.Uploads = len(plan.Uploads)
	plan.Summary.Skipped = len(plan.Skipped)
	return plan
}

// StockRefresh builds stock updates for identifiers already listed on
// the marketplace. Listed identifiers absent from the supplier feed get
// an explicit zero-stock update so sold-out models stop selling.
func StockRefresh(known map[string]struct{}, records []ProductRecord) []StockUpdate {
	updates := make([]StockUpdate, 0, len(known))
	inFeed := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if _, listed := known[rec.ID]; !listed {
			continue
		}
		inFeed[rec.ID] = struct{}{}
		stock := rec.Stock
		if stock < 0 {
			stock = 0
		}
		updates = append(updates, StockUpdate{ID: rec.ID, Stock: stock})
	}

	for id := range known {
		if _, ok := inFeed[id]; !ok {
			updates = append(updates, StockUpdate{ID: id, Stock: 0})
		}
	}

	sort.Slice(updates, func(i, j int) bool {
		return updates[i].ID < updates[j].ID
	})

	return updates
}

// PriceRefresh builds normalized price updates for the intersection of
// the supplier feed and the listed identifiers. Invalid records are
// skipped and returned alongside the updates.
func PriceRefresh(known map[string]struct{}, records []ProductRecord) ([]PriceUpdate, []ValidationError) {
	updates := make([]PriceUpdate, 0, len(records))
	skipped := []ValidationError{}

	for _, rec := range records {
		if _, listed := known[rec.ID]; !listed {
			continue
		}
		if verr := validate(rec); verr != nil {
			skipped = append(skipped, *verr)
			continue
		}
		updates = append(updates, PriceUpdate{ID: rec.ID, Price: RoundPrice(rec.Price)})
	}

	sort.Slice(updates, func(i, j int) bool {
		return updates[i].ID < updates[j].ID
	})

	return updates, skipped
}

// RoundPrice normalizes a raw supplier price to whole currency units.
// Policy: round half away from zero, so 149.50 becomes 150 and 19.49
// becomes 19. Marketplace APIs take integer currency units only.
func RoundPrice(raw decimal.Decimal) int64 {
	return raw.Round(0).IntPart()
}

// validate enforces the record invariants: non-empty identifier,
// non-negative stock, strictly positive price.
func validate(rec ProductRecord) *ValidationError {
	if rec.ID == "" {
		return &ValidationError{ID: rec.ID, Reason: "empty identifier"}
	}
	if rec.Stock < 0 {
		return &ValidationError{ID: rec.ID, Reason: "negative stock quantity"}
	}
	if rec.Price.Sign() <= 0 {
		return &ValidationError{ID: rec.ID, Reason: "price must be positive"}
	}
	return nil
}
