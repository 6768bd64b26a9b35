// Package reconcile computes which supplier catalog items are missing
// from a marketplace's active listing set and normalizes their prices
// for upload.
//
// The engine is a pure transformation: collaborators fetch the
// marketplace identifier snapshot and the supplier feed, the engine
// combines them, and the collaborators apply the resulting batch. All
// I/O, authentication, and retries live outside this package.
//
// # Operations
//
//   - MissingListings: supplier identifiers minus marketplace
//     identifiers, with price normalization and per-record validation.
//   - StockRefresh: quantity updates for already listed offers, zeroing
//     offers that dropped out of the feed.
//   - PriceRefresh: normalized prices for the feed/listing intersection.
//   - Chunk: splits batches to marketplace request size limits.
//
// # Error handling
//
// Malformed supplier records (negative stock, non-positive price) are
// skipped and reported in the plan, never fatal: one bad record does
// not abort the run. Transport failures (FetchError) and per-offer
// marketplace rejections (UploadError) are defined here for the
// collaborators to return; the engine itself cannot fail.
//
// # Price rounding
//
// Raw supplier prices carry fractional currency units; marketplace APIs
// take whole units. RoundPrice rounds half away from zero: 149.50
// uploads as 150, 19.49 as 19. The policy is fixed and tested.
package reconcile
