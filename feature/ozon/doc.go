// Package ozon integrates with the Ozon Seller API.
//
// The client authenticates with Client-Id and Api-Key headers, pages
// through the product list with the last_id cursor, and pushes price
// and stock imports in chunks sized to the endpoint caps (100 stocks,
// 900 prices per request). Per-offer rejections are surfaced as
// reconcile.UploadError values and never abort the rest of a batch.
//
// The Service combines the client with a supplier feed fetcher and the
// reconcile engine: missing supplier items are published, already
// listed offers get their stock and price refreshed, and offers that
// dropped out of the feed are zeroed.
package ozon
