// Package yandex integrates with the Yandex Market partner API.
//
// A client is scoped to one campaign: FBS and DBS stores run as
// separate campaigns with their own warehouses, so a seller configures
// one sync per campaign. The client authenticates with the Api-Key
// header, pages through the offer listing with a page token, publishes
// missing offers tagged with the campaign's delivery type, and pushes
// warehouse stock counts and whole-ruble prices in chunks.
package yandex
