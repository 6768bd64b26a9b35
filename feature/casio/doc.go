// Package casio implements the supplier feed fetcher: it downloads the
// Casio wholesale stock archive (a zip containing an Excel workbook)
// and turns its rows into typed product records for the reconcile
// engine.
//
// The workbook carries a letterhead above the data table, so the header
// row offset is configurable. Columns are located by title (Код,
// Количество, Цена) rather than by position. Quantity notation is
// normalized here: ">10" publishes as 100, a literal "1" publishes as 0
// because the supplier reserves the last unit.
package casio
