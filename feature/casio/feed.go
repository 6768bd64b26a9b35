package casio

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"seller-sync/core/reconcile"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Column titles of the wholesale stock workbook.
const (
	colCode     = "Код"
	colQuantity = "Количество"
	colPrice    = "Цена"
)

// Feed downloads and parses the Casio wholesale stock feed: a zip
// archive containing an Excel workbook with one row per watch model.
type Feed struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewFeed creates a new feed fetcher.
func NewFeed(cfg Config, logger *zap.Logger) *Feed {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	return &Feed{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// FetchCatalog downloads the feed archive and returns one ProductRecord
// per data row. Rows with an unparseable quantity or price are logged
// and dropped here so the engine only ever sees well-formed records;
// download and decoding failures are fatal (FetchError).
func (f *Feed) FetchCatalog(ctx context.Context) ([]reconcile.ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return nil, &reconcile.FetchError{Source: "casio", Err: err}
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &reconcile.FetchError{Source: "casio", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &reconcile.FetchError{Source: "casio", Err: fmt.Errorf("unexpected status code: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &reconcile.FetchError{Source: "casio", Err: err}
	}

	workbook, err := openArchiveWorkbook(body)
	if err != nil {
		return nil, &reconcile.FetchError{Source: "casio", Err: err}
	}

	records, err := f.parseWorkbook(workbook)
	if err != nil {
		return nil, &reconcile.FetchError{Source: "casio", Err: err}
	}

	return records, nil
}

// openArchiveWorkbook extracts the first Excel workbook from the zip
// archive body.
func openArchiveWorkbook(body []byte) (*excelize.File, error) {
	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("reading feed archive: %w", err)
	}

	for _, entry := range archive.File {
		name := strings.ToLower(entry.Name)
		if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", entry.Name, err)
		}
		defer rc.Close()

		workbook, err := excelize.OpenReader(rc)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", entry.Name, err)
		}
		return workbook, nil
	}

	return nil, fmt.Errorf("no workbook found in feed archive")
}

// parseWorkbook reads the stock table of the first sheet. The column
// layout is resolved from the header row titles, not from fixed
// positions, since the supplier occasionally reorders columns.
func (f *Feed) parseWorkbook(workbook *excelize.File) ([]reconcile.ProductRecord, error) {
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}

	if f.cfg.HeaderRow >= len(rows) {
		return nil, fmt.Errorf("header row %d beyond sheet size %d", f.cfg.HeaderRow, len(rows))
	}

	columns := make(map[string]int)
	for i, title := range rows[f.cfg.HeaderRow] {
		columns[strings.TrimSpace(title)] = i
	}
	for _, required := range []string{colCode, colQuantity, colPrice} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("column %q not found in header row %d", required, f.cfg.HeaderRow)
		}
	}

	records := make([]reconcile.ProductRecord, 0, len(rows))
	for _, row := range rows[f.cfg.HeaderRow+1:] {
		code := cell(row, columns[colCode])
		if code == "" {
			continue
		}

		quantity, err := parseQuantity(cell(row, columns[colQuantity]))
		if err != nil {
			f.logger.Warn("dropping feed row", zap.String("code", code), zap.Error(err))
			continue
		}

		price, err := parsePrice(cell(row, columns[colPrice]))
		if err != nil {
			f.logger.Warn("dropping feed row", zap.String("code", code), zap.Error(err))
			continue
		}

		records = append(records, reconcile.ProductRecord{
			ID:    code,
			Stock: quantity,
			Price: price,
		})
	}

	return records, nil
}

// cell returns the trimmed value at index i. GetRows omits trailing
// empty cells, so short rows are treated as having empty values.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
