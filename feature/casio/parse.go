package casio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var priceRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// parseQuantity maps the feed's quantity notation to a stock count.
// The supplier caps the visible quantity: ">10" means plenty (published
// as 100), and a literal "1" means the last unit is reserved by the
// supplier and must not be sold.
func parseQuantity(raw string) (int, error) {
	switch s := strings.TrimSpace(raw); s {
	case "", "0":
		return 0, nil
	case ">10":
		return 100, nil
	case "1":
		return 0, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("unparseable quantity %q", raw)
		}
		return n, nil
	}
}

// parsePrice extracts a decimal price from feed notation like
// "5'990.00 руб.". Apostrophes and spaces group thousands; the currency
// suffix is dropped.
func parsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("'", "", " ", "", " ", "").Replace(raw)

	number := priceRe.FindString(cleaned)
	if number == "" {
		return decimal.Decimal{}, fmt.Errorf("unparseable price %q", raw)
	}
	number = strings.ReplaceAll(number, ",", ".")

	price, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable price %q: %w", raw, err)
	}
	return price, nil
}
