package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the DD-MM-YYYY layout used for the worksheet 'Date' column.
const DateFormat = "02-01-2006"

// ParseAmount parses a decimal amount, ignoring surrounding whitespace and ',' thousands
// separators.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if v == "" {
		return decimal.Zero, &InputError{Field: field, Value: s, Err: fmt.Errorf("empty value")}
	}

	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, &InputError{Field: field, Value: s, Err: err}
	}

	return amount, nil
}

func ParseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, &InputError{Field: "date", Value: s, Err: fmt.Errorf("expected DD-MM-YYYY")}
	}

	return date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}
