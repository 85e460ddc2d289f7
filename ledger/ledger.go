// Package ledger implements the finance ledger rows and the arithmetic used to derive the
// total, reserve and spendable amounts recorded alongside each manual entry.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservePercent is the fixed share of the total set aside as savings.
const ReservePercent = 20

// Header is the worksheet header row, in column order.
var Header = []string{"Date", "Amount", "Salary", "Total", "Reserve", "Spendable"}

var reserveRate = decimal.NewFromInt(ReservePercent).Shift(-2)

// Derived holds the amounts computed from an account balance and salary.
//
// Reserve and Spendable are whole numbers rounded half away from zero and always sum to
// the rounded Total.
type Derived struct {
	Total     decimal.Decimal
	Reserve   decimal.Decimal
	Spendable decimal.Decimal
}

// Entry is a single ledger row.
type Entry struct {
	Date    time.Time
	Account decimal.Decimal
	Salary  decimal.Decimal
	Derived
}

// Derive computes the total, reserve and spendable amounts.
func Derive(account, salary decimal.Decimal) Derived {
	total := account.Add(salary)
	reserve := total.Mul(reserveRate).Round(0)
	spendable := total.Round(0).Sub(reserve)

	return Derived{
		Total:     total,
		Reserve:   reserve,
		Spendable: spendable,
	}
}

func NewEntry(date time.Time, account, salary decimal.Decimal) Entry {
	return Entry{
		Date:    date,
		Account: account,
		Salary:  salary,
		Derived: Derive(account, salary),
	}
}

// Values returns the entry as a worksheet row. Amounts are exact decimal strings which
// the USER_ENTERED input option stores as numbers.
func (e Entry) Values() []any {
	return []any{
		FormatDate(e.Date),
		e.Account.String(),
		e.Salary.String(),
		e.Total.String(),
		e.Reserve.String(),
		e.Spendable.String(),
	}
}
