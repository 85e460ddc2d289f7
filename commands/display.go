package commands

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/finance-sheets/finance-sheets/ledger"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func display(out io.Writer, data *ledger.Table) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(data.Header...).
		Rows(data.Records...)

	fmt.Fprintln(out, t.Render())
}

func summarise(out io.Writer, entry ledger.Entry, currency string) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Date:      %v\n", ledger.FormatDate(entry.Date))
	fmt.Fprintf(out, "  Amount:    %v\n", format(entry.Account, currency))
	fmt.Fprintf(out, "  Salary:    %v\n", format(entry.Salary, currency))
	fmt.Fprintf(out, "  Total:     %v\n", format(entry.Total, currency))
	fmt.Fprintf(out, "  Reserve:   %v\n", format(entry.Reserve, currency))
	fmt.Fprintf(out, "  Spendable: %v\n", format(entry.Spendable, currency))
	fmt.Fprintln(out)
}

// format renders an amount in the currency's minor units, e.g. ₹7,625.43.
func format(amount decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		return fmt.Sprintf("%v %v", amount.StringFixed(2), currency)
	}

	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()

	return money.New(minor, c.Code).Display()
}
