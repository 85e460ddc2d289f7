package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		account   string
		salary    string
		total     string
		reserve   string
		spendable string
	}{
		{"7625.43", "0", "7625.43", "1525", "6100"},
		{"1000", "50000", "51000", "10200", "40800"},
		{"2.5", "0", "2.5", "1", "2"},
		{"12.5", "0", "12.5", "3", "10"},
		{"0", "0", "0", "0", "0"},
		{"-100", "0", "-100", "-20", "-80"},
	}

	for _, test := range tests {
		d := Derive(decimal.RequireFromString(test.account), decimal.RequireFromString(test.salary))

		if !d.Total.Equal(decimal.RequireFromString(test.total)) {
			t.Errorf("Incorrect total for %v + %v\n   expected: %v\n   got:      %v", test.account, test.salary, test.total, d.Total)
		}

		if !d.Reserve.Equal(decimal.RequireFromString(test.reserve)) {
			t.Errorf("Incorrect reserve for %v + %v\n   expected: %v\n   got:      %v", test.account, test.salary, test.reserve, d.Reserve)
		}

		if !d.Spendable.Equal(decimal.RequireFromString(test.spendable)) {
			t.Errorf("Incorrect spendable for %v + %v\n   expected: %v\n   got:      %v", test.account, test.salary, test.spendable, d.Spendable)
		}
	}
}

func TestDeriveReserveAndSpendableSumToRoundedTotal(t *testing.T) {
	for cents := int64(0); cents < 250000; cents += 7 {
		total := decimal.New(cents, -2)
		d := Derive(total, decimal.Zero)

		if sum := d.Reserve.Add(d.Spendable); !sum.Equal(total.Round(0)) {
			t.Fatalf("reserve %v + spendable %v != round(%v)", d.Reserve, d.Spendable, total)
		}

		if !d.Reserve.Equal(d.Reserve.Truncate(0)) || !d.Spendable.Equal(d.Spendable.Truncate(0)) {
			t.Fatalf("non-integer reserve/spendable for total %v (%v, %v)", total, d.Reserve, d.Spendable)
		}
	}
}

func TestEntryValues(t *testing.T) {
	date := time.Date(2024, time.May, 11, 0, 0, 0, 0, time.Local)
	entry := NewEntry(date, decimal.RequireFromString("7625.43"), decimal.Zero)

	expected := []any{"11-05-2024", "7625.43", "0", "7625.43", "1525", "6100"}

	assert.Equal(t, expected, entry.Values())
	assert.Len(t, entry.Values(), len(Header))
}
