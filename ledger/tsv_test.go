package ledger

import (
	"strings"
	"testing"
)

func TestWriteTSV(t *testing.T) {
	expected := `Date	Amount	Salary	Total	Reserve	Spendable
11-05-2024	7625.43	0	7625.43	1525	6100
01-06-2024	1200	50000	51200	10240	40960
`

	var f strings.Builder
	table := Table{
		Header: []string{"Date", "Amount", "Salary", "Total", "Reserve", "Spendable"},
		Records: [][]string{
			{"11-05-2024", "7625.43", "0", "7625.43", "1525", "6100"},
			{"01-06-2024", "1200", "50000", "51200", "10240", "40960"},
		},
	}

	if err := WriteTSV(&f, &table); err != nil {
		t.Fatalf("Unexpected error returned from WriteTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestWriteTSVWithoutHeader(t *testing.T) {
	var f strings.Builder

	if err := WriteTSV(&f, &Table{}); err == nil {
		t.Errorf("Expected error for table without header")
	}
}
