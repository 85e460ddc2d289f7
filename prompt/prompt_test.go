package prompt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("  hello  \n"), &out)

	answer, err := p.Ask("Say something: ")

	require.NoError(t, err)
	assert.Equal(t, "hello", answer)
	assert.Equal(t, "Say something: ", out.String())
}

func TestAskWithoutTrailingNewline(t *testing.T) {
	p := New(strings.NewReader("2"), &strings.Builder{})

	answer, err := p.Ask("? ")

	require.NoError(t, err)
	assert.Equal(t, "2", answer)
}

func TestAskWithEOF(t *testing.T) {
	p := New(strings.NewReader(""), &strings.Builder{})

	_, err := p.Ask("? ")

	assert.True(t, errors.Is(err, ErrNoInput), "expected ErrNoInput, got %v", err)
}

func TestChoose(t *testing.T) {
	tests := map[string]bool{
		"1\n":   true,
		" 1 \n": true,
		"2\n":   false,
		"\n":    false,
		"yes\n": false,
	}

	for input, expected := range tests {
		p := New(strings.NewReader(input), &strings.Builder{})

		chosen, err := p.Choose("(1/2): ")
		require.NoError(t, err)
		assert.Equal(t, expected, chosen, "input %q", input)
	}
}

func TestAmountRetriesInvalidInput(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("abc\n\n7,625.43\n"), &out)

	amount, err := p.Amount("Enter the amount in the account: ", "amount")

	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("7625.43")), "got %v", amount)
	assert.Equal(t, 3, strings.Count(out.String(), "Enter the amount in the account: "))
	assert.Equal(t, 2, strings.Count(out.String(), "please try again"))
}

func TestAmountWithEOF(t *testing.T) {
	p := New(strings.NewReader("abc\n"), &strings.Builder{})

	_, err := p.Amount("Enter the amount in the account: ", "amount")

	assert.True(t, errors.Is(err, ErrNoInput), "expected ErrNoInput, got %v", err)
}

func TestDateRetriesInvalidInput(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("2024-05-11\n11-05-2024\n"), &out)

	date, err := p.Date("Enter the date in the format DD-MM-YYYY: ")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 11, 0, 0, 0, 0, time.Local), date)
	assert.Equal(t, 1, strings.Count(out.String(), "please try again"))
}
