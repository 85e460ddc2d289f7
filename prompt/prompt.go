// Package prompt implements the interactive console questions used to capture a ledger
// entry. Invalid amounts and dates are reported and asked for again.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-sheets/finance-sheets/ledger"
)

// ErrNoInput is returned when the input ends before a valid answer is read.
var ErrNoInput = errors.New("no input")

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the question and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.out)
		return "", fmt.Errorf("%w (%v)", ErrNoInput, err)
	}

	return strings.TrimSpace(line), nil
}

// Choose asks a '(1/2)' question and returns true if the answer is '1'. Any other answer
// selects the second option.
func (p *Prompter) Choose(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}

	return answer == "1", nil
}

// Amount asks for a decimal amount until a valid value is entered.
func (p *Prompter) Amount(question, field string) (decimal.Decimal, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := ledger.ParseAmount(field, answer)
		if err != nil {
			if retry(p.out, err) {
				continue
			}

			return decimal.Zero, err
		}

		return amount, nil
	}
}

// Date asks for a DD-MM-YYYY date until a valid value is entered.
func (p *Prompter) Date(question string) (time.Time, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return time.Time{}, err
		}

		date, err := ledger.ParseDate(answer)
		if err != nil {
			if retry(p.out, err) {
				continue
			}

			return time.Time{}, err
		}

		return date, nil
	}
}

func retry(out io.Writer, err error) bool {
	var inputErr *ledger.InputError
	if errors.As(err, &inputErr) {
		fmt.Fprintf(out, "  %v - please try again\n", inputErr)
		return true
	}

	return false
}
