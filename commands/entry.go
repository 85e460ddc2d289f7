package commands

import (
	"time"

	"github.com/finance-sheets/finance-sheets/config"
	"github.com/finance-sheets/finance-sheets/ledger"
	"github.com/finance-sheets/finance-sheets/prompt"
)

// collect asks for the date, account amount and salary of a new ledger entry.
func collect(p *prompt.Prompter, conf *config.Config, now time.Time) (ledger.Entry, error) {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	if manual, err := p.Choose("Would you like to enter the date or use the current date? (1/2): "); err != nil {
		return ledger.Entry{}, err
	} else if manual {
		if date, err = p.Date("Enter the date in the format DD-MM-YYYY: "); err != nil {
			return ledger.Entry{}, err
		}
	}

	amount, err := p.Amount("Enter the amount in the account: ", "amount")
	if err != nil {
		return ledger.Entry{}, err
	}

	salary := conf.Salary
	if manual, err := p.Choose("Would you like to enter the salary amount received or use the default value? (1/2): "); err != nil {
		return ledger.Entry{}, err
	} else if manual {
		if salary, err = p.Amount("Enter the salary amount received: ", "salary"); err != nil {
			return ledger.Entry{}, err
		}
	}

	return ledger.NewEntry(date, amount, salary), nil
}
