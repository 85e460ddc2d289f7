package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/config"
	"github.com/finance-sheets/finance-sheets/prompt"
	"github.com/finance-sheets/finance-sheets/sheet"
)

var AddCmd = Add{
	command: command{
		name:        "add",
		description: "Appends a new entry to the ledger worksheet",
		usage:       "add",
	},
	now: time.Now,
}

type Add struct {
	command
	now func() time.Time
}

func (cmd *Add) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return exit(cmd.execute(ctx, getOptions(args)))
}

func (cmd *Add) execute(ctx context.Context, options *Options) error {
	conf, google, err := connect(ctx, options)
	if err != nil {
		return err
	}

	now := time.Now
	if cmd.now != nil {
		now = cmd.now
	}

	return add(ctx, options, google, conf, now())
}

// add collects a new entry from the console and appends the derived row to the worksheet.
func add(ctx context.Context, options *Options, google *sheet.Client, conf *config.Config, now time.Time) error {
	entry, err := collect(prompt.New(options.In, options.Out), conf, now)
	if err != nil {
		return err
	}

	appended, err := google.Append(ctx, conf.Range, entry.Values())
	if err != nil {
		return err
	}

	debugf("Appended %v row(s) to %v", appended.Rows, appended.Range)

	summarise(options.Out, entry, conf.Currency)
	fmt.Fprintf(options.Out, "Data successfully appended to the Google Sheet. You can check the sheet here: %v\n", google.URL())

	return nil
}
