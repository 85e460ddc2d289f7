package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/ledger"
)

var RunCmd = Run{
	command: command{
		name:        "run",
		description: "Displays the ledger worksheet and appends a new entry (default command)",
		usage:       "run",
	},
	now: time.Now,
}

type Run struct {
	command
	now func() time.Time
}

func (cmd *Run) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return exit(cmd.execute(ctx, getOptions(args)))
}

func (cmd *Run) execute(ctx context.Context, options *Options) error {
	conf, google, err := connect(ctx, options)
	if err != nil {
		return err
	}

	fmt.Fprintln(options.Out, "Successfully connected to the Google Sheets API.")

	rows, err := read(ctx, options.Out, google, conf)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		infof("Initialising worksheet header in %v", conf.Range)

		header := make([]any, len(ledger.Header))
		for i, h := range ledger.Header {
			header[i] = h
		}

		if _, err := google.Append(ctx, conf.Range, header); err != nil {
			return err
		}
	}

	now := time.Now
	if cmd.now != nil {
		now = cmd.now
	}

	return add(ctx, options, google, conf, now())
}
