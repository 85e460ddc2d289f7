package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/config"
	"github.com/finance-sheets/finance-sheets/ledger"
	"github.com/finance-sheets/finance-sheets/sheet"
)

var ShowCmd = Show{
	command: command{
		name:        "show",
		description: "Displays the ledger worksheet",
		usage:       "show",
	},
}

type Show struct {
	command
}

func (cmd *Show) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return exit(cmd.execute(ctx, getOptions(args)))
}

func (cmd *Show) execute(ctx context.Context, options *Options) error {
	conf, google, err := connect(ctx, options)
	if err != nil {
		return err
	}

	_, err = read(ctx, options.Out, google, conf)

	return err
}

// read retrieves and displays the ledger worksheet, returning the raw rows.
func read(ctx context.Context, out io.Writer, google *sheet.Client, conf *config.Config) ([][]any, error) {
	rows, err := google.Read(ctx, conf.Range)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No data found.")
		return rows, nil
	}

	data, err := ledger.MakeTable(rows)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger worksheet %v (%w)", conf.Range, err)
	}

	if missing := data.Missing(ledger.Header...); len(missing) > 0 {
		warnf("Worksheet %v is missing column(s) %v", conf.Range, strings.Join(missing, ", "))
	}

	display(out, data)

	return rows, nil
}
