package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/ledger"
)

var ExportCmd = Export{
	command: command{
		name:        "export",
		description: "Retrieves the ledger worksheet and stores it to a local TSV file",
		usage:       "export [--file <file>]",
	},
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Export struct {
	command
	file string
}

func (cmd *Export) SetFlags(flagset *flag.FlagSet) {
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
}

func (cmd *Export) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return exit(cmd.execute(ctx, getOptions(args)))
}

func (cmd *Export) execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	conf, google, err := connect(ctx, options)
	if err != nil {
		return err
	}

	rows, err := google.Read(ctx, conf.Range)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	data, err := ledger.MakeTable(rows)
	if err != nil {
		return fmt.Errorf("invalid ledger worksheet %v (%w)", conf.Range, err)
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := ledger.WriteTSV(tmp, data); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v ledger entries to file %s", len(data.Records), cmd.file)

	return nil
}
