package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/auth"
	"github.com/finance-sheets/finance-sheets/ledger"
	"github.com/finance-sheets/finance-sheets/sheet"
)

const APP = "finance-sheets"

// Options holds the top-level command line options passed to every command.
type Options struct {
	Config string
	Debug  bool
	In     io.Reader
	Out    io.Writer

	endpoint string
}

// Commands lists the commands registered with the command line dispatcher. The first
// command is run when no command is given.
var Commands = []subcommands.Command{
	&RunCmd,
	&ShowCmd,
	&AddCmd,
	&AuthoriseCmd,
	&ExportCmd,
	&VersionCmd,
}

type command struct {
	name        string
	description string
	usage       string
}

func (c *command) Name() string {
	return c.name
}

func (c *command) Synopsis() string {
	return c.description
}

func (c *command) Usage() string {
	return fmt.Sprintf("  Usage: %s [--config <file>] [--debug] %s\n\n  %s\n\n", APP, c.usage, c.description)
}

func (c *command) SetFlags(*flag.FlagSet) {
}

func getOptions(args []any) *Options {
	options := &Options{}
	if len(args) > 0 {
		if v, ok := args[0].(*Options); ok && v != nil {
			options = v
		}
	}

	if options.In == nil {
		options.In = os.Stdin
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}

	configure(options)

	return options
}

// exit reports the outcome of a command as a process exit status.
func exit(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}

	var authErr *auth.AuthError
	var remoteErr *sheet.RemoteError
	var inputErr *ledger.InputError

	switch {
	case errors.As(err, &remoteErr):
		errorf("An error occurred: %v", err)

	case errors.As(err, &authErr):
		errorf("Authorisation error: %v", err)

	case errors.As(err, &inputErr):
		errorf("Invalid input: %v", err)

	case errors.Is(err, context.Canceled):
		warnf("Cancelled")

	default:
		errorf("%v", err)
	}

	return subcommands.ExitFailure
}
