package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// VERSION is set at build time with -ldflags "-X github.com/finance-sheets/finance-sheets/commands.VERSION=..."
var VERSION = "v0.1.x"

// VersionCmd is an initialized Version command for the main() command list
var VersionCmd = Version{
	command: command{
		name:        "version",
		description: "Displays the current version",
		usage:       "version",
	},
}

// Version is a CLI command implementation that displays the CLI version information.
type Version struct {
	command
}

// Execute prints the current finance-sheets version
func (c *Version) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	options := getOptions(args)

	fmt.Fprintf(options.Out, "%s\n", VERSION)

	return subcommands.ExitSuccess
}
