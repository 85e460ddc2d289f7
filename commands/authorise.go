package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

var AuthoriseCmd = Authorise{
	command: command{
		name:        "authorise",
		description: "Authorises finance-sheets to access the ledger spreadsheet",
		usage:       "authorise",
	},
}

// Authorise obtains (and caches) an OAuth2 token without reading or writing the
// spreadsheet. Browser consent is only requested if the cached token is missing, corrupt
// or cannot be refreshed.
type Authorise struct {
	command
}

func (cmd *Authorise) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return exit(cmd.execute(ctx, getOptions(args)))
}

func (cmd *Authorise) execute(ctx context.Context, options *Options) error {
	conf, err := loadConfig(options)
	if err != nil {
		return err
	}

	manager, err := authorize(conf)
	if err != nil {
		return err
	}

	token, err := manager.Token(ctx)
	if err != nil {
		return err
	}

	debugf("Token expires %v", token.Expiry)

	fmt.Fprintf(options.Out, "Authorised - token stored in %v\n", conf.TokenPath)

	return nil
}
