package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/finance-sheets/finance-sheets/commands"
	"github.com/finance-sheets/finance-sheets/config"
)

var options = commands.Options{
	Config: config.DefaultFile,
	Debug:  false,
}

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	cli := subcommands.NewCommander(flag.CommandLine, commands.APP)

	cli.Register(cli.HelpCommand(), "")
	cli.Register(cli.FlagsCommand(), "")
	cli.Register(cli.CommandsCommand(), "")

	for _, c := range commands.Commands {
		cli.Register(c, "")
	}

	flag.Parse()

	// ... default to 'run'
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], commands.RunCmd.Name()))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	status := cli.Execute(ctx, &options)
	cancel()

	os.Exit(int(status))
}
