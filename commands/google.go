package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/option"

	"github.com/finance-sheets/finance-sheets/auth"
	"github.com/finance-sheets/finance-sheets/config"
	"github.com/finance-sheets/finance-sheets/sheet"
)

func loadConfig(options *Options) (*config.Config, error) {
	file := options.Config
	if file == "" {
		file = config.DefaultFile
	}

	conf, err := config.Load(file)
	if err != nil {
		return nil, err
	}

	debugf("Spreadsheet - ID:%s  range:%s", conf.ID, conf.Range)

	return conf, nil
}

func authorize(conf *config.Config) (*auth.Manager, error) {
	return auth.NewManager(conf.Credentials, conf.TokenPath, conf.Scopes, auth.NewLoopback(logger), logger)
}

// connect loads the configuration, authorises access and opens the ledger spreadsheet.
func connect(ctx context.Context, options *Options) (*config.Config, *sheet.Client, error) {
	conf, err := loadConfig(options)
	if err != nil {
		return nil, nil, err
	}

	manager, err := authorize(conf)
	if err != nil {
		return nil, nil, err
	}

	client, err := manager.Client(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if options.endpoint != "" {
		opts = append(opts, option.WithEndpoint(options.endpoint))
	}

	google, err := sheet.NewClient(ctx, conf.ID, logger, opts...)
	if err != nil {
		return nil, nil, err
	}

	return conf, google, nil
}
