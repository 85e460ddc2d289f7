// Package sheet wraps the Google Sheets values API for the finance ledger worksheet.
package sheet

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
	id      string
	log     *log.Logger
}

// Appended describes the range written by Append, as reported by the server.
type Appended struct {
	Range string
	Rows  int64
}

// NewClient opens a handle on the spreadsheet. Callers normally supply
// option.WithHTTPClient with an authorised client.
func NewClient(ctx context.Context, id string, logger *log.Logger, opts ...option.ClientOption) (*Client, error) {
	if logger == nil {
		logger = log.Default()
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return &Client{
		service: service,
		id:      id,
		log:     logger,
	}, nil
}

// URL returns the browser URL of the spreadsheet.
func (c *Client) URL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", c.id)
}

// Read returns all rows in the range, the first row being the header.
func (c *Client) Read(ctx context.Context, area string) ([][]any, error) {
	c.log.Debug("reading spreadsheet", "id", c.id, "range", area)

	response, err := c.service.Spreadsheets.Values.Get(c.id, area).Context(ctx).Do()
	if err != nil {
		return nil, remote(err)
	}

	return response.Values, nil
}

// Append inserts a single row after the last row of the table in the range. It is not
// idempotent: repeating a call that timed out may duplicate the row.
func (c *Client) Append(ctx context.Context, area string, row []any) (*Appended, error) {
	c.log.Debug("appending row", "id", c.id, "range", area, "row", row)

	rq := sheets.ValueRange{
		Values: [][]any{row},
	}

	response, err := c.service.Spreadsheets.Values.Append(c.id, area, &rq).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, remote(err)
	}

	appended := Appended{}
	if response.Updates != nil {
		appended.Range = response.Updates.UpdatedRange
		appended.Rows = response.Updates.UpdatedRows
	}

	return &appended, nil
}
