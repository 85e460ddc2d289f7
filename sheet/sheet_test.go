package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-sheets/finance-sheets/sheet/sheettest"
)

const ID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

var header = []any{"Date", "Amount", "Salary", "Total", "Reserve", "Spendable"}

func newClient(t *testing.T, server *sheettest.Server) *Client {
	client, err := NewClient(context.Background(), server.ID, log.New(io.Discard), server.Options()...)
	require.NoError(t, err)

	return client
}

func TestRead(t *testing.T) {
	server := sheettest.NewServer(ID, header, []any{"11-05-2024", "7625.43", "0", "7625.43", "1525", "6100"})
	defer server.Close()

	rows, err := newClient(t, server).Read(context.Background(), "Sheet1")
	require.NoError(t, err)

	expected := [][]any{
		header,
		{"11-05-2024", "7625.43", "0", "7625.43", "1525", "6100"},
	}

	assert.Equal(t, expected, rows)
}

func TestReadEmptySheet(t *testing.T) {
	server := sheettest.NewServer(ID)
	defer server.Close()

	rows, err := newClient(t, server).Read(context.Background(), "Sheet1")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppendThenRead(t *testing.T) {
	server := sheettest.NewServer(ID, header)
	defer server.Close()

	client := newClient(t, server)
	rows := [][]any{
		{"11-05-2024", "7625.43", "0", "7625.43", "1525", "6100"},
		{"01-06-2024", "1200", "50000", "51200", "10240", "40960"},
		{"01-07-2024", "3000.5", "50000", "53000.5", "10600", "42401"},
	}

	for i, row := range rows {
		appended, err := client.Append(context.Background(), "Sheet1", row)
		require.NoError(t, err)

		assert.Equal(t, int64(1), appended.Rows)
		assert.Equal(t, fmt.Sprintf("Sheet1!A%d:F%d", i+2, i+2), appended.Range)
	}

	for _, rq := range server.Appends() {
		assert.Equal(t, "USER_ENTERED", rq.ValueInputOption)
		assert.Equal(t, "INSERT_ROWS", rq.InsertDataOption)
		assert.Len(t, rq.Values, 1)
	}

	values, err := client.Read(context.Background(), "Sheet1")
	require.NoError(t, err)

	require.Len(t, values, 1+len(rows))
	assert.Equal(t, header, values[0])
	for i, row := range rows {
		assert.Equal(t, row, values[i+1])
	}
}

func TestReadWithRemoteError(t *testing.T) {
	server := sheettest.NewServer(ID, header)
	defer server.Close()

	server.Fail(http.StatusForbidden, "The caller does not have permission")

	_, err := newClient(t, server).Read(context.Background(), "Sheet1")

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr), "expected RemoteError, got %v", err)
	assert.Equal(t, http.StatusForbidden, remoteErr.Status)
	assert.Equal(t, "The caller does not have permission", remoteErr.Message)
}

func TestAppendWithRemoteError(t *testing.T) {
	server := sheettest.NewServer(ID, header)
	defer server.Close()

	server.Fail(http.StatusBadRequest, "Unable to parse range: Sheet9")

	_, err := newClient(t, server).Append(context.Background(), "Sheet9", []any{"11-05-2024"})

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr), "expected RemoteError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Len(t, server.Rows(), 1)
}

func TestURL(t *testing.T) {
	server := sheettest.NewServer(ID)
	defer server.Close()

	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", newClient(t, server).URL())
}

func TestRemoteErrorMessage(t *testing.T) {
	assert.Equal(t, "404 Not Found", (&RemoteError{Status: 404}).Error())
	assert.Equal(t, "403 denied", (&RemoteError{Status: 403, Message: "denied"}).Error())
}
