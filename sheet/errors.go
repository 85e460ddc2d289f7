package sheet

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// RemoteError is a non-2xx response from the Google Sheets API.
type RemoteError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.Status)
	}

	return fmt.Sprintf("%d %s", e.Status, message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func remote(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &RemoteError{
			Status:  apiErr.Code,
			Message: apiErr.Message,
			Err:     err,
		}
	}

	return err
}
