// Package sheettest provides an in-memory stand-in for the Google Sheets values API.
package sheettest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"google.golang.org/api/option"
)

// Append records a values.append request.
type Append struct {
	Range            string
	ValueInputOption string
	InsertDataOption string
	Values           [][]any
}

// Server serves values.get and values.append for a single spreadsheet.
type Server struct {
	*httptest.Server
	ID string

	mu      sync.Mutex
	rows    [][]any
	appends []Append
	reads   int
	status  int
	message string
}

func NewServer(id string, rows ...[]any) *Server {
	s := &Server{
		ID:   id,
		rows: rows,
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

// Options returns the client options that direct a Sheets client to the server.
func (s *Server) Options() []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(s.URL + "/"),
		option.WithHTTPClient(s.Client()),
	}
}

// Fail makes every subsequent request return an error response.
func (s *Server) Fail(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.message = message
}

func (s *Server) Rows() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([][]any{}, s.rows...)
}

func (s *Server) Appends() []Append {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Append{}, s.appends...)
}

func (s *Server) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reads
}

func (s *Server) handle(w http.ResponseWriter, rq *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if s.status != 0 {
		w.WriteHeader(s.status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    s.status,
				"message": s.message,
			},
		})
		return
	}

	prefix := fmt.Sprintf("/v4/spreadsheets/%s/values/", s.ID)
	if !strings.HasPrefix(rq.URL.Path, prefix) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    http.StatusNotFound,
				"message": "Requested entity was not found.",
			},
		})
		return
	}

	area := strings.TrimPrefix(rq.URL.Path, prefix)

	switch {
	case rq.Method == http.MethodPost && strings.HasSuffix(area, ":append"):
		area = strings.TrimSuffix(area, ":append")

		body := struct {
			Values [][]any `json:"values"`
		}{}

		if err := json.NewDecoder(rq.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": http.StatusBadRequest, "message": err.Error()},
			})
			return
		}

		s.appends = append(s.appends, Append{
			Range:            area,
			ValueInputOption: rq.URL.Query().Get("valueInputOption"),
			InsertDataOption: rq.URL.Query().Get("insertDataOption"),
			Values:           body.Values,
		})

		first := len(s.rows) + 1
		s.rows = append(s.rows, body.Values...)

		json.NewEncoder(w).Encode(map[string]any{
			"spreadsheetId": s.ID,
			"tableRange":    area,
			"updates": map[string]any{
				"spreadsheetId": s.ID,
				"updatedRange":  fmt.Sprintf("%s!A%d:F%d", area, first, len(s.rows)),
				"updatedRows":   len(body.Values),
			},
		})

	case rq.Method == http.MethodGet:
		s.reads++

		response := map[string]any{
			"range":          area,
			"majorDimension": "ROWS",
		}

		if len(s.rows) > 0 {
			response["values"] = s.rows
		}

		json.NewEncoder(w).Encode(response)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
