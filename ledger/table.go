package ledger

import (
	"fmt"
	"regexp"
	"strings"
)

// Table is a worksheet range rendered as strings, with the first worksheet row as the
// header.
type Table struct {
	Header  []string
	Records [][]string
}

// MakeTable converts the raw values returned for a worksheet range. Rows are padded or
// truncated to the width of the header and blank rows are skipped.
func MakeTable(rows [][]any) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	// ... header
	header := []string{}
	index := map[string]int{}
	for i, v := range rows[0] {
		h := clean(fmt.Sprintf("%v", v))
		k := normalise(h)
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", h)
		}

		index[k] = i
		header = append(header, h)
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	// ... records
	records := [][]string{}
	for _, row := range rows[1:] {
		record := make([]string, len(header))
		blank := true

		for i, h := range header {
			if ix := index[normalise(h)]; ix < len(row) && row[ix] != nil {
				record[i] = clean(fmt.Sprintf("%v", row[ix]))
			}

			if record[i] != "" {
				blank = false
			}
		}

		if !blank {
			records = append(records, record)
		}
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

// Missing returns the columns that are not present in the table header, compared
// case-insensitively and ignoring spaces.
func (t *Table) Missing(columns ...string) []string {
	missing := []string{}

	for _, c := range columns {
		found := false
		for _, h := range t.Header {
			if normalise(h) == normalise(c) {
				found = true
				break
			}
		}

		if !found {
			missing = append(missing, c)
		}
	}

	return missing
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}

func clean(s string) string {
	return regexp.MustCompile(`\s+`).ReplaceAllString(strings.TrimSpace(s), " ")
}
