package google

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"revlens/internal/core"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ErrInvalidSheetURL is returned when a spreadsheet URL carries no id.
var ErrInvalidSheetURL = errors.New("invalid Google Sheets URL")

// ExtractSpreadsheetID pulls the spreadsheet id out of a full Sheets URL.
func ExtractSpreadsheetID(url string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", ErrInvalidSheetURL
	}
	return m[1], nil
}

// recordsFromValues converts a values matrix (as returned by the Sheets API)
// into Records. The first row is the header row; cells are trimmed and
// missing trailing cells read as empty strings. No headers means no records.
func recordsFromValues(values [][]interface{}) []core.Record {
	if len(values) == 0 {
		return nil
	}
	headers := toStrings(values[0])
	records := make([]core.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		cols := toStrings(row)
		rec := make(core.Record, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(cols) {
				rec[h] = cols[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
