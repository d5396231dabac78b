package core

import (
	"errors"
	"strings"
)

// Source identifies which table a raw row came from. The two tables share
// most columns but carry source-prefixed date, line-item and amount headers.
type Source string

const (
	SourceRevenue Source = "revenue"
	SourceExpense Source = "expense"
)

// MonthUnknown is the sentinel month bucket for rows whose date could not be
// resolved.
const MonthUnknown = "Unknown"

type (
	// Record is one data row of a source table: trimmed header name to
	// trimmed cell value. Missing columns read as empty strings.
	Record map[string]string

	// RawRow is a Record lifted into named fields, with the project id
	// already resolved across its accepted header spellings. Rows are
	// ephemeral; they exist only to be folded into a Project.
	RawRow struct {
		Source    Source
		ProjectID string
		Partner   string
		Product   string
		Country   string
		Images    string
		Date      string
		LineItem  string
		Amount    string
	}

	// RevenueBuckets holds the accumulated revenue per canonical category.
	// All buckets are always present and start at zero.
	RevenueBuckets struct {
		DeliverablesApproved   float64 `json:"deliverablesApproved"`
		AdditionalDeliverables float64 `json:"additionalDeliverables"`
		LastMinuteReschedule   float64 `json:"lastMinuteReschedule"`
		Travel                 float64 `json:"travel"`
		Other                  float64 `json:"other"`
	}

	// ExpenseBuckets holds the accumulated expenses per canonical category.
	ExpenseBuckets struct {
		Base                   float64 `json:"base"`
		AdditionalDeliverables float64 `json:"additionalDeliverables"`
		LastMinuteReschedule   float64 `json:"lastMinuteReschedule"`
		Travel                 float64 `json:"travel"`
		Other                  float64 `json:"other"`
	}

	// Project is the canonical per-project record reconciled from both
	// tables. Identity fields are seeded by the first row seen for the id
	// and never overwritten; numImages and the buckets accumulate.
	Project struct {
		ID        string         `json:"id"`
		Partner   string         `json:"partner"`
		Product   string         `json:"product"`
		Country   string         `json:"country"`
		NumImages float64        `json:"numImages"`
		Month     string         `json:"month"`
		Revenue   RevenueBuckets `json:"revenue"`
		Expenses  ExpenseBuckets `json:"expenses"`
	}
)

var ErrUnknownGroupKey = errors.New("unknown group key")

// idHeaders are the accepted spellings of the project id column, tried in
// order; the first non-empty value wins.
var idHeaders = []string{"Project Id", "Project ID", "project_id"}

// NewRawRow lifts a Record from the given source table into a RawRow,
// resolving the project id aliases and the source-prefixed columns.
func NewRawRow(rec Record, src Source) RawRow {
	row := RawRow{
		Source:  src,
		Partner: rec["Partner"],
		Product: rec["Package"],
		Country: rec["Country"],
		Images:  rec["Images"],
	}
	for _, h := range idHeaders {
		if v := strings.TrimSpace(rec[h]); v != "" {
			row.ProjectID = v
			break
		}
	}
	switch src {
	case SourceExpense:
		row.Date = rec["Expense Date"]
		row.LineItem = rec["Expense Line Item"]
		row.Amount = rec["Expense Amount"]
	default:
		row.Date = rec["Revenue Date"]
		row.LineItem = rec["Revenue Line Item"]
		row.Amount = rec["Revenue Amount"]
	}
	return row
}

// Total sums all revenue buckets.
func (b RevenueBuckets) Total() float64 {
	return b.DeliverablesApproved + b.AdditionalDeliverables + b.LastMinuteReschedule + b.Travel + b.Other
}

// Total sums all expense buckets.
func (b ExpenseBuckets) Total() float64 {
	return b.Base + b.AdditionalDeliverables + b.LastMinuteReschedule + b.Travel + b.Other
}

func (b *RevenueBuckets) add(bucket RevenueBucket, amount float64) {
	switch bucket {
	case RevDeliverablesApproved:
		b.DeliverablesApproved += amount
	case RevAdditionalDeliverables:
		b.AdditionalDeliverables += amount
	case RevLastMinuteReschedule:
		b.LastMinuteReschedule += amount
	case RevTravel:
		b.Travel += amount
	case RevOther:
		b.Other += amount
	}
}

func (b *ExpenseBuckets) add(bucket ExpenseBucket, amount float64) {
	switch bucket {
	case ExpBase:
		b.Base += amount
	case ExpAdditionalDeliverables:
		b.AdditionalDeliverables += amount
	case ExpLastMinuteReschedule:
		b.LastMinuteReschedule += amount
	case ExpTravel:
		b.Travel += amount
	case ExpOther:
		b.Other += amount
	}
}
