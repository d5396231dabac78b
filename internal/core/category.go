package core

import (
	"fmt"
	"strings"
)

// RevenueBucket and ExpenseBucket are the closed category sets each raw
// line-item label resolves into.
type (
	RevenueBucket string
	ExpenseBucket string
)

const (
	RevDeliverablesApproved   RevenueBucket = "deliverablesApproved"
	RevAdditionalDeliverables RevenueBucket = "additionalDeliverables"
	RevLastMinuteReschedule   RevenueBucket = "lastMinuteReschedule"
	RevTravel                 RevenueBucket = "travel"
	RevOther                  RevenueBucket = "other"

	ExpBase                   ExpenseBucket = "base"
	ExpAdditionalDeliverables ExpenseBucket = "additionalDeliverables"
	ExpLastMinuteReschedule   ExpenseBucket = "lastMinuteReschedule"
	ExpTravel                 ExpenseBucket = "travel"
	ExpOther                  ExpenseBucket = "other"
)

// revenueMap and expenseMap are fixed process-wide configuration. Keys are
// stored lowercase; lookups lowercase and trim the label first. Several
// edit-driven labels intentionally share the additionalDeliverables bucket.
var revenueMap = map[string]RevenueBucket{
	"additional deliverables": RevAdditionalDeliverables,
	"additional location":     RevAdditionalDeliverables,
	"creative removed":        RevOther,
	"deliverables approved":   RevDeliverablesApproved,
	"extra time on site":      RevAdditionalDeliverables,
	"fewer deliverables":      RevAdditionalDeliverables,
	"file":                    RevOther,
	"last minute reschedule":  RevLastMinuteReschedule,
	"other":                   RevOther,
	"project cancelled":       RevOther,
	"project ordered":         RevDeliverablesApproved,
	"travel":                  RevTravel,
}

var expenseMap = map[string]ExpenseBucket{
	"base amount":             ExpBase,
	"additional deliverables": ExpAdditionalDeliverables,
	"last minute reschedule":  ExpLastMinuteReschedule,
	"travel":                  ExpTravel,
	"\\n":                     ExpLastMinuteReschedule,
	"other":                   ExpOther,
	"additional location":     ExpAdditionalDeliverables,
	"extra time on site":      ExpAdditionalDeliverables,
	"fewer deliverables":      ExpAdditionalDeliverables,
}

// MapRevenueLabel resolves a revenue line-item label to its bucket. Matching
// is exact after trimming and lowercasing; unmapped labels report ok=false
// and the row contributes to no bucket.
func MapRevenueLabel(label string) (RevenueBucket, bool) {
	b, ok := revenueMap[normalizeLabel(label)]
	return b, ok
}

// MapExpenseLabel resolves an expense line-item label to its bucket.
func MapExpenseLabel(label string) (ExpenseBucket, bool) {
	b, ok := expenseMap[normalizeLabel(label)]
	return b, ok
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ValidateTables checks the static category tables at startup: every key
// must already be in trimmed lowercase form and every target bucket must
// belong to the closed set. A failure here is a configuration error and the
// process should not continue serving.
func ValidateTables() error {
	validRev := map[RevenueBucket]bool{
		RevDeliverablesApproved: true, RevAdditionalDeliverables: true,
		RevLastMinuteReschedule: true, RevTravel: true, RevOther: true,
	}
	validExp := map[ExpenseBucket]bool{
		ExpBase: true, ExpAdditionalDeliverables: true,
		ExpLastMinuteReschedule: true, ExpTravel: true, ExpOther: true,
	}
	if len(revenueMap) == 0 || len(expenseMap) == 0 {
		return fmt.Errorf("category tables must not be empty")
	}
	for k, v := range revenueMap {
		if k != normalizeLabel(k) {
			return fmt.Errorf("revenue label %q is not trimmed lowercase", k)
		}
		if !validRev[v] {
			return fmt.Errorf("revenue label %q maps to unknown bucket %q", k, v)
		}
	}
	for k, v := range expenseMap {
		if k != normalizeLabel(k) {
			return fmt.Errorf("expense label %q is not trimmed lowercase", k)
		}
		if !validExp[v] {
			return fmt.Errorf("expense label %q maps to unknown bucket %q", k, v)
		}
	}
	return nil
}
