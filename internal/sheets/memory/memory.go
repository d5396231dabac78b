// Package memory is an in-process TableReader used as the default backend
// and in tests. Tabs are plain record slices; ReadTable hands out copies so
// callers can never mutate the seed data.
package memory

import (
	"context"
	"sync"

	"revlens/internal/core"
	ports "revlens/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	tabs map[string][]core.Record
}

var _ ports.TableReader = (*Store)(nil)

// New builds a store over the given tabs.
func New(tabs map[string][]core.Record) *Store {
	copied := make(map[string][]core.Record, len(tabs))
	for name, records := range tabs {
		copied[name] = cloneRecords(records)
	}
	return &Store{tabs: copied}
}

// NewSample returns a store seeded with a small demo dataset in raw sheet
// form: dollar amounts, country abbreviations, mixed date formats.
func NewSample() *Store {
	return New(map[string][]core.Record{
		"Revenue":  sampleRevenue(),
		"Expenses": sampleExpenses(),
	})
}

// ReadTable returns the records of one tab. An unknown tab behaves like an
// empty one, matching a sheet whose header row is missing.
func (s *Store) ReadTable(_ context.Context, tab string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.tabs[tab]), nil
}

// SetTab replaces one tab's rows; test helper.
func (s *Store) SetTab(tab string, records []core.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[tab] = cloneRecords(records)
}

func cloneRecords(in []core.Record) []core.Record {
	if in == nil {
		return nil
	}
	out := make([]core.Record, len(in))
	for i, rec := range in {
		c := make(core.Record, len(rec))
		for k, v := range rec {
			c[k] = v
		}
		out[i] = c
	}
	return out
}

func revenueRow(id, partner, product, country, images, date, lineItem, amount string) core.Record {
	return core.Record{
		"Project Id":        id,
		"Partner":           partner,
		"Package":           product,
		"Country":           country,
		"Images":            images,
		"Revenue Date":      date,
		"Revenue Line Item": lineItem,
		"Revenue Amount":    amount,
	}
}

func expenseRow(id, partner, product, country, images, date, lineItem, amount string) core.Record {
	return core.Record{
		"Project ID":        id,
		"Partner":           partner,
		"Package":           product,
		"Country":           country,
		"Images":            images,
		"Expense Date":      date,
		"Expense Line Item": lineItem,
		"Expense Amount":    amount,
	}
}

func sampleRevenue() []core.Record {
	return []core.Record{
		revenueRow("P001", "Uber Eats", "Photo Session", "us", "120", "2024-01-10", "Deliverables Approved", "$1,800"),
		revenueRow("P001", "Uber Eats", "Photo Session", "us", "120", "2024-01-10", "Travel", "$250"),
		revenueRow("P002", "Uber Eats", "Video Package", "USA", "60", "2024-01-22", "Deliverables Approved", "$2,800"),
		revenueRow("P002", "Uber Eats", "Video Package", "USA", "60", "2024-01-22", "Last Minute Reschedule", "$350"),
		revenueRow("P003", "Deliveroo", "Photo Session", "ca", "200", "15/02/2024", "Deliverables Approved", "$2,500"),
		revenueRow("P003", "Deliveroo", "Photo Session", "ca", "200", "15/02/2024", "Additional Deliverables", "$400"),
		revenueRow("P004", "uber eats anz", "Photo Session", "uk", "150", "2024-03-05", "Deliverables Approved", "$2,100"),
		revenueRow("P005", "grubhub", "Drone Footage", "au", "50", "2024-04-18", "Deliverables Approved", "$1,900"),
		revenueRow("P005", "grubhub", "Drone Footage", "au", "50", "2024-04-18", "Travel", "$1,300"),
		revenueRow("P006", "Random LLC", "360 Tour", "de", "200", "2024-06-02", "Project Ordered", "$3,800"),
	}
}

func sampleExpenses() []core.Record {
	return []core.Record{
		expenseRow("P001", "Uber Eats", "Photo Session", "us", "120", "2024-01-12", "Base Amount", "800"),
		expenseRow("P001", "Uber Eats", "Photo Session", "us", "120", "2024-01-12", "Travel", "200"),
		expenseRow("P002", "Uber Eats", "Video Package", "USA", "75", "2024-01-25", "Base Amount", "1200"),
		expenseRow("P003", "Deliveroo", "Photo Session", "ca", "200", "18/02/2024", "Base Amount", "1100"),
		expenseRow("P004", "uber eats anz", "Photo Session", "uk", "150", "2024-03-08", "Base Amount", "950"),
		expenseRow("P005", "grubhub", "Drone Footage", "au", "50", "2024-04-20", "Base Amount", "700"),
		expenseRow("P005", "grubhub", "Drone Footage", "au", "50", "2024-04-20", "Travel", "1200"),
		expenseRow("P006", "Random LLC", "360 Tour", "de", "200", "2024-06-05", "Base Amount", "1600"),
	}
}
