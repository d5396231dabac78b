package core

import (
	"math"
	"testing"
)

func revenueRecord(id, date, lineItem, amount string) Record {
	return Record{
		"Project Id":        id,
		"Partner":           "Uber Eats",
		"Package":           "Photo Session",
		"Country":           "us",
		"Images":            "120",
		"Revenue Date":      date,
		"Revenue Line Item": lineItem,
		"Revenue Amount":    amount,
	}
}

func expenseRecord(id, lineItem, amount string) Record {
	return Record{
		"Project ID":        id,
		"Partner":           "Uber Eats",
		"Package":           "Photo Session",
		"Country":           "us",
		"Images":            "120",
		"Expense Date":      "2024-01-20",
		"Expense Line Item": lineItem,
		"Expense Amount":    amount,
	}
}

func TestNewRawRowIDAliases(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{Record{"Project Id": "A1"}, "A1"},
		{Record{"Project ID": "B2"}, "B2"},
		{Record{"project_id": "C3"}, "C3"},
		{Record{"Project Id": "", "project_id": "D4"}, "D4"},
		{Record{}, ""},
	}
	for i, tc := range cases {
		row := NewRawRow(tc.rec, SourceRevenue)
		if row.ProjectID != tc.want {
			t.Fatalf("case %d: ProjectID = %q, want %q", i, row.ProjectID, tc.want)
		}
	}
}

func TestAggregateEndToEnd(t *testing.T) {
	agg := NewAggregator()
	agg.Add(NewRawRow(revenueRecord("P1", "2024-01-15", "Travel", "$1,200.50"), SourceRevenue))
	agg.Add(NewRawRow(expenseRecord("P1", "Base Amount", "100"), SourceExpense))

	projects := agg.Projects()
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	p := projects[0]
	if p.Revenue.Travel != 1200.50 {
		t.Fatalf("revenue.travel = %v, want 1200.50", p.Revenue.Travel)
	}
	if p.Expenses.Base != 100 {
		t.Fatalf("expenses.base = %v, want 100", p.Expenses.Base)
	}
	if p.Partner != "Uber Eats" || p.Country != "USA" || p.Month != "2024-01" {
		t.Fatalf("unexpected identity fields: %+v", p)
	}

	m := Calculate(p)
	if m.TotalRevenue != 1200.50 || m.TotalExpenses != 100 || m.Margin != 1100.50 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
	if math.Abs(m.MarginPct-91.67) > 0.01 {
		t.Fatalf("marginPct = %v, want ~91.67", m.MarginPct)
	}
}

func TestAggregateFirstSeenWins(t *testing.T) {
	agg := NewAggregator()
	first := revenueRecord("P1", "2024-01-15", "Travel", "10")
	agg.Add(NewRawRow(first, SourceRevenue))

	second := revenueRecord("P1", "2024-03-01", "Travel", "20")
	second["Partner"] = "Deliveroo"
	second["Package"] = "Video Package"
	second["Country"] = "fr"
	agg.Add(NewRawRow(second, SourceRevenue))

	p := agg.Projects()[0]
	if p.Partner != "Uber Eats" || p.Product != "Photo Session" || p.Country != "USA" || p.Month != "2024-01" {
		t.Fatalf("identity fields were overwritten: %+v", p)
	}
	if p.Revenue.Travel != 30 {
		t.Fatalf("revenue.travel = %v, want 30 (accumulated)", p.Revenue.Travel)
	}
}

func TestAggregateNumImagesMax(t *testing.T) {
	// Max-merge must hold regardless of which source folds first.
	orders := [][]RawRow{
		{
			NewRawRow(Record{"Project Id": "P1", "Images": "50", "Revenue Line Item": "Travel", "Revenue Amount": "1"}, SourceRevenue),
			NewRawRow(Record{"Project Id": "P1", "Images": "80", "Expense Line Item": "Travel", "Expense Amount": "1"}, SourceExpense),
		},
		{
			NewRawRow(Record{"Project Id": "P1", "Images": "80", "Expense Line Item": "Travel", "Expense Amount": "1"}, SourceExpense),
			NewRawRow(Record{"Project Id": "P1", "Images": "50", "Revenue Line Item": "Travel", "Revenue Amount": "1"}, SourceRevenue),
		},
	}
	for i, rows := range orders {
		agg := NewAggregator()
		for _, r := range rows {
			agg.Add(r)
		}
		if got := agg.Projects()[0].NumImages; got != 80 {
			t.Fatalf("order %d: numImages = %v, want 80", i, got)
		}
	}

	// A later unparsable count never lowers the max.
	agg := NewAggregator()
	agg.Add(NewRawRow(Record{"Project Id": "P2", "Images": "40"}, SourceRevenue))
	agg.Add(NewRawRow(Record{"Project Id": "P2", "Images": "oops"}, SourceExpense))
	if got := agg.Projects()[0].NumImages; got != 40 {
		t.Fatalf("numImages = %v, want 40", got)
	}
}

func TestAggregateSkipsRows(t *testing.T) {
	agg := NewAggregator()

	// No id at all: skipped entirely.
	agg.Add(NewRawRow(Record{"Partner": "Uber Eats", "Revenue Line Item": "Travel", "Revenue Amount": "10"}, SourceRevenue))
	if len(agg.Projects()) != 0 {
		t.Fatalf("row without id must not create a project")
	}

	// Unmapped label: identity updates only, no bucket contribution.
	agg.Add(NewRawRow(revenueRecord("P1", "2024-01-15", "Random Thing", "500"), SourceRevenue))
	p := agg.Projects()[0]
	if p.Revenue.Total() != 0 {
		t.Fatalf("unmapped label contributed %v, want 0", p.Revenue.Total())
	}
	if p.NumImages != 120 {
		t.Fatalf("numImages = %v, want 120", p.NumImages)
	}
	if agg.SkippedLabels()["random thing"] != 1 {
		t.Fatalf("skipped label tally missing: %v", agg.SkippedLabels())
	}

	// Unparsable amount contributes zero, never NaN.
	agg.Add(NewRawRow(revenueRecord("P1", "2024-01-15", "Travel", "abc"), SourceRevenue))
	p = agg.Projects()[0]
	if p.Revenue.Travel != 0 || math.IsNaN(p.Revenue.Travel) {
		t.Fatalf("revenue.travel = %v, want 0", p.Revenue.Travel)
	}
}

func TestAggregateUnresolvedDate(t *testing.T) {
	agg := NewAggregator()
	agg.Add(NewRawRow(revenueRecord("P1", "", "Travel", "10"), SourceRevenue))
	if got := agg.Projects()[0].Month; got != MonthUnknown {
		t.Fatalf("month = %q, want %q", got, MonthUnknown)
	}
}

func TestAggregateFirstSeenOrder(t *testing.T) {
	agg := NewAggregator()
	for _, id := range []string{"C", "A", "B", "A"} {
		agg.Add(NewRawRow(Record{"Project Id": id}, SourceRevenue))
	}
	got := agg.Projects()
	want := []string{"C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}
