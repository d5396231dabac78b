package core

import "testing"

func reportFixture() []Project {
	return []Project{
		{ID: "P1", Partner: "Uber Eats", Product: "Photo Session", Month: "2024-02",
			Revenue: RevenueBuckets{DeliverablesApproved: 1000}, Expenses: ExpenseBuckets{Base: 300, Travel: 100}, NumImages: 100},
		{ID: "P2", Partner: "Uber Eats", Product: "Photo Session", Month: "2024-01",
			Revenue: RevenueBuckets{DeliverablesApproved: 2000}, Expenses: ExpenseBuckets{Base: 500, Travel: 200}, NumImages: 100},
		{ID: "P3", Partner: "Other Co", Product: "Video Package", Month: "2024-01",
			Revenue: RevenueBuckets{Travel: 400}, Expenses: ExpenseBuckets{Travel: 300, LastMinuteReschedule: 100}, NumImages: 50},
	}
}

func TestRevenueByPartnerMonth(t *testing.T) {
	series := RevenueByPartnerMonth(reportFixture())
	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}
	if series[0].Month != "2024-01" || series[1].Month != "2024-02" {
		t.Fatalf("months not ascending: %v, %v", series[0].Month, series[1].Month)
	}
	jan := series[0].Values
	if jan["Uber Eats"] != 2000 {
		t.Fatalf("jan Uber Eats = %v, want 2000", jan["Uber Eats"])
	}
	// Non-named partners roll up under Other.
	if jan[PartnerOther] != 400 {
		t.Fatalf("jan Other = %v, want 400", jan[PartnerOther])
	}
	if jan["Deliveroo"] != 0 {
		t.Fatalf("absent group must still be present at zero")
	}
}

func TestTravelAndMarginByPartnerMonth(t *testing.T) {
	travel := TravelByPartnerMonth(reportFixture())
	if travel[0].Values["Uber Eats"] != 200 || travel[0].Values[PartnerOther] != 300 {
		t.Fatalf("unexpected travel series: %+v", travel[0].Values)
	}

	margin := MarginByPartnerMonth(reportFixture())
	if margin[0].Values["Uber Eats"] != 1300 { // 2000 - 700
		t.Fatalf("jan Uber Eats margin = %v, want 1300", margin[0].Values["Uber Eats"])
	}
	if margin[0].Values[PartnerOther] != 0 { // 400 - 400
		t.Fatalf("jan Other margin = %v, want 0", margin[0].Values[PartnerOther])
	}
}

func TestExpensePerImageByProduct(t *testing.T) {
	costs := ExpensePerImageByProduct(reportFixture(), 10)
	if len(costs) != 2 {
		t.Fatalf("expected 2 products, got %d", len(costs))
	}
	// Sorted by partner then product: "Other Co" before "Uber Eats".
	if costs[0].Product != "Video Package" || costs[1].Product != "Photo Session" {
		t.Fatalf("unexpected product order: %v, %v", costs[0].Product, costs[1].Product)
	}
	photo := costs[1]
	// Core: (300+500)/200 images; variable: (100+200)/200.
	if photo.CorePerImage != 4 || photo.VariablePerImage != 1.5 {
		t.Fatalf("photo session cost = %+v", photo)
	}

	// Zero-image products are dropped.
	costs = ExpensePerImageByProduct([]Project{{Product: "Empty", Expenses: ExpenseBuckets{Base: 10}}}, 10)
	if len(costs) != 0 {
		t.Fatalf("zero-image product must be dropped, got %+v", costs)
	}

	// Limit keeps the most frequent products.
	costs = ExpensePerImageByProduct(reportFixture(), 1)
	if len(costs) != 1 || costs[0].Product != "Photo Session" {
		t.Fatalf("limit=1 should keep Photo Session, got %+v", costs)
	}
}
