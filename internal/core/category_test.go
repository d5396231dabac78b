package core

import "testing"

func TestMapRevenueLabel(t *testing.T) {
	cases := []struct {
		in     string
		bucket RevenueBucket
		ok     bool
	}{
		{"travel", RevTravel, true},
		{"Travel", RevTravel, true},
		{" TRAVEL ", RevTravel, true},
		{"Deliverables Approved", RevDeliverablesApproved, true},
		{"Project Ordered", RevDeliverablesApproved, true},
		{"Additional Location", RevAdditionalDeliverables, true},
		{"Extra Time On Site", RevAdditionalDeliverables, true},
		{"Fewer Deliverables", RevAdditionalDeliverables, true},
		{"Creative Removed", RevOther, true},
		{"Project Cancelled", RevOther, true},
		{"Random Thing", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		bucket, ok := MapRevenueLabel(tc.in)
		if bucket != tc.bucket || ok != tc.ok {
			t.Fatalf("MapRevenueLabel(%q) = (%q, %v), want (%q, %v)", tc.in, bucket, ok, tc.bucket, tc.ok)
		}
	}
}

func TestMapExpenseLabel(t *testing.T) {
	cases := []struct {
		in     string
		bucket ExpenseBucket
		ok     bool
	}{
		{"Base Amount", ExpBase, true},
		{"base amount", ExpBase, true},
		{"Last Minute Reschedule", ExpLastMinuteReschedule, true},
		{`\n`, ExpLastMinuteReschedule, true},
		{"Travel", ExpTravel, true},
		{"Additional Deliverables", ExpAdditionalDeliverables, true},
		{"Base", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		bucket, ok := MapExpenseLabel(tc.in)
		if bucket != tc.bucket || ok != tc.ok {
			t.Fatalf("MapExpenseLabel(%q) = (%q, %v), want (%q, %v)", tc.in, bucket, ok, tc.bucket, tc.ok)
		}
	}
}

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("expected valid tables, got %v", err)
	}
}
