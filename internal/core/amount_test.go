package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"$1,200.50", 1200.50},
		{"1200.50", 1200.50},
		{"$100", 100},
		{" 2.5 ", 2.5},
		{"-45.10", -45.10},
		{"", 0},
		{"abc", 0},
		{"$", 0},
		{"1.2.3", 0},
		{"NaN", 0},
		{"Inf", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.out {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.out)
		}
	}
}

func TestParseImages(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"120", 120, true},
		{"80.5", 80.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseImages(tc.in)
		if got != tc.out || ok != tc.ok {
			t.Fatalf("parseImages(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.out, tc.ok)
		}
	}
}
