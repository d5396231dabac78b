package core

import "testing"

func TestNormalizeCountry(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"us", "USA"},
		{"USA", "USA"},
		{"United States", "USA"},
		{" uk ", "UK"},
		{"gb", "UK"},
		{"new zealand", "New Zealand"},
		{"Portugal", "Portugal"}, // unrecognized passes through trimmed
		{"  Portugal  ", "Portugal"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCountry(tc.in); got != tc.out {
			t.Fatalf("NormalizeCountry(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestNormalizePartner(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"grubhub", "GrubHub"},
		{"GRUBHUB", "GrubHub"},
		{"Grub Hub", "GrubHub"},
		{"uber eats", "Uber Eats"},
		{"UberEats ANZ", "Uber Eats ANZ"},
		{"Deliveroo", "Deliveroo"},
		{"Random LLC", "Random LLC"}, // unrecognized passes through
	}
	for _, tc := range cases {
		if got := NormalizePartner(tc.in); got != tc.out {
			t.Fatalf("NormalizePartner(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestPartnerGroup(t *testing.T) {
	for _, p := range NamedPartners {
		if got := PartnerGroup(p); got != p {
			t.Fatalf("PartnerGroup(%q) = %q, want %q", p, got, p)
		}
	}
	for _, p := range []string{"Random LLC", "Other Co", ""} {
		if got := PartnerGroup(p); got != PartnerOther {
			t.Fatalf("PartnerGroup(%q) = %q, want %q", p, got, PartnerOther)
		}
	}
}
