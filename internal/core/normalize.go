package core

import "strings"

// countryMap folds the abbreviations and spellings seen across both tables
// into one display name. Unrecognized countries pass through trimmed.
var countryMap = map[string]string{
	"us": "USA", "usa": "USA", "united states": "USA",
	"au": "Australia", "australia": "Australia",
	"uk": "UK", "gb": "UK", "united kingdom": "UK",
	"ca": "Canada", "canada": "Canada",
	"nz": "New Zealand", "new zealand": "New Zealand",
	"de": "Germany", "germany": "Germany",
	"fr": "France", "france": "France",
	"sg": "Singapore", "singapore": "Singapore",
	"ie": "Ireland", "ireland": "Ireland",
}

// partnerMap fixes data-entry variants of the known partner names. Anything
// not listed passes through unchanged; this is canonicalization, not the
// display grouping below.
var partnerMap = map[string]string{
	"uber eats":     "Uber Eats",
	"ubereats":      "Uber Eats",
	"uber eats anz": "Uber Eats ANZ",
	"ubereats anz":  "Uber Eats ANZ",
	"deliveroo":     "Deliveroo",
	"grubhub":       "GrubHub",
	"grub hub":      "GrubHub",
}

// NamedPartners is the fixed allow-list used by PartnerGroup; every other
// canonical partner rolls up under PartnerOther for chart and report
// aggregation.
var NamedPartners = []string{"Uber Eats", "Uber Eats ANZ", "Deliveroo", "GrubHub"}

// PartnerOther is the catch-all display group for partners outside
// NamedPartners.
const PartnerOther = "Other"

// NormalizeCountry maps known country abbreviations and spellings to one
// canonical display name. Unrecognized values are returned trimmed, never
// dropped.
func NormalizeCountry(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}
	if canonical, ok := countryMap[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// NormalizePartner maps case-insensitive variants of known partner names to
// their canonical spelling. Unrecognized partners pass through unchanged.
func NormalizePartner(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := partnerMap[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// PartnerGroup classifies a canonical partner name for display aggregation:
// members of NamedPartners keep their name, everyone else becomes
// PartnerOther. This is a read-time view and never touches the stored
// partner value.
func PartnerGroup(partner string) string {
	for _, p := range NamedPartners {
		if partner == p {
			return p
		}
	}
	return PartnerOther
}
