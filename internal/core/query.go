package core

import "sort"

// FilterAll is the sentinel meaning "no constraint" for the categorical
// filter fields; an empty string behaves the same way.
const FilterAll = "All"

// Filter describes equality constraints on the categorical fields plus an
// inclusive month range. DateFrom/DateTo compare lexicographically against
// the project month, which is sound for well-formed "YYYY-MM" keys; once
// either bound is set, projects without a well-formed month (including
// MonthUnknown) are excluded.
type Filter struct {
	Partner  string
	Product  string
	Country  string
	DateFrom string
	DateTo   string
}

func unconstrained(v string) bool { return v == "" || v == FilterAll }

// Matches reports whether a single project passes the filter.
func (f Filter) Matches(p Project) bool {
	if !unconstrained(f.Partner) && p.Partner != f.Partner {
		return false
	}
	if !unconstrained(f.Product) && p.Product != f.Product {
		return false
	}
	if !unconstrained(f.Country) && p.Country != f.Country {
		return false
	}
	if f.DateFrom != "" || f.DateTo != "" {
		if !IsYearMonth(p.Month) {
			return false
		}
		if f.DateFrom != "" && p.Month < f.DateFrom {
			return false
		}
		if f.DateTo != "" && p.Month > f.DateTo {
			return false
		}
	}
	return true
}

// Apply returns the matching subset in the original relative order. The
// input collection is never mutated.
func (f Filter) Apply(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// GroupKey selects the partition field for GroupBy.
type GroupKey string

const (
	GroupByPartner GroupKey = "partner"
	GroupByProduct GroupKey = "product"
	GroupByCountry GroupKey = "country"
)

// GroupSummary is the aggregate for one partition of the collection.
type GroupSummary struct {
	Key             string  `json:"key"`
	Projects        int     `json:"projects"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	NumImages       float64 `json:"numImages"`
	Margin          float64 `json:"margin"`
	MarginPct       float64 `json:"marginPct"`
	RevenuePerImage float64 `json:"revenuePerImage"`
	ExpensePerImage float64 `json:"expensePerImage"`
}

// GroupBy partitions the collection by the given key and aggregates each
// partition. Groups come back sorted by descending aggregate revenue; ties
// keep their first-seen relative order.
func GroupBy(projects []Project, key GroupKey) ([]GroupSummary, error) {
	field, err := fieldSelector(key)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	groups := make([]GroupSummary, 0)
	for _, p := range projects {
		k := field(p)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, GroupSummary{Key: k})
		}
		groups[i].Projects++
		groups[i].TotalRevenue += p.Revenue.Total()
		groups[i].TotalExpenses += p.Expenses.Total()
		groups[i].NumImages += p.NumImages
	}
	for i := range groups {
		g := &groups[i]
		g.Margin = g.TotalRevenue - g.TotalExpenses
		if g.TotalRevenue > 0 {
			g.MarginPct = (g.Margin / g.TotalRevenue) * 100
		}
		if g.NumImages > 0 {
			g.RevenuePerImage = g.TotalRevenue / g.NumImages
			g.ExpensePerImage = g.TotalExpenses / g.NumImages
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalRevenue > groups[j].TotalRevenue
	})
	return groups, nil
}

func fieldSelector(key GroupKey) (func(Project) string, error) {
	switch key {
	case GroupByPartner:
		return func(p Project) string { return p.Partner }, nil
	case GroupByProduct:
		return func(p Project) string { return p.Product }, nil
	case GroupByCountry:
		return func(p Project) string { return p.Country }, nil
	default:
		return nil, ErrUnknownGroupKey
	}
}
