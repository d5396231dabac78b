package core

import "sort"

// MonthSeries is one month's value per partner display group, the row shape
// behind the stacked monthly charts.
type MonthSeries struct {
	Month  string             `json:"month"`
	Values map[string]float64 `json:"values"`
}

// ProductCost is the per-image expense split for one product: core covers
// base plus additional deliverables, variable covers reschedules, travel and
// other.
type ProductCost struct {
	Product          string  `json:"product"`
	Partner          string  `json:"partner"`
	CorePerImage     float64 `json:"corePerImage"`
	VariablePerImage float64 `json:"variablePerImage"`
}

// chartGroups returns the display groups in chart order: the named partners
// followed by the catch-all.
func chartGroups() []string {
	return append(append([]string(nil), NamedPartners...), PartnerOther)
}

// RevenueByPartnerMonth totals revenue per month and partner group, months
// ascending.
func RevenueByPartnerMonth(projects []Project) []MonthSeries {
	return partnerMonthSeries(projects, func(p Project) float64 { return p.Revenue.Total() })
}

// TravelByPartnerMonth totals the travel expense bucket per month and
// partner group.
func TravelByPartnerMonth(projects []Project) []MonthSeries {
	return partnerMonthSeries(projects, func(p Project) float64 { return p.Expenses.Travel })
}

// MarginByPartnerMonth totals revenue minus expenses per month and partner
// group.
func MarginByPartnerMonth(projects []Project) []MonthSeries {
	return partnerMonthSeries(projects, func(p Project) float64 {
		return p.Revenue.Total() - p.Expenses.Total()
	})
}

func partnerMonthSeries(projects []Project, value func(Project) float64) []MonthSeries {
	byMonth := make(map[string]map[string]float64)
	months := make([]string, 0)
	for _, p := range projects {
		if p.Month == "" {
			continue
		}
		row, ok := byMonth[p.Month]
		if !ok {
			row = make(map[string]float64, len(NamedPartners)+1)
			for _, g := range chartGroups() {
				row[g] = 0
			}
			byMonth[p.Month] = row
			months = append(months, p.Month)
		}
		row[PartnerGroup(p.Partner)] += value(p)
	}
	sort.Strings(months)
	out := make([]MonthSeries, 0, len(months))
	for _, m := range months {
		out = append(out, MonthSeries{Month: m, Values: byMonth[m]})
	}
	return out
}

// ExpensePerImageByProduct ranks products by project count, keeps the top
// limit of them ordered so same-partner products sit together, and reports
// each one's core and variable expense per image. Products whose projects
// carry no images are dropped. Partner attribution is last-seen, matching
// how the products are labeled upstream.
func ExpensePerImageByProduct(projects []Project, limit int) []ProductCost {
	counts := make(map[string]int)
	partner := make(map[string]string)
	for _, p := range projects {
		counts[p.Product]++
		partner[p.Product] = p.Partner
	}

	products := make([]string, 0, len(counts))
	for prod := range counts {
		products = append(products, prod)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return counts[products[i]] > counts[products[j]]
	})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	sort.SliceStable(products, func(i, j int) bool {
		if partner[products[i]] != partner[products[j]] {
			return partner[products[i]] < partner[products[j]]
		}
		return products[i] < products[j]
	})

	out := make([]ProductCost, 0, len(products))
	for _, prod := range products {
		var images, fixed, variable float64
		for _, p := range projects {
			if p.Product != prod {
				continue
			}
			images += p.NumImages
			fixed += p.Expenses.Base + p.Expenses.AdditionalDeliverables
			variable += p.Expenses.LastMinuteReschedule + p.Expenses.Travel + p.Expenses.Other
		}
		if images == 0 {
			continue
		}
		out = append(out, ProductCost{
			Product:          prod,
			Partner:          partner[prod],
			CorePerImage:     fixed / images,
			VariablePerImage: variable / images,
		})
	}
	return out
}
