package core

// Metrics are the cross-cutting financial figures derived from one Project.
// They are computed on demand and never stored.
type Metrics struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	Margin          float64 `json:"margin"`
	MarginPct       float64 `json:"marginPct"`
	RevenuePerImage float64 `json:"revenuePerImage"`
	ExpensePerImage float64 `json:"expensePerImage"`
}

// Calculate derives the metrics for a single project. Zero denominators are
// safe: marginPct is 0 unless total revenue is positive, the per-image
// figures are 0 when the project has no images.
func Calculate(p Project) Metrics {
	tr := p.Revenue.Total()
	te := p.Expenses.Total()
	m := Metrics{
		TotalRevenue:  tr,
		TotalExpenses: te,
		Margin:        tr - te,
	}
	if tr > 0 {
		m.MarginPct = (m.Margin / tr) * 100
	}
	if p.NumImages > 0 {
		m.RevenuePerImage = tr / p.NumImages
		m.ExpensePerImage = te / p.NumImages
	}
	return m
}

// Summary aggregates the same figures over a whole collection, plus the
// image and record counts, for dashboard-level KPIs.
type Summary struct {
	Projects        int     `json:"projects"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	NumImages       float64 `json:"numImages"`
	Margin          float64 `json:"margin"`
	MarginPct       float64 `json:"marginPct"`
	RevenuePerImage float64 `json:"revenuePerImage"`
	ExpensePerImage float64 `json:"expensePerImage"`
}

// Totals folds a collection into one Summary.
func Totals(projects []Project) Summary {
	s := Summary{Projects: len(projects)}
	for _, p := range projects {
		s.TotalRevenue += p.Revenue.Total()
		s.TotalExpenses += p.Expenses.Total()
		s.NumImages += p.NumImages
	}
	s.Margin = s.TotalRevenue - s.TotalExpenses
	if s.TotalRevenue > 0 {
		s.MarginPct = (s.Margin / s.TotalRevenue) * 100
	}
	if s.NumImages > 0 {
		s.RevenuePerImage = s.TotalRevenue / s.NumImages
		s.ExpensePerImage = s.TotalExpenses / s.NumImages
	}
	return s
}
