package core

// Aggregator folds RawRows from both source tables into one Project per
// distinct project id. The fold is a two-phase merge: the first row seen for
// an id seeds the identity fields (partner, product, country, month), every
// row afterwards only accumulates numImages and bucket totals. Bucket sums
// are additive and numImages merges via max, so intra-table row order and
// which table is folded first never change the totals.
//
// The aggregator is not safe for concurrent use; callers own it exclusively
// while folding.
type Aggregator struct {
	projects map[string]*Project
	order    []string
	skipped  map[string]int
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		projects: make(map[string]*Project),
		skipped:  make(map[string]int),
	}
}

// Add folds one raw row into the collection. Rows with an empty project id
// are skipped entirely. Unparsable amounts and image counts contribute
// nothing; unmapped line-item labels are tallied but accumulate no bucket.
func (a *Aggregator) Add(row RawRow) {
	if row.ProjectID == "" {
		return
	}
	p := a.ensure(row)

	if imgs, ok := parseImages(row.Images); ok && imgs > p.NumImages {
		p.NumImages = imgs
	}

	switch row.Source {
	case SourceExpense:
		bucket, ok := MapExpenseLabel(row.LineItem)
		if !ok {
			a.markSkipped(row.LineItem)
			return
		}
		p.Expenses.add(bucket, ParseAmount(row.Amount))
	default:
		bucket, ok := MapRevenueLabel(row.LineItem)
		if !ok {
			a.markSkipped(row.LineItem)
			return
		}
		p.Revenue.add(bucket, ParseAmount(row.Amount))
	}
}

// ensure returns the project for the row's id, creating it seeded with the
// row's normalized identity fields if this is the first row for that id.
func (a *Aggregator) ensure(row RawRow) *Project {
	if p, ok := a.projects[row.ProjectID]; ok {
		return p
	}
	month := MonthUnknown
	if ym, ok := YearMonth(row.Date); ok {
		month = ym
	}
	p := &Project{
		ID:      row.ProjectID,
		Partner: NormalizePartner(row.Partner),
		Product: row.Product,
		Country: NormalizeCountry(row.Country),
		Month:   month,
	}
	a.projects[row.ProjectID] = p
	a.order = append(a.order, row.ProjectID)
	return p
}

func (a *Aggregator) markSkipped(label string) {
	if normalizeLabel(label) == "" {
		return
	}
	a.skipped[normalizeLabel(label)]++
}

// Projects returns the reconciled collection in first-seen order.
func (a *Aggregator) Projects() []Project {
	out := make([]Project, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.projects[id])
	}
	return out
}

// SkippedLabels reports how many rows carried each unmapped line-item
// label. Purely observational: skipped rows never change output values.
func (a *Aggregator) SkippedLabels() map[string]int {
	out := make(map[string]int, len(a.skipped))
	for k, v := range a.skipped {
		out[k] = v
	}
	return out
}
