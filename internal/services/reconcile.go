package services

import (
	"context"
	"fmt"

	"revlens/internal/core"
	"revlens/internal/log"
	"revlens/internal/sheets"

	"golang.org/x/sync/errgroup"
)

// ReconcileService pulls the two source tabs and folds them into the
// canonical project collection. Fetching is concurrent and order-free; the
// fold itself is strictly sequential with exclusive ownership of the
// aggregator.
type ReconcileService struct {
	source     sheets.TableReader
	revenueTab string
	expenseTab string
	logger     *log.Logger
}

// NewReconcileService wires a reconcile service over a table source.
func NewReconcileService(source sheets.TableReader, revenueTab, expenseTab string, logger *log.Logger) *ReconcileService {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &ReconcileService{
		source:     source,
		revenueTab: revenueTab,
		expenseTab: expenseTab,
		logger:     logger.WithComponent(log.ComponentReconcile),
	}
}

// Reconcile fetches both tabs concurrently and folds revenue rows, then
// expense rows, into one collection. Any fetch failure aborts the whole
// attempt: a partially merged collection is never returned.
func (s *ReconcileService) Reconcile(ctx context.Context) ([]core.Project, error) {
	var revenueRecs, expenseRecs []core.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := s.source.ReadTable(gctx, s.revenueTab)
		if err != nil {
			return fmt.Errorf("fetch %s tab: %w", s.revenueTab, err)
		}
		revenueRecs = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.source.ReadTable(gctx, s.expenseTab)
		if err != nil {
			return fmt.Errorf("fetch %s tab: %w", s.expenseTab, err)
		}
		expenseRecs = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := core.NewAggregator()
	for _, rec := range revenueRecs {
		agg.Add(core.NewRawRow(rec, core.SourceRevenue))
	}
	for _, rec := range expenseRecs {
		agg.Add(core.NewRawRow(rec, core.SourceExpense))
	}

	projects := agg.Projects()
	if skipped := agg.SkippedLabels(); len(skipped) > 0 {
		// Surface unmapped labels so data-entry drift in the sheets
		// stays visible.
		for label, count := range skipped {
			s.logger.WarnContext(ctx, "Unmapped line item skipped",
				log.FieldLineItem, label, log.FieldRowCount, count)
		}
	}
	s.logger.InfoContext(ctx, "Reconciliation completed",
		log.FieldProjectCount, len(projects),
		"revenue_rows", len(revenueRecs),
		"expense_rows", len(expenseRecs))

	return projects, nil
}
