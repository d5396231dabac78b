package http

import (
	"net/http"
	"time"

	"revlens/internal/core"
	applog "revlens/internal/log"
)

// projectView pairs a canonical project with its derived metrics for the
// read API.
type projectView struct {
	core.Project
	Metrics core.Metrics `json:"metrics"`
}

type projectsResponse struct {
	Projects []projectView `json:"projects"`
	Count    int           `json:"count"`
	LastSync time.Time     `json:"lastSync"`
}

type syncResponse struct {
	Projects int       `json:"projects"`
	SyncedAt time.Time `json:"syncedAt"`
	// Default report window, so clients can seed their date filters.
	DefaultDateFrom string `json:"defaultDateFrom"`
	DefaultDateTo   string `json:"defaultDateTo"`
}

type summaryResponse struct {
	GroupBy string              `json:"groupBy"`
	Groups  []core.GroupSummary `json:"groups"`
}

type reportsResponse struct {
	RevenueByPartnerMonth    []core.MonthSeries `json:"revenueByPartnerMonth"`
	TravelByPartnerMonth     []core.MonthSeries `json:"travelByPartnerMonth"`
	MarginByPartnerMonth     []core.MonthSeries `json:"marginByPartnerMonth"`
	ExpensePerImageByProduct []core.ProductCost `json:"expensePerImageByProduct"`
}

// handleSync refreshes the snapshot from the source tables. A failed fetch
// leaves the previous snapshot untouched.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	projects, err := s.reconciler.Reconcile(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Sync failed",
			applog.FieldOperation, applog.OpSync,
			applog.FieldError, err)
		respondError(w, http.StatusBadGateway, "sync failed: "+err.Error())
		return
	}

	now := time.Now().UTC()
	s.mu.Lock()
	s.projects = projects
	s.lastSync = now
	s.mu.Unlock()

	// Cached query results describe the old snapshot.
	s.queryCache.Clear()

	s.logger.InfoContext(r.Context(), "Sync completed",
		applog.FieldOperation, applog.OpSync,
		applog.FieldProjectCount, len(projects))

	from, to := DefaultDateRange(now)
	respondJSON(w, http.StatusOK, syncResponse{
		Projects:        len(projects),
		SyncedAt:        now,
		DefaultDateFrom: from,
		DefaultDateTo:   to,
	})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if s.serveCached(w, r) {
		return
	}

	filter := parseFilter(r)
	projects, lastSync := s.snapshot()
	matched := filter.Apply(projects)

	views := make([]projectView, 0, len(matched))
	for _, p := range matched {
		views = append(views, projectView{Project: p, Metrics: core.Calculate(p)})
	}

	s.respondCacheable(w, r, projectsResponse{
		Projects: views,
		Count:    len(views),
		LastSync: lastSync,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	key := core.GroupKey(r.URL.Query().Get("group_by"))
	if key == "" {
		key = core.GroupByPartner
	}

	if s.serveCached(w, r) {
		return
	}

	filter := parseFilter(r)
	projects, _ := s.snapshot()

	groups, err := core.GroupBy(filter.Apply(projects), key)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unknown group key: "+string(key))
		return
	}

	s.respondCacheable(w, r, summaryResponse{GroupBy: string(key), Groups: groups})
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if s.serveCached(w, r) {
		return
	}

	filter := parseFilter(r)
	projects, _ := s.snapshot()

	s.respondCacheable(w, r, core.Totals(filter.Apply(projects)))
}

// handleReports serves the chart series. When the request carries no date
// bounds the trailing window ending at the previous month is applied, the
// same default the dashboard charts use.
func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if s.serveCached(w, r) {
		return
	}

	filter := parseFilter(r)
	if filter.DateFrom == "" && filter.DateTo == "" {
		filter.DateFrom, filter.DateTo = DefaultDateRange(time.Now())
	}

	projects, _ := s.snapshot()
	matched := filter.Apply(projects)

	s.respondCacheable(w, r, reportsResponse{
		RevenueByPartnerMonth:    core.RevenueByPartnerMonth(matched),
		TravelByPartnerMonth:     core.TravelByPartnerMonth(matched),
		MarginByPartnerMonth:     core.MarginByPartnerMonth(matched),
		ExpensePerImageByProduct: core.ExpensePerImageByProduct(matched, s.topProducts),
	})
}

// snapshot returns the current project collection and last sync time. The
// slice is shared read-only; handlers never mutate it.
func (s *Server) snapshot() ([]core.Project, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects, s.lastSync
}
