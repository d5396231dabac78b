package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"revlens/internal/core"
	applog "revlens/internal/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// parseFilter builds a filter from the query string. The sentinel "All"
// and the empty string both mean unconstrained; for the date bounds "All"
// is normalized to empty so the range check stays inactive.
func parseFilter(r *http.Request) core.Filter {
	q := r.URL.Query()
	dateParam := func(name string) string {
		v := strings.TrimSpace(q.Get(name))
		if v == core.FilterAll {
			return ""
		}
		return v
	}
	return core.Filter{
		Partner:  strings.TrimSpace(q.Get("partner")),
		Product:  strings.TrimSpace(q.Get("product")),
		Country:  strings.TrimSpace(q.Get("country")),
		DateFrom: dateParam("date_from"),
		DateTo:   dateParam("date_to"),
	}
}

// DefaultDateRange returns the trailing seven-month window ending at the
// month before now, as inclusive "YYYY-MM" bounds.
func DefaultDateRange(now time.Time) (from, to string) {
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	start := end.AddDate(0, -6, 0)
	return start.Format("2006-01"), end.Format("2006-01")
}

// cacheKey canonicalizes the request into a stable cache key: path plus
// query parameters sorted by name.
func cacheKey(r *http.Request) string {
	q := r.URL.Query()
	if len(q) == 0 {
		return r.URL.Path
	}
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(r.URL.Path)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.Get(name)))
	}
	return b.String()
}

// serveCached writes a previously cached response for this query if one is
// still fresh, reporting whether it did.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request) bool {
	body, ok := s.queryCache.Get(cacheKey(r))
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return true
}

// respondCacheable marshals the value, stores it under the request's cache
// key and writes it out.
func (s *Server) respondCacheable(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Response encoding failed",
			applog.FieldPath, r.URL.Path,
			applog.FieldError, err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.queryCache.Set(cacheKey(r), body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
