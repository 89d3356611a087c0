package http

import (
	"net/http"
	"strconv"
	"strings"
)

// parseYearMonth extracts year and month from query parameters. Missing or
// invalid values fall back to the current year/month.
func (s *Server) parseYearMonth(r *http.Request) (year, month int) {
	now := s.now()
	year = now.Year()
	month = int(now.Month())

	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y >= 1 && y <= 9999 {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}

	return year, month
}
