package store

import (
	"github.com/tallercr/workshop-api/internal/domain"
)

// AppendReport records one report export in the flat history and under its
// export day ("YYYY-MM-DD" derived from the record's Date).
func (s *Store) AppendReport(r domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append(s.reports, r)
	day := r.Date.Format("2006-01-02")
	s.reportsByDate[day] = append(s.reportsByDate[day], r)
}

// ReportHistory returns the flat export history and the by-day index
func (s *Store) ReportHistory() ([]domain.Report, map[string][]domain.Report) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := append([]domain.Report{}, s.reports...)
	byDate := make(map[string][]domain.Report, len(s.reportsByDate))
	for day, rs := range s.reportsByDate {
		byDate[day] = append([]domain.Report(nil), rs...)
	}
	return reports, byDate
}
