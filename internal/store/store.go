// Package store holds the whole data set in memory: clients, jobs, events,
// filter catalogs and report history. Mutations operate on the live tree
// under a single lock; persistence happens by exporting the tree as one
// snapshot document and writing it wholesale.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/tallercr/workshop-api/internal/domain"
)

// ErrNotFound is returned when an operation references an id that is not
// in the store.
var ErrNotFound = errors.New("record not found")

// Store is the in-memory entity tree. All exported methods are safe for
// concurrent use. Returned records are copies; callers cannot mutate the
// tree except through Store methods.
type Store struct {
	mu sync.RWMutex

	clients       []domain.Client
	jobs          []domain.Job
	events        []domain.Event
	filters       domain.FilterCatalogs
	reports       []domain.Report
	reportsByDate map[string][]domain.Report

	ids idGenerator
	now func() time.Time
}

// New returns an empty store. Call Seed or Replace to populate it.
func New() *Store {
	return &Store{
		reportsByDate: make(map[string][]domain.Report),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// idGenerator issues millisecond-timestamp ids, bumped past the previous
// one when two ids land on the same millisecond. Ids are never reused
// within a session.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next(now time.Time) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// observe keeps the generator ahead of ids loaded from a snapshot
func (g *idGenerator) observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// NextID issues a fresh unique id
func (s *Store) NextID() int64 {
	return s.ids.next(s.now())
}

// Seed installs the default filter catalogs and sample calendar events
// used on first run with no snapshot to load.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = domain.FilterCatalogs{
		Materials: []domain.FilterItem{
			{ID: 1, Name: "Acrílico"},
			{ID: 2, Name: "Madera"},
			{ID: 3, Name: "Rotulación"},
			{ID: 4, Name: "Sublimación"},
			{ID: 5, Name: "Impresión"},
		},
		Statuses: []domain.FilterItem{
			{ID: 1, Name: string(domain.StatusSeguimiento)},
			{ID: 2, Name: string(domain.StatusCerrado)},
			{ID: 3, Name: string(domain.StatusPendiente)},
		},
		Companies: []domain.FilterItem{},
	}

	now := s.now()
	samples := []struct {
		title, description, time string
		daysAhead                int
	}{
		{"Reunión con cliente", "Reunión para discutir nuevos proyectos", "10:00", 2},
		{"Entrega de proyecto", "Entrega del proyecto de rotulación", "14:00", 5},
		{"Visita técnica", "Visita técnica para medición", "09:00", 7},
	}
	for _, sample := range samples {
		s.events = append(s.events, domain.Event{
			ID:          s.ids.next(now),
			Title:       sample.title,
			Description: sample.description,
			Date:        now.AddDate(0, 0, sample.daysAhead).Format("2006-01-02"),
			Time:        sample.time,
			CreatedAt:   now,
			LastUpdated: now,
		})
	}
}

// Export copies the whole tree into a snapshot document. LastSaved is
// stamped with the current time.
func (s *Store) Export() domain.SnapshotDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := domain.SnapshotDocument{
		Clients:       make([]domain.Client, 0, len(s.clients)),
		Jobs:          make([]domain.Job, 0, len(s.jobs)),
		Events:        make([]domain.Event, 0, len(s.events)),
		Filters:       copyFilters(s.filters),
		Reports:       append([]domain.Report{}, s.reports...),
		ReportsByDate: make(map[string][]domain.Report, len(s.reportsByDate)),
		LastSaved:     s.now(),
	}
	for i := range s.clients {
		doc.Clients = append(doc.Clients, cloneClient(s.clients[i]))
	}
	for i := range s.jobs {
		doc.Jobs = append(doc.Jobs, cloneJob(s.jobs[i]))
	}
	doc.Events = append(doc.Events, s.events...)
	for day, reports := range s.reportsByDate {
		doc.ReportsByDate[day] = append([]domain.Report(nil), reports...)
	}
	return doc
}

// Replace swaps the whole tree for the document's contents. Each top-level
// field that is absent in the document defaults independently: nil slices
// become empty, nil catalogs become the three empty catalogs, a nil
// by-date index becomes an empty map. The id generator is advanced past
// every loaded id so new records never collide with imported ones.
func (s *Store) Replace(doc domain.SnapshotDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = make([]domain.Client, 0, len(doc.Clients))
	for i := range doc.Clients {
		s.clients = append(s.clients, cloneClient(doc.Clients[i]))
	}
	s.jobs = make([]domain.Job, 0, len(doc.Jobs))
	for i := range doc.Jobs {
		s.jobs = append(s.jobs, cloneJob(doc.Jobs[i]))
	}
	s.events = append([]domain.Event{}, doc.Events...)
	s.filters = copyFilters(doc.Filters)
	if s.filters.Materials == nil {
		s.filters.Materials = []domain.FilterItem{}
	}
	if s.filters.Statuses == nil {
		s.filters.Statuses = []domain.FilterItem{}
	}
	if s.filters.Companies == nil {
		s.filters.Companies = []domain.FilterItem{}
	}
	s.reports = append([]domain.Report{}, doc.Reports...)
	s.reportsByDate = make(map[string][]domain.Report, len(doc.ReportsByDate))
	for day, reports := range doc.ReportsByDate {
		s.reportsByDate[day] = append([]domain.Report(nil), reports...)
	}

	for i := range s.clients {
		s.ids.observe(s.clients[i].ID)
	}
	for i := range s.jobs {
		s.ids.observe(s.jobs[i].ID)
		for _, f := range s.jobs[i].Files {
			s.ids.observe(f.ID)
		}
	}
	for i := range s.events {
		s.ids.observe(s.events[i].ID)
	}
}

// IsEmpty reports whether the store holds no records and no catalogs,
// i.e. nothing was ever loaded or seeded.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients) == 0 && len(s.jobs) == 0 && len(s.events) == 0 &&
		len(s.filters.Materials) == 0 && len(s.filters.Statuses) == 0 &&
		len(s.filters.Companies) == 0 && len(s.reports) == 0
}

func copyFilters(fc domain.FilterCatalogs) domain.FilterCatalogs {
	out := domain.FilterCatalogs{}
	if fc.Materials != nil {
		out.Materials = append([]domain.FilterItem{}, fc.Materials...)
	}
	if fc.Statuses != nil {
		out.Statuses = append([]domain.FilterItem{}, fc.Statuses...)
	}
	if fc.Companies != nil {
		out.Companies = append([]domain.FilterItem{}, fc.Companies...)
	}
	return out
}
