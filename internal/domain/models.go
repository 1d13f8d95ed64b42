package domain

import (
	"time"
)

// StatusSeguimiento etc. are the statuses the propagation and reporting
// rules understand. Status is an open string type: catalog entries may add
// values beyond these, and such values pass through untouched.
type Status string

const (
	StatusSeguimiento Status = "seguimiento"
	StatusCerrado     Status = "cerrado"
	StatusPendiente   Status = "pendiente"
)

// IsKnown reports whether the status participates in status propagation
// and the clients-by-status report.
func (s Status) IsKnown() bool {
	switch s {
	case StatusSeguimiento, StatusCerrado, StatusPendiente:
		return true
	}
	return false
}

// AuthorizedPerson is a person allowed to act on a client's behalf,
// e.g. pick up finished work. ID holds their identity-card number.
type AuthorizedPerson struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Note  string `json:"note,omitempty"`
}

// Client represents a customer of the shop
type Client struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Phone             string             `json:"phone,omitempty"`
	Email             string             `json:"email,omitempty"`
	Address           string             `json:"address,omitempty"`
	Company           string             `json:"company,omitempty"`
	Status            Status             `json:"status,omitempty"`
	Avatar            string             `json:"avatar,omitempty"`
	AuthorizedPersons []AuthorizedPerson `json:"authorizedPersons"`
	CreatedAt         time.Time          `json:"createdAt"`
	LastUpdated       time.Time          `json:"lastUpdated"`
}

// SortKey returns the timestamp used when ordering clients by recency:
// LastUpdated when present, CreatedAt otherwise.
func (c *Client) SortKey() time.Time {
	if !c.LastUpdated.IsZero() {
		return c.LastUpdated
	}
	return c.CreatedAt
}

// FileType classifies an attachment for preview purposes
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypePDF      FileType = "pdf"
	FileTypeDocument FileType = "document"
)

// JobFile is an attachment on a job. URL holds either an external link or,
// for local uploads, a data URI. IsLocal distinguishes the two.
type JobFile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	IsLocal   bool   `json:"isLocal,omitempty"`
}

// Calculator holds the cost/pricing figures computed for a job. The whole
// block is stored verbatim on the job when saved and never recomputed when
// other job fields change.
type Calculator struct {
	Publicity        float64 `json:"publicity"`
	Services         float64 `json:"services"`
	Transport        float64 `json:"transport"`
	ProviderCost     float64 `json:"providerCost"`
	PackagingCost    float64 `json:"packagingCost"`
	DesignCost       float64 `json:"designCost"`
	InstallationCost float64 `json:"installationCost"`
	ProfitMargin     float64 `json:"profitMargin"`
	PriceWithoutIva  float64 `json:"priceWithoutIva"`
	Iva              float64 `json:"iva"`
	FinalPrice       float64 `json:"finalPrice"`
	TotalCost        float64 `json:"totalCost"`
}

// Job is a work order owned by exactly one client
type Job struct {
	ID            int64       `json:"id"`
	ClientID      int64       `json:"clientId"`
	Name          string      `json:"name"`
	Material      string      `json:"material,omitempty"`
	Measures      string      `json:"measures,omitempty"`
	Status        Status      `json:"status,omitempty"`
	Details       string      `json:"details,omitempty"`
	FollowUpNotes string      `json:"followUpNotes,omitempty"`
	Files         []JobFile   `json:"files"`
	Calculator    *Calculator `json:"calculator,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastUpdated   time.Time   `json:"lastUpdated"`
}

// Event is a calendar entry, optionally linked to a client
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time,omitempty"`
	ClientID    *int64    `json:"clientId"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// FilterItem is one entry of a filter catalog (material, status or company)
type FilterItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilterCatalogs groups the three configurable classification catalogs
type FilterCatalogs struct {
	Materials []FilterItem `json:"materials"`
	Statuses  []FilterItem `json:"statuses"`
	Companies []FilterItem `json:"companies"`
}

// ReportType identifies one of the four aggregations
type ReportType string

const (
	ReportClientsByStatus ReportType = "clientsByStatus"
	ReportJobsByMaterial  ReportType = "jobsByMaterial"
	ReportMonthlyIncome   ReportType = "monthlyIncome"
	ReportProfits         ReportType = "profits"
)

// IsValid reports whether the report type is one of the four aggregations
func (t ReportType) IsValid() bool {
	switch t {
	case ReportClientsByStatus, ReportJobsByMaterial, ReportMonthlyIncome, ReportProfits:
		return true
	}
	return false
}

// ReportFormat names the export rendering a report record was produced for
type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatHTML  ReportFormat = "html"
	ReportFormatImage ReportFormat = "image"
)

// IsValid reports whether the format is a supported export format
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportFormatPDF, ReportFormatHTML, ReportFormatImage:
		return true
	}
	return false
}

// ReportResult is the chart-ready output of an aggregation
type ReportResult struct {
	Title string             `json:"title"`
	Data  map[string]float64 `json:"data"`
	Total float64            `json:"total"`
}

// Report is one recorded export of a report
type Report struct {
	Type   ReportType   `json:"type"`
	Format ReportFormat `json:"format"`
	Date   time.Time    `json:"date"`
	Data   ReportResult `json:"data"`
}

// Statistics is the dashboard headline block
type Statistics struct {
	TotalClients  int     `json:"totalClients"`
	ActiveClients int     `json:"activeClients"`
	TotalJobs     int     `json:"totalJobs"`
	CompletedJobs int     `json:"completedJobs"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalCost     float64 `json:"totalCost"`
	TotalProfit   float64 `json:"totalProfit"`
	AverageIncome float64 `json:"averageIncome"`
	ProfitMargin  float64 `json:"profitMargin"`
}

// SnapshotDocument is the wholesale persistence format: the entire store
// serialized as one JSON object.
type SnapshotDocument struct {
	Clients       []Client            `json:"clients"`
	Jobs          []Job               `json:"jobs"`
	Events        []Event             `json:"events"`
	Filters       FilterCatalogs      `json:"filters"`
	Reports       []Report            `json:"reports"`
	ReportsByDate map[string][]Report `json:"reportsByDate"`
	LastSaved     time.Time           `json:"lastSaved"`
}
