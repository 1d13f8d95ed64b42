package domain

// Request and response shapes for the JSON API. Update requests use pointer
// fields: only the fields present in the body are merged onto the stored
// record, everything else is left as-is.

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty" validate:"max=500"`
	Company string `json:"company,omitempty" validate:"max=200"`
	Status  Status `json:"status,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Status  *Status `json:"status,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
}

type AddAuthorizedPersonRequest struct {
	ID    string `json:"id,omitempty" validate:"max=50"`
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone,omitempty" validate:"max=50"`
	Note  string `json:"note,omitempty"`
}

type CreateJobRequest struct {
	ClientID      int64     `json:"clientId" validate:"required"`
	Name          string    `json:"name" validate:"required,max=200"`
	Material      string    `json:"material,omitempty" validate:"max=100"`
	Measures      string    `json:"measures,omitempty" validate:"max=200"`
	Status        Status    `json:"status,omitempty"`
	Details       string    `json:"details,omitempty"`
	FollowUpNotes string    `json:"followUpNotes,omitempty"`
	Files         []JobFile `json:"files,omitempty"`
}

type UpdateJobRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Material      *string    `json:"material,omitempty" validate:"omitempty,max=100"`
	Measures      *string    `json:"measures,omitempty" validate:"omitempty,max=200"`
	Status        *Status    `json:"status,omitempty"`
	Details       *string    `json:"details,omitempty"`
	FollowUpNotes *string    `json:"followUpNotes,omitempty"`
	Files         *[]JobFile `json:"files,omitempty"`
}

// AddJobFileRequest attaches a file to a job. Exactly one of URL (external
// link) or Data (data URI from a local upload) must be set.
type AddJobFileRequest struct {
	Name string `json:"name,omitempty" validate:"max=300"`
	Type string `json:"type,omitempty" validate:"max=100"`
	URL  string `json:"url,omitempty" validate:"required_without=Data,omitempty,url"`
	Data string `json:"data,omitempty" validate:"required_without=URL"`
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	ClientID    *int64 `json:"clientId,omitempty"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	ClientID    *int64  `json:"clientId,omitempty"`
}

// UpdateFiltersRequest replaces the filter catalogs wholesale. Entries with
// blank names are pruned before storing.
type UpdateFiltersRequest struct {
	Materials []FilterItem `json:"materials"`
	Statuses  []FilterItem `json:"statuses"`
	Companies []FilterItem `json:"companies"`
}

// CalculatorRequest carries the pricing inputs. Zero means "not supplied"
// for PriceWithoutIva and FinalPrice, which triggers their derivation.
type CalculatorRequest struct {
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
}

// CalculatorPreviewResponse is a computed-but-not-stored calculator run.
// ProfitPercentage here is the live-edit figure, relative to total cost.
type CalculatorPreviewResponse struct {
	Calculator       Calculator `json:"calculator"`
	Profit           float64    `json:"profit"`
	ProfitPercentage float64    `json:"profitPercentage"`
}

// ClientListQuery mirrors the list view's filter bar
type ClientListQuery struct {
	Search   string
	Company  string
	Status   Status
	Material string
	SortBy   string // "asc", "desc" or empty for most-recent-first
}

type ClientListResponse struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}

type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

type ExportReportRequest struct {
	Format ReportFormat `json:"format" validate:"required"`
}

// ReportHistoryResponse returns every recorded export plus the same records
// bucketed by export day.
type ReportHistoryResponse struct {
	Reports       []Report            `json:"reports"`
	ReportsByDate map[string][]Report `json:"reportsByDate"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
