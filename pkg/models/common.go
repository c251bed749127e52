package models

// ErrorResponse is the uniform error body returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OutreachRequest selects the businesses to contact
type OutreachRequest struct {
	BusinessIDs []int `json:"business_ids" validate:"required,min=1"`
}

// OutreachResult summarizes a bulk send
type OutreachResult struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"`
}

// ExportRequest represents an export request
type ExportRequest struct {
	Format       string              `json:"format" validate:"required,oneof=csv excel"`
	Filters      BusinessListRequest `json:"filters"`
	MaxBusinesses int                `json:"max_businesses" validate:"omitempty,min=1,max=10000"`
}

// ExportResponse represents an export record
type ExportResponse struct {
	ID            int    `json:"id"`
	Status        string `json:"status"`
	Format        string `json:"format"`
	BusinessCount int    `json:"business_count"`
	FileURL       string `json:"file_url,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ExportListResponse represents a list of exports
type ExportListResponse struct {
	Data       []ExportResponse `json:"data"`
	Pagination PaginationInfo   `json:"pagination"`
}
