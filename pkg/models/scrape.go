package models

// ScrapeRequest represents a request to start an ingestion run
type ScrapeRequest struct {
	SearchQuery    string   `json:"search_query" validate:"required"`
	City           string   `json:"city" validate:"required"`
	Neighborhoods  []string `json:"neighborhoods"`
	MaxResults     int      `json:"max_results" validate:"omitempty,min=1,max=5000"`
	SkipDuplicates bool     `json:"skip_duplicates"`
	RunID          string   `json:"run_id"`
	ApifyAPIKey    string   `json:"apify_api_key"`
}

// ScrapeStats holds the counters produced by one ingestion run
type ScrapeStats struct {
	Scraped    int `json:"scraped"`
	Inserted   int `json:"inserted"`
	Updated    int `json:"updated"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

// ScrapeSample is a partial record retained for operator feedback
type ScrapeSample struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
}

// ScrapeResponse is the final outcome of an ingestion run
type ScrapeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Stats   ScrapeStats    `json:"stats"`
	Sample  []ScrapeSample `json:"sample"`
}

// ScrapeRunResponse represents a persisted run record
type ScrapeRunResponse struct {
	ID             int         `json:"id"`
	RunID          string      `json:"run_id,omitempty"`
	SearchQuery    string      `json:"search_query"`
	City           string      `json:"city"`
	Neighborhoods  []string    `json:"neighborhoods,omitempty"`
	MaxResults     int         `json:"max_results"`
	SkipDuplicates bool        `json:"skip_duplicates"`
	Status         string      `json:"status"`
	Stats          ScrapeStats `json:"stats"`
	Message        string      `json:"message,omitempty"`
	StartedAt      string      `json:"started_at"`
	FinishedAt     string      `json:"finished_at,omitempty"`
}
