package models

// BusinessListRequest represents list/filter parameters for businesses
type BusinessListRequest struct {
	SearchQuery string `query:"search_query"`
	Name        string `query:"name"`
	SortBy      string `query:"sort_by" validate:"omitempty,oneof=rating review_count name created_at scraped_at"`
	SortOrder   string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page        int    `query:"page" validate:"omitempty,min=1"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// BusinessResponse represents a single business in API responses
type BusinessResponse struct {
	ID                int                      `json:"id"`
	Name              string                   `json:"name"`
	Phone             string                   `json:"phone,omitempty"`
	PhoneUnformatted  string                   `json:"phone_unformatted,omitempty"`
	ReviewCount       int                      `json:"review_count"`
	Rating            float64                  `json:"rating,omitempty"`
	Address           string                   `json:"address,omitempty"`
	Latitude          float64                  `json:"latitude"`
	Longitude         float64                  `json:"longitude"`
	Website           string                   `json:"website,omitempty"`
	MapsURL           string                   `json:"maps_url,omitempty"`
	Price             string                   `json:"price,omitempty"`
	CategoryName      string                   `json:"category_name,omitempty"`
	Categories        []string                 `json:"categories,omitempty"`
	Neighborhood      string                   `json:"neighborhood,omitempty"`
	Street            string                   `json:"street,omitempty"`
	City              string                   `json:"city,omitempty"`
	PostalCode        string                   `json:"postal_code,omitempty"`
	State             string                   `json:"state,omitempty"`
	CountryCode       string                   `json:"country_code,omitempty"`
	PermanentlyClosed bool                     `json:"permanently_closed"`
	TemporarilyClosed bool                     `json:"temporarily_closed"`
	PlaceID           string                   `json:"place_id,omitempty"`
	CID               string                   `json:"cid,omitempty"`
	ImagesCount       int                      `json:"images_count"`
	ImageURL          string                   `json:"image_url,omitempty"`
	HotelStars        string                   `json:"hotel_stars,omitempty"`
	Emails            []string                 `json:"emails,omitempty"`
	Phones            []string                 `json:"phones,omitempty"`
	Instagram         string                   `json:"instagram,omitempty"`
	Facebook          string                   `json:"facebook,omitempty"`
	Twitter           string                   `json:"twitter,omitempty"`
	YouTube           string                   `json:"youtube,omitempty"`
	TikTok            string                   `json:"tiktok,omitempty"`
	LinkedIn          string                   `json:"linkedin,omitempty"`
	WhatsApp          string                   `json:"whatsapp,omitempty"`
	Domain            string                   `json:"domain,omitempty"`
	OpeningHours      []map[string]interface{} `json:"opening_hours,omitempty"`
	AdditionalInfo    map[string]interface{}   `json:"additional_info,omitempty"`
	EmailSent         bool                     `json:"email_sent"`
	EmailSentAt       string                   `json:"email_sent_at,omitempty"`
	SMSSent           bool                     `json:"sms_sent"`
	SMSSentAt         string                   `json:"sms_sent_at,omitempty"`
	SearchQuery       string                   `json:"search_query,omitempty"`
	ScrapedAt         string                   `json:"scraped_at"`
	CreatedAt         string                   `json:"created_at"`
}

// BusinessListResponse represents a paginated list of businesses
type BusinessListResponse struct {
	Data       []BusinessResponse `json:"data"`
	Pagination PaginationInfo     `json:"pagination"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// OutreachFlagsUpdate represents a partial update of the outreach flags
type OutreachFlagsUpdate struct {
	EmailSent *bool `json:"email_sent"`
	SMSSent   *bool `json:"sms_sent"`
}

// TargetListRequest represents parameters for the outreach target lists
type TargetListRequest struct {
	Filter    string `query:"filter" validate:"omitempty,oneof=sent not_sent all"`
	NoWebsite bool   `query:"no_website"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// EmailTarget is one row of the email outreach target list
type EmailTarget struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Emails       []string `json:"emails"`
	CategoryName string   `json:"category_name,omitempty"`
	EmailSent    bool     `json:"email_sent"`
	EmailSentAt  string   `json:"email_sent_at,omitempty"`
}

// PhoneTarget is one row of the SMS outreach target list
type PhoneTarget struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	PhoneValid   bool     `json:"phone_valid"`
	PhoneE164    string   `json:"phone_e164,omitempty"`
	Website      string   `json:"website,omitempty"`
	Emails       []string `json:"emails,omitempty"`
	CategoryName string   `json:"category_name,omitempty"`
	SMSSent      bool     `json:"sms_sent"`
	SMSSentAt    string   `json:"sms_sent_at,omitempty"`
}

// TargetListResponse represents a paginated outreach target list
type TargetListResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// CategoryCount is a category name with its business count
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopRated identifies the highest-rated business
type TopRated struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// StatsResponse represents the operator dashboard statistics
type StatsResponse struct {
	TotalBusinesses int             `json:"total_businesses"`
	AvgRating       float64         `json:"avg_rating"`
	TotalReviews    int             `json:"total_reviews"`
	TopRated        *TopRated       `json:"top_rated"`
	WithPhone       int             `json:"with_phone"`
	WithEmail       int             `json:"with_email"`
	WithWebsite     int             `json:"with_website"`
	WithSocial      int             `json:"with_social"`
	ClosedCount     int             `json:"closed_count"`
	TopCategories   []CategoryCount `json:"top_categories"`
}
