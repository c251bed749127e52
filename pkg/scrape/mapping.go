package scrape

import (
	"time"

	"github.com/ipropixel/leadfinder/pkg/apify"
)

// Fallback coordinates (Tirana city center) used when the source omits a
// location.
const (
	FallbackLatitude  = 41.3275
	FallbackLongitude = 19.8187
)

// Record is a fully mapped business candidate, ready for insertion.
type Record struct {
	Name             string
	Phone            string
	PhoneUnformatted string
	ReviewCount      int
	Rating           *float64
	Address          string
	Latitude         float64
	Longitude        float64
	Website          string
	MapsURL          string
	Price            string
	CategoryName     string
	Categories       []string
	Neighborhood     string
	Street           string
	City             string
	PostalCode       string
	State            string
	CountryCode      string
	PermanentlyClosed bool
	TemporarilyClosed bool
	PlaceID          string
	CID              string
	ImagesCount      int
	ImageURL         string
	HotelStars       string
	Emails           []string
	Phones           []string
	Instagram        string
	Facebook         string
	Twitter          string
	YouTube          string
	TikTok           string
	LinkedIn         string
	WhatsApp         string
	Domain           string
	OpeningHours     []map[string]interface{}
	AdditionalInfo   map[string]interface{}
	SearchQuery      string
	ScrapedAt        time.Time
}

// PhoneUpdate carries a discovered phone number for an existing record.
type PhoneUpdate struct {
	ID               int
	Name             string
	Phone            string
	PhoneUnformatted string
}

// MapPlace converts one actor result into an insertable record. Missing
// coordinates fall back to the city center so map views never get a
// null island pin.
func MapPlace(p *apify.PlaceResult, searchQuery string, now time.Time) Record {
	rec := Record{
		Name:              p.Title,
		Phone:             p.Phone,
		PhoneUnformatted:  p.PhoneUnformatted,
		ReviewCount:       p.ReviewsCount,
		Rating:            p.TotalScore,
		Address:           p.Address,
		Latitude:          FallbackLatitude,
		Longitude:         FallbackLongitude,
		Website:           p.Website,
		MapsURL:           p.URL,
		Price:             p.Price,
		CategoryName:      p.CategoryName,
		Categories:        emptyIfNil(p.Categories),
		Neighborhood:      p.Neighborhood,
		Street:            p.Street,
		City:              p.City,
		PostalCode:        p.PostalCode,
		State:             p.State,
		CountryCode:       p.CountryCode,
		PermanentlyClosed: p.PermanentlyClosed,
		TemporarilyClosed: p.TemporarilyClosed,
		PlaceID:           p.PlaceID,
		CID:               p.CID,
		ImagesCount:       p.ImagesCount,
		ImageURL:          p.ImageURL,
		HotelStars:        p.HotelStars,
		Emails:            emptyIfNil(p.Emails),
		Phones:            emptyIfNil(p.Phones),
		Instagram:         first(p.Instagrams),
		Facebook:          first(p.Facebooks),
		Twitter:           first(p.Twitters),
		YouTube:           first(p.YouTubes),
		TikTok:            first(p.TikToks),
		LinkedIn:          first(p.LinkedIns),
		WhatsApp:          first(p.WhatsApps),
		Domain:            p.Domain,
		OpeningHours:      p.OpeningHours,
		AdditionalInfo:    p.AdditionalInfo,
		SearchQuery:       searchQuery,
		ScrapedAt:         now,
	}
	if p.Location != nil {
		if p.Location.Lat != 0 {
			rec.Latitude = p.Location.Lat
		}
		if p.Location.Lng != 0 {
			rec.Longitude = p.Location.Lng
		}
	}
	return rec
}

func first(s []string) string {
	if len(s) > 0 {
		return s[0]
	}
	return ""
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
