package apify

// Location is a point coordinate as emitted by the Google Maps actor.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResult is one scraped place from the Google Maps actor's dataset.
// Field names follow the actor's output schema.
type PlaceResult struct {
	Title              string                   `json:"title"`
	CategoryName       string                   `json:"categoryName"`
	Address            string                   `json:"address"`
	Neighborhood       string                   `json:"neighborhood"`
	Street             string                   `json:"street"`
	City               string                   `json:"city"`
	PostalCode         string                   `json:"postalCode"`
	State              string                   `json:"state"`
	CountryCode        string                   `json:"countryCode"`
	Website            string                   `json:"website"`
	Phone              string                   `json:"phone"`
	PhoneUnformatted   string                   `json:"phoneUnformatted"`
	Location           *Location                `json:"location"`
	TotalScore         *float64                 `json:"totalScore"`
	PermanentlyClosed  bool                     `json:"permanentlyClosed"`
	TemporarilyClosed  bool                     `json:"temporarilyClosed"`
	PlaceID            string                   `json:"placeId"`
	CID                string                   `json:"cid"`
	Categories         []string                 `json:"categories"`
	ReviewsCount       int                      `json:"reviewsCount"`
	ImagesCount        int                      `json:"imagesCount"`
	ImageURL           string                   `json:"imageUrl"`
	HotelStars         string                   `json:"hotelStars"`
	URL                string                   `json:"url"`
	Price              string                   `json:"price"`
	Domain             string                   `json:"domain"`
	Emails             []string                 `json:"emails"`
	Phones             []string                 `json:"phones"`
	Instagrams         []string                 `json:"instagrams"`
	Facebooks          []string                 `json:"facebooks"`
	LinkedIns          []string                 `json:"linkedIns"`
	Twitters           []string                 `json:"twitters"`
	YouTubes           []string                 `json:"youtubes"`
	TikToks            []string                 `json:"tiktoks"`
	WhatsApps          []string                 `json:"whatsapps"`
	OpeningHours       []map[string]interface{} `json:"openingHours"`
	AdditionalInfo     map[string]interface{}   `json:"additionalInfo"`
	IsAdvertisement    bool                     `json:"isAdvertisement"`
	SearchString       string                   `json:"searchString"`
	ScrapedAt          string                   `json:"scrapedAt"`
}

// SocialMediaProfiles toggles which social profiles the actor enriches.
// Each enabled network is billed per profile, so everything defaults off.
type SocialMediaProfiles struct {
	Facebooks  bool `json:"facebooks"`
	Instagrams bool `json:"instagrams"`
	TikToks    bool `json:"tiktoks"`
	Twitters   bool `json:"twitters"`
	YouTubes   bool `json:"youtubes"`
}

// ActorInput is the input document for the Google Maps scraper actor.
type ActorInput struct {
	IncludeWebResults             bool                `json:"includeWebResults"`
	Language                      string              `json:"language"`
	LocationQuery                 string              `json:"locationQuery"`
	MaxCrawledPlacesPerSearch     int                 `json:"maxCrawledPlacesPerSearch"`
	MaxImages                     int                 `json:"maxImages"`
	MaximumLeadsEnrichmentRecords int                 `json:"maximumLeadsEnrichmentRecords"`
	ScrapeContacts                bool                `json:"scrapeContacts"`
	ScrapeDirectories             bool                `json:"scrapeDirectories"`
	ScrapeImageAuthors            bool                `json:"scrapeImageAuthors"`
	ScrapePlaceDetailPage         bool                `json:"scrapePlaceDetailPage"`
	ScrapeReviewsPersonalData     bool                `json:"scrapeReviewsPersonalData"`
	ScrapeSocialMediaProfiles     SocialMediaProfiles `json:"scrapeSocialMediaProfiles"`
	ScrapeTableReservationProvider bool               `json:"scrapeTableReservationProvider"`
	SearchStringsArray            []string            `json:"searchStringsArray"`
	SkipClosedPlaces              bool                `json:"skipClosedPlaces"`
}
