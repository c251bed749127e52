package businesses

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/phone"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 5 * time.Minute
)

// Service provides browse, filter and maintenance operations over the
// business dataset.
type Service struct {
	client *ent.Client
	cache  *cache.Client
	region string
	log    logger.Logger
}

// NewService creates a businesses service. region is the default ISO
// country code used when stored phone numbers carry no +country prefix.
func NewService(client *ent.Client, cacheClient *cache.Client, region string, log logger.Logger) *Service {
	return &Service{client: client, cache: cacheClient, region: region, log: log}
}

var sortColumns = map[string]string{
	"rating":       business.FieldRating,
	"review_count": business.FieldReviewCount,
	"name":         business.FieldName,
	"created_at":   business.FieldCreatedAt,
	"scraped_at":   business.FieldScrapedAt,
}

// List returns a page of businesses matching the request filters.
// Unknown sort columns quietly fall back to created_at.
func (s *Service) List(ctx context.Context, req *models.BusinessListRequest) (*models.BusinessListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	q := s.client.Business.Query()
	if req.SearchQuery != "" {
		q = q.Where(business.SearchQueryEQ(req.SearchQuery))
	}
	if req.Name != "" {
		q = q.Where(business.NameContainsFold(req.Name))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}

	column, ok := sortColumns[req.SortBy]
	if !ok {
		column = business.FieldCreatedAt
	}
	if req.SortOrder == "asc" {
		q = q.Order(ent.Asc(column))
	} else {
		q = q.Order(ent.Desc(column))
	}

	rows, err := q.Offset((page - 1) * limit).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}

	data := make([]models.BusinessResponse, len(rows))
	for i, b := range rows {
		data[i] = toResponse(b)
	}

	return &models.BusinessListResponse{
		Data:       data,
		Pagination: paginate(page, limit, total),
	}, nil
}

// GetByID fetches a single business.
func (s *Service) GetByID(ctx context.Context, id int) (*models.BusinessResponse, error) {
	b, err := s.client.Business.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(b)
	return &resp, nil
}

// Delete removes a business permanently.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.client.Business.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// UpdateOutreachFlags applies a partial update of the sent flags. Setting
// a flag true stamps the matching timestamp; setting it false clears it.
func (s *Service) UpdateOutreachFlags(ctx context.Context, id int, upd *models.OutreachFlagsUpdate) (*models.BusinessResponse, error) {
	u := s.client.Business.UpdateOneID(id)
	now := time.Now().UTC()

	if upd.EmailSent != nil {
		u = u.SetEmailSent(*upd.EmailSent)
		if *upd.EmailSent {
			u = u.SetEmailSentAt(now)
		} else {
			u = u.ClearEmailSentAt()
		}
	}
	if upd.SMSSent != nil {
		u = u.SetSmsSent(*upd.SMSSent)
		if *upd.SMSSent {
			u = u.SetSmsSentAt(now)
		} else {
			u = u.ClearSmsSentAt()
		}
	}

	b, err := u.Save(ctx)
	if err != nil {
		return nil, err
	}
	resp := toResponse(b)
	return &resp, nil
}

// EmailTargets lists businesses eligible for email outreach: at least one
// non-empty address, name-ordered, filtered by sent state.
func (s *Service) EmailTargets(ctx context.Context, req *models.TargetListRequest) (*models.TargetListResponse[models.EmailTarget], error) {
	page, limit := targetPaging(req, 50)

	q := s.client.Business.Query().Where(business.EmailsNotNil())
	switch req.Filter {
	case "sent":
		q = q.Where(business.EmailSent(true))
	case "", "not_sent":
		q = q.Where(business.EmailSent(false))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count email targets: %w", err)
	}

	rows, err := q.Order(ent.Asc(business.FieldName)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list email targets: %w", err)
	}

	data := []models.EmailTarget{}
	for _, b := range rows {
		if !hasNonEmpty(b.Emails) {
			continue
		}
		data = append(data, models.EmailTarget{
			ID:           b.ID,
			Name:         b.Name,
			Emails:       b.Emails,
			CategoryName: b.CategoryName,
			EmailSent:    b.EmailSent,
			EmailSentAt:  formatNillable(b.EmailSentAt),
		})
	}

	return &models.TargetListResponse[models.EmailTarget]{
		Data:       data,
		Pagination: paginate(page, limit, total),
	}, nil
}

// PhoneTargets lists businesses eligible for SMS outreach: non-empty
// phone, name-ordered, optionally restricted to those without a website.
func (s *Service) PhoneTargets(ctx context.Context, req *models.TargetListRequest) (*models.TargetListResponse[models.PhoneTarget], error) {
	page, limit := targetPaging(req, 500)

	q := s.client.Business.Query().Where(business.PhoneNEQ(""))
	switch req.Filter {
	case "sent":
		q = q.Where(business.SmsSent(true))
	case "", "not_sent":
		q = q.Where(business.SmsSent(false))
	}
	if req.NoWebsite {
		q = q.Where(business.Or(business.WebsiteIsNil(), business.WebsiteEQ("")))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count phone targets: %w", err)
	}

	rows, err := q.Order(ent.Asc(business.FieldName)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phone targets: %w", err)
	}

	data := make([]models.PhoneTarget, len(rows))
	for i, b := range rows {
		data[i] = models.PhoneTarget{
			ID:           b.ID,
			Name:         b.Name,
			Phone:        b.Phone,
			Website:      b.Website,
			Emails:       b.Emails,
			CategoryName: b.CategoryName,
			SMSSent:      b.SmsSent,
			SMSSentAt:    formatNillable(b.SmsSentAt),
		}
		// Annotate so the operator can exclude junk numbers before a batch.
		if res, err := phone.Validate(b.Phone, s.region); err == nil {
			data[i].PhoneValid = res.IsValid
			data[i].PhoneE164 = res.E164Format
		}
	}

	return &models.TargetListResponse[models.PhoneTarget]{
		Data:       data,
		Pagination: paginate(page, limit, total),
	}, nil
}

// Stats computes the dashboard statistics, served from cache when fresh.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	if cached, err := s.cache.Get(ctx, statsCacheKey); err == nil && cached != "" {
		var stats models.StatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL); err != nil {
			s.log.Warn("failed to cache stats", "error", err)
		}
	}
	return stats, nil
}

func (s *Service) computeStats(ctx context.Context) (*models.StatsResponse, error) {
	total, err := s.client.Business.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}

	stats := &models.StatsResponse{
		TotalBusinesses: total,
		TopCategories:   []models.CategoryCount{},
	}
	if total == 0 {
		return stats, nil
	}

	avg, err := s.client.Business.Query().
		Where(business.RatingNotNil()).
		Aggregate(ent.Mean(business.FieldRating)).
		Float64(ctx)
	if err == nil {
		stats.AvgRating = math.Round(avg*10) / 10
	}

	if sum, err := s.client.Business.Query().
		Aggregate(ent.Sum(business.FieldReviewCount)).
		Int(ctx); err == nil {
		stats.TotalReviews = sum
	}

	top, err := s.client.Business.Query().
		Where(business.RatingNotNil()).
		Order(ent.Desc(business.FieldRating), ent.Desc(business.FieldReviewCount)).
		First(ctx)
	if err == nil {
		stats.TopRated = &models.TopRated{Name: top.Name, Rating: top.Rating}
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to find top rated: %w", err)
	}

	stats.WithPhone, _ = s.client.Business.Query().Where(business.PhoneNEQ("")).Count(ctx)
	stats.WithWebsite, _ = s.client.Business.Query().Where(business.WebsiteNEQ("")).Count(ctx)
	stats.WithSocial, _ = s.client.Business.Query().Where(business.Or(
		business.InstagramNEQ(""),
		business.FacebookNEQ(""),
		business.TwitterNEQ(""),
		business.YoutubeNEQ(""),
		business.TiktokNEQ(""),
		business.LinkedinNEQ(""),
		business.WhatsappNEQ(""),
	)).Count(ctx)
	stats.ClosedCount, _ = s.client.Business.Query().Where(business.Or(
		business.PermanentlyClosed(true),
		business.TemporarilyClosed(true),
	)).Count(ctx)

	// Email arrays live in JSON, so non-emptiness is decided in Go.
	withEmails, err := s.client.Business.Query().Where(business.EmailsNotNil()).All(ctx)
	if err == nil {
		for _, b := range withEmails {
			if hasNonEmpty(b.Emails) {
				stats.WithEmail++
			}
		}
	}

	var categories []struct {
		CategoryName string `json:"category_name"`
		Count        int    `json:"count"`
	}
	err = s.client.Business.Query().
		Where(business.CategoryNameNEQ("")).
		GroupBy(business.FieldCategoryName).
		Aggregate(ent.Count()).
		Scan(ctx, &categories)
	if err == nil {
		sort.Slice(categories, func(i, j int) bool { return categories[i].Count > categories[j].Count })
		for i, c := range categories {
			if i >= 5 {
				break
			}
			stats.TopCategories = append(stats.TopCategories, models.CategoryCount{Name: c.CategoryName, Count: c.Count})
		}
	}

	return stats, nil
}

func (s *Service) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.log.Warn("failed to invalidate stats cache", "error", err)
	}
}

func hasNonEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

func targetPaging(req *models.TargetListRequest, defaultLimit int) (int, int) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func paginate(page, limit, total int) models.PaginationInfo {
	totalPages := (total + limit - 1) / limit
	return models.PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func toResponse(b *ent.Business) models.BusinessResponse {
	return models.BusinessResponse{
		ID:                b.ID,
		Name:              b.Name,
		Phone:             b.Phone,
		PhoneUnformatted:  b.PhoneUnformatted,
		ReviewCount:       b.ReviewCount,
		Rating:            b.Rating,
		Address:           b.Address,
		Latitude:          b.Latitude,
		Longitude:         b.Longitude,
		Website:           b.Website,
		MapsURL:           b.MapsURL,
		Price:             b.Price,
		CategoryName:      b.CategoryName,
		Categories:        b.Categories,
		Neighborhood:      b.Neighborhood,
		Street:            b.Street,
		City:              b.City,
		PostalCode:        b.PostalCode,
		State:             b.State,
		CountryCode:       b.CountryCode,
		PermanentlyClosed: b.PermanentlyClosed,
		TemporarilyClosed: b.TemporarilyClosed,
		PlaceID:           b.PlaceID,
		CID:               b.Cid,
		ImagesCount:       b.ImagesCount,
		ImageURL:          b.ImageURL,
		HotelStars:        b.HotelStars,
		Emails:            b.Emails,
		Phones:            b.Phones,
		Instagram:         b.Instagram,
		Facebook:          b.Facebook,
		Twitter:           b.Twitter,
		YouTube:           b.Youtube,
		TikTok:            b.Tiktok,
		LinkedIn:          b.Linkedin,
		WhatsApp:          b.Whatsapp,
		Domain:            b.Domain,
		OpeningHours:      b.OpeningHours,
		AdditionalInfo:    b.AdditionalInfo,
		EmailSent:         b.EmailSent,
		EmailSentAt:       formatNillable(b.EmailSentAt),
		SMSSent:           b.SmsSent,
		SMSSentAt:         formatNillable(b.SmsSentAt),
		SearchQuery:       b.SearchQuery,
		ScrapedAt:         b.ScrapedAt.Format(time.RFC3339),
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}

func formatNillable(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
