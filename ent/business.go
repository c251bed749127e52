// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/business"
)

// Business is the model entity for the Business schema.
type Business struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Business name, the dedup key (matched case-insensitively)
	Name string `json:"name,omitempty"`
	// Primary phone number as displayed by the source
	Phone string `json:"phone,omitempty"`
	// Phone number without formatting
	PhoneUnformatted string `json:"phone_unformatted,omitempty"`
	// Number of reviews
	ReviewCount int `json:"review_count,omitempty"`
	// Average rating (0 = unrated)
	Rating float64 `json:"rating,omitempty"`
	// Full street address
	Address string `json:"address,omitempty"`
	// GPS latitude (defaults to the Tirana city center fallback)
	Latitude float64 `json:"latitude,omitempty"`
	// GPS longitude (defaults to the Tirana city center fallback)
	Longitude float64 `json:"longitude,omitempty"`
	// Website URL
	Website string `json:"website,omitempty"`
	// Google Maps listing URL
	MapsURL string `json:"maps_url,omitempty"`
	// Price level indicator
	Price string `json:"price,omitempty"`
	// Primary category label
	CategoryName string `json:"category_name,omitempty"`
	// All category labels
	Categories []string `json:"categories,omitempty"`
	// Neighborhood holds the value of the "neighborhood" field.
	Neighborhood string `json:"neighborhood,omitempty"`
	// Street holds the value of the "street" field.
	Street string `json:"street,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode string `json:"postal_code,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// ISO 3166-1 alpha-2 country code
	CountryCode string `json:"country_code,omitempty"`
	// PermanentlyClosed holds the value of the "permanently_closed" field.
	PermanentlyClosed bool `json:"permanently_closed,omitempty"`
	// TemporarilyClosed holds the value of the "temporarily_closed" field.
	TemporarilyClosed bool `json:"temporarily_closed,omitempty"`
	// Opaque upstream place identifier, not validated
	PlaceID string `json:"place_id,omitempty"`
	// Opaque upstream customer identifier, not validated
	Cid string `json:"cid,omitempty"`
	// ImagesCount holds the value of the "images_count" field.
	ImagesCount int `json:"images_count,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL string `json:"image_url,omitempty"`
	// HotelStars holds the value of the "hotel_stars" field.
	HotelStars string `json:"hotel_stars,omitempty"`
	// Email addresses discovered for the business
	Emails []string `json:"emails,omitempty"`
	// Additional phone numbers
	Phones []string `json:"phones,omitempty"`
	// Instagram holds the value of the "instagram" field.
	Instagram string `json:"instagram,omitempty"`
	// Facebook holds the value of the "facebook" field.
	Facebook string `json:"facebook,omitempty"`
	// Twitter holds the value of the "twitter" field.
	Twitter string `json:"twitter,omitempty"`
	// Youtube holds the value of the "youtube" field.
	Youtube string `json:"youtube,omitempty"`
	// Tiktok holds the value of the "tiktok" field.
	Tiktok string `json:"tiktok,omitempty"`
	// Linkedin holds the value of the "linkedin" field.
	Linkedin string `json:"linkedin,omitempty"`
	// Whatsapp holds the value of the "whatsapp" field.
	Whatsapp string `json:"whatsapp,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Day/hours pairs as provided by the source
	OpeningHours []map[string]interface{} `json:"opening_hours,omitempty"`
	// Free-form source metadata
	AdditionalInfo map[string]interface{} `json:"additional_info,omitempty"`
	// EmailSent holds the value of the "email_sent" field.
	EmailSent bool `json:"email_sent,omitempty"`
	// EmailSentAt holds the value of the "email_sent_at" field.
	EmailSentAt *time.Time `json:"email_sent_at,omitempty"`
	// SmsSent holds the value of the "sms_sent" field.
	SmsSent bool `json:"sms_sent,omitempty"`
	// SmsSentAt holds the value of the "sms_sent_at" field.
	SmsSentAt *time.Time `json:"sms_sent_at,omitempty"`
	// The query string that produced this record
	SearchQuery string `json:"search_query,omitempty"`
	// When the record was last ingested
	ScrapedAt time.Time `json:"scraped_at,omitempty"`
	// Set once at first insert
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Business) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case business.FieldCategories, business.FieldEmails, business.FieldPhones, business.FieldOpeningHours, business.FieldAdditionalInfo:
			values[i] = new([]byte)
		case business.FieldPermanentlyClosed, business.FieldTemporarilyClosed, business.FieldEmailSent, business.FieldSmsSent:
			values[i] = new(sql.NullBool)
		case business.FieldRating, business.FieldLatitude, business.FieldLongitude:
			values[i] = new(sql.NullFloat64)
		case business.FieldID, business.FieldReviewCount, business.FieldImagesCount:
			values[i] = new(sql.NullInt64)
		case business.FieldName, business.FieldPhone, business.FieldPhoneUnformatted, business.FieldAddress, business.FieldWebsite, business.FieldMapsURL, business.FieldPrice, business.FieldCategoryName, business.FieldNeighborhood, business.FieldStreet, business.FieldCity, business.FieldPostalCode, business.FieldState, business.FieldCountryCode, business.FieldPlaceID, business.FieldCid, business.FieldImageURL, business.FieldHotelStars, business.FieldInstagram, business.FieldFacebook, business.FieldTwitter, business.FieldYoutube, business.FieldTiktok, business.FieldLinkedin, business.FieldWhatsapp, business.FieldDomain, business.FieldSearchQuery:
			values[i] = new(sql.NullString)
		case business.FieldEmailSentAt, business.FieldSmsSentAt, business.FieldScrapedAt, business.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Business fields.
func (_m *Business) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case business.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case business.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case business.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case business.FieldPhoneUnformatted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone_unformatted", values[i])
			} else if value.Valid {
				_m.PhoneUnformatted = value.String
			}
		case business.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case business.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case business.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case business.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case business.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case business.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case business.FieldMapsURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maps_url", values[i])
			} else if value.Valid {
				_m.MapsURL = value.String
			}
		case business.FieldPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.String
			}
		case business.FieldCategoryName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_name", values[i])
			} else if value.Valid {
				_m.CategoryName = value.String
			}
		case business.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case business.FieldNeighborhood:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field neighborhood", values[i])
			} else if value.Valid {
				_m.Neighborhood = value.String
			}
		case business.FieldStreet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field street", values[i])
			} else if value.Valid {
				_m.Street = value.String
			}
		case business.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case business.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = value.String
			}
		case business.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case business.FieldCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_code", values[i])
			} else if value.Valid {
				_m.CountryCode = value.String
			}
		case business.FieldPermanentlyClosed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field permanently_closed", values[i])
			} else if value.Valid {
				_m.PermanentlyClosed = value.Bool
			}
		case business.FieldTemporarilyClosed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field temporarily_closed", values[i])
			} else if value.Valid {
				_m.TemporarilyClosed = value.Bool
			}
		case business.FieldPlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field place_id", values[i])
			} else if value.Valid {
				_m.PlaceID = value.String
			}
		case business.FieldCid:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cid", values[i])
			} else if value.Valid {
				_m.Cid = value.String
			}
		case business.FieldImagesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field images_count", values[i])
			} else if value.Valid {
				_m.ImagesCount = int(value.Int64)
			}
		case business.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = value.String
			}
		case business.FieldHotelStars:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hotel_stars", values[i])
			} else if value.Valid {
				_m.HotelStars = value.String
			}
		case business.FieldEmails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field emails", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Emails); err != nil {
					return fmt.Errorf("unmarshal field emails: %w", err)
				}
			}
		case business.FieldPhones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Phones); err != nil {
					return fmt.Errorf("unmarshal field phones: %w", err)
				}
			}
		case business.FieldInstagram:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instagram", values[i])
			} else if value.Valid {
				_m.Instagram = value.String
			}
		case business.FieldFacebook:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook", values[i])
			} else if value.Valid {
				_m.Facebook = value.String
			}
		case business.FieldTwitter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field twitter", values[i])
			} else if value.Valid {
				_m.Twitter = value.String
			}
		case business.FieldYoutube:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube", values[i])
			} else if value.Valid {
				_m.Youtube = value.String
			}
		case business.FieldTiktok:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tiktok", values[i])
			} else if value.Valid {
				_m.Tiktok = value.String
			}
		case business.FieldLinkedin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field linkedin", values[i])
			} else if value.Valid {
				_m.Linkedin = value.String
			}
		case business.FieldWhatsapp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field whatsapp", values[i])
			} else if value.Valid {
				_m.Whatsapp = value.String
			}
		case business.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case business.FieldOpeningHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opening_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OpeningHours); err != nil {
					return fmt.Errorf("unmarshal field opening_hours: %w", err)
				}
			}
		case business.FieldAdditionalInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field additional_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdditionalInfo); err != nil {
					return fmt.Errorf("unmarshal field additional_info: %w", err)
				}
			}
		case business.FieldEmailSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_sent", values[i])
			} else if value.Valid {
				_m.EmailSent = value.Bool
			}
		case business.FieldEmailSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_sent_at", values[i])
			} else if value.Valid {
				_m.EmailSentAt = new(time.Time)
				*_m.EmailSentAt = value.Time
			}
		case business.FieldSmsSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sms_sent", values[i])
			} else if value.Valid {
				_m.SmsSent = value.Bool
			}
		case business.FieldSmsSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sms_sent_at", values[i])
			} else if value.Valid {
				_m.SmsSentAt = new(time.Time)
				*_m.SmsSentAt = value.Time
			}
		case business.FieldSearchQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_query", values[i])
			} else if value.Valid {
				_m.SearchQuery = value.String
			}
		case business.FieldScrapedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scraped_at", values[i])
			} else if value.Valid {
				_m.ScrapedAt = value.Time
			}
		case business.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Business.
// This includes values selected through modifiers, order, etc.
func (_m *Business) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Business.
// Note that you need to call Business.Unwrap() before calling this method if this Business
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Business) Update() *BusinessUpdateOne {
	return NewBusinessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Business entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Business) Unwrap() *Business {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Business is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Business) String() string {
	var builder strings.Builder
	builder.WriteString("Business(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("phone_unformatted=")
	builder.WriteString(_m.PhoneUnformatted)
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("maps_url=")
	builder.WriteString(_m.MapsURL)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(_m.Price)
	builder.WriteString(", ")
	builder.WriteString("category_name=")
	builder.WriteString(_m.CategoryName)
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("neighborhood=")
	builder.WriteString(_m.Neighborhood)
	builder.WriteString(", ")
	builder.WriteString("street=")
	builder.WriteString(_m.Street)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(_m.PostalCode)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("country_code=")
	builder.WriteString(_m.CountryCode)
	builder.WriteString(", ")
	builder.WriteString("permanently_closed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PermanentlyClosed))
	builder.WriteString(", ")
	builder.WriteString("temporarily_closed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemporarilyClosed))
	builder.WriteString(", ")
	builder.WriteString("place_id=")
	builder.WriteString(_m.PlaceID)
	builder.WriteString(", ")
	builder.WriteString("cid=")
	builder.WriteString(_m.Cid)
	builder.WriteString(", ")
	builder.WriteString("images_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImagesCount))
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(_m.ImageURL)
	builder.WriteString(", ")
	builder.WriteString("hotel_stars=")
	builder.WriteString(_m.HotelStars)
	builder.WriteString(", ")
	builder.WriteString("emails=")
	builder.WriteString(fmt.Sprintf("%v", _m.Emails))
	builder.WriteString(", ")
	builder.WriteString("phones=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phones))
	builder.WriteString(", ")
	builder.WriteString("instagram=")
	builder.WriteString(_m.Instagram)
	builder.WriteString(", ")
	builder.WriteString("facebook=")
	builder.WriteString(_m.Facebook)
	builder.WriteString(", ")
	builder.WriteString("twitter=")
	builder.WriteString(_m.Twitter)
	builder.WriteString(", ")
	builder.WriteString("youtube=")
	builder.WriteString(_m.Youtube)
	builder.WriteString(", ")
	builder.WriteString("tiktok=")
	builder.WriteString(_m.Tiktok)
	builder.WriteString(", ")
	builder.WriteString("linkedin=")
	builder.WriteString(_m.Linkedin)
	builder.WriteString(", ")
	builder.WriteString("whatsapp=")
	builder.WriteString(_m.Whatsapp)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("opening_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpeningHours))
	builder.WriteString(", ")
	builder.WriteString("additional_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdditionalInfo))
	builder.WriteString(", ")
	builder.WriteString("email_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailSent))
	builder.WriteString(", ")
	if v := _m.EmailSentAt; v != nil {
		builder.WriteString("email_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("sms_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.SmsSent))
	builder.WriteString(", ")
	if v := _m.SmsSentAt; v != nil {
		builder.WriteString("sms_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("search_query=")
	builder.WriteString(_m.SearchQuery)
	builder.WriteString(", ")
	builder.WriteString("scraped_at=")
	builder.WriteString(_m.ScrapedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Businesses is a parsable slice of Business.
type Businesses []*Business
