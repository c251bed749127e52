// Code generated by ent, DO NOT EDIT.

package business

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the business type in the database.
	Label = "business"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldPhoneUnformatted holds the string denoting the phone_unformatted field in the database.
	FieldPhoneUnformatted = "phone_unformatted"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldMapsURL holds the string denoting the maps_url field in the database.
	FieldMapsURL = "maps_url"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldCategoryName holds the string denoting the category_name field in the database.
	FieldCategoryName = "category_name"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldNeighborhood holds the string denoting the neighborhood field in the database.
	FieldNeighborhood = "neighborhood"
	// FieldStreet holds the string denoting the street field in the database.
	FieldStreet = "street"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCountryCode holds the string denoting the country_code field in the database.
	FieldCountryCode = "country_code"
	// FieldPermanentlyClosed holds the string denoting the permanently_closed field in the database.
	FieldPermanentlyClosed = "permanently_closed"
	// FieldTemporarilyClosed holds the string denoting the temporarily_closed field in the database.
	FieldTemporarilyClosed = "temporarily_closed"
	// FieldPlaceID holds the string denoting the place_id field in the database.
	FieldPlaceID = "place_id"
	// FieldCid holds the string denoting the cid field in the database.
	FieldCid = "cid"
	// FieldImagesCount holds the string denoting the images_count field in the database.
	FieldImagesCount = "images_count"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldHotelStars holds the string denoting the hotel_stars field in the database.
	FieldHotelStars = "hotel_stars"
	// FieldEmails holds the string denoting the emails field in the database.
	FieldEmails = "emails"
	// FieldPhones holds the string denoting the phones field in the database.
	FieldPhones = "phones"
	// FieldInstagram holds the string denoting the instagram field in the database.
	FieldInstagram = "instagram"
	// FieldFacebook holds the string denoting the facebook field in the database.
	FieldFacebook = "facebook"
	// FieldTwitter holds the string denoting the twitter field in the database.
	FieldTwitter = "twitter"
	// FieldYoutube holds the string denoting the youtube field in the database.
	FieldYoutube = "youtube"
	// FieldTiktok holds the string denoting the tiktok field in the database.
	FieldTiktok = "tiktok"
	// FieldLinkedin holds the string denoting the linkedin field in the database.
	FieldLinkedin = "linkedin"
	// FieldWhatsapp holds the string denoting the whatsapp field in the database.
	FieldWhatsapp = "whatsapp"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldOpeningHours holds the string denoting the opening_hours field in the database.
	FieldOpeningHours = "opening_hours"
	// FieldAdditionalInfo holds the string denoting the additional_info field in the database.
	FieldAdditionalInfo = "additional_info"
	// FieldEmailSent holds the string denoting the email_sent field in the database.
	FieldEmailSent = "email_sent"
	// FieldEmailSentAt holds the string denoting the email_sent_at field in the database.
	FieldEmailSentAt = "email_sent_at"
	// FieldSmsSent holds the string denoting the sms_sent field in the database.
	FieldSmsSent = "sms_sent"
	// FieldSmsSentAt holds the string denoting the sms_sent_at field in the database.
	FieldSmsSentAt = "sms_sent_at"
	// FieldSearchQuery holds the string denoting the search_query field in the database.
	FieldSearchQuery = "search_query"
	// FieldScrapedAt holds the string denoting the scraped_at field in the database.
	FieldScrapedAt = "scraped_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the business in the database.
	Table = "businesses"
)

// Columns holds all SQL columns for business fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPhone,
	FieldPhoneUnformatted,
	FieldReviewCount,
	FieldRating,
	FieldAddress,
	FieldLatitude,
	FieldLongitude,
	FieldWebsite,
	FieldMapsURL,
	FieldPrice,
	FieldCategoryName,
	FieldCategories,
	FieldNeighborhood,
	FieldStreet,
	FieldCity,
	FieldPostalCode,
	FieldState,
	FieldCountryCode,
	FieldPermanentlyClosed,
	FieldTemporarilyClosed,
	FieldPlaceID,
	FieldCid,
	FieldImagesCount,
	FieldImageURL,
	FieldHotelStars,
	FieldEmails,
	FieldPhones,
	FieldInstagram,
	FieldFacebook,
	FieldTwitter,
	FieldYoutube,
	FieldTiktok,
	FieldLinkedin,
	FieldWhatsapp,
	FieldDomain,
	FieldOpeningHours,
	FieldAdditionalInfo,
	FieldEmailSent,
	FieldEmailSentAt,
	FieldSmsSent,
	FieldSmsSentAt,
	FieldSearchQuery,
	FieldScrapedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultLatitude holds the default value on creation for the "latitude" field.
	DefaultLatitude float64
	// DefaultLongitude holds the default value on creation for the "longitude" field.
	DefaultLongitude float64
	// DefaultPermanentlyClosed holds the default value on creation for the "permanently_closed" field.
	DefaultPermanentlyClosed bool
	// DefaultTemporarilyClosed holds the default value on creation for the "temporarily_closed" field.
	DefaultTemporarilyClosed bool
	// DefaultImagesCount holds the default value on creation for the "images_count" field.
	DefaultImagesCount int
	// DefaultEmailSent holds the default value on creation for the "email_sent" field.
	DefaultEmailSent bool
	// DefaultSmsSent holds the default value on creation for the "sms_sent" field.
	DefaultSmsSent bool
	// DefaultScrapedAt holds the default value on creation for the "scraped_at" field.
	DefaultScrapedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Business queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByPhoneUnformatted orders the results by the phone_unformatted field.
func ByPhoneUnformatted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneUnformatted, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByMapsURL orders the results by the maps_url field.
func ByMapsURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMapsURL, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByCategoryName orders the results by the category_name field.
func ByCategoryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryName, opts...).ToFunc()
}

// ByNeighborhood orders the results by the neighborhood field.
func ByNeighborhood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeighborhood, opts...).ToFunc()
}

// ByStreet orders the results by the street field.
func ByStreet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreet, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCode, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCountryCode orders the results by the country_code field.
func ByCountryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryCode, opts...).ToFunc()
}

// ByPermanentlyClosed orders the results by the permanently_closed field.
func ByPermanentlyClosed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermanentlyClosed, opts...).ToFunc()
}

// ByTemporarilyClosed orders the results by the temporarily_closed field.
func ByTemporarilyClosed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemporarilyClosed, opts...).ToFunc()
}

// ByPlaceID orders the results by the place_id field.
func ByPlaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaceID, opts...).ToFunc()
}

// ByCid orders the results by the cid field.
func ByCid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCid, opts...).ToFunc()
}

// ByImagesCount orders the results by the images_count field.
func ByImagesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagesCount, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByHotelStars orders the results by the hotel_stars field.
func ByHotelStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHotelStars, opts...).ToFunc()
}

// ByInstagram orders the results by the instagram field.
func ByInstagram(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstagram, opts...).ToFunc()
}

// ByFacebook orders the results by the facebook field.
func ByFacebook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebook, opts...).ToFunc()
}

// ByTwitter orders the results by the twitter field.
func ByTwitter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTwitter, opts...).ToFunc()
}

// ByYoutube orders the results by the youtube field.
func ByYoutube(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutube, opts...).ToFunc()
}

// ByTiktok orders the results by the tiktok field.
func ByTiktok(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiktok, opts...).ToFunc()
}

// ByLinkedin orders the results by the linkedin field.
func ByLinkedin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedin, opts...).ToFunc()
}

// ByWhatsapp orders the results by the whatsapp field.
func ByWhatsapp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhatsapp, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByEmailSent orders the results by the email_sent field.
func ByEmailSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSent, opts...).ToFunc()
}

// ByEmailSentAt orders the results by the email_sent_at field.
func ByEmailSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSentAt, opts...).ToFunc()
}

// BySmsSent orders the results by the sms_sent field.
func BySmsSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSmsSent, opts...).ToFunc()
}

// BySmsSentAt orders the results by the sms_sent_at field.
func BySmsSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSmsSentAt, opts...).ToFunc()
}

// BySearchQuery orders the results by the search_query field.
func BySearchQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchQuery, opts...).ToFunc()
}

// ByScrapedAt orders the results by the scraped_at field.
func ByScrapedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrapedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
