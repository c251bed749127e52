// Code generated by ent, DO NOT EDIT.

package business

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPhone, v))
}

// PhoneUnformatted applies equality check predicate on the "phone_unformatted" field. It's identical to PhoneUnformattedEQ.
func PhoneUnformatted(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPhoneUnformatted, v))
}

// ReviewCount applies equality check predicate on the "review_count" field. It's identical to ReviewCountEQ.
func ReviewCount(v int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldReviewCount, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldRating, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldAddress, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLongitude, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldWebsite, v))
}

// MapsURL applies equality check predicate on the "maps_url" field. It's identical to MapsURLEQ.
func MapsURL(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldMapsURL, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPrice, v))
}

// CategoryName applies equality check predicate on the "category_name" field. It's identical to CategoryNameEQ.
func CategoryName(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCategoryName, v))
}

// Neighborhood applies equality check predicate on the "neighborhood" field. It's identical to NeighborhoodEQ.
func Neighborhood(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldNeighborhood, v))
}

// Street applies equality check predicate on the "street" field. It's identical to StreetEQ.
func Street(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldStreet, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCity, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPostalCode, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldState, v))
}

// CountryCode applies equality check predicate on the "country_code" field. It's identical to CountryCodeEQ.
func CountryCode(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCountryCode, v))
}

// PermanentlyClosed applies equality check predicate on the "permanently_closed" field. It's identical to PermanentlyClosedEQ.
func PermanentlyClosed(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPermanentlyClosed, v))
}

// TemporarilyClosed applies equality check predicate on the "temporarily_closed" field. It's identical to TemporarilyClosedEQ.
func TemporarilyClosed(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTemporarilyClosed, v))
}

// PlaceID applies equality check predicate on the "place_id" field. It's identical to PlaceIDEQ.
func PlaceID(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPlaceID, v))
}

// Cid applies equality check predicate on the "cid" field. It's identical to CidEQ.
func Cid(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCid, v))
}

// ImagesCount applies equality check predicate on the "images_count" field. It's identical to ImagesCountEQ.
func ImagesCount(v int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldImagesCount, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldImageURL, v))
}

// HotelStars applies equality check predicate on the "hotel_stars" field. It's identical to HotelStarsEQ.
func HotelStars(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldHotelStars, v))
}

// Instagram applies equality check predicate on the "instagram" field. It's identical to InstagramEQ.
func Instagram(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldInstagram, v))
}

// Facebook applies equality check predicate on the "facebook" field. It's identical to FacebookEQ.
func Facebook(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldFacebook, v))
}

// Twitter applies equality check predicate on the "twitter" field. It's identical to TwitterEQ.
func Twitter(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTwitter, v))
}

// Youtube applies equality check predicate on the "youtube" field. It's identical to YoutubeEQ.
func Youtube(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldYoutube, v))
}

// Tiktok applies equality check predicate on the "tiktok" field. It's identical to TiktokEQ.
func Tiktok(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTiktok, v))
}

// Linkedin applies equality check predicate on the "linkedin" field. It's identical to LinkedinEQ.
func Linkedin(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLinkedin, v))
}

// Whatsapp applies equality check predicate on the "whatsapp" field. It's identical to WhatsappEQ.
func Whatsapp(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldWhatsapp, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldDomain, v))
}

// EmailSent applies equality check predicate on the "email_sent" field. It's identical to EmailSentEQ.
func EmailSent(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEmailSent, v))
}

// EmailSentAt applies equality check predicate on the "email_sent_at" field. It's identical to EmailSentAtEQ.
func EmailSentAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEmailSentAt, v))
}

// SmsSent applies equality check predicate on the "sms_sent" field. It's identical to SmsSentEQ.
func SmsSent(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSmsSent, v))
}

// SmsSentAt applies equality check predicate on the "sms_sent_at" field. It's identical to SmsSentAtEQ.
func SmsSentAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSmsSentAt, v))
}

// SearchQuery applies equality check predicate on the "search_query" field. It's identical to SearchQueryEQ.
func SearchQuery(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSearchQuery, v))
}

// ScrapedAt applies equality check predicate on the "scraped_at" field. It's identical to ScrapedAtEQ.
func ScrapedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldScrapedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldName, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldPhone, v))
}

// PhoneUnformattedEQ applies the EQ predicate on the "phone_unformatted" field.
func PhoneUnformattedEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPhoneUnformatted, v))
}

// PhoneUnformattedNEQ applies the NEQ predicate on the "phone_unformatted" field.
func PhoneUnformattedNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPhoneUnformatted, v))
}

// PhoneUnformattedIn applies the In predicate on the "phone_unformatted" field.
func PhoneUnformattedIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldPhoneUnformatted, vs...))
}

// PhoneUnformattedNotIn applies the NotIn predicate on the "phone_unformatted" field.
func PhoneUnformattedNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldPhoneUnformatted, vs...))
}

// PhoneUnformattedGT applies the GT predicate on the "phone_unformatted" field.
func PhoneUnformattedGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldPhoneUnformatted, v))
}

// PhoneUnformattedGTE applies the GTE predicate on the "phone_unformatted" field.
func PhoneUnformattedGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldPhoneUnformatted, v))
}

// PhoneUnformattedLT applies the LT predicate on the "phone_unformatted" field.
func PhoneUnformattedLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldPhoneUnformatted, v))
}

// PhoneUnformattedLTE applies the LTE predicate on the "phone_unformatted" field.
func PhoneUnformattedLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldPhoneUnformatted, v))
}

// PhoneUnformattedContains applies the Contains predicate on the "phone_unformatted" field.
func PhoneUnformattedContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldPhoneUnformatted, v))
}

// PhoneUnformattedHasPrefix applies the HasPrefix predicate on the "phone_unformatted" field.
func PhoneUnformattedHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldPhoneUnformatted, v))
}

// PhoneUnformattedHasSuffix applies the HasSuffix predicate on the "phone_unformatted" field.
func PhoneUnformattedHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldPhoneUnformatted, v))
}

// PhoneUnformattedIsNil applies the IsNil predicate on the "phone_unformatted" field.
func PhoneUnformattedIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPhoneUnformatted))
}

// PhoneUnformattedNotNil applies the NotNil predicate on the "phone_unformatted" field.
func PhoneUnformattedNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPhoneUnformatted))
}

// PhoneUnformattedEqualFold applies the EqualFold predicate on the "phone_unformatted" field.
func PhoneUnformattedEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldPhoneUnformatted, v))
}

// PhoneUnformattedContainsFold applies the ContainsFold predicate on the "phone_unformatted" field.
func PhoneUnformattedContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldPhoneUnformatted, v))
}

// ReviewCountEQ applies the EQ predicate on the "review_count" field.
func ReviewCountEQ(v int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldReviewCount, v))
}

// ReviewCountNEQ applies the NEQ predicate on the "review_count" field.
func ReviewCountNEQ(v int) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldReviewCount, v))
}

// ReviewCountIn applies the In predicate on the "review_count" field.
func ReviewCountIn(vs ...int) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldReviewCount, vs...))
}

// ReviewCountNotIn applies the NotIn predicate on the "review_count" field.
func ReviewCountNotIn(vs ...int) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldReviewCount, vs...))
}

// ReviewCountGT applies the GT predicate on the "review_count" field.
func ReviewCountGT(v int) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldReviewCount, v))
}

// ReviewCountGTE applies the GTE predicate on the "review_count" field.
func ReviewCountGTE(v int) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldReviewCount, v))
}

// ReviewCountLT applies the LT predicate on the "review_count" field.
func ReviewCountLT(v int) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldReviewCount, v))
}

// ReviewCountLTE applies the LTE predicate on the "review_count" field.
func ReviewCountLTE(v int) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldReviewCount, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldRating, v))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldRating))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldAddress, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldLatitude, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldLongitude, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldWebsite, v))
}

// MapsURLEQ applies the EQ predicate on the "maps_url" field.
func MapsURLEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldMapsURL, v))
}

// MapsURLNEQ applies the NEQ predicate on the "maps_url" field.
func MapsURLNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldMapsURL, v))
}

// MapsURLIn applies the In predicate on the "maps_url" field.
func MapsURLIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldMapsURL, vs...))
}

// MapsURLNotIn applies the NotIn predicate on the "maps_url" field.
func MapsURLNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldMapsURL, vs...))
}

// MapsURLGT applies the GT predicate on the "maps_url" field.
func MapsURLGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldMapsURL, v))
}

// MapsURLGTE applies the GTE predicate on the "maps_url" field.
func MapsURLGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldMapsURL, v))
}

// MapsURLLT applies the LT predicate on the "maps_url" field.
func MapsURLLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldMapsURL, v))
}

// MapsURLLTE applies the LTE predicate on the "maps_url" field.
func MapsURLLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldMapsURL, v))
}

// MapsURLContains applies the Contains predicate on the "maps_url" field.
func MapsURLContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldMapsURL, v))
}

// MapsURLHasPrefix applies the HasPrefix predicate on the "maps_url" field.
func MapsURLHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldMapsURL, v))
}

// MapsURLHasSuffix applies the HasSuffix predicate on the "maps_url" field.
func MapsURLHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldMapsURL, v))
}

// MapsURLIsNil applies the IsNil predicate on the "maps_url" field.
func MapsURLIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldMapsURL))
}

// MapsURLNotNil applies the NotNil predicate on the "maps_url" field.
func MapsURLNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldMapsURL))
}

// MapsURLEqualFold applies the EqualFold predicate on the "maps_url" field.
func MapsURLEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldMapsURL, v))
}

// MapsURLContainsFold applies the ContainsFold predicate on the "maps_url" field.
func MapsURLContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldMapsURL, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldPrice, v))
}

// PriceContains applies the Contains predicate on the "price" field.
func PriceContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldPrice, v))
}

// PriceHasPrefix applies the HasPrefix predicate on the "price" field.
func PriceHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldPrice, v))
}

// PriceHasSuffix applies the HasSuffix predicate on the "price" field.
func PriceHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPrice))
}

// PriceEqualFold applies the EqualFold predicate on the "price" field.
func PriceEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldPrice, v))
}

// PriceContainsFold applies the ContainsFold predicate on the "price" field.
func PriceContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldPrice, v))
}

// CategoryNameEQ applies the EQ predicate on the "category_name" field.
func CategoryNameEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCategoryName, v))
}

// CategoryNameNEQ applies the NEQ predicate on the "category_name" field.
func CategoryNameNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCategoryName, v))
}

// CategoryNameIn applies the In predicate on the "category_name" field.
func CategoryNameIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCategoryName, vs...))
}

// CategoryNameNotIn applies the NotIn predicate on the "category_name" field.
func CategoryNameNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCategoryName, vs...))
}

// CategoryNameGT applies the GT predicate on the "category_name" field.
func CategoryNameGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCategoryName, v))
}

// CategoryNameGTE applies the GTE predicate on the "category_name" field.
func CategoryNameGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCategoryName, v))
}

// CategoryNameLT applies the LT predicate on the "category_name" field.
func CategoryNameLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCategoryName, v))
}

// CategoryNameLTE applies the LTE predicate on the "category_name" field.
func CategoryNameLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCategoryName, v))
}

// CategoryNameContains applies the Contains predicate on the "category_name" field.
func CategoryNameContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCategoryName, v))
}

// CategoryNameHasPrefix applies the HasPrefix predicate on the "category_name" field.
func CategoryNameHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCategoryName, v))
}

// CategoryNameHasSuffix applies the HasSuffix predicate on the "category_name" field.
func CategoryNameHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCategoryName, v))
}

// CategoryNameIsNil applies the IsNil predicate on the "category_name" field.
func CategoryNameIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldCategoryName))
}

// CategoryNameNotNil applies the NotNil predicate on the "category_name" field.
func CategoryNameNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldCategoryName))
}

// CategoryNameEqualFold applies the EqualFold predicate on the "category_name" field.
func CategoryNameEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCategoryName, v))
}

// CategoryNameContainsFold applies the ContainsFold predicate on the "category_name" field.
func CategoryNameContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCategoryName, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldCategories))
}

// NeighborhoodEQ applies the EQ predicate on the "neighborhood" field.
func NeighborhoodEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldNeighborhood, v))
}

// NeighborhoodNEQ applies the NEQ predicate on the "neighborhood" field.
func NeighborhoodNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldNeighborhood, v))
}

// NeighborhoodIn applies the In predicate on the "neighborhood" field.
func NeighborhoodIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldNeighborhood, vs...))
}

// NeighborhoodNotIn applies the NotIn predicate on the "neighborhood" field.
func NeighborhoodNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldNeighborhood, vs...))
}

// NeighborhoodGT applies the GT predicate on the "neighborhood" field.
func NeighborhoodGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldNeighborhood, v))
}

// NeighborhoodGTE applies the GTE predicate on the "neighborhood" field.
func NeighborhoodGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldNeighborhood, v))
}

// NeighborhoodLT applies the LT predicate on the "neighborhood" field.
func NeighborhoodLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldNeighborhood, v))
}

// NeighborhoodLTE applies the LTE predicate on the "neighborhood" field.
func NeighborhoodLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldNeighborhood, v))
}

// NeighborhoodContains applies the Contains predicate on the "neighborhood" field.
func NeighborhoodContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldNeighborhood, v))
}

// NeighborhoodHasPrefix applies the HasPrefix predicate on the "neighborhood" field.
func NeighborhoodHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldNeighborhood, v))
}

// NeighborhoodHasSuffix applies the HasSuffix predicate on the "neighborhood" field.
func NeighborhoodHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldNeighborhood, v))
}

// NeighborhoodIsNil applies the IsNil predicate on the "neighborhood" field.
func NeighborhoodIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldNeighborhood))
}

// NeighborhoodNotNil applies the NotNil predicate on the "neighborhood" field.
func NeighborhoodNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldNeighborhood))
}

// NeighborhoodEqualFold applies the EqualFold predicate on the "neighborhood" field.
func NeighborhoodEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldNeighborhood, v))
}

// NeighborhoodContainsFold applies the ContainsFold predicate on the "neighborhood" field.
func NeighborhoodContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldNeighborhood, v))
}

// StreetEQ applies the EQ predicate on the "street" field.
func StreetEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldStreet, v))
}

// StreetNEQ applies the NEQ predicate on the "street" field.
func StreetNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldStreet, v))
}

// StreetIn applies the In predicate on the "street" field.
func StreetIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldStreet, vs...))
}

// StreetNotIn applies the NotIn predicate on the "street" field.
func StreetNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldStreet, vs...))
}

// StreetGT applies the GT predicate on the "street" field.
func StreetGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldStreet, v))
}

// StreetGTE applies the GTE predicate on the "street" field.
func StreetGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldStreet, v))
}

// StreetLT applies the LT predicate on the "street" field.
func StreetLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldStreet, v))
}

// StreetLTE applies the LTE predicate on the "street" field.
func StreetLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldStreet, v))
}

// StreetContains applies the Contains predicate on the "street" field.
func StreetContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldStreet, v))
}

// StreetHasPrefix applies the HasPrefix predicate on the "street" field.
func StreetHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldStreet, v))
}

// StreetHasSuffix applies the HasSuffix predicate on the "street" field.
func StreetHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldStreet, v))
}

// StreetIsNil applies the IsNil predicate on the "street" field.
func StreetIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldStreet))
}

// StreetNotNil applies the NotNil predicate on the "street" field.
func StreetNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldStreet))
}

// StreetEqualFold applies the EqualFold predicate on the "street" field.
func StreetEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldStreet, v))
}

// StreetContainsFold applies the ContainsFold predicate on the "street" field.
func StreetContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldStreet, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCity, v))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldPostalCode, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldState, v))
}

// CountryCodeEQ applies the EQ predicate on the "country_code" field.
func CountryCodeEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCountryCode, v))
}

// CountryCodeNEQ applies the NEQ predicate on the "country_code" field.
func CountryCodeNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCountryCode, v))
}

// CountryCodeIn applies the In predicate on the "country_code" field.
func CountryCodeIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCountryCode, vs...))
}

// CountryCodeNotIn applies the NotIn predicate on the "country_code" field.
func CountryCodeNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCountryCode, vs...))
}

// CountryCodeGT applies the GT predicate on the "country_code" field.
func CountryCodeGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCountryCode, v))
}

// CountryCodeGTE applies the GTE predicate on the "country_code" field.
func CountryCodeGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCountryCode, v))
}

// CountryCodeLT applies the LT predicate on the "country_code" field.
func CountryCodeLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCountryCode, v))
}

// CountryCodeLTE applies the LTE predicate on the "country_code" field.
func CountryCodeLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCountryCode, v))
}

// CountryCodeContains applies the Contains predicate on the "country_code" field.
func CountryCodeContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCountryCode, v))
}

// CountryCodeHasPrefix applies the HasPrefix predicate on the "country_code" field.
func CountryCodeHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCountryCode, v))
}

// CountryCodeHasSuffix applies the HasSuffix predicate on the "country_code" field.
func CountryCodeHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCountryCode, v))
}

// CountryCodeIsNil applies the IsNil predicate on the "country_code" field.
func CountryCodeIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldCountryCode))
}

// CountryCodeNotNil applies the NotNil predicate on the "country_code" field.
func CountryCodeNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldCountryCode))
}

// CountryCodeEqualFold applies the EqualFold predicate on the "country_code" field.
func CountryCodeEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCountryCode, v))
}

// CountryCodeContainsFold applies the ContainsFold predicate on the "country_code" field.
func CountryCodeContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCountryCode, v))
}

// PermanentlyClosedEQ applies the EQ predicate on the "permanently_closed" field.
func PermanentlyClosedEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPermanentlyClosed, v))
}

// PermanentlyClosedNEQ applies the NEQ predicate on the "permanently_closed" field.
func PermanentlyClosedNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPermanentlyClosed, v))
}

// TemporarilyClosedEQ applies the EQ predicate on the "temporarily_closed" field.
func TemporarilyClosedEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTemporarilyClosed, v))
}

// TemporarilyClosedNEQ applies the NEQ predicate on the "temporarily_closed" field.
func TemporarilyClosedNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldTemporarilyClosed, v))
}

// PlaceIDEQ applies the EQ predicate on the "place_id" field.
func PlaceIDEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldPlaceID, v))
}

// PlaceIDNEQ applies the NEQ predicate on the "place_id" field.
func PlaceIDNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldPlaceID, v))
}

// PlaceIDIn applies the In predicate on the "place_id" field.
func PlaceIDIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldPlaceID, vs...))
}

// PlaceIDNotIn applies the NotIn predicate on the "place_id" field.
func PlaceIDNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldPlaceID, vs...))
}

// PlaceIDGT applies the GT predicate on the "place_id" field.
func PlaceIDGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldPlaceID, v))
}

// PlaceIDGTE applies the GTE predicate on the "place_id" field.
func PlaceIDGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldPlaceID, v))
}

// PlaceIDLT applies the LT predicate on the "place_id" field.
func PlaceIDLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldPlaceID, v))
}

// PlaceIDLTE applies the LTE predicate on the "place_id" field.
func PlaceIDLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldPlaceID, v))
}

// PlaceIDContains applies the Contains predicate on the "place_id" field.
func PlaceIDContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldPlaceID, v))
}

// PlaceIDHasPrefix applies the HasPrefix predicate on the "place_id" field.
func PlaceIDHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldPlaceID, v))
}

// PlaceIDHasSuffix applies the HasSuffix predicate on the "place_id" field.
func PlaceIDHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldPlaceID, v))
}

// PlaceIDIsNil applies the IsNil predicate on the "place_id" field.
func PlaceIDIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPlaceID))
}

// PlaceIDNotNil applies the NotNil predicate on the "place_id" field.
func PlaceIDNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPlaceID))
}

// PlaceIDEqualFold applies the EqualFold predicate on the "place_id" field.
func PlaceIDEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldPlaceID, v))
}

// PlaceIDContainsFold applies the ContainsFold predicate on the "place_id" field.
func PlaceIDContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldPlaceID, v))
}

// CidEQ applies the EQ predicate on the "cid" field.
func CidEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCid, v))
}

// CidNEQ applies the NEQ predicate on the "cid" field.
func CidNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCid, v))
}

// CidIn applies the In predicate on the "cid" field.
func CidIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCid, vs...))
}

// CidNotIn applies the NotIn predicate on the "cid" field.
func CidNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCid, vs...))
}

// CidGT applies the GT predicate on the "cid" field.
func CidGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCid, v))
}

// CidGTE applies the GTE predicate on the "cid" field.
func CidGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCid, v))
}

// CidLT applies the LT predicate on the "cid" field.
func CidLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCid, v))
}

// CidLTE applies the LTE predicate on the "cid" field.
func CidLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCid, v))
}

// CidContains applies the Contains predicate on the "cid" field.
func CidContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldCid, v))
}

// CidHasPrefix applies the HasPrefix predicate on the "cid" field.
func CidHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldCid, v))
}

// CidHasSuffix applies the HasSuffix predicate on the "cid" field.
func CidHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldCid, v))
}

// CidIsNil applies the IsNil predicate on the "cid" field.
func CidIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldCid))
}

// CidNotNil applies the NotNil predicate on the "cid" field.
func CidNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldCid))
}

// CidEqualFold applies the EqualFold predicate on the "cid" field.
func CidEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldCid, v))
}

// CidContainsFold applies the ContainsFold predicate on the "cid" field.
func CidContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldCid, v))
}

// ImagesCountEQ applies the EQ predicate on the "images_count" field.
func ImagesCountEQ(v int) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldImagesCount, v))
}

// ImagesCountNEQ applies the NEQ predicate on the "images_count" field.
func ImagesCountNEQ(v int) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldImagesCount, v))
}

// ImagesCountIn applies the In predicate on the "images_count" field.
func ImagesCountIn(vs ...int) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldImagesCount, vs...))
}

// ImagesCountNotIn applies the NotIn predicate on the "images_count" field.
func ImagesCountNotIn(vs ...int) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldImagesCount, vs...))
}

// ImagesCountGT applies the GT predicate on the "images_count" field.
func ImagesCountGT(v int) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldImagesCount, v))
}

// ImagesCountGTE applies the GTE predicate on the "images_count" field.
func ImagesCountGTE(v int) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldImagesCount, v))
}

// ImagesCountLT applies the LT predicate on the "images_count" field.
func ImagesCountLT(v int) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldImagesCount, v))
}

// ImagesCountLTE applies the LTE predicate on the "images_count" field.
func ImagesCountLTE(v int) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldImagesCount, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldImageURL, v))
}

// HotelStarsEQ applies the EQ predicate on the "hotel_stars" field.
func HotelStarsEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldHotelStars, v))
}

// HotelStarsNEQ applies the NEQ predicate on the "hotel_stars" field.
func HotelStarsNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldHotelStars, v))
}

// HotelStarsIn applies the In predicate on the "hotel_stars" field.
func HotelStarsIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldHotelStars, vs...))
}

// HotelStarsNotIn applies the NotIn predicate on the "hotel_stars" field.
func HotelStarsNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldHotelStars, vs...))
}

// HotelStarsGT applies the GT predicate on the "hotel_stars" field.
func HotelStarsGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldHotelStars, v))
}

// HotelStarsGTE applies the GTE predicate on the "hotel_stars" field.
func HotelStarsGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldHotelStars, v))
}

// HotelStarsLT applies the LT predicate on the "hotel_stars" field.
func HotelStarsLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldHotelStars, v))
}

// HotelStarsLTE applies the LTE predicate on the "hotel_stars" field.
func HotelStarsLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldHotelStars, v))
}

// HotelStarsContains applies the Contains predicate on the "hotel_stars" field.
func HotelStarsContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldHotelStars, v))
}

// HotelStarsHasPrefix applies the HasPrefix predicate on the "hotel_stars" field.
func HotelStarsHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldHotelStars, v))
}

// HotelStarsHasSuffix applies the HasSuffix predicate on the "hotel_stars" field.
func HotelStarsHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldHotelStars, v))
}

// HotelStarsIsNil applies the IsNil predicate on the "hotel_stars" field.
func HotelStarsIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldHotelStars))
}

// HotelStarsNotNil applies the NotNil predicate on the "hotel_stars" field.
func HotelStarsNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldHotelStars))
}

// HotelStarsEqualFold applies the EqualFold predicate on the "hotel_stars" field.
func HotelStarsEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldHotelStars, v))
}

// HotelStarsContainsFold applies the ContainsFold predicate on the "hotel_stars" field.
func HotelStarsContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldHotelStars, v))
}

// EmailsIsNil applies the IsNil predicate on the "emails" field.
func EmailsIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldEmails))
}

// EmailsNotNil applies the NotNil predicate on the "emails" field.
func EmailsNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldEmails))
}

// PhonesIsNil applies the IsNil predicate on the "phones" field.
func PhonesIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldPhones))
}

// PhonesNotNil applies the NotNil predicate on the "phones" field.
func PhonesNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldPhones))
}

// InstagramEQ applies the EQ predicate on the "instagram" field.
func InstagramEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldInstagram, v))
}

// InstagramNEQ applies the NEQ predicate on the "instagram" field.
func InstagramNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldInstagram, v))
}

// InstagramIn applies the In predicate on the "instagram" field.
func InstagramIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldInstagram, vs...))
}

// InstagramNotIn applies the NotIn predicate on the "instagram" field.
func InstagramNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldInstagram, vs...))
}

// InstagramGT applies the GT predicate on the "instagram" field.
func InstagramGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldInstagram, v))
}

// InstagramGTE applies the GTE predicate on the "instagram" field.
func InstagramGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldInstagram, v))
}

// InstagramLT applies the LT predicate on the "instagram" field.
func InstagramLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldInstagram, v))
}

// InstagramLTE applies the LTE predicate on the "instagram" field.
func InstagramLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldInstagram, v))
}

// InstagramContains applies the Contains predicate on the "instagram" field.
func InstagramContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldInstagram, v))
}

// InstagramHasPrefix applies the HasPrefix predicate on the "instagram" field.
func InstagramHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldInstagram, v))
}

// InstagramHasSuffix applies the HasSuffix predicate on the "instagram" field.
func InstagramHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldInstagram, v))
}

// InstagramIsNil applies the IsNil predicate on the "instagram" field.
func InstagramIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldInstagram))
}

// InstagramNotNil applies the NotNil predicate on the "instagram" field.
func InstagramNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldInstagram))
}

// InstagramEqualFold applies the EqualFold predicate on the "instagram" field.
func InstagramEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldInstagram, v))
}

// InstagramContainsFold applies the ContainsFold predicate on the "instagram" field.
func InstagramContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldInstagram, v))
}

// FacebookEQ applies the EQ predicate on the "facebook" field.
func FacebookEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldFacebook, v))
}

// FacebookNEQ applies the NEQ predicate on the "facebook" field.
func FacebookNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldFacebook, v))
}

// FacebookIn applies the In predicate on the "facebook" field.
func FacebookIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldFacebook, vs...))
}

// FacebookNotIn applies the NotIn predicate on the "facebook" field.
func FacebookNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldFacebook, vs...))
}

// FacebookGT applies the GT predicate on the "facebook" field.
func FacebookGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldFacebook, v))
}

// FacebookGTE applies the GTE predicate on the "facebook" field.
func FacebookGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldFacebook, v))
}

// FacebookLT applies the LT predicate on the "facebook" field.
func FacebookLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldFacebook, v))
}

// FacebookLTE applies the LTE predicate on the "facebook" field.
func FacebookLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldFacebook, v))
}

// FacebookContains applies the Contains predicate on the "facebook" field.
func FacebookContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldFacebook, v))
}

// FacebookHasPrefix applies the HasPrefix predicate on the "facebook" field.
func FacebookHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldFacebook, v))
}

// FacebookHasSuffix applies the HasSuffix predicate on the "facebook" field.
func FacebookHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldFacebook, v))
}

// FacebookIsNil applies the IsNil predicate on the "facebook" field.
func FacebookIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldFacebook))
}

// FacebookNotNil applies the NotNil predicate on the "facebook" field.
func FacebookNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldFacebook))
}

// FacebookEqualFold applies the EqualFold predicate on the "facebook" field.
func FacebookEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldFacebook, v))
}

// FacebookContainsFold applies the ContainsFold predicate on the "facebook" field.
func FacebookContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldFacebook, v))
}

// TwitterEQ applies the EQ predicate on the "twitter" field.
func TwitterEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTwitter, v))
}

// TwitterNEQ applies the NEQ predicate on the "twitter" field.
func TwitterNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldTwitter, v))
}

// TwitterIn applies the In predicate on the "twitter" field.
func TwitterIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldTwitter, vs...))
}

// TwitterNotIn applies the NotIn predicate on the "twitter" field.
func TwitterNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldTwitter, vs...))
}

// TwitterGT applies the GT predicate on the "twitter" field.
func TwitterGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldTwitter, v))
}

// TwitterGTE applies the GTE predicate on the "twitter" field.
func TwitterGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldTwitter, v))
}

// TwitterLT applies the LT predicate on the "twitter" field.
func TwitterLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldTwitter, v))
}

// TwitterLTE applies the LTE predicate on the "twitter" field.
func TwitterLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldTwitter, v))
}

// TwitterContains applies the Contains predicate on the "twitter" field.
func TwitterContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldTwitter, v))
}

// TwitterHasPrefix applies the HasPrefix predicate on the "twitter" field.
func TwitterHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldTwitter, v))
}

// TwitterHasSuffix applies the HasSuffix predicate on the "twitter" field.
func TwitterHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldTwitter, v))
}

// TwitterIsNil applies the IsNil predicate on the "twitter" field.
func TwitterIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldTwitter))
}

// TwitterNotNil applies the NotNil predicate on the "twitter" field.
func TwitterNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldTwitter))
}

// TwitterEqualFold applies the EqualFold predicate on the "twitter" field.
func TwitterEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldTwitter, v))
}

// TwitterContainsFold applies the ContainsFold predicate on the "twitter" field.
func TwitterContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldTwitter, v))
}

// YoutubeEQ applies the EQ predicate on the "youtube" field.
func YoutubeEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldYoutube, v))
}

// YoutubeNEQ applies the NEQ predicate on the "youtube" field.
func YoutubeNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldYoutube, v))
}

// YoutubeIn applies the In predicate on the "youtube" field.
func YoutubeIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldYoutube, vs...))
}

// YoutubeNotIn applies the NotIn predicate on the "youtube" field.
func YoutubeNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldYoutube, vs...))
}

// YoutubeGT applies the GT predicate on the "youtube" field.
func YoutubeGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldYoutube, v))
}

// YoutubeGTE applies the GTE predicate on the "youtube" field.
func YoutubeGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldYoutube, v))
}

// YoutubeLT applies the LT predicate on the "youtube" field.
func YoutubeLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldYoutube, v))
}

// YoutubeLTE applies the LTE predicate on the "youtube" field.
func YoutubeLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldYoutube, v))
}

// YoutubeContains applies the Contains predicate on the "youtube" field.
func YoutubeContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldYoutube, v))
}

// YoutubeHasPrefix applies the HasPrefix predicate on the "youtube" field.
func YoutubeHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldYoutube, v))
}

// YoutubeHasSuffix applies the HasSuffix predicate on the "youtube" field.
func YoutubeHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldYoutube, v))
}

// YoutubeIsNil applies the IsNil predicate on the "youtube" field.
func YoutubeIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldYoutube))
}

// YoutubeNotNil applies the NotNil predicate on the "youtube" field.
func YoutubeNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldYoutube))
}

// YoutubeEqualFold applies the EqualFold predicate on the "youtube" field.
func YoutubeEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldYoutube, v))
}

// YoutubeContainsFold applies the ContainsFold predicate on the "youtube" field.
func YoutubeContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldYoutube, v))
}

// TiktokEQ applies the EQ predicate on the "tiktok" field.
func TiktokEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldTiktok, v))
}

// TiktokNEQ applies the NEQ predicate on the "tiktok" field.
func TiktokNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldTiktok, v))
}

// TiktokIn applies the In predicate on the "tiktok" field.
func TiktokIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldTiktok, vs...))
}

// TiktokNotIn applies the NotIn predicate on the "tiktok" field.
func TiktokNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldTiktok, vs...))
}

// TiktokGT applies the GT predicate on the "tiktok" field.
func TiktokGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldTiktok, v))
}

// TiktokGTE applies the GTE predicate on the "tiktok" field.
func TiktokGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldTiktok, v))
}

// TiktokLT applies the LT predicate on the "tiktok" field.
func TiktokLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldTiktok, v))
}

// TiktokLTE applies the LTE predicate on the "tiktok" field.
func TiktokLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldTiktok, v))
}

// TiktokContains applies the Contains predicate on the "tiktok" field.
func TiktokContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldTiktok, v))
}

// TiktokHasPrefix applies the HasPrefix predicate on the "tiktok" field.
func TiktokHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldTiktok, v))
}

// TiktokHasSuffix applies the HasSuffix predicate on the "tiktok" field.
func TiktokHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldTiktok, v))
}

// TiktokIsNil applies the IsNil predicate on the "tiktok" field.
func TiktokIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldTiktok))
}

// TiktokNotNil applies the NotNil predicate on the "tiktok" field.
func TiktokNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldTiktok))
}

// TiktokEqualFold applies the EqualFold predicate on the "tiktok" field.
func TiktokEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldTiktok, v))
}

// TiktokContainsFold applies the ContainsFold predicate on the "tiktok" field.
func TiktokContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldTiktok, v))
}

// LinkedinEQ applies the EQ predicate on the "linkedin" field.
func LinkedinEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldLinkedin, v))
}

// LinkedinNEQ applies the NEQ predicate on the "linkedin" field.
func LinkedinNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldLinkedin, v))
}

// LinkedinIn applies the In predicate on the "linkedin" field.
func LinkedinIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldLinkedin, vs...))
}

// LinkedinNotIn applies the NotIn predicate on the "linkedin" field.
func LinkedinNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldLinkedin, vs...))
}

// LinkedinGT applies the GT predicate on the "linkedin" field.
func LinkedinGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldLinkedin, v))
}

// LinkedinGTE applies the GTE predicate on the "linkedin" field.
func LinkedinGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldLinkedin, v))
}

// LinkedinLT applies the LT predicate on the "linkedin" field.
func LinkedinLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldLinkedin, v))
}

// LinkedinLTE applies the LTE predicate on the "linkedin" field.
func LinkedinLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldLinkedin, v))
}

// LinkedinContains applies the Contains predicate on the "linkedin" field.
func LinkedinContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldLinkedin, v))
}

// LinkedinHasPrefix applies the HasPrefix predicate on the "linkedin" field.
func LinkedinHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldLinkedin, v))
}

// LinkedinHasSuffix applies the HasSuffix predicate on the "linkedin" field.
func LinkedinHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldLinkedin, v))
}

// LinkedinIsNil applies the IsNil predicate on the "linkedin" field.
func LinkedinIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldLinkedin))
}

// LinkedinNotNil applies the NotNil predicate on the "linkedin" field.
func LinkedinNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldLinkedin))
}

// LinkedinEqualFold applies the EqualFold predicate on the "linkedin" field.
func LinkedinEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldLinkedin, v))
}

// LinkedinContainsFold applies the ContainsFold predicate on the "linkedin" field.
func LinkedinContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldLinkedin, v))
}

// WhatsappEQ applies the EQ predicate on the "whatsapp" field.
func WhatsappEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldWhatsapp, v))
}

// WhatsappNEQ applies the NEQ predicate on the "whatsapp" field.
func WhatsappNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldWhatsapp, v))
}

// WhatsappIn applies the In predicate on the "whatsapp" field.
func WhatsappIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldWhatsapp, vs...))
}

// WhatsappNotIn applies the NotIn predicate on the "whatsapp" field.
func WhatsappNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldWhatsapp, vs...))
}

// WhatsappGT applies the GT predicate on the "whatsapp" field.
func WhatsappGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldWhatsapp, v))
}

// WhatsappGTE applies the GTE predicate on the "whatsapp" field.
func WhatsappGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldWhatsapp, v))
}

// WhatsappLT applies the LT predicate on the "whatsapp" field.
func WhatsappLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldWhatsapp, v))
}

// WhatsappLTE applies the LTE predicate on the "whatsapp" field.
func WhatsappLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldWhatsapp, v))
}

// WhatsappContains applies the Contains predicate on the "whatsapp" field.
func WhatsappContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldWhatsapp, v))
}

// WhatsappHasPrefix applies the HasPrefix predicate on the "whatsapp" field.
func WhatsappHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldWhatsapp, v))
}

// WhatsappHasSuffix applies the HasSuffix predicate on the "whatsapp" field.
func WhatsappHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldWhatsapp, v))
}

// WhatsappIsNil applies the IsNil predicate on the "whatsapp" field.
func WhatsappIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldWhatsapp))
}

// WhatsappNotNil applies the NotNil predicate on the "whatsapp" field.
func WhatsappNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldWhatsapp))
}

// WhatsappEqualFold applies the EqualFold predicate on the "whatsapp" field.
func WhatsappEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldWhatsapp, v))
}

// WhatsappContainsFold applies the ContainsFold predicate on the "whatsapp" field.
func WhatsappContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldWhatsapp, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainIsNil applies the IsNil predicate on the "domain" field.
func DomainIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldDomain))
}

// DomainNotNil applies the NotNil predicate on the "domain" field.
func DomainNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldDomain))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldDomain, v))
}

// OpeningHoursIsNil applies the IsNil predicate on the "opening_hours" field.
func OpeningHoursIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldOpeningHours))
}

// OpeningHoursNotNil applies the NotNil predicate on the "opening_hours" field.
func OpeningHoursNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldOpeningHours))
}

// AdditionalInfoIsNil applies the IsNil predicate on the "additional_info" field.
func AdditionalInfoIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldAdditionalInfo))
}

// AdditionalInfoNotNil applies the NotNil predicate on the "additional_info" field.
func AdditionalInfoNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldAdditionalInfo))
}

// EmailSentEQ applies the EQ predicate on the "email_sent" field.
func EmailSentEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEmailSent, v))
}

// EmailSentNEQ applies the NEQ predicate on the "email_sent" field.
func EmailSentNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldEmailSent, v))
}

// EmailSentAtEQ applies the EQ predicate on the "email_sent_at" field.
func EmailSentAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldEmailSentAt, v))
}

// EmailSentAtNEQ applies the NEQ predicate on the "email_sent_at" field.
func EmailSentAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldEmailSentAt, v))
}

// EmailSentAtIn applies the In predicate on the "email_sent_at" field.
func EmailSentAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldEmailSentAt, vs...))
}

// EmailSentAtNotIn applies the NotIn predicate on the "email_sent_at" field.
func EmailSentAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldEmailSentAt, vs...))
}

// EmailSentAtGT applies the GT predicate on the "email_sent_at" field.
func EmailSentAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldEmailSentAt, v))
}

// EmailSentAtGTE applies the GTE predicate on the "email_sent_at" field.
func EmailSentAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldEmailSentAt, v))
}

// EmailSentAtLT applies the LT predicate on the "email_sent_at" field.
func EmailSentAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldEmailSentAt, v))
}

// EmailSentAtLTE applies the LTE predicate on the "email_sent_at" field.
func EmailSentAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldEmailSentAt, v))
}

// EmailSentAtIsNil applies the IsNil predicate on the "email_sent_at" field.
func EmailSentAtIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldEmailSentAt))
}

// EmailSentAtNotNil applies the NotNil predicate on the "email_sent_at" field.
func EmailSentAtNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldEmailSentAt))
}

// SmsSentEQ applies the EQ predicate on the "sms_sent" field.
func SmsSentEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSmsSent, v))
}

// SmsSentNEQ applies the NEQ predicate on the "sms_sent" field.
func SmsSentNEQ(v bool) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldSmsSent, v))
}

// SmsSentAtEQ applies the EQ predicate on the "sms_sent_at" field.
func SmsSentAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSmsSentAt, v))
}

// SmsSentAtNEQ applies the NEQ predicate on the "sms_sent_at" field.
func SmsSentAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldSmsSentAt, v))
}

// SmsSentAtIn applies the In predicate on the "sms_sent_at" field.
func SmsSentAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldSmsSentAt, vs...))
}

// SmsSentAtNotIn applies the NotIn predicate on the "sms_sent_at" field.
func SmsSentAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldSmsSentAt, vs...))
}

// SmsSentAtGT applies the GT predicate on the "sms_sent_at" field.
func SmsSentAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldSmsSentAt, v))
}

// SmsSentAtGTE applies the GTE predicate on the "sms_sent_at" field.
func SmsSentAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldSmsSentAt, v))
}

// SmsSentAtLT applies the LT predicate on the "sms_sent_at" field.
func SmsSentAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldSmsSentAt, v))
}

// SmsSentAtLTE applies the LTE predicate on the "sms_sent_at" field.
func SmsSentAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldSmsSentAt, v))
}

// SmsSentAtIsNil applies the IsNil predicate on the "sms_sent_at" field.
func SmsSentAtIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldSmsSentAt))
}

// SmsSentAtNotNil applies the NotNil predicate on the "sms_sent_at" field.
func SmsSentAtNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldSmsSentAt))
}

// SearchQueryEQ applies the EQ predicate on the "search_query" field.
func SearchQueryEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldSearchQuery, v))
}

// SearchQueryNEQ applies the NEQ predicate on the "search_query" field.
func SearchQueryNEQ(v string) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldSearchQuery, v))
}

// SearchQueryIn applies the In predicate on the "search_query" field.
func SearchQueryIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldSearchQuery, vs...))
}

// SearchQueryNotIn applies the NotIn predicate on the "search_query" field.
func SearchQueryNotIn(vs ...string) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldSearchQuery, vs...))
}

// SearchQueryGT applies the GT predicate on the "search_query" field.
func SearchQueryGT(v string) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldSearchQuery, v))
}

// SearchQueryGTE applies the GTE predicate on the "search_query" field.
func SearchQueryGTE(v string) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldSearchQuery, v))
}

// SearchQueryLT applies the LT predicate on the "search_query" field.
func SearchQueryLT(v string) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldSearchQuery, v))
}

// SearchQueryLTE applies the LTE predicate on the "search_query" field.
func SearchQueryLTE(v string) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldSearchQuery, v))
}

// SearchQueryContains applies the Contains predicate on the "search_query" field.
func SearchQueryContains(v string) predicate.Business {
	return predicate.Business(sql.FieldContains(FieldSearchQuery, v))
}

// SearchQueryHasPrefix applies the HasPrefix predicate on the "search_query" field.
func SearchQueryHasPrefix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasPrefix(FieldSearchQuery, v))
}

// SearchQueryHasSuffix applies the HasSuffix predicate on the "search_query" field.
func SearchQueryHasSuffix(v string) predicate.Business {
	return predicate.Business(sql.FieldHasSuffix(FieldSearchQuery, v))
}

// SearchQueryIsNil applies the IsNil predicate on the "search_query" field.
func SearchQueryIsNil() predicate.Business {
	return predicate.Business(sql.FieldIsNull(FieldSearchQuery))
}

// SearchQueryNotNil applies the NotNil predicate on the "search_query" field.
func SearchQueryNotNil() predicate.Business {
	return predicate.Business(sql.FieldNotNull(FieldSearchQuery))
}

// SearchQueryEqualFold applies the EqualFold predicate on the "search_query" field.
func SearchQueryEqualFold(v string) predicate.Business {
	return predicate.Business(sql.FieldEqualFold(FieldSearchQuery, v))
}

// SearchQueryContainsFold applies the ContainsFold predicate on the "search_query" field.
func SearchQueryContainsFold(v string) predicate.Business {
	return predicate.Business(sql.FieldContainsFold(FieldSearchQuery, v))
}

// ScrapedAtEQ applies the EQ predicate on the "scraped_at" field.
func ScrapedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldScrapedAt, v))
}

// ScrapedAtNEQ applies the NEQ predicate on the "scraped_at" field.
func ScrapedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldScrapedAt, v))
}

// ScrapedAtIn applies the In predicate on the "scraped_at" field.
func ScrapedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldScrapedAt, vs...))
}

// ScrapedAtNotIn applies the NotIn predicate on the "scraped_at" field.
func ScrapedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldScrapedAt, vs...))
}

// ScrapedAtGT applies the GT predicate on the "scraped_at" field.
func ScrapedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldScrapedAt, v))
}

// ScrapedAtGTE applies the GTE predicate on the "scraped_at" field.
func ScrapedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldScrapedAt, v))
}

// ScrapedAtLT applies the LT predicate on the "scraped_at" field.
func ScrapedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldScrapedAt, v))
}

// ScrapedAtLTE applies the LTE predicate on the "scraped_at" field.
func ScrapedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldScrapedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Business {
	return predicate.Business(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Business {
	return predicate.Business(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Business) predicate.Business {
	return predicate.Business(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Business) predicate.Business {
	return predicate.Business(sql.NotPredicates(p))
}
