// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/ent/predicate"
)

// BusinessUpdate is the builder for updating Business entities.
type BusinessUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessMutation
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdate) Where(ps ...predicate.Business) *BusinessUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BusinessUpdate) SetName(v string) *BusinessUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableName(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BusinessUpdate) SetPhone(v string) *BusinessUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePhone(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BusinessUpdate) ClearPhone() *BusinessUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetPhoneUnformatted sets the "phone_unformatted" field.
func (_u *BusinessUpdate) SetPhoneUnformatted(v string) *BusinessUpdate {
	_u.mutation.SetPhoneUnformatted(v)
	return _u
}

// SetNillablePhoneUnformatted sets the "phone_unformatted" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePhoneUnformatted(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetPhoneUnformatted(*v)
	}
	return _u
}

// ClearPhoneUnformatted clears the value of the "phone_unformatted" field.
func (_u *BusinessUpdate) ClearPhoneUnformatted() *BusinessUpdate {
	_u.mutation.ClearPhoneUnformatted()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *BusinessUpdate) SetReviewCount(v int) *BusinessUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableReviewCount(v *int) *BusinessUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *BusinessUpdate) AddReviewCount(v int) *BusinessUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *BusinessUpdate) SetRating(v float64) *BusinessUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableRating(v *float64) *BusinessUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *BusinessUpdate) AddRating(v float64) *BusinessUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *BusinessUpdate) ClearRating() *BusinessUpdate {
	_u.mutation.ClearRating()
	return _u
}

// SetAddress sets the "address" field.
func (_u *BusinessUpdate) SetAddress(v string) *BusinessUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableAddress(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BusinessUpdate) ClearAddress() *BusinessUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *BusinessUpdate) SetLatitude(v float64) *BusinessUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableLatitude(v *float64) *BusinessUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *BusinessUpdate) AddLatitude(v float64) *BusinessUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *BusinessUpdate) SetLongitude(v float64) *BusinessUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableLongitude(v *float64) *BusinessUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *BusinessUpdate) AddLongitude(v float64) *BusinessUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *BusinessUpdate) SetWebsite(v string) *BusinessUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableWebsite(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *BusinessUpdate) ClearWebsite() *BusinessUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetMapsURL sets the "maps_url" field.
func (_u *BusinessUpdate) SetMapsURL(v string) *BusinessUpdate {
	_u.mutation.SetMapsURL(v)
	return _u
}

// SetNillableMapsURL sets the "maps_url" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableMapsURL(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetMapsURL(*v)
	}
	return _u
}

// ClearMapsURL clears the value of the "maps_url" field.
func (_u *BusinessUpdate) ClearMapsURL() *BusinessUpdate {
	_u.mutation.ClearMapsURL()
	return _u
}

// SetPrice sets the "price" field.
func (_u *BusinessUpdate) SetPrice(v string) *BusinessUpdate {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePrice(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *BusinessUpdate) ClearPrice() *BusinessUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *BusinessUpdate) SetCategoryName(v string) *BusinessUpdate {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCategoryName(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// ClearCategoryName clears the value of the "category_name" field.
func (_u *BusinessUpdate) ClearCategoryName() *BusinessUpdate {
	_u.mutation.ClearCategoryName()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *BusinessUpdate) SetCategories(v []string) *BusinessUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *BusinessUpdate) AppendCategories(v []string) *BusinessUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *BusinessUpdate) ClearCategories() *BusinessUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetNeighborhood sets the "neighborhood" field.
func (_u *BusinessUpdate) SetNeighborhood(v string) *BusinessUpdate {
	_u.mutation.SetNeighborhood(v)
	return _u
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableNeighborhood(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetNeighborhood(*v)
	}
	return _u
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (_u *BusinessUpdate) ClearNeighborhood() *BusinessUpdate {
	_u.mutation.ClearNeighborhood()
	return _u
}

// SetStreet sets the "street" field.
func (_u *BusinessUpdate) SetStreet(v string) *BusinessUpdate {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableStreet(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *BusinessUpdate) ClearStreet() *BusinessUpdate {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *BusinessUpdate) SetCity(v string) *BusinessUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCity(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *BusinessUpdate) ClearCity() *BusinessUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *BusinessUpdate) SetPostalCode(v string) *BusinessUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePostalCode(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *BusinessUpdate) ClearPostalCode() *BusinessUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetState sets the "state" field.
func (_u *BusinessUpdate) SetState(v string) *BusinessUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableState(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *BusinessUpdate) ClearState() *BusinessUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *BusinessUpdate) SetCountryCode(v string) *BusinessUpdate {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCountryCode(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *BusinessUpdate) ClearCountryCode() *BusinessUpdate {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetPermanentlyClosed sets the "permanently_closed" field.
func (_u *BusinessUpdate) SetPermanentlyClosed(v bool) *BusinessUpdate {
	_u.mutation.SetPermanentlyClosed(v)
	return _u
}

// SetNillablePermanentlyClosed sets the "permanently_closed" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePermanentlyClosed(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetPermanentlyClosed(*v)
	}
	return _u
}

// SetTemporarilyClosed sets the "temporarily_closed" field.
func (_u *BusinessUpdate) SetTemporarilyClosed(v bool) *BusinessUpdate {
	_u.mutation.SetTemporarilyClosed(v)
	return _u
}

// SetNillableTemporarilyClosed sets the "temporarily_closed" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableTemporarilyClosed(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetTemporarilyClosed(*v)
	}
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *BusinessUpdate) SetPlaceID(v string) *BusinessUpdate {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillablePlaceID(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *BusinessUpdate) ClearPlaceID() *BusinessUpdate {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetCid sets the "cid" field.
func (_u *BusinessUpdate) SetCid(v string) *BusinessUpdate {
	_u.mutation.SetCid(v)
	return _u
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableCid(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetCid(*v)
	}
	return _u
}

// ClearCid clears the value of the "cid" field.
func (_u *BusinessUpdate) ClearCid() *BusinessUpdate {
	_u.mutation.ClearCid()
	return _u
}

// SetImagesCount sets the "images_count" field.
func (_u *BusinessUpdate) SetImagesCount(v int) *BusinessUpdate {
	_u.mutation.ResetImagesCount()
	_u.mutation.SetImagesCount(v)
	return _u
}

// SetNillableImagesCount sets the "images_count" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableImagesCount(v *int) *BusinessUpdate {
	if v != nil {
		_u.SetImagesCount(*v)
	}
	return _u
}

// AddImagesCount adds value to the "images_count" field.
func (_u *BusinessUpdate) AddImagesCount(v int) *BusinessUpdate {
	_u.mutation.AddImagesCount(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *BusinessUpdate) SetImageURL(v string) *BusinessUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableImageURL(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *BusinessUpdate) ClearImageURL() *BusinessUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetHotelStars sets the "hotel_stars" field.
func (_u *BusinessUpdate) SetHotelStars(v string) *BusinessUpdate {
	_u.mutation.SetHotelStars(v)
	return _u
}

// SetNillableHotelStars sets the "hotel_stars" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableHotelStars(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetHotelStars(*v)
	}
	return _u
}

// ClearHotelStars clears the value of the "hotel_stars" field.
func (_u *BusinessUpdate) ClearHotelStars() *BusinessUpdate {
	_u.mutation.ClearHotelStars()
	return _u
}

// SetEmails sets the "emails" field.
func (_u *BusinessUpdate) SetEmails(v []string) *BusinessUpdate {
	_u.mutation.SetEmails(v)
	return _u
}

// AppendEmails appends value to the "emails" field.
func (_u *BusinessUpdate) AppendEmails(v []string) *BusinessUpdate {
	_u.mutation.AppendEmails(v)
	return _u
}

// ClearEmails clears the value of the "emails" field.
func (_u *BusinessUpdate) ClearEmails() *BusinessUpdate {
	_u.mutation.ClearEmails()
	return _u
}

// SetPhones sets the "phones" field.
func (_u *BusinessUpdate) SetPhones(v []string) *BusinessUpdate {
	_u.mutation.SetPhones(v)
	return _u
}

// AppendPhones appends value to the "phones" field.
func (_u *BusinessUpdate) AppendPhones(v []string) *BusinessUpdate {
	_u.mutation.AppendPhones(v)
	return _u
}

// ClearPhones clears the value of the "phones" field.
func (_u *BusinessUpdate) ClearPhones() *BusinessUpdate {
	_u.mutation.ClearPhones()
	return _u
}

// SetInstagram sets the "instagram" field.
func (_u *BusinessUpdate) SetInstagram(v string) *BusinessUpdate {
	_u.mutation.SetInstagram(v)
	return _u
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableInstagram(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetInstagram(*v)
	}
	return _u
}

// ClearInstagram clears the value of the "instagram" field.
func (_u *BusinessUpdate) ClearInstagram() *BusinessUpdate {
	_u.mutation.ClearInstagram()
	return _u
}

// SetFacebook sets the "facebook" field.
func (_u *BusinessUpdate) SetFacebook(v string) *BusinessUpdate {
	_u.mutation.SetFacebook(v)
	return _u
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableFacebook(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetFacebook(*v)
	}
	return _u
}

// ClearFacebook clears the value of the "facebook" field.
func (_u *BusinessUpdate) ClearFacebook() *BusinessUpdate {
	_u.mutation.ClearFacebook()
	return _u
}

// SetTwitter sets the "twitter" field.
func (_u *BusinessUpdate) SetTwitter(v string) *BusinessUpdate {
	_u.mutation.SetTwitter(v)
	return _u
}

// SetNillableTwitter sets the "twitter" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableTwitter(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetTwitter(*v)
	}
	return _u
}

// ClearTwitter clears the value of the "twitter" field.
func (_u *BusinessUpdate) ClearTwitter() *BusinessUpdate {
	_u.mutation.ClearTwitter()
	return _u
}

// SetYoutube sets the "youtube" field.
func (_u *BusinessUpdate) SetYoutube(v string) *BusinessUpdate {
	_u.mutation.SetYoutube(v)
	return _u
}

// SetNillableYoutube sets the "youtube" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableYoutube(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetYoutube(*v)
	}
	return _u
}

// ClearYoutube clears the value of the "youtube" field.
func (_u *BusinessUpdate) ClearYoutube() *BusinessUpdate {
	_u.mutation.ClearYoutube()
	return _u
}

// SetTiktok sets the "tiktok" field.
func (_u *BusinessUpdate) SetTiktok(v string) *BusinessUpdate {
	_u.mutation.SetTiktok(v)
	return _u
}

// SetNillableTiktok sets the "tiktok" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableTiktok(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetTiktok(*v)
	}
	return _u
}

// ClearTiktok clears the value of the "tiktok" field.
func (_u *BusinessUpdate) ClearTiktok() *BusinessUpdate {
	_u.mutation.ClearTiktok()
	return _u
}

// SetLinkedin sets the "linkedin" field.
func (_u *BusinessUpdate) SetLinkedin(v string) *BusinessUpdate {
	_u.mutation.SetLinkedin(v)
	return _u
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableLinkedin(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetLinkedin(*v)
	}
	return _u
}

// ClearLinkedin clears the value of the "linkedin" field.
func (_u *BusinessUpdate) ClearLinkedin() *BusinessUpdate {
	_u.mutation.ClearLinkedin()
	return _u
}

// SetWhatsapp sets the "whatsapp" field.
func (_u *BusinessUpdate) SetWhatsapp(v string) *BusinessUpdate {
	_u.mutation.SetWhatsapp(v)
	return _u
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableWhatsapp(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetWhatsapp(*v)
	}
	return _u
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (_u *BusinessUpdate) ClearWhatsapp() *BusinessUpdate {
	_u.mutation.ClearWhatsapp()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *BusinessUpdate) SetDomain(v string) *BusinessUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableDomain(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *BusinessUpdate) ClearDomain() *BusinessUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *BusinessUpdate) SetOpeningHours(v []map[string]interface{}) *BusinessUpdate {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// AppendOpeningHours appends value to the "opening_hours" field.
func (_u *BusinessUpdate) AppendOpeningHours(v []map[string]interface{}) *BusinessUpdate {
	_u.mutation.AppendOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *BusinessUpdate) ClearOpeningHours() *BusinessUpdate {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetAdditionalInfo sets the "additional_info" field.
func (_u *BusinessUpdate) SetAdditionalInfo(v map[string]interface{}) *BusinessUpdate {
	_u.mutation.SetAdditionalInfo(v)
	return _u
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (_u *BusinessUpdate) ClearAdditionalInfo() *BusinessUpdate {
	_u.mutation.ClearAdditionalInfo()
	return _u
}

// SetEmailSent sets the "email_sent" field.
func (_u *BusinessUpdate) SetEmailSent(v bool) *BusinessUpdate {
	_u.mutation.SetEmailSent(v)
	return _u
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableEmailSent(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetEmailSent(*v)
	}
	return _u
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_u *BusinessUpdate) SetEmailSentAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetEmailSentAt(v)
	return _u
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableEmailSentAt(v *time.Time) *BusinessUpdate {
	if v != nil {
		_u.SetEmailSentAt(*v)
	}
	return _u
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (_u *BusinessUpdate) ClearEmailSentAt() *BusinessUpdate {
	_u.mutation.ClearEmailSentAt()
	return _u
}

// SetSmsSent sets the "sms_sent" field.
func (_u *BusinessUpdate) SetSmsSent(v bool) *BusinessUpdate {
	_u.mutation.SetSmsSent(v)
	return _u
}

// SetNillableSmsSent sets the "sms_sent" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableSmsSent(v *bool) *BusinessUpdate {
	if v != nil {
		_u.SetSmsSent(*v)
	}
	return _u
}

// SetSmsSentAt sets the "sms_sent_at" field.
func (_u *BusinessUpdate) SetSmsSentAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetSmsSentAt(v)
	return _u
}

// SetNillableSmsSentAt sets the "sms_sent_at" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableSmsSentAt(v *time.Time) *BusinessUpdate {
	if v != nil {
		_u.SetSmsSentAt(*v)
	}
	return _u
}

// ClearSmsSentAt clears the value of the "sms_sent_at" field.
func (_u *BusinessUpdate) ClearSmsSentAt() *BusinessUpdate {
	_u.mutation.ClearSmsSentAt()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *BusinessUpdate) SetSearchQuery(v string) *BusinessUpdate {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableSearchQuery(v *string) *BusinessUpdate {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// ClearSearchQuery clears the value of the "search_query" field.
func (_u *BusinessUpdate) ClearSearchQuery() *BusinessUpdate {
	_u.mutation.ClearSearchQuery()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *BusinessUpdate) SetScrapedAt(v time.Time) *BusinessUpdate {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *BusinessUpdate) SetNillableScrapedAt(v *time.Time) *BusinessUpdate {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdate) Mutation() *BusinessMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(business.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(business.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneUnformatted(); ok {
		_spec.SetField(business.FieldPhoneUnformatted, field.TypeString, value)
	}
	if _u.mutation.PhoneUnformattedCleared() {
		_spec.ClearField(business.FieldPhoneUnformatted, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(business.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(business.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(business.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(business.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(business.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(business.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(business.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(business.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(business.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(business.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(business.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(business.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(business.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.MapsURL(); ok {
		_spec.SetField(business.FieldMapsURL, field.TypeString, value)
	}
	if _u.mutation.MapsURLCleared() {
		_spec.ClearField(business.FieldMapsURL, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(business.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(business.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(business.FieldCategoryName, field.TypeString, value)
	}
	if _u.mutation.CategoryNameCleared() {
		_spec.ClearField(business.FieldCategoryName, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(business.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(business.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Neighborhood(); ok {
		_spec.SetField(business.FieldNeighborhood, field.TypeString, value)
	}
	if _u.mutation.NeighborhoodCleared() {
		_spec.ClearField(business.FieldNeighborhood, field.TypeString)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(business.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(business.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(business.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(business.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(business.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(business.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(business.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(business.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(business.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(business.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.PermanentlyClosed(); ok {
		_spec.SetField(business.FieldPermanentlyClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TemporarilyClosed(); ok {
		_spec.SetField(business.FieldTemporarilyClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(business.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(business.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Cid(); ok {
		_spec.SetField(business.FieldCid, field.TypeString, value)
	}
	if _u.mutation.CidCleared() {
		_spec.ClearField(business.FieldCid, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesCount(); ok {
		_spec.SetField(business.FieldImagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagesCount(); ok {
		_spec.AddField(business.FieldImagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(business.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(business.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.HotelStars(); ok {
		_spec.SetField(business.FieldHotelStars, field.TypeString, value)
	}
	if _u.mutation.HotelStarsCleared() {
		_spec.ClearField(business.FieldHotelStars, field.TypeString)
	}
	if value, ok := _u.mutation.Emails(); ok {
		_spec.SetField(business.FieldEmails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldEmails, value)
		})
	}
	if _u.mutation.EmailsCleared() {
		_spec.ClearField(business.FieldEmails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Phones(); ok {
		_spec.SetField(business.FieldPhones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldPhones, value)
		})
	}
	if _u.mutation.PhonesCleared() {
		_spec.ClearField(business.FieldPhones, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instagram(); ok {
		_spec.SetField(business.FieldInstagram, field.TypeString, value)
	}
	if _u.mutation.InstagramCleared() {
		_spec.ClearField(business.FieldInstagram, field.TypeString)
	}
	if value, ok := _u.mutation.Facebook(); ok {
		_spec.SetField(business.FieldFacebook, field.TypeString, value)
	}
	if _u.mutation.FacebookCleared() {
		_spec.ClearField(business.FieldFacebook, field.TypeString)
	}
	if value, ok := _u.mutation.Twitter(); ok {
		_spec.SetField(business.FieldTwitter, field.TypeString, value)
	}
	if _u.mutation.TwitterCleared() {
		_spec.ClearField(business.FieldTwitter, field.TypeString)
	}
	if value, ok := _u.mutation.Youtube(); ok {
		_spec.SetField(business.FieldYoutube, field.TypeString, value)
	}
	if _u.mutation.YoutubeCleared() {
		_spec.ClearField(business.FieldYoutube, field.TypeString)
	}
	if value, ok := _u.mutation.Tiktok(); ok {
		_spec.SetField(business.FieldTiktok, field.TypeString, value)
	}
	if _u.mutation.TiktokCleared() {
		_spec.ClearField(business.FieldTiktok, field.TypeString)
	}
	if value, ok := _u.mutation.Linkedin(); ok {
		_spec.SetField(business.FieldLinkedin, field.TypeString, value)
	}
	if _u.mutation.LinkedinCleared() {
		_spec.ClearField(business.FieldLinkedin, field.TypeString)
	}
	if value, ok := _u.mutation.Whatsapp(); ok {
		_spec.SetField(business.FieldWhatsapp, field.TypeString, value)
	}
	if _u.mutation.WhatsappCleared() {
		_spec.ClearField(business.FieldWhatsapp, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(business.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(business.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(business.FieldOpeningHours, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpeningHours(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldOpeningHours, value)
		})
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(business.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.AdditionalInfo(); ok {
		_spec.SetField(business.FieldAdditionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalInfoCleared() {
		_spec.ClearField(business.FieldAdditionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmailSent(); ok {
		_spec.SetField(business.FieldEmailSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailSentAt(); ok {
		_spec.SetField(business.FieldEmailSentAt, field.TypeTime, value)
	}
	if _u.mutation.EmailSentAtCleared() {
		_spec.ClearField(business.FieldEmailSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SmsSent(); ok {
		_spec.SetField(business.FieldSmsSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SmsSentAt(); ok {
		_spec.SetField(business.FieldSmsSentAt, field.TypeTime, value)
	}
	if _u.mutation.SmsSentAtCleared() {
		_spec.ClearField(business.FieldSmsSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(business.FieldSearchQuery, field.TypeString, value)
	}
	if _u.mutation.SearchQueryCleared() {
		_spec.ClearField(business.FieldSearchQuery, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(business.FieldScrapedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessUpdateOne is the builder for updating a single Business entity.
type BusinessUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessMutation
}

// SetName sets the "name" field.
func (_u *BusinessUpdateOne) SetName(v string) *BusinessUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableName(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BusinessUpdateOne) SetPhone(v string) *BusinessUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePhone(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BusinessUpdateOne) ClearPhone() *BusinessUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetPhoneUnformatted sets the "phone_unformatted" field.
func (_u *BusinessUpdateOne) SetPhoneUnformatted(v string) *BusinessUpdateOne {
	_u.mutation.SetPhoneUnformatted(v)
	return _u
}

// SetNillablePhoneUnformatted sets the "phone_unformatted" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePhoneUnformatted(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetPhoneUnformatted(*v)
	}
	return _u
}

// ClearPhoneUnformatted clears the value of the "phone_unformatted" field.
func (_u *BusinessUpdateOne) ClearPhoneUnformatted() *BusinessUpdateOne {
	_u.mutation.ClearPhoneUnformatted()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *BusinessUpdateOne) SetReviewCount(v int) *BusinessUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableReviewCount(v *int) *BusinessUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *BusinessUpdateOne) AddReviewCount(v int) *BusinessUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *BusinessUpdateOne) SetRating(v float64) *BusinessUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableRating(v *float64) *BusinessUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *BusinessUpdateOne) AddRating(v float64) *BusinessUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// ClearRating clears the value of the "rating" field.
func (_u *BusinessUpdateOne) ClearRating() *BusinessUpdateOne {
	_u.mutation.ClearRating()
	return _u
}

// SetAddress sets the "address" field.
func (_u *BusinessUpdateOne) SetAddress(v string) *BusinessUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableAddress(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BusinessUpdateOne) ClearAddress() *BusinessUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *BusinessUpdateOne) SetLatitude(v float64) *BusinessUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableLatitude(v *float64) *BusinessUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *BusinessUpdateOne) AddLatitude(v float64) *BusinessUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *BusinessUpdateOne) SetLongitude(v float64) *BusinessUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableLongitude(v *float64) *BusinessUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *BusinessUpdateOne) AddLongitude(v float64) *BusinessUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetWebsite sets the "website" field.
func (_u *BusinessUpdateOne) SetWebsite(v string) *BusinessUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableWebsite(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *BusinessUpdateOne) ClearWebsite() *BusinessUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetMapsURL sets the "maps_url" field.
func (_u *BusinessUpdateOne) SetMapsURL(v string) *BusinessUpdateOne {
	_u.mutation.SetMapsURL(v)
	return _u
}

// SetNillableMapsURL sets the "maps_url" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableMapsURL(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetMapsURL(*v)
	}
	return _u
}

// ClearMapsURL clears the value of the "maps_url" field.
func (_u *BusinessUpdateOne) ClearMapsURL() *BusinessUpdateOne {
	_u.mutation.ClearMapsURL()
	return _u
}

// SetPrice sets the "price" field.
func (_u *BusinessUpdateOne) SetPrice(v string) *BusinessUpdateOne {
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePrice(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *BusinessUpdateOne) ClearPrice() *BusinessUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetCategoryName sets the "category_name" field.
func (_u *BusinessUpdateOne) SetCategoryName(v string) *BusinessUpdateOne {
	_u.mutation.SetCategoryName(v)
	return _u
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCategoryName(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCategoryName(*v)
	}
	return _u
}

// ClearCategoryName clears the value of the "category_name" field.
func (_u *BusinessUpdateOne) ClearCategoryName() *BusinessUpdateOne {
	_u.mutation.ClearCategoryName()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *BusinessUpdateOne) SetCategories(v []string) *BusinessUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *BusinessUpdateOne) AppendCategories(v []string) *BusinessUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *BusinessUpdateOne) ClearCategories() *BusinessUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetNeighborhood sets the "neighborhood" field.
func (_u *BusinessUpdateOne) SetNeighborhood(v string) *BusinessUpdateOne {
	_u.mutation.SetNeighborhood(v)
	return _u
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableNeighborhood(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetNeighborhood(*v)
	}
	return _u
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (_u *BusinessUpdateOne) ClearNeighborhood() *BusinessUpdateOne {
	_u.mutation.ClearNeighborhood()
	return _u
}

// SetStreet sets the "street" field.
func (_u *BusinessUpdateOne) SetStreet(v string) *BusinessUpdateOne {
	_u.mutation.SetStreet(v)
	return _u
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableStreet(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetStreet(*v)
	}
	return _u
}

// ClearStreet clears the value of the "street" field.
func (_u *BusinessUpdateOne) ClearStreet() *BusinessUpdateOne {
	_u.mutation.ClearStreet()
	return _u
}

// SetCity sets the "city" field.
func (_u *BusinessUpdateOne) SetCity(v string) *BusinessUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCity(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *BusinessUpdateOne) ClearCity() *BusinessUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *BusinessUpdateOne) SetPostalCode(v string) *BusinessUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePostalCode(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *BusinessUpdateOne) ClearPostalCode() *BusinessUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetState sets the "state" field.
func (_u *BusinessUpdateOne) SetState(v string) *BusinessUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableState(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *BusinessUpdateOne) ClearState() *BusinessUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *BusinessUpdateOne) SetCountryCode(v string) *BusinessUpdateOne {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCountryCode(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *BusinessUpdateOne) ClearCountryCode() *BusinessUpdateOne {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetPermanentlyClosed sets the "permanently_closed" field.
func (_u *BusinessUpdateOne) SetPermanentlyClosed(v bool) *BusinessUpdateOne {
	_u.mutation.SetPermanentlyClosed(v)
	return _u
}

// SetNillablePermanentlyClosed sets the "permanently_closed" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePermanentlyClosed(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetPermanentlyClosed(*v)
	}
	return _u
}

// SetTemporarilyClosed sets the "temporarily_closed" field.
func (_u *BusinessUpdateOne) SetTemporarilyClosed(v bool) *BusinessUpdateOne {
	_u.mutation.SetTemporarilyClosed(v)
	return _u
}

// SetNillableTemporarilyClosed sets the "temporarily_closed" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableTemporarilyClosed(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetTemporarilyClosed(*v)
	}
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *BusinessUpdateOne) SetPlaceID(v string) *BusinessUpdateOne {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillablePlaceID(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *BusinessUpdateOne) ClearPlaceID() *BusinessUpdateOne {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetCid sets the "cid" field.
func (_u *BusinessUpdateOne) SetCid(v string) *BusinessUpdateOne {
	_u.mutation.SetCid(v)
	return _u
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableCid(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetCid(*v)
	}
	return _u
}

// ClearCid clears the value of the "cid" field.
func (_u *BusinessUpdateOne) ClearCid() *BusinessUpdateOne {
	_u.mutation.ClearCid()
	return _u
}

// SetImagesCount sets the "images_count" field.
func (_u *BusinessUpdateOne) SetImagesCount(v int) *BusinessUpdateOne {
	_u.mutation.ResetImagesCount()
	_u.mutation.SetImagesCount(v)
	return _u
}

// SetNillableImagesCount sets the "images_count" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableImagesCount(v *int) *BusinessUpdateOne {
	if v != nil {
		_u.SetImagesCount(*v)
	}
	return _u
}

// AddImagesCount adds value to the "images_count" field.
func (_u *BusinessUpdateOne) AddImagesCount(v int) *BusinessUpdateOne {
	_u.mutation.AddImagesCount(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *BusinessUpdateOne) SetImageURL(v string) *BusinessUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableImageURL(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *BusinessUpdateOne) ClearImageURL() *BusinessUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetHotelStars sets the "hotel_stars" field.
func (_u *BusinessUpdateOne) SetHotelStars(v string) *BusinessUpdateOne {
	_u.mutation.SetHotelStars(v)
	return _u
}

// SetNillableHotelStars sets the "hotel_stars" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableHotelStars(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetHotelStars(*v)
	}
	return _u
}

// ClearHotelStars clears the value of the "hotel_stars" field.
func (_u *BusinessUpdateOne) ClearHotelStars() *BusinessUpdateOne {
	_u.mutation.ClearHotelStars()
	return _u
}

// SetEmails sets the "emails" field.
func (_u *BusinessUpdateOne) SetEmails(v []string) *BusinessUpdateOne {
	_u.mutation.SetEmails(v)
	return _u
}

// AppendEmails appends value to the "emails" field.
func (_u *BusinessUpdateOne) AppendEmails(v []string) *BusinessUpdateOne {
	_u.mutation.AppendEmails(v)
	return _u
}

// ClearEmails clears the value of the "emails" field.
func (_u *BusinessUpdateOne) ClearEmails() *BusinessUpdateOne {
	_u.mutation.ClearEmails()
	return _u
}

// SetPhones sets the "phones" field.
func (_u *BusinessUpdateOne) SetPhones(v []string) *BusinessUpdateOne {
	_u.mutation.SetPhones(v)
	return _u
}

// AppendPhones appends value to the "phones" field.
func (_u *BusinessUpdateOne) AppendPhones(v []string) *BusinessUpdateOne {
	_u.mutation.AppendPhones(v)
	return _u
}

// ClearPhones clears the value of the "phones" field.
func (_u *BusinessUpdateOne) ClearPhones() *BusinessUpdateOne {
	_u.mutation.ClearPhones()
	return _u
}

// SetInstagram sets the "instagram" field.
func (_u *BusinessUpdateOne) SetInstagram(v string) *BusinessUpdateOne {
	_u.mutation.SetInstagram(v)
	return _u
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableInstagram(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetInstagram(*v)
	}
	return _u
}

// ClearInstagram clears the value of the "instagram" field.
func (_u *BusinessUpdateOne) ClearInstagram() *BusinessUpdateOne {
	_u.mutation.ClearInstagram()
	return _u
}

// SetFacebook sets the "facebook" field.
func (_u *BusinessUpdateOne) SetFacebook(v string) *BusinessUpdateOne {
	_u.mutation.SetFacebook(v)
	return _u
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableFacebook(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetFacebook(*v)
	}
	return _u
}

// ClearFacebook clears the value of the "facebook" field.
func (_u *BusinessUpdateOne) ClearFacebook() *BusinessUpdateOne {
	_u.mutation.ClearFacebook()
	return _u
}

// SetTwitter sets the "twitter" field.
func (_u *BusinessUpdateOne) SetTwitter(v string) *BusinessUpdateOne {
	_u.mutation.SetTwitter(v)
	return _u
}

// SetNillableTwitter sets the "twitter" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableTwitter(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetTwitter(*v)
	}
	return _u
}

// ClearTwitter clears the value of the "twitter" field.
func (_u *BusinessUpdateOne) ClearTwitter() *BusinessUpdateOne {
	_u.mutation.ClearTwitter()
	return _u
}

// SetYoutube sets the "youtube" field.
func (_u *BusinessUpdateOne) SetYoutube(v string) *BusinessUpdateOne {
	_u.mutation.SetYoutube(v)
	return _u
}

// SetNillableYoutube sets the "youtube" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableYoutube(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetYoutube(*v)
	}
	return _u
}

// ClearYoutube clears the value of the "youtube" field.
func (_u *BusinessUpdateOne) ClearYoutube() *BusinessUpdateOne {
	_u.mutation.ClearYoutube()
	return _u
}

// SetTiktok sets the "tiktok" field.
func (_u *BusinessUpdateOne) SetTiktok(v string) *BusinessUpdateOne {
	_u.mutation.SetTiktok(v)
	return _u
}

// SetNillableTiktok sets the "tiktok" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableTiktok(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetTiktok(*v)
	}
	return _u
}

// ClearTiktok clears the value of the "tiktok" field.
func (_u *BusinessUpdateOne) ClearTiktok() *BusinessUpdateOne {
	_u.mutation.ClearTiktok()
	return _u
}

// SetLinkedin sets the "linkedin" field.
func (_u *BusinessUpdateOne) SetLinkedin(v string) *BusinessUpdateOne {
	_u.mutation.SetLinkedin(v)
	return _u
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableLinkedin(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetLinkedin(*v)
	}
	return _u
}

// ClearLinkedin clears the value of the "linkedin" field.
func (_u *BusinessUpdateOne) ClearLinkedin() *BusinessUpdateOne {
	_u.mutation.ClearLinkedin()
	return _u
}

// SetWhatsapp sets the "whatsapp" field.
func (_u *BusinessUpdateOne) SetWhatsapp(v string) *BusinessUpdateOne {
	_u.mutation.SetWhatsapp(v)
	return _u
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableWhatsapp(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetWhatsapp(*v)
	}
	return _u
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (_u *BusinessUpdateOne) ClearWhatsapp() *BusinessUpdateOne {
	_u.mutation.ClearWhatsapp()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *BusinessUpdateOne) SetDomain(v string) *BusinessUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableDomain(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *BusinessUpdateOne) ClearDomain() *BusinessUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetOpeningHours sets the "opening_hours" field.
func (_u *BusinessUpdateOne) SetOpeningHours(v []map[string]interface{}) *BusinessUpdateOne {
	_u.mutation.SetOpeningHours(v)
	return _u
}

// AppendOpeningHours appends value to the "opening_hours" field.
func (_u *BusinessUpdateOne) AppendOpeningHours(v []map[string]interface{}) *BusinessUpdateOne {
	_u.mutation.AppendOpeningHours(v)
	return _u
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (_u *BusinessUpdateOne) ClearOpeningHours() *BusinessUpdateOne {
	_u.mutation.ClearOpeningHours()
	return _u
}

// SetAdditionalInfo sets the "additional_info" field.
func (_u *BusinessUpdateOne) SetAdditionalInfo(v map[string]interface{}) *BusinessUpdateOne {
	_u.mutation.SetAdditionalInfo(v)
	return _u
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (_u *BusinessUpdateOne) ClearAdditionalInfo() *BusinessUpdateOne {
	_u.mutation.ClearAdditionalInfo()
	return _u
}

// SetEmailSent sets the "email_sent" field.
func (_u *BusinessUpdateOne) SetEmailSent(v bool) *BusinessUpdateOne {
	_u.mutation.SetEmailSent(v)
	return _u
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableEmailSent(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetEmailSent(*v)
	}
	return _u
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_u *BusinessUpdateOne) SetEmailSentAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetEmailSentAt(v)
	return _u
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableEmailSentAt(v *time.Time) *BusinessUpdateOne {
	if v != nil {
		_u.SetEmailSentAt(*v)
	}
	return _u
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (_u *BusinessUpdateOne) ClearEmailSentAt() *BusinessUpdateOne {
	_u.mutation.ClearEmailSentAt()
	return _u
}

// SetSmsSent sets the "sms_sent" field.
func (_u *BusinessUpdateOne) SetSmsSent(v bool) *BusinessUpdateOne {
	_u.mutation.SetSmsSent(v)
	return _u
}

// SetNillableSmsSent sets the "sms_sent" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableSmsSent(v *bool) *BusinessUpdateOne {
	if v != nil {
		_u.SetSmsSent(*v)
	}
	return _u
}

// SetSmsSentAt sets the "sms_sent_at" field.
func (_u *BusinessUpdateOne) SetSmsSentAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetSmsSentAt(v)
	return _u
}

// SetNillableSmsSentAt sets the "sms_sent_at" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableSmsSentAt(v *time.Time) *BusinessUpdateOne {
	if v != nil {
		_u.SetSmsSentAt(*v)
	}
	return _u
}

// ClearSmsSentAt clears the value of the "sms_sent_at" field.
func (_u *BusinessUpdateOne) ClearSmsSentAt() *BusinessUpdateOne {
	_u.mutation.ClearSmsSentAt()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *BusinessUpdateOne) SetSearchQuery(v string) *BusinessUpdateOne {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableSearchQuery(v *string) *BusinessUpdateOne {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// ClearSearchQuery clears the value of the "search_query" field.
func (_u *BusinessUpdateOne) ClearSearchQuery() *BusinessUpdateOne {
	_u.mutation.ClearSearchQuery()
	return _u
}

// SetScrapedAt sets the "scraped_at" field.
func (_u *BusinessUpdateOne) SetScrapedAt(v time.Time) *BusinessUpdateOne {
	_u.mutation.SetScrapedAt(v)
	return _u
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_u *BusinessUpdateOne) SetNillableScrapedAt(v *time.Time) *BusinessUpdateOne {
	if v != nil {
		_u.SetScrapedAt(*v)
	}
	return _u
}

// Mutation returns the BusinessMutation object of the builder.
func (_u *BusinessUpdateOne) Mutation() *BusinessMutation {
	return _u.mutation
}

// Where appends a list predicates to the BusinessUpdate builder.
func (_u *BusinessUpdateOne) Where(ps ...predicate.Business) *BusinessUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessUpdateOne) Select(field string, fields ...string) *BusinessUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Business entity.
func (_u *BusinessUpdateOne) Save(ctx context.Context) (*Business, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessUpdateOne) SaveX(ctx context.Context) *Business {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessUpdateOne) sqlSave(ctx context.Context) (_node *Business, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(business.Table, business.Columns, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Business.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, business.FieldID)
		for _, f := range fields {
			if !business.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != business.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(business.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(business.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneUnformatted(); ok {
		_spec.SetField(business.FieldPhoneUnformatted, field.TypeString, value)
	}
	if _u.mutation.PhoneUnformattedCleared() {
		_spec.ClearField(business.FieldPhoneUnformatted, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(business.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(business.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(business.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(business.FieldRating, field.TypeFloat64, value)
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(business.FieldRating, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(business.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(business.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(business.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(business.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(business.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(business.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(business.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(business.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.MapsURL(); ok {
		_spec.SetField(business.FieldMapsURL, field.TypeString, value)
	}
	if _u.mutation.MapsURLCleared() {
		_spec.ClearField(business.FieldMapsURL, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(business.FieldPrice, field.TypeString, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(business.FieldPrice, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryName(); ok {
		_spec.SetField(business.FieldCategoryName, field.TypeString, value)
	}
	if _u.mutation.CategoryNameCleared() {
		_spec.ClearField(business.FieldCategoryName, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(business.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(business.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.Neighborhood(); ok {
		_spec.SetField(business.FieldNeighborhood, field.TypeString, value)
	}
	if _u.mutation.NeighborhoodCleared() {
		_spec.ClearField(business.FieldNeighborhood, field.TypeString)
	}
	if value, ok := _u.mutation.Street(); ok {
		_spec.SetField(business.FieldStreet, field.TypeString, value)
	}
	if _u.mutation.StreetCleared() {
		_spec.ClearField(business.FieldStreet, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(business.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(business.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(business.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(business.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(business.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(business.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(business.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(business.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.PermanentlyClosed(); ok {
		_spec.SetField(business.FieldPermanentlyClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TemporarilyClosed(); ok {
		_spec.SetField(business.FieldTemporarilyClosed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(business.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(business.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Cid(); ok {
		_spec.SetField(business.FieldCid, field.TypeString, value)
	}
	if _u.mutation.CidCleared() {
		_spec.ClearField(business.FieldCid, field.TypeString)
	}
	if value, ok := _u.mutation.ImagesCount(); ok {
		_spec.SetField(business.FieldImagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImagesCount(); ok {
		_spec.AddField(business.FieldImagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(business.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(business.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.HotelStars(); ok {
		_spec.SetField(business.FieldHotelStars, field.TypeString, value)
	}
	if _u.mutation.HotelStarsCleared() {
		_spec.ClearField(business.FieldHotelStars, field.TypeString)
	}
	if value, ok := _u.mutation.Emails(); ok {
		_spec.SetField(business.FieldEmails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldEmails, value)
		})
	}
	if _u.mutation.EmailsCleared() {
		_spec.ClearField(business.FieldEmails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Phones(); ok {
		_spec.SetField(business.FieldPhones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldPhones, value)
		})
	}
	if _u.mutation.PhonesCleared() {
		_spec.ClearField(business.FieldPhones, field.TypeJSON)
	}
	if value, ok := _u.mutation.Instagram(); ok {
		_spec.SetField(business.FieldInstagram, field.TypeString, value)
	}
	if _u.mutation.InstagramCleared() {
		_spec.ClearField(business.FieldInstagram, field.TypeString)
	}
	if value, ok := _u.mutation.Facebook(); ok {
		_spec.SetField(business.FieldFacebook, field.TypeString, value)
	}
	if _u.mutation.FacebookCleared() {
		_spec.ClearField(business.FieldFacebook, field.TypeString)
	}
	if value, ok := _u.mutation.Twitter(); ok {
		_spec.SetField(business.FieldTwitter, field.TypeString, value)
	}
	if _u.mutation.TwitterCleared() {
		_spec.ClearField(business.FieldTwitter, field.TypeString)
	}
	if value, ok := _u.mutation.Youtube(); ok {
		_spec.SetField(business.FieldYoutube, field.TypeString, value)
	}
	if _u.mutation.YoutubeCleared() {
		_spec.ClearField(business.FieldYoutube, field.TypeString)
	}
	if value, ok := _u.mutation.Tiktok(); ok {
		_spec.SetField(business.FieldTiktok, field.TypeString, value)
	}
	if _u.mutation.TiktokCleared() {
		_spec.ClearField(business.FieldTiktok, field.TypeString)
	}
	if value, ok := _u.mutation.Linkedin(); ok {
		_spec.SetField(business.FieldLinkedin, field.TypeString, value)
	}
	if _u.mutation.LinkedinCleared() {
		_spec.ClearField(business.FieldLinkedin, field.TypeString)
	}
	if value, ok := _u.mutation.Whatsapp(); ok {
		_spec.SetField(business.FieldWhatsapp, field.TypeString, value)
	}
	if _u.mutation.WhatsappCleared() {
		_spec.ClearField(business.FieldWhatsapp, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(business.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(business.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.OpeningHours(); ok {
		_spec.SetField(business.FieldOpeningHours, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpeningHours(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, business.FieldOpeningHours, value)
		})
	}
	if _u.mutation.OpeningHoursCleared() {
		_spec.ClearField(business.FieldOpeningHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.AdditionalInfo(); ok {
		_spec.SetField(business.FieldAdditionalInfo, field.TypeJSON, value)
	}
	if _u.mutation.AdditionalInfoCleared() {
		_spec.ClearField(business.FieldAdditionalInfo, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmailSent(); ok {
		_spec.SetField(business.FieldEmailSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailSentAt(); ok {
		_spec.SetField(business.FieldEmailSentAt, field.TypeTime, value)
	}
	if _u.mutation.EmailSentAtCleared() {
		_spec.ClearField(business.FieldEmailSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SmsSent(); ok {
		_spec.SetField(business.FieldSmsSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SmsSentAt(); ok {
		_spec.SetField(business.FieldSmsSentAt, field.TypeTime, value)
	}
	if _u.mutation.SmsSentAtCleared() {
		_spec.ClearField(business.FieldSmsSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(business.FieldSearchQuery, field.TypeString, value)
	}
	if _u.mutation.SearchQueryCleared() {
		_spec.ClearField(business.FieldSearchQuery, field.TypeString)
	}
	if value, ok := _u.mutation.ScrapedAt(); ok {
		_spec.SetField(business.FieldScrapedAt, field.TypeTime, value)
	}
	_node = &Business{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{business.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
