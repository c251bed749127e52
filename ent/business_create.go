// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/business"
)

// BusinessCreate is the builder for creating a Business entity.
type BusinessCreate struct {
	config
	mutation *BusinessMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BusinessCreate) SetName(v string) *BusinessCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *BusinessCreate) SetPhone(v string) *BusinessCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePhone(v *string) *BusinessCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetPhoneUnformatted sets the "phone_unformatted" field.
func (_c *BusinessCreate) SetPhoneUnformatted(v string) *BusinessCreate {
	_c.mutation.SetPhoneUnformatted(v)
	return _c
}

// SetNillablePhoneUnformatted sets the "phone_unformatted" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePhoneUnformatted(v *string) *BusinessCreate {
	if v != nil {
		_c.SetPhoneUnformatted(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *BusinessCreate) SetReviewCount(v int) *BusinessCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableReviewCount(v *int) *BusinessCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *BusinessCreate) SetRating(v float64) *BusinessCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableRating(v *float64) *BusinessCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *BusinessCreate) SetAddress(v string) *BusinessCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableAddress(v *string) *BusinessCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *BusinessCreate) SetLatitude(v float64) *BusinessCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableLatitude(v *float64) *BusinessCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *BusinessCreate) SetLongitude(v float64) *BusinessCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableLongitude(v *float64) *BusinessCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *BusinessCreate) SetWebsite(v string) *BusinessCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableWebsite(v *string) *BusinessCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetMapsURL sets the "maps_url" field.
func (_c *BusinessCreate) SetMapsURL(v string) *BusinessCreate {
	_c.mutation.SetMapsURL(v)
	return _c
}

// SetNillableMapsURL sets the "maps_url" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableMapsURL(v *string) *BusinessCreate {
	if v != nil {
		_c.SetMapsURL(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *BusinessCreate) SetPrice(v string) *BusinessCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePrice(v *string) *BusinessCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetCategoryName sets the "category_name" field.
func (_c *BusinessCreate) SetCategoryName(v string) *BusinessCreate {
	_c.mutation.SetCategoryName(v)
	return _c
}

// SetNillableCategoryName sets the "category_name" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCategoryName(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCategoryName(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *BusinessCreate) SetCategories(v []string) *BusinessCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetNeighborhood sets the "neighborhood" field.
func (_c *BusinessCreate) SetNeighborhood(v string) *BusinessCreate {
	_c.mutation.SetNeighborhood(v)
	return _c
}

// SetNillableNeighborhood sets the "neighborhood" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableNeighborhood(v *string) *BusinessCreate {
	if v != nil {
		_c.SetNeighborhood(*v)
	}
	return _c
}

// SetStreet sets the "street" field.
func (_c *BusinessCreate) SetStreet(v string) *BusinessCreate {
	_c.mutation.SetStreet(v)
	return _c
}

// SetNillableStreet sets the "street" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableStreet(v *string) *BusinessCreate {
	if v != nil {
		_c.SetStreet(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *BusinessCreate) SetCity(v string) *BusinessCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCity(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *BusinessCreate) SetPostalCode(v string) *BusinessCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePostalCode(v *string) *BusinessCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *BusinessCreate) SetState(v string) *BusinessCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableState(v *string) *BusinessCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCountryCode sets the "country_code" field.
func (_c *BusinessCreate) SetCountryCode(v string) *BusinessCreate {
	_c.mutation.SetCountryCode(v)
	return _c
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCountryCode(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCountryCode(*v)
	}
	return _c
}

// SetPermanentlyClosed sets the "permanently_closed" field.
func (_c *BusinessCreate) SetPermanentlyClosed(v bool) *BusinessCreate {
	_c.mutation.SetPermanentlyClosed(v)
	return _c
}

// SetNillablePermanentlyClosed sets the "permanently_closed" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePermanentlyClosed(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetPermanentlyClosed(*v)
	}
	return _c
}

// SetTemporarilyClosed sets the "temporarily_closed" field.
func (_c *BusinessCreate) SetTemporarilyClosed(v bool) *BusinessCreate {
	_c.mutation.SetTemporarilyClosed(v)
	return _c
}

// SetNillableTemporarilyClosed sets the "temporarily_closed" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableTemporarilyClosed(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetTemporarilyClosed(*v)
	}
	return _c
}

// SetPlaceID sets the "place_id" field.
func (_c *BusinessCreate) SetPlaceID(v string) *BusinessCreate {
	_c.mutation.SetPlaceID(v)
	return _c
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_c *BusinessCreate) SetNillablePlaceID(v *string) *BusinessCreate {
	if v != nil {
		_c.SetPlaceID(*v)
	}
	return _c
}

// SetCid sets the "cid" field.
func (_c *BusinessCreate) SetCid(v string) *BusinessCreate {
	_c.mutation.SetCid(v)
	return _c
}

// SetNillableCid sets the "cid" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCid(v *string) *BusinessCreate {
	if v != nil {
		_c.SetCid(*v)
	}
	return _c
}

// SetImagesCount sets the "images_count" field.
func (_c *BusinessCreate) SetImagesCount(v int) *BusinessCreate {
	_c.mutation.SetImagesCount(v)
	return _c
}

// SetNillableImagesCount sets the "images_count" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableImagesCount(v *int) *BusinessCreate {
	if v != nil {
		_c.SetImagesCount(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *BusinessCreate) SetImageURL(v string) *BusinessCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableImageURL(v *string) *BusinessCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetHotelStars sets the "hotel_stars" field.
func (_c *BusinessCreate) SetHotelStars(v string) *BusinessCreate {
	_c.mutation.SetHotelStars(v)
	return _c
}

// SetNillableHotelStars sets the "hotel_stars" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableHotelStars(v *string) *BusinessCreate {
	if v != nil {
		_c.SetHotelStars(*v)
	}
	return _c
}

// SetEmails sets the "emails" field.
func (_c *BusinessCreate) SetEmails(v []string) *BusinessCreate {
	_c.mutation.SetEmails(v)
	return _c
}

// SetPhones sets the "phones" field.
func (_c *BusinessCreate) SetPhones(v []string) *BusinessCreate {
	_c.mutation.SetPhones(v)
	return _c
}

// SetInstagram sets the "instagram" field.
func (_c *BusinessCreate) SetInstagram(v string) *BusinessCreate {
	_c.mutation.SetInstagram(v)
	return _c
}

// SetNillableInstagram sets the "instagram" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableInstagram(v *string) *BusinessCreate {
	if v != nil {
		_c.SetInstagram(*v)
	}
	return _c
}

// SetFacebook sets the "facebook" field.
func (_c *BusinessCreate) SetFacebook(v string) *BusinessCreate {
	_c.mutation.SetFacebook(v)
	return _c
}

// SetNillableFacebook sets the "facebook" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableFacebook(v *string) *BusinessCreate {
	if v != nil {
		_c.SetFacebook(*v)
	}
	return _c
}

// SetTwitter sets the "twitter" field.
func (_c *BusinessCreate) SetTwitter(v string) *BusinessCreate {
	_c.mutation.SetTwitter(v)
	return _c
}

// SetNillableTwitter sets the "twitter" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableTwitter(v *string) *BusinessCreate {
	if v != nil {
		_c.SetTwitter(*v)
	}
	return _c
}

// SetYoutube sets the "youtube" field.
func (_c *BusinessCreate) SetYoutube(v string) *BusinessCreate {
	_c.mutation.SetYoutube(v)
	return _c
}

// SetNillableYoutube sets the "youtube" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableYoutube(v *string) *BusinessCreate {
	if v != nil {
		_c.SetYoutube(*v)
	}
	return _c
}

// SetTiktok sets the "tiktok" field.
func (_c *BusinessCreate) SetTiktok(v string) *BusinessCreate {
	_c.mutation.SetTiktok(v)
	return _c
}

// SetNillableTiktok sets the "tiktok" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableTiktok(v *string) *BusinessCreate {
	if v != nil {
		_c.SetTiktok(*v)
	}
	return _c
}

// SetLinkedin sets the "linkedin" field.
func (_c *BusinessCreate) SetLinkedin(v string) *BusinessCreate {
	_c.mutation.SetLinkedin(v)
	return _c
}

// SetNillableLinkedin sets the "linkedin" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableLinkedin(v *string) *BusinessCreate {
	if v != nil {
		_c.SetLinkedin(*v)
	}
	return _c
}

// SetWhatsapp sets the "whatsapp" field.
func (_c *BusinessCreate) SetWhatsapp(v string) *BusinessCreate {
	_c.mutation.SetWhatsapp(v)
	return _c
}

// SetNillableWhatsapp sets the "whatsapp" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableWhatsapp(v *string) *BusinessCreate {
	if v != nil {
		_c.SetWhatsapp(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *BusinessCreate) SetDomain(v string) *BusinessCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableDomain(v *string) *BusinessCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetOpeningHours sets the "opening_hours" field.
func (_c *BusinessCreate) SetOpeningHours(v []map[string]interface{}) *BusinessCreate {
	_c.mutation.SetOpeningHours(v)
	return _c
}

// SetAdditionalInfo sets the "additional_info" field.
func (_c *BusinessCreate) SetAdditionalInfo(v map[string]interface{}) *BusinessCreate {
	_c.mutation.SetAdditionalInfo(v)
	return _c
}

// SetEmailSent sets the "email_sent" field.
func (_c *BusinessCreate) SetEmailSent(v bool) *BusinessCreate {
	_c.mutation.SetEmailSent(v)
	return _c
}

// SetNillableEmailSent sets the "email_sent" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableEmailSent(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetEmailSent(*v)
	}
	return _c
}

// SetEmailSentAt sets the "email_sent_at" field.
func (_c *BusinessCreate) SetEmailSentAt(v time.Time) *BusinessCreate {
	_c.mutation.SetEmailSentAt(v)
	return _c
}

// SetNillableEmailSentAt sets the "email_sent_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableEmailSentAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetEmailSentAt(*v)
	}
	return _c
}

// SetSmsSent sets the "sms_sent" field.
func (_c *BusinessCreate) SetSmsSent(v bool) *BusinessCreate {
	_c.mutation.SetSmsSent(v)
	return _c
}

// SetNillableSmsSent sets the "sms_sent" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableSmsSent(v *bool) *BusinessCreate {
	if v != nil {
		_c.SetSmsSent(*v)
	}
	return _c
}

// SetSmsSentAt sets the "sms_sent_at" field.
func (_c *BusinessCreate) SetSmsSentAt(v time.Time) *BusinessCreate {
	_c.mutation.SetSmsSentAt(v)
	return _c
}

// SetNillableSmsSentAt sets the "sms_sent_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableSmsSentAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetSmsSentAt(*v)
	}
	return _c
}

// SetSearchQuery sets the "search_query" field.
func (_c *BusinessCreate) SetSearchQuery(v string) *BusinessCreate {
	_c.mutation.SetSearchQuery(v)
	return _c
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableSearchQuery(v *string) *BusinessCreate {
	if v != nil {
		_c.SetSearchQuery(*v)
	}
	return _c
}

// SetScrapedAt sets the "scraped_at" field.
func (_c *BusinessCreate) SetScrapedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetScrapedAt(v)
	return _c
}

// SetNillableScrapedAt sets the "scraped_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableScrapedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetScrapedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessCreate) SetCreatedAt(v time.Time) *BusinessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessCreate) SetNillableCreatedAt(v *time.Time) *BusinessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BusinessMutation object of the builder.
func (_c *BusinessCreate) Mutation() *BusinessMutation {
	return _c.mutation
}

// Save creates the Business in the database.
func (_c *BusinessCreate) Save(ctx context.Context) (*Business, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessCreate) SaveX(ctx context.Context) *Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessCreate) defaults() {
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := business.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		v := business.DefaultLatitude
		_c.mutation.SetLatitude(v)
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		v := business.DefaultLongitude
		_c.mutation.SetLongitude(v)
	}
	if _, ok := _c.mutation.PermanentlyClosed(); !ok {
		v := business.DefaultPermanentlyClosed
		_c.mutation.SetPermanentlyClosed(v)
	}
	if _, ok := _c.mutation.TemporarilyClosed(); !ok {
		v := business.DefaultTemporarilyClosed
		_c.mutation.SetTemporarilyClosed(v)
	}
	if _, ok := _c.mutation.ImagesCount(); !ok {
		v := business.DefaultImagesCount
		_c.mutation.SetImagesCount(v)
	}
	if _, ok := _c.mutation.EmailSent(); !ok {
		v := business.DefaultEmailSent
		_c.mutation.SetEmailSent(v)
	}
	if _, ok := _c.mutation.SmsSent(); !ok {
		v := business.DefaultSmsSent
		_c.mutation.SetSmsSent(v)
	}
	if _, ok := _c.mutation.ScrapedAt(); !ok {
		v := business.DefaultScrapedAt()
		_c.mutation.SetScrapedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := business.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Business.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := business.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Business.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Business.review_count"`)}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "Business.latitude"`)}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "Business.longitude"`)}
	}
	if _, ok := _c.mutation.PermanentlyClosed(); !ok {
		return &ValidationError{Name: "permanently_closed", err: errors.New(`ent: missing required field "Business.permanently_closed"`)}
	}
	if _, ok := _c.mutation.TemporarilyClosed(); !ok {
		return &ValidationError{Name: "temporarily_closed", err: errors.New(`ent: missing required field "Business.temporarily_closed"`)}
	}
	if _, ok := _c.mutation.ImagesCount(); !ok {
		return &ValidationError{Name: "images_count", err: errors.New(`ent: missing required field "Business.images_count"`)}
	}
	if _, ok := _c.mutation.EmailSent(); !ok {
		return &ValidationError{Name: "email_sent", err: errors.New(`ent: missing required field "Business.email_sent"`)}
	}
	if _, ok := _c.mutation.SmsSent(); !ok {
		return &ValidationError{Name: "sms_sent", err: errors.New(`ent: missing required field "Business.sms_sent"`)}
	}
	if _, ok := _c.mutation.ScrapedAt(); !ok {
		return &ValidationError{Name: "scraped_at", err: errors.New(`ent: missing required field "Business.scraped_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Business.created_at"`)}
	}
	return nil
}

func (_c *BusinessCreate) sqlSave(ctx context.Context) (*Business, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BusinessCreate) createSpec() (*Business, *sqlgraph.CreateSpec) {
	var (
		_node = &Business{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(business.Table, sqlgraph.NewFieldSpec(business.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(business.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(business.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.PhoneUnformatted(); ok {
		_spec.SetField(business.FieldPhoneUnformatted, field.TypeString, value)
		_node.PhoneUnformatted = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(business.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(business.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(business.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(business.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(business.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(business.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.MapsURL(); ok {
		_spec.SetField(business.FieldMapsURL, field.TypeString, value)
		_node.MapsURL = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(business.FieldPrice, field.TypeString, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.CategoryName(); ok {
		_spec.SetField(business.FieldCategoryName, field.TypeString, value)
		_node.CategoryName = value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(business.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.Neighborhood(); ok {
		_spec.SetField(business.FieldNeighborhood, field.TypeString, value)
		_node.Neighborhood = value
	}
	if value, ok := _c.mutation.Street(); ok {
		_spec.SetField(business.FieldStreet, field.TypeString, value)
		_node.Street = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(business.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(business.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(business.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CountryCode(); ok {
		_spec.SetField(business.FieldCountryCode, field.TypeString, value)
		_node.CountryCode = value
	}
	if value, ok := _c.mutation.PermanentlyClosed(); ok {
		_spec.SetField(business.FieldPermanentlyClosed, field.TypeBool, value)
		_node.PermanentlyClosed = value
	}
	if value, ok := _c.mutation.TemporarilyClosed(); ok {
		_spec.SetField(business.FieldTemporarilyClosed, field.TypeBool, value)
		_node.TemporarilyClosed = value
	}
	if value, ok := _c.mutation.PlaceID(); ok {
		_spec.SetField(business.FieldPlaceID, field.TypeString, value)
		_node.PlaceID = value
	}
	if value, ok := _c.mutation.Cid(); ok {
		_spec.SetField(business.FieldCid, field.TypeString, value)
		_node.Cid = value
	}
	if value, ok := _c.mutation.ImagesCount(); ok {
		_spec.SetField(business.FieldImagesCount, field.TypeInt, value)
		_node.ImagesCount = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(business.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.HotelStars(); ok {
		_spec.SetField(business.FieldHotelStars, field.TypeString, value)
		_node.HotelStars = value
	}
	if value, ok := _c.mutation.Emails(); ok {
		_spec.SetField(business.FieldEmails, field.TypeJSON, value)
		_node.Emails = value
	}
	if value, ok := _c.mutation.Phones(); ok {
		_spec.SetField(business.FieldPhones, field.TypeJSON, value)
		_node.Phones = value
	}
	if value, ok := _c.mutation.Instagram(); ok {
		_spec.SetField(business.FieldInstagram, field.TypeString, value)
		_node.Instagram = value
	}
	if value, ok := _c.mutation.Facebook(); ok {
		_spec.SetField(business.FieldFacebook, field.TypeString, value)
		_node.Facebook = value
	}
	if value, ok := _c.mutation.Twitter(); ok {
		_spec.SetField(business.FieldTwitter, field.TypeString, value)
		_node.Twitter = value
	}
	if value, ok := _c.mutation.Youtube(); ok {
		_spec.SetField(business.FieldYoutube, field.TypeString, value)
		_node.Youtube = value
	}
	if value, ok := _c.mutation.Tiktok(); ok {
		_spec.SetField(business.FieldTiktok, field.TypeString, value)
		_node.Tiktok = value
	}
	if value, ok := _c.mutation.Linkedin(); ok {
		_spec.SetField(business.FieldLinkedin, field.TypeString, value)
		_node.Linkedin = value
	}
	if value, ok := _c.mutation.Whatsapp(); ok {
		_spec.SetField(business.FieldWhatsapp, field.TypeString, value)
		_node.Whatsapp = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(business.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.OpeningHours(); ok {
		_spec.SetField(business.FieldOpeningHours, field.TypeJSON, value)
		_node.OpeningHours = value
	}
	if value, ok := _c.mutation.AdditionalInfo(); ok {
		_spec.SetField(business.FieldAdditionalInfo, field.TypeJSON, value)
		_node.AdditionalInfo = value
	}
	if value, ok := _c.mutation.EmailSent(); ok {
		_spec.SetField(business.FieldEmailSent, field.TypeBool, value)
		_node.EmailSent = value
	}
	if value, ok := _c.mutation.EmailSentAt(); ok {
		_spec.SetField(business.FieldEmailSentAt, field.TypeTime, value)
		_node.EmailSentAt = &value
	}
	if value, ok := _c.mutation.SmsSent(); ok {
		_spec.SetField(business.FieldSmsSent, field.TypeBool, value)
		_node.SmsSent = value
	}
	if value, ok := _c.mutation.SmsSentAt(); ok {
		_spec.SetField(business.FieldSmsSentAt, field.TypeTime, value)
		_node.SmsSentAt = &value
	}
	if value, ok := _c.mutation.SearchQuery(); ok {
		_spec.SetField(business.FieldSearchQuery, field.TypeString, value)
		_node.SearchQuery = value
	}
	if value, ok := _c.mutation.ScrapedAt(); ok {
		_spec.SetField(business.FieldScrapedAt, field.TypeTime, value)
		_node.ScrapedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(business.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BusinessCreateBulk is the builder for creating many Business entities in bulk.
type BusinessCreateBulk struct {
	config
	err      error
	builders []*BusinessCreate
}

// Save creates the Business entities in the database.
func (_c *BusinessCreateBulk) Save(ctx context.Context) ([]*Business, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Business, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BusinessCreateBulk) SaveX(ctx context.Context) []*Business {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
