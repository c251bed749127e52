// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/ent/predicate"
	"github.com/ipropixel/leadfinder/ent/scraperun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBusiness  = "Business"
	TypeExport    = "Export"
	TypeScrapeRun = "ScrapeRun"
)

// BusinessMutation represents an operation that mutates the Business nodes in the graph.
type BusinessMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	phone               *string
	phone_unformatted   *string
	review_count        *int
	addreview_count     *int
	rating              *float64
	addrating           *float64
	address             *string
	latitude            *float64
	addlatitude         *float64
	longitude           *float64
	addlongitude        *float64
	website             *string
	maps_url            *string
	price               *string
	category_name       *string
	categories          *[]string
	appendcategories    []string
	neighborhood        *string
	street              *string
	city                *string
	postal_code         *string
	state               *string
	country_code        *string
	permanently_closed  *bool
	temporarily_closed  *bool
	place_id            *string
	cid                 *string
	images_count        *int
	addimages_count     *int
	image_url           *string
	hotel_stars         *string
	emails              *[]string
	appendemails        []string
	phones              *[]string
	appendphones        []string
	instagram           *string
	facebook            *string
	twitter             *string
	youtube             *string
	tiktok              *string
	linkedin            *string
	whatsapp            *string
	domain              *string
	opening_hours       *[]map[string]interface{}
	appendopening_hours []map[string]interface{}
	additional_info     *map[string]interface{}
	email_sent          *bool
	email_sent_at       *time.Time
	sms_sent            *bool
	sms_sent_at         *time.Time
	search_query        *string
	scraped_at          *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Business, error)
	predicates          []predicate.Business
}

var _ ent.Mutation = (*BusinessMutation)(nil)

// businessOption allows management of the mutation configuration using functional options.
type businessOption func(*BusinessMutation)

// newBusinessMutation creates new mutation for the Business entity.
func newBusinessMutation(c config, op Op, opts ...businessOption) *BusinessMutation {
	m := &BusinessMutation{
		config:        c,
		op:            op,
		typ:           TypeBusiness,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBusinessID sets the ID field of the mutation.
func withBusinessID(id int) businessOption {
	return func(m *BusinessMutation) {
		var (
			err   error
			once  sync.Once
			value *Business
		)
		m.oldValue = func(ctx context.Context) (*Business, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Business.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBusiness sets the old Business of the mutation.
func withBusiness(node *Business) businessOption {
	return func(m *BusinessMutation) {
		m.oldValue = func(context.Context) (*Business, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BusinessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BusinessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BusinessMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BusinessMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Business.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BusinessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BusinessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BusinessMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *BusinessMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *BusinessMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *BusinessMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[business.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *BusinessMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[business.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *BusinessMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, business.FieldPhone)
}

// SetPhoneUnformatted sets the "phone_unformatted" field.
func (m *BusinessMutation) SetPhoneUnformatted(s string) {
	m.phone_unformatted = &s
}

// PhoneUnformatted returns the value of the "phone_unformatted" field in the mutation.
func (m *BusinessMutation) PhoneUnformatted() (r string, exists bool) {
	v := m.phone_unformatted
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneUnformatted returns the old "phone_unformatted" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPhoneUnformatted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneUnformatted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneUnformatted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneUnformatted: %w", err)
	}
	return oldValue.PhoneUnformatted, nil
}

// ClearPhoneUnformatted clears the value of the "phone_unformatted" field.
func (m *BusinessMutation) ClearPhoneUnformatted() {
	m.phone_unformatted = nil
	m.clearedFields[business.FieldPhoneUnformatted] = struct{}{}
}

// PhoneUnformattedCleared returns if the "phone_unformatted" field was cleared in this mutation.
func (m *BusinessMutation) PhoneUnformattedCleared() bool {
	_, ok := m.clearedFields[business.FieldPhoneUnformatted]
	return ok
}

// ResetPhoneUnformatted resets all changes to the "phone_unformatted" field.
func (m *BusinessMutation) ResetPhoneUnformatted() {
	m.phone_unformatted = nil
	delete(m.clearedFields, business.FieldPhoneUnformatted)
}

// SetReviewCount sets the "review_count" field.
func (m *BusinessMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *BusinessMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *BusinessMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *BusinessMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *BusinessMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetRating sets the "rating" field.
func (m *BusinessMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *BusinessMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *BusinessMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *BusinessMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *BusinessMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[business.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *BusinessMutation) RatingCleared() bool {
	_, ok := m.clearedFields[business.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *BusinessMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, business.FieldRating)
}

// SetAddress sets the "address" field.
func (m *BusinessMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *BusinessMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *BusinessMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[business.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *BusinessMutation) AddressCleared() bool {
	_, ok := m.clearedFields[business.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *BusinessMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, business.FieldAddress)
}

// SetLatitude sets the "latitude" field.
func (m *BusinessMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *BusinessMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *BusinessMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *BusinessMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *BusinessMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *BusinessMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *BusinessMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *BusinessMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *BusinessMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *BusinessMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetWebsite sets the "website" field.
func (m *BusinessMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *BusinessMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *BusinessMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[business.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *BusinessMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[business.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *BusinessMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, business.FieldWebsite)
}

// SetMapsURL sets the "maps_url" field.
func (m *BusinessMutation) SetMapsURL(s string) {
	m.maps_url = &s
}

// MapsURL returns the value of the "maps_url" field in the mutation.
func (m *BusinessMutation) MapsURL() (r string, exists bool) {
	v := m.maps_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMapsURL returns the old "maps_url" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldMapsURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMapsURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMapsURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMapsURL: %w", err)
	}
	return oldValue.MapsURL, nil
}

// ClearMapsURL clears the value of the "maps_url" field.
func (m *BusinessMutation) ClearMapsURL() {
	m.maps_url = nil
	m.clearedFields[business.FieldMapsURL] = struct{}{}
}

// MapsURLCleared returns if the "maps_url" field was cleared in this mutation.
func (m *BusinessMutation) MapsURLCleared() bool {
	_, ok := m.clearedFields[business.FieldMapsURL]
	return ok
}

// ResetMapsURL resets all changes to the "maps_url" field.
func (m *BusinessMutation) ResetMapsURL() {
	m.maps_url = nil
	delete(m.clearedFields, business.FieldMapsURL)
}

// SetPrice sets the "price" field.
func (m *BusinessMutation) SetPrice(s string) {
	m.price = &s
}

// Price returns the value of the "price" field in the mutation.
func (m *BusinessMutation) Price() (r string, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// ClearPrice clears the value of the "price" field.
func (m *BusinessMutation) ClearPrice() {
	m.price = nil
	m.clearedFields[business.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *BusinessMutation) PriceCleared() bool {
	_, ok := m.clearedFields[business.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *BusinessMutation) ResetPrice() {
	m.price = nil
	delete(m.clearedFields, business.FieldPrice)
}

// SetCategoryName sets the "category_name" field.
func (m *BusinessMutation) SetCategoryName(s string) {
	m.category_name = &s
}

// CategoryName returns the value of the "category_name" field in the mutation.
func (m *BusinessMutation) CategoryName() (r string, exists bool) {
	v := m.category_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryName returns the old "category_name" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCategoryName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryName: %w", err)
	}
	return oldValue.CategoryName, nil
}

// ClearCategoryName clears the value of the "category_name" field.
func (m *BusinessMutation) ClearCategoryName() {
	m.category_name = nil
	m.clearedFields[business.FieldCategoryName] = struct{}{}
}

// CategoryNameCleared returns if the "category_name" field was cleared in this mutation.
func (m *BusinessMutation) CategoryNameCleared() bool {
	_, ok := m.clearedFields[business.FieldCategoryName]
	return ok
}

// ResetCategoryName resets all changes to the "category_name" field.
func (m *BusinessMutation) ResetCategoryName() {
	m.category_name = nil
	delete(m.clearedFields, business.FieldCategoryName)
}

// SetCategories sets the "categories" field.
func (m *BusinessMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *BusinessMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *BusinessMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *BusinessMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *BusinessMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[business.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *BusinessMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[business.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *BusinessMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, business.FieldCategories)
}

// SetNeighborhood sets the "neighborhood" field.
func (m *BusinessMutation) SetNeighborhood(s string) {
	m.neighborhood = &s
}

// Neighborhood returns the value of the "neighborhood" field in the mutation.
func (m *BusinessMutation) Neighborhood() (r string, exists bool) {
	v := m.neighborhood
	if v == nil {
		return
	}
	return *v, true
}

// OldNeighborhood returns the old "neighborhood" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldNeighborhood(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeighborhood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeighborhood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeighborhood: %w", err)
	}
	return oldValue.Neighborhood, nil
}

// ClearNeighborhood clears the value of the "neighborhood" field.
func (m *BusinessMutation) ClearNeighborhood() {
	m.neighborhood = nil
	m.clearedFields[business.FieldNeighborhood] = struct{}{}
}

// NeighborhoodCleared returns if the "neighborhood" field was cleared in this mutation.
func (m *BusinessMutation) NeighborhoodCleared() bool {
	_, ok := m.clearedFields[business.FieldNeighborhood]
	return ok
}

// ResetNeighborhood resets all changes to the "neighborhood" field.
func (m *BusinessMutation) ResetNeighborhood() {
	m.neighborhood = nil
	delete(m.clearedFields, business.FieldNeighborhood)
}

// SetStreet sets the "street" field.
func (m *BusinessMutation) SetStreet(s string) {
	m.street = &s
}

// Street returns the value of the "street" field in the mutation.
func (m *BusinessMutation) Street() (r string, exists bool) {
	v := m.street
	if v == nil {
		return
	}
	return *v, true
}

// OldStreet returns the old "street" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldStreet(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreet: %w", err)
	}
	return oldValue.Street, nil
}

// ClearStreet clears the value of the "street" field.
func (m *BusinessMutation) ClearStreet() {
	m.street = nil
	m.clearedFields[business.FieldStreet] = struct{}{}
}

// StreetCleared returns if the "street" field was cleared in this mutation.
func (m *BusinessMutation) StreetCleared() bool {
	_, ok := m.clearedFields[business.FieldStreet]
	return ok
}

// ResetStreet resets all changes to the "street" field.
func (m *BusinessMutation) ResetStreet() {
	m.street = nil
	delete(m.clearedFields, business.FieldStreet)
}

// SetCity sets the "city" field.
func (m *BusinessMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *BusinessMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *BusinessMutation) ClearCity() {
	m.city = nil
	m.clearedFields[business.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *BusinessMutation) CityCleared() bool {
	_, ok := m.clearedFields[business.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *BusinessMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, business.FieldCity)
}

// SetPostalCode sets the "postal_code" field.
func (m *BusinessMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *BusinessMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *BusinessMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[business.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *BusinessMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[business.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *BusinessMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, business.FieldPostalCode)
}

// SetState sets the "state" field.
func (m *BusinessMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *BusinessMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *BusinessMutation) ClearState() {
	m.state = nil
	m.clearedFields[business.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *BusinessMutation) StateCleared() bool {
	_, ok := m.clearedFields[business.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *BusinessMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, business.FieldState)
}

// SetCountryCode sets the "country_code" field.
func (m *BusinessMutation) SetCountryCode(s string) {
	m.country_code = &s
}

// CountryCode returns the value of the "country_code" field in the mutation.
func (m *BusinessMutation) CountryCode() (r string, exists bool) {
	v := m.country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryCode returns the old "country_code" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCountryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryCode: %w", err)
	}
	return oldValue.CountryCode, nil
}

// ClearCountryCode clears the value of the "country_code" field.
func (m *BusinessMutation) ClearCountryCode() {
	m.country_code = nil
	m.clearedFields[business.FieldCountryCode] = struct{}{}
}

// CountryCodeCleared returns if the "country_code" field was cleared in this mutation.
func (m *BusinessMutation) CountryCodeCleared() bool {
	_, ok := m.clearedFields[business.FieldCountryCode]
	return ok
}

// ResetCountryCode resets all changes to the "country_code" field.
func (m *BusinessMutation) ResetCountryCode() {
	m.country_code = nil
	delete(m.clearedFields, business.FieldCountryCode)
}

// SetPermanentlyClosed sets the "permanently_closed" field.
func (m *BusinessMutation) SetPermanentlyClosed(b bool) {
	m.permanently_closed = &b
}

// PermanentlyClosed returns the value of the "permanently_closed" field in the mutation.
func (m *BusinessMutation) PermanentlyClosed() (r bool, exists bool) {
	v := m.permanently_closed
	if v == nil {
		return
	}
	return *v, true
}

// OldPermanentlyClosed returns the old "permanently_closed" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPermanentlyClosed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermanentlyClosed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermanentlyClosed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermanentlyClosed: %w", err)
	}
	return oldValue.PermanentlyClosed, nil
}

// ResetPermanentlyClosed resets all changes to the "permanently_closed" field.
func (m *BusinessMutation) ResetPermanentlyClosed() {
	m.permanently_closed = nil
}

// SetTemporarilyClosed sets the "temporarily_closed" field.
func (m *BusinessMutation) SetTemporarilyClosed(b bool) {
	m.temporarily_closed = &b
}

// TemporarilyClosed returns the value of the "temporarily_closed" field in the mutation.
func (m *BusinessMutation) TemporarilyClosed() (r bool, exists bool) {
	v := m.temporarily_closed
	if v == nil {
		return
	}
	return *v, true
}

// OldTemporarilyClosed returns the old "temporarily_closed" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldTemporarilyClosed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemporarilyClosed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemporarilyClosed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemporarilyClosed: %w", err)
	}
	return oldValue.TemporarilyClosed, nil
}

// ResetTemporarilyClosed resets all changes to the "temporarily_closed" field.
func (m *BusinessMutation) ResetTemporarilyClosed() {
	m.temporarily_closed = nil
}

// SetPlaceID sets the "place_id" field.
func (m *BusinessMutation) SetPlaceID(s string) {
	m.place_id = &s
}

// PlaceID returns the value of the "place_id" field in the mutation.
func (m *BusinessMutation) PlaceID() (r string, exists bool) {
	v := m.place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceID returns the old "place_id" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceID: %w", err)
	}
	return oldValue.PlaceID, nil
}

// ClearPlaceID clears the value of the "place_id" field.
func (m *BusinessMutation) ClearPlaceID() {
	m.place_id = nil
	m.clearedFields[business.FieldPlaceID] = struct{}{}
}

// PlaceIDCleared returns if the "place_id" field was cleared in this mutation.
func (m *BusinessMutation) PlaceIDCleared() bool {
	_, ok := m.clearedFields[business.FieldPlaceID]
	return ok
}

// ResetPlaceID resets all changes to the "place_id" field.
func (m *BusinessMutation) ResetPlaceID() {
	m.place_id = nil
	delete(m.clearedFields, business.FieldPlaceID)
}

// SetCid sets the "cid" field.
func (m *BusinessMutation) SetCid(s string) {
	m.cid = &s
}

// Cid returns the value of the "cid" field in the mutation.
func (m *BusinessMutation) Cid() (r string, exists bool) {
	v := m.cid
	if v == nil {
		return
	}
	return *v, true
}

// OldCid returns the old "cid" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCid(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCid: %w", err)
	}
	return oldValue.Cid, nil
}

// ClearCid clears the value of the "cid" field.
func (m *BusinessMutation) ClearCid() {
	m.cid = nil
	m.clearedFields[business.FieldCid] = struct{}{}
}

// CidCleared returns if the "cid" field was cleared in this mutation.
func (m *BusinessMutation) CidCleared() bool {
	_, ok := m.clearedFields[business.FieldCid]
	return ok
}

// ResetCid resets all changes to the "cid" field.
func (m *BusinessMutation) ResetCid() {
	m.cid = nil
	delete(m.clearedFields, business.FieldCid)
}

// SetImagesCount sets the "images_count" field.
func (m *BusinessMutation) SetImagesCount(i int) {
	m.images_count = &i
	m.addimages_count = nil
}

// ImagesCount returns the value of the "images_count" field in the mutation.
func (m *BusinessMutation) ImagesCount() (r int, exists bool) {
	v := m.images_count
	if v == nil {
		return
	}
	return *v, true
}

// OldImagesCount returns the old "images_count" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldImagesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagesCount: %w", err)
	}
	return oldValue.ImagesCount, nil
}

// AddImagesCount adds i to the "images_count" field.
func (m *BusinessMutation) AddImagesCount(i int) {
	if m.addimages_count != nil {
		*m.addimages_count += i
	} else {
		m.addimages_count = &i
	}
}

// AddedImagesCount returns the value that was added to the "images_count" field in this mutation.
func (m *BusinessMutation) AddedImagesCount() (r int, exists bool) {
	v := m.addimages_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetImagesCount resets all changes to the "images_count" field.
func (m *BusinessMutation) ResetImagesCount() {
	m.images_count = nil
	m.addimages_count = nil
}

// SetImageURL sets the "image_url" field.
func (m *BusinessMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *BusinessMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *BusinessMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[business.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *BusinessMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[business.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *BusinessMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, business.FieldImageURL)
}

// SetHotelStars sets the "hotel_stars" field.
func (m *BusinessMutation) SetHotelStars(s string) {
	m.hotel_stars = &s
}

// HotelStars returns the value of the "hotel_stars" field in the mutation.
func (m *BusinessMutation) HotelStars() (r string, exists bool) {
	v := m.hotel_stars
	if v == nil {
		return
	}
	return *v, true
}

// OldHotelStars returns the old "hotel_stars" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldHotelStars(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHotelStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHotelStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHotelStars: %w", err)
	}
	return oldValue.HotelStars, nil
}

// ClearHotelStars clears the value of the "hotel_stars" field.
func (m *BusinessMutation) ClearHotelStars() {
	m.hotel_stars = nil
	m.clearedFields[business.FieldHotelStars] = struct{}{}
}

// HotelStarsCleared returns if the "hotel_stars" field was cleared in this mutation.
func (m *BusinessMutation) HotelStarsCleared() bool {
	_, ok := m.clearedFields[business.FieldHotelStars]
	return ok
}

// ResetHotelStars resets all changes to the "hotel_stars" field.
func (m *BusinessMutation) ResetHotelStars() {
	m.hotel_stars = nil
	delete(m.clearedFields, business.FieldHotelStars)
}

// SetEmails sets the "emails" field.
func (m *BusinessMutation) SetEmails(s []string) {
	m.emails = &s
	m.appendemails = nil
}

// Emails returns the value of the "emails" field in the mutation.
func (m *BusinessMutation) Emails() (r []string, exists bool) {
	v := m.emails
	if v == nil {
		return
	}
	return *v, true
}

// OldEmails returns the old "emails" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEmails(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmails: %w", err)
	}
	return oldValue.Emails, nil
}

// AppendEmails adds s to the "emails" field.
func (m *BusinessMutation) AppendEmails(s []string) {
	m.appendemails = append(m.appendemails, s...)
}

// AppendedEmails returns the list of values that were appended to the "emails" field in this mutation.
func (m *BusinessMutation) AppendedEmails() ([]string, bool) {
	if len(m.appendemails) == 0 {
		return nil, false
	}
	return m.appendemails, true
}

// ClearEmails clears the value of the "emails" field.
func (m *BusinessMutation) ClearEmails() {
	m.emails = nil
	m.appendemails = nil
	m.clearedFields[business.FieldEmails] = struct{}{}
}

// EmailsCleared returns if the "emails" field was cleared in this mutation.
func (m *BusinessMutation) EmailsCleared() bool {
	_, ok := m.clearedFields[business.FieldEmails]
	return ok
}

// ResetEmails resets all changes to the "emails" field.
func (m *BusinessMutation) ResetEmails() {
	m.emails = nil
	m.appendemails = nil
	delete(m.clearedFields, business.FieldEmails)
}

// SetPhones sets the "phones" field.
func (m *BusinessMutation) SetPhones(s []string) {
	m.phones = &s
	m.appendphones = nil
}

// Phones returns the value of the "phones" field in the mutation.
func (m *BusinessMutation) Phones() (r []string, exists bool) {
	v := m.phones
	if v == nil {
		return
	}
	return *v, true
}

// OldPhones returns the old "phones" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldPhones(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhones is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhones requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhones: %w", err)
	}
	return oldValue.Phones, nil
}

// AppendPhones adds s to the "phones" field.
func (m *BusinessMutation) AppendPhones(s []string) {
	m.appendphones = append(m.appendphones, s...)
}

// AppendedPhones returns the list of values that were appended to the "phones" field in this mutation.
func (m *BusinessMutation) AppendedPhones() ([]string, bool) {
	if len(m.appendphones) == 0 {
		return nil, false
	}
	return m.appendphones, true
}

// ClearPhones clears the value of the "phones" field.
func (m *BusinessMutation) ClearPhones() {
	m.phones = nil
	m.appendphones = nil
	m.clearedFields[business.FieldPhones] = struct{}{}
}

// PhonesCleared returns if the "phones" field was cleared in this mutation.
func (m *BusinessMutation) PhonesCleared() bool {
	_, ok := m.clearedFields[business.FieldPhones]
	return ok
}

// ResetPhones resets all changes to the "phones" field.
func (m *BusinessMutation) ResetPhones() {
	m.phones = nil
	m.appendphones = nil
	delete(m.clearedFields, business.FieldPhones)
}

// SetInstagram sets the "instagram" field.
func (m *BusinessMutation) SetInstagram(s string) {
	m.instagram = &s
}

// Instagram returns the value of the "instagram" field in the mutation.
func (m *BusinessMutation) Instagram() (r string, exists bool) {
	v := m.instagram
	if v == nil {
		return
	}
	return *v, true
}

// OldInstagram returns the old "instagram" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldInstagram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstagram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstagram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstagram: %w", err)
	}
	return oldValue.Instagram, nil
}

// ClearInstagram clears the value of the "instagram" field.
func (m *BusinessMutation) ClearInstagram() {
	m.instagram = nil
	m.clearedFields[business.FieldInstagram] = struct{}{}
}

// InstagramCleared returns if the "instagram" field was cleared in this mutation.
func (m *BusinessMutation) InstagramCleared() bool {
	_, ok := m.clearedFields[business.FieldInstagram]
	return ok
}

// ResetInstagram resets all changes to the "instagram" field.
func (m *BusinessMutation) ResetInstagram() {
	m.instagram = nil
	delete(m.clearedFields, business.FieldInstagram)
}

// SetFacebook sets the "facebook" field.
func (m *BusinessMutation) SetFacebook(s string) {
	m.facebook = &s
}

// Facebook returns the value of the "facebook" field in the mutation.
func (m *BusinessMutation) Facebook() (r string, exists bool) {
	v := m.facebook
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebook returns the old "facebook" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldFacebook(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebook: %w", err)
	}
	return oldValue.Facebook, nil
}

// ClearFacebook clears the value of the "facebook" field.
func (m *BusinessMutation) ClearFacebook() {
	m.facebook = nil
	m.clearedFields[business.FieldFacebook] = struct{}{}
}

// FacebookCleared returns if the "facebook" field was cleared in this mutation.
func (m *BusinessMutation) FacebookCleared() bool {
	_, ok := m.clearedFields[business.FieldFacebook]
	return ok
}

// ResetFacebook resets all changes to the "facebook" field.
func (m *BusinessMutation) ResetFacebook() {
	m.facebook = nil
	delete(m.clearedFields, business.FieldFacebook)
}

// SetTwitter sets the "twitter" field.
func (m *BusinessMutation) SetTwitter(s string) {
	m.twitter = &s
}

// Twitter returns the value of the "twitter" field in the mutation.
func (m *BusinessMutation) Twitter() (r string, exists bool) {
	v := m.twitter
	if v == nil {
		return
	}
	return *v, true
}

// OldTwitter returns the old "twitter" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldTwitter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwitter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwitter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwitter: %w", err)
	}
	return oldValue.Twitter, nil
}

// ClearTwitter clears the value of the "twitter" field.
func (m *BusinessMutation) ClearTwitter() {
	m.twitter = nil
	m.clearedFields[business.FieldTwitter] = struct{}{}
}

// TwitterCleared returns if the "twitter" field was cleared in this mutation.
func (m *BusinessMutation) TwitterCleared() bool {
	_, ok := m.clearedFields[business.FieldTwitter]
	return ok
}

// ResetTwitter resets all changes to the "twitter" field.
func (m *BusinessMutation) ResetTwitter() {
	m.twitter = nil
	delete(m.clearedFields, business.FieldTwitter)
}

// SetYoutube sets the "youtube" field.
func (m *BusinessMutation) SetYoutube(s string) {
	m.youtube = &s
}

// Youtube returns the value of the "youtube" field in the mutation.
func (m *BusinessMutation) Youtube() (r string, exists bool) {
	v := m.youtube
	if v == nil {
		return
	}
	return *v, true
}

// OldYoutube returns the old "youtube" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldYoutube(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYoutube is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYoutube requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYoutube: %w", err)
	}
	return oldValue.Youtube, nil
}

// ClearYoutube clears the value of the "youtube" field.
func (m *BusinessMutation) ClearYoutube() {
	m.youtube = nil
	m.clearedFields[business.FieldYoutube] = struct{}{}
}

// YoutubeCleared returns if the "youtube" field was cleared in this mutation.
func (m *BusinessMutation) YoutubeCleared() bool {
	_, ok := m.clearedFields[business.FieldYoutube]
	return ok
}

// ResetYoutube resets all changes to the "youtube" field.
func (m *BusinessMutation) ResetYoutube() {
	m.youtube = nil
	delete(m.clearedFields, business.FieldYoutube)
}

// SetTiktok sets the "tiktok" field.
func (m *BusinessMutation) SetTiktok(s string) {
	m.tiktok = &s
}

// Tiktok returns the value of the "tiktok" field in the mutation.
func (m *BusinessMutation) Tiktok() (r string, exists bool) {
	v := m.tiktok
	if v == nil {
		return
	}
	return *v, true
}

// OldTiktok returns the old "tiktok" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldTiktok(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTiktok is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTiktok requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTiktok: %w", err)
	}
	return oldValue.Tiktok, nil
}

// ClearTiktok clears the value of the "tiktok" field.
func (m *BusinessMutation) ClearTiktok() {
	m.tiktok = nil
	m.clearedFields[business.FieldTiktok] = struct{}{}
}

// TiktokCleared returns if the "tiktok" field was cleared in this mutation.
func (m *BusinessMutation) TiktokCleared() bool {
	_, ok := m.clearedFields[business.FieldTiktok]
	return ok
}

// ResetTiktok resets all changes to the "tiktok" field.
func (m *BusinessMutation) ResetTiktok() {
	m.tiktok = nil
	delete(m.clearedFields, business.FieldTiktok)
}

// SetLinkedin sets the "linkedin" field.
func (m *BusinessMutation) SetLinkedin(s string) {
	m.linkedin = &s
}

// Linkedin returns the value of the "linkedin" field in the mutation.
func (m *BusinessMutation) Linkedin() (r string, exists bool) {
	v := m.linkedin
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedin returns the old "linkedin" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldLinkedin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedin: %w", err)
	}
	return oldValue.Linkedin, nil
}

// ClearLinkedin clears the value of the "linkedin" field.
func (m *BusinessMutation) ClearLinkedin() {
	m.linkedin = nil
	m.clearedFields[business.FieldLinkedin] = struct{}{}
}

// LinkedinCleared returns if the "linkedin" field was cleared in this mutation.
func (m *BusinessMutation) LinkedinCleared() bool {
	_, ok := m.clearedFields[business.FieldLinkedin]
	return ok
}

// ResetLinkedin resets all changes to the "linkedin" field.
func (m *BusinessMutation) ResetLinkedin() {
	m.linkedin = nil
	delete(m.clearedFields, business.FieldLinkedin)
}

// SetWhatsapp sets the "whatsapp" field.
func (m *BusinessMutation) SetWhatsapp(s string) {
	m.whatsapp = &s
}

// Whatsapp returns the value of the "whatsapp" field in the mutation.
func (m *BusinessMutation) Whatsapp() (r string, exists bool) {
	v := m.whatsapp
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsapp returns the old "whatsapp" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldWhatsapp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsapp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsapp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsapp: %w", err)
	}
	return oldValue.Whatsapp, nil
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (m *BusinessMutation) ClearWhatsapp() {
	m.whatsapp = nil
	m.clearedFields[business.FieldWhatsapp] = struct{}{}
}

// WhatsappCleared returns if the "whatsapp" field was cleared in this mutation.
func (m *BusinessMutation) WhatsappCleared() bool {
	_, ok := m.clearedFields[business.FieldWhatsapp]
	return ok
}

// ResetWhatsapp resets all changes to the "whatsapp" field.
func (m *BusinessMutation) ResetWhatsapp() {
	m.whatsapp = nil
	delete(m.clearedFields, business.FieldWhatsapp)
}

// SetDomain sets the "domain" field.
func (m *BusinessMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *BusinessMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *BusinessMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[business.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *BusinessMutation) DomainCleared() bool {
	_, ok := m.clearedFields[business.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *BusinessMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, business.FieldDomain)
}

// SetOpeningHours sets the "opening_hours" field.
func (m *BusinessMutation) SetOpeningHours(value []map[string]interface{}) {
	m.opening_hours = &value
	m.appendopening_hours = nil
}

// OpeningHours returns the value of the "opening_hours" field in the mutation.
func (m *BusinessMutation) OpeningHours() (r []map[string]interface{}, exists bool) {
	v := m.opening_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningHours returns the old "opening_hours" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldOpeningHours(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningHours: %w", err)
	}
	return oldValue.OpeningHours, nil
}

// AppendOpeningHours adds value to the "opening_hours" field.
func (m *BusinessMutation) AppendOpeningHours(value []map[string]interface{}) {
	m.appendopening_hours = append(m.appendopening_hours, value...)
}

// AppendedOpeningHours returns the list of values that were appended to the "opening_hours" field in this mutation.
func (m *BusinessMutation) AppendedOpeningHours() ([]map[string]interface{}, bool) {
	if len(m.appendopening_hours) == 0 {
		return nil, false
	}
	return m.appendopening_hours, true
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (m *BusinessMutation) ClearOpeningHours() {
	m.opening_hours = nil
	m.appendopening_hours = nil
	m.clearedFields[business.FieldOpeningHours] = struct{}{}
}

// OpeningHoursCleared returns if the "opening_hours" field was cleared in this mutation.
func (m *BusinessMutation) OpeningHoursCleared() bool {
	_, ok := m.clearedFields[business.FieldOpeningHours]
	return ok
}

// ResetOpeningHours resets all changes to the "opening_hours" field.
func (m *BusinessMutation) ResetOpeningHours() {
	m.opening_hours = nil
	m.appendopening_hours = nil
	delete(m.clearedFields, business.FieldOpeningHours)
}

// SetAdditionalInfo sets the "additional_info" field.
func (m *BusinessMutation) SetAdditionalInfo(value map[string]interface{}) {
	m.additional_info = &value
}

// AdditionalInfo returns the value of the "additional_info" field in the mutation.
func (m *BusinessMutation) AdditionalInfo() (r map[string]interface{}, exists bool) {
	v := m.additional_info
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalInfo returns the old "additional_info" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldAdditionalInfo(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalInfo: %w", err)
	}
	return oldValue.AdditionalInfo, nil
}

// ClearAdditionalInfo clears the value of the "additional_info" field.
func (m *BusinessMutation) ClearAdditionalInfo() {
	m.additional_info = nil
	m.clearedFields[business.FieldAdditionalInfo] = struct{}{}
}

// AdditionalInfoCleared returns if the "additional_info" field was cleared in this mutation.
func (m *BusinessMutation) AdditionalInfoCleared() bool {
	_, ok := m.clearedFields[business.FieldAdditionalInfo]
	return ok
}

// ResetAdditionalInfo resets all changes to the "additional_info" field.
func (m *BusinessMutation) ResetAdditionalInfo() {
	m.additional_info = nil
	delete(m.clearedFields, business.FieldAdditionalInfo)
}

// SetEmailSent sets the "email_sent" field.
func (m *BusinessMutation) SetEmailSent(b bool) {
	m.email_sent = &b
}

// EmailSent returns the value of the "email_sent" field in the mutation.
func (m *BusinessMutation) EmailSent() (r bool, exists bool) {
	v := m.email_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSent returns the old "email_sent" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEmailSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSent: %w", err)
	}
	return oldValue.EmailSent, nil
}

// ResetEmailSent resets all changes to the "email_sent" field.
func (m *BusinessMutation) ResetEmailSent() {
	m.email_sent = nil
}

// SetEmailSentAt sets the "email_sent_at" field.
func (m *BusinessMutation) SetEmailSentAt(t time.Time) {
	m.email_sent_at = &t
}

// EmailSentAt returns the value of the "email_sent_at" field in the mutation.
func (m *BusinessMutation) EmailSentAt() (r time.Time, exists bool) {
	v := m.email_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSentAt returns the old "email_sent_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldEmailSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSentAt: %w", err)
	}
	return oldValue.EmailSentAt, nil
}

// ClearEmailSentAt clears the value of the "email_sent_at" field.
func (m *BusinessMutation) ClearEmailSentAt() {
	m.email_sent_at = nil
	m.clearedFields[business.FieldEmailSentAt] = struct{}{}
}

// EmailSentAtCleared returns if the "email_sent_at" field was cleared in this mutation.
func (m *BusinessMutation) EmailSentAtCleared() bool {
	_, ok := m.clearedFields[business.FieldEmailSentAt]
	return ok
}

// ResetEmailSentAt resets all changes to the "email_sent_at" field.
func (m *BusinessMutation) ResetEmailSentAt() {
	m.email_sent_at = nil
	delete(m.clearedFields, business.FieldEmailSentAt)
}

// SetSmsSent sets the "sms_sent" field.
func (m *BusinessMutation) SetSmsSent(b bool) {
	m.sms_sent = &b
}

// SmsSent returns the value of the "sms_sent" field in the mutation.
func (m *BusinessMutation) SmsSent() (r bool, exists bool) {
	v := m.sms_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldSmsSent returns the old "sms_sent" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldSmsSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmsSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmsSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmsSent: %w", err)
	}
	return oldValue.SmsSent, nil
}

// ResetSmsSent resets all changes to the "sms_sent" field.
func (m *BusinessMutation) ResetSmsSent() {
	m.sms_sent = nil
}

// SetSmsSentAt sets the "sms_sent_at" field.
func (m *BusinessMutation) SetSmsSentAt(t time.Time) {
	m.sms_sent_at = &t
}

// SmsSentAt returns the value of the "sms_sent_at" field in the mutation.
func (m *BusinessMutation) SmsSentAt() (r time.Time, exists bool) {
	v := m.sms_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSmsSentAt returns the old "sms_sent_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldSmsSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSmsSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSmsSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSmsSentAt: %w", err)
	}
	return oldValue.SmsSentAt, nil
}

// ClearSmsSentAt clears the value of the "sms_sent_at" field.
func (m *BusinessMutation) ClearSmsSentAt() {
	m.sms_sent_at = nil
	m.clearedFields[business.FieldSmsSentAt] = struct{}{}
}

// SmsSentAtCleared returns if the "sms_sent_at" field was cleared in this mutation.
func (m *BusinessMutation) SmsSentAtCleared() bool {
	_, ok := m.clearedFields[business.FieldSmsSentAt]
	return ok
}

// ResetSmsSentAt resets all changes to the "sms_sent_at" field.
func (m *BusinessMutation) ResetSmsSentAt() {
	m.sms_sent_at = nil
	delete(m.clearedFields, business.FieldSmsSentAt)
}

// SetSearchQuery sets the "search_query" field.
func (m *BusinessMutation) SetSearchQuery(s string) {
	m.search_query = &s
}

// SearchQuery returns the value of the "search_query" field in the mutation.
func (m *BusinessMutation) SearchQuery() (r string, exists bool) {
	v := m.search_query
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchQuery returns the old "search_query" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldSearchQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchQuery: %w", err)
	}
	return oldValue.SearchQuery, nil
}

// ClearSearchQuery clears the value of the "search_query" field.
func (m *BusinessMutation) ClearSearchQuery() {
	m.search_query = nil
	m.clearedFields[business.FieldSearchQuery] = struct{}{}
}

// SearchQueryCleared returns if the "search_query" field was cleared in this mutation.
func (m *BusinessMutation) SearchQueryCleared() bool {
	_, ok := m.clearedFields[business.FieldSearchQuery]
	return ok
}

// ResetSearchQuery resets all changes to the "search_query" field.
func (m *BusinessMutation) ResetSearchQuery() {
	m.search_query = nil
	delete(m.clearedFields, business.FieldSearchQuery)
}

// SetScrapedAt sets the "scraped_at" field.
func (m *BusinessMutation) SetScrapedAt(t time.Time) {
	m.scraped_at = &t
}

// ScrapedAt returns the value of the "scraped_at" field in the mutation.
func (m *BusinessMutation) ScrapedAt() (r time.Time, exists bool) {
	v := m.scraped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScrapedAt returns the old "scraped_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldScrapedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrapedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrapedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrapedAt: %w", err)
	}
	return oldValue.ScrapedAt, nil
}

// ResetScrapedAt resets all changes to the "scraped_at" field.
func (m *BusinessMutation) ResetScrapedAt() {
	m.scraped_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BusinessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BusinessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Business entity.
// If the Business object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BusinessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BusinessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BusinessMutation builder.
func (m *BusinessMutation) Where(ps ...predicate.Business) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BusinessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BusinessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Business, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BusinessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BusinessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Business).
func (m *BusinessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BusinessMutation) Fields() []string {
	fields := make([]string, 0, 45)
	if m.name != nil {
		fields = append(fields, business.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, business.FieldPhone)
	}
	if m.phone_unformatted != nil {
		fields = append(fields, business.FieldPhoneUnformatted)
	}
	if m.review_count != nil {
		fields = append(fields, business.FieldReviewCount)
	}
	if m.rating != nil {
		fields = append(fields, business.FieldRating)
	}
	if m.address != nil {
		fields = append(fields, business.FieldAddress)
	}
	if m.latitude != nil {
		fields = append(fields, business.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, business.FieldLongitude)
	}
	if m.website != nil {
		fields = append(fields, business.FieldWebsite)
	}
	if m.maps_url != nil {
		fields = append(fields, business.FieldMapsURL)
	}
	if m.price != nil {
		fields = append(fields, business.FieldPrice)
	}
	if m.category_name != nil {
		fields = append(fields, business.FieldCategoryName)
	}
	if m.categories != nil {
		fields = append(fields, business.FieldCategories)
	}
	if m.neighborhood != nil {
		fields = append(fields, business.FieldNeighborhood)
	}
	if m.street != nil {
		fields = append(fields, business.FieldStreet)
	}
	if m.city != nil {
		fields = append(fields, business.FieldCity)
	}
	if m.postal_code != nil {
		fields = append(fields, business.FieldPostalCode)
	}
	if m.state != nil {
		fields = append(fields, business.FieldState)
	}
	if m.country_code != nil {
		fields = append(fields, business.FieldCountryCode)
	}
	if m.permanently_closed != nil {
		fields = append(fields, business.FieldPermanentlyClosed)
	}
	if m.temporarily_closed != nil {
		fields = append(fields, business.FieldTemporarilyClosed)
	}
	if m.place_id != nil {
		fields = append(fields, business.FieldPlaceID)
	}
	if m.cid != nil {
		fields = append(fields, business.FieldCid)
	}
	if m.images_count != nil {
		fields = append(fields, business.FieldImagesCount)
	}
	if m.image_url != nil {
		fields = append(fields, business.FieldImageURL)
	}
	if m.hotel_stars != nil {
		fields = append(fields, business.FieldHotelStars)
	}
	if m.emails != nil {
		fields = append(fields, business.FieldEmails)
	}
	if m.phones != nil {
		fields = append(fields, business.FieldPhones)
	}
	if m.instagram != nil {
		fields = append(fields, business.FieldInstagram)
	}
	if m.facebook != nil {
		fields = append(fields, business.FieldFacebook)
	}
	if m.twitter != nil {
		fields = append(fields, business.FieldTwitter)
	}
	if m.youtube != nil {
		fields = append(fields, business.FieldYoutube)
	}
	if m.tiktok != nil {
		fields = append(fields, business.FieldTiktok)
	}
	if m.linkedin != nil {
		fields = append(fields, business.FieldLinkedin)
	}
	if m.whatsapp != nil {
		fields = append(fields, business.FieldWhatsapp)
	}
	if m.domain != nil {
		fields = append(fields, business.FieldDomain)
	}
	if m.opening_hours != nil {
		fields = append(fields, business.FieldOpeningHours)
	}
	if m.additional_info != nil {
		fields = append(fields, business.FieldAdditionalInfo)
	}
	if m.email_sent != nil {
		fields = append(fields, business.FieldEmailSent)
	}
	if m.email_sent_at != nil {
		fields = append(fields, business.FieldEmailSentAt)
	}
	if m.sms_sent != nil {
		fields = append(fields, business.FieldSmsSent)
	}
	if m.sms_sent_at != nil {
		fields = append(fields, business.FieldSmsSentAt)
	}
	if m.search_query != nil {
		fields = append(fields, business.FieldSearchQuery)
	}
	if m.scraped_at != nil {
		fields = append(fields, business.FieldScrapedAt)
	}
	if m.created_at != nil {
		fields = append(fields, business.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BusinessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case business.FieldName:
		return m.Name()
	case business.FieldPhone:
		return m.Phone()
	case business.FieldPhoneUnformatted:
		return m.PhoneUnformatted()
	case business.FieldReviewCount:
		return m.ReviewCount()
	case business.FieldRating:
		return m.Rating()
	case business.FieldAddress:
		return m.Address()
	case business.FieldLatitude:
		return m.Latitude()
	case business.FieldLongitude:
		return m.Longitude()
	case business.FieldWebsite:
		return m.Website()
	case business.FieldMapsURL:
		return m.MapsURL()
	case business.FieldPrice:
		return m.Price()
	case business.FieldCategoryName:
		return m.CategoryName()
	case business.FieldCategories:
		return m.Categories()
	case business.FieldNeighborhood:
		return m.Neighborhood()
	case business.FieldStreet:
		return m.Street()
	case business.FieldCity:
		return m.City()
	case business.FieldPostalCode:
		return m.PostalCode()
	case business.FieldState:
		return m.State()
	case business.FieldCountryCode:
		return m.CountryCode()
	case business.FieldPermanentlyClosed:
		return m.PermanentlyClosed()
	case business.FieldTemporarilyClosed:
		return m.TemporarilyClosed()
	case business.FieldPlaceID:
		return m.PlaceID()
	case business.FieldCid:
		return m.Cid()
	case business.FieldImagesCount:
		return m.ImagesCount()
	case business.FieldImageURL:
		return m.ImageURL()
	case business.FieldHotelStars:
		return m.HotelStars()
	case business.FieldEmails:
		return m.Emails()
	case business.FieldPhones:
		return m.Phones()
	case business.FieldInstagram:
		return m.Instagram()
	case business.FieldFacebook:
		return m.Facebook()
	case business.FieldTwitter:
		return m.Twitter()
	case business.FieldYoutube:
		return m.Youtube()
	case business.FieldTiktok:
		return m.Tiktok()
	case business.FieldLinkedin:
		return m.Linkedin()
	case business.FieldWhatsapp:
		return m.Whatsapp()
	case business.FieldDomain:
		return m.Domain()
	case business.FieldOpeningHours:
		return m.OpeningHours()
	case business.FieldAdditionalInfo:
		return m.AdditionalInfo()
	case business.FieldEmailSent:
		return m.EmailSent()
	case business.FieldEmailSentAt:
		return m.EmailSentAt()
	case business.FieldSmsSent:
		return m.SmsSent()
	case business.FieldSmsSentAt:
		return m.SmsSentAt()
	case business.FieldSearchQuery:
		return m.SearchQuery()
	case business.FieldScrapedAt:
		return m.ScrapedAt()
	case business.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BusinessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case business.FieldName:
		return m.OldName(ctx)
	case business.FieldPhone:
		return m.OldPhone(ctx)
	case business.FieldPhoneUnformatted:
		return m.OldPhoneUnformatted(ctx)
	case business.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case business.FieldRating:
		return m.OldRating(ctx)
	case business.FieldAddress:
		return m.OldAddress(ctx)
	case business.FieldLatitude:
		return m.OldLatitude(ctx)
	case business.FieldLongitude:
		return m.OldLongitude(ctx)
	case business.FieldWebsite:
		return m.OldWebsite(ctx)
	case business.FieldMapsURL:
		return m.OldMapsURL(ctx)
	case business.FieldPrice:
		return m.OldPrice(ctx)
	case business.FieldCategoryName:
		return m.OldCategoryName(ctx)
	case business.FieldCategories:
		return m.OldCategories(ctx)
	case business.FieldNeighborhood:
		return m.OldNeighborhood(ctx)
	case business.FieldStreet:
		return m.OldStreet(ctx)
	case business.FieldCity:
		return m.OldCity(ctx)
	case business.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case business.FieldState:
		return m.OldState(ctx)
	case business.FieldCountryCode:
		return m.OldCountryCode(ctx)
	case business.FieldPermanentlyClosed:
		return m.OldPermanentlyClosed(ctx)
	case business.FieldTemporarilyClosed:
		return m.OldTemporarilyClosed(ctx)
	case business.FieldPlaceID:
		return m.OldPlaceID(ctx)
	case business.FieldCid:
		return m.OldCid(ctx)
	case business.FieldImagesCount:
		return m.OldImagesCount(ctx)
	case business.FieldImageURL:
		return m.OldImageURL(ctx)
	case business.FieldHotelStars:
		return m.OldHotelStars(ctx)
	case business.FieldEmails:
		return m.OldEmails(ctx)
	case business.FieldPhones:
		return m.OldPhones(ctx)
	case business.FieldInstagram:
		return m.OldInstagram(ctx)
	case business.FieldFacebook:
		return m.OldFacebook(ctx)
	case business.FieldTwitter:
		return m.OldTwitter(ctx)
	case business.FieldYoutube:
		return m.OldYoutube(ctx)
	case business.FieldTiktok:
		return m.OldTiktok(ctx)
	case business.FieldLinkedin:
		return m.OldLinkedin(ctx)
	case business.FieldWhatsapp:
		return m.OldWhatsapp(ctx)
	case business.FieldDomain:
		return m.OldDomain(ctx)
	case business.FieldOpeningHours:
		return m.OldOpeningHours(ctx)
	case business.FieldAdditionalInfo:
		return m.OldAdditionalInfo(ctx)
	case business.FieldEmailSent:
		return m.OldEmailSent(ctx)
	case business.FieldEmailSentAt:
		return m.OldEmailSentAt(ctx)
	case business.FieldSmsSent:
		return m.OldSmsSent(ctx)
	case business.FieldSmsSentAt:
		return m.OldSmsSentAt(ctx)
	case business.FieldSearchQuery:
		return m.OldSearchQuery(ctx)
	case business.FieldScrapedAt:
		return m.OldScrapedAt(ctx)
	case business.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Business field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case business.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case business.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case business.FieldPhoneUnformatted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneUnformatted(v)
		return nil
	case business.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case business.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case business.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case business.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case business.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case business.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case business.FieldMapsURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMapsURL(v)
		return nil
	case business.FieldPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case business.FieldCategoryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryName(v)
		return nil
	case business.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case business.FieldNeighborhood:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeighborhood(v)
		return nil
	case business.FieldStreet:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreet(v)
		return nil
	case business.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case business.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case business.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case business.FieldCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryCode(v)
		return nil
	case business.FieldPermanentlyClosed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermanentlyClosed(v)
		return nil
	case business.FieldTemporarilyClosed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemporarilyClosed(v)
		return nil
	case business.FieldPlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceID(v)
		return nil
	case business.FieldCid:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCid(v)
		return nil
	case business.FieldImagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagesCount(v)
		return nil
	case business.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case business.FieldHotelStars:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHotelStars(v)
		return nil
	case business.FieldEmails:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmails(v)
		return nil
	case business.FieldPhones:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhones(v)
		return nil
	case business.FieldInstagram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstagram(v)
		return nil
	case business.FieldFacebook:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebook(v)
		return nil
	case business.FieldTwitter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwitter(v)
		return nil
	case business.FieldYoutube:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYoutube(v)
		return nil
	case business.FieldTiktok:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTiktok(v)
		return nil
	case business.FieldLinkedin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedin(v)
		return nil
	case business.FieldWhatsapp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsapp(v)
		return nil
	case business.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case business.FieldOpeningHours:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningHours(v)
		return nil
	case business.FieldAdditionalInfo:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalInfo(v)
		return nil
	case business.FieldEmailSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSent(v)
		return nil
	case business.FieldEmailSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSentAt(v)
		return nil
	case business.FieldSmsSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmsSent(v)
		return nil
	case business.FieldSmsSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSmsSentAt(v)
		return nil
	case business.FieldSearchQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchQuery(v)
		return nil
	case business.FieldScrapedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrapedAt(v)
		return nil
	case business.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BusinessMutation) AddedFields() []string {
	var fields []string
	if m.addreview_count != nil {
		fields = append(fields, business.FieldReviewCount)
	}
	if m.addrating != nil {
		fields = append(fields, business.FieldRating)
	}
	if m.addlatitude != nil {
		fields = append(fields, business.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, business.FieldLongitude)
	}
	if m.addimages_count != nil {
		fields = append(fields, business.FieldImagesCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BusinessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case business.FieldReviewCount:
		return m.AddedReviewCount()
	case business.FieldRating:
		return m.AddedRating()
	case business.FieldLatitude:
		return m.AddedLatitude()
	case business.FieldLongitude:
		return m.AddedLongitude()
	case business.FieldImagesCount:
		return m.AddedImagesCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BusinessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case business.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case business.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case business.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case business.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case business.FieldImagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImagesCount(v)
		return nil
	}
	return fmt.Errorf("unknown Business numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BusinessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(business.FieldPhone) {
		fields = append(fields, business.FieldPhone)
	}
	if m.FieldCleared(business.FieldPhoneUnformatted) {
		fields = append(fields, business.FieldPhoneUnformatted)
	}
	if m.FieldCleared(business.FieldRating) {
		fields = append(fields, business.FieldRating)
	}
	if m.FieldCleared(business.FieldAddress) {
		fields = append(fields, business.FieldAddress)
	}
	if m.FieldCleared(business.FieldWebsite) {
		fields = append(fields, business.FieldWebsite)
	}
	if m.FieldCleared(business.FieldMapsURL) {
		fields = append(fields, business.FieldMapsURL)
	}
	if m.FieldCleared(business.FieldPrice) {
		fields = append(fields, business.FieldPrice)
	}
	if m.FieldCleared(business.FieldCategoryName) {
		fields = append(fields, business.FieldCategoryName)
	}
	if m.FieldCleared(business.FieldCategories) {
		fields = append(fields, business.FieldCategories)
	}
	if m.FieldCleared(business.FieldNeighborhood) {
		fields = append(fields, business.FieldNeighborhood)
	}
	if m.FieldCleared(business.FieldStreet) {
		fields = append(fields, business.FieldStreet)
	}
	if m.FieldCleared(business.FieldCity) {
		fields = append(fields, business.FieldCity)
	}
	if m.FieldCleared(business.FieldPostalCode) {
		fields = append(fields, business.FieldPostalCode)
	}
	if m.FieldCleared(business.FieldState) {
		fields = append(fields, business.FieldState)
	}
	if m.FieldCleared(business.FieldCountryCode) {
		fields = append(fields, business.FieldCountryCode)
	}
	if m.FieldCleared(business.FieldPlaceID) {
		fields = append(fields, business.FieldPlaceID)
	}
	if m.FieldCleared(business.FieldCid) {
		fields = append(fields, business.FieldCid)
	}
	if m.FieldCleared(business.FieldImageURL) {
		fields = append(fields, business.FieldImageURL)
	}
	if m.FieldCleared(business.FieldHotelStars) {
		fields = append(fields, business.FieldHotelStars)
	}
	if m.FieldCleared(business.FieldEmails) {
		fields = append(fields, business.FieldEmails)
	}
	if m.FieldCleared(business.FieldPhones) {
		fields = append(fields, business.FieldPhones)
	}
	if m.FieldCleared(business.FieldInstagram) {
		fields = append(fields, business.FieldInstagram)
	}
	if m.FieldCleared(business.FieldFacebook) {
		fields = append(fields, business.FieldFacebook)
	}
	if m.FieldCleared(business.FieldTwitter) {
		fields = append(fields, business.FieldTwitter)
	}
	if m.FieldCleared(business.FieldYoutube) {
		fields = append(fields, business.FieldYoutube)
	}
	if m.FieldCleared(business.FieldTiktok) {
		fields = append(fields, business.FieldTiktok)
	}
	if m.FieldCleared(business.FieldLinkedin) {
		fields = append(fields, business.FieldLinkedin)
	}
	if m.FieldCleared(business.FieldWhatsapp) {
		fields = append(fields, business.FieldWhatsapp)
	}
	if m.FieldCleared(business.FieldDomain) {
		fields = append(fields, business.FieldDomain)
	}
	if m.FieldCleared(business.FieldOpeningHours) {
		fields = append(fields, business.FieldOpeningHours)
	}
	if m.FieldCleared(business.FieldAdditionalInfo) {
		fields = append(fields, business.FieldAdditionalInfo)
	}
	if m.FieldCleared(business.FieldEmailSentAt) {
		fields = append(fields, business.FieldEmailSentAt)
	}
	if m.FieldCleared(business.FieldSmsSentAt) {
		fields = append(fields, business.FieldSmsSentAt)
	}
	if m.FieldCleared(business.FieldSearchQuery) {
		fields = append(fields, business.FieldSearchQuery)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BusinessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BusinessMutation) ClearField(name string) error {
	switch name {
	case business.FieldPhone:
		m.ClearPhone()
		return nil
	case business.FieldPhoneUnformatted:
		m.ClearPhoneUnformatted()
		return nil
	case business.FieldRating:
		m.ClearRating()
		return nil
	case business.FieldAddress:
		m.ClearAddress()
		return nil
	case business.FieldWebsite:
		m.ClearWebsite()
		return nil
	case business.FieldMapsURL:
		m.ClearMapsURL()
		return nil
	case business.FieldPrice:
		m.ClearPrice()
		return nil
	case business.FieldCategoryName:
		m.ClearCategoryName()
		return nil
	case business.FieldCategories:
		m.ClearCategories()
		return nil
	case business.FieldNeighborhood:
		m.ClearNeighborhood()
		return nil
	case business.FieldStreet:
		m.ClearStreet()
		return nil
	case business.FieldCity:
		m.ClearCity()
		return nil
	case business.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case business.FieldState:
		m.ClearState()
		return nil
	case business.FieldCountryCode:
		m.ClearCountryCode()
		return nil
	case business.FieldPlaceID:
		m.ClearPlaceID()
		return nil
	case business.FieldCid:
		m.ClearCid()
		return nil
	case business.FieldImageURL:
		m.ClearImageURL()
		return nil
	case business.FieldHotelStars:
		m.ClearHotelStars()
		return nil
	case business.FieldEmails:
		m.ClearEmails()
		return nil
	case business.FieldPhones:
		m.ClearPhones()
		return nil
	case business.FieldInstagram:
		m.ClearInstagram()
		return nil
	case business.FieldFacebook:
		m.ClearFacebook()
		return nil
	case business.FieldTwitter:
		m.ClearTwitter()
		return nil
	case business.FieldYoutube:
		m.ClearYoutube()
		return nil
	case business.FieldTiktok:
		m.ClearTiktok()
		return nil
	case business.FieldLinkedin:
		m.ClearLinkedin()
		return nil
	case business.FieldWhatsapp:
		m.ClearWhatsapp()
		return nil
	case business.FieldDomain:
		m.ClearDomain()
		return nil
	case business.FieldOpeningHours:
		m.ClearOpeningHours()
		return nil
	case business.FieldAdditionalInfo:
		m.ClearAdditionalInfo()
		return nil
	case business.FieldEmailSentAt:
		m.ClearEmailSentAt()
		return nil
	case business.FieldSmsSentAt:
		m.ClearSmsSentAt()
		return nil
	case business.FieldSearchQuery:
		m.ClearSearchQuery()
		return nil
	}
	return fmt.Errorf("unknown Business nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BusinessMutation) ResetField(name string) error {
	switch name {
	case business.FieldName:
		m.ResetName()
		return nil
	case business.FieldPhone:
		m.ResetPhone()
		return nil
	case business.FieldPhoneUnformatted:
		m.ResetPhoneUnformatted()
		return nil
	case business.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case business.FieldRating:
		m.ResetRating()
		return nil
	case business.FieldAddress:
		m.ResetAddress()
		return nil
	case business.FieldLatitude:
		m.ResetLatitude()
		return nil
	case business.FieldLongitude:
		m.ResetLongitude()
		return nil
	case business.FieldWebsite:
		m.ResetWebsite()
		return nil
	case business.FieldMapsURL:
		m.ResetMapsURL()
		return nil
	case business.FieldPrice:
		m.ResetPrice()
		return nil
	case business.FieldCategoryName:
		m.ResetCategoryName()
		return nil
	case business.FieldCategories:
		m.ResetCategories()
		return nil
	case business.FieldNeighborhood:
		m.ResetNeighborhood()
		return nil
	case business.FieldStreet:
		m.ResetStreet()
		return nil
	case business.FieldCity:
		m.ResetCity()
		return nil
	case business.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case business.FieldState:
		m.ResetState()
		return nil
	case business.FieldCountryCode:
		m.ResetCountryCode()
		return nil
	case business.FieldPermanentlyClosed:
		m.ResetPermanentlyClosed()
		return nil
	case business.FieldTemporarilyClosed:
		m.ResetTemporarilyClosed()
		return nil
	case business.FieldPlaceID:
		m.ResetPlaceID()
		return nil
	case business.FieldCid:
		m.ResetCid()
		return nil
	case business.FieldImagesCount:
		m.ResetImagesCount()
		return nil
	case business.FieldImageURL:
		m.ResetImageURL()
		return nil
	case business.FieldHotelStars:
		m.ResetHotelStars()
		return nil
	case business.FieldEmails:
		m.ResetEmails()
		return nil
	case business.FieldPhones:
		m.ResetPhones()
		return nil
	case business.FieldInstagram:
		m.ResetInstagram()
		return nil
	case business.FieldFacebook:
		m.ResetFacebook()
		return nil
	case business.FieldTwitter:
		m.ResetTwitter()
		return nil
	case business.FieldYoutube:
		m.ResetYoutube()
		return nil
	case business.FieldTiktok:
		m.ResetTiktok()
		return nil
	case business.FieldLinkedin:
		m.ResetLinkedin()
		return nil
	case business.FieldWhatsapp:
		m.ResetWhatsapp()
		return nil
	case business.FieldDomain:
		m.ResetDomain()
		return nil
	case business.FieldOpeningHours:
		m.ResetOpeningHours()
		return nil
	case business.FieldAdditionalInfo:
		m.ResetAdditionalInfo()
		return nil
	case business.FieldEmailSent:
		m.ResetEmailSent()
		return nil
	case business.FieldEmailSentAt:
		m.ResetEmailSentAt()
		return nil
	case business.FieldSmsSent:
		m.ResetSmsSent()
		return nil
	case business.FieldSmsSentAt:
		m.ResetSmsSentAt()
		return nil
	case business.FieldSearchQuery:
		m.ResetSearchQuery()
		return nil
	case business.FieldScrapedAt:
		m.ResetScrapedAt()
		return nil
	case business.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Business field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BusinessMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BusinessMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BusinessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BusinessMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BusinessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BusinessMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BusinessMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Business unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BusinessMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Business edge %s", name)
}

// ExportMutation represents an operation that mutates the Export nodes in the graph.
type ExportMutation struct {
	config
	op                Op
	typ               string
	id                *int
	format            *export.Format
	status            *export.Status
	filters_applied   *map[string]interface{}
	business_count    *int
	addbusiness_count *int
	file_path         *string
	error_message     *string
	expires_at        *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Export, error)
	predicates        []predicate.Export
}

var _ ent.Mutation = (*ExportMutation)(nil)

// exportOption allows management of the mutation configuration using functional options.
type exportOption func(*ExportMutation)

// newExportMutation creates new mutation for the Export entity.
func newExportMutation(c config, op Op, opts ...exportOption) *ExportMutation {
	m := &ExportMutation{
		config:        c,
		op:            op,
		typ:           TypeExport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExportID sets the ID field of the mutation.
func withExportID(id int) exportOption {
	return func(m *ExportMutation) {
		var (
			err   error
			once  sync.Once
			value *Export
		)
		m.oldValue = func(ctx context.Context) (*Export, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Export.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExport sets the old Export of the mutation.
func withExport(node *Export) exportOption {
	return func(m *ExportMutation) {
		m.oldValue = func(context.Context) (*Export, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExportMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExportMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Export.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFormat sets the "format" field.
func (m *ExportMutation) SetFormat(e export.Format) {
	m.format = &e
}

// Format returns the value of the "format" field in the mutation.
func (m *ExportMutation) Format() (r export.Format, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldFormat(ctx context.Context) (v export.Format, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExportMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *ExportMutation) SetStatus(e export.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExportMutation) Status() (r export.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldStatus(ctx context.Context) (v export.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExportMutation) ResetStatus() {
	m.status = nil
}

// SetFiltersApplied sets the "filters_applied" field.
func (m *ExportMutation) SetFiltersApplied(value map[string]interface{}) {
	m.filters_applied = &value
}

// FiltersApplied returns the value of the "filters_applied" field in the mutation.
func (m *ExportMutation) FiltersApplied() (r map[string]interface{}, exists bool) {
	v := m.filters_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldFiltersApplied returns the old "filters_applied" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldFiltersApplied(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiltersApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiltersApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiltersApplied: %w", err)
	}
	return oldValue.FiltersApplied, nil
}

// ClearFiltersApplied clears the value of the "filters_applied" field.
func (m *ExportMutation) ClearFiltersApplied() {
	m.filters_applied = nil
	m.clearedFields[export.FieldFiltersApplied] = struct{}{}
}

// FiltersAppliedCleared returns if the "filters_applied" field was cleared in this mutation.
func (m *ExportMutation) FiltersAppliedCleared() bool {
	_, ok := m.clearedFields[export.FieldFiltersApplied]
	return ok
}

// ResetFiltersApplied resets all changes to the "filters_applied" field.
func (m *ExportMutation) ResetFiltersApplied() {
	m.filters_applied = nil
	delete(m.clearedFields, export.FieldFiltersApplied)
}

// SetBusinessCount sets the "business_count" field.
func (m *ExportMutation) SetBusinessCount(i int) {
	m.business_count = &i
	m.addbusiness_count = nil
}

// BusinessCount returns the value of the "business_count" field in the mutation.
func (m *ExportMutation) BusinessCount() (r int, exists bool) {
	v := m.business_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessCount returns the old "business_count" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldBusinessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessCount: %w", err)
	}
	return oldValue.BusinessCount, nil
}

// AddBusinessCount adds i to the "business_count" field.
func (m *ExportMutation) AddBusinessCount(i int) {
	if m.addbusiness_count != nil {
		*m.addbusiness_count += i
	} else {
		m.addbusiness_count = &i
	}
}

// AddedBusinessCount returns the value that was added to the "business_count" field in this mutation.
func (m *ExportMutation) AddedBusinessCount() (r int, exists bool) {
	v := m.addbusiness_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBusinessCount resets all changes to the "business_count" field.
func (m *ExportMutation) ResetBusinessCount() {
	m.business_count = nil
	m.addbusiness_count = nil
}

// SetFilePath sets the "file_path" field.
func (m *ExportMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ExportMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *ExportMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[export.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *ExportMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[export.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ExportMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, export.FieldFilePath)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[export.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[export.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, export.FieldErrorMessage)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ExportMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ExportMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ExportMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[export.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ExportMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[export.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ExportMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, export.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Export entity.
// If the Export object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExportMutation builder.
func (m *ExportMutation) Where(ps ...predicate.Export) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Export, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Export).
func (m *ExportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExportMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.format != nil {
		fields = append(fields, export.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, export.FieldStatus)
	}
	if m.filters_applied != nil {
		fields = append(fields, export.FieldFiltersApplied)
	}
	if m.business_count != nil {
		fields = append(fields, export.FieldBusinessCount)
	}
	if m.file_path != nil {
		fields = append(fields, export.FieldFilePath)
	}
	if m.error_message != nil {
		fields = append(fields, export.FieldErrorMessage)
	}
	if m.expires_at != nil {
		fields = append(fields, export.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, export.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case export.FieldFormat:
		return m.Format()
	case export.FieldStatus:
		return m.Status()
	case export.FieldFiltersApplied:
		return m.FiltersApplied()
	case export.FieldBusinessCount:
		return m.BusinessCount()
	case export.FieldFilePath:
		return m.FilePath()
	case export.FieldErrorMessage:
		return m.ErrorMessage()
	case export.FieldExpiresAt:
		return m.ExpiresAt()
	case export.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case export.FieldFormat:
		return m.OldFormat(ctx)
	case export.FieldStatus:
		return m.OldStatus(ctx)
	case export.FieldFiltersApplied:
		return m.OldFiltersApplied(ctx)
	case export.FieldBusinessCount:
		return m.OldBusinessCount(ctx)
	case export.FieldFilePath:
		return m.OldFilePath(ctx)
	case export.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case export.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case export.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Export field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case export.FieldFormat:
		v, ok := value.(export.Format)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case export.FieldStatus:
		v, ok := value.(export.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case export.FieldFiltersApplied:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiltersApplied(v)
		return nil
	case export.FieldBusinessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessCount(v)
		return nil
	case export.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case export.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case export.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case export.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Export field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExportMutation) AddedFields() []string {
	var fields []string
	if m.addbusiness_count != nil {
		fields = append(fields, export.FieldBusinessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case export.FieldBusinessCount:
		return m.AddedBusinessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case export.FieldBusinessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBusinessCount(v)
		return nil
	}
	return fmt.Errorf("unknown Export numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(export.FieldFiltersApplied) {
		fields = append(fields, export.FieldFiltersApplied)
	}
	if m.FieldCleared(export.FieldFilePath) {
		fields = append(fields, export.FieldFilePath)
	}
	if m.FieldCleared(export.FieldErrorMessage) {
		fields = append(fields, export.FieldErrorMessage)
	}
	if m.FieldCleared(export.FieldExpiresAt) {
		fields = append(fields, export.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExportMutation) ClearField(name string) error {
	switch name {
	case export.FieldFiltersApplied:
		m.ClearFiltersApplied()
		return nil
	case export.FieldFilePath:
		m.ClearFilePath()
		return nil
	case export.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case export.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Export nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExportMutation) ResetField(name string) error {
	switch name {
	case export.FieldFormat:
		m.ResetFormat()
		return nil
	case export.FieldStatus:
		m.ResetStatus()
		return nil
	case export.FieldFiltersApplied:
		m.ResetFiltersApplied()
		return nil
	case export.FieldBusinessCount:
		m.ResetBusinessCount()
		return nil
	case export.FieldFilePath:
		m.ResetFilePath()
		return nil
	case export.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case export.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case export.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Export field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExportMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExportMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExportMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExportMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Export unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExportMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Export edge %s", name)
}

// ScrapeRunMutation represents an operation that mutates the ScrapeRun nodes in the graph.
type ScrapeRunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	run_id              *string
	search_query        *string
	city                *string
	neighborhoods       *[]string
	appendneighborhoods []string
	max_results         *int
	addmax_results      *int
	skip_duplicates     *bool
	status              *scraperun.Status
	scraped             *int
	addscraped          *int
	inserted            *int
	addinserted         *int
	updated             *int
	addupdated          *int
	duplicates          *int
	addduplicates       *int
	failed              *int
	addfailed           *int
	message             *string
	started_at          *time.Time
	finished_at         *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ScrapeRun, error)
	predicates          []predicate.ScrapeRun
}

var _ ent.Mutation = (*ScrapeRunMutation)(nil)

// scraperunOption allows management of the mutation configuration using functional options.
type scraperunOption func(*ScrapeRunMutation)

// newScrapeRunMutation creates new mutation for the ScrapeRun entity.
func newScrapeRunMutation(c config, op Op, opts ...scraperunOption) *ScrapeRunMutation {
	m := &ScrapeRunMutation{
		config:        c,
		op:            op,
		typ:           TypeScrapeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScrapeRunID sets the ID field of the mutation.
func withScrapeRunID(id int) scraperunOption {
	return func(m *ScrapeRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ScrapeRun
		)
		m.oldValue = func(ctx context.Context) (*ScrapeRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScrapeRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScrapeRun sets the old ScrapeRun of the mutation.
func withScrapeRun(node *ScrapeRun) scraperunOption {
	return func(m *ScrapeRunMutation) {
		m.oldValue = func(context.Context) (*ScrapeRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScrapeRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScrapeRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScrapeRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScrapeRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScrapeRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ScrapeRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ScrapeRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *ScrapeRunMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[scraperun.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ScrapeRunMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[scraperun.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ScrapeRunMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, scraperun.FieldRunID)
}

// SetSearchQuery sets the "search_query" field.
func (m *ScrapeRunMutation) SetSearchQuery(s string) {
	m.search_query = &s
}

// SearchQuery returns the value of the "search_query" field in the mutation.
func (m *ScrapeRunMutation) SearchQuery() (r string, exists bool) {
	v := m.search_query
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchQuery returns the old "search_query" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldSearchQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchQuery: %w", err)
	}
	return oldValue.SearchQuery, nil
}

// ResetSearchQuery resets all changes to the "search_query" field.
func (m *ScrapeRunMutation) ResetSearchQuery() {
	m.search_query = nil
}

// SetCity sets the "city" field.
func (m *ScrapeRunMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ScrapeRunMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *ScrapeRunMutation) ResetCity() {
	m.city = nil
}

// SetNeighborhoods sets the "neighborhoods" field.
func (m *ScrapeRunMutation) SetNeighborhoods(s []string) {
	m.neighborhoods = &s
	m.appendneighborhoods = nil
}

// Neighborhoods returns the value of the "neighborhoods" field in the mutation.
func (m *ScrapeRunMutation) Neighborhoods() (r []string, exists bool) {
	v := m.neighborhoods
	if v == nil {
		return
	}
	return *v, true
}

// OldNeighborhoods returns the old "neighborhoods" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldNeighborhoods(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeighborhoods is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeighborhoods requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeighborhoods: %w", err)
	}
	return oldValue.Neighborhoods, nil
}

// AppendNeighborhoods adds s to the "neighborhoods" field.
func (m *ScrapeRunMutation) AppendNeighborhoods(s []string) {
	m.appendneighborhoods = append(m.appendneighborhoods, s...)
}

// AppendedNeighborhoods returns the list of values that were appended to the "neighborhoods" field in this mutation.
func (m *ScrapeRunMutation) AppendedNeighborhoods() ([]string, bool) {
	if len(m.appendneighborhoods) == 0 {
		return nil, false
	}
	return m.appendneighborhoods, true
}

// ClearNeighborhoods clears the value of the "neighborhoods" field.
func (m *ScrapeRunMutation) ClearNeighborhoods() {
	m.neighborhoods = nil
	m.appendneighborhoods = nil
	m.clearedFields[scraperun.FieldNeighborhoods] = struct{}{}
}

// NeighborhoodsCleared returns if the "neighborhoods" field was cleared in this mutation.
func (m *ScrapeRunMutation) NeighborhoodsCleared() bool {
	_, ok := m.clearedFields[scraperun.FieldNeighborhoods]
	return ok
}

// ResetNeighborhoods resets all changes to the "neighborhoods" field.
func (m *ScrapeRunMutation) ResetNeighborhoods() {
	m.neighborhoods = nil
	m.appendneighborhoods = nil
	delete(m.clearedFields, scraperun.FieldNeighborhoods)
}

// SetMaxResults sets the "max_results" field.
func (m *ScrapeRunMutation) SetMaxResults(i int) {
	m.max_results = &i
	m.addmax_results = nil
}

// MaxResults returns the value of the "max_results" field in the mutation.
func (m *ScrapeRunMutation) MaxResults() (r int, exists bool) {
	v := m.max_results
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxResults returns the old "max_results" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldMaxResults(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxResults: %w", err)
	}
	return oldValue.MaxResults, nil
}

// AddMaxResults adds i to the "max_results" field.
func (m *ScrapeRunMutation) AddMaxResults(i int) {
	if m.addmax_results != nil {
		*m.addmax_results += i
	} else {
		m.addmax_results = &i
	}
}

// AddedMaxResults returns the value that was added to the "max_results" field in this mutation.
func (m *ScrapeRunMutation) AddedMaxResults() (r int, exists bool) {
	v := m.addmax_results
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxResults resets all changes to the "max_results" field.
func (m *ScrapeRunMutation) ResetMaxResults() {
	m.max_results = nil
	m.addmax_results = nil
}

// SetSkipDuplicates sets the "skip_duplicates" field.
func (m *ScrapeRunMutation) SetSkipDuplicates(b bool) {
	m.skip_duplicates = &b
}

// SkipDuplicates returns the value of the "skip_duplicates" field in the mutation.
func (m *ScrapeRunMutation) SkipDuplicates() (r bool, exists bool) {
	v := m.skip_duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipDuplicates returns the old "skip_duplicates" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldSkipDuplicates(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipDuplicates: %w", err)
	}
	return oldValue.SkipDuplicates, nil
}

// ResetSkipDuplicates resets all changes to the "skip_duplicates" field.
func (m *ScrapeRunMutation) ResetSkipDuplicates() {
	m.skip_duplicates = nil
}

// SetStatus sets the "status" field.
func (m *ScrapeRunMutation) SetStatus(s scraperun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScrapeRunMutation) Status() (r scraperun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldStatus(ctx context.Context) (v scraperun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScrapeRunMutation) ResetStatus() {
	m.status = nil
}

// SetScraped sets the "scraped" field.
func (m *ScrapeRunMutation) SetScraped(i int) {
	m.scraped = &i
	m.addscraped = nil
}

// Scraped returns the value of the "scraped" field in the mutation.
func (m *ScrapeRunMutation) Scraped() (r int, exists bool) {
	v := m.scraped
	if v == nil {
		return
	}
	return *v, true
}

// OldScraped returns the old "scraped" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldScraped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScraped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScraped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScraped: %w", err)
	}
	return oldValue.Scraped, nil
}

// AddScraped adds i to the "scraped" field.
func (m *ScrapeRunMutation) AddScraped(i int) {
	if m.addscraped != nil {
		*m.addscraped += i
	} else {
		m.addscraped = &i
	}
}

// AddedScraped returns the value that was added to the "scraped" field in this mutation.
func (m *ScrapeRunMutation) AddedScraped() (r int, exists bool) {
	v := m.addscraped
	if v == nil {
		return
	}
	return *v, true
}

// ResetScraped resets all changes to the "scraped" field.
func (m *ScrapeRunMutation) ResetScraped() {
	m.scraped = nil
	m.addscraped = nil
}

// SetInserted sets the "inserted" field.
func (m *ScrapeRunMutation) SetInserted(i int) {
	m.inserted = &i
	m.addinserted = nil
}

// Inserted returns the value of the "inserted" field in the mutation.
func (m *ScrapeRunMutation) Inserted() (r int, exists bool) {
	v := m.inserted
	if v == nil {
		return
	}
	return *v, true
}

// OldInserted returns the old "inserted" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldInserted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInserted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInserted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInserted: %w", err)
	}
	return oldValue.Inserted, nil
}

// AddInserted adds i to the "inserted" field.
func (m *ScrapeRunMutation) AddInserted(i int) {
	if m.addinserted != nil {
		*m.addinserted += i
	} else {
		m.addinserted = &i
	}
}

// AddedInserted returns the value that was added to the "inserted" field in this mutation.
func (m *ScrapeRunMutation) AddedInserted() (r int, exists bool) {
	v := m.addinserted
	if v == nil {
		return
	}
	return *v, true
}

// ResetInserted resets all changes to the "inserted" field.
func (m *ScrapeRunMutation) ResetInserted() {
	m.inserted = nil
	m.addinserted = nil
}

// SetUpdated sets the "updated" field.
func (m *ScrapeRunMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *ScrapeRunMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *ScrapeRunMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *ScrapeRunMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *ScrapeRunMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetDuplicates sets the "duplicates" field.
func (m *ScrapeRunMutation) SetDuplicates(i int) {
	m.duplicates = &i
	m.addduplicates = nil
}

// Duplicates returns the value of the "duplicates" field in the mutation.
func (m *ScrapeRunMutation) Duplicates() (r int, exists bool) {
	v := m.duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicates returns the old "duplicates" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldDuplicates(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicates: %w", err)
	}
	return oldValue.Duplicates, nil
}

// AddDuplicates adds i to the "duplicates" field.
func (m *ScrapeRunMutation) AddDuplicates(i int) {
	if m.addduplicates != nil {
		*m.addduplicates += i
	} else {
		m.addduplicates = &i
	}
}

// AddedDuplicates returns the value that was added to the "duplicates" field in this mutation.
func (m *ScrapeRunMutation) AddedDuplicates() (r int, exists bool) {
	v := m.addduplicates
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuplicates resets all changes to the "duplicates" field.
func (m *ScrapeRunMutation) ResetDuplicates() {
	m.duplicates = nil
	m.addduplicates = nil
}

// SetFailed sets the "failed" field.
func (m *ScrapeRunMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *ScrapeRunMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *ScrapeRunMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *ScrapeRunMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *ScrapeRunMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetMessage sets the "message" field.
func (m *ScrapeRunMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ScrapeRunMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *ScrapeRunMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[scraperun.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *ScrapeRunMutation) MessageCleared() bool {
	_, ok := m.clearedFields[scraperun.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *ScrapeRunMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, scraperun.FieldMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *ScrapeRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScrapeRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScrapeRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScrapeRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScrapeRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScrapeRun entity.
// If the ScrapeRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScrapeRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScrapeRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scraperun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScrapeRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scraperun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScrapeRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scraperun.FieldFinishedAt)
}

// Where appends a list predicates to the ScrapeRunMutation builder.
func (m *ScrapeRunMutation) Where(ps ...predicate.ScrapeRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScrapeRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScrapeRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScrapeRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScrapeRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScrapeRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScrapeRun).
func (m *ScrapeRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScrapeRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.run_id != nil {
		fields = append(fields, scraperun.FieldRunID)
	}
	if m.search_query != nil {
		fields = append(fields, scraperun.FieldSearchQuery)
	}
	if m.city != nil {
		fields = append(fields, scraperun.FieldCity)
	}
	if m.neighborhoods != nil {
		fields = append(fields, scraperun.FieldNeighborhoods)
	}
	if m.max_results != nil {
		fields = append(fields, scraperun.FieldMaxResults)
	}
	if m.skip_duplicates != nil {
		fields = append(fields, scraperun.FieldSkipDuplicates)
	}
	if m.status != nil {
		fields = append(fields, scraperun.FieldStatus)
	}
	if m.scraped != nil {
		fields = append(fields, scraperun.FieldScraped)
	}
	if m.inserted != nil {
		fields = append(fields, scraperun.FieldInserted)
	}
	if m.updated != nil {
		fields = append(fields, scraperun.FieldUpdated)
	}
	if m.duplicates != nil {
		fields = append(fields, scraperun.FieldDuplicates)
	}
	if m.failed != nil {
		fields = append(fields, scraperun.FieldFailed)
	}
	if m.message != nil {
		fields = append(fields, scraperun.FieldMessage)
	}
	if m.started_at != nil {
		fields = append(fields, scraperun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scraperun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScrapeRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scraperun.FieldRunID:
		return m.RunID()
	case scraperun.FieldSearchQuery:
		return m.SearchQuery()
	case scraperun.FieldCity:
		return m.City()
	case scraperun.FieldNeighborhoods:
		return m.Neighborhoods()
	case scraperun.FieldMaxResults:
		return m.MaxResults()
	case scraperun.FieldSkipDuplicates:
		return m.SkipDuplicates()
	case scraperun.FieldStatus:
		return m.Status()
	case scraperun.FieldScraped:
		return m.Scraped()
	case scraperun.FieldInserted:
		return m.Inserted()
	case scraperun.FieldUpdated:
		return m.Updated()
	case scraperun.FieldDuplicates:
		return m.Duplicates()
	case scraperun.FieldFailed:
		return m.Failed()
	case scraperun.FieldMessage:
		return m.Message()
	case scraperun.FieldStartedAt:
		return m.StartedAt()
	case scraperun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScrapeRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scraperun.FieldRunID:
		return m.OldRunID(ctx)
	case scraperun.FieldSearchQuery:
		return m.OldSearchQuery(ctx)
	case scraperun.FieldCity:
		return m.OldCity(ctx)
	case scraperun.FieldNeighborhoods:
		return m.OldNeighborhoods(ctx)
	case scraperun.FieldMaxResults:
		return m.OldMaxResults(ctx)
	case scraperun.FieldSkipDuplicates:
		return m.OldSkipDuplicates(ctx)
	case scraperun.FieldStatus:
		return m.OldStatus(ctx)
	case scraperun.FieldScraped:
		return m.OldScraped(ctx)
	case scraperun.FieldInserted:
		return m.OldInserted(ctx)
	case scraperun.FieldUpdated:
		return m.OldUpdated(ctx)
	case scraperun.FieldDuplicates:
		return m.OldDuplicates(ctx)
	case scraperun.FieldFailed:
		return m.OldFailed(ctx)
	case scraperun.FieldMessage:
		return m.OldMessage(ctx)
	case scraperun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scraperun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScrapeRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScrapeRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scraperun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case scraperun.FieldSearchQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchQuery(v)
		return nil
	case scraperun.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case scraperun.FieldNeighborhoods:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeighborhoods(v)
		return nil
	case scraperun.FieldMaxResults:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxResults(v)
		return nil
	case scraperun.FieldSkipDuplicates:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipDuplicates(v)
		return nil
	case scraperun.FieldStatus:
		v, ok := value.(scraperun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scraperun.FieldScraped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScraped(v)
		return nil
	case scraperun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInserted(v)
		return nil
	case scraperun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case scraperun.FieldDuplicates:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicates(v)
		return nil
	case scraperun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case scraperun.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case scraperun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scraperun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScrapeRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScrapeRunMutation) AddedFields() []string {
	var fields []string
	if m.addmax_results != nil {
		fields = append(fields, scraperun.FieldMaxResults)
	}
	if m.addscraped != nil {
		fields = append(fields, scraperun.FieldScraped)
	}
	if m.addinserted != nil {
		fields = append(fields, scraperun.FieldInserted)
	}
	if m.addupdated != nil {
		fields = append(fields, scraperun.FieldUpdated)
	}
	if m.addduplicates != nil {
		fields = append(fields, scraperun.FieldDuplicates)
	}
	if m.addfailed != nil {
		fields = append(fields, scraperun.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScrapeRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scraperun.FieldMaxResults:
		return m.AddedMaxResults()
	case scraperun.FieldScraped:
		return m.AddedScraped()
	case scraperun.FieldInserted:
		return m.AddedInserted()
	case scraperun.FieldUpdated:
		return m.AddedUpdated()
	case scraperun.FieldDuplicates:
		return m.AddedDuplicates()
	case scraperun.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScrapeRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scraperun.FieldMaxResults:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxResults(v)
		return nil
	case scraperun.FieldScraped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScraped(v)
		return nil
	case scraperun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInserted(v)
		return nil
	case scraperun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case scraperun.FieldDuplicates:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicates(v)
		return nil
	case scraperun.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown ScrapeRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScrapeRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scraperun.FieldRunID) {
		fields = append(fields, scraperun.FieldRunID)
	}
	if m.FieldCleared(scraperun.FieldNeighborhoods) {
		fields = append(fields, scraperun.FieldNeighborhoods)
	}
	if m.FieldCleared(scraperun.FieldMessage) {
		fields = append(fields, scraperun.FieldMessage)
	}
	if m.FieldCleared(scraperun.FieldFinishedAt) {
		fields = append(fields, scraperun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScrapeRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScrapeRunMutation) ClearField(name string) error {
	switch name {
	case scraperun.FieldRunID:
		m.ClearRunID()
		return nil
	case scraperun.FieldNeighborhoods:
		m.ClearNeighborhoods()
		return nil
	case scraperun.FieldMessage:
		m.ClearMessage()
		return nil
	case scraperun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ScrapeRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScrapeRunMutation) ResetField(name string) error {
	switch name {
	case scraperun.FieldRunID:
		m.ResetRunID()
		return nil
	case scraperun.FieldSearchQuery:
		m.ResetSearchQuery()
		return nil
	case scraperun.FieldCity:
		m.ResetCity()
		return nil
	case scraperun.FieldNeighborhoods:
		m.ResetNeighborhoods()
		return nil
	case scraperun.FieldMaxResults:
		m.ResetMaxResults()
		return nil
	case scraperun.FieldSkipDuplicates:
		m.ResetSkipDuplicates()
		return nil
	case scraperun.FieldStatus:
		m.ResetStatus()
		return nil
	case scraperun.FieldScraped:
		m.ResetScraped()
		return nil
	case scraperun.FieldInserted:
		m.ResetInserted()
		return nil
	case scraperun.FieldUpdated:
		m.ResetUpdated()
		return nil
	case scraperun.FieldDuplicates:
		m.ResetDuplicates()
		return nil
	case scraperun.FieldFailed:
		m.ResetFailed()
		return nil
	case scraperun.FieldMessage:
		m.ResetMessage()
		return nil
	case scraperun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scraperun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ScrapeRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScrapeRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScrapeRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScrapeRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScrapeRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScrapeRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScrapeRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScrapeRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScrapeRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScrapeRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScrapeRun edge %s", name)
}
