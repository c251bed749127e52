// Code generated by ent, DO NOT EDIT.

package scraperun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldRunID, v))
}

// SearchQuery applies equality check predicate on the "search_query" field. It's identical to SearchQueryEQ.
func SearchQuery(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldSearchQuery, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldCity, v))
}

// MaxResults applies equality check predicate on the "max_results" field. It's identical to MaxResultsEQ.
func MaxResults(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldMaxResults, v))
}

// SkipDuplicates applies equality check predicate on the "skip_duplicates" field. It's identical to SkipDuplicatesEQ.
func SkipDuplicates(v bool) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldSkipDuplicates, v))
}

// Scraped applies equality check predicate on the "scraped" field. It's identical to ScrapedEQ.
func Scraped(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldScraped, v))
}

// Inserted applies equality check predicate on the "inserted" field. It's identical to InsertedEQ.
func Inserted(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldInserted, v))
}

// Updated applies equality check predicate on the "updated" field. It's identical to UpdatedEQ.
func Updated(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldUpdated, v))
}

// Duplicates applies equality check predicate on the "duplicates" field. It's identical to DuplicatesEQ.
func Duplicates(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldDuplicates, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldFailed, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldFinishedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContainsFold(FieldRunID, v))
}

// SearchQueryEQ applies the EQ predicate on the "search_query" field.
func SearchQueryEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldSearchQuery, v))
}

// SearchQueryNEQ applies the NEQ predicate on the "search_query" field.
func SearchQueryNEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldSearchQuery, v))
}

// SearchQueryIn applies the In predicate on the "search_query" field.
func SearchQueryIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldSearchQuery, vs...))
}

// SearchQueryNotIn applies the NotIn predicate on the "search_query" field.
func SearchQueryNotIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldSearchQuery, vs...))
}

// SearchQueryGT applies the GT predicate on the "search_query" field.
func SearchQueryGT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldSearchQuery, v))
}

// SearchQueryGTE applies the GTE predicate on the "search_query" field.
func SearchQueryGTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldSearchQuery, v))
}

// SearchQueryLT applies the LT predicate on the "search_query" field.
func SearchQueryLT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldSearchQuery, v))
}

// SearchQueryLTE applies the LTE predicate on the "search_query" field.
func SearchQueryLTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldSearchQuery, v))
}

// SearchQueryContains applies the Contains predicate on the "search_query" field.
func SearchQueryContains(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContains(FieldSearchQuery, v))
}

// SearchQueryHasPrefix applies the HasPrefix predicate on the "search_query" field.
func SearchQueryHasPrefix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasPrefix(FieldSearchQuery, v))
}

// SearchQueryHasSuffix applies the HasSuffix predicate on the "search_query" field.
func SearchQueryHasSuffix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasSuffix(FieldSearchQuery, v))
}

// SearchQueryEqualFold applies the EqualFold predicate on the "search_query" field.
func SearchQueryEqualFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEqualFold(FieldSearchQuery, v))
}

// SearchQueryContainsFold applies the ContainsFold predicate on the "search_query" field.
func SearchQueryContainsFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContainsFold(FieldSearchQuery, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContainsFold(FieldCity, v))
}

// NeighborhoodsIsNil applies the IsNil predicate on the "neighborhoods" field.
func NeighborhoodsIsNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIsNull(FieldNeighborhoods))
}

// NeighborhoodsNotNil applies the NotNil predicate on the "neighborhoods" field.
func NeighborhoodsNotNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotNull(FieldNeighborhoods))
}

// MaxResultsEQ applies the EQ predicate on the "max_results" field.
func MaxResultsEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldMaxResults, v))
}

// MaxResultsNEQ applies the NEQ predicate on the "max_results" field.
func MaxResultsNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldMaxResults, v))
}

// MaxResultsIn applies the In predicate on the "max_results" field.
func MaxResultsIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldMaxResults, vs...))
}

// MaxResultsNotIn applies the NotIn predicate on the "max_results" field.
func MaxResultsNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldMaxResults, vs...))
}

// MaxResultsGT applies the GT predicate on the "max_results" field.
func MaxResultsGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldMaxResults, v))
}

// MaxResultsGTE applies the GTE predicate on the "max_results" field.
func MaxResultsGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldMaxResults, v))
}

// MaxResultsLT applies the LT predicate on the "max_results" field.
func MaxResultsLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldMaxResults, v))
}

// MaxResultsLTE applies the LTE predicate on the "max_results" field.
func MaxResultsLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldMaxResults, v))
}

// SkipDuplicatesEQ applies the EQ predicate on the "skip_duplicates" field.
func SkipDuplicatesEQ(v bool) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldSkipDuplicates, v))
}

// SkipDuplicatesNEQ applies the NEQ predicate on the "skip_duplicates" field.
func SkipDuplicatesNEQ(v bool) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldSkipDuplicates, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ScrapedEQ applies the EQ predicate on the "scraped" field.
func ScrapedEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldScraped, v))
}

// ScrapedNEQ applies the NEQ predicate on the "scraped" field.
func ScrapedNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldScraped, v))
}

// ScrapedIn applies the In predicate on the "scraped" field.
func ScrapedIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldScraped, vs...))
}

// ScrapedNotIn applies the NotIn predicate on the "scraped" field.
func ScrapedNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldScraped, vs...))
}

// ScrapedGT applies the GT predicate on the "scraped" field.
func ScrapedGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldScraped, v))
}

// ScrapedGTE applies the GTE predicate on the "scraped" field.
func ScrapedGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldScraped, v))
}

// ScrapedLT applies the LT predicate on the "scraped" field.
func ScrapedLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldScraped, v))
}

// ScrapedLTE applies the LTE predicate on the "scraped" field.
func ScrapedLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldScraped, v))
}

// InsertedEQ applies the EQ predicate on the "inserted" field.
func InsertedEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldInserted, v))
}

// InsertedNEQ applies the NEQ predicate on the "inserted" field.
func InsertedNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldInserted, v))
}

// InsertedIn applies the In predicate on the "inserted" field.
func InsertedIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldInserted, vs...))
}

// InsertedNotIn applies the NotIn predicate on the "inserted" field.
func InsertedNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldInserted, vs...))
}

// InsertedGT applies the GT predicate on the "inserted" field.
func InsertedGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldInserted, v))
}

// InsertedGTE applies the GTE predicate on the "inserted" field.
func InsertedGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldInserted, v))
}

// InsertedLT applies the LT predicate on the "inserted" field.
func InsertedLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldInserted, v))
}

// InsertedLTE applies the LTE predicate on the "inserted" field.
func InsertedLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldInserted, v))
}

// UpdatedEQ applies the EQ predicate on the "updated" field.
func UpdatedEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldUpdated, v))
}

// UpdatedNEQ applies the NEQ predicate on the "updated" field.
func UpdatedNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldUpdated, v))
}

// UpdatedIn applies the In predicate on the "updated" field.
func UpdatedIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldUpdated, vs...))
}

// UpdatedNotIn applies the NotIn predicate on the "updated" field.
func UpdatedNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldUpdated, vs...))
}

// UpdatedGT applies the GT predicate on the "updated" field.
func UpdatedGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldUpdated, v))
}

// UpdatedGTE applies the GTE predicate on the "updated" field.
func UpdatedGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldUpdated, v))
}

// UpdatedLT applies the LT predicate on the "updated" field.
func UpdatedLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldUpdated, v))
}

// UpdatedLTE applies the LTE predicate on the "updated" field.
func UpdatedLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldUpdated, v))
}

// DuplicatesEQ applies the EQ predicate on the "duplicates" field.
func DuplicatesEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldDuplicates, v))
}

// DuplicatesNEQ applies the NEQ predicate on the "duplicates" field.
func DuplicatesNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldDuplicates, v))
}

// DuplicatesIn applies the In predicate on the "duplicates" field.
func DuplicatesIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldDuplicates, vs...))
}

// DuplicatesNotIn applies the NotIn predicate on the "duplicates" field.
func DuplicatesNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldDuplicates, vs...))
}

// DuplicatesGT applies the GT predicate on the "duplicates" field.
func DuplicatesGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldDuplicates, v))
}

// DuplicatesGTE applies the GTE predicate on the "duplicates" field.
func DuplicatesGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldDuplicates, v))
}

// DuplicatesLT applies the LT predicate on the "duplicates" field.
func DuplicatesLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldDuplicates, v))
}

// DuplicatesLTE applies the LTE predicate on the "duplicates" field.
func DuplicatesLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldDuplicates, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldFailed, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldContainsFold(FieldMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScrapeRun) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScrapeRun) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScrapeRun) predicate.ScrapeRun {
	return predicate.ScrapeRun(sql.NotPredicates(p))
}
