// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ipropixel/leadfinder/ent/business"
	"github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/ent/schema"
	"github.com/ipropixel/leadfinder/ent/scraperun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	businessFields := schema.Business{}.Fields()
	_ = businessFields
	// businessDescName is the schema descriptor for name field.
	businessDescName := businessFields[0].Descriptor()
	// business.NameValidator is a validator for the "name" field. It is called by the builders before save.
	business.NameValidator = businessDescName.Validators[0].(func(string) error)
	// businessDescReviewCount is the schema descriptor for review_count field.
	businessDescReviewCount := businessFields[3].Descriptor()
	// business.DefaultReviewCount holds the default value on creation for the review_count field.
	business.DefaultReviewCount = businessDescReviewCount.Default.(int)
	// businessDescLatitude is the schema descriptor for latitude field.
	businessDescLatitude := businessFields[6].Descriptor()
	// business.DefaultLatitude holds the default value on creation for the latitude field.
	business.DefaultLatitude = businessDescLatitude.Default.(float64)
	// businessDescLongitude is the schema descriptor for longitude field.
	businessDescLongitude := businessFields[7].Descriptor()
	// business.DefaultLongitude holds the default value on creation for the longitude field.
	business.DefaultLongitude = businessDescLongitude.Default.(float64)
	// businessDescPermanentlyClosed is the schema descriptor for permanently_closed field.
	businessDescPermanentlyClosed := businessFields[19].Descriptor()
	// business.DefaultPermanentlyClosed holds the default value on creation for the permanently_closed field.
	business.DefaultPermanentlyClosed = businessDescPermanentlyClosed.Default.(bool)
	// businessDescTemporarilyClosed is the schema descriptor for temporarily_closed field.
	businessDescTemporarilyClosed := businessFields[20].Descriptor()
	// business.DefaultTemporarilyClosed holds the default value on creation for the temporarily_closed field.
	business.DefaultTemporarilyClosed = businessDescTemporarilyClosed.Default.(bool)
	// businessDescImagesCount is the schema descriptor for images_count field.
	businessDescImagesCount := businessFields[23].Descriptor()
	// business.DefaultImagesCount holds the default value on creation for the images_count field.
	business.DefaultImagesCount = businessDescImagesCount.Default.(int)
	// businessDescEmailSent is the schema descriptor for email_sent field.
	businessDescEmailSent := businessFields[38].Descriptor()
	// business.DefaultEmailSent holds the default value on creation for the email_sent field.
	business.DefaultEmailSent = businessDescEmailSent.Default.(bool)
	// businessDescSmsSent is the schema descriptor for sms_sent field.
	businessDescSmsSent := businessFields[40].Descriptor()
	// business.DefaultSmsSent holds the default value on creation for the sms_sent field.
	business.DefaultSmsSent = businessDescSmsSent.Default.(bool)
	// businessDescScrapedAt is the schema descriptor for scraped_at field.
	businessDescScrapedAt := businessFields[43].Descriptor()
	// business.DefaultScrapedAt holds the default value on creation for the scraped_at field.
	business.DefaultScrapedAt = businessDescScrapedAt.Default.(func() time.Time)
	// businessDescCreatedAt is the schema descriptor for created_at field.
	businessDescCreatedAt := businessFields[44].Descriptor()
	// business.DefaultCreatedAt holds the default value on creation for the created_at field.
	business.DefaultCreatedAt = businessDescCreatedAt.Default.(func() time.Time)
	exportFields := schema.Export{}.Fields()
	_ = exportFields
	// exportDescBusinessCount is the schema descriptor for business_count field.
	exportDescBusinessCount := exportFields[3].Descriptor()
	// export.DefaultBusinessCount holds the default value on creation for the business_count field.
	export.DefaultBusinessCount = exportDescBusinessCount.Default.(int)
	// exportDescCreatedAt is the schema descriptor for created_at field.
	exportDescCreatedAt := exportFields[7].Descriptor()
	// export.DefaultCreatedAt holds the default value on creation for the created_at field.
	export.DefaultCreatedAt = exportDescCreatedAt.Default.(func() time.Time)
	scraperunFields := schema.ScrapeRun{}.Fields()
	_ = scraperunFields
	// scraperunDescSearchQuery is the schema descriptor for search_query field.
	scraperunDescSearchQuery := scraperunFields[1].Descriptor()
	// scraperun.SearchQueryValidator is a validator for the "search_query" field. It is called by the builders before save.
	scraperun.SearchQueryValidator = scraperunDescSearchQuery.Validators[0].(func(string) error)
	// scraperunDescCity is the schema descriptor for city field.
	scraperunDescCity := scraperunFields[2].Descriptor()
	// scraperun.CityValidator is a validator for the "city" field. It is called by the builders before save.
	scraperun.CityValidator = scraperunDescCity.Validators[0].(func(string) error)
	// scraperunDescMaxResults is the schema descriptor for max_results field.
	scraperunDescMaxResults := scraperunFields[4].Descriptor()
	// scraperun.DefaultMaxResults holds the default value on creation for the max_results field.
	scraperun.DefaultMaxResults = scraperunDescMaxResults.Default.(int)
	// scraperunDescSkipDuplicates is the schema descriptor for skip_duplicates field.
	scraperunDescSkipDuplicates := scraperunFields[5].Descriptor()
	// scraperun.DefaultSkipDuplicates holds the default value on creation for the skip_duplicates field.
	scraperun.DefaultSkipDuplicates = scraperunDescSkipDuplicates.Default.(bool)
	// scraperunDescScraped is the schema descriptor for scraped field.
	scraperunDescScraped := scraperunFields[7].Descriptor()
	// scraperun.DefaultScraped holds the default value on creation for the scraped field.
	scraperun.DefaultScraped = scraperunDescScraped.Default.(int)
	// scraperunDescInserted is the schema descriptor for inserted field.
	scraperunDescInserted := scraperunFields[8].Descriptor()
	// scraperun.DefaultInserted holds the default value on creation for the inserted field.
	scraperun.DefaultInserted = scraperunDescInserted.Default.(int)
	// scraperunDescUpdated is the schema descriptor for updated field.
	scraperunDescUpdated := scraperunFields[9].Descriptor()
	// scraperun.DefaultUpdated holds the default value on creation for the updated field.
	scraperun.DefaultUpdated = scraperunDescUpdated.Default.(int)
	// scraperunDescDuplicates is the schema descriptor for duplicates field.
	scraperunDescDuplicates := scraperunFields[10].Descriptor()
	// scraperun.DefaultDuplicates holds the default value on creation for the duplicates field.
	scraperun.DefaultDuplicates = scraperunDescDuplicates.Default.(int)
	// scraperunDescFailed is the schema descriptor for failed field.
	scraperunDescFailed := scraperunFields[11].Descriptor()
	// scraperun.DefaultFailed holds the default value on creation for the failed field.
	scraperun.DefaultFailed = scraperunDescFailed.Default.(int)
	// scraperunDescStartedAt is the schema descriptor for started_at field.
	scraperunDescStartedAt := scraperunFields[13].Descriptor()
	// scraperun.DefaultStartedAt holds the default value on creation for the started_at field.
	scraperun.DefaultStartedAt = scraperunDescStartedAt.Default.(func() time.Time)
}
