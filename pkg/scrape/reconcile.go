package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/ipropixel/leadfinder/pkg/apify"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
)

// SampleLimit caps how many preview records a run reports back.
const SampleLimit = 5

// Existing is the minimal projection of a stored business needed for
// reconciliation.
type Existing struct {
	ID    int
	Phone string
}

// LogFunc receives human-readable reconciliation progress.
type LogFunc func(message string, kind relay.Kind)

// Reconciler classifies scraped places against the existing dataset.
// Matching is by lowercased name only.
type Reconciler struct {
	existing       map[string]Existing
	skipDuplicates bool
	log            LogFunc
}

// NewReconciler builds a reconciler over a snapshot of existing
// businesses keyed by lowercased name. When skipDuplicates is false every
// named place becomes an insert regardless of what exists.
func NewReconciler(existing map[string]Existing, skipDuplicates bool, log LogFunc) *Reconciler {
	if log == nil {
		log = func(string, relay.Kind) {}
	}
	return &Reconciler{existing: existing, skipDuplicates: skipDuplicates, log: log}
}

// Outcome is the result of reconciling one batch of actor results.
type Outcome struct {
	ToInsert []Record
	ToUpdate []PhoneUpdate
	Stats    models.ScrapeStats
	Sample   []models.ScrapeSample
}

// Reconcile processes actor results in order and decides, for each, to
// insert, update or skip. Within a batch the first occurrence of a name
// wins; later occurrences count as duplicates. Advertisement entries are
// ignored entirely and nameless entries count as failed.
func (r *Reconciler) Reconcile(items []apify.PlaceResult, searchQuery string, now time.Time) *Outcome {
	out := &Outcome{Sample: []models.ScrapeSample{}}
	processed := make(map[string]struct{})

	for i := range items {
		item := &items[i]
		if item.IsAdvertisement {
			continue
		}

		rec := MapPlace(item, searchQuery, now)
		if rec.Name == "" {
			out.Stats.Failed++
			continue
		}

		out.Stats.Scraped++
		nameLower := strings.ToLower(rec.Name)

		if _, seen := processed[nameLower]; seen {
			out.Stats.Duplicates++
			r.log(fmt.Sprintf("    [=] %s (duplicate in batch)", rec.Name), relay.KindItemSkip)
			continue
		}

		if r.skipDuplicates {
			if existing, ok := r.existing[nameLower]; ok {
				switch {
				case existing.Phone != "":
					out.Stats.Duplicates++
					r.log(fmt.Sprintf("    [=] %s (exists)", rec.Name), relay.KindItemSkip)
				case rec.Phone != "":
					out.ToUpdate = append(out.ToUpdate, PhoneUpdate{
						ID:               existing.ID,
						Name:             rec.Name,
						Phone:            rec.Phone,
						PhoneUnformatted: rec.PhoneUnformatted,
					})
					r.log(fmt.Sprintf("    [~] %s (will update phone: %s)", rec.Name, rec.Phone), relay.KindItemUpdate)
					out.addSample(rec)
				default:
					out.Stats.Duplicates++
					r.log(fmt.Sprintf("    [=] %s (exists, no new phone)", rec.Name), relay.KindItemSkip)
				}
			} else {
				out.insert(rec, r.log)
			}
		} else {
			out.insert(rec, r.log)
		}

		processed[nameLower] = struct{}{}
	}

	return out
}

func (o *Outcome) insert(rec Record, log LogFunc) {
	o.ToInsert = append(o.ToInsert, rec)
	log(fmt.Sprintf("    [+] %s | %s | Phone: %s", rec.Name, orDash(rec.CategoryName), orDash(rec.Phone)), relay.KindItemNew)
	o.addSample(rec)
}

func (o *Outcome) addSample(rec Record) {
	if len(o.Sample) >= SampleLimit {
		return
	}
	s := models.ScrapeSample{
		Name:         rec.Name,
		Phone:        rec.Phone,
		CategoryName: rec.CategoryName,
	}
	if rec.Rating != nil {
		s.Rating = *rec.Rating
	}
	o.Sample = append(o.Sample, s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
