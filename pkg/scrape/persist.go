package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/relay"
)

// ChunkSize is how many rows a single bulk insert carries.
const ChunkSize = 500

// Persister writes reconciliation outcomes to the database in bulk,
// degrading to row-by-row on chunk failure so one bad row never discards
// its whole chunk.
type Persister struct {
	client *ent.Client
	log    LogFunc
}

// NewPersister creates a persister over the given ent client.
func NewPersister(client *ent.Client, log LogFunc) *Persister {
	if log == nil {
		log = func(string, relay.Kind) {}
	}
	return &Persister{client: client, log: log}
}

// InsertAll inserts records in chunks, updating stats with per-row
// inserted/failed counts.
func (p *Persister) InsertAll(ctx context.Context, records []Record, stats *models.ScrapeStats) {
	if len(records) == 0 {
		return
	}
	p.log(fmt.Sprintf("[DB] Inserting %d new businesses...", len(records)), relay.KindInfo)

	for i := 0; i < len(records); i += ChunkSize {
		end := i + ChunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[i:end]
		chunkNum := i/ChunkSize + 1

		builders := make([]*ent.BusinessCreate, len(chunk))
		for j := range chunk {
			builders[j] = p.builder(&chunk[j])
		}

		if _, err := p.client.Business.CreateBulk(builders...).Save(ctx); err != nil {
			p.log(fmt.Sprintf("[DB] Chunk %d failed: %s. Retrying row-by-row...", chunkNum, err), relay.KindError)
			for j := range chunk {
				if _, rowErr := p.builder(&chunk[j]).Save(ctx); rowErr != nil {
					stats.Failed++
					p.log(fmt.Sprintf("    [!] Failed: %s -- %s", chunk[j].Name, rowErr), relay.KindError)
				} else {
					stats.Inserted++
				}
			}
			p.log(fmt.Sprintf("[DB] Chunk %d row-by-row done", chunkNum), relay.KindInfo)
		} else {
			stats.Inserted += len(chunk)
			p.log(fmt.Sprintf("[DB] Inserted chunk %d: %d records", chunkNum, len(chunk)), relay.KindSuccess)
		}
	}
}

// UpdatePhones applies discovered phone numbers to existing rows one at a
// time, stamping scraped_at so the record reflects the run that enriched
// it.
func (p *Persister) UpdatePhones(ctx context.Context, updates []PhoneUpdate, now time.Time, stats *models.ScrapeStats) {
	if len(updates) == 0 {
		return
	}
	p.log(fmt.Sprintf("[DB] Updating %d businesses with phone numbers...", len(updates)), relay.KindInfo)

	for _, u := range updates {
		err := p.client.Business.UpdateOneID(u.ID).
			SetPhone(u.Phone).
			SetPhoneUnformatted(u.PhoneUnformatted).
			SetScrapedAt(now).
			Exec(ctx)
		if err != nil {
			stats.Failed++
			p.log(fmt.Sprintf("[DB] Update error for %d: %s", u.ID, err), relay.KindError)
		} else {
			stats.Updated++
		}
	}
	p.log(fmt.Sprintf("[DB] Updated %d records with phone numbers", stats.Updated), relay.KindSuccess)
}

func (p *Persister) builder(rec *Record) *ent.BusinessCreate {
	b := p.client.Business.Create().
		SetName(rec.Name).
		SetPhone(rec.Phone).
		SetPhoneUnformatted(rec.PhoneUnformatted).
		SetReviewCount(rec.ReviewCount).
		SetNillableRating(rec.Rating).
		SetAddress(rec.Address).
		SetLatitude(rec.Latitude).
		SetLongitude(rec.Longitude).
		SetWebsite(rec.Website).
		SetMapsURL(rec.MapsURL).
		SetPrice(rec.Price).
		SetCategoryName(rec.CategoryName).
		SetCategories(rec.Categories).
		SetNeighborhood(rec.Neighborhood).
		SetStreet(rec.Street).
		SetCity(rec.City).
		SetPostalCode(rec.PostalCode).
		SetState(rec.State).
		SetCountryCode(rec.CountryCode).
		SetPermanentlyClosed(rec.PermanentlyClosed).
		SetTemporarilyClosed(rec.TemporarilyClosed).
		SetPlaceID(rec.PlaceID).
		SetCid(rec.CID).
		SetImagesCount(rec.ImagesCount).
		SetImageURL(rec.ImageURL).
		SetHotelStars(rec.HotelStars).
		SetEmails(rec.Emails).
		SetPhones(rec.Phones).
		SetInstagram(rec.Instagram).
		SetFacebook(rec.Facebook).
		SetTwitter(rec.Twitter).
		SetYoutube(rec.YouTube).
		SetTiktok(rec.TikTok).
		SetLinkedin(rec.LinkedIn).
		SetWhatsapp(rec.WhatsApp).
		SetDomain(rec.Domain).
		SetSearchQuery(rec.SearchQuery).
		SetScrapedAt(rec.ScrapedAt)

	if rec.OpeningHours != nil {
		b.SetOpeningHours(rec.OpeningHours)
	}
	if rec.AdditionalInfo != nil {
		b.SetAdditionalInfo(rec.AdditionalInfo)
	}
	return b
}
