package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/pkg/apify"
)

func place(name, phone string) apify.PlaceResult {
	return apify.PlaceResult{Title: name, Phone: phone}
}

func TestReconcileFirstOccurrenceWins(t *testing.T) {
	items := []apify.PlaceResult{
		place("Alpha", "111"),
		place("Alpha", "222"),
		place("Beta", ""),
	}

	out := NewReconciler(map[string]Existing{}, true, nil).Reconcile(items, "cafes", time.Now())

	assert.Equal(t, 3, out.Stats.Scraped)
	assert.Equal(t, 1, out.Stats.Duplicates)
	assert.Equal(t, 0, out.Stats.Failed)
	require.Len(t, out.ToInsert, 2)
	assert.Equal(t, "Alpha", out.ToInsert[0].Name)
	assert.Equal(t, "111", out.ToInsert[0].Phone)
	assert.Equal(t, "Beta", out.ToInsert[1].Name)
}

func TestReconcileNameMatchIsCaseInsensitive(t *testing.T) {
	existing := map[string]Existing{
		"alpha cafe": {ID: 1, Phone: "111"},
	}

	out := NewReconciler(existing, true, nil).Reconcile(
		[]apify.PlaceResult{place("ALPHA Cafe", "999")}, "cafes", time.Now())

	assert.Equal(t, 1, out.Stats.Scraped)
	assert.Equal(t, 1, out.Stats.Duplicates)
	assert.Empty(t, out.ToInsert)
	assert.Empty(t, out.ToUpdate)
}

func TestReconcileUpdatesMissingPhone(t *testing.T) {
	existing := map[string]Existing{
		"alpha": {ID: 7, Phone: ""},
	}

	out := NewReconciler(existing, true, nil).Reconcile(
		[]apify.PlaceResult{place("Alpha", "+355691234567")}, "cafes", time.Now())

	assert.Equal(t, 0, out.Stats.Duplicates)
	require.Len(t, out.ToUpdate, 1)
	assert.Equal(t, 7, out.ToUpdate[0].ID)
	assert.Equal(t, "+355691234567", out.ToUpdate[0].Phone)
	// Updates also land in the preview sample.
	require.Len(t, out.Sample, 1)
	assert.Equal(t, "Alpha", out.Sample[0].Name)
}

func TestReconcileExistingWithoutNewPhoneIsDuplicate(t *testing.T) {
	existing := map[string]Existing{
		"alpha": {ID: 7, Phone: ""},
	}

	out := NewReconciler(existing, true, nil).Reconcile(
		[]apify.PlaceResult{place("Alpha", "")}, "cafes", time.Now())

	assert.Equal(t, 1, out.Stats.Duplicates)
	assert.Empty(t, out.ToInsert)
	assert.Empty(t, out.ToUpdate)
}

func TestReconcileSkipDuplicatesDisabled(t *testing.T) {
	existing := map[string]Existing{
		"alpha": {ID: 1, Phone: "111"},
	}

	out := NewReconciler(existing, false, nil).Reconcile(
		[]apify.PlaceResult{place("Alpha", "222")}, "cafes", time.Now())

	assert.Equal(t, 0, out.Stats.Duplicates)
	require.Len(t, out.ToInsert, 1)
}

func TestReconcileSkipsAdvertisements(t *testing.T) {
	items := []apify.PlaceResult{
		{Title: "Sponsored", IsAdvertisement: true},
		place("Real", ""),
	}

	out := NewReconciler(map[string]Existing{}, true, nil).Reconcile(items, "cafes", time.Now())

	// Ads are invisible: not scraped, not failed.
	assert.Equal(t, 1, out.Stats.Scraped)
	assert.Equal(t, 0, out.Stats.Failed)
	require.Len(t, out.ToInsert, 1)
	assert.Equal(t, "Real", out.ToInsert[0].Name)
}

func TestReconcileNamelessCountsAsFailed(t *testing.T) {
	out := NewReconciler(map[string]Existing{}, true, nil).Reconcile(
		[]apify.PlaceResult{place("", "111")}, "cafes", time.Now())

	assert.Equal(t, 0, out.Stats.Scraped)
	assert.Equal(t, 1, out.Stats.Failed)
	assert.Empty(t, out.ToInsert)
}

func TestReconcileSampleCapped(t *testing.T) {
	var items []apify.PlaceResult
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		items = append(items, place(name, ""))
	}

	out := NewReconciler(map[string]Existing{}, true, nil).Reconcile(items, "cafes", time.Now())

	assert.Len(t, out.ToInsert, 7)
	assert.Len(t, out.Sample, SampleLimit)
}

func TestMapPlaceFallbackCoordinates(t *testing.T) {
	rec := MapPlace(&apify.PlaceResult{Title: "No Location"}, "cafes", time.Now())
	assert.Equal(t, FallbackLatitude, rec.Latitude)
	assert.Equal(t, FallbackLongitude, rec.Longitude)

	rec = MapPlace(&apify.PlaceResult{
		Title:    "Located",
		Location: &apify.Location{Lat: 41.5, Lng: 19.9},
	}, "cafes", time.Now())
	assert.Equal(t, 41.5, rec.Latitude)
	assert.Equal(t, 19.9, rec.Longitude)
}

func TestMapPlaceSocialsTakeFirstEntry(t *testing.T) {
	rec := MapPlace(&apify.PlaceResult{
		Title:      "Social",
		Instagrams: []string{"ig1", "ig2"},
		Facebooks:  []string{"fb1"},
	}, "cafes", time.Now())
	assert.Equal(t, "ig1", rec.Instagram)
	assert.Equal(t, "fb1", rec.Facebook)
	assert.Empty(t, rec.Twitter)
}
