package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const sampleDataset = `[
	{"title": "Denta Plus", "categoryName": "Dentist", "phone": "+355 69 111 1111", "totalScore": 4.8},
	{"title": "Smile Clinic", "categoryName": "Dentist"},
	{"title": "Denta Plus", "categoryName": "Dentist"},
	{"title": "", "categoryName": "Dentist"}
]`

func TestImportDataset(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:importer?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := NewService(client, nil)
	result, err := svc.ImportDataset(context.Background(), strings.NewReader(sampleDataset), Config{
		SearchQuery:    "dentist tirana",
		SkipDuplicates: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalItems)
	assert.Equal(t, 3, result.Stats.Scraped)
	assert.Equal(t, 2, result.Stats.Inserted)
	assert.Equal(t, 1, result.Stats.Duplicates)
	assert.Equal(t, 1, result.Stats.Failed)

	count, err := client.Business.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportDataset_ValidateOnly(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:importer_dry?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := NewService(client, nil)
	result, err := svc.ImportDataset(context.Background(), strings.NewReader(sampleDataset), Config{
		SearchQuery:    "dentist tirana",
		SkipDuplicates: true,
		ValidateOnly:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, len(result.Sample))

	count, err := client.Business.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestImportDataset_BadJSON(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:importer_bad?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := NewService(client, nil)
	_, err := svc.ImportDataset(context.Background(), strings.NewReader("{not json"), Config{})
	require.Error(t, err)
}
