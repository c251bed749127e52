package export

import (
	"context"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipropixel/leadfinder/ent/enttest"
	"github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/cache"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:export?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = client.Close() })

	mr := miniredis.RunT(t)
	cc, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })

	log := logger.Default()
	bizService := businesses.NewService(client, cc, "AL", log)
	s := NewService(client, bizService, t.TempDir(), log)

	_, err = client.Business.Create().
		SetName("Alpha Cafe").
		SetPhone("+3551").
		SetCategoryName("Cafe").
		SetRating(4.5).
		Save(context.Background())
	require.NoError(t, err)

	return s
}

func waitForExport(t *testing.T, s *Service, id int) *models.ExportResponse {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		resp, err := s.GetExport(context.Background(), id)
		require.NoError(t, err)
		switch resp.Status {
		case string(export.StatusCompleted), string(export.StatusFailed):
			return resp
		}
		select {
		case <-deadline:
			t.Fatalf("export %d did not finish, last status %s", id, resp.Status)
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestCreateExportCSV(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	resp, err := s.CreateExport(ctx, models.ExportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, string(export.StatusPending), resp.Status)

	done := waitForExport(t, s, resp.ID)
	assert.Equal(t, string(export.StatusCompleted), done.Status)
	assert.Equal(t, 1, done.BusinessCount)
	assert.NotEmpty(t, done.FileURL)
	assert.NotEmpty(t, done.ExpiresAt)

	path, err := s.GetFilePath(ctx, resp.ID)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Alpha Cafe", rows[1][1])
}

func TestCreateExportExcel(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	resp, err := s.CreateExport(ctx, models.ExportRequest{Format: "excel"})
	require.NoError(t, err)

	done := waitForExport(t, s, resp.ID)
	assert.Equal(t, string(export.StatusCompleted), done.Status)

	path, err := s.GetFilePath(ctx, resp.ID)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, path, ".xlsx")
}

func TestCreateExportInvalidFormat(t *testing.T) {
	s := setupService(t)

	_, err := s.CreateExport(context.Background(), models.ExportRequest{Format: "pdf"})
	assert.Error(t, err)
}

func TestGetFilePathBeforeCompletionFails(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	exp, err := s.db.Export.Create().
		SetFormat(export.FormatCsv).
		SetStatus(export.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	_, err = s.GetFilePath(ctx, exp.ID)
	assert.ErrorContains(t, err, "not ready")
}

func TestGetFilePathExpired(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	exp, err := s.db.Export.Create().
		SetFormat(export.FormatCsv).
		SetStatus(export.StatusCompleted).
		SetFilePath("/tmp/gone.csv").
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = s.GetFilePath(ctx, exp.ID)
	assert.ErrorContains(t, err, "expired")
}

func TestDeleteExportRemovesFile(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	resp, err := s.CreateExport(ctx, models.ExportRequest{Format: "csv"})
	require.NoError(t, err)
	waitForExport(t, s, resp.ID)

	path, err := s.GetFilePath(ctx, resp.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteExport(ctx, resp.ID))
	assert.NoFileExists(t, path)

	_, err = s.GetExport(ctx, resp.ID)
	assert.Error(t, err)
}

func TestCleanupExpired(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.db.Export.Create().
		SetFormat(export.FormatCsv).
		SetStatus(export.StatusCompleted).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = s.db.Export.Create().
		SetFormat(export.FormatCsv).
		SetStatus(export.StatusCompleted).
		SetExpiresAt(time.Now().Add(time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	removed, err := s.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := s.db.Export.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestListExports(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.db.Export.Create().
			SetFormat(export.FormatCsv).
			SetStatus(export.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)
	}

	list, err := s.ListExports(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, list.Data, 2)
	assert.Equal(t, 3, list.Pagination.Total)
	assert.True(t, list.Pagination.HasNext)
}
