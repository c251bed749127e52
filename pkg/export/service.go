package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/logger"
	"github.com/ipropixel/leadfinder/pkg/models"
)

// Service generates downloadable business exports. Files are written to
// local storage and expire 24 hours after creation.
type Service struct {
	db          *ent.Client
	businesses  *businesses.Service
	storagePath string
	log         logger.Logger
}

// NewService creates an export service.
func NewService(db *ent.Client, businessService *businesses.Service, storagePath string, log logger.Logger) *Service {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		log.Warn("failed to create export storage directory", "path", storagePath, "error", err)
	}
	return &Service{
		db:          db,
		businesses:  businessService,
		storagePath: storagePath,
		log:         log,
	}
}

// CreateExport records an export and generates its file in the
// background. The returned record is in pending state; poll GetExport
// for completion.
func (s *Service) CreateExport(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error) {
	if req.Format != "csv" && req.Format != "excel" {
		return nil, fmt.Errorf("invalid format: must be csv or excel")
	}

	if req.MaxBusinesses == 0 {
		req.MaxBusinesses = 1000
	}
	if req.MaxBusinesses > 10000 {
		req.MaxBusinesses = 10000
	}

	filtersMap := make(map[string]interface{})
	filtersBytes, err := json.Marshal(req.Filters)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filters: %w", err)
	}
	if err := json.Unmarshal(filtersBytes, &filtersMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filters: %w", err)
	}

	exp, err := s.db.Export.Create().
		SetFormat(export.Format(req.Format)).
		SetFiltersApplied(filtersMap).
		SetBusinessCount(0).
		SetStatus(export.StatusPending).
		SetExpiresAt(time.Now().Add(24 * time.Hour)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create export: %w", err)
	}

	go s.processExport(exp.ID, req)

	return s.toResponse(exp), nil
}

func (s *Service) processExport(exportID int, req models.ExportRequest) {
	ctx := context.Background()

	s.db.Export.UpdateOneID(exportID).
		SetStatus(export.StatusProcessing).
		SaveX(ctx)

	req.Filters.Page = 1
	req.Filters.Limit = req.MaxBusinesses

	results, err := s.businesses.List(ctx, &req.Filters)
	if err != nil {
		s.fail(ctx, exportID, err)
		return
	}

	timestamp := time.Now().Format("20060102-150405")
	ext := req.Format
	if ext == "excel" {
		ext = "xlsx"
	}
	filename := fmt.Sprintf("export-%d-%s.%s", exportID, timestamp, ext)
	path := filepath.Join(s.storagePath, filename)

	var genErr error
	if req.Format == "csv" {
		genErr = s.generateCSV(path, results.Data)
	} else {
		genErr = s.generateExcel(path, results.Data)
	}
	if genErr != nil {
		s.fail(ctx, exportID, genErr)
		return
	}

	s.db.Export.UpdateOneID(exportID).
		SetStatus(export.StatusCompleted).
		SetBusinessCount(len(results.Data)).
		SetFilePath(path).
		SaveX(ctx)
}

func (s *Service) fail(ctx context.Context, exportID int, err error) {
	s.log.Error("export failed", "id", exportID, "error", err)
	s.db.Export.UpdateOneID(exportID).
		SetStatus(export.StatusFailed).
		SetErrorMessage(err.Error()).
		SaveX(ctx)
}

var exportHeaders = []string{
	"ID", "Name", "Category", "Phone", "Emails", "Address", "Neighborhood",
	"City", "Rating", "Reviews", "Website", "Maps URL", "Latitude",
	"Longitude", "Email Sent", "SMS Sent", "Search Query", "Scraped At",
}

func exportRow(b models.BusinessResponse) []string {
	return []string{
		strconv.Itoa(b.ID),
		b.Name,
		b.CategoryName,
		b.Phone,
		strings.Join(b.Emails, "; "),
		b.Address,
		b.Neighborhood,
		b.City,
		fmt.Sprintf("%.1f", b.Rating),
		strconv.Itoa(b.ReviewCount),
		b.Website,
		b.MapsURL,
		fmt.Sprintf("%.6f", b.Latitude),
		fmt.Sprintf("%.6f", b.Longitude),
		strconv.FormatBool(b.EmailSent),
		strconv.FormatBool(b.SMSSent),
		b.SearchQuery,
		b.ScrapedAt,
	}
}

func (s *Service) generateCSV(path string, rows []models.BusinessResponse) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range rows {
		if err := writer.Write(exportRow(b)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func (s *Service) generateExcel(path string, rows []models.BusinessResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Businesses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, b := range rows {
		for colIdx, value := range exportRow(b) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// GetExport retrieves an export by ID.
func (s *Service) GetExport(ctx context.Context, exportID int) (*models.ExportResponse, error) {
	exp, err := s.db.Export.Get(ctx, exportID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(exp), nil
}

// ListExports lists exports, newest first.
func (s *Service) ListExports(ctx context.Context, page, limit int) (*models.ExportListResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.Export.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count exports: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	exports, err := query.
		Order(ent.Desc(export.FieldCreatedAt)).
		Limit(limit).
		Offset((page - 1) * limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	data := make([]models.ExportResponse, len(exports))
	for i, exp := range exports {
		data[i] = *s.toResponse(exp)
	}

	return &models.ExportListResponse{
		Data: data,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// DeleteExport removes an export record and its file.
func (s *Service) DeleteExport(ctx context.Context, exportID int) error {
	exp, err := s.db.Export.Get(ctx, exportID)
	if err != nil {
		return err
	}
	if exp.FilePath != "" {
		if err := os.Remove(exp.FilePath); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove export file", "path", exp.FilePath, "error", err)
		}
	}
	return s.db.Export.DeleteOneID(exportID).Exec(ctx)
}

// GetFilePath returns the on-disk path of a finished, unexpired export.
func (s *Service) GetFilePath(ctx context.Context, exportID int) (string, error) {
	exp, err := s.db.Export.Get(ctx, exportID)
	if err != nil {
		return "", err
	}

	if exp.Status != export.StatusCompleted {
		return "", fmt.Errorf("export not ready: status is %s", exp.Status)
	}
	if exp.ExpiresAt != nil && time.Now().After(*exp.ExpiresAt) {
		return "", fmt.Errorf("export has expired")
	}
	if exp.FilePath == "" {
		return "", fmt.Errorf("file path not set")
	}
	return exp.FilePath, nil
}

// CleanupExpired deletes expired exports and their files. Returns how
// many were removed.
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := s.db.Export.Query().
		Where(export.ExpiresAtLT(time.Now())).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired exports: %w", err)
	}

	removed := 0
	for _, exp := range expired {
		if err := s.DeleteExport(ctx, exp.ID); err != nil {
			s.log.Warn("failed to delete expired export", "id", exp.ID, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *Service) toResponse(exp *ent.Export) *models.ExportResponse {
	resp := &models.ExportResponse{
		ID:            exp.ID,
		Status:        string(exp.Status),
		Format:        string(exp.Format),
		BusinessCount: exp.BusinessCount,
		CreatedAt:     exp.CreatedAt.Format(time.RFC3339),
	}
	if exp.Status == export.StatusCompleted {
		resp.FileURL = fmt.Sprintf("/api/v1/exports/%d/download", exp.ID)
	}
	if exp.ExpiresAt != nil {
		resp.ExpiresAt = exp.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
