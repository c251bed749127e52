package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/api/errors"
	"github.com/ipropixel/leadfinder/pkg/export"
	"github.com/ipropixel/leadfinder/pkg/metrics"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	exportService *export.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewExportHandler creates a new export handler. metrics may be nil.
func NewExportHandler(exportService *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		metrics:       m,
		validator:     validator.New(),
	}
}

// Create godoc
// @Summary Create an export
// @Description Starts generating a CSV or Excel file from the filtered business list. The file is built in the background; poll the export until its status is completed.
// @Tags Exports
// @Accept json
// @Produce json
// @Param request body models.ExportRequest true "Format and filters"
// @Success 201 {object} models.ExportResponse "Export record, initially pending"
// @Failure 400 {object} models.ErrorResponse "Invalid format or filters"
// @Router /exports [post]
func (h *ExportHandler) Create(c echo.Context) error {
	var req models.ExportRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	exportResp, err := h.exportService.CreateExport(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordExportCreated()
	}

	return c.JSON(http.StatusCreated, exportResp)
}

// Get godoc
// @Summary Get export status
// @Tags Exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} models.ExportResponse "Export record"
// @Failure 404 {object} models.ErrorResponse "Export not found"
// @Router /exports/{id} [get]
func (h *ExportHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	exportResp, err := h.exportService.GetExport(c.Request().Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "export")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, exportResp)
}

// List godoc
// @Summary List exports
// @Tags Exports
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ExportListResponse "Paginated exports"
// @Router /exports [get]
func (h *ExportHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	resp, err := h.exportService.ListExports(c.Request().Context(), page, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary Download an export file
// @Description Streams the generated file. Fails if the export is still processing or has expired.
// @Tags Exports
// @Produce application/octet-stream
// @Param id path int true "Export ID"
// @Success 200 {file} file "The export file"
// @Failure 404 {object} models.ErrorResponse "Export not found"
// @Failure 410 {object} models.ErrorResponse "Export expired or not ready"
// @Router /exports/{id}/download [get]
func (h *ExportHandler) Download(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	path, err := h.exportService.GetFilePath(c.Request().Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "export")
		}
		return c.JSON(http.StatusGone, models.ErrorResponse{
			Error:   "export_unavailable",
			Message: err.Error(),
		})
	}

	return c.Attachment(path, filepath.Base(path))
}

// Delete godoc
// @Summary Delete an export
// @Description Removes the export record and its file
// @Tags Exports
// @Produce json
// @Param id path int true "Export ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} models.ErrorResponse "Export not found"
// @Router /exports/{id} [delete]
func (h *ExportHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.exportService.DeleteExport(c.Request().Context(), id); err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "export")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "export deleted",
	})
}
