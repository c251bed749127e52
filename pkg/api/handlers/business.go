package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/ipropixel/leadfinder/ent"
	"github.com/ipropixel/leadfinder/pkg/api/errors"
	"github.com/ipropixel/leadfinder/pkg/businesses"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/labstack/echo/v4"
)

// BusinessHandler handles business browse and dashboard endpoints
type BusinessHandler struct {
	businessService *businesses.Service
	validator       *validator.Validate
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessService *businesses.Service) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		validator:       validator.New(),
	}
}

// ListBusinesses godoc
// @Summary List businesses
// @Description Returns businesses filtered by search query or name, sorted and paginated
// @Tags Businesses
// @Produce json
// @Param search_query query string false "Exact ingestion query to filter by"
// @Param name query string false "Case-insensitive name substring"
// @Param sort_by query string false "Sort column: rating, review_count, name, created_at, scraped_at"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} models.BusinessListResponse "Paginated businesses"
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Router /businesses [get]
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	var req models.BusinessListRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.businessService.List(c.Request().Context(), &req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetBusiness godoc
// @Summary Get business by ID
// @Tags Businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} models.BusinessResponse "Business details"
// @Failure 404 {object} models.ErrorResponse "Business not found"
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	business, err := h.businessService.GetByID(c.Request().Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "business")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, business)
}

// DeleteBusiness godoc
// @Summary Delete a business
// @Tags Businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} models.ErrorResponse "Business not found"
// @Router /businesses/{id} [delete]
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.businessService.Delete(c.Request().Context(), id); err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "business")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "business deleted",
	})
}

// UpdateOutreachFlags godoc
// @Summary Update outreach flags
// @Description Marks or unmarks a business as emailed / texted. Only the fields present in the body change.
// @Tags Businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param request body models.OutreachFlagsUpdate true "Flags to change"
// @Success 200 {object} models.BusinessResponse "Updated business"
// @Failure 404 {object} models.ErrorResponse "Business not found"
// @Router /businesses/{id}/outreach [patch]
func (h *BusinessHandler) UpdateOutreachFlags(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var upd models.OutreachFlagsUpdate
	if err := c.Bind(&upd); err != nil {
		return errors.ValidationError(c, err)
	}

	business, err := h.businessService.UpdateOutreachFlags(c.Request().Context(), id, &upd)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "business")
		}
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, business)
}

// ListEmailTargets godoc
// @Summary List email outreach targets
// @Description Businesses with at least one email address, filtered by outreach state
// @Tags Businesses
// @Produce json
// @Param filter query string false "sent, not_sent (default) or all"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 1000)"
// @Success 200 {object} models.TargetListResponse[models.EmailTarget] "Targets"
// @Router /businesses/email-targets [get]
func (h *BusinessHandler) ListEmailTargets(c echo.Context) error {
	var req models.TargetListRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.businessService.EmailTargets(c.Request().Context(), &req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListPhoneTargets godoc
// @Summary List SMS outreach targets
// @Description Businesses with a phone number, filtered by outreach state. no_website restricts to businesses without a site.
// @Tags Businesses
// @Produce json
// @Param filter query string false "sent, not_sent (default) or all"
// @Param no_website query bool false "Only businesses without a website"
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 1000)"
// @Success 200 {object} models.TargetListResponse[models.PhoneTarget] "Targets"
// @Router /businesses/phone-targets [get]
func (h *BusinessHandler) ListPhoneTargets(c echo.Context) error {
	var req models.TargetListRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.businessService.PhoneTargets(c.Request().Context(), &req)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Aggregate counts over the whole dataset. Cached for a few minutes.
// @Tags Businesses
// @Produce json
// @Success 200 {object} models.StatsResponse "Dashboard stats"
// @Router /businesses/stats [get]
func (h *BusinessHandler) GetStats(c echo.Context) error {
	stats, err := h.businessService.Stats(c.Request().Context())
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
