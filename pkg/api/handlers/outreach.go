package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/ipropixel/leadfinder/pkg/api/errors"
	"github.com/ipropixel/leadfinder/pkg/metrics"
	"github.com/ipropixel/leadfinder/pkg/models"
	"github.com/ipropixel/leadfinder/pkg/outreach"
	"github.com/labstack/echo/v4"
)

// OutreachHandler handles bulk email and SMS endpoints
type OutreachHandler struct {
	outreachService *outreach.Service
	metrics         *metrics.Metrics
	validator       *validator.Validate
}

// NewOutreachHandler creates a new outreach handler. metrics may be nil.
func NewOutreachHandler(outreachService *outreach.Service, m *metrics.Metrics) *OutreachHandler {
	return &OutreachHandler{
		outreachService: outreachService,
		metrics:         m,
		validator:       validator.New(),
	}
}

// SendEmails godoc
// @Summary Send outreach emails
// @Description Sends the offer email to each selected business that has an address and was not emailed before. Blocks until the batch finishes; messages are paced to respect provider limits.
// @Tags Outreach
// @Accept json
// @Produce json
// @Param request body models.OutreachRequest true "Business IDs to contact"
// @Success 200 {object} models.OutreachResult "Sent and failed counts"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /outreach/email [post]
func (h *OutreachHandler) SendEmails(c echo.Context) error {
	var req models.OutreachRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.outreachService.SendEmails(c.Request().Context(), req.BusinessIDs)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordOutreach("email", result.Sent, result.Failed)
	}

	return c.JSON(http.StatusOK, result)
}

// SendSMS godoc
// @Summary Send outreach SMS
// @Description Sends the offer text to each selected business that has a phone number and was not texted before
// @Tags Outreach
// @Accept json
// @Produce json
// @Param request body models.OutreachRequest true "Business IDs to contact"
// @Success 200 {object} models.OutreachResult "Sent and failed counts"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /outreach/sms [post]
func (h *OutreachHandler) SendSMS(c echo.Context) error {
	var req models.OutreachRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	result, err := h.outreachService.SendSMS(c.Request().Context(), req.BusinessIDs)
	if err != nil {
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordOutreach("sms", result.Sent, result.Failed)
	}

	return c.JSON(http.StatusOK, result)
}

// GetSMSBalance godoc
// @Summary SMS account balance
// @Description Proxies the gateway balance endpoint
// @Tags Outreach
// @Produce json
// @Success 200 {object} map[string]interface{} "Gateway balance payload"
// @Failure 502 {object} models.ErrorResponse "Gateway unreachable"
// @Router /outreach/sms/balance [get]
func (h *OutreachHandler) GetSMSBalance(c echo.Context) error {
	payload, err := h.outreachService.SMSBalance(c.Request().Context())
	if err != nil {
		return errors.UpstreamError(c, err)
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// ListSMSMessages godoc
// @Summary SMS delivery history
// @Description Proxies the gateway message log, most recent first
// @Tags Outreach
// @Produce json
// @Param limit query int false "Messages per page (default 100)"
// @Param page query int false "Page number (default 1)"
// @Param status query string false "Delivery status filter"
// @Success 200 {object} map[string]interface{} "Gateway message log payload"
// @Failure 502 {object} models.ErrorResponse "Gateway unreachable"
// @Router /outreach/sms/messages [get]
func (h *OutreachHandler) ListSMSMessages(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	status := c.QueryParam("status")

	payload, err := h.outreachService.SMSMessages(c.Request().Context(), limit, page, status)
	if err != nil {
		return errors.UpstreamError(c, err)
	}

	return c.JSONBlob(http.StatusOK, payload)
}
