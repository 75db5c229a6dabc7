package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/infrastructure/session"
	"github.com/grantreports/core/internal/ports"
)

// ReportHandler handles report-related requests
type ReportHandler struct {
	managers *Managers
	logger   *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(managers *Managers, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		managers: managers,
		logger:   logger,
	}
}

// ListReports godoc
// @Summary List reports
// @Description List every report in the current session
// @Tags reports
// @Produce json
// @Success 200 {array} entities.Report
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.managers.Reports(c).GetReports())
}

// CreateReport godoc
// @Summary Create a report
// @Description Create a report; a blank name becomes "Untitled Report"
// @Tags reports
// @Accept json
// @Produce json
// @Param request body ports.ReportInput true "Report data"
// @Success 201 {object} entities.Report
// @Failure 400 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req ports.ReportInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	report := h.managers.Reports(c).AddReport(req)
	h.logger.Infow("Report created", "report_id", report.ID, "session_id", session.ID(c))

	return c.JSON(http.StatusCreated, report)
}

// GetReport godoc
// @Summary Get a report page
// @Description Get the report overview with its sections and unassigned tasks
// @Tags reports
// @Produce json
// @Param reportId path string true "Report ID"
// @Success 200 {object} ports.TemplateData
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId} [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	view := h.managers.Reports(c).BuildTemplateData(c.Param("reportId"), ports.TemplateOptions{IncludeSections: true})
	if view == nil {
		return notFound(entities.ErrReportNotFound)
	}

	return c.JSON(http.StatusOK, view)
}

// UpdateReport godoc
// @Summary Update a report
// @Tags reports
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param request body ports.ReportUpdate true "Fields to update"
// @Success 200 {object} entities.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId} [patch]
func (h *ReportHandler) UpdateReport(c echo.Context) error {
	var req ports.ReportUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reports := h.managers.Reports(c)
	reportID := c.Param("reportId")
	if !reports.UpdateReport(reportID, req) {
		return notFound(entities.ErrReportNotFound)
	}

	return c.JSON(http.StatusOK, reports.GetReport(reportID))
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags reports
// @Param reportId path string true "Report ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId} [delete]
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	reportID := c.Param("reportId")
	if !h.managers.Reports(c).DeleteReport(reportID) {
		return notFound(entities.ErrReportNotFound)
	}

	h.logger.Infow("Report deleted", "report_id", reportID, "session_id", session.ID(c))
	return c.NoContent(http.StatusNoContent)
}
