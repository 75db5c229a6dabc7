package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// SectionHandler handles section-related requests
type SectionHandler struct {
	managers *Managers
	logger   *logger.Logger
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(managers *Managers, logger *logger.Logger) *SectionHandler {
	return &SectionHandler{
		managers: managers,
		logger:   logger,
	}
}

// CreateSection godoc
// @Summary Add a section
// @Tags sections
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param request body ports.SectionInput true "Section data"
// @Success 201 {object} entities.Section
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections [post]
func (h *SectionHandler) CreateSection(c echo.Context) error {
	var req ports.SectionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	section := h.managers.Reports(c).AddSection(c.Param("reportId"), req)
	if section == nil {
		return notFound(entities.ErrReportNotFound)
	}

	return c.JSON(http.StatusCreated, section)
}

// GetSection godoc
// @Summary Get a section page
// @Tags sections
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} ports.TemplateData
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId} [get]
func (h *SectionHandler) GetSection(c echo.Context) error {
	reports := h.managers.Reports(c)
	reportID, sectionID := c.Param("reportId"), c.Param("sectionId")

	if reports.GetSection(reportID, sectionID) == nil {
		return notFound(entities.ErrSectionNotFound)
	}

	view := reports.BuildTemplateData(reportID, ports.TemplateOptions{IncludeSections: true, SectionID: sectionID})
	return c.JSON(http.StatusOK, view)
}

// UpdateSection godoc
// @Summary Rename a section
// @Tags sections
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param request body ports.SectionUpdate true "Fields to update"
// @Success 200 {object} entities.Section
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId} [patch]
func (h *SectionHandler) UpdateSection(c echo.Context) error {
	var req ports.SectionUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reports := h.managers.Reports(c)
	reportID, sectionID := c.Param("reportId"), c.Param("sectionId")
	if !reports.UpdateSection(reportID, sectionID, req) {
		return notFound(entities.ErrSectionNotFound)
	}

	return c.JSON(http.StatusOK, reports.GetSection(reportID, sectionID))
}

// DeleteSection godoc
// @Summary Delete a section
// @Description Delete a section; its tasks move to the report's unassigned tasks
// @Tags sections
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId} [delete]
func (h *SectionHandler) DeleteSection(c echo.Context) error {
	if !h.managers.Reports(c).DeleteSection(c.Param("reportId"), c.Param("sectionId")) {
		return notFound(entities.ErrSectionNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveSectionUp godoc
// @Summary Move a section up
// @Tags sections
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {array} entities.Section
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/move-up [post]
func (h *SectionHandler) MoveSectionUp(c echo.Context) error {
	return h.move(c, ports.ReportsService.MoveSectionUp)
}

// MoveSectionDown godoc
// @Summary Move a section down
// @Tags sections
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {array} entities.Section
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/move-down [post]
func (h *SectionHandler) MoveSectionDown(c echo.Context) error {
	return h.move(c, ports.ReportsService.MoveSectionDown)
}

func (h *SectionHandler) move(c echo.Context, move func(ports.ReportsService, string, string) bool) error {
	reports := h.managers.Reports(c)
	reportID, sectionID := c.Param("reportId"), c.Param("sectionId")

	if reports.GetSection(reportID, sectionID) == nil {
		return notFound(entities.ErrSectionNotFound)
	}
	if !move(reports, reportID, sectionID) {
		return moveRejected()
	}

	return c.JSON(http.StatusOK, reports.GetReport(reportID).Sections)
}
