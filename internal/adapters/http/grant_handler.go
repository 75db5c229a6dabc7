package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// GrantHandler handles grant-related requests
type GrantHandler struct {
	managers *Managers
	logger   *logger.Logger
}

// NewGrantHandler creates a new grant handler
func NewGrantHandler(managers *Managers, logger *logger.Logger) *GrantHandler {
	return &GrantHandler{
		managers: managers,
		logger:   logger,
	}
}

// GrantListResponse is the grants page: every grant plus the status counts
type GrantListResponse struct {
	Grants []*entities.Grant `json:"grants"`
	Stats  ports.GrantStats  `json:"stats"`
}

// ListGrants godoc
// @Summary List grants
// @Tags grants
// @Produce json
// @Success 200 {object} GrantListResponse
// @Router /grants [get]
func (h *GrantHandler) ListGrants(c echo.Context) error {
	grants := h.managers.Grants(c)
	return c.JSON(http.StatusOK, GrantListResponse{
		Grants: grants.GetGrants(),
		Stats:  grants.GetGrantStats(),
	})
}

// CreateGrant godoc
// @Summary Create a grant
// @Description Create an Active grant. Names are unique ignoring case.
// @Tags grants
// @Accept json
// @Produce json
// @Param request body ports.GrantInput true "Grant data"
// @Success 201 {object} entities.Grant
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /grants [post]
func (h *GrantHandler) CreateGrant(c echo.Context) error {
	var req ports.GrantInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	grants := h.managers.Grants(c)
	if grants.GrantNameExists(strings.TrimSpace(req.GrantName)) {
		return echo.NewHTTPError(http.StatusConflict, entities.ErrGrantNameTaken.Error())
	}

	grant := grants.AddGrant(req)
	if grant == nil {
		return echo.NewHTTPError(http.StatusConflict, entities.ErrGrantNameTaken.Error())
	}

	h.logger.Infow("Grant created", "grant_id", grant.ID, "grant_name", grant.GrantName)
	return c.JSON(http.StatusCreated, grant)
}

// GetGrantStats godoc
// @Summary Count grants by status
// @Tags grants
// @Produce json
// @Success 200 {object} ports.GrantStats
// @Router /grants/stats [get]
func (h *GrantHandler) GetGrantStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.managers.Grants(c).GetGrantStats())
}

// GetGrant godoc
// @Summary Get a grant by name
// @Tags grants
// @Produce json
// @Param grantName path string true "Grant name"
// @Success 200 {object} entities.Grant
// @Failure 404 {object} ErrorResponse
// @Router /grants/{grantName} [get]
func (h *GrantHandler) GetGrant(c echo.Context) error {
	grant := h.managers.Grants(c).GetGrant(grantName(c))
	if grant == nil {
		return notFound(entities.ErrGrantNotFound)
	}

	return c.JSON(http.StatusOK, grant)
}

// UpdateGrant godoc
// @Summary Update a grant
// @Tags grants
// @Accept json
// @Produce json
// @Param grantName path string true "Grant name"
// @Param request body ports.GrantUpdate true "Fields to update"
// @Success 200 {object} entities.Grant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /grants/{grantName} [patch]
func (h *GrantHandler) UpdateGrant(c echo.Context) error {
	var req ports.GrantUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.GrantName != nil && strings.TrimSpace(*req.GrantName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Grant name cannot be blank")
	}

	grants := h.managers.Grants(c)
	grant := grants.GetGrant(grantName(c))
	if grant == nil {
		return notFound(entities.ErrGrantNotFound)
	}

	if !grants.UpdateGrant(grant.GrantName, req) {
		return echo.NewHTTPError(http.StatusConflict, entities.ErrGrantNameTaken.Error())
	}

	return c.JSON(http.StatusOK, grant)
}

// DeleteGrant godoc
// @Summary Delete a grant
// @Tags grants
// @Param grantName path string true "Grant name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /grants/{grantName} [delete]
func (h *GrantHandler) DeleteGrant(c echo.Context) error {
	name := grantName(c)
	if !h.managers.Grants(c).DeleteGrant(name) {
		return notFound(entities.ErrGrantNotFound)
	}

	h.logger.Infow("Grant deleted", "grant_name", name)
	return c.NoContent(http.StatusNoContent)
}

// grantName returns the decoded :grantName path parameter
func grantName(c echo.Context) string {
	raw := c.Param("grantName")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
