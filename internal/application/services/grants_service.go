package services

import (
	"regexp"
	"slices"
	"strings"

	"github.com/grantreports/core/internal/domain/entities"
	loggerpkg "github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

var ggisPattern = regexp.MustCompile(`^G[1-2]-[A-Z]{3}-\d{4}-\d{2}-\d{5}$`)

// ValidateGgisNumber reports whether s has the GGIS reference format,
// e.g. G1-ABC-2024-01-00001. It checks the format only.
func ValidateGgisNumber(s string) bool {
	return s != "" && ggisPattern.MatchString(s)
}

// GrantsDataManager handles the flat grant list held in one session
type GrantsDataManager struct {
	data   *entities.SessionData
	opts   managerOptions
	logger *loggerpkg.Logger
}

var _ ports.GrantsService = (*GrantsDataManager)(nil)

// NewGrantsDataManager wraps the session data, initialising the grants list if absent
func NewGrantsDataManager(data *entities.SessionData, logger *loggerpkg.Logger, opts ...ManagerOption) *GrantsDataManager {
	if data == nil {
		data = entities.NewSessionData()
	}
	if data.Grants == nil {
		data.Grants = []*entities.Grant{}
	}
	if logger == nil {
		logger = loggerpkg.NewNop()
	}

	return &GrantsDataManager{
		data:   data,
		opts:   buildManagerOptions(opts),
		logger: logger,
	}
}

// GetGrants returns every grant in creation order
func (m *GrantsDataManager) GetGrants() []*entities.Grant {
	return m.data.Grants
}

// GetGrant retrieves a grant by its exact name
func (m *GrantsDataManager) GetGrant(grantName string) *entities.Grant {
	if grantName == "" {
		return nil
	}
	if i := m.indexOf(grantName); i != -1 {
		return m.data.Grants[i]
	}
	return nil
}

// GetGrantByID retrieves a grant by ID
func (m *GrantsDataManager) GetGrantByID(id string) *entities.Grant {
	if id == "" {
		return nil
	}
	i := slices.IndexFunc(m.data.Grants, func(g *entities.Grant) bool { return g.ID == id })
	if i == -1 {
		return nil
	}
	return m.data.Grants[i]
}

// AddGrant appends an Active grant. It returns nil when another grant
// already has the same name, ignoring case.
func (m *GrantsDataManager) AddGrant(input ports.GrantInput) *entities.Grant {
	name := strings.TrimSpace(input.GrantName)
	if name == "" {
		name = entities.DefaultGrantName
	}

	if m.GrantNameExists(name) {
		m.logger.Debugw("Add grant rejected", "grant_name", name, "error", entities.ErrGrantNameTaken)
		return nil
	}

	grant := &entities.Grant{
		ID:                  m.opts.newID(),
		GrantName:           name,
		GGISNumber:          strings.TrimSpace(input.GGISNumber),
		Description:         input.Description,
		PrimaryContactName:  strings.TrimSpace(input.PrimaryContactName),
		PrimaryContactEmail: strings.TrimSpace(input.PrimaryContactEmail),
		CreatedDate:         m.opts.clock(),
		Status:              entities.GrantStatusActive,
	}

	m.data.Grants = append(m.data.Grants, grant)
	m.logger.Debugw("Grant added", "grant_id", grant.ID, "grant_name", grant.GrantName)

	return grant
}

// UpdateGrant applies the given fields to a grant. Renaming onto a name
// held by another grant fails.
func (m *GrantsDataManager) UpdateGrant(grantName string, update ports.GrantUpdate) bool {
	grant := m.GetGrant(grantName)
	if grant == nil {
		return false
	}

	if update.GrantName != nil {
		name := strings.TrimSpace(*update.GrantName)
		if name == "" {
			return false
		}
		if !strings.EqualFold(name, grant.GrantName) && m.GrantNameExists(name) {
			m.logger.Debugw("Grant rename rejected", "grant_name", grantName, "new_name", name, "error", entities.ErrGrantNameTaken)
			return false
		}
		grant.GrantName = name
	}
	if update.GGISNumber != nil {
		grant.GGISNumber = strings.TrimSpace(*update.GGISNumber)
	}
	if update.Description != nil {
		grant.Description = *update.Description
	}
	if update.PrimaryContactName != nil {
		grant.PrimaryContactName = strings.TrimSpace(*update.PrimaryContactName)
	}
	if update.PrimaryContactEmail != nil {
		grant.PrimaryContactEmail = strings.TrimSpace(*update.PrimaryContactEmail)
	}
	if update.Status != nil {
		grant.Status = *update.Status
	}

	return true
}

// DeleteGrant removes a grant by its exact name
func (m *GrantsDataManager) DeleteGrant(grantName string) bool {
	if grantName == "" {
		return false
	}
	i := m.indexOf(grantName)
	if i == -1 {
		return false
	}

	m.data.Grants = slices.Delete(m.data.Grants, i, i+1)
	m.logger.Debugw("Grant deleted", "grant_name", grantName)
	return true
}

// GrantNameExists checks for a grant with the same name, ignoring case
func (m *GrantsDataManager) GrantNameExists(grantName string) bool {
	if grantName == "" {
		return false
	}
	return slices.ContainsFunc(m.data.Grants, func(g *entities.Grant) bool {
		return strings.EqualFold(g.GrantName, grantName)
	})
}

// ValidateGgisNumber checks the GGIS reference format
func (m *GrantsDataManager) ValidateGgisNumber(ggisNumber string) bool {
	return ValidateGgisNumber(ggisNumber)
}

// GetGrantStats counts grants by status
func (m *GrantsDataManager) GetGrantStats() ports.GrantStats {
	stats := ports.GrantStats{Total: len(m.data.Grants)}
	for _, g := range m.data.Grants {
		switch g.Status {
		case entities.GrantStatusActive:
			stats.Active++
		case entities.GrantStatusInactive:
			stats.Inactive++
		}
	}
	return stats
}

func (m *GrantsDataManager) indexOf(grantName string) int {
	return slices.IndexFunc(m.data.Grants, func(g *entities.Grant) bool {
		return g.GrantName == grantName
	})
}
