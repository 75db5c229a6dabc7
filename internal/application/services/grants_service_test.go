package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/application/services"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/ports"
)

func newGrants(t *testing.T) (*services.GrantsDataManager, *entities.SessionData) {
	t.Helper()

	data := &entities.SessionData{}
	m := services.NewGrantsDataManager(data, nil,
		services.WithIDGenerator(sequentialIDs("grant")),
		services.WithClock(func() time.Time { return created }),
	)
	return m, data
}

func TestValidateGgisNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"G1-ABC-2024-01-00001", true},
		{"G2-XYZ-1999-12-99999", true},
		{"bad-format", false},
		{"", false},
		{"G3-ABC-2024-01-00001", false},
		{"G1-abc-2024-01-00001", false},
		{"G1-ABC-2024-01-0001", false},
		{" G1-ABC-2024-01-00001", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.ValidateGgisNumber(tt.input), tt.input)
	}

	m, _ := newGrants(t)
	assert.True(t, m.ValidateGgisNumber("G1-ABC-2024-01-00001"))
	assert.False(t, m.ValidateGgisNumber("bad-format"))
}

func TestAddGrantDefaults(t *testing.T) {
	t.Parallel()

	m, data := newGrants(t)

	grant := m.AddGrant(ports.GrantInput{})
	require.NotNil(t, grant)
	assert.Equal(t, "grant-1", grant.ID)
	assert.Equal(t, entities.DefaultGrantName, grant.GrantName)
	assert.Equal(t, entities.GrantStatusActive, grant.Status)
	assert.Equal(t, created, grant.CreatedDate)
	assert.Empty(t, grant.GGISNumber)
	assert.Same(t, grant, data.Grants[0])
}

func TestAddGrantRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	m, _ := newGrants(t)
	require.NotNil(t, m.AddGrant(ports.GrantInput{GrantName: "Community Fund"}))

	assert.Nil(t, m.AddGrant(ports.GrantInput{GrantName: "community fund"}))
	assert.Len(t, m.GetGrants(), 1)
	assert.True(t, m.GrantNameExists("COMMUNITY FUND"))
	assert.False(t, m.GrantNameExists(""))
}

func TestGrantLookups(t *testing.T) {
	t.Parallel()

	m, _ := newGrants(t)
	grant := m.AddGrant(ports.GrantInput{GrantName: "Community Fund", GGISNumber: "G1-ABC-2024-01-00001"})

	assert.Same(t, grant, m.GetGrant("Community Fund"))
	assert.Nil(t, m.GetGrant("community fund"))
	assert.Nil(t, m.GetGrant(""))
	assert.Same(t, grant, m.GetGrantByID(grant.ID))
	assert.Nil(t, m.GetGrantByID("missing"))
}

func TestUpdateGrant(t *testing.T) {
	t.Parallel()

	m, _ := newGrants(t)
	m.AddGrant(ports.GrantInput{GrantName: "Community Fund"})
	m.AddGrant(ports.GrantInput{GrantName: "Housing Fund"})

	inactive := entities.GrantStatusInactive
	ok := m.UpdateGrant("Community Fund", ports.GrantUpdate{
		Description: ptr("Local projects"),
		Status:      &inactive,
	})
	require.True(t, ok)
	grant := m.GetGrant("Community Fund")
	assert.Equal(t, "Local projects", grant.Description)
	assert.Equal(t, entities.GrantStatusInactive, grant.Status)

	assert.False(t, m.UpdateGrant("Community Fund", ports.GrantUpdate{GrantName: ptr("housing fund")}))
	assert.Equal(t, "Community Fund", grant.GrantName)

	assert.True(t, m.UpdateGrant("Community Fund", ports.GrantUpdate{GrantName: ptr("community fund")}))
	assert.Equal(t, "community fund", grant.GrantName)

	assert.False(t, m.UpdateGrant("missing", ports.GrantUpdate{}))
}

func TestDeleteGrantAndStats(t *testing.T) {
	t.Parallel()

	m, _ := newGrants(t)
	m.AddGrant(ports.GrantInput{GrantName: "One"})
	m.AddGrant(ports.GrantInput{GrantName: "Two"})
	m.AddGrant(ports.GrantInput{GrantName: "Three"})

	inactive := entities.GrantStatusInactive
	m.UpdateGrant("Two", ports.GrantUpdate{Status: &inactive})

	assert.Equal(t, ports.GrantStats{Total: 3, Active: 2, Inactive: 1}, m.GetGrantStats())

	assert.True(t, m.DeleteGrant("One"))
	assert.False(t, m.DeleteGrant("One"))
	assert.Equal(t, ports.GrantStats{Total: 2, Active: 1, Inactive: 1}, m.GetGrantStats())
}
