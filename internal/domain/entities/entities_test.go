package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grantreports/core/internal/domain/entities"
)

func TestTaskLocation(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	loc := entities.Unassigned()
	assert.True(loc.IsUnassigned())
	_, ok := loc.SectionID()
	assert.False(ok)
	assert.Equal("unassigned", loc.String())

	loc = entities.InSection("s1")
	assert.False(loc.IsUnassigned())
	id, ok := loc.SectionID()
	assert.True(ok)
	assert.Equal("s1", id)

	assert.True(entities.InSection("").IsUnassigned())
	assert.Equal(entities.Unassigned(), entities.TaskLocation{})
}

func TestParseMoveDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		choice      string
		newName     string
		unassigned  bool
		wantNew     string
		wantSection string
	}{
		{name: "unassigned", choice: "unassigned", unassigned: true},
		{name: "new", choice: "new", newName: "Finance", wantNew: "Finance"},
		{name: "new-section alias", choice: "new-section", newName: "Budget", wantNew: "Budget"},
		{name: "existing section", choice: " 123 ", wantSection: "123"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dest := entities.ParseMoveDestination(tt.choice, tt.newName)

			assert.Equal(t, tt.unassigned, dest.IsUnassigned())

			name, isNew := dest.NewSectionName()
			assert.Equal(t, tt.wantNew != "", isNew)
			assert.Equal(t, tt.wantNew, name)

			sectionID, isSection := dest.SectionID()
			assert.Equal(t, tt.wantSection != "", isSection)
			assert.Equal(t, tt.wantSection, sectionID)
		})
	}
}

func TestSplitSelectionOptions(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal([]string{"Red", "Green", "Blue"}, entities.SplitSelectionOptions("Red\n  Green \n\n\nBlue\n"))
	assert.Equal([]string{"Yes"}, entities.SplitSelectionOptions("Yes\r\n"))
	assert.Empty(entities.SplitSelectionOptions("\n \n"))
	assert.NotNil(entities.SplitSelectionOptions(""))
}

func TestQuestionType(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Len(entities.QuestionTypes(), 10)
	for _, qt := range entities.QuestionTypes() {
		assert.True(qt.IsValid(), qt)
		assert.NotEmpty(qt.Human(), qt)
	}
	assert.False(entities.QuestionType("slider").IsValid())
	assert.Equal("Single option", entities.QuestionTypeSelection.Human())
	assert.Equal("File upload", entities.QuestionTypeFile.Human())
}

func TestDisplayDate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal("5 March 2024", entities.DisplayDate(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal("", entities.DisplayDate(time.Time{}))
}

func TestNewSessionData(t *testing.T) {
	t.Parallel()

	data := entities.NewSessionData()
	assert.NotNil(t, data.Reports)
	assert.NotNil(t, data.Grants)
	assert.Empty(t, data.Reports)
}
