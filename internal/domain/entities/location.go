package entities

import "strings"

// TaskLocation says which sequence owns a task: a section's Tasks or the
// report's UnassignedTasks. The zero value is Unassigned.
type TaskLocation struct {
	sectionID string
}

// Unassigned selects the report's unassigned tasks
func Unassigned() TaskLocation {
	return TaskLocation{}
}

// InSection selects the tasks of the given section. An empty ID is Unassigned.
func InSection(sectionID string) TaskLocation {
	return TaskLocation{sectionID: sectionID}
}

// SectionID returns the owning section, if any
func (l TaskLocation) SectionID() (string, bool) {
	return l.sectionID, l.sectionID != ""
}

// IsUnassigned reports whether the location is the report's unassigned list
func (l TaskLocation) IsUnassigned() bool {
	return l.sectionID == ""
}

func (l TaskLocation) String() string {
	if l.IsUnassigned() {
		return "unassigned"
	}
	return "section:" + l.sectionID
}

type destinationKind int

const (
	destinationUnassigned destinationKind = iota + 1
	destinationNewSection
	destinationSection
)

// MoveDestination is where MoveTaskToSection appends a task.
type MoveDestination struct {
	kind      destinationKind
	sectionID string
	name      string
}

// Form choices accepted by ParseMoveDestination
const (
	ChoiceUnassigned    = "unassigned"
	ChoiceNewSection    = "new"
	ChoiceNewSectionAlt = "new-section"
)

// ToUnassigned moves the task to the report's unassigned list
func ToUnassigned() MoveDestination {
	return MoveDestination{kind: destinationUnassigned}
}

// ToNewSection creates a section with the given name and moves the task into it
func ToNewSection(name string) MoveDestination {
	return MoveDestination{kind: destinationNewSection, name: name}
}

// ToSection moves the task to an existing section
func ToSection(sectionID string) MoveDestination {
	return MoveDestination{kind: destinationSection, sectionID: sectionID}
}

// ParseMoveDestination maps the move form's radio choice onto a destination.
// Anything that is not "unassigned" or "new"/"new-section" is taken as a section ID.
func ParseMoveDestination(choice, newSectionName string) MoveDestination {
	switch strings.TrimSpace(choice) {
	case ChoiceUnassigned:
		return ToUnassigned()
	case ChoiceNewSection, ChoiceNewSectionAlt:
		return ToNewSection(newSectionName)
	default:
		return ToSection(strings.TrimSpace(choice))
	}
}

// IsUnassigned reports whether the destination is the unassigned list
func (d MoveDestination) IsUnassigned() bool {
	return d.kind == destinationUnassigned
}

// NewSectionName returns the name of the section to create, if the destination is a new section
func (d MoveDestination) NewSectionName() (string, bool) {
	return d.name, d.kind == destinationNewSection
}

// SectionID returns the target section, if the destination is an existing section
func (d MoveDestination) SectionID() (string, bool) {
	return d.sectionID, d.kind == destinationSection
}
