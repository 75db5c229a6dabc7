package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrReportNotFound   = errors.New("report not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrGrantNotFound    = errors.New("grant not found")
	ErrGrantNameTaken   = errors.New("grant name already exists")
	ErrInvalidGGIS      = errors.New("invalid GGIS number")
	ErrMoveRejected     = errors.New("move rejected")
)

// Default display values
const (
	DefaultReportName = "Untitled Report"
	DefaultGrantName  = "Untitled Grant"
	DefaultActor      = "mj@communities.gov.uk"
	DefaultCreator    = "hugo.furst@communities.gov.uk"
	SampleGrantName   = "Sample Grant Name"
)

// displayDateLayout is the en-GB long date used on every page ("2 January 2006").
const displayDateLayout = "2 January 2006"

// DisplayDate formats t the way the report pages show dates.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}

type GrantStatus string

const (
	GrantStatusActive   GrantStatus = "Active"
	GrantStatusInactive GrantStatus = "Inactive"
)

// Report is the root of a report tree
type Report struct {
	ID              string     `json:"id"`
	ReportName      string     `json:"reportName"`
	CreatedDate     time.Time  `json:"createdDate"`
	CreatedBy       string     `json:"createdBy"`
	LastUpdated     time.Time  `json:"lastUpdated"`
	UpdatedBy       string     `json:"updatedBy"`
	Sections        []*Section `json:"sections"`
	UnassignedTasks []*Task    `json:"unassignedTasks"`
}

// Section groups tasks inside a report, in display order
type Section struct {
	ID          string    `json:"id"`
	SectionName string    `json:"sectionName"`
	CreatedDate time.Time `json:"createdDate"`
	Tasks       []*Task   `json:"tasks"`
}

// Task holds an ordered list of questions
type Task struct {
	ID          string      `json:"id"`
	TaskName    string      `json:"taskName"`
	CreatedDate time.Time   `json:"createdDate"`
	Questions   []*Question `json:"questions"`
}

// Grant is a flat grant record, unrelated to the report tree
type Grant struct {
	ID                  string      `json:"id"`
	GrantName           string      `json:"grantName"`
	GGISNumber          string      `json:"ggisNumber"`
	Description         string      `json:"description"`
	PrimaryContactName  string      `json:"primaryContactName"`
	PrimaryContactEmail string      `json:"primaryContactEmail"`
	CreatedDate         time.Time   `json:"createdDate"`
	Status              GrantStatus `json:"status"`
}

// SessionData is the mutable per-browser state the data managers operate on.
// It is loaded by the session layer before a request and saved afterwards.
type SessionData struct {
	Reports          []*Report `json:"reports"`
	Grants           []*Grant  `json:"grants"`
	GrantName        string    `json:"grantName,omitempty"`
	CurrentGrantName string    `json:"currentGrantName,omitempty"`
}

// NewSessionData returns empty session data with initialised collections
func NewSessionData() *SessionData {
	return &SessionData{
		Reports: []*Report{},
		Grants:  []*Grant{},
	}
}
