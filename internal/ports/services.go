package ports

import (
	"github.com/grantreports/core/internal/domain/entities"
)

// ReportsService is the behaviour layer over the report trees held in one
// session. Lookups return nil and mutations return nil/false when a required
// ancestor is missing; nothing is returned as an error.
type ReportsService interface {
	GetReports() []*entities.Report
	GetReport(reportID string) *entities.Report
	GetSection(reportID, sectionID string) *entities.Section
	GetTask(reportID, taskID string, loc entities.TaskLocation) *entities.Task
	GetQuestion(reportID, taskID, questionID string, loc entities.TaskLocation) *entities.Question

	AddReport(input ReportInput) *entities.Report
	AddSection(reportID string, input SectionInput) *entities.Section
	AddTask(reportID string, input TaskInput, loc entities.TaskLocation) *entities.Task
	AddQuestion(reportID, taskID string, question entities.Question, loc entities.TaskLocation) *entities.Question

	UpdateReport(reportID string, update ReportUpdate) bool
	UpdateSection(reportID, sectionID string, update SectionUpdate) bool
	UpdateTask(reportID, taskID string, loc entities.TaskLocation, update TaskUpdate) bool
	UpdateQuestion(reportID, taskID, questionID string, loc entities.TaskLocation, update QuestionUpdate) bool

	DeleteReport(reportID string) bool
	DeleteSection(reportID, sectionID string) bool
	DeleteTask(reportID, taskID string, loc entities.TaskLocation) bool
	DeleteQuestion(reportID, taskID, questionID string, loc entities.TaskLocation) bool

	MoveSectionUp(reportID, sectionID string) bool
	MoveSectionDown(reportID, sectionID string) bool
	MoveTaskUp(reportID, taskID string, loc entities.TaskLocation) bool
	MoveTaskDown(reportID, taskID string, loc entities.TaskLocation) bool
	MoveQuestionUp(reportID, taskID, questionID string, loc entities.TaskLocation) bool
	MoveQuestionDown(reportID, taskID, questionID string, loc entities.TaskLocation) bool
	MoveTaskToSection(reportID, taskID string, from entities.TaskLocation, to entities.MoveDestination) bool

	BuildTemplateData(reportID string, opts TemplateOptions) *TemplateData
}

// GrantsService is the behaviour layer over the session's flat grant list
type GrantsService interface {
	GetGrants() []*entities.Grant
	GetGrant(grantName string) *entities.Grant
	GetGrantByID(id string) *entities.Grant
	AddGrant(input GrantInput) *entities.Grant
	UpdateGrant(grantName string, update GrantUpdate) bool
	DeleteGrant(grantName string) bool
	GrantNameExists(grantName string) bool
	ValidateGgisNumber(ggisNumber string) bool
	GetGrantStats() GrantStats
}

// Request/Response Types

type ReportInput struct {
	ReportName string `json:"reportName" validate:"omitempty,max=200"`
}

type SectionInput struct {
	SectionName string `json:"sectionName" validate:"required,max=200"`
}

type TaskInput struct {
	TaskName string `json:"taskName" validate:"required,max=200"`
}

type GrantInput struct {
	GrantName           string `json:"grantName" validate:"required,max=200"`
	GGISNumber          string `json:"ggisNumber" validate:"omitempty,ggis"`
	Description         string `json:"description" validate:"omitempty,max=2000"`
	PrimaryContactName  string `json:"primaryContactName" validate:"omitempty,max=200"`
	PrimaryContactEmail string `json:"primaryContactEmail" validate:"omitempty,email"`
}

// Update types carry one optional field per updatable attribute. A nil
// field is left untouched.

type ReportUpdate struct {
	ReportName *string `json:"reportName" validate:"omitempty,min=1,max=200"`
}

type SectionUpdate struct {
	SectionName *string `json:"sectionName" validate:"omitempty,min=1,max=200"`
}

type TaskUpdate struct {
	TaskName *string `json:"taskName" validate:"omitempty,min=1,max=200"`
}

// QuestionUpdate replaces the whole type-specific configuration when Config
// is set, so options left over from a previous question type do not survive
// a type change.
type QuestionUpdate struct {
	QuestionName *string                  `json:"questionName"`
	QuestionText *string                  `json:"questionText"`
	QuestionHint *string                  `json:"questionHint"`
	QuestionType *entities.QuestionType   `json:"questionType"`
	IsRequired   *bool                    `json:"isRequired"`
	Config       *entities.QuestionConfig `json:"config"`
}

type GrantUpdate struct {
	GrantName           *string               `json:"grantName" validate:"omitempty,min=1,max=200"`
	GGISNumber          *string               `json:"ggisNumber" validate:"omitempty,ggis"`
	Description         *string               `json:"description" validate:"omitempty,max=2000"`
	PrimaryContactName  *string               `json:"primaryContactName" validate:"omitempty,max=200"`
	PrimaryContactEmail *string               `json:"primaryContactEmail" validate:"omitempty,email"`
	Status              *entities.GrantStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// TemplateOptions selects which parts of a report a page needs
type TemplateOptions struct {
	IncludeSections bool
	SectionID       string
	TaskID          string
}

// TemplateData is the read-only view-model handed to a page. Optional keys
// are only present when the matching TemplateOptions field was supplied and
// the entity was found.
type TemplateData struct {
	CurrentReportID        string               `json:"currentReportId"`
	ReportName             string               `json:"reportName"`
	GrantName              string               `json:"grantName"`
	CurrentSections        []*entities.Section  `json:"currentSections,omitempty"`
	CurrentUnassignedTasks []*entities.Task     `json:"currentUnassignedTasks,omitempty"`
	CurrentSectionID       string               `json:"currentSectionId,omitempty"`
	SectionName            string               `json:"sectionName,omitempty"`
	CurrentSectionName     string               `json:"currentSectionName,omitempty"`
	CurrentTaskID          string               `json:"currentTaskId,omitempty"`
	TaskName               string               `json:"taskName,omitempty"`
	CurrentTaskName        string               `json:"currentTaskName,omitempty"`
	CurrentQuestions       []*entities.Question `json:"currentQuestions,omitempty"`
	IsUnassignedTask       *bool                `json:"isUnassignedTask,omitempty"`
}

// GrantStats counts grants by status
type GrantStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
