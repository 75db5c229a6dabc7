package services

import (
	"slices"
	"strings"

	"github.com/grantreports/core/internal/domain/entities"
	loggerpkg "github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// ReportsDataManager handles the report → section → task → question tree
// held in one session. It mutates the session data in place; there is no
// separate persisted copy.
type ReportsDataManager struct {
	data   *entities.SessionData
	opts   managerOptions
	logger *loggerpkg.Logger
}

var _ ports.ReportsService = (*ReportsDataManager)(nil)

// NewReportsDataManager wraps the session data, initialising the reports list if absent
func NewReportsDataManager(data *entities.SessionData, logger *loggerpkg.Logger, opts ...ManagerOption) *ReportsDataManager {
	if data == nil {
		data = entities.NewSessionData()
	}
	if data.Reports == nil {
		data.Reports = []*entities.Report{}
	}
	if logger == nil {
		logger = loggerpkg.NewNop()
	}

	return &ReportsDataManager{
		data:   data,
		opts:   buildManagerOptions(opts),
		logger: logger,
	}
}

// GetReports returns every report in display order
func (m *ReportsDataManager) GetReports() []*entities.Report {
	return m.data.Reports
}

// GetReport retrieves a report by ID
func (m *ReportsDataManager) GetReport(reportID string) *entities.Report {
	if reportID == "" {
		return nil
	}
	if i := indexByID(m.data.Reports, reportID, reportIDOf); i != -1 {
		return m.data.Reports[i]
	}
	return nil
}

// GetSection retrieves a section of a report
func (m *ReportsDataManager) GetSection(reportID, sectionID string) *entities.Section {
	if sectionID == "" {
		return nil
	}
	report := m.GetReport(reportID)
	if report == nil {
		return nil
	}
	return findSection(report, sectionID)
}

// GetTask retrieves a task from a section or from the report's unassigned tasks
func (m *ReportsDataManager) GetTask(reportID, taskID string, loc entities.TaskLocation) *entities.Task {
	if taskID == "" {
		return nil
	}
	report := m.GetReport(reportID)
	if report == nil {
		return nil
	}
	tasks := taskList(report, loc)
	if tasks == nil {
		return nil
	}
	if i := indexByID(*tasks, taskID, taskIDOf); i != -1 {
		return (*tasks)[i]
	}
	return nil
}

// GetQuestion retrieves a question of a task
func (m *ReportsDataManager) GetQuestion(reportID, taskID, questionID string, loc entities.TaskLocation) *entities.Question {
	if questionID == "" {
		return nil
	}
	task := m.GetTask(reportID, taskID, loc)
	if task == nil {
		return nil
	}
	if i := indexByID(task.Questions, questionID, questionIDOf); i != -1 {
		return task.Questions[i]
	}
	return nil
}

// AddReport appends a new report. A blank name becomes "Untitled Report".
func (m *ReportsDataManager) AddReport(input ports.ReportInput) *entities.Report {
	name := strings.TrimSpace(input.ReportName)
	if name == "" {
		name = entities.DefaultReportName
	}

	now := m.opts.clock()
	report := &entities.Report{
		ID:              m.opts.newID(),
		ReportName:      name,
		CreatedDate:     now,
		CreatedBy:       m.opts.createdBy,
		LastUpdated:     now,
		UpdatedBy:       m.opts.updatedBy,
		Sections:        []*entities.Section{},
		UnassignedTasks: []*entities.Task{},
	}

	m.data.Reports = append(m.data.Reports, report)
	m.logger.Debugw("Report added", "report_id", report.ID, "report_name", report.ReportName)

	return report
}

// AddSection appends a section to a report
func (m *ReportsDataManager) AddSection(reportID string, input ports.SectionInput) *entities.Section {
	report := m.GetReport(reportID)
	if report == nil {
		m.logger.Debugw("Add section skipped", "report_id", reportID, "error", entities.ErrReportNotFound)
		return nil
	}

	section := &entities.Section{
		ID:          m.opts.newID(),
		SectionName: strings.TrimSpace(input.SectionName),
		CreatedDate: m.opts.clock(),
		Tasks:       []*entities.Task{},
	}

	report.Sections = append(report.Sections, section)
	m.touch(report)
	m.logger.Debugw("Section added", "report_id", reportID, "section_id", section.ID)

	return section
}

// AddTask appends a task to a section, or to the report's unassigned tasks
func (m *ReportsDataManager) AddTask(reportID string, input ports.TaskInput, loc entities.TaskLocation) *entities.Task {
	report := m.GetReport(reportID)
	if report == nil {
		m.logger.Debugw("Add task skipped", "report_id", reportID, "error", entities.ErrReportNotFound)
		return nil
	}

	tasks := taskList(report, loc)
	if tasks == nil {
		m.logger.Debugw("Add task skipped", "report_id", reportID, "location", loc.String(), "error", entities.ErrSectionNotFound)
		return nil
	}

	task := &entities.Task{
		ID:          m.opts.newID(),
		TaskName:    strings.TrimSpace(input.TaskName),
		CreatedDate: m.opts.clock(),
		Questions:   []*entities.Question{},
	}

	*tasks = append(*tasks, task)
	m.touch(report)
	m.logger.Debugw("Task added", "report_id", reportID, "task_id", task.ID, "location", loc.String())

	return task
}

// AddQuestion appends a question to a task. The type-specific configuration
// is stored as given; only the ID, creation date, type default and derived
// display fields are filled in.
func (m *ReportsDataManager) AddQuestion(reportID, taskID string, question entities.Question, loc entities.TaskLocation) *entities.Question {
	task := m.GetTask(reportID, taskID, loc)
	if task == nil {
		m.logger.Debugw("Add question skipped", "report_id", reportID, "task_id", taskID, "error", entities.ErrTaskNotFound)
		return nil
	}

	q := question
	q.ID = m.opts.newID()
	q.CreatedDate = m.opts.clock()
	q.SelectionOptionsArray = slices.Clone(question.SelectionOptionsArray)
	normalizeQuestion(&q)

	task.Questions = append(task.Questions, &q)
	m.touch(m.GetReport(reportID))
	m.logger.Debugw("Question added", "report_id", reportID, "task_id", taskID, "question_id", q.ID, "question_type", q.QuestionType)

	return &q
}

// UpdateReport applies the given fields to a report
func (m *ReportsDataManager) UpdateReport(reportID string, update ports.ReportUpdate) bool {
	report := m.GetReport(reportID)
	if report == nil {
		return false
	}

	if update.ReportName != nil {
		name := strings.TrimSpace(*update.ReportName)
		if name == "" {
			name = entities.DefaultReportName
		}
		report.ReportName = name
	}

	m.touch(report)
	return true
}

// UpdateSection applies the given fields to a section
func (m *ReportsDataManager) UpdateSection(reportID, sectionID string, update ports.SectionUpdate) bool {
	section := m.GetSection(reportID, sectionID)
	if section == nil {
		return false
	}

	if update.SectionName != nil {
		section.SectionName = strings.TrimSpace(*update.SectionName)
	}

	m.touch(m.GetReport(reportID))
	return true
}

// UpdateTask applies the given fields to a task
func (m *ReportsDataManager) UpdateTask(reportID, taskID string, loc entities.TaskLocation, update ports.TaskUpdate) bool {
	task := m.GetTask(reportID, taskID, loc)
	if task == nil {
		return false
	}

	if update.TaskName != nil {
		task.TaskName = strings.TrimSpace(*update.TaskName)
	}

	m.touch(m.GetReport(reportID))
	return true
}

// UpdateQuestion applies the given fields to a question
func (m *ReportsDataManager) UpdateQuestion(reportID, taskID, questionID string, loc entities.TaskLocation, update ports.QuestionUpdate) bool {
	question := m.GetQuestion(reportID, taskID, questionID, loc)
	if question == nil {
		return false
	}

	if update.QuestionName != nil {
		question.QuestionName = *update.QuestionName
	}
	if update.QuestionText != nil {
		question.QuestionText = *update.QuestionText
	}
	if update.QuestionHint != nil {
		question.QuestionHint = *update.QuestionHint
	}
	if update.QuestionType != nil {
		question.QuestionType = *update.QuestionType
	}
	if update.IsRequired != nil {
		question.IsRequired = *update.IsRequired
	}
	if update.Config != nil {
		question.QuestionConfig = *update.Config
		question.SelectionOptionsArray = slices.Clone(update.Config.SelectionOptionsArray)
	}
	normalizeQuestion(question)

	m.touch(m.GetReport(reportID))
	return true
}

// DeleteReport removes a report and everything in it
func (m *ReportsDataManager) DeleteReport(reportID string) bool {
	i := indexByID(m.data.Reports, reportID, reportIDOf)
	if reportID == "" || i == -1 {
		return false
	}

	m.data.Reports = slices.Delete(m.data.Reports, i, i+1)
	m.logger.Debugw("Report deleted", "report_id", reportID)
	return true
}

// DeleteSection removes a section. Its tasks are appended, in order, to the
// report's unassigned tasks rather than deleted.
func (m *ReportsDataManager) DeleteSection(reportID, sectionID string) bool {
	report := m.GetReport(reportID)
	if report == nil || sectionID == "" {
		return false
	}

	i := indexByID(report.Sections, sectionID, sectionIDOf)
	if i == -1 {
		return false
	}

	orphans := report.Sections[i].Tasks
	report.Sections = slices.Delete(report.Sections, i, i+1)
	if report.UnassignedTasks == nil {
		report.UnassignedTasks = []*entities.Task{}
	}
	report.UnassignedTasks = append(report.UnassignedTasks, orphans...)

	m.touch(report)
	m.logger.Debugw("Section deleted", "report_id", reportID, "section_id", sectionID, "reassigned_tasks", len(orphans))
	return true
}

// DeleteTask removes a task and its questions
func (m *ReportsDataManager) DeleteTask(reportID, taskID string, loc entities.TaskLocation) bool {
	report := m.GetReport(reportID)
	if report == nil || taskID == "" {
		return false
	}

	tasks := taskList(report, loc)
	if tasks == nil {
		return false
	}

	i := indexByID(*tasks, taskID, taskIDOf)
	if i == -1 {
		return false
	}

	*tasks = slices.Delete(*tasks, i, i+1)
	m.touch(report)
	return true
}

// DeleteQuestion removes a question from a task
func (m *ReportsDataManager) DeleteQuestion(reportID, taskID, questionID string, loc entities.TaskLocation) bool {
	task := m.GetTask(reportID, taskID, loc)
	if task == nil || questionID == "" {
		return false
	}

	i := indexByID(task.Questions, questionID, questionIDOf)
	if i == -1 {
		return false
	}

	task.Questions = slices.Delete(task.Questions, i, i+1)
	m.touch(m.GetReport(reportID))
	return true
}

// MoveSectionUp swaps a section with the one before it
func (m *ReportsDataManager) MoveSectionUp(reportID, sectionID string) bool {
	return m.moveSection(reportID, sectionID, moveUp)
}

// MoveSectionDown swaps a section with the one after it
func (m *ReportsDataManager) MoveSectionDown(reportID, sectionID string) bool {
	return m.moveSection(reportID, sectionID, moveDown)
}

// MoveTaskUp swaps a task with the one before it in the same list
func (m *ReportsDataManager) MoveTaskUp(reportID, taskID string, loc entities.TaskLocation) bool {
	return m.moveTask(reportID, taskID, loc, moveUp)
}

// MoveTaskDown swaps a task with the one after it in the same list
func (m *ReportsDataManager) MoveTaskDown(reportID, taskID string, loc entities.TaskLocation) bool {
	return m.moveTask(reportID, taskID, loc, moveDown)
}

// MoveQuestionUp swaps a question with the one before it
func (m *ReportsDataManager) MoveQuestionUp(reportID, taskID, questionID string, loc entities.TaskLocation) bool {
	return m.moveQuestion(reportID, taskID, questionID, loc, moveUp)
}

// MoveQuestionDown swaps a question with the one after it
func (m *ReportsDataManager) MoveQuestionDown(reportID, taskID, questionID string, loc entities.TaskLocation) bool {
	return m.moveQuestion(reportID, taskID, questionID, loc, moveDown)
}

// MoveTaskToSection moves a task from its current list to the end of the
// destination list. The destination is resolved before the task is detached,
// so a destination that cannot be resolved leaves the task at its original
// index and the call returns false.
func (m *ReportsDataManager) MoveTaskToSection(reportID, taskID string, from entities.TaskLocation, to entities.MoveDestination) bool {
	report := m.GetReport(reportID)
	if report == nil || taskID == "" {
		return false
	}

	source := taskList(report, from)
	if source == nil {
		return false
	}

	index := indexByID(*source, taskID, taskIDOf)
	if index == -1 {
		return false
	}

	var target *[]*entities.Task
	newSectionName, toNewSection := to.NewSectionName()
	newSectionName = strings.TrimSpace(newSectionName)

	switch {
	case to.IsUnassigned():
		target = &report.UnassignedTasks
	case toNewSection:
		if newSectionName == "" {
			m.logger.Debugw("Move task rejected", "report_id", reportID, "task_id", taskID, "reason", "blank new section name")
			return false
		}
	default:
		sectionID, _ := to.SectionID()
		section := findSection(report, sectionID)
		if section == nil {
			m.logger.Debugw("Move task rejected", "report_id", reportID, "task_id", taskID, "error", entities.ErrSectionNotFound)
			return false
		}
		target = &section.Tasks
	}

	task := (*source)[index]
	*source = slices.Delete(*source, index, index+1)

	if toNewSection {
		section := m.AddSection(reportID, ports.SectionInput{SectionName: newSectionName})
		target = &section.Tasks
	}

	*target = append(*target, task)
	m.touch(report)
	m.logger.Debugw("Task moved", "report_id", reportID, "task_id", taskID, "from", from.String())

	return true
}

// BuildTemplateData assembles the read-only view-model for a report page
func (m *ReportsDataManager) BuildTemplateData(reportID string, opts ports.TemplateOptions) *ports.TemplateData {
	report := m.GetReport(reportID)
	if report == nil {
		return nil
	}

	data := &ports.TemplateData{
		CurrentReportID: reportID,
		ReportName:      report.ReportName,
		GrantName:       m.data.GrantName,
	}
	if data.GrantName == "" {
		data.GrantName = m.opts.defaultGrantName
	}

	if opts.IncludeSections {
		data.CurrentSections = report.Sections
		if data.CurrentSections == nil {
			data.CurrentSections = []*entities.Section{}
		}
		data.CurrentUnassignedTasks = report.UnassignedTasks
		if data.CurrentUnassignedTasks == nil {
			data.CurrentUnassignedTasks = []*entities.Task{}
		}
	}

	if opts.SectionID != "" {
		if section := findSection(report, opts.SectionID); section != nil {
			data.CurrentSectionID = opts.SectionID
			data.SectionName = section.SectionName
			data.CurrentSectionName = section.SectionName
		}
	}

	if opts.TaskID != "" {
		if task := m.GetTask(reportID, opts.TaskID, entities.InSection(opts.SectionID)); task != nil {
			unassigned := opts.SectionID == ""
			data.CurrentTaskID = opts.TaskID
			data.TaskName = task.TaskName
			data.CurrentTaskName = task.TaskName
			data.CurrentQuestions = task.Questions
			if data.CurrentQuestions == nil {
				data.CurrentQuestions = []*entities.Question{}
			}
			data.IsUnassignedTask = &unassigned
		}
	}

	return data
}

func (m *ReportsDataManager) moveSection(reportID, sectionID string, dir moveDirection) bool {
	report := m.GetReport(reportID)
	if report == nil {
		return false
	}
	if !swapNeighbour(report.Sections, sectionID, sectionIDOf, dir) {
		return false
	}
	m.touch(report)
	return true
}

func (m *ReportsDataManager) moveTask(reportID, taskID string, loc entities.TaskLocation, dir moveDirection) bool {
	report := m.GetReport(reportID)
	if report == nil {
		return false
	}
	tasks := taskList(report, loc)
	if tasks == nil || !swapNeighbour(*tasks, taskID, taskIDOf, dir) {
		return false
	}
	m.touch(report)
	return true
}

func (m *ReportsDataManager) moveQuestion(reportID, taskID, questionID string, loc entities.TaskLocation, dir moveDirection) bool {
	task := m.GetTask(reportID, taskID, loc)
	if task == nil || !swapNeighbour(task.Questions, questionID, questionIDOf, dir) {
		return false
	}
	m.touch(m.GetReport(reportID))
	return true
}

// touch stamps the report as changed by the configured actor
func (m *ReportsDataManager) touch(report *entities.Report) {
	if report == nil {
		return
	}
	report.LastUpdated = m.opts.clock()
	report.UpdatedBy = m.opts.updatedBy
}

// taskList returns the slice that owns tasks at loc, or nil when the
// location's section does not exist. The unassigned list is created on demand.
func taskList(report *entities.Report, loc entities.TaskLocation) *[]*entities.Task {
	sectionID, inSection := loc.SectionID()
	if !inSection {
		if report.UnassignedTasks == nil {
			report.UnassignedTasks = []*entities.Task{}
		}
		return &report.UnassignedTasks
	}

	section := findSection(report, sectionID)
	if section == nil {
		return nil
	}
	if section.Tasks == nil {
		section.Tasks = []*entities.Task{}
	}
	return &section.Tasks
}

func findSection(report *entities.Report, sectionID string) *entities.Section {
	if i := indexByID(report.Sections, sectionID, sectionIDOf); i != -1 {
		return report.Sections[i]
	}
	return nil
}

// normalizeQuestion fills the type default and the fields derived from the
// stored configuration
func normalizeQuestion(q *entities.Question) {
	if q.QuestionType == "" {
		q.QuestionType = entities.QuestionTypeText
	}
	if q.QuestionType.IsValid() {
		q.HumanQuestionType = q.QuestionType.Human()
	}
	if q.SelectionOptions != "" {
		q.SelectionOptionsArray = entities.SplitSelectionOptions(q.SelectionOptions)
	}
}
