package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// TaskHandler handles task requests for both section tasks and unassigned tasks
type TaskHandler struct {
	managers *Managers
	logger   *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(managers *Managers, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		managers: managers,
		logger:   logger,
	}
}

// MoveTaskRequest selects where a task goes. Destination is "unassigned",
// "new" (or "new-section") together with NewSectionName, or a section ID.
type MoveTaskRequest struct {
	Destination    string `json:"destination" validate:"required"`
	NewSectionName string `json:"newSectionName" validate:"omitempty,max=200"`
}

// CreateTask godoc
// @Summary Add a task
// @Description Add a task to a section, or to the report's unassigned tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param request body ports.TaskInput true "Task data"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks [post]
// @Router /reports/{reportId}/unassigned-tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.TaskInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	task := reports.AddTask(c.Param("reportId"), req, loc)
	if task == nil {
		return notFound(entities.ErrReportNotFound)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask godoc
// @Summary Get a task page
// @Tags tasks
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} ports.TemplateData
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId} [get]
// @Router /reports/{reportId}/unassigned-tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID := c.Param("reportId"), c.Param("taskId")
	if reports.GetTask(reportID, taskID, loc) == nil {
		return notFound(entities.ErrTaskNotFound)
	}

	sectionID, _ := loc.SectionID()
	view := reports.BuildTemplateData(reportID, ports.TemplateOptions{SectionID: sectionID, TaskID: taskID})
	return c.JSON(http.StatusOK, view)
}

// UpdateTask godoc
// @Summary Rename a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param request body ports.TaskUpdate true "Fields to update"
// @Success 200 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId} [patch]
// @Router /reports/{reportId}/unassigned-tasks/{taskId} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req ports.TaskUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID := c.Param("reportId"), c.Param("taskId")
	if !reports.UpdateTask(reportID, taskID, loc, req) {
		return notFound(entities.ErrTaskNotFound)
	}

	return c.JSON(http.StatusOK, reports.GetTask(reportID, taskID, loc))
}

// DeleteTask godoc
// @Summary Delete a task and its questions
// @Tags tasks
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId} [delete]
// @Router /reports/{reportId}/unassigned-tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	if !reports.DeleteTask(c.Param("reportId"), c.Param("taskId"), loc) {
		return notFound(entities.ErrTaskNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveTaskUp godoc
// @Summary Move a task up within its list
// @Tags tasks
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Success 200 {array} entities.Task
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move-up [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/move-up [post]
func (h *TaskHandler) MoveTaskUp(c echo.Context) error {
	return h.reorder(c, ports.ReportsService.MoveTaskUp)
}

// MoveTaskDown godoc
// @Summary Move a task down within its list
// @Tags tasks
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Success 200 {array} entities.Task
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move-down [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/move-down [post]
func (h *TaskHandler) MoveTaskDown(c echo.Context) error {
	return h.reorder(c, ports.ReportsService.MoveTaskDown)
}

// MoveTask godoc
// @Summary Move a task to another section
// @Description Move a task to an existing section, a new section, or the unassigned tasks
// @Tags tasks
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param request body MoveTaskRequest true "Destination"
// @Success 200 {object} ports.TemplateData
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/move [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/move [post]
func (h *TaskHandler) MoveTask(c echo.Context) error {
	var req MoveTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID := c.Param("reportId"), c.Param("taskId")
	if reports.GetTask(reportID, taskID, loc) == nil {
		return notFound(entities.ErrTaskNotFound)
	}

	to := entities.ParseMoveDestination(req.Destination, req.NewSectionName)
	if !reports.MoveTaskToSection(reportID, taskID, loc, to) {
		h.logger.Infow("Task move rejected", "report_id", reportID, "task_id", taskID, "destination", req.Destination)
		return moveRejected()
	}

	view := reports.BuildTemplateData(reportID, ports.TemplateOptions{IncludeSections: true})
	return c.JSON(http.StatusOK, view)
}

func (h *TaskHandler) reorder(c echo.Context, move func(ports.ReportsService, string, string, entities.TaskLocation) bool) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID := c.Param("reportId"), c.Param("taskId")
	if reports.GetTask(reportID, taskID, loc) == nil {
		return notFound(entities.ErrTaskNotFound)
	}
	if !move(reports, reportID, taskID, loc) {
		return moveRejected()
	}

	return c.JSON(http.StatusOK, tasksAt(reports.GetReport(reportID), loc))
}

func tasksAt(report *entities.Report, loc entities.TaskLocation) []*entities.Task {
	sectionID, ok := loc.SectionID()
	if !ok {
		return report.UnassignedTasks
	}
	for _, section := range report.Sections {
		if section.ID == sectionID {
			return section.Tasks
		}
	}
	return nil
}
