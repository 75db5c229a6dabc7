package http

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/application/services"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

// QuestionHandler handles question requests under either kind of task route
type QuestionHandler struct {
	managers *Managers
	logger   *logger.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(managers *Managers, logger *logger.Logger) *QuestionHandler {
	return &QuestionHandler{
		managers: managers,
		logger:   logger,
	}
}

// QuestionRequest is the body for creating a question. The type-specific
// options sit at the top level alongside the common fields.
type QuestionRequest struct {
	QuestionName string                `json:"questionName"`
	QuestionText string                `json:"questionText"`
	QuestionHint string                `json:"questionHint"`
	QuestionType entities.QuestionType `json:"questionType" validate:"omitempty,questiontype"`
	IsRequired   bool                  `json:"isRequired"`
	entities.QuestionConfig
}

func (r QuestionRequest) question() entities.Question {
	return entities.Question{
		QuestionName:   r.QuestionName,
		QuestionText:   r.QuestionText,
		QuestionHint:   r.QuestionHint,
		QuestionType:   r.QuestionType,
		IsRequired:     r.IsRequired,
		QuestionConfig: r.QuestionConfig,
	}
}

// CreateQuestion godoc
// @Summary Add a question
// @Description Add a question to a task. The configuration is checked against the question type first.
// @Tags questions
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param request body QuestionRequest true "Question data"
// @Success 201 {object} entities.Question
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions [post]
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req QuestionRequest
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

	question := req.question()
	if question.QuestionType == "" {
		question.QuestionType = entities.QuestionTypeText
	}
	if errs := services.ValidateQuestionConfig(&question); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Invalid question configuration",
			Errors: errs,
		})
	}

	created := reports.AddQuestion(reportID, taskID, question, loc)
	if created == nil {
		return notFound(entities.ErrTaskNotFound)
	}

	return c.JSON(http.StatusCreated, created)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param questionId path string true "Question ID"
// @Success 200 {object} entities.Question
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId} [get]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId} [get]
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	question := reports.GetQuestion(c.Param("reportId"), c.Param("taskId"), c.Param("questionId"), loc)
	if question == nil {
		return notFound(entities.ErrQuestionNotFound)
	}

	return c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Update a question. When config is given it replaces every type-specific option.
// @Tags questions
// @Accept json
// @Produce json
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param questionId path string true "Question ID"
// @Param request body ports.QuestionUpdate true "Fields to update"
// @Success 200 {object} entities.Question
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId} [patch]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId} [patch]
func (h *QuestionHandler) UpdateQuestion(c echo.Context) error {
	var req ports.QuestionUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.QuestionType != nil && !req.QuestionType.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown question type")
	}

	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID, questionID := c.Param("reportId"), c.Param("taskId"), c.Param("questionId")
	existing := reports.GetQuestion(reportID, taskID, questionID, loc)
	if existing == nil {
		return notFound(entities.ErrQuestionNotFound)
	}

	candidate := applyQuestionUpdate(*existing, req)
	if errs := services.ValidateQuestionConfig(&candidate); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "Invalid question configuration",
			Errors: errs,
		})
	}

	if !reports.UpdateQuestion(reportID, taskID, questionID, loc, req) {
		return notFound(entities.ErrQuestionNotFound)
	}

	return c.JSON(http.StatusOK, reports.GetQuestion(reportID, taskID, questionID, loc))
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param questionId path string true "Question ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId} [delete]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId} [delete]
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	if !reports.DeleteQuestion(c.Param("reportId"), c.Param("taskId"), c.Param("questionId"), loc) {
		return notFound(entities.ErrQuestionNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveQuestionUp godoc
// @Summary Move a question up
// @Tags questions
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param questionId path string true "Question ID"
// @Success 200 {array} entities.Question
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId}/move-up [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId}/move-up [post]
func (h *QuestionHandler) MoveQuestionUp(c echo.Context) error {
	return h.reorder(c, ports.ReportsService.MoveQuestionUp)
}

// MoveQuestionDown godoc
// @Summary Move a question down
// @Tags questions
// @Param reportId path string true "Report ID"
// @Param sectionId path string true "Section ID"
// @Param taskId path string true "Task ID"
// @Param questionId path string true "Question ID"
// @Success 200 {array} entities.Question
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reports/{reportId}/sections/{sectionId}/tasks/{taskId}/questions/{questionId}/move-down [post]
// @Router /reports/{reportId}/unassigned-tasks/{taskId}/questions/{questionId}/move-down [post]
func (h *QuestionHandler) MoveQuestionDown(c echo.Context) error {
	return h.reorder(c, ports.ReportsService.MoveQuestionDown)
}

func (h *QuestionHandler) reorder(c echo.Context, move func(ports.ReportsService, string, string, string, entities.TaskLocation) bool) error {
	reports := h.managers.Reports(c)
	loc, err := taskLocation(c, reports)
	if err != nil {
		return err
	}

	reportID, taskID, questionID := c.Param("reportId"), c.Param("taskId"), c.Param("questionId")
	if reports.GetQuestion(reportID, taskID, questionID, loc) == nil {
		return notFound(entities.ErrQuestionNotFound)
	}
	if !move(reports, reportID, taskID, questionID, loc) {
		return moveRejected()
	}

	return c.JSON(http.StatusOK, reports.GetTask(reportID, taskID, loc).Questions)
}

// applyQuestionUpdate returns a copy of q with the update applied, so the
// result can be validated before anything in the session changes
func applyQuestionUpdate(q entities.Question, update ports.QuestionUpdate) entities.Question {
	q.SelectionOptionsArray = slices.Clone(q.SelectionOptionsArray)

	if update.QuestionName != nil {
		q.QuestionName = *update.QuestionName
	}
	if update.QuestionText != nil {
		q.QuestionText = *update.QuestionText
	}
	if update.QuestionHint != nil {
		q.QuestionHint = *update.QuestionHint
	}
	if update.QuestionType != nil {
		q.QuestionType = *update.QuestionType
	}
	if update.IsRequired != nil {
		q.IsRequired = *update.IsRequired
	}
	if update.Config != nil {
		q.QuestionConfig = *update.Config
	}

	return q
}
