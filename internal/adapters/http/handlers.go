package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grantreports/core/internal/application/services"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/infrastructure/session"
	"github.com/grantreports/core/internal/ports"
)

// Managers builds the request-scoped data managers around the caller's
// session data. A manager never outlives the request it was built for.
type Managers struct {
	logger *logger.Logger
	opts   []services.ManagerOption
}

// NewManagers creates a manager factory; opts apply to every manager it builds
func NewManagers(logger *logger.Logger, opts ...services.ManagerOption) *Managers {
	return &Managers{logger: logger, opts: opts}
}

// Reports returns a reports manager over the request's session data
func (m *Managers) Reports(c echo.Context) ports.ReportsService {
	return services.NewReportsDataManager(session.Data(c), m.logger, m.opts...)
}

// Grants returns a grants manager over the request's session data
func (m *Managers) Grants(c echo.Context) ports.GrantsService {
	return services.NewGrantsDataManager(session.Data(c), m.logger, m.opts...)
}

// Handlers groups every API handler
type Handlers struct {
	Reports   *ReportHandler
	Sections  *SectionHandler
	Tasks     *TaskHandler
	Questions *QuestionHandler
	Grants    *GrantHandler
}

// NewHandlers creates all API handlers sharing one manager factory
func NewHandlers(managers *Managers, logger *logger.Logger) *Handlers {
	return &Handlers{
		Reports:   NewReportHandler(managers, logger),
		Sections:  NewSectionHandler(managers, logger),
		Tasks:     NewTaskHandler(managers, logger),
		Questions: NewQuestionHandler(managers, logger),
		Grants:    NewGrantHandler(managers, logger),
	}
}

// Register mounts the API routes on g. Task and question routes are mounted
// twice: once under a section and once under the report's unassigned tasks.
func (h *Handlers) Register(g *echo.Group) {
	reports := g.Group("/reports")
	reports.GET("", h.Reports.ListReports)
	reports.POST("", h.Reports.CreateReport)
	reports.GET("/:reportId", h.Reports.GetReport)
	reports.PATCH("/:reportId", h.Reports.UpdateReport)
	reports.DELETE("/:reportId", h.Reports.DeleteReport)

	sections := reports.Group("/:reportId/sections")
	sections.POST("", h.Sections.CreateSection)
	sections.GET("/:sectionId", h.Sections.GetSection)
	sections.PATCH("/:sectionId", h.Sections.UpdateSection)
	sections.DELETE("/:sectionId", h.Sections.DeleteSection)
	sections.POST("/:sectionId/move-up", h.Sections.MoveSectionUp)
	sections.POST("/:sectionId/move-down", h.Sections.MoveSectionDown)

	h.registerTasks(sections.Group("/:sectionId/tasks"))
	h.registerTasks(reports.Group("/:reportId/unassigned-tasks"))

	grants := g.Group("/grants")
	grants.GET("", h.Grants.ListGrants)
	grants.POST("", h.Grants.CreateGrant)
	grants.GET("/stats", h.Grants.GetGrantStats)
	grants.GET("/:grantName", h.Grants.GetGrant)
	grants.PATCH("/:grantName", h.Grants.UpdateGrant)
	grants.DELETE("/:grantName", h.Grants.DeleteGrant)
}

func (h *Handlers) registerTasks(tasks *echo.Group) {
	tasks.POST("", h.Tasks.CreateTask)
	tasks.GET("/:taskId", h.Tasks.GetTask)
	tasks.PATCH("/:taskId", h.Tasks.UpdateTask)
	tasks.DELETE("/:taskId", h.Tasks.DeleteTask)
	tasks.POST("/:taskId/move-up", h.Tasks.MoveTaskUp)
	tasks.POST("/:taskId/move-down", h.Tasks.MoveTaskDown)
	tasks.POST("/:taskId/move", h.Tasks.MoveTask)

	questions := tasks.Group("/:taskId/questions")
	questions.POST("", h.Questions.CreateQuestion)
	questions.GET("/:questionId", h.Questions.GetQuestion)
	questions.PATCH("/:questionId", h.Questions.UpdateQuestion)
	questions.DELETE("/:questionId", h.Questions.DeleteQuestion)
	questions.POST("/:questionId/move-up", h.Questions.MoveQuestionUp)
	questions.POST("/:questionId/move-down", h.Questions.MoveQuestionDown)
}

// bindAndValidate decodes the request body into req and runs the struct validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// taskLocation resolves the owning list from the route. Routes without a
// :sectionId parameter address the report's unassigned tasks.
func taskLocation(c echo.Context, reports ports.ReportsService) (entities.TaskLocation, error) {
	reportID := c.Param("reportId")
	if reports.GetReport(reportID) == nil {
		return entities.TaskLocation{}, echo.NewHTTPError(http.StatusNotFound, entities.ErrReportNotFound.Error())
	}

	sectionID := c.Param("sectionId")
	if sectionID == "" {
		return entities.Unassigned(), nil
	}

	if reports.GetSection(reportID, sectionID) == nil {
		return entities.TaskLocation{}, echo.NewHTTPError(http.StatusNotFound, entities.ErrSectionNotFound.Error())
	}

	return entities.InSection(sectionID), nil
}

func notFound(err error) error {
	return echo.NewHTTPError(http.StatusNotFound, err.Error())
}

func moveRejected() error {
	return echo.NewHTTPError(http.StatusConflict, entities.ErrMoveRejected.Error())
}

// Request/Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ValidationErrorResponse carries every problem found in a question's configuration
type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}
