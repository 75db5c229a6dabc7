package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantreports/core/internal/application/services"
	"github.com/grantreports/core/internal/domain/entities"
	"github.com/grantreports/core/internal/infrastructure/logger"
	"github.com/grantreports/core/internal/ports"
)

var (
	created = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later   = created.Add(time.Hour)
)

// stepClock returns the given times in order, repeating the last one
func stepClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newReports(t *testing.T, opts ...services.ManagerOption) (*services.ReportsDataManager, *entities.SessionData) {
	t.Helper()

	data := entities.NewSessionData()
	opts = append([]services.ManagerOption{
		services.WithIDGenerator(sequentialIDs("id")),
		services.WithClock(func() time.Time { return created }),
	}, opts...)

	return services.NewReportsDataManager(data, logger.NewNop(), opts...), data
}

func taskIDs(tasks []*entities.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func ptr[T any](v T) *T { return &v }

func TestNewReportsDataManagerInitialisesReports(t *testing.T) {
	t.Parallel()

	data := &entities.SessionData{}
	m := services.NewReportsDataManager(data, nil)

	assert.NotNil(t, data.Reports)
	assert.Empty(t, m.GetReports())
	assert.Nil(t, m.GetReport(""))
	assert.Nil(t, m.GetReport("missing"))
}

func TestAddReport(t *testing.T) {
	t.Parallel()

	m, data := newReports(t, services.WithActor("creator@example.com", "editor@example.com"))

	report := m.AddReport(ports.ReportInput{ReportName: "  "})
	require.NotNil(t, report)

	assert.Equal(t, "id-1", report.ID)
	assert.Equal(t, entities.DefaultReportName, report.ReportName)
	assert.Equal(t, created, report.CreatedDate)
	assert.Equal(t, created, report.LastUpdated)
	assert.Equal(t, "creator@example.com", report.CreatedBy)
	assert.Equal(t, "editor@example.com", report.UpdatedBy)
	assert.NotNil(t, report.Sections)
	assert.NotNil(t, report.UnassignedTasks)
	assert.Same(t, report, data.Reports[0])
	assert.Same(t, report, m.GetReport(report.ID))
}

func TestAddSectionThenGetSection(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{ReportName: "Annual Return"})

	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	require.NotNil(t, section)

	got := m.GetSection(report.ID, section.ID)
	assert.Equal(t, section, got)
	assert.Equal(t, "Finance", got.SectionName)
	assert.Len(t, report.Sections, 1)

	assert.Nil(t, m.AddSection("missing", ports.SectionInput{SectionName: "Finance"}))
	assert.Nil(t, m.GetSection(report.ID, "missing"))
}

func TestMutationsTouchReport(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t, services.WithClock(stepClock(created, created, later)))
	report := m.AddReport(ports.ReportInput{ReportName: "Annual Return"})
	require.Equal(t, created, report.LastUpdated)

	m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	assert.Equal(t, later, report.LastUpdated)
	assert.Equal(t, entities.DefaultActor, report.UpdatedBy)
}

func TestReadsDoNotTouchReport(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t, services.WithClock(stepClock(created, later)))
	report := m.AddReport(ports.ReportInput{ReportName: "Annual Return"})

	m.GetReport(report.ID)
	m.GetTask(report.ID, "missing", entities.Unassigned())
	m.BuildTemplateData(report.ID, ports.TemplateOptions{IncludeSections: true})

	assert.Equal(t, created, report.LastUpdated)
}

func TestAddTaskLocations(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})

	inSection := m.AddTask(report.ID, ports.TaskInput{TaskName: "Upload accounts"}, entities.InSection(section.ID))
	unassigned := m.AddTask(report.ID, ports.TaskInput{TaskName: "Loose task"}, entities.Unassigned())

	require.NotNil(t, inSection)
	require.NotNil(t, unassigned)
	assert.Equal(t, []string{inSection.ID}, taskIDs(section.Tasks))
	assert.Equal(t, []string{unassigned.ID}, taskIDs(report.UnassignedTasks))

	assert.Same(t, inSection, m.GetTask(report.ID, inSection.ID, entities.InSection(section.ID)))
	assert.Nil(t, m.GetTask(report.ID, inSection.ID, entities.Unassigned()))
	assert.Nil(t, m.AddTask(report.ID, ports.TaskInput{TaskName: "x"}, entities.InSection("missing")))
	assert.Nil(t, m.AddTask("missing", ports.TaskInput{TaskName: "x"}, entities.Unassigned()))
}

func TestAnnualReturnScenario(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{ReportName: "Annual Return"})
	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	loc := entities.InSection(section.ID)
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Upload accounts"}, loc)
	require.NotNil(t, task)

	question := m.AddQuestion(report.ID, task.ID, entities.Question{
		QuestionName:   "Total spend",
		QuestionType:   entities.QuestionTypeNumber,
		QuestionConfig: entities.QuestionConfig{MinValue: ptr(0.0)},
	}, loc)
	require.NotNil(t, question)

	got := m.GetQuestion(report.ID, task.ID, question.ID, loc)
	require.NotNil(t, got)
	assert.Equal(t, entities.QuestionTypeNumber, got.QuestionType)
	require.NotNil(t, got.MinValue)
	assert.Equal(t, 0.0, *got.MinValue)
	assert.Equal(t, "Number", got.HumanQuestionType)

	require.True(t, m.DeleteTask(report.ID, task.ID, loc))
	assert.Empty(t, m.GetSection(report.ID, section.ID).Tasks)
	assert.Nil(t, m.GetQuestion(report.ID, task.ID, question.ID, loc))
}

func TestAddQuestionDefaultsAndDerivedFields(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Details"}, entities.Unassigned())

	plain := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "Name"}, entities.Unassigned())
	require.NotNil(t, plain)
	assert.Equal(t, entities.QuestionTypeText, plain.QuestionType)
	assert.Equal(t, "Text", plain.HumanQuestionType)
	assert.Equal(t, created, plain.CreatedDate)

	selection := m.AddQuestion(report.ID, task.ID, entities.Question{
		QuestionName: "Region",
		QuestionType: entities.QuestionTypeSelection,
		QuestionConfig: entities.QuestionConfig{
			SelectionOptions: "North\n\n  South \nEast",
		},
	}, entities.Unassigned())
	require.NotNil(t, selection)
	assert.Equal(t, []string{"North", "South", "East"}, selection.SelectionOptionsArray)

	assert.Nil(t, m.AddQuestion(report.ID, "missing", entities.Question{QuestionName: "x"}, entities.Unassigned()))
}

func TestUpdates(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{ReportName: "Draft"})
	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	loc := entities.InSection(section.ID)
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Upload"}, loc)
	question := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "Spend", QuestionType: entities.QuestionTypeNumber}, loc)

	assert.True(t, m.UpdateReport(report.ID, ports.ReportUpdate{ReportName: ptr("Annual Return")}))
	assert.Equal(t, "Annual Return", report.ReportName)
	assert.True(t, m.UpdateReport(report.ID, ports.ReportUpdate{ReportName: ptr(" ")}))
	assert.Equal(t, entities.DefaultReportName, report.ReportName)

	assert.True(t, m.UpdateSection(report.ID, section.ID, ports.SectionUpdate{SectionName: ptr("Money")}))
	assert.Equal(t, "Money", section.SectionName)
	assert.Len(t, section.Tasks, 1)

	assert.True(t, m.UpdateTask(report.ID, task.ID, loc, ports.TaskUpdate{TaskName: ptr("Upload accounts")}))
	assert.Equal(t, "Upload accounts", task.TaskName)
	assert.Len(t, task.Questions, 1)

	ok := m.UpdateQuestion(report.ID, task.ID, question.ID, loc, ports.QuestionUpdate{
		QuestionType: ptr(entities.QuestionTypeYesNo),
		IsRequired:   ptr(true),
	})
	assert.True(t, ok)
	assert.Equal(t, "Spend", question.QuestionName)
	assert.Equal(t, entities.QuestionTypeYesNo, question.QuestionType)
	assert.Equal(t, "Yes or no", question.HumanQuestionType)
	assert.True(t, question.IsRequired)

	assert.False(t, m.UpdateReport("missing", ports.ReportUpdate{}))
	assert.False(t, m.UpdateSection(report.ID, "missing", ports.SectionUpdate{}))
	assert.False(t, m.UpdateTask(report.ID, task.ID, entities.Unassigned(), ports.TaskUpdate{}))
	assert.False(t, m.UpdateQuestion(report.ID, task.ID, "missing", loc, ports.QuestionUpdate{}))
}

func TestUpdateQuestionReplacesConfig(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Upload"}, entities.Unassigned())
	question := m.AddQuestion(report.ID, task.ID, entities.Question{
		QuestionName:   "Spend",
		QuestionType:   entities.QuestionTypeNumber,
		QuestionConfig: entities.QuestionConfig{MinValue: ptr(1.0), MaxValue: ptr(10.0)},
	}, entities.Unassigned())

	ok := m.UpdateQuestion(report.ID, task.ID, question.ID, entities.Unassigned(), ports.QuestionUpdate{
		QuestionType: ptr(entities.QuestionTypeSelection),
		Config:       &entities.QuestionConfig{SelectionOptions: "Yes\nNo"},
	})
	require.True(t, ok)

	assert.Nil(t, question.MinValue)
	assert.Nil(t, question.MaxValue)
	assert.Equal(t, []string{"Yes", "No"}, question.SelectionOptionsArray)
}

func TestDeleteSectionReassignsTasks(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	loose := m.AddTask(report.ID, ports.TaskInput{TaskName: "Loose"}, entities.Unassigned())
	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	other := m.AddSection(report.ID, ports.SectionInput{SectionName: "People"})
	loc := entities.InSection(section.ID)
	first := m.AddTask(report.ID, ports.TaskInput{TaskName: "First"}, loc)
	second := m.AddTask(report.ID, ports.TaskInput{TaskName: "Second"}, loc)

	require.True(t, m.DeleteSection(report.ID, section.ID))

	assert.Len(t, report.Sections, 1)
	assert.Same(t, other, report.Sections[0])
	assert.Nil(t, m.GetSection(report.ID, section.ID))
	assert.Equal(t, []string{loose.ID, first.ID, second.ID}, taskIDs(report.UnassignedTasks))

	assert.False(t, m.DeleteSection(report.ID, section.ID))
	assert.False(t, m.DeleteSection("missing", other.ID))
}

func TestDeletes(t *testing.T) {
	t.Parallel()

	m, data := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Task"}, entities.Unassigned())
	q1 := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "One"}, entities.Unassigned())
	q2 := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "Two"}, entities.Unassigned())

	assert.True(t, m.DeleteQuestion(report.ID, task.ID, q1.ID, entities.Unassigned()))
	require.Len(t, task.Questions, 1)
	assert.Same(t, q2, task.Questions[0])
	assert.False(t, m.DeleteQuestion(report.ID, task.ID, q1.ID, entities.Unassigned()))

	assert.False(t, m.DeleteTask(report.ID, "missing", entities.Unassigned()))
	assert.True(t, m.DeleteTask(report.ID, task.ID, entities.Unassigned()))
	assert.Empty(t, report.UnassignedTasks)

	assert.True(t, m.DeleteReport(report.ID))
	assert.Empty(t, data.Reports)
	assert.False(t, m.DeleteReport(report.ID))
}

func TestMoveTaskUpDown(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	section := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	loc := entities.InSection(section.ID)
	a := m.AddTask(report.ID, ports.TaskInput{TaskName: "A"}, loc)
	b := m.AddTask(report.ID, ports.TaskInput{TaskName: "B"}, loc)
	c := m.AddTask(report.ID, ports.TaskInput{TaskName: "C"}, loc)

	assert.False(t, m.MoveTaskUp(report.ID, a.ID, loc))
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, taskIDs(section.Tasks))

	assert.True(t, m.MoveTaskUp(report.ID, c.ID, loc))
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, taskIDs(section.Tasks))

	assert.False(t, m.MoveTaskDown(report.ID, b.ID, loc))
	assert.True(t, m.MoveTaskDown(report.ID, a.ID, loc))
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, taskIDs(section.Tasks))

	assert.False(t, m.MoveTaskUp(report.ID, "missing", loc))
	assert.False(t, m.MoveTaskUp(report.ID, a.ID, entities.Unassigned()))
}

func TestMoveSectionAndQuestion(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t)
	report := m.AddReport(ports.ReportInput{})
	s1 := m.AddSection(report.ID, ports.SectionInput{SectionName: "One"})
	s2 := m.AddSection(report.ID, ports.SectionInput{SectionName: "Two"})

	assert.False(t, m.MoveSectionUp(report.ID, s1.ID))
	assert.False(t, m.MoveSectionDown(report.ID, s2.ID))
	assert.True(t, m.MoveSectionDown(report.ID, s1.ID))
	assert.Equal(t, []*entities.Section{s2, s1}, report.Sections)

	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "T"}, entities.Unassigned())
	q1 := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "Q1"}, entities.Unassigned())
	q2 := m.AddQuestion(report.ID, task.ID, entities.Question{QuestionName: "Q2"}, entities.Unassigned())

	assert.False(t, m.MoveQuestionUp(report.ID, task.ID, q1.ID, entities.Unassigned()))
	assert.True(t, m.MoveQuestionUp(report.ID, task.ID, q2.ID, entities.Unassigned()))
	assert.Equal(t, []*entities.Question{q2, q1}, task.Questions)
	assert.False(t, m.MoveQuestionDown(report.ID, task.ID, q1.ID, entities.Unassigned()))
}

func TestFailedMoveDoesNotTouchReport(t *testing.T) {
	t.Parallel()

	m, _ := newReports(t, services.WithClock(stepClock(created, created, created, later)))
	report := m.AddReport(ports.ReportInput{})
	s := m.AddSection(report.ID, ports.SectionInput{SectionName: "Only"})
	require.Equal(t, created, report.LastUpdated)

	assert.False(t, m.MoveSectionUp(report.ID, s.ID))
	assert.Equal(t, created, report.LastUpdated)
}

func TestMoveTaskToSection(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*services.ReportsDataManager, *entities.Report, *entities.Section, *entities.Section, []*entities.Task) {
		m, _ := newReports(t)
		report := m.AddReport(ports.ReportInput{})
		from := m.AddSection(report.ID, ports.SectionInput{SectionName: "From"})
		to := m.AddSection(report.ID, ports.SectionInput{SectionName: "To"})
		loc := entities.InSection(from.ID)
		tasks := []*entities.Task{
			m.AddTask(report.ID, ports.TaskInput{TaskName: "A"}, loc),
			m.AddTask(report.ID, ports.TaskInput{TaskName: "B"}, loc),
			m.AddTask(report.ID, ports.TaskInput{TaskName: "C"}, loc),
		}
		return m, report, from, to, tasks
	}

	t.Run("existing section", func(t *testing.T) {
		m, report, from, to, tasks := setup(t)

		ok := m.MoveTaskToSection(report.ID, tasks[1].ID, entities.InSection(from.ID), entities.ToSection(to.ID))
		require.True(t, ok)
		assert.Equal(t, []string{tasks[0].ID, tasks[2].ID}, taskIDs(from.Tasks))
		assert.Equal(t, []string{tasks[1].ID}, taskIDs(to.Tasks))
	})

	t.Run("unassigned", func(t *testing.T) {
		m, report, from, _, tasks := setup(t)

		ok := m.MoveTaskToSection(report.ID, tasks[0].ID, entities.InSection(from.ID), entities.ParseMoveDestination("unassigned", ""))
		require.True(t, ok)
		assert.Equal(t, []string{tasks[0].ID}, taskIDs(report.UnassignedTasks))
		assert.Len(t, from.Tasks, 2)
	})

	t.Run("new section", func(t *testing.T) {
		m, report, from, _, tasks := setup(t)

		ok := m.MoveTaskToSection(report.ID, tasks[2].ID, entities.InSection(from.ID), entities.ParseMoveDestination("new", "Extras"))
		require.True(t, ok)
		require.Len(t, report.Sections, 3)
		extras := report.Sections[2]
		assert.Equal(t, "Extras", extras.SectionName)
		assert.Equal(t, []string{tasks[2].ID}, taskIDs(extras.Tasks))
	})

	t.Run("from unassigned", func(t *testing.T) {
		m, report, _, to, _ := setup(t)
		loose := m.AddTask(report.ID, ports.TaskInput{TaskName: "Loose"}, entities.Unassigned())

		require.True(t, m.MoveTaskToSection(report.ID, loose.ID, entities.Unassigned(), entities.ToSection(to.ID)))
		assert.Empty(t, report.UnassignedTasks)
		assert.Equal(t, []string{loose.ID}, taskIDs(to.Tasks))
	})

	t.Run("unknown section leaves task in place", func(t *testing.T) {
		m, report, from, to, tasks := setup(t)
		before := taskIDs(from.Tasks)

		ok := m.MoveTaskToSection(report.ID, tasks[1].ID, entities.InSection(from.ID), entities.ParseMoveDestination("nonexistent-id", ""))
		assert.False(t, ok)
		assert.Equal(t, before, taskIDs(from.Tasks))
		assert.Empty(t, to.Tasks)
		assert.Empty(t, report.UnassignedTasks)
	})

	t.Run("blank new section name leaves task in place", func(t *testing.T) {
		m, report, from, _, tasks := setup(t)

		ok := m.MoveTaskToSection(report.ID, tasks[0].ID, entities.InSection(from.ID), entities.ToNewSection("  "))
		assert.False(t, ok)
		assert.Len(t, report.Sections, 2)
		assert.Equal(t, tasks[0].ID, from.Tasks[0].ID)
	})

	t.Run("missing task", func(t *testing.T) {
		m, report, from, to, _ := setup(t)

		assert.False(t, m.MoveTaskToSection(report.ID, "missing", entities.InSection(from.ID), entities.ToSection(to.ID)))
		assert.False(t, m.MoveTaskToSection("missing", "missing", entities.InSection(from.ID), entities.ToSection(to.ID)))
	})
}

func TestBuildTemplateData(t *testing.T) {
	t.Parallel()

	m, data := newReports(t)
	report := m.AddReport(ports.ReportInput{ReportName: "Annual Return"})
	s1 := m.AddSection(report.ID, ports.SectionInput{SectionName: "Finance"})
	m.AddSection(report.ID, ports.SectionInput{SectionName: "People"})
	loose := m.AddTask(report.ID, ports.TaskInput{TaskName: "Loose"}, entities.Unassigned())
	task := m.AddTask(report.ID, ports.TaskInput{TaskName: "Upload accounts"}, entities.InSection(s1.ID))

	t.Run("sections", func(t *testing.T) {
		view := m.BuildTemplateData(report.ID, ports.TemplateOptions{IncludeSections: true})
		require.NotNil(t, view)
		assert.Equal(t, report.ID, view.CurrentReportID)
		assert.Equal(t, "Annual Return", view.ReportName)
		assert.Equal(t, entities.SampleGrantName, view.GrantName)
		assert.Len(t, view.CurrentSections, 2)
		assert.Len(t, view.CurrentUnassignedTasks, 1)
		assert.Empty(t, view.CurrentSectionID)
		assert.Nil(t, view.IsUnassignedTask)
	})

	t.Run("task in section", func(t *testing.T) {
		view := m.BuildTemplateData(report.ID, ports.TemplateOptions{SectionID: s1.ID, TaskID: task.ID})
		require.NotNil(t, view)
		assert.Nil(t, view.CurrentSections)
		assert.Equal(t, s1.ID, view.CurrentSectionID)
		assert.Equal(t, "Finance", view.SectionName)
		assert.Equal(t, "Finance", view.CurrentSectionName)
		assert.Equal(t, "Upload accounts", view.TaskName)
		assert.NotNil(t, view.CurrentQuestions)
		require.NotNil(t, view.IsUnassignedTask)
		assert.False(t, *view.IsUnassignedTask)
	})

	t.Run("unassigned task", func(t *testing.T) {
		data.GrantName = "Community Fund"
		defer func() { data.GrantName = "" }()

		view := m.BuildTemplateData(report.ID, ports.TemplateOptions{TaskID: loose.ID})
		require.NotNil(t, view)
		assert.Equal(t, "Community Fund", view.GrantName)
		assert.Equal(t, loose.ID, view.CurrentTaskID)
		require.NotNil(t, view.IsUnassignedTask)
		assert.True(t, *view.IsUnassignedTask)
	})

	t.Run("missing report", func(t *testing.T) {
		assert.Nil(t, m.BuildTemplateData("missing", ports.TemplateOptions{IncludeSections: true}))
	})
}
