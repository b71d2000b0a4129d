package update

import (
	"time"

	"github.com/tidymind/tidymind/internal/model"
	"github.com/tidymind/tidymind/internal/query"
	"github.com/tidymind/tidymind/internal/views"
)

func (m Model) renderTodayView() string {
	tasks := m.todayTasks()
	selectedID := ""
	if selected, ok := taskAt(tasks, m.Today.Cursor); ok {
		selectedID = selected.ID
	}
	return views.RenderTodayPanel(views.TodayPanelData{
		DateLabel:    m.todayDate(),
		Count:        query.TodayCount(m.Tasks.All(), m.todayDate()),
		QuickAddView: m.quickAddInput.View(),
		Capturing:    m.Today.Capturing,
		Editing:      m.Today.EditingID != "",
		Rows:         taskRows(tasks),
		SelectedID:   selectedID,
	})
}

func (m Model) renderTaskDetailPane() string {
	selected, ok := m.selectedTodayTask()
	if !ok {
		return views.RenderTaskDetail(views.TaskDetailData{})
	}
	return m.renderTaskDetail(selected)
}

func (m Model) renderUpcomingDetailPane() string {
	selected, ok := m.selectedUpcomingTask()
	if !ok {
		return views.RenderTaskDetail(views.TaskDetailData{})
	}
	return m.renderTaskDetail(selected)
}

func (m Model) renderTaskDetail(task model.Task) string {
	dueLabel := ""
	if task.DueDate != "" {
		dueLabel = task.DueDate + " " + views.TimeLabel(task.DueTime)
	}
	return views.RenderTaskDetail(views.TaskDetailData{
		Title:        task.Title,
		List:         task.List,
		DueLabel:     dueLabel,
		CreatedAt:    task.CreatedAt,
		Tags:         task.Tags,
		Subtasks:     subtaskRows(task.Subtasks),
		MarkdownView: m.detailViewport.View(),
	})
}

func (m Model) renderUpcomingView() string {
	selectedID := ""
	if selected, ok := m.selectedUpcomingTask(); ok {
		selectedID = selected.ID
	}
	grouped := query.UpcomingGrouped(m.Tasks.All())
	groups := make([]views.UpcomingGroupData, 0, len(grouped))
	for _, group := range grouped {
		groups = append(groups, views.UpcomingGroupData{
			Label: groupLabel(group.Date),
			Rows:  taskRows(group.Tasks),
		})
	}
	return views.RenderUpcomingPanel(groups, selectedID)
}

func (m Model) renderCalendarView() string {
	switch m.Calendar.Mode {
	case CalendarModeDay:
		tasks := m.focusDayTasks()
		return views.RenderDayPanel(views.DayPanelData{
			DateLabel: m.Calendar.FocusDate.Format(model.DateLayout),
			TableView: m.dayTable.View(),
			Empty:     len(tasks) == 0,
		})
	case CalendarModeMonth:
		return m.renderMonthView()
	default:
		return m.renderWeekView()
	}
}

func (m Model) renderWeekView() string {
	start := query.StartOfWeek(m.Calendar.FocusDate)
	dates, buckets := query.WeekBuckets(m.Tasks.All(), start)
	days := make([]views.WeekDayData, 0, len(dates))
	for i, date := range dates {
		day := start.AddDate(0, 0, i)
		days = append(days, views.WeekDayData{
			Heading: day.Format("Mon") + " " + date,
			IsToday: date == m.todayDate(),
			Rows:    taskRows(buckets[date]),
		})
	}
	return views.RenderWeekPanel(days)
}

func (m Model) renderMonthView() string {
	focus := m.Calendar.FocusDate
	cells := query.MonthCells(m.Tasks.All(), focus.Year(), focus.Month(), m.todayDate())
	out := make([]views.MonthCellData, 0, len(cells))
	for _, cell := range cells {
		lines := make([]string, 0, query.MonthVisibleTasks)
		for i, task := range cell.Tasks {
			if i == query.MonthVisibleTasks {
				break
			}
			lines = append(lines, views.TimeLabel(task.DueTime)+" "+truncate(task.Title, 10))
		}
		out = append(out, views.MonthCellData{
			Day:         cell.Day,
			Placeholder: cell.Placeholder,
			HasTasks:    cell.HasTasks,
			IsToday:     cell.IsToday,
			Lines:       lines,
			Overflow:    cell.Overflow,
		})
	}
	return views.RenderMonthPanel(views.MonthPanelData{
		Title: focus.Format("January 2006"),
		Cells: out,
	})
}

func (m Model) renderWallView() string {
	notes := m.Notes.All()
	cards := make([]views.NoteCardData, 0, len(notes))
	for i, note := range notes {
		cards = append(cards, views.NoteCardData{
			ID:       note.ID,
			Title:    note.Title,
			Content:  note.Content,
			Color:    string(note.Color),
			Selected: i == m.Wall.Cursor,
		})
	}
	return views.RenderWallPanel(cards, m.renderNoteEditorIfActive())
}

func (m Model) renderNoteEditorIfActive() string {
	return views.RenderNoteEditor(views.NoteEditorData{
		Active:    m.NoteEditor.Active,
		Editing:   m.NoteEditor.ID != "",
		Field:     string(m.NoteEditor.Field),
		TitleView: m.noteTitleInput.View(),
		BodyView:  m.noteBodyArea.View(),
	})
}

func taskRows(tasks []model.Task) []views.TaskRowData {
	rows := make([]views.TaskRowData, 0, len(tasks))
	for _, task := range tasks {
		done := 0
		for _, sub := range task.Subtasks {
			if sub.Completed {
				done++
			}
		}
		rows = append(rows, views.TaskRowData{
			ID:            task.ID,
			Time:          task.DueTime,
			Title:         task.Title,
			List:          task.List,
			Tags:          task.Tags,
			Completed:     task.Completed,
			SubtasksDone:  done,
			SubtasksTotal: len(task.Subtasks),
		})
	}
	return rows
}

func subtaskRows(subtasks []model.Subtask) []views.TaskRowData {
	rows := make([]views.TaskRowData, 0, len(subtasks))
	for _, sub := range subtasks {
		rows = append(rows, views.TaskRowData{
			ID:        sub.ID,
			Title:     sub.Title,
			Completed: sub.Completed,
		})
	}
	return rows
}

// groupLabel names an Upcoming section: undated tasks group under a fixed
// label, dated ones get a weekday prefix.
func groupLabel(date string) string {
	if date == query.NoDueDate {
		return "No Due Date"
	}
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("Mon") + " " + date
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
