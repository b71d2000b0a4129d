package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/tidymind/tidymind/internal/model"
	"github.com/tidymind/tidymind/internal/query"
	"github.com/tidymind/tidymind/internal/repo"
	"github.com/tidymind/tidymind/internal/views"
)

type View string

const (
	ViewToday    View = "Today"
	ViewUpcoming View = "Upcoming"
	ViewCalendar View = "Calendar"
	ViewWall     View = "Wall"
)

type CalendarMode string

const (
	CalendarModeDay   CalendarMode = "day"
	CalendarModeWeek  CalendarMode = "week"
	CalendarModeMonth CalendarMode = "month"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Today    string
	Upcoming string
	Calendar string
	Wall     string
	Help     string
	Quit     string
}

type TodayState struct {
	Cursor    int
	Capturing bool
	EditingID string
}

type UpcomingState struct {
	Cursor int
}

type CalendarState struct {
	Mode      CalendarMode
	FocusDate time.Time
	Cursor    int
}

type WallState struct {
	Cursor int
}

type noteField string

const (
	noteFieldTitle noteField = "title"
	noteFieldBody  noteField = "content"
)

type NoteEditorState struct {
	Active bool
	ID     string
	Field  noteField
}

type confirmKind string

const (
	confirmTask confirmKind = "task"
	confirmNote confirmKind = "note"
)

type ConfirmState struct {
	Active bool
	Prompt string
	Kind   confirmKind
	ID     string
}

type SwitchViewMsg struct{ View View }
type SetStatusMsg struct {
	Text    string
	IsError bool
}
type ClearStatusMsg struct{}
type AppErrorMsg struct{ Err error }

type Model struct {
	CurrentView View
	Tasks       *repo.TaskRepository
	Notes       *repo.NoteRepository
	Clock       repo.Clock
	Config      RuntimeConfig

	Today      TodayState
	Upcoming   UpcomingState
	Calendar   CalendarState
	Wall       WallState
	NoteEditor NoteEditorState
	Confirm    ConfirmState

	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	ctx context.Context
	// Bubble components used for rich TUI controls
	quickAddInput  textinput.Model
	noteTitleInput textinput.Model
	noteBodyArea   textarea.Model
	dayTable       table.Model
	helpModel      help.Model
	detailViewport viewport.Model
}

func NewModel(tasks *repo.TaskRepository, notes *repo.NoteRepository, clock repo.Clock, cfg RuntimeConfig) Model {
	m := Model{
		CurrentView: ViewToday,
		Tasks:       tasks,
		Notes:       notes,
		Clock:       clock,
		Config:      cfg,
		Calendar: CalendarState{
			Mode: CalendarModeWeek,
		},
		Keys: GlobalKeyMap{
			Today:    "1",
			Upcoming: "2",
			Calendar: "3",
			Wall:     "4",
			Help:     "?",
			Quit:     "q",
		},
		ctx: context.Background(),
	}
	m.Calendar.FocusDate = startOfDay(clock.Now())
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 48

	m.noteTitleInput = textinput.New()
	m.noteTitleInput.Prompt = ""
	m.noteTitleInput.CharLimit = 128
	m.noteTitleInput.Width = 40

	m.noteBodyArea = textarea.New()
	m.noteBodyArea.SetWidth(48)
	m.noteBodyArea.SetHeight(6)
	m.noteBodyArea.ShowLineNumbers = false
	m.noteBodyArea.Placeholder = "Note content"

	cols := []table.Column{
		{Title: "Time", Width: 8},
		{Title: "Title", Width: 28},
		{Title: "List", Width: 12},
	}
	m.dayTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(10))

	m.helpModel = help.New()
	m.detailViewport = viewport.New(54, 10)
}

func (m *Model) syncBubbleData() {
	rows := make([]table.Row, 0)
	for _, task := range m.focusDayTasks() {
		rows = append(rows, table.Row{views.TimeLabel(task.DueTime), task.Title, task.List})
	}
	m.dayTable.SetRows(rows)
	if len(rows) > 0 && m.Calendar.Cursor < len(rows) {
		m.dayTable.SetCursor(m.Calendar.Cursor)
	}

	if selected, ok := m.selectedTodayTask(); ok {
		m.detailViewport.SetContent(views.RenderMarkdown(selected.Description))
	} else {
		m.detailViewport.SetContent("")
	}
}

func (m Model) todayDate() string {
	return m.Clock.Now().Format(model.DateLayout)
}

func (m Model) todayTasks() []model.Task {
	return query.PendingForDate(m.Tasks.All(), m.todayDate())
}

func (m Model) upcomingTasks() []model.Task {
	flat := make([]model.Task, 0)
	for _, group := range query.UpcomingGrouped(m.Tasks.All()) {
		flat = append(flat, group.Tasks...)
	}
	return flat
}

func (m Model) focusDayTasks() []model.Task {
	date := m.Calendar.FocusDate.Format(model.DateLayout)
	return query.PendingForDate(m.Tasks.All(), date)
}

func (m Model) selectedTodayTask() (model.Task, bool) {
	return taskAt(m.todayTasks(), m.Today.Cursor)
}

func (m Model) selectedUpcomingTask() (model.Task, bool) {
	return taskAt(m.upcomingTasks(), m.Upcoming.Cursor)
}

func taskAt(tasks []model.Task, cursor int) (model.Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cursor], true
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (m *Model) fail(action string, err error) {
	m.LastError = err
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %v", action, err), IsError: true}
}

func isKnownView(v View) bool {
	switch v {
	case ViewToday, ViewUpcoming, ViewCalendar, ViewWall:
		return true
	default:
		return false
	}
}
