package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidymind/tidymind/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Confirm.Active {
			return m.handleConfirmKey(typed), nil
		}
		if m.NoteEditor.Active {
			return m.handleNoteEditorKey(typed), nil
		}
		if m.Today.Capturing {
			return m.handleQuickAddKey(typed), nil
		}

		switch typed.String() {
		case m.Keys.Today:
			m.CurrentView = ViewToday
			return m, nil
		case m.Keys.Upcoming:
			m.CurrentView = ViewUpcoming
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Wall:
			m.CurrentView = ViewWall
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewToday:
			return m.handleTodayKey(typed), nil
		case ViewUpcoming:
			return m.handleUpcomingKey(typed), nil
		case ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case ViewWall:
			return m.handleWallKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewToday:
		leftPane = m.renderTodayView()
		rightPane = m.renderTaskDetailPane() + m.renderHelpIfVisible()
	case ViewUpcoming:
		leftPane = m.renderUpcomingView()
		rightPane = m.renderUpcomingDetailPane() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderHelpIfVisible()
	case ViewWall:
		leftPane = m.renderWallView()
		rightPane = m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tidymind | view: %s | today: %s", m.CurrentView, m.todayDate()),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Overlay:    views.RenderConfirm(m.confirmPrompt()),
		Footer: fmt.Sprintf("keys: %s today | %s upcoming | %s calendar | %s wall | %s help | %s quit",
			m.Keys.Today, m.Keys.Upcoming, m.Keys.Calendar, m.Keys.Wall, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) confirmPrompt() string {
	if !m.Confirm.Active {
		return ""
	}
	return m.Confirm.Prompt
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "Y":
		switch m.Confirm.Kind {
		case confirmTask:
			if err := m.Tasks.Delete(m.ctx, m.Confirm.ID); err != nil {
				m.fail("delete task", err)
			} else {
				m.Status = StatusBar{Text: "task deleted"}
			}
		case confirmNote:
			if err := m.Notes.Delete(m.ctx, m.Confirm.ID); err != nil {
				m.fail("delete note", err)
			} else {
				m.Status = StatusBar{Text: "note deleted"}
			}
		}
	default:
		m.Status = StatusBar{Text: "delete cancelled"}
	}
	m.Confirm = ConfirmState{}
	m.Today.Cursor = clampCursor(m.Today.Cursor, len(m.todayTasks()))
	m.Upcoming.Cursor = clampCursor(m.Upcoming.Cursor, len(m.upcomingTasks()))
	m.Wall.Cursor = clampCursor(m.Wall.Cursor, len(m.Notes.All()))
	return m
}
