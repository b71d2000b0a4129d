package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidymind/tidymind/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "d":
		m.Calendar.Mode = CalendarModeDay
		m.Status = StatusBar{Text: "calendar mode: day"}
	case "w":
		m.Calendar.Mode = CalendarModeWeek
		m.Status = StatusBar{Text: "calendar mode: week"}
	case "m":
		m.Calendar.Mode = CalendarModeMonth
		m.Status = StatusBar{Text: "calendar mode: month"}
	case "t":
		m.Calendar.FocusDate = startOfDay(m.Clock.Now())
		m.Status = StatusBar{Text: "calendar focus: today"}
	case "h", "left":
		m.shiftCalendarFocus(-1)
	case "l", "right":
		m.shiftCalendarFocus(1)
	case "up", "k":
		if m.Calendar.Mode == CalendarModeDay {
			m.Calendar.Cursor = clampCursor(m.Calendar.Cursor-1, len(m.focusDayTasks()))
		}
	case "down", "j":
		if m.Calendar.Mode == CalendarModeDay {
			m.Calendar.Cursor = clampCursor(m.Calendar.Cursor+1, len(m.focusDayTasks()))
		}
	}
	return m
}

func (m *Model) shiftCalendarFocus(delta int) {
	switch m.Calendar.Mode {
	case CalendarModeDay:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, 0, delta)
	case CalendarModeMonth:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, delta, 0)
	default:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, 0, 7*delta)
	}
	m.Calendar.Cursor = 0
	m.Status = StatusBar{
		Text: fmt.Sprintf("calendar focus: %s", m.Calendar.FocusDate.Format(model.DateLayout)),
	}
}
