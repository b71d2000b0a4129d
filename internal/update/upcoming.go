package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleUpcomingKey(msg tea.KeyMsg) Model {
	tasks := m.upcomingTasks()
	switch msg.String() {
	case "up", "k":
		m.Upcoming.Cursor = clampCursor(m.Upcoming.Cursor-1, len(tasks))
	case "down", "j":
		m.Upcoming.Cursor = clampCursor(m.Upcoming.Cursor+1, len(tasks))
	case " ":
		if selected, ok := taskAt(tasks, m.Upcoming.Cursor); ok {
			if err := m.Tasks.SetCompleted(m.ctx, selected.ID, true); err != nil {
				m.fail("complete task", err)
			} else {
				m.Status = StatusBar{Text: "task completed"}
			}
			m.Upcoming.Cursor = clampCursor(m.Upcoming.Cursor, len(m.upcomingTasks()))
		}
	case "x":
		if selected, ok := taskAt(tasks, m.Upcoming.Cursor); ok {
			m.Confirm = ConfirmState{
				Active: true,
				Kind:   confirmTask,
				ID:     selected.ID,
				Prompt: fmt.Sprintf("delete task %q?", selected.Title),
			}
		}
	}
	return m
}
