package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTodayKey(msg tea.KeyMsg) Model {
	tasks := m.todayTasks()
	switch msg.String() {
	case "up", "k":
		m.Today.Cursor = clampCursor(m.Today.Cursor-1, len(tasks))
	case "down", "j":
		m.Today.Cursor = clampCursor(m.Today.Cursor+1, len(tasks))
	case "a":
		m.openQuickAdd("", "")
	case "e":
		if selected, ok := taskAt(tasks, m.Today.Cursor); ok {
			m.openQuickAdd(selected.ID, formatQuickAdd(selected))
		}
	case " ":
		if selected, ok := taskAt(tasks, m.Today.Cursor); ok {
			if err := m.Tasks.SetCompleted(m.ctx, selected.ID, !selected.Completed); err != nil {
				m.fail("complete task", err)
			} else {
				m.Status = StatusBar{Text: "task completed"}
			}
			m.Today.Cursor = clampCursor(m.Today.Cursor, len(m.todayTasks()))
		}
	case "x":
		if selected, ok := taskAt(tasks, m.Today.Cursor); ok {
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
