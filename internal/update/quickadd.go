package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidymind/tidymind/internal/model"
)

type quickAddFields struct {
	Title   string
	DueDate string
	DueTime string
	List    string
	Tags    []string
}

// parseQuickAdd splits a capture line into task fields. An @token is a due
// date (YYYY-MM-DD) or due time (HH:MM), +name picks the list, #name adds a
// tag; everything else joins into the title.
func parseQuickAdd(input string) quickAddFields {
	var f quickAddFields
	words := make([]string, 0)
	for _, token := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(token, "@") && len(token) > 1:
			value := token[1:]
			if _, err := time.Parse(model.DateLayout, value); err == nil {
				f.DueDate = value
			} else if _, err := time.Parse(model.TimeLayout, value); err == nil {
				f.DueTime = value
			} else {
				words = append(words, token)
			}
		case strings.HasPrefix(token, "+") && len(token) > 1:
			f.List = token[1:]
		case strings.HasPrefix(token, "#") && len(token) > 1:
			f.Tags = append(f.Tags, token[1:])
		default:
			words = append(words, token)
		}
	}
	f.Title = strings.Join(words, " ")
	return f
}

// formatQuickAdd renders a task back into capture syntax so editing starts
// from the current field values.
func formatQuickAdd(task model.Task) string {
	parts := []string{task.Title}
	if task.DueDate != "" {
		parts = append(parts, "@"+task.DueDate)
	}
	if task.DueTime != "" {
		parts = append(parts, "@"+task.DueTime)
	}
	if task.List != "" {
		parts = append(parts, "+"+task.List)
	}
	for _, tag := range task.Tags {
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeQuickAdd()
		m.Status = StatusBar{Text: "capture cancelled"}
		return m
	case "enter":
		return m.submitQuickAdd()
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) submitQuickAdd() Model {
	fields := parseQuickAdd(m.quickAddInput.Value())

	if m.Today.EditingID == "" {
		if fields.DueDate == "" {
			// Capturing from Today files the task for today.
			fields.DueDate = m.todayDate()
		}
		if _, err := m.Tasks.Add(m.ctx, fields.Title, fields.DueDate, fields.DueTime, fields.List, fields.Tags); err != nil {
			m.fail("add task", err)
			return m
		}
		m.Status = StatusBar{Text: "task added"}
		m.closeQuickAdd()
		return m
	}

	existing, ok := m.taskByID(m.Today.EditingID)
	if !ok {
		m.closeQuickAdd()
		return m
	}
	existing.Title = strings.TrimSpace(fields.Title)
	existing.DueDate = fields.DueDate
	existing.DueTime = fields.DueTime
	existing.List = fields.List
	existing.Tags = fields.Tags
	if err := existing.Validate(); err != nil {
		m.fail("edit task", err)
		return m
	}
	if err := m.Tasks.Replace(m.ctx, existing); err != nil {
		m.fail("edit task", err)
		return m
	}
	m.Status = StatusBar{Text: "task updated"}
	m.closeQuickAdd()
	return m
}

func (m *Model) openQuickAdd(editingID, initial string) {
	m.Today.Capturing = true
	m.Today.EditingID = editingID
	m.quickAddInput.SetValue(initial)
	m.quickAddInput.CursorEnd()
	m.quickAddInput.Focus()
}

func (m *Model) closeQuickAdd() {
	m.Today.Capturing = false
	m.Today.EditingID = ""
	m.quickAddInput.SetValue("")
	m.quickAddInput.Blur()
}

func (m Model) taskByID(id string) (model.Task, bool) {
	for _, task := range m.Tasks.All() {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}
