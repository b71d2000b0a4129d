package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidymind/tidymind/internal/model"
)

func (m Model) handleWallKey(msg tea.KeyMsg) Model {
	notes := m.Notes.All()
	switch msg.String() {
	case "up", "k":
		m.Wall.Cursor = clampCursor(m.Wall.Cursor-1, len(notes))
	case "down", "j":
		m.Wall.Cursor = clampCursor(m.Wall.Cursor+1, len(notes))
	case "n":
		m.openNoteEditor(model.Note{})
	case "enter":
		if selected, ok := noteAt(notes, m.Wall.Cursor); ok {
			m.openNoteEditor(selected)
		}
	case "x":
		if selected, ok := noteAt(notes, m.Wall.Cursor); ok {
			label := selected.Title
			if label == "" {
				label = "(untitled)"
			}
			m.Confirm = ConfirmState{
				Active: true,
				Kind:   confirmNote,
				ID:     selected.ID,
				Prompt: fmt.Sprintf("delete note %q?", label),
			}
		}
	}
	return m
}

func (m Model) handleNoteEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeNoteEditor()
		m.Status = StatusBar{Text: "note edit cancelled"}
		return m
	case "tab":
		m.toggleNoteField()
		return m
	case "ctrl+s":
		return m.submitNoteEditor()
	}
	var cmd tea.Cmd
	if m.NoteEditor.Field == noteFieldTitle {
		m.noteTitleInput, cmd = m.noteTitleInput.Update(msg)
	} else {
		m.noteBodyArea, cmd = m.noteBodyArea.Update(msg)
	}
	_ = cmd
	return m
}

func (m Model) submitNoteEditor() Model {
	title := m.noteTitleInput.Value()
	content := m.noteBodyArea.Value()

	if m.NoteEditor.ID == "" {
		if _, err := m.Notes.Add(m.ctx, title, content); err != nil {
			m.fail("add note", err)
			return m
		}
		m.Status = StatusBar{Text: "note added"}
	} else {
		// Color is left zero here; the repository pins the stored one.
		note := model.Note{ID: m.NoteEditor.ID, Title: title, Content: content}
		if err := m.Notes.Replace(m.ctx, note); err != nil {
			m.fail("edit note", err)
			return m
		}
		m.Status = StatusBar{Text: "note updated"}
	}
	m.closeNoteEditor()
	return m
}

func (m *Model) openNoteEditor(note model.Note) {
	m.NoteEditor = NoteEditorState{Active: true, ID: note.ID, Field: noteFieldTitle}
	m.noteTitleInput.SetValue(note.Title)
	m.noteTitleInput.CursorEnd()
	m.noteTitleInput.Focus()
	m.noteBodyArea.SetValue(note.Content)
	m.noteBodyArea.Blur()
}

func (m *Model) closeNoteEditor() {
	m.NoteEditor = NoteEditorState{}
	m.noteTitleInput.SetValue("")
	m.noteTitleInput.Blur()
	m.noteBodyArea.SetValue("")
	m.noteBodyArea.Blur()
}

func (m *Model) toggleNoteField() {
	if m.NoteEditor.Field == noteFieldTitle {
		m.NoteEditor.Field = noteFieldBody
		m.noteTitleInput.Blur()
		m.noteBodyArea.Focus()
		return
	}
	m.NoteEditor.Field = noteFieldTitle
	m.noteBodyArea.Blur()
	m.noteTitleInput.Focus()
}

func noteAt(notes []model.Note, cursor int) (model.Note, bool) {
	if cursor < 0 || cursor >= len(notes) {
		return model.Note{}, false
	}
	return notes[cursor], true
}
