package update

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidymind/tidymind/internal/repo"
	"github.com/tidymind/tidymind/internal/storage"
)

type staticClock struct {
	now time.Time
}

func (c staticClock) Now() time.Time { return c.now }

type seqAllocator struct {
	n int
}

func (a *seqAllocator) NewID() string {
	a.n++
	return fmt.Sprintf("id-%d", a.n)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := staticClock{now: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	tasks, err := repo.NewTaskRepository(ctx, store, clock, &seqAllocator{})
	if err != nil {
		t.Fatalf("task repo: %v", err)
	}
	notes, err := repo.NewNoteRepository(ctx, store, &seqAllocator{n: 100}, repo.NewRandColorPicker(1))
	if err != nil {
		t.Fatalf("note repo: %v", err)
	}
	return NewModel(tasks, notes, clock, DefaultRuntimeConfig())
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func pressRunes(t *testing.T, m Model, keys string) Model {
	t.Helper()
	for _, r := range keys {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewToday {
		t.Fatalf("expected default view %q, got %q", ViewToday, m.CurrentView)
	}
	if m.Calendar.Mode != CalendarModeWeek {
		t.Fatalf("expected week mode, got %q", m.Calendar.Mode)
	}
	if got := m.Calendar.FocusDate.Format("2006-01-02"); got != "2024-06-10" {
		t.Fatalf("focus date should start at today, got %s", got)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "2")
	if m.CurrentView != ViewUpcoming {
		t.Fatalf("expected upcoming view, got %q", m.CurrentView)
	}
	m = pressRunes(t, m, "4")
	if m.CurrentView != ViewWall {
		t.Fatalf("expected wall view, got %q", m.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, SwitchViewMsg{View: ViewCalendar})
	if m.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", m.CurrentView)
	}
	m = press(t, m, SwitchViewMsg{View: View("Unknown")})
	if m.CurrentView != ViewCalendar {
		t.Fatalf("expected view unchanged for unknown view, got %q", m.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = press(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || m.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", m.LastError)
	}
	if !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}

	m = press(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}

func TestQuickAddCapturesTaskForToday(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "a")
	if !m.Today.Capturing {
		t.Fatal("expected capture mode after a")
	}
	m.quickAddInput.SetValue("Buy milk @09:30 +Groceries #errand")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Today.Capturing {
		t.Fatal("capture mode should close on submit")
	}
	tasks := m.Tasks.All()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0]
	if task.Title != "Buy milk" || task.DueTime != "09:30" || task.List != "Groceries" {
		t.Fatalf("unexpected task: %#v", task)
	}
	if task.DueDate != "2024-06-10" {
		t.Fatalf("capture without @date should file for today, got %q", task.DueDate)
	}
}

func TestQuickAddEscCancels(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "a")
	m.quickAddInput.SetValue("half typed")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Today.Capturing {
		t.Fatal("esc should leave capture mode")
	}
	if got := len(m.Tasks.All()); got != 0 {
		t.Fatalf("cancelled capture added a task: %d", got)
	}
}

func TestQuickAddBlankTitleSurfacesError(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "a")
	m.quickAddInput.SetValue("   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
	if !m.Today.Capturing {
		t.Fatal("capture mode should stay open so the input can be fixed")
	}
}

func TestQuickAddEditReplacesTask(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()
	if _, err := m.Tasks.Add(ctx, "Draft", "2024-06-10", "", "", nil); err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m = pressRunes(t, m, "e")
	if !m.Today.Capturing || m.Today.EditingID == "" {
		t.Fatalf("expected edit capture, got %+v", m.Today)
	}
	m.quickAddInput.SetValue("Draft report @2024-06-12 @14:00 +Work #writing")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	task := m.Tasks.All()[0]
	if task.Title != "Draft report" || task.DueDate != "2024-06-12" || task.DueTime != "14:00" {
		t.Fatalf("edit did not apply: %#v", task)
	}
	if task.List != "Work" || len(task.Tags) != 1 || task.Tags[0] != "writing" {
		t.Fatalf("edit dropped metadata: %#v", task)
	}
}

func TestTodaySpaceCompletesSelectedTask(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()
	task, err := m.Tasks.Add(ctx, "Water plants", "2024-06-10", "", "", nil)
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	got := m.Tasks.All()[0]
	if got.ID != task.ID || !got.Completed {
		t.Fatalf("space did not complete the task: %#v", got)
	}
	if len(m.todayTasks()) != 0 {
		t.Fatal("completed task should leave the today list")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()
	if _, err := m.Tasks.Add(ctx, "Doomed", "2024-06-10", "", "", nil); err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m = pressRunes(t, m, "x")
	if !m.Confirm.Active || m.Confirm.Kind != confirmTask {
		t.Fatalf("expected pending confirm, got %+v", m.Confirm)
	}

	// Anything but y cancels.
	m = pressRunes(t, m, "n")
	if m.Confirm.Active {
		t.Fatal("confirm should close after answer")
	}
	if got := len(m.Tasks.All()); got != 1 {
		t.Fatalf("cancel deleted the task: %d left", got)
	}

	m = pressRunes(t, m, "xy")
	if got := len(m.Tasks.All()); got != 0 {
		t.Fatalf("confirmed delete left %d tasks", got)
	}
}

func TestCalendarModeAndFocusShift(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "3")

	m = pressRunes(t, m, "l")
	if got := m.Calendar.FocusDate.Format("2006-01-02"); got != "2024-06-17" {
		t.Fatalf("week shift should add 7 days, got %s", got)
	}

	m = pressRunes(t, m, "d")
	m = pressRunes(t, m, "h")
	if got := m.Calendar.FocusDate.Format("2006-01-02"); got != "2024-06-16" {
		t.Fatalf("day shift should subtract a day, got %s", got)
	}

	m = pressRunes(t, m, "m")
	m = pressRunes(t, m, "l")
	if got := m.Calendar.FocusDate.Format("2006-01-02"); got != "2024-07-16" {
		t.Fatalf("month shift should add a month, got %s", got)
	}

	m = pressRunes(t, m, "t")
	if got := m.Calendar.FocusDate.Format("2006-01-02"); got != "2024-06-10" {
		t.Fatalf("t should jump back to today, got %s", got)
	}
}

func TestUpcomingSpaceCompletesAcrossGroups(t *testing.T) {
	m := newTestModel(t)
	ctx := context.Background()
	if _, err := m.Tasks.Add(ctx, "Sooner", "2024-06-11", "", "", nil); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	later, err := m.Tasks.Add(ctx, "Later", "2024-06-12", "", "", nil)
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m = pressRunes(t, m, "2j")
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for _, task := range m.Tasks.All() {
		if task.ID == later.ID && !task.Completed {
			t.Fatalf("expected %q completed, got %#v", later.Title, task)
		}
		if task.ID != later.ID && task.Completed {
			t.Fatalf("wrong task completed: %#v", task)
		}
	}
}

func TestWallEditorAddsAndEditsNote(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "4n")
	if !m.NoteEditor.Active || m.NoteEditor.ID != "" {
		t.Fatalf("expected new-note editor, got %+v", m.NoteEditor)
	}
	m.noteTitleInput.SetValue("Shopping")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.NoteEditor.Field != noteFieldBody {
		t.Fatalf("tab should switch to content field, got %q", m.NoteEditor.Field)
	}
	m.noteBodyArea.SetValue("milk, eggs")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	notes := m.Notes.All()
	if len(notes) != 1 || notes[0].Title != "Shopping" || notes[0].Content != "milk, eggs" {
		t.Fatalf("unexpected notes: %#v", notes)
	}
	color := notes[0].Color

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.NoteEditor.Active || m.NoteEditor.ID != notes[0].ID {
		t.Fatalf("expected edit editor for existing note, got %+v", m.NoteEditor)
	}
	m.noteBodyArea.SetValue("milk, eggs, bread")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	edited := m.Notes.All()[0]
	if edited.Content != "milk, eggs, bread" {
		t.Fatalf("edit did not apply: %#v", edited)
	}
	if edited.Color != color {
		t.Fatalf("edit re-rolled note color: %q vs %q", edited.Color, color)
	}
}

func TestWallEmptyNoteSurfacesError(t *testing.T) {
	m := newTestModel(t)
	m = pressRunes(t, m, "4n")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Status.IsError {
		t.Fatalf("expected error status for empty note, got %+v", m.Status)
	}
	if got := len(m.Notes.All()); got != 0 {
		t.Fatalf("empty note was saved: %d notes", got)
	}
}

func TestQuitSetsQuitting(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewRendersWithoutSelection(t *testing.T) {
	m := newTestModel(t)
	for _, view := range []View{ViewToday, ViewUpcoming, ViewCalendar, ViewWall} {
		m.CurrentView = view
		if out := m.View(); out == "" {
			t.Fatalf("empty render for view %q", view)
		}
	}
}
