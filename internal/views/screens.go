package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type TaskRowData struct {
	ID            string
	Time          string
	Title         string
	List          string
	Tags          []string
	Completed     bool
	SubtasksDone  int
	SubtasksTotal int
}

type TodayPanelData struct {
	DateLabel    string
	Count        int
	QuickAddView string
	Capturing    bool
	Editing      bool
	Rows         []TaskRowData
	SelectedID   string
}

type TaskDetailData struct {
	Title        string
	List         string
	DueLabel     string
	CreatedAt    time.Time
	Tags         []string
	Subtasks     []TaskRowData
	MarkdownView string
}

type UpcomingGroupData struct {
	Label string
	Rows  []TaskRowData
}

type DayPanelData struct {
	DateLabel string
	TableView string
	Empty     bool
}

type WeekDayData struct {
	Heading string
	IsToday bool
	Rows    []TaskRowData
}

type MonthCellData struct {
	Day         int
	Placeholder bool
	HasTasks    bool
	IsToday     bool
	Lines       []string
	Overflow    int
}

type MonthPanelData struct {
	Title string
	Cells []MonthCellData
}

type NoteCardData struct {
	ID       string
	Title    string
	Content  string
	Color    string
	Selected bool
}

type NoteEditorData struct {
	Active    bool
	Editing   bool
	Field     string
	TitleView string
	BodyView  string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

var noteCardStyles = map[string]lipgloss.Style{
	"yellow": lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1).Width(24),
	"blue":   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1).Width(24),
	"green":  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 1).Width(24),
	"red":    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1).Width(24),
	"purple": lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1).Width(24),
	"orange": lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208")).Padding(0, 1).Width(24),
	"teal":   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("14")).Padding(0, 1).Width(24),
}

var monthCellStyle = lipgloss.NewStyle().Width(16).Height(4).Padding(0, 1)

// TimeLabel is how a due time reads in lists: tasks without a time are
// all-day tasks.
func TimeLabel(dueTime string) string {
	if dueTime == "" {
		return "All Day"
	}
	return dueTime
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("today: %s (%d pending)\n", data.DateLabel, data.Count))
	b.WriteString("actions: [a]add [e]edit [space]done [x]delete [j/k]move\n")
	if data.Capturing {
		mode := "add"
		if data.Editing {
			mode = "edit"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", mode, data.QuickAddView))
	}
	if len(data.Rows) == 0 {
		b.WriteString("(nothing due today)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		writeTaskRow(&b, row, data.SelectedID)
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(data TaskDetailData) string {
	if strings.TrimSpace(data.Title) == "" {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("title: %s\n", data.Title))
	if data.List != "" {
		b.WriteString(fmt.Sprintf("list: %s\n", data.List))
	}
	if data.DueLabel != "" {
		b.WriteString(fmt.Sprintf("due: %s\n", data.DueLabel))
	}
	b.WriteString(fmt.Sprintf("created: %s\n", humanize.Time(data.CreatedAt)))
	if len(data.Tags) > 0 {
		b.WriteString(fmt.Sprintf("tags: %s\n", strings.Join(data.Tags, ",")))
	}
	if len(data.Subtasks) > 0 {
		b.WriteString("subtasks:\n")
		for _, sub := range data.Subtasks {
			mark := " "
			if sub.Completed {
				mark = "x"
			}
			b.WriteString(fmt.Sprintf("  [%s] %s\n", mark, sub.Title))
		}
	}
	if data.MarkdownView != "" {
		b.WriteString("\n" + data.MarkdownView)
	}
	return strings.TrimSpace(b.String())
}

func RenderUpcomingPanel(groups []UpcomingGroupData, selectedID string) string {
	var b strings.Builder
	b.WriteString("upcoming:\n")
	b.WriteString("actions: [j/k]move [space]done [x]delete\n")
	if len(groups) == 0 {
		b.WriteString("(no pending tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, group := range groups {
		b.WriteString(fmt.Sprintf("\n%s:\n", group.Label))
		for _, row := range group.Rows {
			writeTaskRow(&b, row, selectedID)
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("calendar (day): %s\n", data.DateLabel))
	b.WriteString("actions: [d]day [w]week [m]month [h/l]period [j/k]agenda\n")
	if data.Empty {
		b.WriteString("(agenda empty)")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderWeekPanel(days []WeekDayData) string {
	var b strings.Builder
	b.WriteString("calendar (week):\n")
	b.WriteString("actions: [d]day [w]week [m]month [h/l]period\n")
	for _, day := range days {
		heading := day.Heading
		if day.IsToday {
			heading = todayStyle.Render(heading)
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", heading))
		if len(day.Rows) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, row := range day.Rows {
			b.WriteString(fmt.Sprintf("  %s %s\n", TimeLabel(row.Time), row.Title))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderMonthPanel(data MonthPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("calendar (month): %s\n", data.Title))
	b.WriteString("actions: [d]day [w]week [m]month [h/l]period\n")

	headers := make([]string, 0, 7)
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		headers = append(headers, monthCellStyle.Height(1).Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	for start := 0; start < len(data.Cells); start += 7 {
		end := start + 7
		if end > len(data.Cells) {
			end = len(data.Cells)
		}
		rendered := make([]string, 0, 7)
		for _, cell := range data.Cells[start:end] {
			rendered = append(rendered, renderMonthCell(cell))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderMonthCell(cell MonthCellData) string {
	if cell.Placeholder {
		return monthCellStyle.Render("")
	}
	day := fmt.Sprintf("%d", cell.Day)
	if cell.IsToday {
		day = todayStyle.Render(day)
	}
	if cell.HasTasks {
		day += " *"
	}
	lines := append([]string{day}, cell.Lines...)
	if cell.Overflow > 0 {
		lines = append(lines, fmt.Sprintf("+%d more", cell.Overflow))
	}
	return monthCellStyle.Render(strings.Join(lines, "\n"))
}

func RenderWallPanel(cards []NoteCardData, editorView string) string {
	var b strings.Builder
	b.WriteString("sticky wall:\n")
	b.WriteString("actions: [n]new [enter]edit [x]delete [j/k]move\n")
	if editorView != "" {
		b.WriteString(editorView + "\n")
	}
	if len(cards) == 0 {
		b.WriteString("(no notes yet)")
		return strings.TrimSpace(b.String())
	}
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, renderNoteCard(card))
	}
	// Three cards per row keeps the wall inside the pane width.
	for start := 0; start < len(rendered); start += 3 {
		end := start + 3
		if end > len(rendered) {
			end = len(rendered)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderNoteCard(card NoteCardData) string {
	style, ok := noteCardStyles[card.Color]
	if !ok {
		style = noteCardStyles["yellow"]
	}
	cursor := " "
	if card.Selected {
		cursor = ">"
	}
	title := card.Title
	if title == "" {
		title = "(untitled)"
	}
	body := card.Content
	if len(body) > 60 {
		body = body[:57] + "..."
	}
	return style.Render(fmt.Sprintf("%s %s\n%s", cursor, title, body))
}

func RenderNoteEditor(data NoteEditorData) string {
	if !data.Active {
		return ""
	}
	mode := "new note"
	if data.Editing {
		mode = "edit note"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (field: %s)\n", mode, data.Field))
	b.WriteString("keys: [tab]field [ctrl+s]save [esc]cancel\n")
	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString(data.BodyView)
	return strings.TrimSpace(b.String())
}

func RenderConfirm(prompt string) string {
	if prompt == "" {
		return ""
	}
	return fmt.Sprintf("confirm: %s [y/n]", prompt)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nview: %s\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func writeTaskRow(b *strings.Builder, row TaskRowData, selectedID string) {
	cursor := " "
	if row.ID == selectedID {
		cursor = ">"
	}
	mark := " "
	if row.Completed {
		mark = "x"
	}
	b.WriteString(fmt.Sprintf("%s [%s] %s %s", cursor, mark, TimeLabel(row.Time), row.Title))
	if row.List != "" {
		b.WriteString(" +" + row.List)
	}
	for _, tag := range row.Tags {
		b.WriteString(" #" + tag)
	}
	if row.SubtasksTotal > 0 {
		b.WriteString(fmt.Sprintf(" (%d/%d)", row.SubtasksDone, row.SubtasksTotal))
	}
	b.WriteString("\n")
}
