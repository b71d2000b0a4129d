package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTitleRequired  = errors.New("model: task title is required")
	ErrInvalidDueDate = errors.New("model: invalid due date")
	ErrInvalidDueTime = errors.New("model: invalid due time")
	ErrDuplicateTag   = errors.New("model: duplicate tag")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Suggested list names. Free-form values are accepted everywhere; these only
// feed the editor's picker.
const (
	ListPersonal  = "Personal"
	ListWork      = "Work"
	ListGroceries = "Groceries"
	ListOther     = "Other"
)

func SuggestedLists() []string {
	return []string{ListPersonal, ListWork, ListGroceries, ListOther}
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a to-do item with optional scheduling metadata. DueDate and
// DueTime use the DateLayout/TimeLayout string forms; empty means absent.
// DueTime is only meaningful alongside a DueDate.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     string    `json:"dueDate"`
	DueTime     string    `json:"dueTime"`
	List        string    `json:"list"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Subtasks    []Subtask `json:"subtasks"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DateLayout, t.DueDate); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDueDate, t.DueDate)
		}
	}
	if t.DueTime != "" {
		if _, err := time.Parse(TimeLayout, t.DueTime); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDueTime, t.DueTime)
		}
	}
	seen := make(map[string]bool, len(t.Tags))
	for _, tag := range t.Tags {
		if seen[tag] {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		seen[tag] = true
	}
	return nil
}

// Clone deep copies the task so repository snapshots cannot alias stored
// slices.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = make([]string, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	if t.Subtasks != nil {
		out.Subtasks = make([]Subtask, len(t.Subtasks))
		copy(out.Subtasks, t.Subtasks)
	}
	return out
}

// NormalizeTags trims entries, drops blanks and removes case-sensitive
// duplicates while preserving first-occurrence order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
