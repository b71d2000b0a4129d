// Package query derives read-only projections from a task snapshot. Every
// function is pure: same snapshot and reference date in, same projection
// out, no mutation of the input slice.
package query

import (
	"sort"
	"time"

	"github.com/tidymind/tidymind/internal/model"
)

// NoDueDate keys the Upcoming group for tasks without a due date. It is the
// literal DueDate value of such tasks; the group always sorts last.
const NoDueDate = ""

// PendingForDate selects pending tasks due on the given YYYY-MM-DD date,
// sorted by due time ascending. Tasks without a time sort first (the empty
// string compares least); ties fall back to creation time.
func PendingForDate(tasks []model.Task, date string) []model.Task {
	out := make([]model.Task, 0)
	for _, task := range tasks {
		if task.DueDate == date && !task.Completed {
			out = append(out, task)
		}
	}
	sortByTimeThenCreated(out)
	return out
}

// TodayCount is the badge number: pending tasks due today.
func TodayCount(tasks []model.Task, today string) int {
	count := 0
	for _, task := range tasks {
		if task.DueDate == today && !task.Completed {
			count++
		}
	}
	return count
}

// StartOfWeek shifts t back to the most recent Monday at midnight. Sunday
// counts as the end of the previous week and shifts back six days.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	shift := int(day.Weekday()) - 1
	if shift < 0 {
		shift = 6
	}
	return day.AddDate(0, 0, -shift)
}

// WeekBuckets returns the seven consecutive dates starting at startOfWeek
// and each date's PendingForDate result. The date slice carries the order;
// the map carries the buckets.
func WeekBuckets(tasks []model.Task, startOfWeek time.Time) ([]string, map[string][]model.Task) {
	dates := make([]string, 0, 7)
	buckets := make(map[string][]model.Task, 7)
	for i := 0; i < 7; i++ {
		date := startOfWeek.AddDate(0, 0, i).Format(model.DateLayout)
		dates = append(dates, date)
		buckets[date] = PendingForDate(tasks, date)
	}
	return dates, buckets
}

// MonthCell is one slot of the month grid. Placeholder cells pad the first
// row so day 1 lands under its weekday column (headers start on Sunday).
type MonthCell struct {
	Day         int // 1-based; 0 for placeholders
	Date        string
	Placeholder bool
	Tasks       []model.Task // all pending tasks for the date, time-sorted
	Overflow    int          // tasks beyond the first two shown in the cell
	HasTasks    bool
	IsToday     bool
}

// MonthVisibleTasks is how many tasks a month cell shows before collapsing
// the rest into an overflow count.
const MonthVisibleTasks = 2

// MonthCells lays out the given month: firstWeekday(month) placeholder
// cells followed by one cell per day.
func MonthCells(tasks []model.Task, year int, month time.Month, today string) []MonthCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]MonthCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, MonthCell{Placeholder: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		pending := PendingForDate(tasks, date)
		overflow := len(pending) - MonthVisibleTasks
		if overflow < 0 {
			overflow = 0
		}
		cells = append(cells, MonthCell{
			Day:      day,
			Date:     date,
			Tasks:    pending,
			Overflow: overflow,
			HasTasks: len(pending) > 0,
			IsToday:  date == today,
		})
	}
	return cells
}

// DateGroup is one Upcoming section: a due date and its pending tasks.
type DateGroup struct {
	Date  string // NoDueDate for the undated group
	Tasks []model.Task
}

// UpcomingGrouped groups all pending tasks by due date, dates ascending,
// with the undated group last. Within a group tasks sort by due time then
// creation time; the undated group sorts by creation time alone.
func UpcomingGrouped(tasks []model.Task) []DateGroup {
	grouped := make(map[string][]model.Task)
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		grouped[task.DueDate] = append(grouped[task.DueDate], task)
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		if dates[i] == NoDueDate {
			return false
		}
		if dates[j] == NoDueDate {
			return true
		}
		return dates[i] < dates[j]
	})

	out := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		group := grouped[date]
		sortByTimeThenCreated(group)
		out = append(out, DateGroup{Date: date, Tasks: group})
	}
	return out
}

// sortByTimeThenCreated orders by due time ascending with absent times
// first, breaking ties on creation time so the order is total and stable
// across repeated calls.
func sortByTimeThenCreated(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DueTime != tasks[j].DueTime {
			return tasks[i].DueTime < tasks[j].DueTime
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}
