package query

import (
	"testing"
	"time"

	"github.com/tidymind/tidymind/internal/model"
)

func makeTask(id, title, dueDate, dueTime string, completed bool, createdOffset int) model.Task {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	return model.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		CreatedAt: base.Add(time.Duration(createdOffset) * time.Minute),
		DueDate:   dueDate,
		DueTime:   dueTime,
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func equalIDs(got []model.Task, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, task := range got {
		if task.ID != want[i] {
			return false
		}
	}
	return true
}

func TestPendingForDateFiltersAndSorts(t *testing.T) {
	tasks := []model.Task{
		makeTask("a", "Timed", "2024-06-10", "09:00", false, 0),
		makeTask("b", "All day", "2024-06-10", "", false, 1),
		makeTask("c", "Done", "2024-06-10", "08:00", true, 2),
		makeTask("d", "Other day", "2024-06-11", "07:00", false, 3),
		makeTask("e", "No date", "", "", false, 4),
	}

	got := PendingForDate(tasks, "2024-06-10")
	if !equalIDs(got, "b", "a") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
	for _, task := range got {
		if task.Completed || task.DueDate != "2024-06-10" {
			t.Fatalf("filter leaked task: %#v", task)
		}
	}
}

func TestPendingForDateStableUnderEqualKeys(t *testing.T) {
	tasks := []model.Task{
		makeTask("first", "A", "2024-06-10", "09:00", false, 0),
		makeTask("second", "B", "2024-06-10", "09:00", false, 1),
		makeTask("third", "C", "2024-06-10", "09:00", false, 2),
	}
	for i := 0; i < 5; i++ {
		got := PendingForDate(tasks, "2024-06-10")
		if !equalIDs(got, "first", "second", "third") {
			t.Fatalf("order not stable on run %d: %v", i, ids(got))
		}
	}
}

func TestPendingForDateDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		makeTask("a", "Late", "2024-06-10", "22:00", false, 0),
		makeTask("b", "Early", "2024-06-10", "06:00", false, 1),
	}
	_ = PendingForDate(tasks, "2024-06-10")
	if tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Fatalf("input slice reordered: %v", ids(tasks))
	}
}

func TestTodayCountExcludesCompletedAndOtherDates(t *testing.T) {
	tasks := []model.Task{
		makeTask("a", "Today", "2024-06-10", "", false, 0),
		makeTask("b", "Today done", "2024-06-10", "", true, 1),
		makeTask("c", "Tomorrow", "2024-06-11", "", false, 2),
	}
	if got := TodayCount(tasks, "2024-06-10"); got != 1 {
		t.Fatalf("expected count 1, got %d", got)
	}
}

func TestStartOfWeekAnchorsMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC), "2024-06-10"}, // Monday stays
		{time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), "2024-06-10"},   // Wednesday
		{time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), "2024-06-10"}, // Saturday
		{time.Date(2024, 6, 16, 1, 0, 0, 0, time.UTC), "2024-06-10"},   // Sunday shifts back 6
		{time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), "2024-06-17"},   // next Monday
	}
	for _, tc := range cases {
		if got := StartOfWeek(tc.in).Format(model.DateLayout); got != tc.want {
			t.Fatalf("StartOfWeek(%s): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestWeekBucketsCoverSevenDates(t *testing.T) {
	tasks := []model.Task{
		makeTask("mon", "A", "2024-06-10", "09:00", false, 0),
		makeTask("sun", "B", "2024-06-16", "", false, 1),
		makeTask("next", "C", "2024-06-17", "", false, 2),
	}
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	dates, buckets := WeekBuckets(tasks, start)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2024-06-10" || dates[6] != "2024-06-16" {
		t.Fatalf("unexpected date range: %v", dates)
	}
	if !equalIDs(buckets["2024-06-10"], "mon") {
		t.Fatalf("monday bucket wrong: %v", ids(buckets["2024-06-10"]))
	}
	if !equalIDs(buckets["2024-06-16"], "sun") {
		t.Fatalf("sunday bucket wrong: %v", ids(buckets["2024-06-16"]))
	}
	for _, date := range dates[1:6] {
		if len(buckets[date]) != 0 {
			t.Fatalf("expected empty bucket for %s", date)
		}
	}
}

func TestMonthCellsShape(t *testing.T) {
	// June 2024 starts on a Saturday: 6 placeholders + 30 days.
	cells := MonthCells(nil, 2024, time.June, "2024-06-10")
	if len(cells) != 36 {
		t.Fatalf("expected 36 cells, got %d", len(cells))
	}
	for i := 0; i < 6; i++ {
		if !cells[i].Placeholder {
			t.Fatalf("cell %d should be a placeholder", i)
		}
	}
	if cells[6].Placeholder || cells[6].Day != 1 {
		t.Fatalf("first day cell wrong: %#v", cells[6])
	}
	if last := cells[len(cells)-1]; last.Day != 30 || last.Date != "2024-06-30" {
		t.Fatalf("last day cell wrong: %#v", last)
	}
}

func TestMonthCellsFebruaryLeapYear(t *testing.T) {
	// February 2024 starts on a Thursday and has 29 days.
	cells := MonthCells(nil, 2024, time.February, "2024-02-01")
	if len(cells) != 4+29 {
		t.Fatalf("expected 33 cells, got %d", len(cells))
	}
}

func TestMonthCellsFlagsAndOverflow(t *testing.T) {
	tasks := []model.Task{
		makeTask("a", "One", "2024-06-10", "09:00", false, 0),
		makeTask("b", "Two", "2024-06-10", "10:00", false, 1),
		makeTask("c", "Three", "2024-06-10", "11:00", false, 2),
		makeTask("d", "Done", "2024-06-11", "", true, 3),
	}
	cells := MonthCells(tasks, 2024, time.June, "2024-06-10")

	var day10, day11 MonthCell
	for _, cell := range cells {
		switch cell.Day {
		case 10:
			day10 = cell
		case 11:
			day11 = cell
		}
	}
	if !day10.HasTasks || !day10.IsToday {
		t.Fatalf("day 10 flags wrong: %#v", day10)
	}
	if len(day10.Tasks) != 3 || day10.Overflow != 1 {
		t.Fatalf("day 10 overflow wrong: %d tasks, overflow %d", len(day10.Tasks), day10.Overflow)
	}
	if day11.HasTasks || day11.IsToday {
		t.Fatalf("day 11 flags wrong: %#v", day11)
	}
	if day11.Overflow != 0 {
		t.Fatalf("day 11 overflow should be 0, got %d", day11.Overflow)
	}
}

func TestUpcomingGroupedOrderAndNoDateLast(t *testing.T) {
	tasks := []model.Task{
		makeTask("later", "Later", "2024-06-12", "", false, 0),
		makeTask("nodate1", "Someday", "", "", false, 1),
		makeTask("sooner", "Sooner", "2024-06-10", "", false, 2),
		makeTask("done", "Done", "2024-06-10", "", true, 3),
		makeTask("nodate2", "Eventually", "", "", false, 4),
	}

	groups := UpcomingGrouped(tasks)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Date != "2024-06-10" || groups[1].Date != "2024-06-12" {
		t.Fatalf("dated groups out of order: %q, %q", groups[0].Date, groups[1].Date)
	}
	if groups[2].Date != NoDueDate {
		t.Fatalf("no-date group not last: %q", groups[2].Date)
	}
	if !equalIDs(groups[2].Tasks, "nodate1", "nodate2") {
		t.Fatalf("no-date group not createdAt-ordered: %v", ids(groups[2].Tasks))
	}
	for _, group := range groups {
		for _, task := range group.Tasks {
			if task.Completed {
				t.Fatalf("completed task leaked into %q", group.Date)
			}
		}
	}
}

func TestUpcomingGroupedSortsWithinGroup(t *testing.T) {
	tasks := []model.Task{
		makeTask("timed", "Nine", "2024-06-10", "09:00", false, 0),
		makeTask("allday", "All day", "2024-06-10", "", false, 1),
		makeTask("late", "Late", "2024-06-10", "18:30", false, 2),
	}
	groups := UpcomingGrouped(tasks)
	if len(groups) != 1 || !equalIDs(groups[0].Tasks, "allday", "timed", "late") {
		t.Fatalf("unexpected group order: %v", ids(groups[0].Tasks))
	}
}

func TestAbsentTimeSortsBeforeTimedScenario(t *testing.T) {
	a := makeTask("A", "Task A", "2024-06-10", "09:00", false, 0)
	b := makeTask("B", "Task B", "2024-06-10", "", false, 1)

	got := PendingForDate([]model.Task{a, b}, "2024-06-10")
	if !equalIDs(got, "B", "A") {
		t.Fatalf("expected [B A], got %v", ids(got))
	}
}

func TestCreatedAtBreaksTimeTies(t *testing.T) {
	older := makeTask("older", "Old", "2024-06-10", "09:00", false, 0)
	newer := makeTask("newer", "New", "2024-06-10", "09:00", false, 5)

	// Input order reversed from creation order; createdAt must win.
	got := PendingForDate([]model.Task{newer, older}, "2024-06-10")
	if !equalIDs(got, "older", "newer") {
		t.Fatalf("expected createdAt tie-break, got %v", ids(got))
	}
}
