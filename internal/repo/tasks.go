package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidymind/tidymind/internal/model"
	"github.com/tidymind/tidymind/internal/storage"
)

// TasksKey is the store key the whole task collection serializes under.
const TasksKey = "static-todo-tasks"

// TaskRepository owns the in-memory task collection. Every mutation
// re-serializes the full collection to the store before returning; a save
// failure leaves the in-memory change applied and surfaces the error.
type TaskRepository struct {
	store    storage.Store
	clock    Clock
	ids      IDAllocator
	tasks    []model.Task
	onChange []func()
}

func NewTaskRepository(ctx context.Context, store storage.Store, clock Clock, ids IDAllocator) (*TaskRepository, error) {
	r := &TaskRepository{store: store, clock: clock, ids: ids}
	payload, err := store.Load(ctx, TasksKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return r, nil
		}
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	var tasks []model.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		// Malformed persisted data starts an empty collection instead of
		// aborting startup.
		return r, nil
	}
	for i := range tasks {
		tasks[i].Tags = model.NormalizeTags(tasks[i].Tags)
	}
	r.tasks = tasks
	return r, nil
}

// OnChange registers a hook fired after every mutation, whether or not the
// write-through save succeeded.
func (r *TaskRepository) OnChange(fn func()) {
	if fn != nil {
		r.onChange = append(r.onChange, fn)
	}
}

// Add creates a task from the quick-add fields. The title is trimmed and
// required; everything else is optional.
func (r *TaskRepository) Add(ctx context.Context, title, dueDate, dueTime, list string, tags []string) (model.Task, error) {
	task := model.Task{
		ID:          r.ids.NewID(),
		Title:       strings.TrimSpace(title),
		Completed:   false,
		CreatedAt:   r.clock.Now(),
		DueDate:     strings.TrimSpace(dueDate),
		DueTime:     strings.TrimSpace(dueTime),
		List:        strings.TrimSpace(list),
		Tags:        model.NormalizeTags(tags),
		Description: "",
		Subtasks:    nil,
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	r.tasks = append(r.tasks, task)
	return task.Clone(), r.persist(ctx)
}

// SetCompleted flips only the completed flag. Unknown ids are a silent
// no-op so stale references from an already-refreshed view stay harmless.
func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i].Completed = completed
			return r.persist(ctx)
		}
	}
	return nil
}

// Replace swaps in the caller's whole record for the stored one with the
// same id. Invalid records are rejected with nothing persisted; unknown ids
// are a silent no-op.
func (r *TaskRepository) Replace(ctx context.Context, task model.Task) error {
	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			replacement := task.Clone()
			replacement.Title = strings.TrimSpace(replacement.Title)
			replacement.Tags = model.NormalizeTags(replacement.Tags)
			if err := replacement.Validate(); err != nil {
				return err
			}
			r.tasks[i] = replacement
			return r.persist(ctx)
		}
	}
	return nil
}

// Delete removes the record with the matching id. Unknown ids are a silent
// no-op.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return r.persist(ctx)
		}
	}
	return nil
}

// All returns a deep-copied snapshot; callers re-sort for their view.
func (r *TaskRepository) All() []model.Task {
	out := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		out = append(out, task.Clone())
	}
	return out
}

// NewSubtask allocates an id for a subtask the editor is about to append to
// a task it will submit through Replace.
func (r *TaskRepository) NewSubtask(title string) model.Subtask {
	return model.Subtask{ID: r.ids.NewID(), Title: strings.TrimSpace(title)}
}

func (r *TaskRepository) persist(ctx context.Context) error {
	defer r.notify()
	payload, err := json.Marshal(r.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := r.store.Save(ctx, TasksKey, payload); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (r *TaskRepository) notify() {
	for _, fn := range r.onChange {
		fn()
	}
}
