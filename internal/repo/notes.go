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

// NotesKey is the store key the sticky-note collection serializes under.
const NotesKey = "sticky-notes-data"

type NoteRepository struct {
	store    storage.Store
	ids      IDAllocator
	colors   ColorPicker
	notes    []model.Note
	onChange []func()
}

func NewNoteRepository(ctx context.Context, store storage.Store, ids IDAllocator, colors ColorPicker) (*NoteRepository, error) {
	r := &NoteRepository{store: store, ids: ids, colors: colors}
	payload, err := store.Load(ctx, NotesKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return r, nil
		}
		return nil, fmt.Errorf("load notes: %w", err)
	}
	var notes []model.Note
	if err := json.Unmarshal(payload, &notes); err != nil {
		return r, nil
	}
	r.notes = notes
	return r, nil
}

func (r *NoteRepository) OnChange(fn func()) {
	if fn != nil {
		r.onChange = append(r.onChange, fn)
	}
}

// Add creates a note and draws its color from the fixed palette. A note
// needs a title or content; both blank is rejected with nothing persisted.
func (r *NoteRepository) Add(ctx context.Context, title, content string) (model.Note, error) {
	note := model.Note{
		ID:      r.ids.NewID(),
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Color:   r.colors.Pick(model.NotePalette()),
	}
	if err := note.Validate(); err != nil {
		return model.Note{}, err
	}
	r.notes = append(r.notes, note)
	return note, r.persist(ctx)
}

// Replace updates the matching note's text. The stored color always wins:
// it is assigned once at creation and never re-rolled on edit. A note edited
// down to no title and no content is rejected; unknown ids are a silent
// no-op.
func (r *NoteRepository) Replace(ctx context.Context, note model.Note) error {
	for i := range r.notes {
		if r.notes[i].ID == note.ID {
			note.Title = strings.TrimSpace(note.Title)
			note.Content = strings.TrimSpace(note.Content)
			note.Color = r.notes[i].Color
			if err := note.Validate(); err != nil {
				return err
			}
			r.notes[i] = note
			return r.persist(ctx)
		}
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return r.persist(ctx)
		}
	}
	return nil
}

func (r *NoteRepository) All() []model.Note {
	out := make([]model.Note, len(r.notes))
	copy(out, r.notes)
	return out
}

func (r *NoteRepository) persist(ctx context.Context) error {
	defer r.notify()
	payload, err := json.Marshal(r.notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.store.Save(ctx, NotesKey, payload); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (r *NoteRepository) notify() {
	for _, fn := range r.onChange {
		fn()
	}
}
