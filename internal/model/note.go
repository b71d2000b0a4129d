package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoteEmpty        = errors.New("model: note needs a title or content")
	ErrInvalidNoteColor = errors.New("model: invalid note color")
)

type NoteColor string

const (
	NoteYellow NoteColor = "yellow"
	NoteBlue   NoteColor = "blue"
	NoteGreen  NoteColor = "green"
	NoteRed    NoteColor = "red"
	NotePurple NoteColor = "purple"
	NoteOrange NoteColor = "orange"
	NoteTeal   NoteColor = "teal"
)

// NotePalette is the fixed set a new note's color is drawn from. The color
// is assigned once at creation and never changes afterwards.
func NotePalette() []NoteColor {
	return []NoteColor{NoteYellow, NoteBlue, NoteGreen, NoteRed, NotePurple, NoteOrange, NoteTeal}
}

func (c NoteColor) IsValid() bool {
	switch c {
	case NoteYellow, NoteBlue, NoteGreen, NoteRed, NotePurple, NoteOrange, NoteTeal:
		return true
	default:
		return false
	}
}

// Note is a freestanding text memo with no scheduling metadata.
type Note struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Color   NoteColor `json:"color"`
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return errors.New("model: note id is required")
	}
	if strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == "" {
		return ErrNoteEmpty
	}
	if !n.Color.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidNoteColor, n.Color)
	}
	return nil
}
