package repo

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tidymind/tidymind/internal/model"
)

// Clock supplies "now" so creation timestamps and today-anchored views are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDAllocator supplies unique identifiers for new tasks, notes and subtasks.
type IDAllocator interface {
	NewID() string
}

type UUIDAllocator struct{}

func (UUIDAllocator) NewID() string { return uuid.NewString() }

// ColorPicker selects a note's display color from the fixed palette at
// creation time.
type ColorPicker interface {
	Pick(palette []model.NoteColor) model.NoteColor
}

type RandColorPicker struct {
	rng *rand.Rand
}

func NewRandColorPicker(seed int64) *RandColorPicker {
	return &RandColorPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandColorPicker) Pick(palette []model.NoteColor) model.NoteColor {
	if len(palette) == 0 {
		return ""
	}
	return palette[p.rng.Intn(len(palette))]
}
