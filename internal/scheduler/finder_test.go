package scheduler

import (
	"testing"

	"planit/internal/task"
)

func window(day task.Weekday, start, end int) task.AvailabilityWindow {
	w, err := task.NewAvailabilityWindow(day, start, end)
	if err != nil {
		panic(err)
	}
	return w
}

func TestFirstFit_EarliestSlot(t *testing.T) {
	windows := []task.AvailabilityWindow{
		window(task.Monday, 9, 12),
		window(task.Tuesday, 9, 12),
	}

	slot, ok := FirstFit{}.FindSlot(2, windows, NewSlotSet())
	if !ok {
		t.Fatal("expected a slot")
	}
	if slot != (Slot{task.Monday, 9}) {
		t.Errorf("got %v, want Monday 9h", slot)
	}
}

func TestFirstFit_SkipsOccupied(t *testing.T) {
	windows := []task.AvailabilityWindow{window(task.Monday, 9, 13)}
	occupied := NewSlotSet()
	occupied.Add(Slot{task.Monday, 9})
	occupied.Add(Slot{task.Monday, 10})

	slot, ok := FirstFit{}.FindSlot(2, windows, occupied)
	if !ok {
		t.Fatal("expected a slot after the occupied run")
	}
	if slot != (Slot{task.Monday, 11}) {
		t.Errorf("got %v, want Monday 11h", slot)
	}
}

func TestFirstFit_MidWindowGapTooSmall(t *testing.T) {
	// Monday 9-12 with the 10h slot taken: the 9h and 11h gaps are
	// both one hour, so a 2h task must move to the next window.
	windows := []task.AvailabilityWindow{
		window(task.Monday, 9, 12),
		window(task.Wednesday, 14, 17),
	}
	occupied := NewSlotSet()
	occupied.Add(Slot{task.Monday, 10})

	slot, ok := FirstFit{}.FindSlot(2, windows, occupied)
	if !ok {
		t.Fatal("expected a slot in the second window")
	}
	if slot != (Slot{task.Wednesday, 14}) {
		t.Errorf("got %v, want Wednesday 14h", slot)
	}
}

func TestFirstFit_ExactFit(t *testing.T) {
	windows := []task.AvailabilityWindow{window(task.Friday, 9, 12)}

	slot, ok := FirstFit{}.FindSlot(3, windows, NewSlotSet())
	if !ok {
		t.Fatal("expected a slot filling the whole window")
	}
	if slot != (Slot{task.Friday, 9}) {
		t.Errorf("got %v, want Friday 9h", slot)
	}
}

func TestFirstFit_NoFit(t *testing.T) {
	windows := []task.AvailabilityWindow{window(task.Monday, 9, 11)}

	tests := []struct {
		name     string
		duration int
		occupied []Slot
	}{
		{"too long for window", 3, nil},
		{"window fully booked", 1, []Slot{{task.Monday, 9}, {task.Monday, 10}}},
		{"zero duration", 0, nil},
		{"negative duration", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occupied := NewSlotSet()
			for _, s := range tt.occupied {
				occupied.Add(s)
			}
			_, ok := FirstFit{}.FindSlot(tt.duration, windows, occupied)
			if ok {
				t.Error("expected no slot")
			}
		})
	}
}

func TestFirstFit_WindowOrderWins(t *testing.T) {
	// An earlier hour in a later window never beats the first window.
	windows := []task.AvailabilityWindow{
		window(task.Wednesday, 14, 17),
		window(task.Monday, 8, 12),
	}

	slot, ok := FirstFit{}.FindSlot(1, windows, NewSlotSet())
	if !ok {
		t.Fatal("expected a slot")
	}
	if slot != (Slot{task.Wednesday, 14}) {
		t.Errorf("got %v, want Wednesday 14h (first window)", slot)
	}
}
