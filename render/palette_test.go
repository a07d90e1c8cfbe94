package render

import (
	"testing"

	"github.com/lixenwraith/sortviz/engine"
)

func TestPaletteHighlightsLastOneStep(t *testing.T) {
	p := NewPalette(5)

	p.Apply(engine.StepResult{Ops: engine.OpCompare, Compared: engine.Pair{I: 0, J: 1}})
	if p.Role(0) != RoleCompared || p.Role(1) != RoleCompared {
		t.Fatalf("Expected indices 0,1 compared, got %d,%d", p.Role(0), p.Role(1))
	}

	p.Apply(engine.StepResult{Ops: engine.OpCompare | engine.OpSwap, Compared: engine.Pair{I: 2, J: 3}, Swapped: engine.Pair{I: 2, J: 3}})
	if p.Role(0) != RoleNormal || p.Role(1) != RoleNormal {
		t.Error("Expected previous compare highlight to be cleared")
	}
	if p.Role(2) != RoleSwapped || p.Role(3) != RoleSwapped {
		t.Errorf("Expected swap to win over compare, got %d,%d", p.Role(2), p.Role(3))
	}

	p.Apply(engine.StepResult{Ops: engine.OpWrite | engine.OpRead, Written: 4, Read: 0})
	if p.Role(4) != RoleWritten {
		t.Errorf("Expected index 4 written, got %d", p.Role(4))
	}
	if p.Role(0) != RoleCompared {
		t.Errorf("Expected read index highlighted as compared, got %d", p.Role(0))
	}
	if p.Role(2) != RoleNormal {
		t.Error("Expected swap highlight to be cleared")
	}
}

func TestPaletteSortedMarksAllFinal(t *testing.T) {
	p := NewPalette(4)
	p.Apply(engine.StepResult{Ops: engine.OpCompare, Compared: engine.Pair{I: 1, J: 2}})
	p.Apply(engine.StepResult{Status: engine.StatusSorted})

	for i := 0; i < p.Len(); i++ {
		if p.Role(i) != RoleFinal {
			t.Errorf("Expected index %d final, got %d", i, p.Role(i))
		}
	}

	// Idle steps after completion keep the final color
	p.Apply(engine.StepResult{Status: engine.StatusSorted})
	if p.Role(2) != RoleFinal {
		t.Error("Expected final role to persist")
	}
}

func TestPaletteResetAndBounds(t *testing.T) {
	p := NewPalette(3)
	p.Apply(engine.StepResult{Status: engine.StatusSorted})

	p.Reset(6)
	if p.Len() != 6 {
		t.Fatalf("Expected 6 bars, got %d", p.Len())
	}
	for i := 0; i < 6; i++ {
		if p.Role(i) != RoleNormal {
			t.Errorf("Expected index %d normal after reset, got %d", i, p.Role(i))
		}
	}

	p.Reset(2)
	p.Apply(engine.StepResult{Ops: engine.OpSwap, Swapped: engine.Pair{I: 1, J: 9}})
	if p.Role(1) != RoleSwapped {
		t.Error("Expected in-range index marked")
	}
	if p.Role(9) != RoleNormal || p.Role(-1) != RoleNormal {
		t.Error("Expected out-of-range indices to read as normal")
	}
}
