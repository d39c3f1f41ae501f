package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeInto(f *Form, text string) {
	for _, r := range text {
		f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestFormEnterAdvancesThenSubmits(t *testing.T) {
	f := NewForm("Add", "ID", "Name")
	typeInto(f, "CS101")

	res, _ := f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if res != FormActive {
		t.Fatalf("enter on first field: got %v, want FormActive", res)
	}
	if f.Focused() != 1 {
		t.Fatalf("focus = %d, want 1", f.Focused())
	}
	typeInto(f, " Basics ")

	res, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if res != FormSubmitted {
		t.Fatalf("enter on last field: got %v, want FormSubmitted", res)
	}
	got := f.Values()
	if got[0] != "CS101" || got[1] != "Basics" {
		t.Errorf("Values() = %q, want [CS101 Basics]", got)
	}
}

func TestFormEscCancels(t *testing.T) {
	f := NewForm("Add", "ID")
	if res, _ := f.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); res != FormCancelled {
		t.Errorf("esc: got %v, want FormCancelled", res)
	}
}

func TestFormTabWraps(t *testing.T) {
	f := NewForm("Add", "A", "B", "C")
	f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if f.Focused() != 2 {
		t.Errorf("shift+tab from first field: focus = %d, want 2", f.Focused())
	}
	f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if f.Focused() != 0 {
		t.Errorf("tab from last field: focus = %d, want 0", f.Focused())
	}
}

func TestFormSetValueAndError(t *testing.T) {
	f := NewForm("Add Prerequisite", "Subject ID", "Prerequisite ID")
	f.SetValue(0, "CS201")
	f.SetValue(5, "ignored")
	if got := f.Values()[0]; got != "CS201" {
		t.Errorf("prefilled value = %q, want CS201", got)
	}
	f.Err = "unknown subject"
	if v := f.View(); !strings.Contains(v, "unknown subject") || !strings.Contains(v, "Add Prerequisite") {
		t.Errorf("view missing title or error: %q", v)
	}
}
