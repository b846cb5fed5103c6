package domain

import (
	"errors"
	"testing"
)

func TestNewFormData_Seeds(t *testing.T) {
	f := NewFormData()

	if len(f.Drivers1) != 17 || len(f.Drivers2) != 8 || len(f.Escorts) != 3 {
		t.Fatalf("unexpected seed sizes: %d %d %d", len(f.Drivers1), len(f.Drivers2), len(f.Escorts))
	}
	if r := f.Drivers1[0]; r.ID != "B010" || r.BusNo != "B010" || r.DriverName != "" {
		t.Fatalf("unexpected first row: %+v", r)
	}
	if e := f.Escorts[2]; e.Key != "MSL117" || e.ID != "MSL117" || e.Value != "" {
		t.Fatalf("unexpected escort: %+v", e)
	}
}

func TestFormData_CloneIsDeep(t *testing.T) {
	f := NewFormData()
	c := f.Clone()

	c.Drivers1[0].DriverName = "SEM"
	c.Drivers2[0].Comments = "late"
	c.Escorts[0].Value = "x"

	if f.Drivers1[0].DriverName != "" || f.Drivers2[0].Comments != "" || f.Escorts[0].Value != "" {
		t.Fatalf("clone shares memory with original")
	}
}

func TestFormData_UpdateDriver(t *testing.T) {
	f := NewFormData()

	if err := f.UpdateDriver("L1826", FieldOthersDown, "4"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Drivers2[5].OthersDown != "4" {
		t.Fatalf("field not set: %+v", f.Drivers2[5])
	}
	if err := f.UpdateDriver("nope", FieldOthersDown, "4"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
	if err := f.UpdateDriver("B010", "id", "B999"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestFormData_UpdateEscortAndNotes(t *testing.T) {
	f := NewFormData()

	if err := f.UpdateEscort("L1828", FieldEscortID, "L2000"); err != nil {
		t.Fatalf("update escort: %v", err)
	}
	if f.Escorts[0].Key != "L1828" || f.Escorts[0].ID != "L2000" {
		t.Fatalf("escort key must stay stable: %+v", f.Escorts[0])
	}
	for field, value := range map[string]string{
		NoteComments:    "c",
		NoteRDO:         "r",
		NoteSpareDriver: "s",
		NoteSickAbsent:  "a",
	} {
		if err := f.SetNote(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
	if f.Comments != "c" || f.RDO != "r" || f.SpareDriver != "s" || f.SickAbsent != "a" {
		t.Fatalf("notes not set: %+v", f)
	}
}

func TestFormState_Transitions(t *testing.T) {
	if !FormEmpty.CanTransitionTo(FormEditing) || !FormEditing.CanTransitionTo(FormSubmitting) {
		t.Fatalf("expected editing and submitting to be reachable")
	}
	if FormSubmitting.CanTransitionTo(FormEditing) || FormSubmitting.CanTransitionTo(FormSubmitting) {
		t.Fatalf("submitting must only resolve to submitted or submit_failed")
	}
}
