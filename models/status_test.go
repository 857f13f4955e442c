package models

import "testing"

func TestDefaultStatusIsFirstInSet(t *testing.T) {
	if got := DefaultStatus(); got != "idea" {
		t.Errorf("DefaultStatus() = %q, want %q", got, "idea")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{"idea", "queue", "in-progress", "on-hold", "completed"} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []Status{"", "frogged", "IDEA", "in progress"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestStatusesReturnsCopyInOrder(t *testing.T) {
	set := Statuses()
	if len(set) != 5 {
		t.Fatalf("len(Statuses()) = %d, want 5", len(set))
	}
	if set[0].Key != "idea" || set[4].Key != "completed" {
		t.Errorf("unexpected ordering: first %q, last %q", set[0].Key, set[4].Key)
	}

	// Mutating the returned slice must not leak into the configured set.
	set[0].Key = "mutated"
	if Statuses()[0].Key != "idea" {
		t.Error("Statuses() returned a view of internal state")
	}
}

func TestConfigureStatuses(t *testing.T) {
	original := Statuses()
	defer ConfigureStatuses(original)

	ConfigureStatuses([]StatusMeta{
		{Key: "planned", Label: "Planned", Color: "blue"},
		{Key: "done", Label: "Done", Color: "green"},
	})

	if DefaultStatus() != "planned" {
		t.Errorf("DefaultStatus() = %q, want %q", DefaultStatus(), "planned")
	}
	if !ValidStatus("done") {
		t.Error("ValidStatus(done) = false after reconfiguration")
	}
	if ValidStatus("idea") {
		t.Error("ValidStatus(idea) = true after the set was replaced")
	}
}

func TestConfigureStatusesRejectsEmptySet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ConfigureStatuses(nil) did not panic")
		}
	}()
	ConfigureStatuses(nil)
}
