package timeline

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stitchlog/backend/models"
)

func TestComposeEmpty(t *testing.T) {
	entries := Compose(nil, nil)
	if len(entries) != 0 {
		t.Fatalf("len = %d, want 0", len(entries))
	}
}

func TestComposeOrdersNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	photos := []models.Photo{
		{ID: uuid.New(), UploadedAt: base},                    // oldest
		{ID: uuid.New(), UploadedAt: base.Add(2 * time.Hour)}, // newest
	}
	notes := []models.Note{
		{ID: uuid.New(), Content: "cast on", CreatedAt: base.Add(time.Hour)},
	}

	entries := Compose(photos, notes)
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}

	wantKinds := []Kind{KindPhoto, KindNote, KindPhoto}
	for i, want := range wantKinds {
		if entries[i].Kind != want {
			t.Errorf("entries[%d].Kind = %q, want %q", i, entries[i].Kind, want)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries[%d] is newer than entries[%d]", i, i-1)
		}
	}
	if entries[0].Photo == nil || entries[0].Photo.ID != photos[1].ID {
		t.Error("newest entry should wrap the later photo")
	}
	if entries[1].Note == nil || entries[1].Note.Content != "cast on" {
		t.Error("middle entry should wrap the note")
	}
}

func TestComposeTiesKeepReadOrder(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	photos := []models.Photo{
		{ID: uuid.New(), UploadedAt: ts},
		{ID: uuid.New(), UploadedAt: ts},
	}
	notes := []models.Note{
		{ID: uuid.New(), CreatedAt: ts},
	}

	entries := Compose(photos, notes)
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	// Equal timestamps: photos keep their order and precede notes, because
	// that is the order they were appended in.
	if entries[0].Photo == nil || entries[0].Photo.ID != photos[0].ID {
		t.Error("tie broke photo read order")
	}
	if entries[1].Photo == nil || entries[1].Photo.ID != photos[1].ID {
		t.Error("tie broke photo read order")
	}
	if entries[2].Note == nil {
		t.Error("note should come after photos on a tie")
	}
}

func TestComposeDoesNotMutateInputs(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	photos := []models.Photo{
		{ID: uuid.New(), UploadedAt: base.Add(time.Hour)},
		{ID: uuid.New(), UploadedAt: base},
	}
	first := photos[0].ID

	Compose(photos, nil)

	if photos[0].ID != first {
		t.Error("Compose reordered its input slice")
	}
}
