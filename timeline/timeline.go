// Package timeline derives a project's chronological view from its photos
// and notes. Nothing here is persisted: the sequence is recomputed from
// storage state on every read.
package timeline

import (
	"sort"
	"time"

	"github.com/stitchlog/backend/models"
)

type Kind string

const (
	KindPhoto Kind = "photo"
	KindNote  Kind = "note"
)

// Entry is a presentation-only record wrapping either a photo or a note,
// keyed by the single timestamp the two kinds are ordered on: a photo's
// upload time, a note's creation time.
type Entry struct {
	Kind      Kind          `json:"kind"`
	Timestamp time.Time     `json:"timestamp"`
	Photo     *models.Photo `json:"photo,omitempty"`
	Note      *models.Note  `json:"note,omitempty"`
}

// Compose merges photos and notes into one sequence ordered most recent
// first. It never mutates its inputs; ties keep the underlying read order.
func Compose(photos []models.Photo, notes []models.Note) []Entry {
	entries := make([]Entry, 0, len(photos)+len(notes))
	for i := range photos {
		entries = append(entries, Entry{
			Kind:      KindPhoto,
			Timestamp: photos[i].UploadedAt,
			Photo:     &photos[i],
		})
	}
	for i := range notes {
		entries = append(entries, Entry{
			Kind:      KindNote,
			Timestamp: notes[i].CreatedAt,
			Note:      &notes[i],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}
