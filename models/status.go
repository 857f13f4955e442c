package models

// Status is a project lifecycle state. Transitions are unrestricted: a board
// drag or dropdown change may move a project from any state to any other, as
// long as the target is in the recognized set.
type Status string

// StatusMeta carries the display metadata the board view needs per state.
type StatusMeta struct {
	Key   Status `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// The recognized status set, in board-column order. The whole set is
// swappable via ConfigureStatuses so the lifecycle vocabulary lives in
// exactly one place.
var statuses = []StatusMeta{
	{Key: "idea", Label: "Idea", Color: "purple"},
	{Key: "queue", Label: "Queue", Color: "blue"},
	{Key: "in-progress", Label: "In Progress", Color: "yellow"},
	{Key: "on-hold", Label: "On Hold", Color: "gray"},
	{Key: "completed", Label: "Completed", Color: "green"},
}

// ConfigureStatuses replaces the recognized status set wholesale. The first
// entry becomes the default for new projects. An empty set is rejected
// because every project row must carry some status.
func ConfigureStatuses(set []StatusMeta) {
	if len(set) == 0 {
		panic("models: status set cannot be empty")
	}
	statuses = make([]StatusMeta, len(set))
	copy(statuses, set)
}

// Statuses returns the recognized status set in display order.
func Statuses() []StatusMeta {
	out := make([]StatusMeta, len(statuses))
	copy(out, statuses)
	return out
}

// DefaultStatus is the status new projects get when the create command
// leaves it empty.
func DefaultStatus() Status {
	return statuses[0].Key
}

// ValidStatus reports whether s is in the recognized set.
func ValidStatus(s Status) bool {
	for _, meta := range statuses {
		if meta.Key == s {
			return true
		}
	}
	return false
}
