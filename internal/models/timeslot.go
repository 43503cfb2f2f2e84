package models

// SlotState tags one bookable time as free, taken, or picked by the user.
type SlotState int

const (
	SlotFree SlotState = iota
	SlotTaken
	SlotSelected
)

func (s SlotState) String() string {
	switch s {
	case SlotFree:
		return "free"
	case SlotTaken:
		return "taken"
	case SlotSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// TimeSlot is a derived, per-render view of one canonical time. It is
// never persisted; the resolver rebuilds the full set on every call.
type TimeSlot struct {
	Time  string
	State SlotState
}
