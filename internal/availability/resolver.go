// Package availability turns a professional's existing appointments into
// a per-date, per-slot availability view. Pure computation: no clock, no
// network, no state between calls.
package availability

import "github.com/ACHGAR2024/univerdog-client/internal/models"

// CanonicalTimes is the fixed, ordered set of bookable times. The gap
// between 12:00 and 14:00 is the lunch break, a legitimate member of the
// schedule, not a missing slot.
var CanonicalTimes = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
}

// Resolver evaluates slot availability over one fixed slot set. The
// appointment list passed to each call must already be scoped to a
// single professional; the resolver has no notion of "current
// professional" and cannot detect mixed input.
type Resolver struct {
	times []string
}

// New returns a resolver over the canonical slot set.
func New() *Resolver {
	return &Resolver{times: CanonicalTimes}
}

// NewWithTimes returns a resolver over a custom ordered slot set.
func NewWithTimes(times []string) *Resolver {
	return &Resolver{times: times}
}

// Times returns the resolver's slot set in order.
func (r *Resolver) Times() []string {
	out := make([]string, len(r.times))
	copy(out, r.times)
	return out
}

// IsSlotTaken reports whether any appointment matches the given date and
// time exactly. Matching is raw string equality on the canonical forms;
// both sides are normalized by the API client before they get here.
// Cancelled appointments still occupy their slot — parity with the
// booking service's current behavior.
func (r *Resolver) IsSlotTaken(appointments []models.Appointment, date, timeOfDay string) bool {
	for _, a := range appointments {
		if a.Date == "" || a.Time == "" {
			continue
		}
		if a.Date == date && a.Time == timeOfDay {
			return true
		}
	}
	return false
}

// IsDayFullyBooked reports whether every slot in the fixed set is taken
// on the given date. A day with no appointments is never fully booked:
// the set is non-empty and none of its slots match.
func (r *Resolver) IsDayFullyBooked(appointments []models.Appointment, date string) bool {
	for _, t := range r.times {
		if !r.IsSlotTaken(appointments, date, t) {
			return false
		}
	}
	return true
}

// SelectableSlots builds the per-slot view for one date: one TimeSlot
// per canonical time, tagged Free or Taken. The slice is rebuilt from
// scratch on every call; marking a slot Selected is the caller's move.
func (r *Resolver) SelectableSlots(appointments []models.Appointment, date string) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(r.times))
	for _, t := range r.times {
		state := models.SlotFree
		if r.IsSlotTaken(appointments, date, t) {
			state = models.SlotTaken
		}
		slots = append(slots, models.TimeSlot{Time: t, State: state})
	}
	return slots
}
