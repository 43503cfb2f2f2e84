package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

func appointmentsFillingDay(date string) []models.Appointment {
	out := make([]models.Appointment, 0, len(CanonicalTimes))
	for i, t := range CanonicalTimes {
		out = append(out, models.Appointment{
			ID:             int64(i + 1),
			Date:           date,
			Time:           t,
			Status:         models.StatusConfirmed,
			ProfessionalID: 7,
		})
	}
	return out
}

func TestIsSlotTaken(t *testing.T) {
	r := New()

	tests := []struct {
		name         string
		appointments []models.Appointment
		date, time   string
		want         bool
	}{
		{
			name:         "no appointments at all",
			appointments: nil,
			date:         "2024-06-01",
			time:         "09:00",
			want:         false,
		},
		{
			name: "exact match",
			appointments: []models.Appointment{
				{Date: "2024-06-01", Time: "09:00", Status: models.StatusConfirmed},
			},
			date: "2024-06-01",
			time: "09:00",
			want: true,
		},
		{
			name: "same time on another date",
			appointments: []models.Appointment{
				{Date: "2024-06-02", Time: "09:00", Status: models.StatusConfirmed},
			},
			date: "2024-06-01",
			time: "09:00",
			want: false,
		},
		{
			name: "cancelled appointment still occupies its slot",
			appointments: []models.Appointment{
				{Date: "2024-06-01", Time: "10:00", Status: models.StatusCancelled},
			},
			date: "2024-06-01",
			time: "10:00",
			want: true,
		},
		{
			name: "record with empty time never matches",
			appointments: []models.Appointment{
				{Date: "2024-06-01", Time: ""},
			},
			date: "2024-06-01",
			time: "09:00",
			want: false,
		},
		{
			name: "non-canonical time does not match a canonical slot",
			appointments: []models.Appointment{
				{Date: "2024-06-01", Time: "09:30", Status: models.StatusConfirmed},
			},
			date: "2024-06-01",
			time: "09:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsSlotTaken(tt.appointments, tt.date, tt.time))
		})
	}
}

func TestIsDayFullyBooked(t *testing.T) {
	r := New()
	date := "2024-06-01"

	full := appointmentsFillingDay(date)
	assert.True(t, r.IsDayFullyBooked(full, date))

	// Freeing any single slot makes the day bookable again.
	assert.False(t, r.IsDayFullyBooked(full[1:], date))

	// A day with zero appointments is never fully booked.
	assert.False(t, r.IsDayFullyBooked(nil, date))

	// A full day elsewhere says nothing about this date.
	assert.False(t, r.IsDayFullyBooked(full, "2024-06-02"))
}

func TestSelectableSlots(t *testing.T) {
	r := New()
	date := "2024-06-01"
	appointments := []models.Appointment{
		{Date: date, Time: "09:00", Status: models.StatusConfirmed},
		{Date: date, Time: "14:00", Status: models.StatusCancelled},
	}

	slots := r.SelectableSlots(appointments, date)
	assert.Len(t, slots, len(CanonicalTimes))

	byTime := make(map[string]models.SlotState, len(slots))
	for i, s := range slots {
		// Order must follow the canonical set.
		assert.Equal(t, CanonicalTimes[i], s.Time)
		byTime[s.Time] = s.State
	}

	assert.Equal(t, models.SlotTaken, byTime["09:00"])
	assert.Equal(t, models.SlotTaken, byTime["14:00"])
	assert.Equal(t, models.SlotFree, byTime["10:00"])
	assert.Equal(t, models.SlotFree, byTime["17:00"])
}

func TestSelectableSlotsIsRestartable(t *testing.T) {
	r := New()
	date := "2024-06-01"
	appointments := []models.Appointment{{Date: date, Time: "11:00"}}

	first := r.SelectableSlots(appointments, date)
	first[0].State = models.SlotSelected

	// A second call recomputes from scratch; the caller's mutation of
	// the previous result does not leak through.
	second := r.SelectableSlots(appointments, date)
	assert.Equal(t, models.SlotFree, second[0].State)
}

func TestSelectableSlotsEmptyDayAllFree(t *testing.T) {
	r := New()
	for _, s := range r.SelectableSlots(nil, "2024-06-01") {
		assert.Equal(t, models.SlotFree, s.State)
	}
}

func TestScopedInputNeverReportsOtherProfessionals(t *testing.T) {
	r := New()
	date := "2024-06-01"

	// Input scoped to professional A, per the caller-scoping contract:
	// professional B's bookings never reach the resolver.
	scopedToA := []models.Appointment{
		{Date: date, Time: "09:00", ProfessionalID: 1},
	}

	assert.True(t, r.IsSlotTaken(scopedToA, date, "09:00"))
	assert.False(t, r.IsSlotTaken(scopedToA, date, "10:00"))
}

func TestCustomSlotSet(t *testing.T) {
	r := NewWithTimes([]string{"08:00", "20:00"})

	full := []models.Appointment{
		{Date: "2024-06-01", Time: "08:00"},
		{Date: "2024-06-01", Time: "20:00"},
	}
	assert.True(t, r.IsDayFullyBooked(full, "2024-06-01"))
	assert.Equal(t, []string{"08:00", "20:00"}, r.Times())
}
