package univerdog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

type appointmentWire struct {
	ID             int64  `json:"id"`
	Date           string `json:"date_appointment"` // YYYY-MM-DD
	Time           string `json:"time_appointment"` // HH:MM or HH:MM:SS
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	DogID          int64  `json:"dog_id"`
	ProfessionalID int64  `json:"professional_id"`
}

// normalizeAppointments converts wire rows into canonical Appointments.
// Times are trimmed to HH:MM so they compare against the canonical slot
// set; rows missing a date or time are skipped rather than failing the
// whole fetch.
func (c *Client) normalizeAppointments(rows []appointmentWire) []models.Appointment {
	out := make([]models.Appointment, 0, len(rows))
	for _, w := range rows {
		if w.Date == "" || w.Time == "" {
			c.logger.Debug("skipping appointment without date or time",
				zap.Int64("id", w.ID))
			continue
		}

		status, known := models.StatusFromWire(w.Status)
		if !known && w.Status != "" {
			c.logger.Warn("unknown appointment status on wire",
				zap.Int64("id", w.ID), zap.String("status", w.Status))
		}

		out = append(out, models.Appointment{
			ID:             w.ID,
			Date:           w.Date,
			Time:           trimToMinute(w.Time),
			Reason:         w.Reason,
			Status:         status,
			DogID:          w.DogID,
			ProfessionalID: w.ProfessionalID,
		})
	}
	return out
}

// trimToMinute drops trailing seconds from HH:MM:SS times. Anything
// shorter than HH:MM passes through untouched and will simply never
// match a canonical slot.
func trimToMinute(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// ProfessionalAppointments fetches every appointment booked against one
// professional. The result is already scoped; feeding it to the
// availability resolver satisfies the caller-scoping contract.
func (c *Client) ProfessionalAppointments(ctx context.Context, professionalID int64) ([]models.Appointment, error) {
	var rows []appointmentWire
	if err := c.get(ctx, fmt.Sprintf("/appointments_pro/%d", professionalID), nil, &rows); err != nil {
		return nil, err
	}
	return c.normalizeAppointments(rows), nil
}

// Appointments fetches the full appointment collection. Used by the
// dashboard to count the user's pending bookings.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var rows []appointmentWire
	if err := c.get(ctx, "/appointments", nil, &rows); err != nil {
		return nil, err
	}
	return c.normalizeAppointments(rows), nil
}

// CreateAppointment books a slot. New bookings always go on the wire as
// pending; confirmation is the professional's move.
func (c *Client) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	body := appointmentWire{
		Date:           a.Date,
		Time:           a.Time,
		Reason:         a.Reason,
		Status:         models.StatusPending.Wire(),
		DogID:          a.DogID,
		ProfessionalID: a.ProfessionalID,
	}

	var created appointmentWire
	if err := c.post(ctx, "/appointments", body, &created); err != nil {
		return models.Appointment{}, err
	}

	normalized := c.normalizeAppointments([]appointmentWire{created})
	if len(normalized) == 0 {
		// Server acknowledged but echoed an incomplete record; hand back
		// what we sent with pending status so the caller can render it.
		a.Status = models.StatusPending
		a.ID = created.ID
		return a, nil
	}
	return normalized[0], nil
}

// DeleteAppointment cancels a booking outright.
func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/appointments/%d", id))
}
