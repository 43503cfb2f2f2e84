package models

// Status is the closed set of appointment states. The API speaks French
// on the wire ("En attente", "Confirmé", "Annulé"); translation happens
// at the API-client edge only.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusCancelled
)

const (
	wirePending   = "En attente"
	wireConfirmed = "Confirmé"
	wireCancelled = "Annulé"
)

// StatusFromWire maps a wire status string to its enum value. Unknown
// strings map to StatusUnknown with ok=false; callers keep the record
// rather than dropping it, since the booking service has been known to
// introduce status values without notice.
func StatusFromWire(s string) (Status, bool) {
	switch s {
	case wirePending:
		return StatusPending, true
	case wireConfirmed:
		return StatusConfirmed, true
	case wireCancelled:
		return StatusCancelled, true
	default:
		return StatusUnknown, false
	}
}

// Wire returns the string the API expects for this status.
func (s Status) Wire() string {
	switch s {
	case StatusPending:
		return wirePending
	case StatusConfirmed:
		return wireConfirmed
	case StatusCancelled:
		return wireCancelled
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Appointment is the canonical, wire-normalized appointment record.
// Date is YYYY-MM-DD and Time is HH:MM; both are already in the
// canonical representation the availability resolver compares against.
type Appointment struct {
	ID             int64
	Date           string
	Time           string
	Reason         string
	Status         Status
	DogID          int64
	ProfessionalID int64
}
