package bookings

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// CanBeCancelled checks if a booking with this status can be cancelled
func (s Status) CanBeCancelled() bool {
	return s == StatusConfirmed
}

// CanBeCompleted is true for bookings whose screening has not been closed yet
func (s Status) CanBeCompleted() bool {
	return s == StatusConfirmed
}

// IsActive reports whether the booking still counts towards revenue
func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusCompleted
}
