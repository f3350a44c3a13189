package rsvp

type Status string

const (
	StatusRegistered Status = "Registered"
	StatusCancelled  Status = "Cancelled"
)

// Toggled flips a registration between registered and cancelled.
func (s Status) Toggled() Status {
	if s == StatusCancelled {
		return StatusRegistered
	}
	return StatusCancelled
}
